package domain

import "errors"

var (
	ErrNotFound = errors.New("listing: not found")

	// ErrInvalidPrice is returned for a negative, NaN or infinite nightly price.
	ErrInvalidPrice = errors.New("stay: invalid nightly price")

	// ErrInvalidDate is returned when a date is not in YYYY-MM-DD form.
	ErrInvalidDate = errors.New("stay: invalid date")

	// ErrNotReservable is returned when a stay quote has zero nights.
	ErrNotReservable = errors.New("stay: select valid check-in and check-out dates")

	ErrCheckInInPast = errors.New("stay: check-in date is in the past")

	ErrInvalidListing = errors.New("listing: invalid listing")
)
