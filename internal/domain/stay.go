package domain

import (
	"fmt"
	"math"
)

// StayQuote is the nights/total pair shown before a reservation is confirmed.
// It is derived on every call and never stored.
type StayQuote struct {
	Nights int     `json:"nights"`
	Total  float64 `json:"total"`
}

// Reservable reports whether the quote may be turned into a reservation.
func (q StayQuote) Reservable() bool { return q.Nights > 0 }

// ComputeStay derives the quote for a stay. A missing date, or a check-out
// that is not strictly after check-in, yields the zero quote. Partial days
// round up to a full night.
func ComputeStay(checkIn, checkOut *DateStamp, nightlyPrice float64) StayQuote {
	if checkIn == nil || checkOut == nil {
		return StayQuote{}
	}
	if !checkOut.After(*checkIn) {
		return StayQuote{}
	}
	nights := int(math.Ceil(checkOut.Sub(*checkIn)))
	return StayQuote{Nights: nights, Total: float64(nights) * nightlyPrice}
}

func ValidatePrice(price float64) error {
	if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidPrice, price)
	}
	return nil
}

// QuoteStay is ComputeStay with the nightly price checked first.
func QuoteStay(checkIn, checkOut *DateStamp, nightlyPrice float64) (StayQuote, error) {
	if err := ValidatePrice(nightlyPrice); err != nil {
		return StayQuote{}, err
	}
	return ComputeStay(checkIn, checkOut, nightlyPrice), nil
}
