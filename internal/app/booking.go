package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"listing_hub/internal/adapters/observability"
	"listing_hub/internal/domain"
)

type Quote struct {
	ListingID    string            `json:"listing_id"`
	NightlyPrice float64           `json:"nightly_price"`
	CheckIn      *domain.DateStamp `json:"check_in"`
	CheckOut     *domain.DateStamp `json:"check_out"`
	domain.StayQuote
	Reservable bool `json:"reservable"`
}

type Confirmation struct {
	Number    string           `json:"number"`
	ListingID string           `json:"listing_id"`
	CheckIn   domain.DateStamp `json:"check_in"`
	CheckOut  domain.DateStamp `json:"check_out"`
	domain.StayQuote
}

// BookingService prices stays and confirms reservations. It holds no
// per-session state and persists nothing.
type BookingService struct {
	src domain.ListingSource
	now func() time.Time
}

type BookingOption func(*BookingService)

func WithClock(now func() time.Time) BookingOption {
	return func(s *BookingService) { s.now = now }
}

func NewBookingService(src domain.ListingSource, opts ...BookingOption) *BookingService {
	s := &BookingService{src: src, now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Quote prices a stay at the listing's nightly rate. Missing or inverted
// dates give a zero quote rather than an error.
func (s *BookingService) Quote(ctx context.Context, listingID string, checkIn, checkOut *domain.DateStamp) (Quote, error) {
	l, err := s.src.GetListing(ctx, listingID)
	if err != nil {
		return Quote{}, err
	}
	sq, err := domain.QuoteStay(checkIn, checkOut, l.NightlyPrice)
	if err != nil {
		return Quote{}, fmt.Errorf("listing %s: %w", listingID, err)
	}
	observability.ObserveQuote(sq.Reservable())
	return Quote{
		ListingID:    l.ID,
		NightlyPrice: l.NightlyPrice,
		CheckIn:      checkIn,
		CheckOut:     checkOut,
		StayQuote:    sq,
		Reservable:   sq.Reservable(),
	}, nil
}

// Reserve confirms a stay of at least one night starting today or later.
func (s *BookingService) Reserve(ctx context.Context, listingID string, checkIn, checkOut domain.DateStamp) (Confirmation, error) {
	today := domain.DateStampOf(s.now())
	if checkIn.Before(today) {
		observability.ObserveReservation("past")
		return Confirmation{}, fmt.Errorf("%w: %s", domain.ErrCheckInInPast, checkIn)
	}
	q, err := s.Quote(ctx, listingID, &checkIn, &checkOut)
	if err != nil {
		return Confirmation{}, err
	}
	if !q.Reservable {
		observability.ObserveReservation("rejected")
		return Confirmation{}, domain.ErrNotReservable
	}

	c := Confirmation{
		Number:    uuid.NewString(),
		ListingID: listingID,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		StayQuote: q.StayQuote,
	}
	observability.ObserveReservation("confirmed")
	log.Info().
		Str("listing", listingID).
		Str("number", c.Number).
		Int("nights", c.Nights).
		Float64("total", c.Total).
		Msg("reservation confirmed")
	return c, nil
}
