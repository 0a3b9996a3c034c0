package domain_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"listing_hub/internal/domain"
)

func day(t *testing.T, s string) *domain.DateStamp {
	t.Helper()
	d, err := domain.ParseDateStamp(s)
	require.NoError(t, err)
	return &d
}

func TestComputeStay_ThreeNights(t *testing.T) {
	q := domain.ComputeStay(day(t, "2025-06-01"), day(t, "2025-06-04"), 100)
	assert.Equal(t, domain.StayQuote{Nights: 3, Total: 300}, q)
	assert.True(t, q.Reservable())
}

func TestComputeStay_CheckOutBeforeCheckIn(t *testing.T) {
	q := domain.ComputeStay(day(t, "2025-06-04"), day(t, "2025-06-01"), 100)
	assert.Equal(t, domain.StayQuote{}, q)
	assert.False(t, q.Reservable())
}

func TestComputeStay_SameDay(t *testing.T) {
	q := domain.ComputeStay(day(t, "2025-06-01"), day(t, "2025-06-01"), 250)
	assert.Equal(t, domain.StayQuote{}, q)
}

func TestComputeStay_MissingDates(t *testing.T) {
	in := day(t, "2025-06-01")
	out := day(t, "2025-06-05")
	assert.Equal(t, domain.StayQuote{}, domain.ComputeStay(nil, out, 100))
	assert.Equal(t, domain.StayQuote{}, domain.ComputeStay(in, nil, 100))
	assert.Equal(t, domain.StayQuote{}, domain.ComputeStay(nil, nil, 100))
}

func TestComputeStay_NightsMatchDayDifference(t *testing.T) {
	start := domain.NewDateStamp(2025, time.January, 1)
	for _, price := range []float64{0, 1, 99.5, 500} {
		for n := 1; n <= 400; n += 37 {
			end := start.AddDays(n)
			q := domain.ComputeStay(&start, &end, price)
			require.Equal(t, n, q.Nights, "n=%d", n)
			require.Equal(t, float64(n)*price, q.Total)
		}
	}
}

func TestComputeStay_InvalidRangeIgnoresPrice(t *testing.T) {
	a := domain.NewDateStamp(2025, time.March, 10)
	for _, off := range []int{0, -1, -30} {
		b := a.AddDays(off)
		for _, p := range []float64{0, 100, -5} {
			assert.Equal(t, domain.StayQuote{}, domain.ComputeStay(&a, &b, p))
		}
	}
}

func TestComputeStay_AcrossDSTAndMonthEnd(t *testing.T) {
	q := domain.ComputeStay(day(t, "2025-03-29"), day(t, "2025-04-02"), 10)
	assert.Equal(t, 4, q.Nights)
	q = domain.ComputeStay(day(t, "2024-02-28"), day(t, "2024-03-01"), 10)
	assert.Equal(t, 2, q.Nights)
}

func TestComputeStay_CenturiesApart(t *testing.T) {
	q := domain.ComputeStay(day(t, "1500-01-01"), day(t, "2025-06-01"), 1)
	assert.Equal(t, 191904, q.Nights)
	assert.Equal(t, 191904.0, q.Total)

	first := domain.NewDateStamp(1, time.January, 1)
	for _, n := range []int{110000, 300 * 366, 3652058} {
		end := first.AddDays(n)
		require.Equal(t, n, domain.ComputeStay(&first, &end, 2).Nights, "n=%d", n)
	}
	q = domain.ComputeStay(day(t, "0000-01-01"), day(t, "9999-12-31"), 0)
	assert.Equal(t, 3652424, q.Nights)
}

func TestQuoteStay_RejectsBadPrice(t *testing.T) {
	for _, p := range []float64{-1, math.NaN(), math.Inf(1)} {
		_, err := domain.QuoteStay(day(t, "2025-06-01"), day(t, "2025-06-04"), p)
		assert.True(t, errors.Is(err, domain.ErrInvalidPrice), "price %v", p)
	}
	q, err := domain.QuoteStay(day(t, "2025-06-01"), day(t, "2025-06-04"), 0)
	require.NoError(t, err)
	assert.Equal(t, 3, q.Nights)
	assert.Zero(t, q.Total)
}

func TestParseDateStamp(t *testing.T) {
	d, err := domain.ParseDateStamp("2025-06-01")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-01", d.String())

	_, err = domain.ParseDateStamp("06/01/2025")
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
	_, err = domain.ParseDateStamp("")
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestDateStampOf_DropsTimeOfDay(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	d := domain.DateStampOf(time.Date(2025, time.June, 1, 23, 59, 0, 0, loc))
	assert.Equal(t, "2025-06-01", d.String())
	assert.True(t, d.Equal(domain.NewDateStamp(2025, time.June, 1)))
}

func TestDateStamp_Text(t *testing.T) {
	var d domain.DateStamp
	require.NoError(t, d.UnmarshalText([]byte("2025-12-31")))
	b, err := d.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "2025-12-31", string(b))
	assert.Error(t, d.UnmarshalText([]byte("2025-13-01")))
}
