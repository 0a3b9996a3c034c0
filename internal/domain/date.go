package domain

import (
	"fmt"
	"time"
)

const (
	DateLayout    = "2006-01-02"
	secondsPerDay = 24 * 60 * 60
)

// DateStamp is a calendar day with no time-of-day component. The zero value
// is 0001-01-01.
type DateStamp struct{ t time.Time }

func NewDateStamp(year int, month time.Month, day int) DateStamp {
	return DateStamp{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateStampOf truncates t to its calendar day in t's own location.
func DateStampOf(t time.Time) DateStamp {
	return NewDateStamp(t.Year(), t.Month(), t.Day())
}

func ParseDateStamp(s string) (DateStamp, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return DateStamp{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return DateStamp{t: t}, nil
}

func (d DateStamp) Time() time.Time { return d.t }
func (d DateStamp) Before(o DateStamp) bool { return d.t.Before(o.t) }
func (d DateStamp) After(o DateStamp) bool { return d.t.After(o.t) }
func (d DateStamp) Equal(o DateStamp) bool { return d.t.Equal(o.t) }
func (d DateStamp) AddDays(n int) DateStamp { return DateStamp{t: d.t.AddDate(0, 0, n)} }
func (d DateStamp) String() string { return d.t.Format(DateLayout) }

// Sub returns d-o in days. It avoids time.Duration, which overflows for spans
// longer than about 292 years.
func (d DateStamp) Sub(o DateStamp) float64 {
	return float64(d.t.Unix()-o.t.Unix()) / secondsPerDay
}

func (d DateStamp) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *DateStamp) UnmarshalText(b []byte) error {
	v, err := ParseDateStamp(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
