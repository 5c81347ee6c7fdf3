package reservation

import (
	"errors"
	"fmt"
	"time"
)

// StayPeriod is a half-open date range [checkIn, checkOut) with date-only
// semantics. Both endpoints are normalized to midnight UTC so that overlap
// arithmetic is independent of the caller's timezone.
type StayPeriod struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayPeriod(checkIn, checkOut time.Time) (StayPeriod, error) {
	in := TruncateToDate(checkIn)
	out := TruncateToDate(checkOut)

	if !in.Before(out) {
		return StayPeriod{}, errors.New("check-out date must be after check-in date")
	}

	return StayPeriod{checkIn: in, checkOut: out}, nil
}

// TruncateToDate drops the time-of-day component and pins the result to UTC.
func TruncateToDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

func (p StayPeriod) CheckIn() time.Time {
	return p.checkIn
}

func (p StayPeriod) CheckOut() time.Time {
	return p.checkOut
}

func (p StayPeriod) Nights() int {
	return int(p.checkOut.Sub(p.checkIn) / (24 * time.Hour))
}

// Overlaps applies the half-open intersection rule: [a,b) and [c,d) conflict
// iff a < d && c < b. Back-to-back stays sharing a date do not overlap.
func (p StayPeriod) Overlaps(other StayPeriod) bool {
	return p.checkIn.Before(other.checkOut) && other.checkIn.Before(p.checkOut)
}

// StartsAfter reports whether the stay begins strictly after the given
// instant's date. Used to reject premature check-in.
func (p StayPeriod) StartsAfter(now time.Time) bool {
	return p.checkIn.After(TruncateToDate(now))
}

// StartsBefore reports whether the stay begins strictly before the given
// instant's date. Used to reject past-dated bookings.
func (p StayPeriod) StartsBefore(now time.Time) bool {
	return p.checkIn.Before(TruncateToDate(now))
}

func (p StayPeriod) String() string {
	return fmt.Sprintf("[%s,%s)", p.checkIn.Format("2006-01-02"), p.checkOut.Format("2006-01-02"))
}

type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errors.New("money cannot be negative")
	}
	return Money{cents: cents}, nil
}

func MustMoney(cents int64) Money {
	m, err := NewMoney(cents)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// Sub floors at zero; balances never go negative.
func (m Money) Sub(other Money) Money {
	remaining := m.cents - other.cents
	if remaining < 0 {
		remaining = 0
	}
	return Money{cents: remaining}
}

func (m Money) GreaterThan(other Money) bool {
	return m.cents > other.cents
}

func (m Money) IsZero() bool {
	return m.cents == 0
}
