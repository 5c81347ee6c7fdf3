//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"hotelcore/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustPeriod(t *testing.T, checkIn, checkOut time.Time) reservation.StayPeriod {
	t.Helper()
	p, err := reservation.NewStayPeriod(checkIn, checkOut)
	require.NoError(t, err)
	return p
}

func newPendingReservation(t *testing.T, period reservation.StayPeriod, totalCents, paidCents int64) *reservation.Reservation {
	t.Helper()
	res, err := reservation.NewReservation(
		period.CheckIn().Add(-48*time.Hour),
		uuid.New(), uuid.New(),
		period,
		2,
		reservation.MustMoney(totalCents), reservation.MustMoney(paidCents),
		"card", "",
	)
	require.NoError(t, err)
	return res
}

func TestStayPeriod(t *testing.T) {
	t.Run("check-out must be after check-in", func(t *testing.T) {
		_, err := reservation.NewStayPeriod(date(2026, 3, 12), date(2026, 3, 12))
		require.Error(t, err)

		_, err = reservation.NewStayPeriod(date(2026, 3, 12), date(2026, 3, 10))
		require.Error(t, err)
	})

	t.Run("endpoints are normalized to midnight UTC", func(t *testing.T) {
		p := mustPeriod(t,
			time.Date(2026, 3, 12, 15, 30, 0, 0, time.UTC),
			time.Date(2026, 3, 14, 9, 45, 0, 0, time.UTC),
		)
		assert.Equal(t, date(2026, 3, 12), p.CheckIn())
		assert.Equal(t, date(2026, 3, 14), p.CheckOut())
		assert.Equal(t, 2, p.Nights())
	})

	t.Run("half-open overlap", func(t *testing.T) {
		base := mustPeriod(t, date(2026, 3, 10), date(2026, 3, 15))

		cases := []struct {
			name     string
			other    reservation.StayPeriod
			overlaps bool
		}{
			{"identical ranges", mustPeriod(t, date(2026, 3, 10), date(2026, 3, 15)), true},
			{"contained range", mustPeriod(t, date(2026, 3, 11), date(2026, 3, 13)), true},
			{"partial overlap at start", mustPeriod(t, date(2026, 3, 8), date(2026, 3, 11)), true},
			{"partial overlap at end", mustPeriod(t, date(2026, 3, 14), date(2026, 3, 18)), true},
			{"single shared night", mustPeriod(t, date(2026, 3, 14), date(2026, 3, 15)), true},
			{"back to back before", mustPeriod(t, date(2026, 3, 7), date(2026, 3, 10)), false},
			{"back to back after", mustPeriod(t, date(2026, 3, 15), date(2026, 3, 18)), false},
			{"disjoint", mustPeriod(t, date(2026, 3, 20), date(2026, 3, 22)), false},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				assert.Equal(t, c.overlaps, base.Overlaps(c.other))
				assert.Equal(t, c.overlaps, c.other.Overlaps(base))
			})
		}
	})

	t.Run("StartsAfter compares dates only", func(t *testing.T) {
		p := mustPeriod(t, date(2026, 3, 12), date(2026, 3, 14))

		assert.True(t, p.StartsAfter(date(2026, 3, 11)))
		// Any instant on the check-in date counts as arrived.
		assert.False(t, p.StartsAfter(time.Date(2026, 3, 12, 0, 0, 1, 0, time.UTC)))
		assert.False(t, p.StartsAfter(date(2026, 3, 13)))
	})
}

func TestMoney(t *testing.T) {
	t.Run("rejects negative amounts", func(t *testing.T) {
		_, err := reservation.NewMoney(-1)
		require.Error(t, err)
	})

	t.Run("subtraction floors at zero", func(t *testing.T) {
		a := reservation.MustMoney(1000)
		b := reservation.MustMoney(2500)

		assert.Equal(t, int64(1500), b.Sub(a).Cents())
		assert.Equal(t, int64(0), a.Sub(b).Cents())
	})

	t.Run("comparison and addition", func(t *testing.T) {
		a := reservation.MustMoney(1000)
		b := reservation.MustMoney(2500)

		assert.True(t, b.GreaterThan(a))
		assert.False(t, a.GreaterThan(b))
		assert.False(t, a.GreaterThan(a))
		assert.Equal(t, int64(3500), a.Add(b).Cents())
		assert.True(t, reservation.MustMoney(0).IsZero())
	})
}

func TestStatusTransitions(t *testing.T) {
	all := []reservation.Status{
		reservation.StatusPending,
		reservation.StatusConfirmed,
		reservation.StatusCheckedIn,
		reservation.StatusCheckedOut,
		reservation.StatusCancelled,
	}

	allowed := map[reservation.Status][]reservation.Status{
		reservation.StatusPending:   {reservation.StatusConfirmed, reservation.StatusCheckedIn, reservation.StatusCancelled},
		reservation.StatusConfirmed: {reservation.StatusCheckedIn, reservation.StatusCancelled},
		reservation.StatusCheckedIn: {reservation.StatusCheckedOut},
	}

	for _, from := range all {
		for _, to := range all {
			expect := false
			for _, n := range allowed[from] {
				if n == to {
					expect = true
				}
			}
			assert.Equal(t, expect, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}

	t.Run("active and terminal partitions", func(t *testing.T) {
		assert.True(t, reservation.StatusPending.IsActive())
		assert.True(t, reservation.StatusConfirmed.IsActive())
		assert.True(t, reservation.StatusCheckedIn.IsActive())
		assert.False(t, reservation.StatusCheckedOut.IsActive())
		assert.False(t, reservation.StatusCancelled.IsActive())

		assert.True(t, reservation.StatusCheckedOut.IsTerminal())
		assert.True(t, reservation.StatusCancelled.IsTerminal())
		assert.False(t, reservation.StatusCheckedIn.IsTerminal())
	})

	t.Run("parse rejects unknown status", func(t *testing.T) {
		_, err := reservation.ParseStatus("archived")
		require.ErrorIs(t, err, reservation.ErrInvalidStatus)
	})
}

func TestNewReservation(t *testing.T) {
	period := mustPeriod(t, date(2026, 3, 12), date(2026, 3, 14))
	now := date(2026, 3, 10)

	t.Run("starts pending with payment state derived", func(t *testing.T) {
		res, err := reservation.NewReservation(now, uuid.New(), uuid.New(), period, 2,
			reservation.MustMoney(30000), reservation.MustMoney(10000), "card", "late arrival")
		require.NoError(t, err)

		assert.Equal(t, reservation.StatusPending, res.Status())
		assert.False(t, res.IsPaid())
		assert.Equal(t, int64(20000), res.RemainingBalance().Cents())
		require.NotNil(t, res.PaymentDate())
		assert.Nil(t, res.ActualCheckOut())
	})

	t.Run("no payment date while nothing is paid", func(t *testing.T) {
		res, err := reservation.NewReservation(now, uuid.New(), uuid.New(), period, 1,
			reservation.MustMoney(30000), reservation.MustMoney(0), "", "")
		require.NoError(t, err)
		assert.Nil(t, res.PaymentDate())
	})

	t.Run("fully paid", func(t *testing.T) {
		res, err := reservation.NewReservation(now, uuid.New(), uuid.New(), period, 1,
			reservation.MustMoney(30000), reservation.MustMoney(30000), "cash", "")
		require.NoError(t, err)
		assert.True(t, res.IsPaid())
		assert.Equal(t, int64(0), res.RemainingBalance().Cents())
	})

	t.Run("rejects overpayment", func(t *testing.T) {
		_, err := reservation.NewReservation(now, uuid.New(), uuid.New(), period, 1,
			reservation.MustMoney(1000), reservation.MustMoney(2000), "", "")
		require.ErrorIs(t, err, reservation.ErrOverpayment)
	})

	t.Run("requires at least one guest", func(t *testing.T) {
		_, err := reservation.NewReservation(now, uuid.New(), uuid.New(), period, 0,
			reservation.MustMoney(1000), reservation.MustMoney(0), "", "")
		require.ErrorIs(t, err, reservation.ErrNoGuests)
	})
}

func TestReservationLifecycle(t *testing.T) {
	period := mustPeriod(t, date(2026, 3, 12), date(2026, 3, 14))

	t.Run("pending to confirmed to checked in to checked out", func(t *testing.T) {
		res := newPendingReservation(t, period, 30000, 30000)
		now := date(2026, 3, 12)

		require.NoError(t, res.Confirm(now))
		assert.Equal(t, reservation.StatusConfirmed, res.Status())

		require.NoError(t, res.CheckIn(now))
		assert.Equal(t, reservation.StatusCheckedIn, res.Status())

		departure := now.Add(50 * time.Hour)
		require.NoError(t, res.CompleteCheckOut(departure))
		assert.Equal(t, reservation.StatusCheckedOut, res.Status())
		require.NotNil(t, res.ActualCheckOut())
		assert.Equal(t, departure, *res.ActualCheckOut())
	})

	t.Run("direct check-in from pending", func(t *testing.T) {
		res := newPendingReservation(t, period, 30000, 0)
		require.NoError(t, res.CheckIn(date(2026, 3, 12)))
		assert.Equal(t, reservation.StatusCheckedIn, res.Status())
	})

	t.Run("check-in before the booked date is rejected", func(t *testing.T) {
		res := newPendingReservation(t, period, 30000, 0)
		err := res.CheckIn(date(2026, 3, 11))
		require.ErrorIs(t, err, reservation.ErrCheckInTooEarly)
		assert.Equal(t, reservation.StatusPending, res.Status())
	})

	t.Run("late check-in is allowed", func(t *testing.T) {
		res := newPendingReservation(t, period, 30000, 0)
		require.NoError(t, res.CheckIn(date(2026, 3, 13)))
	})

	t.Run("cancel after check-in is rejected", func(t *testing.T) {
		res := newPendingReservation(t, period, 30000, 0)
		require.NoError(t, res.CheckIn(date(2026, 3, 12)))

		err := res.Cancel(date(2026, 3, 13))
		require.ErrorIs(t, err, reservation.ErrInvalidTransition)
	})

	t.Run("check-out without check-in is rejected", func(t *testing.T) {
		res := newPendingReservation(t, period, 30000, 0)
		err := res.CompleteCheckOut(date(2026, 3, 14))
		require.ErrorIs(t, err, reservation.ErrInvalidTransition)
		assert.Nil(t, res.ActualCheckOut())
	})

	t.Run("terminal states accept no transitions", func(t *testing.T) {
		res := newPendingReservation(t, period, 30000, 0)
		require.NoError(t, res.Cancel(date(2026, 3, 11)))

		assert.ErrorIs(t, res.Confirm(date(2026, 3, 11)), reservation.ErrInvalidTransition)
		assert.ErrorIs(t, res.CheckIn(date(2026, 3, 12)), reservation.ErrInvalidTransition)
		assert.ErrorIs(t, res.CompleteCheckOut(date(2026, 3, 14)), reservation.ErrInvalidTransition)
	})
}

func TestReservationAmend(t *testing.T) {
	period := mustPeriod(t, date(2026, 3, 12), date(2026, 3, 14))
	newPeriod := mustPeriod(t, date(2026, 3, 20), date(2026, 3, 23))
	now := date(2026, 3, 11)

	t.Run("amend updates fields and stamps payment date when settled", func(t *testing.T) {
		res := newPendingReservation(t, period, 30000, 0)
		require.Nil(t, res.PaymentDate())

		err := res.Amend(now, newPeriod, 3, reservation.MustMoney(60000), reservation.MustMoney(60000), "cash", "crib requested")
		require.NoError(t, err)

		assert.Equal(t, newPeriod, res.Period())
		assert.Equal(t, 3, res.NumberOfGuests())
		assert.True(t, res.IsPaid())
		require.NotNil(t, res.PaymentDate())
		assert.Equal(t, "crib requested", res.SpecialRequests())
		assert.Equal(t, reservation.StatusPending, res.Status())
	})

	t.Run("amend on a terminal reservation is rejected", func(t *testing.T) {
		res := newPendingReservation(t, period, 30000, 0)
		require.NoError(t, res.Cancel(now))

		err := res.Amend(now, newPeriod, 2, reservation.MustMoney(30000), reservation.MustMoney(0), "", "")
		require.ErrorIs(t, err, reservation.ErrTerminalState)
	})

	t.Run("amend validates amounts and guest count", func(t *testing.T) {
		res := newPendingReservation(t, period, 30000, 0)

		err := res.Amend(now, newPeriod, 0, reservation.MustMoney(30000), reservation.MustMoney(0), "", "")
		require.ErrorIs(t, err, reservation.ErrNoGuests)

		err = res.Amend(now, newPeriod, 2, reservation.MustMoney(1000), reservation.MustMoney(2000), "", "")
		require.ErrorIs(t, err, reservation.ErrOverpayment)
	})
}
