//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"hotelcore/internal/domain/guest"
	"hotelcore/internal/domain/reservation"
	"hotelcore/internal/domain/room"
	"hotelcore/internal/infra"
	"hotelcore/internal/pkg/clock"
	"hotelcore/internal/pkg/ptr"
	"hotelcore/internal/usecase/commands"
	"hotelcore/internal/usecase/shared"
	"hotelcore/internal/usecase/validator"
	"hotelcore/tests/common/builder"
	sharedmock "hotelcore/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	bookingNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	checkIn    = time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)
	checkOut   = time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
)

type reservationMocks struct {
	uow          *sharedmock.MockUnitOfWork
	tx           *sharedmock.MockTx
	reservations *sharedmock.MockReservationRepository
	guests       *sharedmock.MockGuestRepository
	rooms        *sharedmock.MockRoomRepository
	reads        *sharedmock.MockCommandReads
	clock        *clock.MockClock
}

func newReservationMocks(t *testing.T) (*reservationMocks, commands.ReservationCommands) {
	ctrl := gomock.NewController(t)
	m := &reservationMocks{
		uow:          sharedmock.NewMockUnitOfWork(ctrl),
		tx:           sharedmock.NewMockTx(ctrl),
		reservations: sharedmock.NewMockReservationRepository(ctrl),
		guests:       sharedmock.NewMockGuestRepository(ctrl),
		rooms:        sharedmock.NewMockRoomRepository(ctrl),
		reads:        sharedmock.NewMockCommandReads(ctrl),
		clock:        clock.NewMockClock(bookingNow),
	}

	m.tx.EXPECT().Reservations().Return(m.reservations).AnyTimes()
	m.tx.EXPECT().Guests().Return(m.guests).AnyTimes()
	m.tx.EXPECT().Rooms().Return(m.rooms).AnyTimes()
	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		},
	).AnyTimes()

	v := validator.NewReservationValidator(m.reads, m.clock)
	return m, commands.NewReservationCommands(m.uow, v, m.clock)
}

// expectValidInput wires the pre-flight reads to approve an input built with
// defaults from the reservation builder.
func (m *reservationMocks) expectValidInput(ctx context.Context, roomID uuid.UUID) {
	m.reads.EXPECT().RoomByID(ctx, roomID).Return(&shared.RoomSnapshot{
		ID:         roomID,
		Number:     "101",
		Capacity:   4,
		PriceCents: 15000,
	}, nil)
	m.reads.EXPECT().RoomHasOverlap(ctx, roomID, gomock.Any(), nil).Return(false, nil)
	m.reads.EXPECT().GuestHasActiveOverlap(ctx, gomock.Any(), gomock.Any()).Return(false, nil)
}

func guestFixture(t *testing.T, name, idNumber string) *guest.Guest {
	t.Helper()
	identity, err := guest.NewIdentityNumber(idNumber)
	require.NoError(t, err)
	return guest.ReconstructGuest(
		uuid.New(), name, identity, guest.ContactInfo{},
		true, 0, 0, bookingNow, bookingNow,
	)
}

func roomFixture(t *testing.T) *room.Room {
	t.Helper()
	rm, err := builder.NewRoomBuilder().BuildDomain()
	require.NoError(t, err)
	return rm
}

func pendingReservation(t *testing.T, paidCents int64) *reservation.Reservation {
	t.Helper()
	res, err := builder.NewReservationBuilder().
		WithNow(bookingNow).
		WithDates(checkIn, checkOut).
		WithAmounts(45000, paidCents).
		BuildDomain()
	require.NoError(t, err)
	return res
}

func checkedInReservation(t *testing.T, paidCents int64) *reservation.Reservation {
	t.Helper()
	res := pendingReservation(t, paidCents)
	require.NoError(t, res.CheckIn(checkIn.Add(14*time.Hour)))
	return res
}

func TestReservationCommands_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("books the stay and records guest links and visits", func(t *testing.T) {
		m, cmds := newReservationMocks(t)

		primary := guestFixture(t, "Alice Morgan", "12345678901")
		companion := guestFixture(t, "Ben Morgan", "98765432109")
		input := builder.NewReservationBuilder().
			WithNow(bookingNow).
			WithDates(checkIn, checkOut).
			WithAdditionalGuest(validator.GuestDetail{Name: "Ben Morgan", IdentityNumber: "98765432109"}).
			BuildInput()

		m.expectValidInput(ctx, input.RoomID)
		m.rooms.EXPECT().FindByIDForUpdate(ctx, input.RoomID).Return(roomFixture(t), nil)
		m.reservations.EXPECT().HasOverlap(ctx, input.RoomID, gomock.Any(), nil).Return(false, nil)

		var createdID uuid.UUID
		m.guests.EXPECT().UpsertByIdentityNumber(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, params shared.GuestUpsertParams) (*guest.Guest, error) {
				if params.IdentityNumber == primary.IdentityNumber() {
					return primary, nil
				}
				return companion, nil
			},
		).Times(2)
		m.reservations.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, res *reservation.Reservation) error {
				createdID = res.ID()
				assert.Equal(t, reservation.StatusPending, res.Status())
				assert.Equal(t, primary.ID(), res.PrimaryGuestID())
				return nil
			},
		)
		m.reservations.EXPECT().LinkGuest(ctx, gomock.Any(), primary.ID(), true).Return(nil)
		m.guests.EXPECT().RecordVisit(ctx, primary.ID(), int64(45000)).Return(nil)
		m.reservations.EXPECT().LinkGuest(ctx, gomock.Any(), companion.ID(), false).Return(nil)
		m.guests.EXPECT().RecordVisit(ctx, companion.ID(), int64(0)).Return(nil)

		id, err := cmds.Create(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, createdID, id)
	})

	t.Run("rejects invalid input with every violation listed", func(t *testing.T) {
		m, cmds := newReservationMocks(t)

		input := builder.NewReservationBuilder().
			WithNow(bookingNow).
			WithDates(checkIn, checkOut).
			WithNumberOfGuests(5).
			BuildInput()

		m.reads.EXPECT().RoomByID(ctx, input.RoomID).Return(&shared.RoomSnapshot{
			ID: input.RoomID, Number: "101", Capacity: 2, PriceCents: 15000,
		}, nil)
		m.reads.EXPECT().RoomHasOverlap(ctx, input.RoomID, gomock.Any(), nil).Return(false, nil)
		m.reads.EXPECT().GuestHasActiveOverlap(ctx, gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := cmds.Create(ctx, input)
		var vErr *commands.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Violations, "Room capacity (2) exceeded. Guests: 5")
	})

	t.Run("room disappearing before the lock", func(t *testing.T) {
		m, cmds := newReservationMocks(t)

		input := builder.NewReservationBuilder().
			WithNow(bookingNow).
			WithDates(checkIn, checkOut).
			BuildInput()

		m.expectValidInput(ctx, input.RoomID)
		m.rooms.EXPECT().FindByIDForUpdate(ctx, input.RoomID).
			Return(nil, infra.WrapRepoErr("room not found", nil, infra.KindNotFound))

		_, err := cmds.Create(ctx, input)
		assert.ErrorIs(t, err, commands.ErrRoomNotFound)
	})

	t.Run("overlap appearing between validation and the lock", func(t *testing.T) {
		m, cmds := newReservationMocks(t)

		input := builder.NewReservationBuilder().
			WithNow(bookingNow).
			WithDates(checkIn, checkOut).
			BuildInput()

		m.expectValidInput(ctx, input.RoomID)
		m.rooms.EXPECT().FindByIDForUpdate(ctx, input.RoomID).Return(roomFixture(t), nil)
		m.reservations.EXPECT().HasOverlap(ctx, input.RoomID, gomock.Any(), nil).Return(true, nil)

		_, err := cmds.Create(ctx, input)
		assert.ErrorIs(t, err, commands.ErrRoomConflict)
	})

	t.Run("exclusion constraint backstop surfaces as a conflict", func(t *testing.T) {
		m, cmds := newReservationMocks(t)

		primary := guestFixture(t, "Alice Morgan", "12345678901")
		input := builder.NewReservationBuilder().
			WithNow(bookingNow).
			WithDates(checkIn, checkOut).
			BuildInput()

		m.expectValidInput(ctx, input.RoomID)
		m.rooms.EXPECT().FindByIDForUpdate(ctx, input.RoomID).Return(roomFixture(t), nil)
		m.reservations.EXPECT().HasOverlap(ctx, input.RoomID, gomock.Any(), nil).Return(false, nil)
		m.guests.EXPECT().UpsertByIdentityNumber(ctx, gomock.Any()).Return(primary, nil)
		m.reservations.EXPECT().Create(ctx, gomock.Any()).
			Return(infra.WrapRepoErr("overlapping reservation", nil, infra.KindConflict))

		_, err := cmds.Create(ctx, input)
		assert.ErrorIs(t, err, commands.ErrRoomConflict)
	})
}

func TestReservationCommands_Validate(t *testing.T) {
	ctx := context.Background()

	t.Run("clean input passes without touching write repositories", func(t *testing.T) {
		m, cmds := newReservationMocks(t)
		input := builder.NewReservationBuilder().
			WithNow(bookingNow).
			WithDates(checkIn, checkOut).
			BuildInput()
		m.expectValidInput(ctx, input.RoomID)

		result, err := cmds.Validate(ctx, input)
		require.NoError(t, err)
		assert.True(t, result.IsValid)
		assert.Empty(t, result.Errors)
	})

	t.Run("reports violations without creating anything", func(t *testing.T) {
		m, cmds := newReservationMocks(t)
		input := builder.NewReservationBuilder().
			WithNow(bookingNow).
			WithDates(checkIn, checkOut).
			WithNumberOfGuests(5).
			BuildInput()

		m.reads.EXPECT().RoomByID(ctx, input.RoomID).Return(&shared.RoomSnapshot{
			ID: input.RoomID, Number: "101", Capacity: 2, PriceCents: 15000,
		}, nil)
		m.reads.EXPECT().RoomHasOverlap(ctx, input.RoomID, gomock.Any(), nil).Return(false, nil)
		m.reads.EXPECT().GuestHasActiveOverlap(ctx, gomock.Any(), gomock.Any()).Return(false, nil)

		result, err := cmds.Validate(ctx, input)
		require.NoError(t, err)
		assert.False(t, result.IsValid)
		assert.Contains(t, result.Errors, "Room capacity (2) exceeded. Guests: 5")
	})
}

func TestReservationCommands_Transitions(t *testing.T) {
	ctx := context.Background()
	resID := uuid.New()

	t.Run("confirm persists the new status", func(t *testing.T) {
		m, cmds := newReservationMocks(t)
		res := pendingReservation(t, 0)

		m.reservations.EXPECT().FindByID(ctx, resID).Return(res, nil)
		m.reservations.EXPECT().Update(ctx, res).DoAndReturn(
			func(_ context.Context, r *reservation.Reservation) error {
				assert.Equal(t, reservation.StatusConfirmed, r.Status())
				return nil
			},
		)

		require.NoError(t, cmds.Confirm(ctx, resID))
	})

	t.Run("confirm after check-in is an invalid transition", func(t *testing.T) {
		m, cmds := newReservationMocks(t)
		res := checkedInReservation(t, 0)

		m.reservations.EXPECT().FindByID(ctx, resID).Return(res, nil)

		err := cmds.Confirm(ctx, resID)
		assert.ErrorIs(t, err, commands.ErrInvalidTransition)
	})

	t.Run("cancel of a missing reservation", func(t *testing.T) {
		m, cmds := newReservationMocks(t)

		m.reservations.EXPECT().FindByID(ctx, resID).
			Return(nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound))

		err := cmds.Cancel(ctx, resID)
		assert.ErrorIs(t, err, commands.ErrReservationNotFound)
	})
}

func TestReservationCommands_CheckIn(t *testing.T) {
	ctx := context.Background()
	resID := uuid.New()

	t.Run("marks the room occupied and reactivates the guests", func(t *testing.T) {
		m, cmds := newReservationMocks(t)
		m.clock.Set(checkIn.Add(14 * time.Hour))

		res := pendingReservation(t, 0)
		rm := roomFixture(t)

		m.reservations.EXPECT().FindByID(ctx, resID).Return(res, nil)
		m.rooms.EXPECT().FindByIDForUpdate(ctx, res.RoomID()).Return(rm, nil)
		m.reservations.EXPECT().Update(ctx, res).Return(nil)
		m.rooms.EXPECT().Update(ctx, rm).DoAndReturn(
			func(_ context.Context, r *room.Room) error {
				assert.Equal(t, room.StatusOccupied, r.Status())
				return nil
			},
		)
		m.guests.EXPECT().ReactivateByReservation(ctx, res.ID()).Return(nil)

		require.NoError(t, cmds.CheckIn(ctx, resID))
		assert.Equal(t, reservation.StatusCheckedIn, res.Status())
	})

	t.Run("before the booked date", func(t *testing.T) {
		m, cmds := newReservationMocks(t)
		m.clock.Set(checkIn.AddDate(0, 0, -1))

		res := pendingReservation(t, 0)
		m.reservations.EXPECT().FindByID(ctx, resID).Return(res, nil)

		err := cmds.CheckIn(ctx, resID)
		assert.ErrorIs(t, err, commands.ErrCheckInTooEarly)
		assert.Equal(t, reservation.StatusPending, res.Status())
	})
}

func TestReservationCommands_CheckOut(t *testing.T) {
	ctx := context.Background()
	resID := uuid.New()
	departure := checkOut.Add(10 * time.Hour)

	t.Run("outstanding balance blocks checkout without force", func(t *testing.T) {
		m, cmds := newReservationMocks(t)
		m.clock.Set(departure)

		res := checkedInReservation(t, 15000)
		m.reservations.EXPECT().FindByID(ctx, resID).Return(res, nil)

		result, err := cmds.CheckOut(ctx, resID, false)
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.True(t, result.RequiresPayment)
		assert.Equal(t, int64(30000), result.RemainingCents)
		assert.Equal(t, "Payment required: 30000 cents outstanding", result.Message)
		assert.Equal(t, reservation.StatusCheckedIn, res.Status())
	})

	t.Run("settled balance checks out and sends the room to cleaning", func(t *testing.T) {
		m, cmds := newReservationMocks(t)
		m.clock.Set(departure)

		res := checkedInReservation(t, 45000)
		rm := roomFixture(t)

		m.reservations.EXPECT().FindByID(ctx, resID).Return(res, nil)
		m.rooms.EXPECT().FindByIDForUpdate(ctx, res.RoomID()).Return(rm, nil)
		m.reservations.EXPECT().Update(ctx, res).Return(nil)
		m.rooms.EXPECT().Update(ctx, rm).DoAndReturn(
			func(_ context.Context, r *room.Room) error {
				assert.Equal(t, room.StatusCleaning, r.Status())
				return nil
			},
		)

		result, err := cmds.CheckOut(ctx, resID, false)
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, "Checked out successfully", result.Message)
		assert.Equal(t, reservation.StatusCheckedOut, res.Status())
		require.NotNil(t, res.ActualCheckOut())
		assert.Equal(t, departure, *res.ActualCheckOut())
	})

	t.Run("force overrides the payment gate", func(t *testing.T) {
		m, cmds := newReservationMocks(t)
		m.clock.Set(departure)

		res := checkedInReservation(t, 0)
		rm := roomFixture(t)

		m.reservations.EXPECT().FindByID(ctx, resID).Return(res, nil)
		m.rooms.EXPECT().FindByIDForUpdate(ctx, res.RoomID()).Return(rm, nil)
		m.reservations.EXPECT().Update(ctx, res).Return(nil)
		m.rooms.EXPECT().Update(ctx, rm).Return(nil)

		result, err := cmds.CheckOut(ctx, resID, true)
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, reservation.StatusCheckedOut, res.Status())
	})

	t.Run("without a prior check-in", func(t *testing.T) {
		m, cmds := newReservationMocks(t)
		m.clock.Set(departure)

		res := pendingReservation(t, 45000)
		m.reservations.EXPECT().FindByID(ctx, resID).Return(res, nil)

		_, err := cmds.CheckOut(ctx, resID, false)
		assert.ErrorIs(t, err, commands.ErrInvalidTransition)
	})

	t.Run("unpaid pending stay is an invalid transition, not a payment demand", func(t *testing.T) {
		m, cmds := newReservationMocks(t)
		m.clock.Set(departure)

		res := pendingReservation(t, 0)
		m.reservations.EXPECT().FindByID(ctx, resID).Return(res, nil)

		result, err := cmds.CheckOut(ctx, resID, false)
		assert.ErrorIs(t, err, commands.ErrInvalidTransition)
		assert.Nil(t, result)
		assert.Equal(t, reservation.StatusPending, res.Status())
	})

	t.Run("repeating a forced checkout fails on status, not payment", func(t *testing.T) {
		m, cmds := newReservationMocks(t)
		m.clock.Set(departure)

		res := checkedInReservation(t, 0)
		require.NoError(t, res.CompleteCheckOut(departure))

		m.reservations.EXPECT().FindByID(ctx, resID).Return(res, nil)

		result, err := cmds.CheckOut(ctx, resID, false)
		assert.ErrorIs(t, err, commands.ErrInvalidTransition)
		assert.Nil(t, result)
	})
}

func TestReservationCommands_Update(t *testing.T) {
	ctx := context.Background()
	resID := uuid.New()

	t.Run("date change rechecks availability excluding itself", func(t *testing.T) {
		m, cmds := newReservationMocks(t)
		res := pendingReservation(t, 0)

		m.reservations.EXPECT().FindByID(ctx, resID).Return(res, nil)
		m.rooms.EXPECT().FindByIDForUpdate(ctx, res.RoomID()).Return(roomFixture(t), nil)
		excludeID := res.ID()
		m.reservations.EXPECT().HasOverlap(ctx, res.RoomID(), gomock.Any(), &excludeID).Return(false, nil)
		m.reservations.EXPECT().Update(ctx, res).Return(nil)

		err := cmds.Update(ctx, resID, commands.UpdateReservationInput{
			CheckIn:          checkIn.AddDate(0, 0, 1),
			CheckOut:         checkOut.AddDate(0, 0, 1),
			NumberOfGuests:   2,
			TotalAmountCents: 60000,
			PaidAmountCents:  60000,
			PaymentMethod:    ptr.To("cash"),
		})
		require.NoError(t, err)
		assert.True(t, res.IsPaid())
		assert.Equal(t, "cash", res.PaymentMethod())
		require.NotNil(t, res.PaymentDate())
	})

	t.Run("omitted payment method keeps the stored one", func(t *testing.T) {
		m, cmds := newReservationMocks(t)
		res := pendingReservation(t, 0)

		m.reservations.EXPECT().FindByID(ctx, resID).Return(res, nil)
		m.rooms.EXPECT().FindByIDForUpdate(ctx, res.RoomID()).Return(roomFixture(t), nil)
		excludeID := res.ID()
		m.reservations.EXPECT().HasOverlap(ctx, res.RoomID(), gomock.Any(), &excludeID).Return(false, nil)
		m.reservations.EXPECT().Update(ctx, res).Return(nil)

		stored := res.PaymentMethod()
		err := cmds.Update(ctx, resID, commands.UpdateReservationInput{
			CheckIn:          checkIn,
			CheckOut:         checkOut,
			NumberOfGuests:   1,
			TotalAmountCents: 45000,
		})
		require.NoError(t, err)
		assert.Equal(t, stored, res.PaymentMethod())
	})

	t.Run("conflicting new dates", func(t *testing.T) {
		m, cmds := newReservationMocks(t)
		res := pendingReservation(t, 0)

		m.reservations.EXPECT().FindByID(ctx, resID).Return(res, nil)
		m.rooms.EXPECT().FindByIDForUpdate(ctx, res.RoomID()).Return(roomFixture(t), nil)
		excludeID := res.ID()
		m.reservations.EXPECT().HasOverlap(ctx, res.RoomID(), gomock.Any(), &excludeID).Return(true, nil)

		err := cmds.Update(ctx, resID, commands.UpdateReservationInput{
			CheckIn:          checkIn,
			CheckOut:         checkOut,
			NumberOfGuests:   1,
			TotalAmountCents: 45000,
			PaymentMethod:    ptr.To("card"),
		})
		assert.ErrorIs(t, err, commands.ErrRoomConflict)
	})

	t.Run("cancelled reservations cannot be amended", func(t *testing.T) {
		m, cmds := newReservationMocks(t)
		res := pendingReservation(t, 0)
		require.NoError(t, res.Cancel(bookingNow))

		m.reservations.EXPECT().FindByID(ctx, resID).Return(res, nil)
		m.rooms.EXPECT().FindByIDForUpdate(ctx, res.RoomID()).Return(roomFixture(t), nil)
		excludeID := res.ID()
		m.reservations.EXPECT().HasOverlap(ctx, res.RoomID(), gomock.Any(), &excludeID).Return(false, nil)

		err := cmds.Update(ctx, resID, commands.UpdateReservationInput{
			CheckIn:          checkIn,
			CheckOut:         checkOut,
			NumberOfGuests:   1,
			TotalAmountCents: 45000,
			PaymentMethod:    ptr.To("card"),
		})
		assert.ErrorIs(t, err, commands.ErrTerminalReservation)
	})
}

func TestReservationCommands_Delete(t *testing.T) {
	ctx := context.Background()
	resID := uuid.New()

	t.Run("removes the reservation", func(t *testing.T) {
		m, cmds := newReservationMocks(t)
		m.reservations.EXPECT().Delete(ctx, resID).Return(nil)
		require.NoError(t, cmds.Delete(ctx, resID))
	})

	t.Run("unknown id", func(t *testing.T) {
		m, cmds := newReservationMocks(t)
		m.reservations.EXPECT().Delete(ctx, resID).
			Return(infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound))
		assert.ErrorIs(t, cmds.Delete(ctx, resID), commands.ErrReservationNotFound)
	})
}
