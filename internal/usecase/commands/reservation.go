package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hotelcore/internal/domain/guest"
	"hotelcore/internal/domain/reservation"
	"hotelcore/internal/infra"
	"hotelcore/internal/pkg/clock"
	"hotelcore/internal/pkg/errs"
	"hotelcore/internal/pkg/patch"
	"hotelcore/internal/usecase/shared"
	"hotelcore/internal/usecase/validator"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound     = errs.New("reservation not found")
	ErrRoomNotFound            = errs.New("room not found")
	ErrRoomConflict            = errs.New("room is not available for selected dates")
	ErrInvalidTransition       = errs.New("invalid status transition")
	ErrCheckInTooEarly         = errs.New("cannot check in before reservation date")
	ErrTerminalReservation     = errs.New("reservation is in a terminal state")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// ValidationError carries every rule violation from the pre-flight checks so
// clients see the whole list in one response.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Violations, "; ")
}

// CheckOutResult reports the outcome of a checkout attempt. An unpaid balance
// without force is a negative outcome, not an error: nothing changes and the
// caller is told what remains to be paid.
type CheckOutResult struct {
	Success         bool
	Message         string
	RequiresPayment bool
	RemainingCents  int64
}

type UpdateReservationInput struct {
	CheckIn          time.Time
	CheckOut         time.Time
	NumberOfGuests   int
	TotalAmountCents int64
	PaidAmountCents  int64
	// Nil leaves the stored value untouched.
	PaymentMethod   *string
	SpecialRequests *string
}

type ReservationCommands interface {
	// Validate runs the booking pre-flight checks without reserving anything.
	Validate(ctx context.Context, input validator.CreateReservationInput) (validator.Result, error)
	Create(ctx context.Context, input validator.CreateReservationInput) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateReservationInput) error
	Delete(ctx context.Context, id uuid.UUID) error
	Confirm(ctx context.Context, id uuid.UUID) error
	Cancel(ctx context.Context, id uuid.UUID) error
	CheckIn(ctx context.Context, id uuid.UUID) error
	CheckOut(ctx context.Context, id uuid.UUID, force bool) (*CheckOutResult, error)
}

type reservationCommandsImpl struct {
	uow       shared.UnitOfWork
	validator *validator.ReservationValidator
	clock     clock.Clock
}

func NewReservationCommands(uow shared.UnitOfWork, v *validator.ReservationValidator, clk clock.Clock) ReservationCommands {
	return &reservationCommandsImpl{
		uow:       uow,
		validator: v,
		clock:     clk,
	}
}

// Create books a stay. The pre-flight validation runs outside the
// transaction; the room lock and the in-transaction overlap recheck close
// the race window between validation and commit, and the storage exclusion
// constraint backstops both.
func (r *reservationCommandsImpl) Validate(ctx context.Context, input validator.CreateReservationInput) (validator.Result, error) {
	result, err := r.validator.ValidateCreate(ctx, input)
	if err != nil {
		return validator.Result{}, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return result, nil
}

func (r *reservationCommandsImpl) Create(ctx context.Context, input validator.CreateReservationInput) (uuid.UUID, error) {
	result, err := r.validator.ValidateCreate(ctx, input)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !result.IsValid {
		return uuid.Nil, &ValidationError{Violations: result.Errors}
	}

	period, err := reservation.NewStayPeriod(input.CheckIn, input.CheckOut)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}
	totalAmount, err := reservation.NewMoney(input.TotalAmountCents)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}
	paidAmount, err := reservation.NewMoney(input.PaidAmountCents)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	var reservationID uuid.UUID
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Serialize concurrent bookings of this room on its row lock.
		if _, err := tx.Rooms().FindByIDForUpdate(ctx, input.RoomID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRoomNotFound
			}
			return err
		}

		// Authoritative recheck under the lock.
		overlap, err := tx.Reservations().HasOverlap(ctx, input.RoomID, period, nil)
		if err != nil {
			return err
		}
		if overlap {
			return ErrRoomConflict
		}

		primary, err := upsertGuest(ctx, tx, input.PrimaryGuest)
		if err != nil {
			return err
		}

		res, err := reservation.NewReservation(
			r.clock.Now(),
			input.RoomID,
			primary.ID(),
			period,
			input.NumberOfGuests,
			totalAmount,
			paidAmount,
			input.PaymentMethod,
			input.SpecialRequests,
		)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		if err := tx.Reservations().Create(ctx, res); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return ErrRoomConflict
			}
			return err
		}

		if err := tx.Reservations().LinkGuest(ctx, res.ID(), primary.ID(), true); err != nil {
			return err
		}
		// Spend is attributed to the primary guest only.
		if err := tx.Guests().RecordVisit(ctx, primary.ID(), totalAmount.Cents()); err != nil {
			return err
		}

		for _, detail := range input.AdditionalGuests {
			companion, err := upsertGuest(ctx, tx, detail)
			if err != nil {
				return err
			}
			if err := tx.Reservations().LinkGuest(ctx, res.ID(), companion.ID(), false); err != nil {
				return err
			}
			if err := tx.Guests().RecordVisit(ctx, companion.ID(), 0); err != nil {
				return err
			}
		}

		reservationID = res.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	return reservationID, nil
}

func upsertGuest(ctx context.Context, tx shared.Tx, detail validator.GuestDetail) (*guest.Guest, error) {
	identity, err := guest.NewIdentityNumber(detail.IdentityNumber)
	if err != nil {
		return nil, errs.Mark(fmt.Errorf("guest %q: %w", detail.Name, err), ErrDomainValidation)
	}

	return tx.Guests().UpsertByIdentityNumber(ctx, shared.GuestUpsertParams{
		Name:           detail.Name,
		IdentityNumber: identity,
		Contact: guest.ContactInfo{
			Email:   detail.Email,
			Phone:   detail.Phone,
			Address: detail.Address,
		},
	})
}

// Update is the administrative edit path: dates, counts, amounts and notes,
// never status. A date change rechecks availability with the reservation
// itself excluded from the overlap scan.
func (r *reservationCommandsImpl) Update(ctx context.Context, id uuid.UUID, input UpdateReservationInput) error {
	period, err := reservation.NewStayPeriod(input.CheckIn, input.CheckOut)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}
	totalAmount, err := reservation.NewMoney(input.TotalAmountCents)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}
	paidAmount, err := reservation.NewMoney(input.PaidAmountCents)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := findReservation(ctx, tx, id)
		if err != nil {
			return err
		}

		if _, err := tx.Rooms().FindByIDForUpdate(ctx, res.RoomID()); err != nil {
			return err
		}

		excludeID := res.ID()
		overlap, err := tx.Reservations().HasOverlap(ctx, res.RoomID(), period, &excludeID)
		if err != nil {
			return err
		}
		if overlap {
			return ErrRoomConflict
		}

		if err := res.Amend(
			r.clock.Now(),
			period,
			input.NumberOfGuests,
			totalAmount,
			paidAmount,
			patch.Coalesce(input.PaymentMethod, res.PaymentMethod()),
			patch.Coalesce(input.SpecialRequests, res.SpecialRequests()),
		); err != nil {
			return markAmendErr(err)
		}

		return updateReservation(ctx, tx, res)
	})
}

func (r *reservationCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		err := tx.Reservations().Delete(ctx, id)
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrReservationNotFound
		}
		return err
	})
}

func (r *reservationCommandsImpl) Confirm(ctx context.Context, id uuid.UUID) error {
	return r.transition(ctx, id, func(res *reservation.Reservation) error {
		return res.Confirm(r.clock.Now())
	})
}

func (r *reservationCommandsImpl) Cancel(ctx context.Context, id uuid.UUID) error {
	return r.transition(ctx, id, func(res *reservation.Reservation) error {
		return res.Cancel(r.clock.Now())
	})
}

// CheckIn moves the stay to checked_in, marks the room occupied and flips
// every guest on the stay back to active.
func (r *reservationCommandsImpl) CheckIn(ctx context.Context, id uuid.UUID) error {
	now := r.clock.Now()

	return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := findReservation(ctx, tx, id)
		if err != nil {
			return err
		}

		if err := res.CheckIn(now); err != nil {
			return markTransitionErr(err)
		}

		rm, err := tx.Rooms().FindByIDForUpdate(ctx, res.RoomID())
		if err != nil {
			return err
		}
		rm.MarkOccupied(now)

		if err := updateReservation(ctx, tx, res); err != nil {
			return err
		}
		if err := tx.Rooms().Update(ctx, rm); err != nil {
			return err
		}
		return tx.Guests().ReactivateByReservation(ctx, res.ID())
	})
}

// CheckOut is payment-gated: an outstanding balance blocks it unless force is
// set. The blocked case returns a result, not an error, and leaves the
// reservation untouched.
func (r *reservationCommandsImpl) CheckOut(ctx context.Context, id uuid.UUID, force bool) (*CheckOutResult, error) {
	now := r.clock.Now()

	var result *CheckOutResult
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := findReservation(ctx, tx, id)
		if err != nil {
			return err
		}

		// Status gates first: only a checked-in stay can be checked out.
		// The payment question does not arise for anything else.
		if res.Status() != reservation.StatusCheckedIn {
			return fmt.Errorf("%w: %s -> %s",
				ErrInvalidTransition, res.Status(), reservation.StatusCheckedOut)
		}

		if !force && !res.IsPaid() {
			remaining := res.RemainingBalance().Cents()
			result = &CheckOutResult{
				Success:         false,
				Message:         fmt.Sprintf("Payment required: %d cents outstanding", remaining),
				RequiresPayment: true,
				RemainingCents:  remaining,
			}
			return nil
		}

		if err := res.CompleteCheckOut(now); err != nil {
			return markTransitionErr(err)
		}

		rm, err := tx.Rooms().FindByIDForUpdate(ctx, res.RoomID())
		if err != nil {
			return err
		}
		rm.MarkCleaning(now)

		if err := updateReservation(ctx, tx, res); err != nil {
			return err
		}
		if err := tx.Rooms().Update(ctx, rm); err != nil {
			return err
		}

		result = &CheckOutResult{
			Success: true,
			Message: "Checked out successfully",
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *reservationCommandsImpl) transition(ctx context.Context, id uuid.UUID, apply func(*reservation.Reservation) error) error {
	return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := findReservation(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := apply(res); err != nil {
			return markTransitionErr(err)
		}
		return updateReservation(ctx, tx, res)
	})
}

func findReservation(ctx context.Context, tx shared.Tx, id uuid.UUID) (*reservation.Reservation, error) {
	res, err := tx.Reservations().FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return res, nil
}

func updateReservation(ctx context.Context, tx shared.Tx, res *reservation.Reservation) error {
	err := tx.Reservations().Update(ctx, res)
	if infra.IsKind(err, infra.KindConflict) {
		return ErrRoomConflict
	}
	return err
}

func markTransitionErr(err error) error {
	switch {
	case errors.Is(err, reservation.ErrCheckInTooEarly):
		return errs.Mark(err, ErrCheckInTooEarly)
	default:
		return errs.Mark(err, ErrInvalidTransition)
	}
}

func markAmendErr(err error) error {
	if errors.Is(err, reservation.ErrTerminalState) {
		return errs.Mark(err, ErrTerminalReservation)
	}
	return errs.Mark(err, ErrDomainValidation)
}
