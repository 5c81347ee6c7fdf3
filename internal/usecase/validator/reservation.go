package validator

import (
	"context"
	"fmt"
	"time"

	"hotelcore/internal/domain/reservation"
	"hotelcore/internal/infra"
	"hotelcore/internal/pkg/clock"
	"hotelcore/internal/usecase/shared"

	"github.com/google/uuid"
)

const identityNumberLength = 11

// Result accumulates every violation found in one pass so the caller can
// report all of them at once instead of failing on the first.
type Result struct {
	IsValid bool
	Errors  []string
}

type GuestDetail struct {
	Name           string
	IdentityNumber string
	Email          string
	Phone          string
	Address        string
}

type CreateReservationInput struct {
	RoomID           uuid.UUID
	CheckIn          time.Time
	CheckOut         time.Time
	NumberOfGuests   int
	PrimaryGuest     GuestDetail
	AdditionalGuests []GuestDetail
	TotalAmountCents int64
	PaidAmountCents  int64
	PaymentMethod    string
	SpecialRequests  string
}

// ReservationValidator runs the pre-flight checks for booking requests. Its
// availability answers are advisory: the booking transaction repeats them
// under the room lock before committing.
type ReservationValidator struct {
	reads shared.CommandReads
	clock clock.Clock
}

func NewReservationValidator(reads shared.CommandReads, clk clock.Clock) *ReservationValidator {
	return &ReservationValidator{reads: reads, clock: clk}
}

// ValidateCreate returns a Result describing every rule violation in the
// request. The error return is reserved for infrastructure failures.
func (v *ReservationValidator) ValidateCreate(ctx context.Context, input CreateReservationInput) (Result, error) {
	var errors []string
	now := v.clock.Now()

	// Date validation
	period, periodErr := reservation.NewStayPeriod(input.CheckIn, input.CheckOut)
	if periodErr != nil {
		errors = append(errors, "Check-out date must be after check-in date")
	}
	if reservation.TruncateToDate(input.CheckIn).Before(reservation.TruncateToDate(now)) {
		errors = append(errors, "Check-in date cannot be in the past")
	}

	// Room validation
	room, err := v.reads.RoomByID(ctx, input.RoomID)
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		errors = append(errors, "Room not found")
	case err != nil:
		return Result{}, err
	default:
		if room.Capacity < input.NumberOfGuests {
			errors = append(errors, fmt.Sprintf("Room capacity (%d) exceeded. Guests: %d", room.Capacity, input.NumberOfGuests))
		}
		if periodErr == nil {
			overlap, err := v.reads.RoomHasOverlap(ctx, input.RoomID, period, nil)
			if err != nil {
				return Result{}, err
			}
			if overlap {
				errors = append(errors, "Room is not available for selected dates")
			}
		}
	}

	// Guest count validation
	expectedGuestCount := 1 + len(input.AdditionalGuests)
	if input.NumberOfGuests != expectedGuestCount {
		errors = append(errors, fmt.Sprintf("Number of guests (%d) doesn't match provided guest details (%d)", input.NumberOfGuests, expectedGuestCount))
	}

	// Primary guest validation
	if input.PrimaryGuest.Name == "" {
		errors = append(errors, "Primary guest name is required")
	}
	if input.PrimaryGuest.IdentityNumber == "" {
		errors = append(errors, "Primary guest ID number is required")
	}
	if len(input.PrimaryGuest.IdentityNumber) != identityNumberLength {
		errors = append(errors, "Primary guest ID number must be 11 characters")
	}

	// One active stay per guest per date range
	if input.PrimaryGuest.IdentityNumber != "" && periodErr == nil {
		hasActive, err := v.reads.GuestHasActiveOverlap(ctx, input.PrimaryGuest.IdentityNumber, period)
		if err != nil {
			return Result{}, err
		}
		if hasActive {
			errors = append(errors, "Primary guest already has an active reservation for these dates")
		}
	}

	// Payment validation
	if input.TotalAmountCents < 0 {
		errors = append(errors, "Total amount cannot be negative")
	}
	if input.PaidAmountCents < 0 {
		errors = append(errors, "Paid amount cannot be negative")
	}
	if input.PaidAmountCents > input.TotalAmountCents {
		errors = append(errors, "Paid amount cannot exceed total amount")
	}

	return Result{IsValid: len(errors) == 0, Errors: errors}, nil
}
