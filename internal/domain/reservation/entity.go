package reservation

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus      = errors.New("invalid reservation status")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrCheckInTooEarly    = errors.New("cannot check in before reservation date")
	ErrOverpayment        = errors.New("paid amount cannot exceed total amount")
	ErrNoGuests           = errors.New("reservation requires at least one guest")
	ErrTerminalState      = errors.New("reservation is in a terminal state")
	ErrGuestCountMismatch = errors.New("number of guests does not match guest details")
)

// GuestLink ties a guest to a reservation with a per-stay role. Whether a
// guest is primary is a property of the stay, not of the guest record.
type GuestLink struct {
	GuestID   uuid.UUID
	IsPrimary bool
}

type Reservation struct {
	id              uuid.UUID
	roomID          uuid.UUID
	primaryGuestID  uuid.UUID
	period          StayPeriod
	actualCheckOut  *time.Time
	numberOfGuests  int
	totalAmount     Money
	paidAmount      Money
	paymentMethod   string
	paymentDate     *time.Time
	specialRequests string
	status          Status
	createdAt       time.Time
	updatedAt       time.Time
}

// NewReservation builds a pending reservation. The primary guest must already
// be resolved; availability is the caller's concern (rechecked at commit).
func NewReservation(
	now time.Time,
	roomID, primaryGuestID uuid.UUID,
	period StayPeriod,
	numberOfGuests int,
	totalAmount, paidAmount Money,
	paymentMethod, specialRequests string,
) (*Reservation, error) {
	if numberOfGuests < 1 {
		return nil, ErrNoGuests
	}
	if paidAmount.GreaterThan(totalAmount) {
		return nil, ErrOverpayment
	}

	r := &Reservation{
		id:              uuid.New(),
		roomID:          roomID,
		primaryGuestID:  primaryGuestID,
		period:          period,
		numberOfGuests:  numberOfGuests,
		totalAmount:     totalAmount,
		paidAmount:      paidAmount,
		paymentMethod:   paymentMethod,
		specialRequests: specialRequests,
		status:          StatusPending,
		createdAt:       now,
		updatedAt:       now,
	}
	if !paidAmount.IsZero() {
		paidAt := now
		r.paymentDate = &paidAt
	}
	return r, nil
}

func ReconstructReservation(
	id, roomID, primaryGuestID uuid.UUID,
	period StayPeriod,
	actualCheckOut *time.Time,
	numberOfGuests int,
	totalAmount, paidAmount Money,
	paymentMethod string,
	paymentDate *time.Time,
	specialRequests string,
	status Status,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:              id,
		roomID:          roomID,
		primaryGuestID:  primaryGuestID,
		period:          period,
		actualCheckOut:  actualCheckOut,
		numberOfGuests:  numberOfGuests,
		totalAmount:     totalAmount,
		paidAmount:      paidAmount,
		paymentMethod:   paymentMethod,
		paymentDate:     paymentDate,
		specialRequests: specialRequests,
		status:          status,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (r *Reservation) ID() uuid.UUID             { return r.id }
func (r *Reservation) RoomID() uuid.UUID         { return r.roomID }
func (r *Reservation) PrimaryGuestID() uuid.UUID { return r.primaryGuestID }
func (r *Reservation) Period() StayPeriod        { return r.period }
func (r *Reservation) ActualCheckOut() *time.Time {
	return r.actualCheckOut
}
func (r *Reservation) NumberOfGuests() int     { return r.numberOfGuests }
func (r *Reservation) TotalAmount() Money      { return r.totalAmount }
func (r *Reservation) PaidAmount() Money       { return r.paidAmount }
func (r *Reservation) PaymentMethod() string   { return r.paymentMethod }
func (r *Reservation) PaymentDate() *time.Time { return r.paymentDate }
func (r *Reservation) SpecialRequests() string { return r.specialRequests }
func (r *Reservation) Status() Status          { return r.status }
func (r *Reservation) CreatedAt() time.Time    { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time    { return r.updatedAt }

// IsPaid is derived, never stored independently: paid >= total.
func (r *Reservation) IsPaid() bool {
	return !r.totalAmount.GreaterThan(r.paidAmount)
}

func (r *Reservation) RemainingBalance() Money {
	return r.totalAmount.Sub(r.paidAmount)
}

func (r *Reservation) transitionTo(next Status, now time.Time) error {
	if !r.status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, r.status, next)
	}
	r.status = next
	r.updatedAt = now
	return nil
}

func (r *Reservation) Confirm(now time.Time) error {
	return r.transitionTo(StatusConfirmed, now)
}

func (r *Reservation) Cancel(now time.Time) error {
	return r.transitionTo(StatusCancelled, now)
}

// CheckIn is legal from pending or confirmed, and only once the booked
// check-in date has arrived (UTC date comparison).
func (r *Reservation) CheckIn(now time.Time) error {
	if !r.status.CanTransitionTo(StatusCheckedIn) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, r.status, StatusCheckedIn)
	}
	if r.period.StartsAfter(now) {
		return ErrCheckInTooEarly
	}
	r.status = StatusCheckedIn
	r.updatedAt = now
	return nil
}

// CompleteCheckOut stamps the actual departure time and closes the stay.
// Payment gating (force or paid-in-full) is decided by the caller before this
// is invoked.
func (r *Reservation) CompleteCheckOut(now time.Time) error {
	if err := r.transitionTo(StatusCheckedOut, now); err != nil {
		return err
	}
	departed := now
	r.actualCheckOut = &departed
	return nil
}

// Amend applies the administrative update path: dates, counts, amounts,
// payment method and special requests. Status is deliberately untouchable
// here; lifecycle changes go through the transition methods. The paid flag
// derivation and payment-date stamping mirror creation.
func (r *Reservation) Amend(
	now time.Time,
	period StayPeriod,
	numberOfGuests int,
	totalAmount, paidAmount Money,
	paymentMethod, specialRequests string,
) error {
	if r.status.IsTerminal() {
		return fmt.Errorf("%w: %s", ErrTerminalState, r.status)
	}
	if numberOfGuests < 1 {
		return ErrNoGuests
	}
	if paidAmount.GreaterThan(totalAmount) {
		return ErrOverpayment
	}

	r.period = period
	r.numberOfGuests = numberOfGuests
	r.totalAmount = totalAmount
	r.paidAmount = paidAmount
	r.paymentMethod = paymentMethod
	r.specialRequests = specialRequests
	if r.IsPaid() && r.paymentDate == nil {
		paidAt := now
		r.paymentDate = &paidAt
	}
	r.updatedAt = now
	return nil
}
