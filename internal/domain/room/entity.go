package room

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidCapacity = errors.New("room capacity must be positive")
	ErrNegativePrice   = errors.New("room price cannot be negative")
	ErrNotCleaning     = errors.New("room is not in cleaning status")
)

// Room status is a controlled field: the reservation lifecycle drives it to
// occupied/cleaning, housekeeping completes cleaning, and anything else is an
// explicit administrative override.
type Room struct {
	id         uuid.UUID
	number     string
	roomType   Type
	priceCents int64
	status     Status
	floor      int
	capacity   int
	features   []string
	createdAt  time.Time
	updatedAt  time.Time
}

func NewRoom(now time.Time, number string, roomType Type, priceCents int64, floor, capacity int, features []string) (*Room, error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	if priceCents < 0 {
		return nil, ErrNegativePrice
	}
	return &Room{
		id:         uuid.New(),
		number:     number,
		roomType:   roomType,
		priceCents: priceCents,
		status:     StatusAvailable,
		floor:      floor,
		capacity:   capacity,
		features:   features,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructRoom(
	id uuid.UUID,
	number string,
	roomType Type,
	priceCents int64,
	status Status,
	floor, capacity int,
	features []string,
	createdAt, updatedAt time.Time,
) *Room {
	return &Room{
		id:         id,
		number:     number,
		roomType:   roomType,
		priceCents: priceCents,
		status:     status,
		floor:      floor,
		capacity:   capacity,
		features:   features,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (r *Room) ID() uuid.UUID        { return r.id }
func (r *Room) Number() string       { return r.number }
func (r *Room) RoomType() Type       { return r.roomType }
func (r *Room) PriceCents() int64    { return r.priceCents }
func (r *Room) Status() Status       { return r.status }
func (r *Room) Floor() int           { return r.floor }
func (r *Room) Capacity() int        { return r.capacity }
func (r *Room) Features() []string   { return r.features }
func (r *Room) CreatedAt() time.Time { return r.createdAt }
func (r *Room) UpdatedAt() time.Time { return r.updatedAt }

func (r *Room) CanFit(guests int) bool {
	return guests <= r.capacity
}

// MarkOccupied is a reservation-engine side effect of check-in.
func (r *Room) MarkOccupied(now time.Time) {
	r.status = StatusOccupied
	r.updatedAt = now
}

// MarkCleaning is a reservation-engine side effect of check-out.
func (r *Room) MarkCleaning(now time.Time) {
	r.status = StatusCleaning
	r.updatedAt = now
}

// CompleteCleaning is the one transition the registry owns itself: legal only
// from cleaning, back to available.
func (r *Room) CompleteCleaning(now time.Time) error {
	if r.status != StatusCleaning {
		return fmt.Errorf("%w: current status %s", ErrNotCleaning, r.status)
	}
	r.status = StatusAvailable
	r.updatedAt = now
	return nil
}

// OverrideStatus is the administrative escape hatch; lifecycle transitions
// should not use it.
func (r *Room) OverrideStatus(now time.Time, status Status) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	r.status = status
	r.updatedAt = now
	return nil
}

// Amend applies administrative edits to the room's descriptive fields.
func (r *Room) Amend(now time.Time, number string, roomType Type, priceCents int64, floor, capacity int, features []string) error {
	if capacity < 1 {
		return ErrInvalidCapacity
	}
	if priceCents < 0 {
		return ErrNegativePrice
	}
	r.number = number
	r.roomType = roomType
	r.priceCents = priceCents
	r.floor = floor
	r.capacity = capacity
	r.features = features
	r.updatedAt = now
	return nil
}
