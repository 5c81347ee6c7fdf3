package shared

import (
	"context"

	"hotelcore/internal/domain/guest"
	"hotelcore/internal/domain/reservation"
	"hotelcore/internal/domain/room"
	"hotelcore/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads: validation reads outside any explicit transaction
	CommandReads() CommandReads
}

type Tx interface {
	Reservations() ReservationRepository
	Guests() GuestRepository
	Rooms() RoomRepository
	Staff() StaffRepository
	Reads() CommandReads
	DB() db.DBTX
}

// CommandReads are the write side's own read ports: snapshots and predicates
// needed for validation, isolated from the query layer's view types.
type CommandReads interface {
	RoomByID(ctx context.Context, id uuid.UUID) (*RoomSnapshot, error)
	// RoomHasOverlap reports whether any active reservation on the room
	// conflicts with the period; excludeReservationID skips one reservation
	// to support recheck-during-update.
	RoomHasOverlap(ctx context.Context, roomID uuid.UUID, period reservation.StayPeriod, excludeReservationID *uuid.UUID) (bool, error)
	// GuestHasActiveOverlap reports whether a guest with the given identity
	// number is linked to an active reservation overlapping the period.
	GuestHasActiveOverlap(ctx context.Context, identityNumber string, period reservation.StayPeriod) (bool, error)
}

// Minimal room snapshot for validation; the full entity is only loaded (and
// locked) inside the commit transaction.
type RoomSnapshot struct {
	ID         uuid.UUID
	Number     string
	Capacity   int
	PriceCents int64
	Status     room.Status
}

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) error
	FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	Update(ctx context.Context, res *reservation.Reservation) error
	Delete(ctx context.Context, id uuid.UUID) error
	LinkGuest(ctx context.Context, reservationID, guestID uuid.UUID, isPrimary bool) error
	GuestLinks(ctx context.Context, reservationID uuid.UUID) ([]reservation.GuestLink, error)
	HasOverlap(ctx context.Context, roomID uuid.UUID, period reservation.StayPeriod, excludeReservationID *uuid.UUID) (bool, error)
}

type GuestUpsertParams struct {
	Name           string
	IdentityNumber guest.IdentityNumber
	Contact        guest.ContactInfo
}

type GuestRepository interface {
	// UpsertByIdentityNumber resolves an identity number to exactly one guest
	// row: inserts a fresh profile or refreshes the contact fields of the
	// existing one, atomically per identity number.
	UpsertByIdentityNumber(ctx context.Context, params GuestUpsertParams) (*guest.Guest, error)
	FindByID(ctx context.Context, id uuid.UUID) (*guest.Guest, error)
	RecordVisit(ctx context.Context, guestID uuid.UUID, spentCents int64) error
	ReactivateByReservation(ctx context.Context, reservationID uuid.UUID) error
}

type RoomRepository interface {
	Create(ctx context.Context, rm *room.Room) error
	FindByID(ctx context.Context, id uuid.UUID) (*room.Room, error)
	// FindByIDForUpdate takes the room row lock that serializes concurrent
	// bookings of the same room.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*room.Room, error)
	Update(ctx context.Context, rm *room.Room) error
}

type StaffRepository interface {
	UpdateLastLogin(ctx context.Context, staffID uuid.UUID) error
}
