package commands

import (
	"context"

	"hotelcore/internal/domain/room"
	"hotelcore/internal/infra"
	"hotelcore/internal/pkg/clock"
	"hotelcore/internal/pkg/errs"
	"hotelcore/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrDuplicateRoomNumber = errs.New("room number already exists")
	ErrRoomNotCleaning     = errs.New("room is not in cleaning status")
	ErrInvalidRoomStatus   = errs.New("invalid room status")
	ErrInvalidRoomInput    = errs.New("invalid room input")
)

type CreateRoomInput struct {
	Number     string
	Type       string
	PriceCents int64
	Floor      int
	Capacity   int
	Features   []string
}

type UpdateRoomInput struct {
	Number     string
	Type       string
	PriceCents int64
	Floor      int
	Capacity   int
	Features   []string
}

type RoomCommands interface {
	Create(ctx context.Context, input CreateRoomInput) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateRoomInput) error
	// CompleteCleaning is the housekeeping handoff: cleaning -> available.
	CompleteCleaning(ctx context.Context, id uuid.UUID) error
	// OverrideStatus force-sets a room status outside the lifecycle.
	OverrideStatus(ctx context.Context, id uuid.UUID, status string) error
}

type roomCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewRoomCommands(uow shared.UnitOfWork, clk clock.Clock) RoomCommands {
	return &roomCommandsImpl{uow: uow, clock: clk}
}

func (r *roomCommandsImpl) Create(ctx context.Context, input CreateRoomInput) (uuid.UUID, error) {
	roomType, err := room.ParseType(input.Type)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidRoomInput)
	}

	rm, err := room.NewRoom(r.clock.Now(), input.Number, roomType, input.PriceCents, input.Floor, input.Capacity, input.Features)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidRoomInput)
	}

	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Rooms().Create(ctx, rm); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrDuplicateRoomNumber
			}
			return err
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	return rm.ID(), nil
}

func (r *roomCommandsImpl) Update(ctx context.Context, id uuid.UUID, input UpdateRoomInput) error {
	roomType, err := room.ParseType(input.Type)
	if err != nil {
		return errs.Mark(err, ErrInvalidRoomInput)
	}

	return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rm, err := findRoomForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}

		if err := rm.Amend(r.clock.Now(), input.Number, roomType, input.PriceCents, input.Floor, input.Capacity, input.Features); err != nil {
			return errs.Mark(err, ErrInvalidRoomInput)
		}

		if err := tx.Rooms().Update(ctx, rm); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrDuplicateRoomNumber
			}
			return err
		}
		return nil
	})
}

func (r *roomCommandsImpl) CompleteCleaning(ctx context.Context, id uuid.UUID) error {
	return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rm, err := findRoomForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}

		if err := rm.CompleteCleaning(r.clock.Now()); err != nil {
			return errs.Mark(err, ErrRoomNotCleaning)
		}

		return tx.Rooms().Update(ctx, rm)
	})
}

func (r *roomCommandsImpl) OverrideStatus(ctx context.Context, id uuid.UUID, status string) error {
	parsed, err := room.ParseStatus(status)
	if err != nil {
		return errs.Mark(err, ErrInvalidRoomStatus)
	}

	return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rm, err := findRoomForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}

		if err := rm.OverrideStatus(r.clock.Now(), parsed); err != nil {
			return errs.Mark(err, ErrInvalidRoomStatus)
		}

		return tx.Rooms().Update(ctx, rm)
	})
}

func findRoomForUpdate(ctx context.Context, tx shared.Tx, id uuid.UUID) (*room.Room, error) {
	rm, err := tx.Rooms().FindByIDForUpdate(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return rm, nil
}
