package queries

import (
	"context"

	"hotelcore/internal/domain/reservation"

	"github.com/google/uuid"
)

type RoomListFilter struct {
	Status string
	Type   string
	Floor  *int
}

type RoomQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	List(ctx context.Context, filter RoomListFilter) ([]*RoomView, error)
	// ListAvailable returns rooms with enough capacity and no active
	// reservation overlapping the period. The result is advisory: the
	// booking transaction rechecks under lock.
	ListAvailable(ctx context.Context, period reservation.StayPeriod, guests int) ([]*RoomView, error)
}

type RoomReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	FindByFilter(ctx context.Context, filter RoomListFilter) ([]*RoomView, error)
	FindAvailable(ctx context.Context, period reservation.StayPeriod, guests int) ([]*RoomView, error)
}

type roomQueriesImpl struct {
	readStore RoomReadStore
}

func NewRoomQueries(readStore RoomReadStore) RoomQueries {
	return &roomQueriesImpl{readStore: readStore}
}

func (q *roomQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error) {
	return q.readStore.FindByID(ctx, id)
}

func (q *roomQueriesImpl) List(ctx context.Context, filter RoomListFilter) ([]*RoomView, error) {
	return q.readStore.FindByFilter(ctx, filter)
}

func (q *roomQueriesImpl) ListAvailable(ctx context.Context, period reservation.StayPeriod, guests int) ([]*RoomView, error) {
	if guests < 1 {
		guests = 1
	}
	return q.readStore.FindAvailable(ctx, period, guests)
}
