package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ReservationListFilter narrows the reservation list. Zero values mean "no
// filter" for that dimension.
type ReservationListFilter struct {
	Status   string
	RoomID   *uuid.UUID
	GuestID  *uuid.UUID
	DateFrom *time.Time
	DateTo   *time.Time
}

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	List(ctx context.Context, filter ReservationListFilter) ([]*ReservationListItem, error)
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindByFilter(ctx context.Context, filter ReservationListFilter) ([]*ReservationListItem, error)
}

type reservationQueriesImpl struct {
	readStore ReservationReadStore
}

func NewReservationQueries(readStore ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{readStore: readStore}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	return q.readStore.FindByID(ctx, id)
}

func (q *reservationQueriesImpl) List(ctx context.Context, filter ReservationListFilter) ([]*ReservationListItem, error) {
	return q.readStore.FindByFilter(ctx, filter)
}
