package queries

import (
	"context"

	"hotelcore/internal/infra"
	"hotelcore/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrGuestNotFound = errs.New("guest not found")

type GuestListFilter struct {
	ActiveOnly bool
	NameLike   string
}

type GuestQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*GuestView, error)
	// GetByIdentityNumber looks up the profile by national ID, byte for byte.
	GetByIdentityNumber(ctx context.Context, identityNumber string) (*GuestView, error)
	List(ctx context.Context, filter GuestListFilter) ([]*GuestView, error)
	// History returns the guest's stays, newest first.
	History(ctx context.Context, guestID uuid.UUID) ([]*ReservationListItem, error)
}

type GuestReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*GuestView, error)
	FindByIdentityNumber(ctx context.Context, identityNumber string) (*GuestView, error)
	FindByFilter(ctx context.Context, filter GuestListFilter) ([]*GuestView, error)
	FindReservations(ctx context.Context, guestID uuid.UUID) ([]*ReservationListItem, error)
}

type guestQueriesImpl struct {
	readStore GuestReadStore
}

func NewGuestQueries(readStore GuestReadStore) GuestQueries {
	return &guestQueriesImpl{readStore: readStore}
}

func (q *guestQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*GuestView, error) {
	guest, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrGuestNotFound
		}
		return nil, err
	}
	return guest, nil
}

func (q *guestQueriesImpl) GetByIdentityNumber(ctx context.Context, identityNumber string) (*GuestView, error) {
	guest, err := q.readStore.FindByIdentityNumber(ctx, identityNumber)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrGuestNotFound
		}
		return nil, err
	}
	return guest, nil
}

func (q *guestQueriesImpl) List(ctx context.Context, filter GuestListFilter) ([]*GuestView, error) {
	return q.readStore.FindByFilter(ctx, filter)
}

func (q *guestQueriesImpl) History(ctx context.Context, guestID uuid.UUID) ([]*ReservationListItem, error) {
	if _, err := q.GetByID(ctx, guestID); err != nil {
		return nil, err
	}
	return q.readStore.FindReservations(ctx, guestID)
}
