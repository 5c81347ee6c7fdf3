package queries

import (
	"context"

	"hotelcore/internal/infra"
	"hotelcore/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrStaffNotFound = errs.New("staff not found")
	ErrStaffInactive = errs.New("staff inactive")
)

type StaffQueries interface {
	GetCurrentStaff(ctx context.Context, staffID uuid.UUID) (*AuthorizedStaffView, error)
}

type StaffReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedStaffView, error)
	// FindByEmail also returns the stored password hash for credential checks.
	FindByEmail(ctx context.Context, email string) (*AuthorizedStaffView, string, error)
}

type staffQueriesImpl struct {
	readStore StaffReadStore
}

func NewStaffQueries(readStore StaffReadStore) StaffQueries {
	return &staffQueriesImpl{readStore: readStore}
}

func (q *staffQueriesImpl) GetCurrentStaff(ctx context.Context, staffID uuid.UUID) (*AuthorizedStaffView, error) {
	staff, err := q.readStore.FindByID(ctx, staffID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, err
	}

	if !staff.IsActive {
		return nil, ErrStaffInactive
	}

	return staff, nil
}
