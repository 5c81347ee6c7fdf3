package repository

import (
	"context"

	"hotelcore/internal/infra"
	"hotelcore/internal/infra/db"
	"hotelcore/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type StaffRepository struct {
	db db.DBTX
}

func NewStaffRepository(dbtx db.DBTX) *StaffRepository {
	return &StaffRepository{db: dbtx}
}

func (r *StaffRepository) UpdateLastLogin(ctx context.Context, staffID uuid.UUID) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE staff SET last_login = now(), updated_at = now() WHERE id = $1`,
		pgconv.UUIDToPgtype(staffID),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("staff not found", nil, infra.KindNotFound)
	}
	return nil
}
