package readstore

import (
	"context"

	"hotelcore/internal/infra"
	"hotelcore/internal/infra/db"
	"hotelcore/internal/pkg/pgconv"
	"hotelcore/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type StaffReadStore struct {
	db db.DBTX
}

func NewStaffReadStore(dbtx db.DBTX) *StaffReadStore {
	return &StaffReadStore{db: dbtx}
}

func (r *StaffReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedStaffView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, email, name, role, is_active FROM staff WHERE id = $1`,
		pgconv.UUIDToPgtype(id),
	)

	view, _, err := scanStaffView(row, false)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("staff not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find staff by ID", err)
	}
	return view, nil
}

func (r *StaffReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedStaffView, string, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, email, name, role, is_active, password_hash FROM staff WHERE email = $1`,
		email,
	)

	view, hash, err := scanStaffView(row, true)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("staff not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find staff by email", err)
	}
	return view, hash, nil
}

func scanStaffView(row rowScanner, withHash bool) (*queries.AuthorizedStaffView, string, error) {
	var (
		view queries.AuthorizedStaffView
		id   pgtype.UUID
		hash string
	)

	dest := []any{&id, &view.Email, &view.Name, &view.Role, &view.IsActive}
	if withHash {
		dest = append(dest, &hash)
	}
	if err := row.Scan(dest...); err != nil {
		return nil, "", err
	}

	view.ID = uuid.UUID(id.Bytes)
	return &view, hash, nil
}
