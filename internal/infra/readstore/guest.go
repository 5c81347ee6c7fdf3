package readstore

import (
	"context"
	"fmt"
	"strings"

	"hotelcore/internal/infra"
	"hotelcore/internal/infra/db"
	"hotelcore/internal/pkg/pgconv"
	"hotelcore/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type GuestReadStore struct {
	db db.DBTX
}

func NewGuestReadStore(dbtx db.DBTX) *GuestReadStore {
	return &GuestReadStore{db: dbtx}
}

const guestViewColumns = `id, name, email, phone, id_number, address, is_active, visits, total_spent_cents, created_at, updated_at`

func (r *GuestReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.GuestView, error) {
	row := r.db.QueryRow(ctx, `SELECT `+guestViewColumns+` FROM guests WHERE id = $1`, pgconv.UUIDToPgtype(id))
	return r.scanOne(row, "guest not found", "failed to find guest by ID")
}

// FindByIdentityNumber matches the stored value byte for byte; callers do not
// get fuzzy or normalized lookups.
func (r *GuestReadStore) FindByIdentityNumber(ctx context.Context, identityNumber string) (*queries.GuestView, error) {
	row := r.db.QueryRow(ctx, `SELECT `+guestViewColumns+` FROM guests WHERE id_number = $1`, identityNumber)
	return r.scanOne(row, "guest not found", "failed to find guest by identity number")
}

func (r *GuestReadStore) scanOne(row rowScanner, notFoundMsg, failMsg string) (*queries.GuestView, error) {
	view, err := scanGuestView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(notFoundMsg, err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr(failMsg, err)
	}
	return view, nil
}

func (r *GuestReadStore) FindByFilter(ctx context.Context, filter queries.GuestListFilter) ([]*queries.GuestView, error) {
	var (
		conds []string
		args  []any
	)
	if filter.ActiveOnly {
		conds = append(conds, "is_active = true")
	}
	if filter.NameLike != "" {
		args = append(args, "%"+filter.NameLike+"%")
		conds = append(conds, fmt.Sprintf("name ILIKE $%d", len(args)))
	}

	query := `SELECT ` + guestViewColumns + ` FROM guests`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY name"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list guests", err)
	}
	defer rows.Close()

	var result []*queries.GuestView
	for rows.Next() {
		view, err := scanGuestView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan guest", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read guest list", err)
	}
	return result, nil
}

const guestReservationsSQL = listReservationsBaseSQL + `
WHERE r.id IN (SELECT reservation_id FROM reservation_guests WHERE guest_id = $1)
ORDER BY r.check_in DESC, r.created_at DESC
`

func (r *GuestReadStore) FindReservations(ctx context.Context, guestID uuid.UUID) ([]*queries.ReservationListItem, error) {
	rows, err := r.db.Query(ctx, guestReservationsSQL, pgconv.UUIDToPgtype(guestID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list guest reservations", err)
	}
	defer rows.Close()

	var result []*queries.ReservationListItem
	for rows.Next() {
		item, err := scanReservationListItem(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan guest reservation", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read guest reservations", err)
	}
	return result, nil
}

func scanGuestView(row rowScanner) (*queries.GuestView, error) {
	var (
		view                 queries.GuestView
		id                   pgtype.UUID
		createdAt, updatedAt pgtype.Timestamptz
	)
	if err := row.Scan(&id, &view.Name, &view.Email, &view.Phone, &view.IdentityNumber, &view.Address, &view.IsActive, &view.Visits, &view.TotalSpentCents, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	view.ID = uuid.UUID(id.Bytes)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}
