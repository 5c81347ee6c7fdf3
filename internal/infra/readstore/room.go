package readstore

import (
	"context"
	"fmt"
	"strings"

	"hotelcore/internal/domain/reservation"
	"hotelcore/internal/infra"
	"hotelcore/internal/infra/db"
	"hotelcore/internal/pkg/pgconv"
	"hotelcore/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RoomReadStore struct {
	db db.DBTX
}

func NewRoomReadStore(dbtx db.DBTX) *RoomReadStore {
	return &RoomReadStore{db: dbtx}
}

const roomViewColumns = `id, number, type, price_cents, status, floor, capacity, features, created_at, updated_at`

func (r *RoomReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	row := r.db.QueryRow(ctx, `SELECT `+roomViewColumns+` FROM rooms WHERE id = $1`, pgconv.UUIDToPgtype(id))
	view, err := scanRoomView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by ID", err)
	}
	return view, nil
}

func (r *RoomReadStore) FindByFilter(ctx context.Context, filter queries.RoomListFilter) ([]*queries.RoomView, error) {
	var (
		conds []string
		args  []any
	)
	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		conds = append(conds, fmt.Sprintf("type = $%d", len(args)))
	}
	if filter.Floor != nil {
		args = append(args, *filter.Floor)
		conds = append(conds, fmt.Sprintf("floor = $%d", len(args)))
	}

	query := `SELECT ` + roomViewColumns + ` FROM rooms`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY number"

	return r.queryRoomViews(ctx, query, args...)
}

// findAvailableSQL excludes rooms held by any active reservation overlapping
// the requested half-open range, plus rooms under maintenance. Capacity is
// filtered here; the final say belongs to the booking transaction.
const findAvailableSQL = `
SELECT ` + roomViewColumns + `
FROM rooms
WHERE capacity >= $1
  AND status != 'maintenance'
  AND id NOT IN (
      SELECT room_id
      FROM reservations
      WHERE status IN ('pending', 'confirmed', 'checked_in')
        AND check_in < $3
        AND $2 < check_out
  )
ORDER BY number
`

func (r *RoomReadStore) FindAvailable(ctx context.Context, period reservation.StayPeriod, guests int) ([]*queries.RoomView, error) {
	return r.queryRoomViews(ctx, findAvailableSQL,
		guests,
		pgconv.DateToPgtype(period.CheckIn()),
		pgconv.DateToPgtype(period.CheckOut()),
	)
}

func (r *RoomReadStore) queryRoomViews(ctx context.Context, query string, args ...any) ([]*queries.RoomView, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	defer rows.Close()

	var result []*queries.RoomView
	for rows.Next() {
		view, err := scanRoomView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan room", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read room list", err)
	}
	return result, nil
}

func scanRoomView(row rowScanner) (*queries.RoomView, error) {
	var (
		view                 queries.RoomView
		id                   pgtype.UUID
		createdAt, updatedAt pgtype.Timestamptz
	)
	if err := row.Scan(&id, &view.Number, &view.Type, &view.PriceCents, &view.Status, &view.Floor, &view.Capacity, &view.Features, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	view.ID = uuid.UUID(id.Bytes)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}
