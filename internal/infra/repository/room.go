package repository

import (
	"context"

	"hotelcore/internal/domain/room"
	"hotelcore/internal/infra"
	"hotelcore/internal/infra/db"
	"hotelcore/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RoomRepository struct {
	db db.DBTX
}

func NewRoomRepository(dbtx db.DBTX) *RoomRepository {
	return &RoomRepository{db: dbtx}
}

const createRoomSQL = `
INSERT INTO rooms (id, number, type, price_cents, status, floor, capacity, features, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
`

func (r *RoomRepository) Create(ctx context.Context, rm *room.Room) error {
	_, err := r.db.Exec(ctx, createRoomSQL,
		pgconv.UUIDToPgtype(rm.ID()),
		rm.Number(),
		string(rm.RoomType()),
		rm.PriceCents(),
		string(rm.Status()),
		rm.Floor(),
		rm.Capacity(),
		rm.Features(),
		pgconv.TimeToPgtype(rm.CreatedAt()),
		pgconv.TimeToPgtype(rm.UpdatedAt()),
	)
	if err != nil {
		return wrapWriteErr("failed to create room", err)
	}
	return nil
}

const findRoomSQL = `
SELECT id, number, type, price_cents, status, floor, capacity, features, created_at, updated_at
FROM rooms
WHERE id = $1
`

func (r *RoomRepository) FindByID(ctx context.Context, id uuid.UUID) (*room.Room, error) {
	return r.findByID(ctx, id, findRoomSQL)
}

// FindByIDForUpdate locks the room row for the rest of the transaction. Every
// booking of the same room serializes on this lock, which is what makes the
// overlap recheck authoritative.
func (r *RoomRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*room.Room, error) {
	return r.findByID(ctx, id, findRoomSQL+" FOR UPDATE")
}

func (r *RoomRepository) findByID(ctx context.Context, id uuid.UUID, query string) (*room.Room, error) {
	row := r.db.QueryRow(ctx, query, pgconv.UUIDToPgtype(id))
	rm, err := scanRoom(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room", err)
	}
	return rm, nil
}

const updateRoomSQL = `
UPDATE rooms
SET number = $2, type = $3, price_cents = $4, status = $5, floor = $6,
    capacity = $7, features = $8, updated_at = $9
WHERE id = $1
`

func (r *RoomRepository) Update(ctx context.Context, rm *room.Room) error {
	tag, err := r.db.Exec(ctx, updateRoomSQL,
		pgconv.UUIDToPgtype(rm.ID()),
		rm.Number(),
		string(rm.RoomType()),
		rm.PriceCents(),
		string(rm.Status()),
		rm.Floor(),
		rm.Capacity(),
		rm.Features(),
		pgconv.TimeToPgtype(rm.UpdatedAt()),
	)
	if err != nil {
		return wrapWriteErr("failed to update room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanRoom(row rowScanner) (*room.Room, error) {
	var (
		id                   pgtype.UUID
		number               string
		roomType             string
		priceCents           int64
		status               string
		floor, capacity      int
		features             []string
		createdAt, updatedAt pgtype.Timestamptz
	)
	if err := row.Scan(&id, &number, &roomType, &priceCents, &status, &floor, &capacity, &features, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	parsedType, err := room.ParseType(roomType)
	if err != nil {
		return nil, err
	}
	parsedStatus, err := room.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	return room.ReconstructRoom(
		uuid.UUID(id.Bytes),
		number,
		parsedType,
		priceCents,
		parsedStatus,
		floor,
		capacity,
		features,
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}
