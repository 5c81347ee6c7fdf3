package repository

import (
	"context"

	"hotelcore/internal/domain/guest"
	"hotelcore/internal/infra"
	"hotelcore/internal/infra/db"
	"hotelcore/internal/pkg/pgconv"
	"hotelcore/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type GuestRepository struct {
	db db.DBTX
}

func NewGuestRepository(dbtx db.DBTX) *GuestRepository {
	return &GuestRepository{db: dbtx}
}

// upsertGuestSQL is the identity-number dedup point. A second booking with a
// known id_number refreshes the profile instead of inserting a duplicate, and
// concurrent inserts of the same id_number collapse onto one row.
const upsertGuestSQL = `
INSERT INTO guests (id, name, email, phone, id_number, address, is_active, visits, total_spent_cents, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, true, 0, 0, now(), now())
ON CONFLICT (id_number) DO UPDATE
SET name = EXCLUDED.name,
    email = EXCLUDED.email,
    phone = EXCLUDED.phone,
    address = EXCLUDED.address,
    updated_at = now()
RETURNING id, name, email, phone, id_number, address, is_active, visits, total_spent_cents, created_at, updated_at
`

func (r *GuestRepository) UpsertByIdentityNumber(ctx context.Context, params shared.GuestUpsertParams) (*guest.Guest, error) {
	row := r.db.QueryRow(ctx, upsertGuestSQL,
		pgconv.UUIDToPgtype(uuid.New()),
		params.Name,
		params.Contact.Email,
		params.Contact.Phone,
		params.IdentityNumber.String(),
		params.Contact.Address,
	)
	g, err := scanGuest(row)
	if err != nil {
		return nil, wrapWriteErr("failed to upsert guest", err)
	}
	return g, nil
}

const findGuestSQL = `
SELECT id, name, email, phone, id_number, address, is_active, visits, total_spent_cents, created_at, updated_at
FROM guests
WHERE id = $1
`

func (r *GuestRepository) FindByID(ctx context.Context, id uuid.UUID) (*guest.Guest, error) {
	row := r.db.QueryRow(ctx, findGuestSQL, pgconv.UUIDToPgtype(id))
	g, err := scanGuest(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("guest not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find guest", err)
	}
	return g, nil
}

const recordVisitSQL = `
UPDATE guests
SET visits = visits + 1,
    total_spent_cents = total_spent_cents + $2,
    updated_at = now()
WHERE id = $1
`

func (r *GuestRepository) RecordVisit(ctx context.Context, guestID uuid.UUID, spentCents int64) error {
	tag, err := r.db.Exec(ctx, recordVisitSQL, pgconv.UUIDToPgtype(guestID), spentCents)
	if err != nil {
		return infra.WrapRepoErr("failed to record guest visit", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("guest not found", nil, infra.KindNotFound)
	}
	return nil
}

const reactivateByReservationSQL = `
UPDATE guests
SET is_active = true,
    updated_at = now()
WHERE id IN (
    SELECT guest_id FROM reservation_guests WHERE reservation_id = $1
)
`

// ReactivateByReservation flips every guest on the stay back to active at
// check-in. Checkout does not deactivate anyone.
func (r *GuestRepository) ReactivateByReservation(ctx context.Context, reservationID uuid.UUID) error {
	_, err := r.db.Exec(ctx, reactivateByReservationSQL, pgconv.UUIDToPgtype(reservationID))
	if err != nil {
		return infra.WrapRepoErr("failed to reactivate reservation guests", err)
	}
	return nil
}

func scanGuest(row rowScanner) (*guest.Guest, error) {
	var (
		id                   pgtype.UUID
		name                 string
		email, phone         string
		idNumber             string
		address              string
		isActive             bool
		visits               int
		totalSpentCents      int64
		createdAt, updatedAt pgtype.Timestamptz
	)
	if err := row.Scan(&id, &name, &email, &phone, &idNumber, &address, &isActive, &visits, &totalSpentCents, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	identity, err := guest.NewIdentityNumber(idNumber)
	if err != nil {
		return nil, err
	}

	return guest.ReconstructGuest(
		uuid.UUID(id.Bytes),
		name,
		identity,
		guest.ContactInfo{Email: email, Phone: phone, Address: address},
		isActive,
		visits,
		totalSpentCents,
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}
