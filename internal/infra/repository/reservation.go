package repository

import (
	"context"

	"hotelcore/internal/domain/reservation"
	"hotelcore/internal/infra"
	"hotelcore/internal/infra/db"
	"hotelcore/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(dbtx db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: dbtx}
}

const createReservationSQL = `
INSERT INTO reservations (
    id, room_id, primary_guest_id, check_in, check_out, actual_check_out,
    number_of_guests, total_amount_cents, paid_amount_cents, is_paid,
    payment_method, payment_date, special_requests, status, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
`

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	_, err := r.db.Exec(ctx, createReservationSQL,
		pgconv.UUIDToPgtype(res.ID()),
		pgconv.UUIDToPgtype(res.RoomID()),
		pgconv.UUIDToPgtype(res.PrimaryGuestID()),
		pgconv.DateToPgtype(res.Period().CheckIn()),
		pgconv.DateToPgtype(res.Period().CheckOut()),
		pgconv.TimePtrToPgtype(res.ActualCheckOut()),
		res.NumberOfGuests(),
		res.TotalAmount().Cents(),
		res.PaidAmount().Cents(),
		res.IsPaid(),
		res.PaymentMethod(),
		pgconv.TimePtrToPgtype(res.PaymentDate()),
		res.SpecialRequests(),
		string(res.Status()),
		pgconv.TimeToPgtype(res.CreatedAt()),
		pgconv.TimeToPgtype(res.UpdatedAt()),
	)
	if err != nil {
		return wrapWriteErr("failed to create reservation", err)
	}
	return nil
}

const findReservationSQL = `
SELECT id, room_id, primary_guest_id, check_in, check_out, actual_check_out,
       number_of_guests, total_amount_cents, paid_amount_cents,
       payment_method, payment_date, special_requests, status, created_at, updated_at
FROM reservations
WHERE id = $1
`

func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row := r.db.QueryRow(ctx, findReservationSQL, pgconv.UUIDToPgtype(id))
	res, err := scanReservation(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}
	return res, nil
}

const updateReservationSQL = `
UPDATE reservations
SET room_id = $2, primary_guest_id = $3, check_in = $4, check_out = $5,
    actual_check_out = $6, number_of_guests = $7, total_amount_cents = $8,
    paid_amount_cents = $9, is_paid = $10, payment_method = $11,
    payment_date = $12, special_requests = $13, status = $14, updated_at = $15
WHERE id = $1
`

func (r *ReservationRepository) Update(ctx context.Context, res *reservation.Reservation) error {
	tag, err := r.db.Exec(ctx, updateReservationSQL,
		pgconv.UUIDToPgtype(res.ID()),
		pgconv.UUIDToPgtype(res.RoomID()),
		pgconv.UUIDToPgtype(res.PrimaryGuestID()),
		pgconv.DateToPgtype(res.Period().CheckIn()),
		pgconv.DateToPgtype(res.Period().CheckOut()),
		pgconv.TimePtrToPgtype(res.ActualCheckOut()),
		res.NumberOfGuests(),
		res.TotalAmount().Cents(),
		res.PaidAmount().Cents(),
		res.IsPaid(),
		res.PaymentMethod(),
		pgconv.TimePtrToPgtype(res.PaymentDate()),
		res.SpecialRequests(),
		string(res.Status()),
		pgconv.TimeToPgtype(res.UpdatedAt()),
	)
	if err != nil {
		return wrapWriteErr("failed to update reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM reservations WHERE id = $1`, pgconv.UUIDToPgtype(id))
	if err != nil {
		return wrapWriteErr("failed to delete reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

const linkGuestSQL = `
INSERT INTO reservation_guests (reservation_id, guest_id, is_primary)
VALUES ($1, $2, $3)
ON CONFLICT (reservation_id, guest_id) DO UPDATE SET is_primary = EXCLUDED.is_primary
`

func (r *ReservationRepository) LinkGuest(ctx context.Context, reservationID, guestID uuid.UUID, isPrimary bool) error {
	_, err := r.db.Exec(ctx, linkGuestSQL,
		pgconv.UUIDToPgtype(reservationID),
		pgconv.UUIDToPgtype(guestID),
		isPrimary,
	)
	if err != nil {
		return wrapWriteErr("failed to link guest to reservation", err)
	}
	return nil
}

const guestLinksSQL = `
SELECT guest_id, is_primary
FROM reservation_guests
WHERE reservation_id = $1
ORDER BY is_primary DESC, guest_id
`

func (r *ReservationRepository) GuestLinks(ctx context.Context, reservationID uuid.UUID) ([]reservation.GuestLink, error) {
	rows, err := r.db.Query(ctx, guestLinksSQL, pgconv.UUIDToPgtype(reservationID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservation guests", err)
	}
	defer rows.Close()

	var links []reservation.GuestLink
	for rows.Next() {
		var (
			guestID   pgtype.UUID
			isPrimary bool
		)
		if err := rows.Scan(&guestID, &isPrimary); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation guest", err)
		}
		links = append(links, reservation.GuestLink{
			GuestID:   uuid.UUID(guestID.Bytes),
			IsPrimary: isPrimary,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reservation guests", err)
	}
	return links, nil
}

// hasOverlapSQL implements the half-open range rule in SQL: [a,b) and [c,d)
// conflict iff a < d AND c < b. Only active statuses block the room.
const hasOverlapSQL = `
SELECT EXISTS (
    SELECT 1
    FROM reservations
    WHERE room_id = $1
      AND status IN ('pending', 'confirmed', 'checked_in')
      AND check_in < $3
      AND $2 < check_out
      AND ($4::uuid IS NULL OR id != $4)
)
`

func (r *ReservationRepository) HasOverlap(ctx context.Context, roomID uuid.UUID, period reservation.StayPeriod, excludeReservationID *uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, hasOverlapSQL,
		pgconv.UUIDToPgtype(roomID),
		pgconv.DateToPgtype(period.CheckIn()),
		pgconv.DateToPgtype(period.CheckOut()),
		pgconv.UUIDPtrToPgtype(excludeReservationID),
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check room overlap", err)
	}
	return exists, nil
}

func scanReservation(row rowScanner) (*reservation.Reservation, error) {
	var (
		id, roomID, primaryGuestID  pgtype.UUID
		checkIn, checkOut           pgtype.Date
		actualCheckOut, paymentDate pgtype.Timestamptz
		numberOfGuests              int
		totalCents, paidCents       int64
		paymentMethod               string
		specialRequests             string
		status                      string
		createdAt, updatedAt        pgtype.Timestamptz
	)
	if err := row.Scan(
		&id, &roomID, &primaryGuestID, &checkIn, &checkOut, &actualCheckOut,
		&numberOfGuests, &totalCents, &paidCents,
		&paymentMethod, &paymentDate, &specialRequests, &status, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	period, err := reservation.NewStayPeriod(pgconv.DateFromPgtype(checkIn), pgconv.DateFromPgtype(checkOut))
	if err != nil {
		return nil, err
	}
	parsedStatus, err := reservation.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	return reservation.ReconstructReservation(
		uuid.UUID(id.Bytes),
		uuid.UUID(roomID.Bytes),
		uuid.UUID(primaryGuestID.Bytes),
		period,
		pgconv.TimePtrFromPgtype(actualCheckOut),
		numberOfGuests,
		reservation.MustMoney(totalCents),
		reservation.MustMoney(paidCents),
		paymentMethod,
		pgconv.TimePtrFromPgtype(paymentDate),
		specialRequests,
		parsedStatus,
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}
