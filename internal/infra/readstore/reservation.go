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

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(dbtx db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: dbtx}
}

const findReservationViewSQL = `
SELECT r.id, r.room_id, rm.number, r.primary_guest_id, g.name,
       r.check_in, r.check_out, r.actual_check_out,
       r.number_of_guests, r.total_amount_cents, r.paid_amount_cents, r.is_paid,
       r.payment_method, r.payment_date, r.special_requests, r.status,
       r.created_at, r.updated_at
FROM reservations r
JOIN rooms rm ON rm.id = r.room_id
JOIN guests g ON g.id = r.primary_guest_id
WHERE r.id = $1
`

const reservationGuestViewsSQL = `
SELECT rg.guest_id, g.name, g.id_number, rg.is_primary
FROM reservation_guests rg
JOIN guests g ON g.id = rg.guest_id
WHERE rg.reservation_id = $1
ORDER BY rg.is_primary DESC, g.name
`

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row := r.db.QueryRow(ctx, findReservationViewSQL, pgconv.UUIDToPgtype(id))

	var (
		view                        queries.ReservationView
		resID, roomID, guestID      pgtype.UUID
		checkIn, checkOut           pgtype.Date
		actualCheckOut, paymentDate pgtype.Timestamptz
		createdAt, updatedAt        pgtype.Timestamptz
	)
	err := row.Scan(
		&resID, &roomID, &view.RoomNumber, &guestID, &view.PrimaryGuestName,
		&checkIn, &checkOut, &actualCheckOut,
		&view.NumberOfGuests, &view.TotalAmountCents, &view.PaidAmountCents, &view.IsPaid,
		&view.PaymentMethod, &paymentDate, &view.SpecialRequests, &view.Status,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	view.ID = uuid.UUID(resID.Bytes)
	view.RoomID = uuid.UUID(roomID.Bytes)
	view.PrimaryGuestID = uuid.UUID(guestID.Bytes)
	view.CheckIn = pgconv.DateFromPgtype(checkIn)
	view.CheckOut = pgconv.DateFromPgtype(checkOut)
	view.ActualCheckOut = pgconv.TimePtrFromPgtype(actualCheckOut)
	view.PaymentDate = pgconv.TimePtrFromPgtype(paymentDate)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)

	guests, err := r.findGuestViews(ctx, id)
	if err != nil {
		return nil, err
	}
	view.Guests = guests

	return &view, nil
}

func (r *ReservationReadStore) findGuestViews(ctx context.Context, reservationID uuid.UUID) ([]queries.ReservationGuestView, error) {
	rows, err := r.db.Query(ctx, reservationGuestViewsSQL, pgconv.UUIDToPgtype(reservationID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservation guests", err)
	}
	defer rows.Close()

	var guests []queries.ReservationGuestView
	for rows.Next() {
		var (
			gv      queries.ReservationGuestView
			guestID pgtype.UUID
		)
		if err := rows.Scan(&guestID, &gv.Name, &gv.IdentityNumber, &gv.IsPrimary); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation guest", err)
		}
		gv.GuestID = uuid.UUID(guestID.Bytes)
		guests = append(guests, gv)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reservation guests", err)
	}
	return guests, nil
}

const listReservationsBaseSQL = `
SELECT r.id, r.room_id, rm.number, g.name,
       r.check_in, r.check_out, r.number_of_guests,
       r.total_amount_cents, r.is_paid, r.status, r.created_at
FROM reservations r
JOIN rooms rm ON rm.id = r.room_id
JOIN guests g ON g.id = r.primary_guest_id
`

func (r *ReservationReadStore) FindByFilter(ctx context.Context, filter queries.ReservationListFilter) ([]*queries.ReservationListItem, error) {
	var (
		conds []string
		args  []any
	)
	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("r.status = $%d", len(args)))
	}
	if filter.RoomID != nil {
		args = append(args, pgconv.UUIDToPgtype(*filter.RoomID))
		conds = append(conds, fmt.Sprintf("r.room_id = $%d", len(args)))
	}
	if filter.GuestID != nil {
		args = append(args, pgconv.UUIDToPgtype(*filter.GuestID))
		conds = append(conds, fmt.Sprintf("r.id IN (SELECT reservation_id FROM reservation_guests WHERE guest_id = $%d)", len(args)))
	}
	if filter.DateFrom != nil {
		args = append(args, pgconv.DateToPgtype(*filter.DateFrom))
		conds = append(conds, fmt.Sprintf("r.check_out > $%d", len(args)))
	}
	if filter.DateTo != nil {
		args = append(args, pgconv.DateToPgtype(*filter.DateTo))
		conds = append(conds, fmt.Sprintf("r.check_in < $%d", len(args)))
	}

	query := listReservationsBaseSQL
	if len(conds) > 0 {
		query += "WHERE " + strings.Join(conds, " AND ") + "\n"
	}
	query += "ORDER BY r.check_in DESC, r.created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	var result []*queries.ReservationListItem
	for rows.Next() {
		item, err := scanReservationListItem(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation list item", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reservation list", err)
	}
	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservationListItem(row rowScanner) (*queries.ReservationListItem, error) {
	var (
		item                 queries.ReservationListItem
		resID, roomID        pgtype.UUID
		checkIn, checkOut    pgtype.Date
		createdAt            pgtype.Timestamptz
	)
	if err := row.Scan(
		&resID, &roomID, &item.RoomNumber, &item.PrimaryGuestName,
		&checkIn, &checkOut, &item.NumberOfGuests,
		&item.TotalAmountCents, &item.IsPaid, &item.Status, &createdAt,
	); err != nil {
		return nil, err
	}
	item.ID = uuid.UUID(resID.Bytes)
	item.RoomID = uuid.UUID(roomID.Bytes)
	item.CheckIn = pgconv.DateFromPgtype(checkIn)
	item.CheckOut = pgconv.DateFromPgtype(checkOut)
	item.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return &item, nil
}
