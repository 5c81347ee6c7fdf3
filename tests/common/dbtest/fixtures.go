//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123"
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestStaff(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	staffID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO staff (id, email, password_hash, name, role, is_active) VALUES ($1, $2, $3, $4, $5, true) ON CONFLICT (email) DO NOTHING",
		staffID, email, testPasswordHash, "Test Staff", role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM staff WHERE email = $1", email).Scan(&staffID)
	}

	return staffID
}

func CreateTestRoom(t *testing.T, db DBLike, number string, capacity int, priceCents int64) uuid.UUID {
	t.Helper()

	roomID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO rooms (id, number, type, price_cents, status, floor, capacity) VALUES ($1, $2, 'double', $3, 'available', 1, $4) ON CONFLICT (number) DO NOTHING",
		roomID, number, priceCents, capacity)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM rooms WHERE number = $1", number).Scan(&roomID)
	}

	return roomID
}

func CreateTestGuest(t *testing.T, db DBLike, name, idNumber string) uuid.UUID {
	t.Helper()

	guestID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO guests (id, name, id_number) VALUES ($1, $2, $3) ON CONFLICT (id_number) DO NOTHING",
		guestID, name, idNumber)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM guests WHERE id_number = $1", idNumber).Scan(&guestID)
	}

	return guestID
}

func CreateTestReservation(t *testing.T, db DBLike, roomID, guestID uuid.UUID, checkIn, checkOut time.Time, status string) uuid.UUID {
	t.Helper()

	reservationID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		`INSERT INTO reservations (id, room_id, primary_guest_id, check_in, check_out, number_of_guests, total_amount_cents, paid_amount_cents, status)
		 VALUES ($1, $2, $3, $4, $5, 1, 30000, 0, $6)`,
		reservationID, roomID, guestID, checkIn, checkOut, status)
	require.NoError(t, err)

	_, err = db.Exec(ctx,
		"INSERT INTO reservation_guests (reservation_id, guest_id, is_primary) VALUES ($1, $2, true)",
		reservationID, guestID)
	require.NoError(t, err)

	return reservationID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO staff (id, email, password_hash, name, role, is_active) VALUES
		    (gen_random_uuid(), 'manager@example.com', '`+testPasswordHash+`', 'Default Manager', 'manager', true),
		    (gen_random_uuid(), 'reception@example.com', '`+testPasswordHash+`', 'Default Receptionist', 'receptionist', true),
		    (gen_random_uuid(), 'cleaning@example.com', '`+testPasswordHash+`', 'Default Housekeeping', 'housekeeping', true)
		ON CONFLICT (email) DO NOTHING;
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var tbl string
			if err := rows.Scan(&tbl); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, tbl)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
