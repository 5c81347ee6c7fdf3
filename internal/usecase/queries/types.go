package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ReservationView struct {
	ID               uuid.UUID              `json:"id"`
	RoomID           uuid.UUID              `json:"room_id"`
	RoomNumber       string                 `json:"room_number"`
	PrimaryGuestID   uuid.UUID              `json:"primary_guest_id"`
	PrimaryGuestName string                 `json:"primary_guest_name"`
	CheckIn          time.Time              `json:"check_in"`
	CheckOut         time.Time              `json:"check_out"`
	ActualCheckOut   *time.Time             `json:"actual_check_out,omitempty"`
	NumberOfGuests   int                    `json:"number_of_guests"`
	TotalAmountCents int64                  `json:"total_amount_cents"`
	PaidAmountCents  int64                  `json:"paid_amount_cents"`
	IsPaid           bool                   `json:"is_paid"`
	PaymentMethod    string                 `json:"payment_method"`
	PaymentDate      *time.Time             `json:"payment_date,omitempty"`
	SpecialRequests  string                 `json:"special_requests"`
	Status           string                 `json:"status"`
	Guests           []ReservationGuestView `json:"guests"`
	CreatedAt        time.Time              `json:"created_at"`
	UpdatedAt        time.Time              `json:"updated_at"`
}

type ReservationGuestView struct {
	GuestID        uuid.UUID `json:"guest_id"`
	Name           string    `json:"name"`
	IdentityNumber string    `json:"identity_number"`
	IsPrimary      bool      `json:"is_primary"`
}

type ReservationListItem struct {
	ID               uuid.UUID `json:"id"`
	RoomID           uuid.UUID `json:"room_id"`
	RoomNumber       string    `json:"room_number"`
	PrimaryGuestName string    `json:"primary_guest_name"`
	CheckIn          time.Time `json:"check_in"`
	CheckOut         time.Time `json:"check_out"`
	NumberOfGuests   int       `json:"number_of_guests"`
	TotalAmountCents int64     `json:"total_amount_cents"`
	IsPaid           bool      `json:"is_paid"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}

type RoomView struct {
	ID         uuid.UUID `json:"id"`
	Number     string    `json:"number"`
	Type       string    `json:"type"`
	PriceCents int64     `json:"price_cents"`
	Status     string    `json:"status"`
	Floor      int       `json:"floor"`
	Capacity   int       `json:"capacity"`
	Features   []string  `json:"features"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type GuestView struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	IdentityNumber  string    `json:"identity_number"`
	Address         string    `json:"address"`
	IsActive        bool      `json:"is_active"`
	Visits          int       `json:"visits"`
	TotalSpentCents int64     `json:"total_spent_cents"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type AuthorizedStaffView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}
