package request

import (
	"strings"
	"time"

	"hotelcore/internal/pkg/ptr"
	"hotelcore/internal/usecase/commands"
	"hotelcore/internal/usecase/validator"

	"github.com/google/uuid"
)

type GuestDetail struct {
	Name           string `json:"name" binding:"required"`
	IdentityNumber string `json:"identity_number" binding:"required"`
	Email          string `json:"email,omitempty"`
	Phone          string `json:"phone,omitempty"`
	Address        string `json:"address,omitempty"`
}

type CreateReservationRequest struct {
	RoomID                uuid.UUID     `json:"room_id" binding:"required"`
	CheckIn               time.Time     `json:"check_in" binding:"required"`
	CheckOut              time.Time     `json:"check_out" binding:"required"`
	NumberOfGuests        int           `json:"number_of_guests" binding:"required,min=1"`
	PrimaryGuestName      string        `json:"primary_guest_name" binding:"required"`
	PrimaryGuestIDNumber  string        `json:"primary_guest_id_number" binding:"required"`
	PrimaryGuestEmail     string        `json:"primary_guest_email,omitempty"`
	PrimaryGuestPhone     string        `json:"primary_guest_phone,omitempty"`
	PrimaryGuestAddress   string        `json:"primary_guest_address,omitempty"`
	AdditionalGuests      []GuestDetail `json:"additional_guests,omitempty"`
	TotalAmountCents      int64         `json:"total_amount_cents"`
	PaidAmountCents       int64         `json:"paid_amount_cents"`
	PaymentMethod         string        `json:"payment_method,omitempty"`
	SpecialRequests       string        `json:"special_requests,omitempty"`
}

func (r CreateReservationRequest) ToInput() validator.CreateReservationInput {
	additional := make([]validator.GuestDetail, len(r.AdditionalGuests))
	for i, g := range r.AdditionalGuests {
		additional[i] = validator.GuestDetail{
			Name:           strings.TrimSpace(g.Name),
			IdentityNumber: g.IdentityNumber,
			Email:          g.Email,
			Phone:          g.Phone,
			Address:        g.Address,
		}
	}

	return validator.CreateReservationInput{
		RoomID:         r.RoomID,
		CheckIn:        r.CheckIn,
		CheckOut:       r.CheckOut,
		NumberOfGuests: r.NumberOfGuests,
		PrimaryGuest: validator.GuestDetail{
			Name:           strings.TrimSpace(r.PrimaryGuestName),
			IdentityNumber: r.PrimaryGuestIDNumber,
			Email:          r.PrimaryGuestEmail,
			Phone:          r.PrimaryGuestPhone,
			Address:        r.PrimaryGuestAddress,
		},
		AdditionalGuests: additional,
		TotalAmountCents: r.TotalAmountCents,
		PaidAmountCents:  r.PaidAmountCents,
		PaymentMethod:    r.PaymentMethod,
		SpecialRequests:  strings.TrimSpace(r.SpecialRequests),
	}
}

type UpdateReservationRequest struct {
	CheckIn          time.Time `json:"check_in" binding:"required"`
	CheckOut         time.Time `json:"check_out" binding:"required"`
	NumberOfGuests   int       `json:"number_of_guests" binding:"required,min=1"`
	TotalAmountCents int64     `json:"total_amount_cents"`
	PaidAmountCents  int64     `json:"paid_amount_cents"`
	PaymentMethod    *string   `json:"payment_method,omitempty"`
	SpecialRequests  *string   `json:"special_requests,omitempty"`
}

func (r UpdateReservationRequest) ToInput() commands.UpdateReservationInput {
	requests := r.SpecialRequests
	if requests != nil {
		requests = ptr.To(strings.TrimSpace(*requests))
	}
	return commands.UpdateReservationInput{
		CheckIn:          r.CheckIn,
		CheckOut:         r.CheckOut,
		NumberOfGuests:   r.NumberOfGuests,
		TotalAmountCents: r.TotalAmountCents,
		PaidAmountCents:  r.PaidAmountCents,
		PaymentMethod:    r.PaymentMethod,
		SpecialRequests:  requests,
	}
}
