package response

import (
	"time"

	"hotelcore/internal/usecase/commands"
	"hotelcore/internal/usecase/queries"
	"hotelcore/internal/usecase/validator"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID               uuid.UUID                  `json:"id"`
	RoomID           uuid.UUID                  `json:"roomId"`
	RoomNumber       string                     `json:"roomNumber"`
	PrimaryGuestID   uuid.UUID                  `json:"primaryGuestId"`
	PrimaryGuestName string                     `json:"primaryGuestName"`
	CheckIn          time.Time                  `json:"checkIn"`
	CheckOut         time.Time                  `json:"checkOut"`
	ActualCheckOut   *time.Time                 `json:"actualCheckOut,omitempty"`
	NumberOfGuests   int                        `json:"numberOfGuests"`
	TotalAmountCents int64                      `json:"totalAmountCents"`
	PaidAmountCents  int64                      `json:"paidAmountCents"`
	IsPaid           bool                       `json:"isPaid"`
	PaymentMethod    string                     `json:"paymentMethod,omitempty"`
	PaymentDate      *time.Time                 `json:"paymentDate,omitempty"`
	SpecialRequests  string                     `json:"specialRequests,omitempty"`
	Status           string                     `json:"status"`
	Guests           []ReservationGuestResponse `json:"guests"`
	CreatedAt        time.Time                  `json:"createdAt"`
	UpdatedAt        time.Time                  `json:"updatedAt"`
}

type ReservationGuestResponse struct {
	GuestID        uuid.UUID `json:"guestId"`
	Name           string    `json:"name"`
	IdentityNumber string    `json:"identityNumber"`
	IsPrimary      bool      `json:"isPrimary"`
}

type ReservationListResponse struct {
	ID               uuid.UUID `json:"id"`
	RoomID           uuid.UUID `json:"roomId"`
	RoomNumber       string    `json:"roomNumber"`
	PrimaryGuestName string    `json:"primaryGuestName"`
	CheckIn          time.Time `json:"checkIn"`
	CheckOut         time.Time `json:"checkOut"`
	NumberOfGuests   int       `json:"numberOfGuests"`
	TotalAmountCents int64     `json:"totalAmountCents"`
	IsPaid           bool      `json:"isPaid"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
}

type CheckOutResponse struct {
	Success         bool   `json:"success"`
	Message         string `json:"message"`
	RequiresPayment bool   `json:"requiresPayment,omitempty"`
	RemainingCents  int64  `json:"remainingCents,omitempty"`
}

func FromReservationView(rm *queries.ReservationView) *ReservationResponse {
	guests := make([]ReservationGuestResponse, len(rm.Guests))
	for i, g := range rm.Guests {
		guests[i] = ReservationGuestResponse{
			GuestID:        g.GuestID,
			Name:           g.Name,
			IdentityNumber: g.IdentityNumber,
			IsPrimary:      g.IsPrimary,
		}
	}

	return &ReservationResponse{
		ID:               rm.ID,
		RoomID:           rm.RoomID,
		RoomNumber:       rm.RoomNumber,
		PrimaryGuestID:   rm.PrimaryGuestID,
		PrimaryGuestName: rm.PrimaryGuestName,
		CheckIn:          rm.CheckIn,
		CheckOut:         rm.CheckOut,
		ActualCheckOut:   rm.ActualCheckOut,
		NumberOfGuests:   rm.NumberOfGuests,
		TotalAmountCents: rm.TotalAmountCents,
		PaidAmountCents:  rm.PaidAmountCents,
		IsPaid:           rm.IsPaid,
		PaymentMethod:    rm.PaymentMethod,
		PaymentDate:      rm.PaymentDate,
		SpecialRequests:  rm.SpecialRequests,
		Status:           rm.Status,
		Guests:           guests,
		CreatedAt:        rm.CreatedAt,
		UpdatedAt:        rm.UpdatedAt,
	}
}

func FromReservationListItem(rm *queries.ReservationListItem) *ReservationListResponse {
	return &ReservationListResponse{
		ID:               rm.ID,
		RoomID:           rm.RoomID,
		RoomNumber:       rm.RoomNumber,
		PrimaryGuestName: rm.PrimaryGuestName,
		CheckIn:          rm.CheckIn,
		CheckOut:         rm.CheckOut,
		NumberOfGuests:   rm.NumberOfGuests,
		TotalAmountCents: rm.TotalAmountCents,
		IsPaid:           rm.IsPaid,
		Status:           rm.Status,
		CreatedAt:        rm.CreatedAt,
	}
}

func FromCheckOutResult(result *commands.CheckOutResult) *CheckOutResponse {
	return &CheckOutResponse{
		Success:         result.Success,
		Message:         result.Message,
		RequiresPayment: result.RequiresPayment,
		RemainingCents:  result.RemainingCents,
	}
}

type ValidationResponse struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

func FromValidationResult(result validator.Result) *ValidationResponse {
	violations := result.Errors
	if violations == nil {
		violations = []string{}
	}
	return &ValidationResponse{
		IsValid: result.IsValid,
		Errors:  violations,
	}
}
