package response

import (
	"time"

	"hotelcore/internal/usecase/queries"

	"github.com/google/uuid"
)

type GuestResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email,omitempty"`
	Phone           string    `json:"phone,omitempty"`
	IdentityNumber  string    `json:"identityNumber"`
	Address         string    `json:"address,omitempty"`
	IsActive        bool      `json:"isActive"`
	Visits          int       `json:"visits"`
	TotalSpentCents int64     `json:"totalSpentCents"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func FromGuestView(rm *queries.GuestView) *GuestResponse {
	return &GuestResponse{
		ID:              rm.ID,
		Name:            rm.Name,
		Email:           rm.Email,
		Phone:           rm.Phone,
		IdentityNumber:  rm.IdentityNumber,
		Address:         rm.Address,
		IsActive:        rm.IsActive,
		Visits:          rm.Visits,
		TotalSpentCents: rm.TotalSpentCents,
		CreatedAt:       rm.CreatedAt,
		UpdatedAt:       rm.UpdatedAt,
	}
}
