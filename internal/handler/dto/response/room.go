package response

import (
	"time"

	"hotelcore/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomResponse struct {
	ID         uuid.UUID `json:"id"`
	Number     string    `json:"number"`
	Type       string    `json:"type"`
	PriceCents int64     `json:"priceCents"`
	Status     string    `json:"status"`
	Floor      int       `json:"floor"`
	Capacity   int       `json:"capacity"`
	Features   []string  `json:"features"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func FromRoomView(rm *queries.RoomView) *RoomResponse {
	return &RoomResponse{
		ID:         rm.ID,
		Number:     rm.Number,
		Type:       rm.Type,
		PriceCents: rm.PriceCents,
		Status:     rm.Status,
		Floor:      rm.Floor,
		Capacity:   rm.Capacity,
		Features:   rm.Features,
		CreatedAt:  rm.CreatedAt,
		UpdatedAt:  rm.UpdatedAt,
	}
}

func FromRoomViews(views []*queries.RoomView) []*RoomResponse {
	result := make([]*RoomResponse, len(views))
	for i, v := range views {
		result[i] = FromRoomView(v)
	}
	return result
}
