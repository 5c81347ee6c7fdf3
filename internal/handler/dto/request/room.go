package request

import (
	"hotelcore/internal/usecase/commands"
)

type CreateRoomRequest struct {
	Number     string   `json:"number" binding:"required"`
	Type       string   `json:"type" binding:"required"`
	PriceCents int64    `json:"price_cents" binding:"min=0"`
	Floor      int      `json:"floor"`
	Capacity   int      `json:"capacity" binding:"required,min=1"`
	Features   []string `json:"features,omitempty"`
}

func (r CreateRoomRequest) ToInput() commands.CreateRoomInput {
	return commands.CreateRoomInput{
		Number:     r.Number,
		Type:       r.Type,
		PriceCents: r.PriceCents,
		Floor:      r.Floor,
		Capacity:   r.Capacity,
		Features:   r.Features,
	}
}

type UpdateRoomRequest struct {
	Number     string   `json:"number" binding:"required"`
	Type       string   `json:"type" binding:"required"`
	PriceCents int64    `json:"price_cents" binding:"min=0"`
	Floor      int      `json:"floor"`
	Capacity   int      `json:"capacity" binding:"required,min=1"`
	Features   []string `json:"features,omitempty"`
}

func (r UpdateRoomRequest) ToInput() commands.UpdateRoomInput {
	return commands.UpdateRoomInput{
		Number:     r.Number,
		Type:       r.Type,
		PriceCents: r.PriceCents,
		Floor:      r.Floor,
		Capacity:   r.Capacity,
		Features:   r.Features,
	}
}

type OverrideRoomStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
