//go:build unit || e2e

package builder

import (
	"time"

	"hotelcore/internal/domain/room"
	"hotelcore/internal/handler/dto/request"
)

type RoomBuilder struct {
	number     string
	roomType   room.Type
	priceCents int64
	floor      int
	capacity   int
	features   []string
	now        time.Time
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		number:     "101",
		roomType:   room.TypeDouble,
		priceCents: 15000,
		floor:      1,
		capacity:   2,
		features:   []string{"wifi"},
		now:        time.Now().UTC(),
	}
}

func (b *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(b)
	return b
}

func (b *RoomBuilder) WithNumber(number string) *RoomBuilder {
	b.number = number
	return b
}

func (b *RoomBuilder) WithType(roomType room.Type) *RoomBuilder {
	b.roomType = roomType
	return b
}

func (b *RoomBuilder) WithPriceCents(priceCents int64) *RoomBuilder {
	b.priceCents = priceCents
	return b
}

func (b *RoomBuilder) WithFloor(floor int) *RoomBuilder {
	b.floor = floor
	return b
}

func (b *RoomBuilder) WithCapacity(capacity int) *RoomBuilder {
	b.capacity = capacity
	return b
}

func (b *RoomBuilder) WithFeatures(features ...string) *RoomBuilder {
	b.features = features
	return b
}

func (b *RoomBuilder) BuildDomain() (*room.Room, error) {
	return room.NewRoom(b.now, b.number, b.roomType, b.priceCents, b.floor, b.capacity, b.features)
}

func (b *RoomBuilder) BuildCreateRequestDTO() request.CreateRoomRequest {
	return request.CreateRoomRequest{
		Number:     b.number,
		Type:       b.roomType.String(),
		PriceCents: b.priceCents,
		Floor:      b.floor,
		Capacity:   b.capacity,
		Features:   b.features,
	}
}
