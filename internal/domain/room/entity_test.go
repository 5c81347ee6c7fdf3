//go:build unit

package room_test

import (
	"testing"
	"time"

	"hotelcore/internal/domain/room"
	"hotelcore/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoom(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		rm, err := builder.NewRoomBuilder().BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, room.StatusAvailable, rm.Status())
		assert.Equal(t, "101", rm.Number())
		assert.Equal(t, room.TypeDouble, rm.RoomType())
		assert.True(t, rm.CanFit(2))
		assert.False(t, rm.CanFit(3))
	})

	t.Run("capacity must be positive", func(t *testing.T) {
		_, err := builder.NewRoomBuilder().WithCapacity(0).BuildDomain()
		require.ErrorIs(t, err, room.ErrInvalidCapacity)
	})

	t.Run("price cannot be negative", func(t *testing.T) {
		_, err := builder.NewRoomBuilder().WithPriceCents(-1).BuildDomain()
		require.ErrorIs(t, err, room.ErrNegativePrice)
	})
}

func TestRoomStatusLifecycle(t *testing.T) {
	now := time.Date(2026, 3, 12, 10, 0, 0, 0, time.UTC)

	t.Run("occupied and cleaning are engine side effects", func(t *testing.T) {
		rm, err := builder.NewRoomBuilder().BuildDomain()
		require.NoError(t, err)

		rm.MarkOccupied(now)
		assert.Equal(t, room.StatusOccupied, rm.Status())

		rm.MarkCleaning(now)
		assert.Equal(t, room.StatusCleaning, rm.Status())
	})

	t.Run("complete cleaning only from cleaning", func(t *testing.T) {
		rm, err := builder.NewRoomBuilder().BuildDomain()
		require.NoError(t, err)

		err = rm.CompleteCleaning(now)
		require.ErrorIs(t, err, room.ErrNotCleaning)
		assert.Equal(t, room.StatusAvailable, rm.Status())

		rm.MarkCleaning(now)
		require.NoError(t, rm.CompleteCleaning(now))
		assert.Equal(t, room.StatusAvailable, rm.Status())
	})

	t.Run("override accepts any valid status", func(t *testing.T) {
		rm, err := builder.NewRoomBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, rm.OverrideStatus(now, room.StatusMaintenance))
		assert.Equal(t, room.StatusMaintenance, rm.Status())

		err = rm.OverrideStatus(now, room.Status("demolished"))
		require.ErrorIs(t, err, room.ErrInvalidStatus)
		assert.Equal(t, room.StatusMaintenance, rm.Status())
	})
}

func TestRoomAmend(t *testing.T) {
	now := time.Date(2026, 3, 12, 10, 0, 0, 0, time.UTC)

	rm, err := builder.NewRoomBuilder().BuildDomain()
	require.NoError(t, err)

	require.NoError(t, rm.Amend(now, "305", room.TypeSuite, 42000, 3, 4, []string{"wifi", "balcony"}))
	assert.Equal(t, "305", rm.Number())
	assert.Equal(t, room.TypeSuite, rm.RoomType())
	assert.Equal(t, 4, rm.Capacity())

	err = rm.Amend(now, "305", room.TypeSuite, 42000, 3, 0, nil)
	require.ErrorIs(t, err, room.ErrInvalidCapacity)
}

func TestParseTypeAndStatus(t *testing.T) {
	_, err := room.ParseType("penthouse")
	require.ErrorIs(t, err, room.ErrInvalidType)

	rt, err := room.ParseType("deluxe")
	require.NoError(t, err)
	assert.Equal(t, room.TypeDeluxe, rt)

	_, err = room.ParseStatus("unknown")
	require.ErrorIs(t, err, room.ErrInvalidStatus)

	st, err := room.ParseStatus("cleaning")
	require.NoError(t, err)
	assert.Equal(t, room.StatusCleaning, st)
}
