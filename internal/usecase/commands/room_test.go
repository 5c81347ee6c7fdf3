//go:build unit

package commands_test

import (
	"context"
	"testing"

	"hotelcore/internal/domain/room"
	"hotelcore/internal/infra"
	"hotelcore/internal/pkg/clock"
	"hotelcore/internal/usecase/commands"
	"hotelcore/internal/usecase/shared"
	"hotelcore/tests/common/builder"
	sharedmock "hotelcore/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type roomMocks struct {
	uow   *sharedmock.MockUnitOfWork
	tx    *sharedmock.MockTx
	rooms *sharedmock.MockRoomRepository
}

func newRoomMocks(t *testing.T) (*roomMocks, commands.RoomCommands) {
	ctrl := gomock.NewController(t)
	m := &roomMocks{
		uow:   sharedmock.NewMockUnitOfWork(ctrl),
		tx:    sharedmock.NewMockTx(ctrl),
		rooms: sharedmock.NewMockRoomRepository(ctrl),
	}

	m.tx.EXPECT().Rooms().Return(m.rooms).AnyTimes()
	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		},
	).AnyTimes()

	return m, commands.NewRoomCommands(m.uow, clock.NewMockClock(bookingNow))
}

func TestRoomCommands_Create(t *testing.T) {
	ctx := context.Background()

	input := commands.CreateRoomInput{
		Number:     "305",
		Type:       "suite",
		PriceCents: 60000,
		Floor:      3,
		Capacity:   4,
		Features:   []string{"wifi", "minibar"},
	}

	t.Run("registers the room", func(t *testing.T) {
		m, cmds := newRoomMocks(t)

		m.rooms.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, rm *room.Room) error {
				assert.Equal(t, "305", rm.Number())
				assert.Equal(t, room.StatusAvailable, rm.Status())
				return nil
			},
		)

		id, err := cmds.Create(ctx, input)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)
	})

	t.Run("duplicate room number", func(t *testing.T) {
		m, cmds := newRoomMocks(t)

		m.rooms.EXPECT().Create(ctx, gomock.Any()).
			Return(infra.WrapRepoErr("duplicate room number", nil, infra.KindDuplicateKey))

		_, err := cmds.Create(ctx, input)
		assert.ErrorIs(t, err, commands.ErrDuplicateRoomNumber)
	})

	t.Run("unknown room type", func(t *testing.T) {
		_, cmds := newRoomMocks(t)

		bad := input
		bad.Type = "penthouse"
		_, err := cmds.Create(ctx, bad)
		assert.ErrorIs(t, err, commands.ErrInvalidRoomInput)
	})

	t.Run("zero capacity", func(t *testing.T) {
		_, cmds := newRoomMocks(t)

		bad := input
		bad.Capacity = 0
		_, err := cmds.Create(ctx, bad)
		assert.ErrorIs(t, err, commands.ErrInvalidRoomInput)
	})
}

func TestRoomCommands_CompleteCleaning(t *testing.T) {
	ctx := context.Background()
	roomID := uuid.New()

	t.Run("returns the room to available", func(t *testing.T) {
		m, cmds := newRoomMocks(t)

		rm, err := builder.NewRoomBuilder().BuildDomain()
		require.NoError(t, err)
		rm.MarkCleaning(bookingNow)

		m.rooms.EXPECT().FindByIDForUpdate(ctx, roomID).Return(rm, nil)
		m.rooms.EXPECT().Update(ctx, rm).DoAndReturn(
			func(_ context.Context, r *room.Room) error {
				assert.Equal(t, room.StatusAvailable, r.Status())
				return nil
			},
		)

		require.NoError(t, cmds.CompleteCleaning(ctx, roomID))
	})

	t.Run("room is not being cleaned", func(t *testing.T) {
		m, cmds := newRoomMocks(t)

		rm, err := builder.NewRoomBuilder().BuildDomain()
		require.NoError(t, err)

		m.rooms.EXPECT().FindByIDForUpdate(ctx, roomID).Return(rm, nil)

		err = cmds.CompleteCleaning(ctx, roomID)
		assert.ErrorIs(t, err, commands.ErrRoomNotCleaning)
	})

	t.Run("unknown room", func(t *testing.T) {
		m, cmds := newRoomMocks(t)

		m.rooms.EXPECT().FindByIDForUpdate(ctx, roomID).
			Return(nil, infra.WrapRepoErr("room not found", nil, infra.KindNotFound))

		err := cmds.CompleteCleaning(ctx, roomID)
		assert.ErrorIs(t, err, commands.ErrRoomNotFound)
	})
}

func TestRoomCommands_OverrideStatus(t *testing.T) {
	ctx := context.Background()
	roomID := uuid.New()

	t.Run("force-sets maintenance", func(t *testing.T) {
		m, cmds := newRoomMocks(t)

		rm, err := builder.NewRoomBuilder().BuildDomain()
		require.NoError(t, err)

		m.rooms.EXPECT().FindByIDForUpdate(ctx, roomID).Return(rm, nil)
		m.rooms.EXPECT().Update(ctx, rm).DoAndReturn(
			func(_ context.Context, r *room.Room) error {
				assert.Equal(t, room.StatusMaintenance, r.Status())
				return nil
			},
		)

		require.NoError(t, cmds.OverrideStatus(ctx, roomID, "maintenance"))
	})

	t.Run("unknown status string", func(t *testing.T) {
		_, cmds := newRoomMocks(t)

		err := cmds.OverrideStatus(ctx, roomID, "demolished")
		assert.ErrorIs(t, err, commands.ErrInvalidRoomStatus)
	})
}

func TestRoomCommands_Update(t *testing.T) {
	ctx := context.Background()
	roomID := uuid.New()

	input := commands.UpdateRoomInput{
		Number:     "101",
		Type:       "double",
		PriceCents: 18000,
		Floor:      1,
		Capacity:   3,
		Features:   []string{"wifi", "balcony"},
	}

	t.Run("amends the room details", func(t *testing.T) {
		m, cmds := newRoomMocks(t)

		rm, err := builder.NewRoomBuilder().BuildDomain()
		require.NoError(t, err)

		m.rooms.EXPECT().FindByIDForUpdate(ctx, roomID).Return(rm, nil)
		m.rooms.EXPECT().Update(ctx, rm).DoAndReturn(
			func(_ context.Context, r *room.Room) error {
				assert.Equal(t, int64(18000), r.PriceCents())
				assert.Equal(t, 3, r.Capacity())
				return nil
			},
		)

		require.NoError(t, cmds.Update(ctx, roomID, input))
	})

	t.Run("new number already taken", func(t *testing.T) {
		m, cmds := newRoomMocks(t)

		rm, err := builder.NewRoomBuilder().BuildDomain()
		require.NoError(t, err)

		m.rooms.EXPECT().FindByIDForUpdate(ctx, roomID).Return(rm, nil)
		m.rooms.EXPECT().Update(ctx, rm).
			Return(infra.WrapRepoErr("duplicate room number", nil, infra.KindDuplicateKey))

		err = cmds.Update(ctx, roomID, input)
		assert.ErrorIs(t, err, commands.ErrDuplicateRoomNumber)
	})
}
