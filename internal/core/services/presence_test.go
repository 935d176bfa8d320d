package services

import (
	"context"
	"errors"
	"testing"
	"time"

	cmock "github.com/SHEBN-DEV/Demoshebn/internal/core/contracts/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestPresenceConnectAndDisconnect(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := cmock.NewMockPresenceStore(ctrl)
	svc := NewPresenceService(discardLogger(), store)

	gomock.InOrder(
		store.EXPECT().UpdateOnlineStatus(gomock.Any(), "u1", OnlineWindow).Return(nil),
		store.EXPECT().ClearUser(gomock.Any(), "u1").Return(nil),
	)
	assert.NoError(t, svc.HandleConnect(context.Background(), "u1"))
	assert.NoError(t, svc.HandleDisconnect(context.Background(), "u1"))
}

func TestPresenceConnectReturnsStoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := cmock.NewMockPresenceStore(ctrl)
	boom := errors.New("redis down")
	store.EXPECT().UpdateOnlineStatus(gomock.Any(), "u1", OnlineWindow).Return(boom)

	err := NewPresenceService(discardLogger(), store).HandleConnect(context.Background(), "u1")
	assert.ErrorIs(t, err, boom)
}

func TestPresenceHeartbeatRefreshesUntilCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := cmock.NewMockPresenceStore(ctrl)
	svc := NewPresenceService(discardLogger(), store)
	svc.interval = 5 * time.Millisecond

	beats := make(chan struct{}, 8)
	store.EXPECT().UpdateOnlineStatus(gomock.Any(), "u1", OnlineWindow).
		DoAndReturn(func(context.Context, string, time.Duration) error {
			select {
			case beats <- struct{}{}:
			default:
			}
			return nil
		}).MinTimes(2)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		svc.HandleHeartbeat(ctx, "u1")
		close(done)
	}()

	for i := 0; i < 2; i++ {
		select {
		case <-beats:
		case <-time.After(time.Second):
			t.Fatal("heartbeat did not fire")
		}
	}
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("heartbeat did not stop")
	}
}

func TestPresenceTrackSurvivesConnectFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := cmock.NewMockPresenceStore(ctrl)
	svc := NewPresenceService(discardLogger(), store)
	svc.interval = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	gomock.InOrder(
		store.EXPECT().UpdateOnlineStatus(gomock.Any(), "u1", OnlineWindow).
			DoAndReturn(func(context.Context, string, time.Duration) error {
				cancel()
				return errors.New("redis down")
			}),
		store.EXPECT().ClearUser(gomock.Any(), "u1").
			DoAndReturn(func(ctx context.Context, _ string) error {
				assert.NoError(t, ctx.Err(), "clear runs on a live context")
				return nil
			}),
	)

	done := make(chan struct{})
	go func() {
		svc.Track(ctx, "u1")
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("track did not return")
	}
}
