package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/logger"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/mock"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/models"
)

func TestMutationPropagator_OfflineIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mock.NewMockRemoteStore(ctrl) // no expectations: any call fails the test

	p := NewMutationPropagator(remote, NewConnectivityMonitor(false), logger.Nop())

	assert.NotPanics(t, func() {
		p.MirrorAdd(context.Background(), testTenant, models.Houses, 1, models.Payload{"name": "Ashford"})
		p.MirrorUpdate(context.Background(), testTenant, models.Houses, 1, models.Payload{"name": "Blackmoor"})
		p.MirrorDelete(context.Background(), testTenant, models.Houses, 1)
	})
	p.Wait()
}

func TestMutationPropagator_NoTenantIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mock.NewMockRemoteStore(ctrl)

	p := NewMutationPropagator(remote, NewConnectivityMonitor(true), logger.Nop())

	p.MirrorAdd(context.Background(), "", models.Persons, 1, models.Payload{})
	p.MirrorUpdate(context.Background(), "", models.Persons, 1, models.Payload{})
	p.MirrorDelete(context.Background(), "", models.Persons, 1)
	p.Wait()
}

func TestMutationPropagator_IssuesOneCallEach(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mock.NewMockRemoteStore(ctrl)
	syncedAt := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)

	remote.EXPECT().
		Set(gomock.Any(), testTenant, models.Houses, int64(3), models.Payload{
			"name":               "Ashford",
			models.FieldLocalID:  int64(3),
			models.FieldSyncedAt: "2026-02-02T00:00:00Z",
		}).
		Return(nil).Times(1)
	remote.EXPECT().
		Update(gomock.Any(), testTenant, models.Houses, int64(3), models.Payload{
			"motto":              "Ever onward",
			models.FieldSyncedAt: "2026-02-02T00:00:00Z",
		}).
		Return(nil).Times(1)
	remote.EXPECT().
		Delete(gomock.Any(), testTenant, models.Houses, int64(3)).
		Return(nil).Times(1)

	p := NewMutationPropagator(remote, NewConnectivityMonitor(true), logger.Nop()).(*mutationPropagator)
	p.now = func() time.Time { return syncedAt }

	p.MirrorAdd(context.Background(), testTenant, models.Houses, 3, models.Payload{"name": "Ashford"})
	p.MirrorUpdate(context.Background(), testTenant, models.Houses, 3, models.Payload{"motto": "Ever onward"})
	p.MirrorDelete(context.Background(), testTenant, models.Houses, 3)
	p.Wait()
}

func TestMutationPropagator_SwallowsRemoteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mock.NewMockRemoteStore(ctrl)
	remote.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("resource exhausted"))

	local := newMemLocalStore()
	id, err := local.Add(context.Background(), models.Persons, models.Payload{"name": "Ada"})
	require.NoError(t, err)

	p := NewMutationPropagator(remote, NewConnectivityMonitor(true), logger.Nop())
	assert.NotPanics(t, func() {
		p.MirrorAdd(context.Background(), testTenant, models.Persons, id, models.Payload{"name": "Ada"})
	})
	p.Wait()

	records, err := local.ListAll(context.Background(), models.Persons)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, id, records[0].ID)
	assert.Equal(t, "Ada", records[0].Payload["name"])
}

func TestMutationPropagator_DetachedFromCallerContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mock.NewMockRemoteStore(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	var callErr error
	remote.EXPECT().Delete(gomock.Any(), testTenant, models.Persons, int64(8)).
		DoAndReturn(func(ctx context.Context, _ string, _ models.Kind, _ int64) error {
			callErr = ctx.Err()
			return callErr
		})

	p := NewMutationPropagator(remote, NewConnectivityMonitor(true), logger.Nop())
	cancel()
	p.MirrorDelete(ctx, testTenant, models.Persons, 8)
	p.Wait()

	assert.NoError(t, callErr)
}

func TestMutationPropagator_IdentityMismatchDropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mock.NewMockRemoteStore(ctrl)

	p := NewMutationPropagator(remote, NewConnectivityMonitor(true), logger.Nop())

	p.MirrorAdd(context.Background(), testTenant, models.Persons, 5, models.Payload{models.FieldLocalID: 6})
	p.MirrorUpdate(context.Background(), testTenant, models.Persons, 5, models.Payload{models.FieldID: 9})
	p.Wait()
}

func TestMutationPropagator_FollowsConnectivity(t *testing.T) {
	remote := newMemRemoteStore()
	monitor := NewConnectivityMonitor(false)
	p := NewMutationPropagator(remote, monitor, logger.Nop())

	p.MirrorAdd(context.Background(), testTenant, models.Houses, 1, models.Payload{"name": "Lost"})
	p.Wait()
	assert.Zero(t, remote.count(testTenant, models.Houses))

	monitor.SetOnline(true)
	p.MirrorAdd(context.Background(), testTenant, models.Houses, 2, models.Payload{"name": "Kept"})
	p.Wait()

	_, lost := remote.doc(testTenant, models.Houses, 1)
	assert.False(t, lost, "offline mirrors are not replayed on reconnect")
	doc, ok := remote.doc(testTenant, models.Houses, 2)
	require.True(t, ok)
	assert.Equal(t, "Kept", doc["name"])
}
