package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/adapter"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/config"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/logger"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/mock"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/models"
)

func snapshotOf(kind models.Kind, n int) models.Snapshot {
	records := make([]models.Record, n)
	for i := range records {
		records[i] = models.Record{ID: int64(i + 1), Payload: models.Payload{"n": i}}
	}
	return models.Snapshot{{Kind: kind, Records: records}}
}

func TestBulkTransfer_Upload_CommitCount(t *testing.T) {
	tests := []struct {
		name        string
		records     int
		threshold   int
		wantCommits int
	}{
		{name: "empty snapshot", records: 0, threshold: 450, wantCommits: 0},
		{name: "below threshold", records: 10, threshold: 450, wantCommits: 1},
		{name: "exact multiple", records: 900, threshold: 450, wantCommits: 2},
		{name: "remainder", records: 1000, threshold: 450, wantCommits: 3},
		{name: "tiny threshold", records: 7, threshold: 2, wantCommits: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			remote := newMemRemoteStore()
			transfer := NewBulkTransfer(remote, tt.threshold, logger.Nop())

			commits, err := transfer.Upload(context.Background(), testTenant, snapshotOf(models.Persons, tt.records))

			require.NoError(t, err)
			assert.Equal(t, tt.wantCommits, commits)
			assert.Equal(t, tt.wantCommits, remote.commits)
			assert.Equal(t, tt.records, remote.count(testTenant, models.Persons))
		})
	}
}

func TestBulkTransfer_Upload_NeverExceedsCeiling(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mock.NewMockRemoteStore(ctrl)
	batch := mock.NewMockBatch(ctrl)

	staged := 0
	maxStaged := 0
	commits := 0

	remote.EXPECT().NewBatch(testTenant).Return(batch)
	batch.EXPECT().Stage(gomock.Any()).DoAndReturn(func(models.BatchOp) error {
		staged++
		maxStaged = max(maxStaged, staged)
		return nil
	}).Times(1200)
	batch.EXPECT().Len().DoAndReturn(func() int { return staged }).AnyTimes()
	batch.EXPECT().Commit(gomock.Any()).DoAndReturn(func(context.Context) error {
		commits++
		staged = 0
		return nil
	}).Times(3)

	transfer := NewBulkTransfer(remote, config.DefaultBatchThreshold, logger.Nop())
	n, err := transfer.Upload(context.Background(), testTenant, snapshotOf(models.Houses, 1200))

	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Less(t, maxStaged, adapter.BatchCeiling)
}

func TestBulkTransfer_Upload_AnnotatesPayload(t *testing.T) {
	remote := newMemRemoteStore()
	transfer := NewBulkTransfer(remote, 450, logger.Nop()).(*bulkTransfer)
	transfer.now = func() time.Time { return time.Date(2026, 5, 4, 3, 2, 1, 0, time.UTC) }

	snapshot := models.Snapshot{{Kind: models.Houses, Records: []models.Record{
		{ID: 42, Payload: models.Payload{"name": "Ashford", "id": 42}},
	}}}
	_, err := transfer.Upload(context.Background(), testTenant, snapshot)
	require.NoError(t, err)

	doc, ok := remote.doc(testTenant, models.Houses, 42)
	require.True(t, ok)
	assert.Equal(t, "Ashford", doc["name"])
	assert.Equal(t, int64(42), doc[models.FieldLocalID])
	assert.Equal(t, "2026-05-04T03:02:01Z", doc[models.FieldSyncedAt])
	assert.Equal(t, models.Payload{"name": "Ashford", "id": 42}, snapshot[0].Records[0].Payload, "input must not be mutated")
}

func TestBulkTransfer_Upload_Idempotent(t *testing.T) {
	remote := newMemRemoteStore()
	transfer := NewBulkTransfer(remote, 3, logger.Nop())

	snapshot := append(snapshotOf(models.Houses, 5), snapshotOf(models.Persons, 8)...)

	_, err := transfer.Upload(context.Background(), testTenant, snapshot)
	require.NoError(t, err)
	once := stripSyncTimes(remote.docs[testTenant])

	_, err = transfer.Upload(context.Background(), testTenant, snapshot)
	require.NoError(t, err)
	twice := stripSyncTimes(remote.docs[testTenant])

	assert.Equal(t, once, twice)
}

func TestBulkTransfer_Upload_StopsOnCommitFailure(t *testing.T) {
	remote := newMemRemoteStore()
	remote.commitErr = errCommitRejected
	remote.failAfter = 2
	transfer := NewBulkTransfer(remote, 4, logger.Nop())

	commits, err := transfer.Upload(context.Background(), testTenant, snapshotOf(models.Persons, 20))

	require.ErrorIs(t, err, errCommitRejected)
	assert.Equal(t, 1, commits)
	assert.Equal(t, 4, remote.count(testTenant, models.Persons), "first batch stays applied")
}

func TestBulkTransfer_Upload_StageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mock.NewMockRemoteStore(ctrl)
	batch := mock.NewMockBatch(ctrl)

	remote.EXPECT().NewBatch(testTenant).Return(batch)
	batch.EXPECT().Stage(gomock.Any()).Return(models.ErrIdentityMismatch)

	_, err := NewBulkTransfer(remote, 450, logger.Nop()).Upload(context.Background(), testTenant, snapshotOf(models.Houses, 3))
	assert.ErrorIs(t, err, models.ErrIdentityMismatch)
}

func TestNewBulkTransfer_ThresholdFallback(t *testing.T) {
	for _, threshold := range []int{0, -1, adapter.BatchCeiling, 10_000} {
		bt := NewBulkTransfer(newMemRemoteStore(), threshold, logger.Nop()).(*bulkTransfer)
		assert.Equal(t, config.DefaultBatchThreshold, bt.threshold, "threshold %d", threshold)
	}
	bt := NewBulkTransfer(newMemRemoteStore(), 499, logger.Nop()).(*bulkTransfer)
	assert.Equal(t, 499, bt.threshold)
}

func TestBulkTransfer_Download_OrderedByDependency(t *testing.T) {
	remote := newMemRemoteStore()
	remote.seed(testTenant, models.HouseholdRoles, 9)
	remote.seed(testTenant, models.Persons, 3, 1, 2)
	remote.seed(testTenant, models.Houses, 5)
	remote.seed("someone-else", models.Houses, 77)

	snapshot, err := NewBulkTransfer(remote, 450, logger.Nop()).Download(context.Background(), testTenant)
	require.NoError(t, err)

	require.Len(t, snapshot, len(models.SyncOrder))
	for i, kind := range models.SyncOrder {
		assert.Equal(t, kind, snapshot[i].Kind)
	}
	assert.Equal(t, []int64{5}, recordIDs(snapshot.Records(models.Houses)))
	assert.Equal(t, []int64{1, 2, 3}, recordIDs(snapshot.Records(models.Persons)))
	assert.Equal(t, []int64{9}, recordIDs(snapshot.Records(models.HouseholdRoles)))
	assert.Equal(t, 5, snapshot.Count())
}

func TestBulkTransfer_Download_Error(t *testing.T) {
	remote := newMemRemoteStore()
	remote.listErrs[models.Relationships] = errors.New("boom")

	snapshot, err := NewBulkTransfer(remote, 450, logger.Nop()).Download(context.Background(), testTenant)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "relationships")
	assert.Nil(t, snapshot)
}

func stripSyncTimes(docs map[models.Kind]map[int64]models.Payload) map[models.Kind]map[int64]models.Payload {
	out := make(map[models.Kind]map[int64]models.Payload, len(docs))
	for kind, byID := range docs {
		out[kind] = make(map[int64]models.Payload, len(byID))
		for id, doc := range byID {
			clean := doc.Clone()
			delete(clean, models.FieldSyncedAt)
			out[kind][id] = clean
		}
	}
	return out
}
