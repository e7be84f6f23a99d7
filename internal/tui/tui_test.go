package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tysonmwilliams-source/lineageweaverty-sub001/models"
)

func TestOfferLatest(t *testing.T) {
	t.Run("room in the buffer", func(t *testing.T) {
		updates := make(chan models.SyncStatus, 2)

		assert.False(t, offerLatest(updates, models.SyncStatus{IsSyncing: true}))
		require.Len(t, updates, 1)
		assert.True(t, (<-updates).IsSyncing)
	})

	t.Run("full buffer keeps the newest", func(t *testing.T) {
		updates := make(chan models.SyncStatus, 2)
		require.False(t, offerLatest(updates, models.SyncStatus{Error: "one"}))
		require.False(t, offerLatest(updates, models.SyncStatus{Error: "two"}))

		assert.True(t, offerLatest(updates, models.SyncStatus{Error: "three"}))
		require.Len(t, updates, 2)
		assert.Equal(t, "two", (<-updates).Error)
		assert.Equal(t, "three", (<-updates).Error)
	})
}
