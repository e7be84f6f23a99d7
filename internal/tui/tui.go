// Package tui renders the sync status indicator of the lineage client.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/logger"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/service"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/models"
)

// statusBuffer bounds the status updates queued for the program; when it is
// full the oldest queued update is discarded.
const statusBuffer = 32

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}
}

// Run shows the status indicator for tenant, bootstrapping the sync on
// start. It blocks until the user quits and then returns [ErrUserQuit].
func (t *TUI) Run(ctx context.Context, tenant string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	updates := make(chan models.SyncStatus, statusBuffer)
	unsubscribe := t.services.Status.Subscribe(func(status models.SyncStatus) {
		if offerLatest(updates, status) {
			t.logger.Debug().Str("func", "TUI.Run").Msg("stale status update dropped")
		}
	})
	defer unsubscribe()

	model := newStatusModel(ctx, t.services, tenant, t.buildInfo, updates)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(statusModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

// offerLatest queues status without blocking, discarding the oldest queued
// update if the buffer is full. It reports whether anything was discarded.
func offerLatest(updates chan models.SyncStatus, status models.SyncStatus) (dropped bool) {
	for {
		select {
		case updates <- status:
			return dropped
		default:
		}
		select {
		case <-updates:
			dropped = true
		default:
		}
	}
}
