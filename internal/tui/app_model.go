package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/service"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/models"
)

const noticeTTL = 2 * time.Second

// statusModel is the sync status indicator. It starts the bootstrap sync on
// Init and follows the broadcaster afterwards.
type statusModel struct {
	ctx       context.Context
	services  *service.ClientServices
	tenant    string
	buildInfo models.AppBuildInfo
	updates   <-chan models.SyncStatus
	copyFn    func(string) error

	spinner    spinner.Model
	status     models.SyncStatus
	counts     map[models.Kind]int
	lastResult *models.SyncResult
	notice     string

	// syncing is set while a pass started here has not reported back; the
	// broadcaster's IsSyncing lags behind the dispatch.
	syncing bool

	showBuildInfo bool
	quitByUser    bool
}

func newStatusModel(
	ctx context.Context,
	services *service.ClientServices,
	tenant string,
	buildInfo models.AppBuildInfo,
	updates <-chan models.SyncStatus,
) statusModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return statusModel{
		ctx:       ctx,
		services:  services,
		tenant:    tenant,
		buildInfo: buildInfo,
		updates:   updates,
		copyFn:    clipboard.WriteAll,
		spinner:   s,
		status:    services.Status.GetStatus(),
		syncing:   true, // Init dispatches the bootstrap
	}
}

func (m statusModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, waitForStatus(m.ctx, m.updates), m.cmdSync(false))
}

func (m statusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case statusMsg:
		m.status = models.SyncStatus(msg)
		return m, waitForStatus(m.ctx, m.updates)

	case syncDoneMsg:
		m.syncing = false
		m.lastResult = &msg.result
		m.status = m.services.Status.GetStatus()
		return m, m.cmdLoadCounts()

	case countsLoadedMsg:
		if msg.err != nil {
			m.notice = "Could not read local data: " + msg.err.Error()
			return m, nil
		}
		m.counts = msg.counts
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.notice = "Copy failed: " + msg.err.Error()
		} else {
			m.notice = "Error copied to clipboard"
		}
		return m, clearNoticeAfter(noticeTTL)

	case clearNoticeMsg:
		m.notice = ""
		return m, nil
	}

	return m, nil
}

func (m statusModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		m.quitByUser = true
		return m, tea.Quit
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.esc, keys.buildInfo) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = true
		return m, nil

	case key.Matches(msg, keys.resync):
		if m.syncing || m.status.IsSyncing {
			return m, nil
		}
		m.syncing = true
		m.notice = "Full resync started"
		return m, tea.Batch(m.cmdSync(true), clearNoticeAfter(noticeTTL))

	case key.Matches(msg, keys.copyError):
		if m.status.Error == "" {
			m.notice = "Nothing to copy"
			return m, clearNoticeAfter(noticeTTL)
		}
		return m, m.cmdCopy(m.status.Error)
	}

	return m, nil
}

func (m statusModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo)
	}

	body := renderStatus(m.spinner.View(), m.tenant, m.status, m.lastResult, m.counts)
	if m.status.Error != "" && !m.status.IsSyncing {
		body += "\n\n" + errorOverlayModel{message: m.status.Error}.View()
	}
	if m.notice != "" {
		body += "\n\n" + m.notice
	}

	return renderPage("LINEAGE SYNC", body, helpLine(keys.resync, keys.copyError, keys.buildInfo, keys.quit))
}

func (m statusModel) cmdSync(force bool) tea.Cmd {
	return func() tea.Msg {
		if force {
			return syncDoneMsg{result: m.services.SyncService.ForceFullResync(m.ctx, m.tenant)}
		}
		return syncDoneMsg{result: m.services.SyncService.InitializeSync(m.ctx, m.tenant)}
	}
}

func (m statusModel) cmdLoadCounts() tea.Cmd {
	return func() tea.Msg {
		counts := make(map[models.Kind]int, len(models.SyncOrder))
		for _, kind := range models.SyncOrder {
			records, err := m.services.EntityService.List(m.ctx, kind)
			if err != nil {
				return countsLoadedMsg{err: fmt.Errorf("list %s: %w", kind, err)}
			}
			counts[kind] = len(records)
		}
		return countsLoadedMsg{counts: counts}
	}
}

func (m statusModel) cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: m.copyFn(text)}
	}
}

func waitForStatus(ctx context.Context, updates <-chan models.SyncStatus) tea.Cmd {
	return func() tea.Msg {
		select {
		case status := <-updates:
			return statusMsg(status)
		case <-ctx.Done():
			return nil
		}
	}
}

func clearNoticeAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearNoticeMsg{} })
}
