package tui

import "github.com/tysonmwilliams-source/lineageweaverty-sub001/models"

// statusMsg carries a broadcaster update into the program.
type statusMsg models.SyncStatus

type syncDoneMsg struct {
	result models.SyncResult
}

type countsLoadedMsg struct {
	counts map[models.Kind]int
	err    error
}

type copiedMsg struct {
	err error
}

type clearNoticeMsg struct{}
