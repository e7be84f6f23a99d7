// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"
)

// ErrUserQuit is returned by [TUI.Run] when the user leaves with q or ctrl+c.
var ErrUserQuit = errors.New("user quit")

// humanizeSyncError shortens transport failures to one readable line. Other
// messages are returned unchanged.
func humanizeSyncError(message string) string {
	s := strings.ToLower(message)
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Network is down or the server is unreachable"
	}

	return message
}
