package tui

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	content := errorStyle.Render("Last sync failed") + "\n\n" + humanizeSyncError(m.message) + "\n\n" +
		helpLine(keys.copyError, keys.resync)
	return overlayBoxStyle.Render(content)
}
