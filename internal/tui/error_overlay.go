package tui

// errorOverlayModel covers the screen until enter or esc is pressed.
type errorOverlayModel struct {
	title   string
	message string
}

func (m errorOverlayModel) View() string {
	title := m.title
	if title == "" {
		title = "Ошибка"
	}

	content := errorStyle.Render(title) + "\n\n" + m.message + "\n\n" + helpStyle.Render("enter / esc: закрыть")
	return overlayBoxStyle.Render(content)
}
