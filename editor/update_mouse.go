package editor

import tea "github.com/charmbracelet/bubbletea"

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	if tea.MouseEvent(msg).IsWheel() {
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	if !m.focused || m.buf == nil {
		return m, nil
	}

	// Only handle selection/cursor changes for left button interactions.
	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if !m.mouseInBounds(msg.X, msg.Y) {
			return m, nil
		}

		p := m.screenToOffset(msg.X, msg.Y)
		if msg.Shift {
			m.mouseAnchor = m.buf.Anchor()
			m.buf.SetSelection(m.mouseAnchor, p)
		} else {
			m.mouseAnchor = p
			m.buf.SetCursor(p)
		}
		m.mouseDragging = true

	case tea.MouseActionMotion:
		if !m.mouseDragging {
			return m, nil
		}

		x, y := m.clampMouseToBounds(msg.X, msg.Y)
		m.buf.SetSelection(m.mouseAnchor, m.screenToOffset(x, y))

	case tea.MouseActionRelease:
		m.mouseDragging = false
	}

	return m, nil
}

// screenToOffset maps viewport-relative coordinates to a document offset.
func (m Model) screenToOffset(x, y int) int {
	return m.layout.OffsetAt(x, y+m.viewport.YOffset)
}

func (m Model) mouseInBounds(x, y int) bool {
	if m.viewport.Width <= 0 || m.viewport.Height <= 0 {
		return false
	}
	return x >= 0 && x < m.viewport.Width && y >= 0 && y < m.viewport.Height
}

func (m Model) clampMouseToBounds(x, y int) (int, int) {
	if m.viewport.Width > 0 {
		x = clampInt(x, 0, m.viewport.Width-1)
	}
	if m.viewport.Height > 0 {
		y = clampInt(y, 0, m.viewport.Height-1)
	}
	return x, y
}
