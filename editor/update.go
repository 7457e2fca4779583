package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/zeno/buffer"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused || m.buf == nil {
		return m, nil
	}

	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		m.dispatch(buffer.Command{Kind: buffer.CmdInsert, Text: normalizeNewlines(string(msg.Runes))})
		return m, nil
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Copy):
		m.copySelection()
		return m, nil
	case key.Matches(msg, km.Cut):
		if m.cfg.ReadOnly {
			m.copySelection()
		} else {
			m.cutSelection()
		}
		return m, nil
	case key.Matches(msg, km.Paste):
		m.pasteClipboard()
		return m, nil
	}

	if cmd, ok := km.CommandFor(msg); ok {
		m.dispatch(cmd)
		return m, nil
	}

	switch {
	case msg.Type == tea.KeyTab:
		m.dispatch(buffer.Command{Kind: buffer.CmdInsert, Text: "\t"})
	case msg.Type == tea.KeySpace:
		m.dispatch(buffer.Command{Kind: buffer.CmdInsert, Text: " "})
	case msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt:
		m.dispatch(buffer.Command{Kind: buffer.CmdInsert, Text: string(msg.Runes)})
	}
	return m, nil
}

// dispatch runs cmd against the buffer unless the editor is read-only and
// cmd would change the text.
func (m Model) dispatch(cmd buffer.Command) bool {
	if m.cfg.ReadOnly && cmd.Kind.Mutates() {
		return false
	}
	return m.buf.Dispatch(cmd)
}

func (m Model) copySelection() {
	if m.cfg.Clipboard == nil || m.buf == nil {
		return
	}
	s := m.buf.SelectedText()
	if s == "" {
		return
	}
	_ = m.cfg.Clipboard.WriteText(s)
}

func (m Model) cutSelection() {
	if m.cfg.Clipboard == nil || m.buf == nil {
		return
	}
	s := m.buf.SelectedText()
	if s == "" {
		return
	}
	// Keep the text when it could not be stored.
	if err := m.cfg.Clipboard.WriteText(s); err != nil {
		return
	}
	m.buf.DeleteSelection()
}

func (m Model) pasteClipboard() {
	if m.cfg.Clipboard == nil || m.buf == nil || m.cfg.ReadOnly {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil || s == "" {
		return
	}
	m.dispatch(buffer.Command{Kind: buffer.CmdInsert, Text: normalizeNewlines(s)})
}

// normalizeNewlines converts newlines from external sources to "\n".
func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
