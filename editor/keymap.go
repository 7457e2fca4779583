package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/zeno/buffer"
)

// KeyMap defines the editor key bindings.
//
// Bindings must be portable across terminals (ctrl/alt fallbacks).
type KeyMap struct {
	Left, Right, Up, Down key.Binding
	SelectLeft            key.Binding
	SelectRight           key.Binding
	WordLeft, WordRight   key.Binding
	Home, End             key.Binding
	DocStart, DocEnd      key.Binding
	SelectAll             key.Binding

	Backspace, Delete key.Binding
	Enter             key.Binding

	Copy, Cut, Paste key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		SelectLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "select left")),
		SelectRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "select right")),

		// Portable word movement: terminals vary between alt+arrows and ctrl+arrows.
		WordLeft:  key.NewBinding(key.WithKeys("alt+left", "ctrl+left"), key.WithHelp("alt/ctrl+←", "word left")),
		WordRight: key.NewBinding(key.WithKeys("alt+right", "ctrl+right"), key.WithHelp("alt/ctrl+→", "word right")),

		Home:     key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "line start")),
		End:      key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),
		DocStart: key.NewBinding(key.WithKeys("ctrl+home"), key.WithHelp("ctrl+home", "document start")),
		DocEnd:   key.NewBinding(key.WithKeys("ctrl+end"), key.WithHelp("ctrl+end", "document end")),

		SelectAll: key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "select all")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),

		Copy:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "copy")),
		Cut:   key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "cut")),
		Paste: key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
	}
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.SelectAll, km.Copy, km.Paste}
}

// FullHelp implements help.KeyMap, one column per group.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Left, km.Right, km.Up, km.Down, km.WordLeft, km.WordRight},
		{km.Home, km.End, km.DocStart, km.DocEnd, km.SelectLeft, km.SelectRight, km.SelectAll},
		{km.Backspace, km.Delete, km.Enter, km.Copy, km.Cut, km.Paste},
	}
}

type boundCommand struct {
	binding key.Binding
	cmd     buffer.Command
}

// commands lists the chord table in match priority order.
func (km KeyMap) commands() []boundCommand {
	return []boundCommand{
		{km.SelectLeft, buffer.Command{Kind: buffer.CmdSelectLeft}},
		{km.SelectRight, buffer.Command{Kind: buffer.CmdSelectRight}},
		{km.WordLeft, buffer.Command{Kind: buffer.CmdWordLeft}},
		{km.WordRight, buffer.Command{Kind: buffer.CmdWordRight}},
		{km.Left, buffer.Command{Kind: buffer.CmdLeft}},
		{km.Right, buffer.Command{Kind: buffer.CmdRight}},
		{km.Up, buffer.Command{Kind: buffer.CmdUp}},
		{km.Down, buffer.Command{Kind: buffer.CmdDown}},
		{km.DocStart, buffer.Command{Kind: buffer.CmdDocStart}},
		{km.DocEnd, buffer.Command{Kind: buffer.CmdDocEnd}},
		{km.Home, buffer.Command{Kind: buffer.CmdLineStart}},
		{km.End, buffer.Command{Kind: buffer.CmdLineEnd}},
		{km.SelectAll, buffer.Command{Kind: buffer.CmdSelectAll}},
		{km.Backspace, buffer.Command{Kind: buffer.CmdBackspace}},
		{km.Delete, buffer.Command{Kind: buffer.CmdDelete}},
		{km.Enter, buffer.Command{Kind: buffer.CmdNewline}},
	}
}

// CommandFor returns the buffer command bound to msg, if any.
func (km KeyMap) CommandFor(msg tea.KeyMsg) (buffer.Command, bool) {
	for _, bc := range km.commands() {
		if key.Matches(msg, bc.binding) {
			return bc.cmd, true
		}
	}
	return buffer.Command{}, false
}
