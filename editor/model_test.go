package editor

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func TestModel_SetSizeAffectsViewHeight(t *testing.T) {
	m := New(Config{Text: "a\nb\nc"})
	m = m.Blur()

	m = m.SetSize(20, 2)
	if got := lipgloss.Height(m.View()); got != 2 {
		t.Fatalf("height after SetSize(20,2): got %d, want %d", got, 2)
	}

	m = m.SetSize(20, 4)
	if got := lipgloss.Height(m.View()); got != 4 {
		t.Fatalf("height after SetSize(20,4): got %d, want %d", got, 4)
	}
}

func TestModel_WindowSizeMsgResizes(t *testing.T) {
	m := New(Config{Text: "a"})
	m, _ = m.Update(tea.WindowSizeMsg{Width: 12, Height: 3})
	if m.viewport.Width != 12 || m.viewport.Height != 3 {
		t.Fatalf("viewport size: got %dx%d, want 12x3", m.viewport.Width, m.viewport.Height)
	}
}

func TestView_SnapshotFixedSize(t *testing.T) {
	m := New(Config{
		Text:         "one\ntwo\nthree\nfour\nfive",
		ShowLineNums: true,
	})
	m = m.Blur()
	m = m.SetSize(8, 3)

	got := plainLines(m.View())
	want := []string{
		"1 one",
		"2 two",
		"3 three",
	}
	if fmt.Sprintf("%q", got) != fmt.Sprintf("%q", want) {
		t.Fatalf("unexpected view:\n got: %q\nwant: %q", got, want)
	}
}

func TestModel_FocusAndBlur(t *testing.T) {
	m := New(Config{Text: "a"})
	if !m.Focused() {
		t.Fatalf("expected new model to be focused")
	}
	m = m.Blur()
	if m.Focused() {
		t.Fatalf("expected blurred model")
	}
	m = m.Focus()
	if !m.Focused() {
		t.Fatalf("expected focused model after Focus")
	}
}

func TestModel_DefaultsApplied(t *testing.T) {
	m := New(Config{Text: "a"})
	if m.cfg.TabWidth != defaultTabWidth {
		t.Fatalf("tab width: got %d, want %d", m.cfg.TabWidth, defaultTabWidth)
	}
	if len(m.cfg.KeyMap.Left.Keys()) == 0 {
		t.Fatalf("expected default key map")
	}
	if m.Init() != nil {
		t.Fatalf("Init should return nil")
	}
}

func TestModel_HostMutationIsPickedUpOnUpdate(t *testing.T) {
	m := New(Config{Text: "ab"})
	m.Buffer().SetText("a\nb\nc")

	// Layout is stale until the model observes the change.
	if got := len(m.Layout().Lines); got != 1 {
		t.Fatalf("lines before update: got %d, want %d", got, 1)
	}
	m, _ = m.Update(struct{}{})
	if got := len(m.Layout().Lines); got != 3 {
		t.Fatalf("lines after update: got %d, want %d", got, 3)
	}
}
