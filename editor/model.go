package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/zeno/buffer"
	"github.com/iw2rmb/zeno/markdown"
)

// Model is a Bubble Tea component that renders and interacts with a buffer.
type Model struct {
	cfg Config
	buf *buffer.Buffer

	focused bool

	viewport viewport.Model
	layout   Layout

	hlValid bool
	hlText  string
	hlSpans []markdown.Span

	lastBufVersion uint64
	lastCursor     int
	lastText       string

	mouseDragging bool
	mouseAnchor   int
}

func New(cfg Config) Model {
	cfg = cfg.withDefaults()
	m := Model{
		cfg:      cfg,
		buf:      buffer.New(cfg.Text),
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.lastBufVersion = m.buf.Version()
	m.lastCursor = m.buf.Cursor()
	m.lastText = m.buf.Text()
	m.rebuildContent()
	return m
}

// Buffer returns the backing buffer. Hosts may mutate it directly; the
// model picks the changes up on the next Update.
func (m Model) Buffer() *buffer.Buffer { return m.buf }

// Layout returns the geometry captured by the most recent render.
func (m Model) Layout() Layout { return m.layout }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height

	m.rebuildContent()
	m.followCursorWithForce(true)
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursorWithForce(true)
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.mouseDragging = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.MouseMsg:
		var cmd tea.Cmd
		m, cmd = m.updateMouse(msg)
		// Don't force-follow cursor here; allow manual scrolling via mouse wheel.
		m.syncFromBuffer()
		return m, cmd
	case tea.KeyMsg:
		var cmd tea.Cmd
		m, cmd = m.updateKey(msg)
		if m.syncFromBuffer() {
			m.followCursorWithForce(true)
		}
		return m, cmd
	default:
		// Rebuild content in case the host mutated the buffer outside of the editor.
		if m.syncFromBuffer() {
			m.followCursorWithForce(true)
		}
		return m, nil
	}
}

func (m Model) View() string { return m.viewport.View() }

// syncFromBuffer re-renders after any buffer change and notifies OnChange.
func (m *Model) syncFromBuffer() (cursorChanged bool) {
	if m.buf == nil {
		return false
	}
	ver := m.buf.Version()
	if ver == m.lastBufVersion {
		return false
	}
	cur := m.buf.Cursor()
	text := m.buf.Text()
	textChanged := text != m.lastText
	cursorChanged = cur != m.lastCursor || textChanged

	m.lastBufVersion = ver
	m.lastCursor = cur
	m.lastText = text
	m.rebuildContent()

	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.buf, textChanged))
	}
	return cursorChanged
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) followCursorWithForce(force bool) {
	if m.buf == nil {
		return
	}
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}

	row := m.layout.LineForOffset(m.buf.Cursor())
	y := m.viewport.YOffset
	if row < y {
		m.viewport.SetYOffset(row)
		return
	}
	if row >= y+h {
		m.viewport.SetYOffset(row - h + 1)
		return
	}
	if force && y > 0 && y+h > len(m.layout.Lines) {
		// Pull back after the document shrank below the viewport.
		m.viewport.SetYOffset(maxInt(len(m.layout.Lines)-h, 0))
	}
}
