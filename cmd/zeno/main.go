package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/iw2rmb/zeno"
	"github.com/iw2rmb/zeno/editor"
	"github.com/iw2rmb/zeno/markdown"
)

const welcome = "# zeno\n\nType to edit. **Shift+arrows** select, `ctrl+a` selects all.\nCtrl+S saves, F1 shows keys, Ctrl+Q or Esc quits.\n"

type options struct {
	path        string
	debugPath   string
	lineNumbers bool
	noHighlight bool
	readOnly    bool
	showVersion bool
}

func parseFlags(args []string) (options, error) {
	var opts options
	flags := flag.NewFlagSet("zeno", flag.ContinueOnError)
	flags.StringVar(&opts.debugPath, "debug", "", "write debug log to `file`")
	flags.BoolVar(&opts.lineNumbers, "line-numbers", true, "show line numbers")
	flags.BoolVar(&opts.noHighlight, "no-highlight", false, "disable markdown highlighting")
	flags.BoolVar(&opts.readOnly, "readonly", false, "open the document read-only")
	flags.BoolVar(&opts.showVersion, "version", false, "print version and exit")
	if err := flags.Parse(args); err != nil {
		return opts, err
	}
	if flags.NArg() > 1 {
		return opts, fmt.Errorf("expected at most one file, got %d", flags.NArg())
	}
	opts.path = flags.Arg(0)
	return opts, nil
}

// systemClipboard adapts the OS clipboard to editor.Clipboard.
type systemClipboard struct{}

func (systemClipboard) ReadText() (string, error) { return clipboard.ReadAll() }
func (systemClipboard) WriteText(s string) error  { return clipboard.WriteAll(s) }

var helpBoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240")).
	Padding(0, 1)

type model struct {
	editor editor.Model
	path   string

	keys     editor.KeyMap
	help     help.Model
	showHelp bool
}

func newModel(opts options, text string) model {
	keys := editor.DefaultKeyMap()
	cfg := editor.Config{
		Text:         text,
		KeyMap:       keys,
		ShowLineNums: opts.lineNumbers,
		Style:        editor.DefaultStyle(),
		ReadOnly:     opts.readOnly,
		OnChange: func(ev editor.ChangeEvent) {
			if ev.TextChanged {
				log.Printf("change v%d: %d edit(s), cursor=%d", ev.Version, len(ev.Change.AppliedEdits), ev.Cursor)
			}
		},
	}
	if !opts.noHighlight {
		cfg.Highlight = markdown.Highlight
	}
	if !clipboard.Unsupported {
		cfg.Clipboard = systemClipboard{}
	}
	h := help.New()
	h.ShowAll = true
	return model{editor: editor.New(cfg), path: opts.path, keys: keys, help: h}
}

func (m model) Init() tea.Cmd { return m.editor.Init() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.editor = m.editor.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "f1":
			m.showHelp = !m.showHelp
			return m, nil
		case "esc":
			if m.showHelp {
				m.showHelp = false
				return m, nil
			}
			return m, tea.Quit
		case "ctrl+q":
			return m, tea.Quit
		case "ctrl+s":
			m.save()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) View() string {
	base := m.editor.View()
	if !m.showHelp {
		return base
	}
	box := helpBoxStyle.Render(m.help.View(m.keys))
	return overlay.Composite(box, base, overlay.Center, overlay.Center, 0, 0)
}

func (m *model) save() {
	if m.path == "" {
		return
	}
	if err := os.WriteFile(m.path, []byte(m.editor.Buffer().Text()), 0o644); err != nil {
		log.Printf("save %s: %v", m.path, err)
		return
	}
	log.Printf("saved %s (%d bytes)", m.path, m.editor.Buffer().Len())
}

func readDocument(path string) (string, error) {
	if path == "" {
		return welcome, nil
	}
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func run(args []string) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}
	if opts.showVersion {
		if !zeno.VersionIsSemver() {
			return fmt.Errorf("embedded version %q is not semver", zeno.Version())
		}
		fmt.Println(zeno.VersionTag())
		return nil
	}

	if opts.debugPath != "" {
		f, err := tea.LogToFile(opts.debugPath, "zeno")
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	text, err := readDocument(opts.path)
	if err != nil {
		return err
	}
	log.Printf("starting %s path=%q bytes=%d", zeno.VersionTag(), opts.path, len(text))

	p := tea.NewProgram(newModel(opts, text), tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err = p.Run()
	return err
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
