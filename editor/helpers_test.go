package editor

import (
	"errors"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

type memClipboard struct {
	s   string
	err error
}

func (c *memClipboard) ReadText() (string, error) { return c.s, c.err }
func (c *memClipboard) WriteText(s string) error {
	if c.err != nil {
		return c.err
	}
	c.s = s
	return nil
}

var errClipboard = errors.New("clipboard unavailable")

func stripANSI(s string) string { return ansi.Strip(s) }

// plainLines returns the view lines with styling and trailing padding removed.
func plainLines(view string) []string {
	lines := strings.Split(view, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(stripANSI(lines[i]), " ")
	}
	return lines
}
