package buffer

// CommandKind identifies a discrete editing action, typically bound to a key
// chord by the embedding surface.
type CommandKind uint8

const (
	CmdNone CommandKind = iota
	CmdInsert
	CmdNewline
	CmdBackspace
	CmdDelete
	CmdLeft
	CmdRight
	CmdSelectLeft
	CmdSelectRight
	CmdWordLeft
	CmdWordRight
	CmdLineStart
	CmdLineEnd
	CmdUp
	CmdDown
	CmdDocStart
	CmdDocEnd
	CmdSelectAll
)

var commandNames = [...]string{
	CmdNone:        "none",
	CmdInsert:      "insert",
	CmdNewline:     "newline",
	CmdBackspace:   "backspace",
	CmdDelete:      "delete",
	CmdLeft:        "left",
	CmdRight:       "right",
	CmdSelectLeft:  "select-left",
	CmdSelectRight: "select-right",
	CmdWordLeft:    "word-left",
	CmdWordRight:   "word-right",
	CmdLineStart:   "line-start",
	CmdLineEnd:     "line-end",
	CmdUp:          "up",
	CmdDown:        "down",
	CmdDocStart:    "doc-start",
	CmdDocEnd:      "doc-end",
	CmdSelectAll:   "select-all",
}

func (k CommandKind) String() string {
	if int(k) < len(commandNames) {
		return commandNames[k]
	}
	return "unknown"
}

// Command is a single action for Dispatch. Text is used by CmdInsert only.
type Command struct {
	Kind CommandKind
	Text string
}

// Dispatch applies cmd and reports whether the buffer changed.
// Unknown kinds are no-ops.
func (b *Buffer) Dispatch(cmd Command) bool {
	v := b.version

	switch cmd.Kind {
	case CmdInsert:
		b.InsertText(cmd.Text)
	case CmdNewline:
		b.InsertNewline()
	case CmdBackspace:
		b.DeleteBackward()
	case CmdDelete:
		b.DeleteForward()
	case CmdLeft:
		b.MoveLeft(false)
	case CmdRight:
		b.MoveRight(false)
	case CmdSelectLeft:
		b.MoveLeft(true)
	case CmdSelectRight:
		b.MoveRight(true)
	case CmdWordLeft:
		b.Move(Move{Unit: MoveWord, Dir: DirLeft})
	case CmdWordRight:
		b.Move(Move{Unit: MoveWord, Dir: DirRight})
	case CmdLineStart:
		b.Move(Move{Unit: MoveLine, Dir: DirHome})
	case CmdLineEnd:
		b.Move(Move{Unit: MoveLine, Dir: DirEnd})
	case CmdUp:
		b.Move(Move{Unit: MoveLine, Dir: DirUp})
	case CmdDown:
		b.Move(Move{Unit: MoveLine, Dir: DirDown})
	case CmdDocStart:
		b.Move(Move{Unit: MoveDoc, Dir: DirHome})
	case CmdDocEnd:
		b.Move(Move{Unit: MoveDoc, Dir: DirEnd})
	case CmdSelectAll:
		b.SelectAll()
	}

	return b.version != v
}

// Mutates reports whether k can change the content (as opposed to only the
// cursor or selection).
func (k CommandKind) Mutates() bool {
	switch k {
	case CmdInsert, CmdNewline, CmdBackspace, CmdDelete:
		return true
	default:
		return false
	}
}
