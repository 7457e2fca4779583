package buffer

import "testing"

func TestBuffer_LastChange_InitialAndNoOp(t *testing.T) {
	b := New("a")

	if _, ok := b.LastChange(); ok {
		t.Fatalf("expected no initial change")
	}

	b.MoveLeft(false) // no-op at start
	b.MoveRight(false)
	if _, ok := b.LastChange(); ok {
		t.Fatalf("cursor moves must not record a text change")
	}
}

func TestBuffer_Change_InsertTextShape(t *testing.T) {
	b := New("ab")
	b.SetCursor(1)
	v := b.Version()

	b.InsertText("X")

	ch, ok := b.LastChange()
	if !ok {
		t.Fatalf("expected last change")
	}
	if got, want := ch.Source, ChangeSourceLocal; got != want {
		t.Fatalf("source=%v, want %v", got, want)
	}
	if got, want := ch.VersionBefore, v; got != want {
		t.Fatalf("version before=%d, want %d", got, want)
	}
	if got, want := ch.VersionAfter, v+1; got != want {
		t.Fatalf("version after=%d, want %d", got, want)
	}
	if ch.CursorBefore != 1 || ch.CursorAfter != 2 {
		t.Fatalf("cursor before/after=%d/%d, want 1/2", ch.CursorBefore, ch.CursorAfter)
	}
	if got, want := len(ch.AppliedEdits), 1; got != want {
		t.Fatalf("applied edits=%d, want %d", got, want)
	}
	e := ch.AppliedEdits[0]
	if e.RangeBefore != (Range{Start: 1, End: 1}) || e.RangeAfter != (Range{Start: 1, End: 2}) {
		t.Fatalf("edit ranges=%#v/%#v", e.RangeBefore, e.RangeAfter)
	}
	if e.InsertText != "X" || e.DeletedText != "" {
		t.Fatalf("edit text insert=%q deleted=%q", e.InsertText, e.DeletedText)
	}
}

func TestBuffer_Change_ReplaceSelectionShape(t *testing.T) {
	b := New("hello")
	b.SetSelection(1, 4)

	b.InsertText("i")

	ch, ok := b.LastChange()
	if !ok {
		t.Fatalf("expected last change")
	}
	if got, want := ch.SelectionBefore, (Range{Start: 1, End: 4}); got != want {
		t.Fatalf("selection before=%#v, want %#v", got, want)
	}
	if got, want := ch.SelectionAfter, (Range{Start: 2, End: 2}); got != want {
		t.Fatalf("selection after=%#v, want %#v", got, want)
	}
	if got := ch.AppliedEdits[0].DeletedText; got != "ell" {
		t.Fatalf("deleted=%q, want %q", got, "ell")
	}
}

func TestBuffer_Change_SetTextCoversDocument(t *testing.T) {
	b := New("abc")
	b.SetText("xy")

	ch, ok := b.LastChange()
	if !ok {
		t.Fatalf("expected last change")
	}
	e := ch.AppliedEdits[0]
	if e.RangeBefore != (Range{Start: 0, End: 3}) || e.RangeAfter != (Range{Start: 0, End: 2}) {
		t.Fatalf("edit ranges=%#v/%#v", e.RangeBefore, e.RangeAfter)
	}
}

func TestBuffer_LastChange_IsACopy(t *testing.T) {
	b := New("")
	b.InsertText("a")

	ch, _ := b.LastChange()
	ch.AppliedEdits[0].InsertText = "mutated"

	again, _ := b.LastChange()
	if got := again.AppliedEdits[0].InsertText; got != "a" {
		t.Fatalf("stored change was mutated: %q", got)
	}
}

func TestChangeSource_String(t *testing.T) {
	if ChangeSourceLocal.String() != "local" || ChangeSourceIME.String() != "ime" || ChangeSource(9).String() != "unknown" {
		t.Fatalf("unexpected change source names")
	}
}
