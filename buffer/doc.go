// Package buffer implements the pure text model behind a Zeno editor surface:
// content, an anchor/cursor selection, and the edit and navigation operations
// over them.
//
// Offsets are byte offsets into UTF-8 content. Ranges are half-open: [Start, End).
// Every operation is total: out-of-range input is clamped, reversed ranges are
// swapped, and offsets that fall inside a multi-byte character are widened to
// the surrounding character boundaries.
package buffer
