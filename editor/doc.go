// Package editor provides a Bubble Tea text editor component backed by the
// buffer package.
//
// The package is responsible for key and pointer input, viewport behavior,
// caret/selection painting, and Markdown highlighting. Screen-to-offset
// mapping goes through the Layout captured on the most recent render.
package editor
