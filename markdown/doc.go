// Package markdown classifies Markdown source into highlight spans.
//
// It is a pure function of the text and shares no state with the buffer
// package. Parsing is delegated to the tree-sitter Markdown grammars
// (block and inline); any failure degrades to no highlighting.
package markdown
