// Package textlayer holds styled, laid-out text for the text edit widget.
//
// Content is a flat sequence of grapheme clusters. Layout groups them into
// rows: hard rows end at '\n' or CRLF in multiline mode, soft rows wrap at
// the layer's maximum width when auto-wrap is on. The logical caret is a
// (Row, Col) position in those rows, 0-based, with Col counted in clusters.
//
// Coordinates are terminal cells: one cell per pixel column, one row per
// pixel row. A Layer is not safe for concurrent use.
package textlayer
