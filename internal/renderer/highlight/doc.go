// Package highlight turns snippet text into styled line segments for the
// editor pane.
//
// Lexing is done by chroma. The lexer is picked from the snippet's
// language tag, first by lexer name or alias ("go", "python") and then by
// file extension ("rs", "py"). Unknown tags use chroma's plain-text
// fallback lexer, so every snippet renders.
//
// Highlighting is presentational only. The editor cursor is computed from
// the gap buffer, never from the segments produced here.
package highlight
