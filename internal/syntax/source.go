package syntax

import "unicode/utf8"

// source is a character reader with position tracking over an in-memory
// Dy program.
type source struct {
	buf      string // program text
	filename string // source name used in positions

	// Position of ch
	line uint32 // 1-based
	col  uint32 // 1-based

	ch   rune // current character, -1 at end of input
	offs int  // byte offset of the character after ch
}

// cursor is the restorable part of a source.
type cursor struct {
	line, col uint32
	ch        rune
	offs      int
}

// newSource creates a source positioned on the first character of src.
func newSource(filename, src string) source {
	s := source{
		buf:      src,
		filename: filename,
		line:     1,
		col:      0, // incremented to 1 by the first nextch
		ch:       -1,
	}
	s.nextch()
	return s
}

// nextch advances to the next character.
//
// (line, col) always refers to the position of s.ch after nextch returns.
// A newline increments the line and resets the column for the character
// that follows it.
func (s *source) nextch() {
	if s.ch == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}

	if s.offs >= len(s.buf) {
		s.ch = -1
		return
	}

	r, width := utf8.DecodeRuneInString(s.buf[s.offs:])
	s.ch = r
	s.offs += width
}

// peekch returns the character after s.ch without consuming anything.
func (s *source) peekch() rune {
	if s.offs >= len(s.buf) {
		return -1
	}
	r, _ := utf8.DecodeRuneInString(s.buf[s.offs:])
	return r
}

// pos returns the position of the current character.
func (s *source) pos() Pos {
	return NewPos(s.filename, s.line, s.col)
}

func (s *source) save() cursor {
	return cursor{line: s.line, col: s.col, ch: s.ch, offs: s.offs}
}

func (s *source) restore(c cursor) {
	s.line, s.col, s.ch, s.offs = c.line, c.col, c.ch, c.offs
}

// Character classification helpers

// isLetter reports whether r is an ASCII letter.
func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}

// isDigit reports whether r is a decimal digit (0-9).
func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isWhitespace reports whether r is skipped between tokens.
func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n' || r == '\f' || r == '\v'
}
