package smallcsv

import (
	"errors"
	"io"
)

// EOF is the rune returned by a Source once the stream is exhausted.
// It is never a valid character.
const EOF rune = -1

// Source is a character cursor with one rune of lookahead.
//
// Peek returns the next rune without consuming it and Next consumes it. Both
// return EOF at the end of the stream and keep returning it afterwards. Err
// reports the read failure, other than io.EOF, that ended the stream early.
type Source interface {
	Peek() rune
	Next() rune
	Err() error
}

// runeSource adapts an io.RuneReader to Source.
type runeSource struct {
	src io.RuneReader

	next    rune
	hasNext bool
	err     error
}

// NewRuneSource returns a Source reading runes from r.
// Invalid UTF-8 is reported as utf8.RuneError, as r decodes it.
func NewRuneSource(r io.RuneReader) Source {
	if r == nil {
		panic("smallcsv: rune reader cannot be nil")
	}
	return &runeSource{src: r}
}

func (s *runeSource) Peek() rune {
	if !s.hasNext {
		s.next = s.fill()
		s.hasNext = true
	}
	return s.next
}

func (s *runeSource) Next() rune {
	ch := s.Peek()
	if ch != EOF {
		s.hasNext = false
	}
	return ch
}

func (s *runeSource) Err() error {
	return s.err
}

// fill reads one rune from src. Once src fails, the source stays at EOF.
func (s *runeSource) fill() rune {
	if s.err != nil || s.src == nil {
		return EOF
	}
	ch, _, err := s.src.ReadRune()
	if err != nil {
		if !errors.Is(err, io.EOF) {
			s.err = err
		}
		s.src = nil
		return EOF
	}
	return ch
}
