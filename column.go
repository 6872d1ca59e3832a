package smallcsv

import "unicode/utf8"

// readColumn scans one column into r.column and consumes its terminator.
// present is false when the stream is already exhausted before the column
// starts; more reports whether the terminator was a comma.
func (r *Reader) readColumn() (present, more bool, err error) {
	r.column = r.column[:0]

	switch ch := r.peek(); {
	case ch == EOF:
		return false, false, nil
	case ch == quote:
		if err := r.readQuotedColumn(); err != nil {
			return true, false, err
		}
	default:
		r.readUnquotedColumn()
	}

	more, err = r.finishColumn()
	return true, more, err
}

// readQuotedColumn scans a quoted column, keeping the enclosing quotes in the
// buffer. A doubled quote is stored as one quote. The rune after the closing
// quote is left for finishColumn.
func (r *Reader) readQuotedColumn() error {
	r.column = append(r.column, byte(r.next()))

	for {
		line, col := r.line, r.col
		ch := r.next()
		switch {
		case ch == EOF:
			return r.wrapError(line, col, ErrUnterminatedQuote)
		case ch == quote && r.peek() == quote:
			r.next()
			r.column = append(r.column, quote)
		case ch == quote:
			r.column = append(r.column, quote)
			return nil
		default:
			r.column = utf8.AppendRune(r.column, ch)
		}
	}
}

// readUnquotedColumn copies runes up to, but not including, a comma, CR, LF or EOF.
func (r *Reader) readUnquotedColumn() {
	for {
		switch ch := r.peek(); ch {
		case EOF, '\r', '\n', comma:
			return
		default:
			r.column = utf8.AppendRune(r.column, r.next())
		}
	}
}
