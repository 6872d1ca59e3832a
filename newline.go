package smallcsv

// readNormalizedNewline consumes one rune, folding CR and CRLF into LF.
func (r *Reader) readNormalizedNewline() rune {
	ch := r.next()
	if ch == '\r' {
		if r.peek() == '\n' {
			r.next()
		}
		return '\n'
	}
	return ch
}

// finishColumn consumes the terminator after a column. It reports whether
// more columns follow in the current row.
func (r *Reader) finishColumn() (more bool, err error) {
	line, col := r.line, r.col
	switch ch := r.readNormalizedNewline(); ch {
	case EOF, '\n':
		return false, nil
	case comma:
		return true, nil
	default:
		return false, r.wrapError(line, col, &UnrecognizedCharError{Char: ch})
	}
}
