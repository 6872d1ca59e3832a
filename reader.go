package smallcsv

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

const (
	defaultBufferSize = 1 << 12 // 4096 bytes

	comma = ','
	quote = '"'
)

var (
	// ErrUnterminatedQuote is returned when the stream ends inside a quoted column.
	ErrUnterminatedQuote = errors.New("EOF reached inside quoted column")
	// ErrFieldCount is returned with a row whose width differs from FieldsPerRecord.
	ErrFieldCount = errors.New("smallcsv: wrong number of fields")
)

// UnrecognizedCharError is returned when a column is followed by something other
// than a comma, a line terminator or the end of the stream.
type UnrecognizedCharError struct {
	Char rune
}

func (e *UnrecognizedCharError) Error() string {
	return fmt.Sprintf("Unrecognized character '%c' after a parsed column", e.Char)
}

// ParseError contains location information for structural CSV errors.
// Line and Column are 1-based; Column counts runes.
type ParseError struct {
	Line   int
	Column int
	Err    error
}

// Error formats the parse error message with the stored line, column, and Err values.
func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("smallcsv: parse error on line %d, column %d: %v", e.Line, e.Column, e.Err)
}

// Unwrap returns the underlying Err so ParseError participates in errors.Unwrap.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// QuoteMode selects what ReadRow does with the enclosing quotes of quoted columns.
type QuoteMode int

const (
	// StripQuotes removes the enclosing quotes. It is the default.
	StripQuotes QuoteMode = iota
	// RetainQuotes keeps them, so "" (empty quoted) and an empty unquoted
	// column stay distinguishable.
	RetainQuotes
)

// Reader reads CSV rows from a Source. It is not safe for concurrent use.
type Reader struct {
	src Source

	// ReuseRecord indicates whether ReadRow should reuse the backing array of the returned slice.
	ReuseRecord bool
	// FieldsPerRecord, when positive, is the number of columns every row must have.
	FieldsPerRecord int

	record []string
	column []byte

	line    int
	col     int
	afterCR bool

	finished bool
	err      error
}

// NewReader creates a Reader that consumes CSV text from r, panicking if r is nil.
// Readers that do not implement io.RuneReader are wrapped in a bufio.Reader.
//
// The Reader never closes r; the caller owns its lifetime.
func NewReader(r io.Reader) *Reader {
	if r == nil {
		panic("smallcsv: reader source cannot be nil")
	}
	rr, ok := r.(io.RuneReader)
	if !ok {
		rr = bufio.NewReaderSize(r, defaultBufferSize)
	}
	return NewSourceReader(NewRuneSource(rr))
}

// NewSourceReader creates a Reader bound to src, panicking if src is nil.
func NewSourceReader(src Source) *Reader {
	if src == nil {
		panic("smallcsv: source cannot be nil")
	}
	return &Reader{
		src:    src,
		record: make([]string, 0, 16),
		column: make([]byte, 0, 512),
		line:   1,
		col:    1,
	}
}

// Read returns the next row with the enclosing quotes of quoted columns removed.
func (r *Reader) Read() ([]string, error) {
	return r.ReadRow(StripQuotes)
}

// ReadRaw returns the next row with quoted columns kept as scanned, quotes included.
func (r *Reader) ReadRaw() ([]string, error) {
	return r.ReadRow(RetainQuotes)
}

// ReadRow parses the next row. It returns io.EOF, and keeps returning it, once
// the stream is exhausted. A structural error is returned as *ParseError and
// every later call returns the same error.
func (r *Reader) ReadRow(mode QuoteMode) ([]string, error) {
	if r == nil || r.src == nil {
		return nil, io.EOF
	}
	if r.err != nil {
		return nil, r.err
	}
	if r.finished {
		return nil, io.EOF
	}

	if r.ReuseRecord {
		r.record = r.record[:0]
	} else {
		r.record = nil
	}

	for {
		present, more, err := r.readColumn()
		if err != nil {
			return nil, r.fail(err)
		}
		if !present {
			// A comma right before the end of the stream adds no column.
			if len(r.record) > 0 {
				break
			}
			if err := r.src.Err(); err != nil {
				return nil, r.fail(err)
			}
			r.finished = true
			return nil, io.EOF
		}
		r.record = append(r.record, r.columnText(mode))
		if !more {
			break
		}
	}

	if err := r.src.Err(); err != nil {
		return nil, r.fail(err)
	}
	return r.buildRecord()
}

// ReadAll exhausts the reader, repeatedly calling Read to collect rows until io.EOF
// and returning the accumulated rows plus the first non-EOF error encountered.
func (r *Reader) ReadAll() (records [][]string, err error) {
	for {
		record, err := r.Read()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		if r.ReuseRecord {
			record = append([]string(nil), record...)
		}
		records = append(records, record)
	}
}

// columnText converts the scratch buffer into the column value for mode.
// The quoted scan always leaves a closing quote when it leaves an opening one.
func (r *Reader) columnText(mode QuoteMode) string {
	text := r.column
	if mode == StripQuotes && len(text) > 0 && text[0] == quote {
		text = text[1 : len(text)-1]
	}
	return string(text)
}

func (r *Reader) buildRecord() ([]string, error) {
	if r.FieldsPerRecord > 0 && len(r.record) != r.FieldsPerRecord {
		return r.record, ErrFieldCount
	}
	return r.record, nil
}

// fail records err as sticky. A read failure of the source takes precedence,
// since it is what cut the stream short.
func (r *Reader) fail(err error) error {
	if srcErr := r.src.Err(); srcErr != nil {
		err = srcErr
	}
	r.err = err
	return err
}

// wrapError attaches the supplied location to err, producing a *ParseError.
func (r *Reader) wrapError(line, column int, err error) error {
	return &ParseError{Line: line, Column: column, Err: err}
}

func (r *Reader) peek() rune {
	return r.src.Peek()
}

// next consumes one rune and advances the line and column counters.
// CR, LF and CRLF each count as a single line break.
func (r *Reader) next() rune {
	ch := r.src.Next()
	switch ch {
	case EOF:
	case '\n':
		if !r.afterCR {
			r.line++
		}
		r.col = 1
		r.afterCR = false
	case '\r':
		r.line++
		r.col = 1
		r.afterCR = true
	default:
		r.col++
		r.afterCR = false
	}
	return ch
}
