// Package render prints parsed CSV rows for the command line.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

const (
	FormatJSON  = "json"
	FormatTable = "table"
)

// Writer receives rows one at a time. Flush must be called once after the last row.
type Writer interface {
	WriteRow(row []string) error
	Flush() error
}

// New returns a Writer for the named format.
func New(format string, w io.Writer) (Writer, error) {
	switch format {
	case "", FormatJSON:
		return NewJSON(w), nil
	case FormatTable:
		return NewTable(w), nil
	default:
		return nil, fmt.Errorf("unknown output format %s", format)
	}
}

// JSONWriter streams every row as a JSON array on its own line.
type JSONWriter struct {
	enc *json.Encoder
}

func NewJSON(w io.Writer) *JSONWriter {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &JSONWriter{enc: enc}
}

func (j *JSONWriter) WriteRow(row []string) error {
	if err := j.enc.Encode(row); err != nil {
		return fmt.Errorf("encode row: %w", err)
	}
	return nil
}

func (j *JSONWriter) Flush() error {
	return nil
}

// TableWriter collects rows and renders them as one table on Flush. Rows
// shorter than the widest one are padded with empty cells.
type TableWriter struct {
	w     io.Writer
	rows  [][]string
	width int
}

func NewTable(w io.Writer) *TableWriter {
	return &TableWriter{w: w}
}

func (t *TableWriter) WriteRow(row []string) error {
	t.rows = append(t.rows, append([]string(nil), row...))
	if len(row) > t.width {
		t.width = len(row)
	}
	return nil
}

func (t *TableWriter) Flush() error {
	if len(t.rows) == 0 {
		return nil
	}

	header := make([]string, t.width)
	for i := range header {
		header[i] = strconv.Itoa(i + 1)
	}

	prettyWriter := tablewriter.NewWriter(t.w)
	prettyWriter.SetHeader(header)
	prettyWriter.SetAutoFormatHeaders(false)
	prettyWriter.SetAutoWrapText(false)
	prettyWriter.SetRowLine(true)
	for _, row := range t.rows {
		for len(row) < t.width {
			row = append(row, "")
		}
		prettyWriter.Append(row)
	}
	prettyWriter.Render()

	t.rows = nil
	t.width = 0
	return nil
}
