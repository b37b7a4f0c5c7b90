package input

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Row is one usable review cell with its source line number.
type Row struct {
	Line   int
	Review string
}

// RowError describes a row that was skipped rather than processed.
type RowError struct {
	Line   int
	Reason string
}

// Reader loads review cells from a delimited file with a header row.
type Reader struct {
	path   string
	column string
	comma  rune
}

// NewReader creates a reader for the file at path, pulling cells from
// the named header column. comma is the field delimiter.
func NewReader(path, column string, comma rune) *Reader {
	return &Reader{path: path, column: column, comma: comma}
}

// ReadAll reads every row in file order. Rows without a usable review
// cell are returned as RowErrors and never abort the read; a missing
// file or missing review column is a fatal error.
func (r *Reader) ReadAll() ([]Row, []RowError, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening reviews file: %w", err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.Comma = r.comma
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, fmt.Errorf("reviews file %s is empty", r.path)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("reading header: %w", err)
	}

	col := -1
	for i, name := range header {
		if strings.TrimSpace(name) == r.column {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, nil, fmt.Errorf("input file must contain %q column", r.column)
	}

	var rows []Row
	var skipped []RowError
	line := 1
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			skipped = append(skipped, RowError{Line: line, Reason: err.Error()})
			continue
		}
		if col >= len(record) || strings.TrimSpace(record[col]) == "" {
			skipped = append(skipped, RowError{Line: line, Reason: "missing review cell"})
			continue
		}
		rows = append(rows, Row{Line: line, Review: record[col]})
	}
	return rows, skipped, nil
}
