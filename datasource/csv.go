// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package datasource

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Column is one named numeric column of tabular input.
type Column struct {
	Name string
	*Slice[float64]
}

// CSVOption configures ReadCSV.
type CSVOption func(*csvOptions)

type csvOptions struct {
	comma   rune
	columns []string
}

// WithComma sets the field delimiter. The default is ','.
func WithComma(r rune) CSVOption {
	return func(o *csvOptions) {
		o.comma = r
	}
}

// WithColumns selects columns by header name, in the given order. By
// default every column is returned.
func WithColumns(names ...string) CSVOption {
	return func(o *csvOptions) {
		o.columns = names
	}
}

// ReadCSV reads a header row followed by numeric rows and returns one
// Column per selected header. Cells that do not parse as numbers are
// recorded as 0 and reported at warn level, so that one bad row does not
// shift the indices of the rows after it.
func ReadCSV(r io.Reader, opts ...CSVOption) ([]*Column, error) {
	o := csvOptions{comma: ','}
	for _, opt := range opts {
		opt(&o)
	}

	reader := csv.NewReader(r)
	reader.Comma = o.comma
	reader.TrimLeadingSpace = true

	headings, err := reader.Read()
	if err == io.EOF {
		return nil, ErrNoColumns
	}
	if err != nil {
		return nil, fmt.Errorf("datasource: read csv header: %w", err)
	}

	indices, err := selectColumns(headings, o.columns)
	if err != nil {
		return nil, err
	}

	values := make([][]float64, len(indices))
	for row := 1; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("datasource: read csv row %d: %w", row, err)
		}
		for i, col := range indices {
			v, err := strconv.ParseFloat(strings.TrimSpace(record[col]), 64)
			if err != nil {
				Logger().Warn("datasource: non-numeric csv cell",
					"row", row, "column", headings[col], "err", err)
				v = 0
			}
			values[i] = append(values[i], v)
		}
	}

	columns := make([]*Column, len(indices))
	for i, col := range indices {
		columns[i] = &Column{
			Name:  strings.TrimSpace(headings[col]),
			Slice: NewSlice(values[i]...),
		}
	}
	return columns, nil
}

// LoadCSVFile opens path and reads it with ReadCSV.
func LoadCSVFile(path string, opts ...CSVOption) ([]*Column, error) {
	// #nosec G304 -- the path is chosen by the caller
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("datasource: open %s: %w", path, err)
	}
	defer f.Close()
	return ReadCSV(f, opts...)
}

func selectColumns(headings, names []string) ([]int, error) {
	if len(headings) == 0 {
		return nil, ErrNoColumns
	}
	if len(names) == 0 {
		indices := make([]int, len(headings))
		for i := range indices {
			indices[i] = i
		}
		return indices, nil
	}

	byName := make(map[string]int, len(headings))
	for i, h := range headings {
		byName[strings.TrimSpace(h)] = i
	}
	indices := make([]int, 0, len(names))
	for _, name := range names {
		i, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
		}
		indices = append(indices, i)
	}
	return indices, nil
}
