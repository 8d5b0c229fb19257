// Package matrix: CSV exchange.
//
// The format is one CSV record per row, "0"/"1" cells, no header.
// ImportCSV is strict: ragged rows,
// non-square data, and foreign cell values are rejected with ErrBadCSV.
package matrix

import (
	"encoding/csv"
	"fmt"
	"io"
)

// ExportCSV writes the matrix to w as 0/1 CSV records.
// Complexity: O(n²).
func (m *Dense) ExportCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	record := make([]string, m.n)
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			if m.bit(i, j) {
				record[j] = "1"
			} else {
				record[j] = "0"
			}
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("matrix: export row %d: %w", i, err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// ImportCSV reads a 0/1 CSV matrix from r.
// Returns ErrBadCSV for ragged, non-square, or non-binary input.
// Complexity: O(n²).
func ImportCSV(r io.Reader) (*Dense, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // squareness validated below with ErrBadCSV

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadCSV, err)
	}

	n := len(records)
	m, err := NewDense(n)
	if err != nil {
		return nil, err
	}
	for i, record := range records {
		if len(record) != n {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrBadCSV, i, len(record), n)
		}
		for j, cell := range record {
			switch cell {
			case "1":
				m.setBit(i, j)
			case "0":
				// already clear
			default:
				return nil, fmt.Errorf("%w: cell (%d,%d) = %q", ErrBadCSV, i, j, cell)
			}
		}
	}

	return m, nil
}
