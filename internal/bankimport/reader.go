package bankimport

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNoRows is returned when a file has no recognizable transaction rows.
var ErrNoRows = errors.New("could not recognize any rows from this CSV, please check the file format")

// byteOrderMark prefixes CSV files saved by Excel.
const byteOrderMark = "\ufeff"

// ParseResult is the outcome of reading a bank export.
type ParseResult struct {
	Rows []RawRow
	// Rejected counts data rows dropped for a missing date or amount.
	Rejected int
}

// ReadCSV reads a bank export. Files with a positional header row
// (Date in the first column, Amount in the seventh) are read positionally and
// everything before the header is discarded. Otherwise the first non-blank
// row is used as a keyed header.
func ReadCSV(r io.Reader) (*ParseResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	if len(records) > 0 && len(records[0]) > 0 {
		records[0][0] = strings.TrimPrefix(records[0][0], byteOrderMark)
	}

	rows := make([][]string, 0, len(records))
	for _, record := range records {
		if !isBlank(record) {
			rows = append(rows, record)
		}
	}
	if len(rows) == 0 {
		return nil, ErrNoRows
	}

	var mapped []RawRow
	if headerIndex := FindPositionalHeader(rows); headerIndex >= 0 {
		for _, record := range rows[headerIndex+1:] {
			mapped = append(mapped, MapPositionalRow(record))
		}
	} else {
		header := rows[0]
		for _, record := range rows[1:] {
			keyed := make(map[string]string, len(header))
			for i, name := range header {
				if i < len(record) {
					keyed[name] = record[i]
				}
			}
			mapped = append(mapped, MapKeyedRow(keyed))
		}
	}

	result := &ParseResult{}
	for _, row := range mapped {
		if !row.Valid() {
			result.Rejected++
			continue
		}
		result.Rows = append(result.Rows, row)
	}

	if len(result.Rows) == 0 {
		return nil, ErrNoRows
	}
	return result, nil
}

func isBlank(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
