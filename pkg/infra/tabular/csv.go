package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const utf8BOM = "\ufeff"

// ReadCSVFile reads a header-first CSV file into a Table.
func ReadCSVFile(path string) (Table, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return Table{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	table, err := ReadCSV(f)
	if err != nil {
		return Table{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return table, nil
}

// ReadCSV parses CSV data whose first record is the header. Blank cells
// become nil so that downstream loaders can tell absent from empty strings.
func ReadCSV(r io.Reader) (Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Table{}, nil
		}
		return Table{}, err
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	table := Table{Columns: header}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Table{}, err
		}
		if isBlankRecord(record) {
			continue
		}

		row := make(Row, len(header))
		for i, column := range header {
			if i >= len(record) || strings.TrimSpace(record[i]) == "" {
				row[column] = nil
				continue
			}
			row[column] = record[i]
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

func isBlankRecord(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}
