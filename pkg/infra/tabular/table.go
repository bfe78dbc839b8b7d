package tabular

// Row maps a column header, exactly as it appeared in the source, to its
// cell value. A nil value means the cell was empty or SQL NULL.
type Row map[string]interface{}

// Table is a header row plus data rows. Columns keeps the source order and
// is kept even when there are no data rows, so header validation still works
// on an empty file.
type Table struct {
	Columns []string
	Rows    []Row
}

func NewTable(columns []string, rows ...Row) Table {
	return Table{
		Columns: columns,
		Rows:    rows,
	}
}

// Len returns the number of data rows.
func (t Table) Len() int {
	return len(t.Rows)
}
