package keywords

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/domain"
	"github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/infra/tabular"
)

const component = "keyword table"

// Table is the immutable dictionary of flagged terms. It is safe for
// concurrent reads.
type Table struct {
	entries []Entry
	index   map[string]int
}

// NewTable normalizes raw rows into a Table. Rows without a keyword are
// dropped. When a keyword repeats, the later row replaces the earlier one
// but keeps the earlier position.
func NewTable(raw tabular.Table) (*Table, error) {
	columns := schema.Resolve(raw.Columns)
	if !columns.Has(FieldKeyword) {
		return nil, domain.NewConfigError(
			component,
			fmt.Sprintf("no keyword column among %q", raw.Columns),
			domain.ErrMissingColumn,
		)
	}

	t := &Table{index: make(map[string]int, raw.Len())}
	for i, row := range raw.Rows {
		values := columns.Canonicalize(row)
		if _, ok := values[FieldKeyword]; !ok {
			continue
		}

		var entry Entry
		if err := decode(values, &entry); err != nil {
			return nil, domain.NewConfigError(component, fmt.Sprintf("row %d", i+1), err)
		}
		entry.Keyword = strings.ToLower(strings.TrimSpace(entry.Keyword))
		if entry.Keyword == "" {
			continue
		}
		t.put(entry)
	}
	return t, nil
}

func (t *Table) put(entry Entry) {
	if pos, ok := t.index[entry.Keyword]; ok {
		t.entries[pos] = entry
		return
	}
	t.index[entry.Keyword] = len(t.entries)
	t.entries = append(t.entries, entry)
}

// Entries returns a copy of the entries in table order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Get looks up an entry by keyword, case-insensitively.
func (t *Table) Get(keyword string) (Entry, bool) {
	pos, ok := t.index[strings.ToLower(strings.TrimSpace(keyword))]
	if !ok {
		return Entry{}, false
	}
	return t.entries[pos], true
}

func (t *Table) Len() int {
	return len(t.entries)
}

func decode(values map[string]interface{}, out *Entry) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(values)
}
