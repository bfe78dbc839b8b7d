package severity

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/domain"
	"github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/infra/tabular"
)

const (
	// DefaultDeduction applies to a flagged keyword that has no severity row.
	DefaultDeduction = 10.0

	FieldKeyword = "keyword"
	FieldWeight  = "severity"

	component = "severity index"
)

var schema = tabular.Schema{
	FieldKeyword: {"keyword", "flaggedkeyword", "term"},
	FieldWeight:  {"severity", "severityscorededuction", "severityscore", "deduction", "weight"},
}

type Entry struct {
	Keyword string  `mapstructure:"keyword" json:"keyword"`
	Weight  float64 `mapstructure:"severity" json:"weight"`
}

// Index maps lower-cased keywords to deduction weights. It is immutable
// once built and safe for concurrent reads.
type Index struct {
	weights       map[string]float64
	defaultWeight float64
}

type Option func(*Index)

// WithDefaultDeduction overrides the deduction used for keywords missing
// from the index.
func WithDefaultDeduction(weight float64) Option {
	return func(i *Index) {
		if weight >= 0 {
			i.defaultWeight = weight
		}
	}
}

// NewIndex builds an Index from raw rows. Both a keyword and a weight column
// must resolve; rows without a keyword are dropped, and a row with a keyword
// but an unusable weight fails the whole build.
func NewIndex(raw tabular.Table, opts ...Option) (*Index, error) {
	columns := schema.Resolve(raw.Columns)
	for _, field := range []string{FieldKeyword, FieldWeight} {
		if !columns.Has(field) {
			return nil, domain.NewConfigError(
				component,
				fmt.Sprintf("no %s column among %q", field, raw.Columns),
				domain.ErrMissingColumn,
			)
		}
	}

	idx := &Index{
		weights:       make(map[string]float64, raw.Len()),
		defaultWeight: DefaultDeduction,
	}
	for _, opt := range opts {
		opt(idx)
	}

	for i, row := range raw.Rows {
		values := columns.Canonicalize(row)
		if _, ok := values[FieldKeyword]; !ok {
			continue
		}
		if _, ok := values[FieldWeight]; !ok {
			return nil, domain.NewConfigError(
				component,
				fmt.Sprintf("row %d: keyword %v has no weight", i+1, values[FieldKeyword]),
				domain.ErrInvalidWeight,
			)
		}

		var entry Entry
		if err := decode(values, &entry); err != nil {
			return nil, domain.NewConfigError(
				component,
				fmt.Sprintf("row %d", i+1),
				fmt.Errorf("%w: %v", domain.ErrInvalidWeight, err),
			)
		}
		if entry.Weight < 0 {
			return nil, domain.NewConfigError(
				component,
				fmt.Sprintf("row %d: negative weight %v", i+1, entry.Weight),
				domain.ErrInvalidWeight,
			)
		}

		keyword := strings.ToLower(strings.TrimSpace(entry.Keyword))
		if keyword == "" {
			continue
		}
		idx.weights[keyword] = entry.Weight
	}
	return idx, nil
}

// Lookup returns the configured weight for keyword, if any.
func (i *Index) Lookup(keyword string) (float64, bool) {
	w, ok := i.weights[strings.ToLower(strings.TrimSpace(keyword))]
	return w, ok
}

// SeverityOf returns the configured weight for keyword, falling back to the
// default deduction. Callers only ask about keywords that were flagged, so
// the fallback is a policy value rather than a silent zero.
func (i *Index) SeverityOf(keyword string) float64 {
	if w, ok := i.Lookup(keyword); ok {
		return w
	}
	return i.defaultWeight
}

func (i *Index) DefaultDeduction() float64 {
	return i.defaultWeight
}

func (i *Index) Len() int {
	return len(i.weights)
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
