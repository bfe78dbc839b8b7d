package keywords

import "github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/infra/tabular"

const (
	FieldKeyword     = "keyword"
	FieldLessHarsh   = "lessHarsh"
	FieldAlternative = "alternative"
	FieldOpposite    = "opposite"
	FieldCategory    = "category"
	FieldContext     = "context"
)

var schema = tabular.Schema{
	FieldKeyword:     {"keyword", "flaggedkeyword", "keywords", "term"},
	FieldLessHarsh:   {"lessharsh", "lessharshkeyword", "lessharshkeywords"},
	FieldAlternative: {"alternative", "alternativekeyword", "alternativekeywords"},
	FieldOpposite:    {"opposite", "oppositekeyword", "oppositekeywords"},
	FieldCategory:    {"category", "categories"},
	FieldContext:     {"context", "contextnote", "contextreason"},
}

// Entry is one flagged term. Keyword is trimmed and lower-cased; the other
// fields keep their original case for display and are nil when absent.
type Entry struct {
	Keyword     string  `mapstructure:"keyword" json:"keyword"`
	LessHarsh   *string `mapstructure:"lessHarsh" json:"less_harsh,omitempty"`
	Alternative *string `mapstructure:"alternative" json:"alternative,omitempty"`
	Opposite    *string `mapstructure:"opposite" json:"opposite,omitempty"`
	Category    *string `mapstructure:"category" json:"category,omitempty"`
	Context     *string `mapstructure:"context" json:"context,omitempty"`
}
