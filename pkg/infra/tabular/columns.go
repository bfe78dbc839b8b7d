package tabular

import (
	"fmt"
	"sort"
	"strings"
)

var headerReplacer = strings.NewReplacer(
	utf8BOM, "",
	`"`, "",
	"'", "",
	" ", "",
	"\t", "",
	"_", "",
	"-", "",
)

// NormalizeHeader folds a header name to the form used for synonym lookup:
// quotes, whitespace, underscores and dashes removed, lower-cased.
// "Less Harsh Keyword", "less_harsh_keyword" and "LessHarshKeyword" all
// normalize to "lessharshkeyword".
func NormalizeHeader(name string) string {
	return strings.ToLower(headerReplacer.Replace(strings.TrimSpace(name)))
}

// Schema lists, for each canonical field, the normalized header names that
// may carry it, in precedence order. The first alias should be the
// canonical name itself so an already-normalized column always wins.
type Schema map[string][]string

// Columns maps each canonical field to the source headers that carry it,
// ordered by the schema's precedence.
type Columns map[string][]string

// Resolve matches source headers against the schema. Headers that match no
// alias are ignored. When several headers fold to the same alias ("Keyword"
// and "keyword"), the one already written in normalized form comes first.
func (s Schema) Resolve(headers []string) Columns {
	normalized := make(map[string][]string, len(headers))
	for _, h := range headers {
		key := NormalizeHeader(h)
		normalized[key] = append(normalized[key], h)
	}

	resolved := make(Columns, len(s))
	for field, aliases := range s {
		for _, alias := range aliases {
			bucket := append([]string(nil), normalized[alias]...)
			sort.SliceStable(bucket, func(i, j int) bool {
				return isVerbatim(bucket[i], field, alias) && !isVerbatim(bucket[j], field, alias)
			})
			resolved[field] = append(resolved[field], bucket...)
		}
	}
	return resolved
}

func isVerbatim(header, field, alias string) bool {
	h := strings.TrimSpace(strings.TrimPrefix(header, utf8BOM))
	return h == field || h == alias
}

// Has reports whether at least one source header carries the field.
func (c Columns) Has(field string) bool {
	return len(c[field]) > 0
}

// Canonicalize projects a source row onto canonical field names. For each
// field the first non-blank value in precedence order is used; lower
// precedence columns only fill in where higher ones are empty.
func (c Columns) Canonicalize(row Row) map[string]interface{} {
	out := make(map[string]interface{}, len(c))
	for field, sources := range c {
		for _, src := range sources {
			v, ok := row[src]
			if !ok || isBlank(v) {
				continue
			}
			if s, isString := v.(string); isString {
				v = strings.TrimSpace(s)
			}
			out[field] = v
			break
		}
	}
	return out
}

func isBlank(v interface{}) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(val) == ""
	case []byte:
		return strings.TrimSpace(string(val)) == ""
	case fmt.Stringer:
		return strings.TrimSpace(val.String()) == ""
	default:
		return false
	}
}
