package scoring

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/domain"
	"github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/keywords"
	"github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/phrases"
	"github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/severity"
	"github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/types"
)

const (
	component = "title scorer"

	maxScore             = 100.0
	confidencePerKeyword = 10.0
)

type keywordMatcher struct {
	entry   keywords.Entry
	pattern *regexp.Regexp
	weight  float64
}

// TitleScorer scores single titles against an immutable reference set. All
// patterns are compiled by NewTitleScorer, so Score never fails and is safe
// for concurrent use.
type TitleScorer struct {
	cfg        Config
	keywords   []keywordMatcher
	phrases    *phrases.RuleSet
	compounds  []compoundRule
	tones      []tone
	surcharges map[string]float64
}

func NewTitleScorer(
	kt *keywords.Table,
	si *severity.Index,
	prs *phrases.RuleSet,
	cfg Config,
) (*TitleScorer, error) {
	if kt == nil || si == nil || prs == nil {
		return nil, domain.NewConfigError(component, "keyword table, severity index and phrase rules are required", domain.ErrReferenceNotLoaded)
	}

	switch cfg.MatchMode {
	case "":
		cfg.MatchMode = MatchWord
	case MatchWord, MatchSubstring:
	default:
		return nil, domain.NewConfigError(component, fmt.Sprintf("match mode %q", cfg.MatchMode), domain.ErrUnknownMatchMode)
	}

	for name, w := range map[string]float64{
		"all caps penalty":       cfg.AllCapsPenalty,
		"exclamation penalty":    cfg.ExclamationPenalty,
		"emotional tone penalty": cfg.EmotionalTonePenalty,
	} {
		if w < 0 {
			return nil, domain.NewConfigError(component, fmt.Sprintf("%s is negative: %v", name, w), domain.ErrInvalidWeight)
		}
	}

	s := &TitleScorer{
		cfg:        cfg,
		phrases:    prs,
		surcharges: make(map[string]float64, len(cfg.CategorySurcharges)),
	}

	for category, w := range cfg.CategorySurcharges {
		if w < 0 {
			return nil, domain.NewConfigError(
				component,
				fmt.Sprintf("surcharge for category %q is negative: %v", category, w),
				domain.ErrInvalidWeight,
			)
		}
		key := strings.ToLower(strings.TrimSpace(category))
		if _, dup := s.surcharges[key]; dup {
			return nil, domain.NewConfigError(
				component,
				fmt.Sprintf("surcharge for category %q is configured more than once", key),
				domain.ErrInvalidWeight,
			)
		}
		s.surcharges[key] = w
	}

	for _, entry := range kt.Entries() {
		s.keywords = append(s.keywords, keywordMatcher{
			entry:   entry,
			pattern: compileTerms(cfg.MatchMode, entry.Keyword),
			weight:  si.SeverityOf(entry.Keyword),
		})
	}

	var err error
	if s.compounds, err = compileCompoundRules(cfg.MatchMode, cfg.CompoundRules); err != nil {
		return nil, err
	}
	if s.tones, err = compileTones(cfg.MatchMode, cfg.EmotionalTones); err != nil {
		return nil, err
	}
	return s, nil
}

// Score runs the full pipeline on one title: literal keywords, category and
// context annotation, phrase rules, compound rules, then stylistic checks.
func (s *TitleScorer) Score(title string) types.ScanResult {
	lowered := strings.ToLower(title)
	acc := newAccumulator(title)

	// literal keywords
	var matched []keywords.Entry
	for _, km := range s.keywords {
		if km.pattern == nil || !km.pattern.MatchString(lowered) {
			continue
		}
		if acc.flag(km.entry.Keyword, km.entry.LessHarsh, km.entry.Alternative, km.entry.Opposite) {
			acc.keywordWeight += km.weight
			matched = append(matched, km.entry)
		}
	}

	// categories and context notes of matched keywords
	surcharged := make(map[string]bool)
	for _, entry := range matched {
		if entry.Category != nil && *entry.Category != "" {
			acc.categorize(*entry.Category)
			key := strings.ToLower(*entry.Category)
			if !surcharged[key] {
				surcharged[key] = true
				acc.deduction += s.surcharges[key]
			}
		}
		if entry.Context != nil && *entry.Context != "" {
			acc.explain(fmt.Sprintf("%s: %s", entry.Keyword, *entry.Context))
		}
	}

	// phrase rules
	seen := make(map[string]bool)
	for _, m := range s.phrases.Match(title) {
		acc.deduction += m.Weight
		if seen[m.Label] {
			continue
		}
		seen[m.Label] = true
		acc.explain("Phrase flagged: " + m.Label)
		acc.categorize(m.Label)
	}

	// compound rules
	for _, rule := range s.compounds {
		if !rule.matches(lowered) {
			continue
		}
		acc.deduction += rule.weight
		acc.explain(fmt.Sprintf("%s: %s", rule.keyword, rule.reason))
		acc.flag(rule.keyword, nil, nil, nil)
	}

	// stylistic checks
	if isAllCaps(title) {
		acc.deduction += s.cfg.AllCapsPenalty
		acc.explain(AllCapsReason)
	}
	if exclamationCount(title) > s.cfg.ExclamationThreshold {
		acc.deduction += s.cfg.ExclamationPenalty
		acc.explain(ExclamationReason)
	}
	for _, t := range s.tones {
		if !t.pattern.MatchString(lowered) {
			continue
		}
		acc.deduction += s.cfg.EmotionalTonePenalty
		acc.categorize("Emotional Tone: " + t.name)
		acc.explain("Emotional tone: " + t.name)
	}

	return acc.result()
}

type accumulator struct {
	res           types.ScanResult
	flagged       map[string]bool
	categories    map[string]bool
	keywordWeight float64
	deduction     float64
}

func newAccumulator(title string) *accumulator {
	return &accumulator{
		res: types.ScanResult{
			Title:                  title,
			FlaggedWords:           []string{},
			ContextReasons:         []string{},
			Categories:             []string{},
			LessHarshSuggestions:   []string{},
			AlternativeSuggestions: []string{},
			OppositeSuggestions:    []string{},
		},
		flagged:    make(map[string]bool),
		categories: make(map[string]bool),
	}
}

// flag records keyword once, with its suggestions kept aligned. It reports
// whether the keyword was new.
func (a *accumulator) flag(keyword string, lessHarsh, alternative, opposite *string) bool {
	if a.flagged[keyword] {
		return false
	}
	a.flagged[keyword] = true
	a.res.FlaggedWords = append(a.res.FlaggedWords, keyword)
	a.res.LessHarshSuggestions = append(a.res.LessHarshSuggestions, suggestion(lessHarsh))
	a.res.AlternativeSuggestions = append(a.res.AlternativeSuggestions, suggestion(alternative))
	a.res.OppositeSuggestions = append(a.res.OppositeSuggestions, suggestion(opposite))
	return true
}

func (a *accumulator) categorize(category string) {
	if a.categories[category] {
		return
	}
	a.categories[category] = true
	a.res.Categories = append(a.res.Categories, category)
}

func (a *accumulator) explain(reason string) {
	a.res.ContextReasons = append(a.res.ContextReasons, reason)
}

func (a *accumulator) result() types.ScanResult {
	total := a.keywordWeight + a.deduction
	a.res.SafetyScore = clampScore(maxScore - total)
	a.res.ConfidenceScore = clampScore(confidencePerKeyword*float64(len(a.res.FlaggedWords)) + a.keywordWeight)
	return a.res
}

func suggestion(v *string) string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return types.NoSuggestion
	}
	return *v
}

func clampScore(v float64) int {
	return int(math.Round(math.Max(0, math.Min(maxScore, v))))
}
