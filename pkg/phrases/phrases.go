package phrases

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/domain"
)

const (
	Version   = "3"
	component = "phrase rule set"
)

type Rule struct {
	Label   string
	Pattern *regexp.Regexp
	Weight  float64
}

// Match is one rule that fired against a title.
type Match struct {
	Label  string
	Weight float64
}

// RuleSet is a fixed, read-only list of compiled phrase rules.
type RuleSet struct {
	rules  []Rule
	labels []string
}

// Default compiles DefaultRuleConfigs. The built-in patterns are known to be
// valid, so a failure here is a programming error.
func Default() *RuleSet {
	rs, err := NewRuleSet(DefaultRuleConfigs)
	if err != nil {
		panic(err)
	}
	return rs
}

// NewRuleSet validates and compiles every pattern up front so that matching
// can never fail at scan time.
func NewRuleSet(configs []RuleConfig) (*RuleSet, error) {
	rs := &RuleSet{}
	seen := make(map[string]bool, len(configs))

	for _, cfg := range configs {
		label := strings.TrimSpace(cfg.Label)
		if label == "" {
			return nil, domain.NewConfigError(component, "rule label cannot be empty", domain.ErrInvalidPattern)
		}
		if cfg.Weight < 0 {
			return nil, domain.NewConfigError(
				component,
				fmt.Sprintf("label %q: negative weight %v", label, cfg.Weight),
				domain.ErrInvalidWeight,
			)
		}
		if len(cfg.Patterns) == 0 {
			return nil, domain.NewConfigError(
				component,
				fmt.Sprintf("label %q has no patterns", label),
				domain.ErrInvalidPattern,
			)
		}

		for _, pattern := range cfg.Patterns {
			if strings.TrimSpace(pattern) == "" {
				return nil, domain.NewConfigError(
					component,
					fmt.Sprintf("label %q: pattern cannot be empty", label),
					domain.ErrInvalidPattern,
				)
			}
			re, err := regexp.Compile("(?i)" + pattern)
			if err != nil {
				return nil, domain.NewConfigError(
					component,
					fmt.Sprintf("label %q: invalid regex pattern '%s'", label, pattern),
					fmt.Errorf("%w: %v", domain.ErrInvalidPattern, err),
				)
			}
			rs.rules = append(rs.rules, Rule{Label: label, Pattern: re, Weight: cfg.Weight})
		}

		if !seen[label] {
			seen[label] = true
			rs.labels = append(rs.labels, label)
		}
	}
	return rs, nil
}

// Match evaluates every rule against the lower-cased title and returns the
// rules that fired, in rule order. Patterns are not word-bounded.
func (rs *RuleSet) Match(title string) []Match {
	lowered := strings.ToLower(title)
	var matches []Match
	for _, rule := range rs.rules {
		if rule.Pattern.MatchString(lowered) {
			matches = append(matches, Match{Label: rule.Label, Weight: rule.Weight})
		}
	}
	return matches
}

// Labels returns the distinct labels in declaration order.
func (rs *RuleSet) Labels() []string {
	out := make([]string, len(rs.labels))
	copy(out, rs.labels)
	return out
}

// Rules returns a copy of the compiled rules.
func (rs *RuleSet) Rules() []Rule {
	out := make([]Rule, len(rs.rules))
	copy(out, rs.rules)
	return out
}

func (rs *RuleSet) Len() int {
	return len(rs.rules)
}
