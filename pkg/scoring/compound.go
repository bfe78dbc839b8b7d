package scoring

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/domain"
)

// compoundRule fires when its term (the keyword or an alias) is present and,
// if context is set, one of the context terms is too.
type compoundRule struct {
	keyword string
	term    *regexp.Regexp
	context *regexp.Regexp
	reason  string
	weight  float64
}

func (r compoundRule) matches(lowered string) bool {
	if !r.term.MatchString(lowered) {
		return false
	}
	return r.context == nil || r.context.MatchString(lowered)
}

func compileCompoundRules(mode MatchMode, configs []CompoundRuleConfig) ([]compoundRule, error) {
	rules := make([]compoundRule, 0, len(configs))
	for i, cfg := range configs {
		keyword := strings.ToLower(strings.TrimSpace(cfg.Keyword))
		if keyword == "" {
			return nil, domain.NewConfigError(component, fmt.Sprintf("compound rule %d has no keyword", i+1), domain.ErrInvalidPattern)
		}
		if cfg.Weight < 0 {
			return nil, domain.NewConfigError(
				component,
				fmt.Sprintf("compound rule %q: negative weight %v", keyword, cfg.Weight),
				domain.ErrInvalidWeight,
			)
		}
		var context *regexp.Regexp
		if len(cfg.Context) > 0 {
			if context = compileTerms(mode, cfg.Context...); context == nil {
				return nil, domain.NewConfigError(
					component,
					fmt.Sprintf("compound rule %q has only blank context terms", keyword),
					domain.ErrInvalidPattern,
				)
			}
		}

		reason := strings.TrimSpace(cfg.Reason)
		if reason == "" {
			reason = "Contextual risk"
		}
		rules = append(rules, compoundRule{
			keyword: keyword,
			term:    compileTerms(mode, append([]string{keyword}, cfg.Aliases...)...),
			context: context,
			reason:  reason,
			weight:  cfg.Weight,
		})
	}
	return rules, nil
}
