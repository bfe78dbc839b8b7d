package scoring

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/domain"
)

type tone struct {
	name    string
	pattern *regexp.Regexp
}

func compileTones(mode MatchMode, configs []ToneConfig) ([]tone, error) {
	tones := make([]tone, 0, len(configs))
	for _, cfg := range configs {
		name := strings.TrimSpace(cfg.Tone)
		if name == "" {
			return nil, domain.NewConfigError(component, "emotional tone name cannot be empty", domain.ErrInvalidPattern)
		}
		pattern := compileTerms(mode, cfg.Words...)
		if pattern == nil {
			return nil, domain.NewConfigError(
				component,
				fmt.Sprintf("emotional tone %q has no words", name),
				domain.ErrInvalidPattern,
			)
		}
		tones = append(tones, tone{name: name, pattern: pattern})
	}
	return tones, nil
}

// isAllCaps reports whether title has at least one cased letter and none of
// them is lower-case. Digits and punctuation are ignored.
func isAllCaps(title string) bool {
	upper := false
	for _, r := range title {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			upper = true
		}
	}
	return upper
}

func exclamationCount(title string) int {
	return strings.Count(title, "!")
}
