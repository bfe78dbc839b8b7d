package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/domain"
	"github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/infra/tabular"
	"github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/keywords"
	"github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/phrases"
	"github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/severity"
	"github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/types"
)

func fixtures(t *testing.T) (*keywords.Table, *severity.Index) {
	t.Helper()

	kwCols := []string{"Keyword", "Less Harsh", "Alternative", "Category", "Context"}
	kt, err := keywords.NewTable(tabular.NewTable(kwCols,
		tabular.Row{"Keyword": "scam", "Less Harsh": "scheme", "Alternative": "trick"},
		tabular.Row{"Keyword": "kill", "Less Harsh": "defeat", "Category": "Violence", "Context": "Violent language"},
		tabular.Row{"Keyword": "idiot", "Category": "Identity"},
		tabular.Row{"Keyword": "moron", "Category": "IDENTITY"},
		tabular.Row{"Keyword": "18+", "Category": "Adult"},
		tabular.Row{"Keyword": "été"},
	))
	require.NoError(t, err)

	sevCols := []string{"Keyword", "Severity"}
	si, err := severity.NewIndex(tabular.NewTable(sevCols,
		tabular.Row{"Keyword": "scam", "Severity": 18},
		tabular.Row{"Keyword": "kill", "Severity": 25},
		tabular.Row{"Keyword": "idiot", "Severity": 10},
		tabular.Row{"Keyword": "moron", "Severity": 10},
		tabular.Row{"Keyword": "18+", "Severity": 15},
	))
	require.NoError(t, err)
	return kt, si
}

func newScorer(t *testing.T, cfg Config) *TitleScorer {
	t.Helper()
	kt, si := fixtures(t)
	s, err := NewTitleScorer(kt, si, phrases.Default(), cfg)
	require.NoError(t, err)
	return s
}

func TestScore_WholeWordBoundary(t *testing.T) {
	s := newScorer(t, DefaultConfig())

	res := s.Score("This guy SCAMMED everyone")
	assert.Empty(t, res.FlaggedWords)
	assert.Equal(t, 100, res.SafetyScore)
	assert.Equal(t, 0, res.ConfidenceScore)

	res = s.Score("This is a scam")
	assert.Equal(t, []string{"scam"}, res.FlaggedWords)
	assert.Equal(t, []string{"scheme"}, res.LessHarshSuggestions)
	assert.Equal(t, []string{"trick"}, res.AlternativeSuggestions)
	assert.Equal(t, []string{types.NoSuggestion}, res.OppositeSuggestions)
	assert.Equal(t, 82, res.SafetyScore)
	assert.Equal(t, 28, res.ConfidenceScore)
}

func TestScore_SubstringMode(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MatchMode = MatchSubstring
	s := newScorer(t, cfg)

	res := s.Score("This guy SCAMMED everyone")
	assert.Equal(t, []string{"scam"}, res.FlaggedWords)
	assert.Equal(t, 82, res.SafetyScore)
}

func TestScore_CompoundWithoutKeywordEntry(t *testing.T) {
	s := newScorer(t, DefaultConfig())

	res := s.Score("HOW TO KILL TIME ON A ROAD TRIP")
	assert.Equal(t, []string{"kill"}, res.FlaggedWords)
	assert.Contains(t, res.ContextReasons, "kill: Instructional violence")
	assert.Contains(t, res.ContextReasons, AllCapsReason)

	_, si := fixtures(t)
	empty, err := keywords.NewTable(tabular.NewTable([]string{"keyword"}))
	require.NoError(t, err)
	bare, err := NewTitleScorer(empty, si, phrases.Default(), DefaultConfig())
	require.NoError(t, err)

	res = bare.Score("HOW TO KILL TIME ON A ROAD TRIP")
	assert.Equal(t, []string{"kill"}, res.FlaggedWords)
	assert.Equal(t, []string{types.NoSuggestion}, res.LessHarshSuggestions)
	assert.Equal(t, []string{types.NoSuggestion}, res.AlternativeSuggestions)
	assert.Equal(t, []string{types.NoSuggestion}, res.OppositeSuggestions)
	assert.Equal(t, []string{"kill: Instructional violence", AllCapsReason}, res.ContextReasons)
	// compound 20 + all caps 10
	assert.Equal(t, 70, res.SafetyScore)
	assert.Equal(t, 10, res.ConfidenceScore)
}

func TestScore_LiteralAndCompoundDeduplicate(t *testing.T) {
	s := newScorer(t, DefaultConfig())

	res := s.Score("How to kill weeds")
	assert.Equal(t, []string{"kill"}, res.FlaggedWords)
	assert.Equal(t, []string{"defeat"}, res.LessHarshSuggestions)
	assert.Equal(t, []string{"Violence"}, res.Categories)
	assert.Equal(t, []string{"kill: Violent language", "kill: Instructional violence"}, res.ContextReasons)
	// keyword 25 + compound 20
	assert.Equal(t, 55, res.SafetyScore)
	assert.Equal(t, 35, res.ConfidenceScore)
}

func TestScore_StylisticPenalties(t *testing.T) {
	s := newScorer(t, DefaultConfig())

	tests := []struct {
		name    string
		title   string
		safety  int
		reasons []string
	}{
		{"caps and exclamations", "WOW THIS IS GREAT!!", 85, []string{AllCapsReason, ExclamationReason}},
		{"caps only", "WOW THIS IS GREAT!", 90, []string{AllCapsReason}},
		{"exclamations only", "Wow this is great!!!", 95, []string{ExclamationReason}},
		{"digits are not caps", "2024 !", 100, []string{}},
		{"plain", "Wow this is great", 100, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := s.Score(tt.title)
			assert.Equal(t, tt.safety, res.SafetyScore)
			assert.Equal(t, 0, res.ConfidenceScore)
			assert.Equal(t, tt.reasons, res.ContextReasons)
		})
	}
}

func TestScore_PhraseOnly(t *testing.T) {
	s := newScorer(t, DefaultConfig())

	res := s.Score("You won't believe this trick")
	assert.Empty(t, res.FlaggedWords)
	assert.Equal(t, []string{"Clickbait"}, res.Categories)
	assert.Equal(t, []string{"Phrase flagged: Clickbait"}, res.ContextReasons)
	assert.Equal(t, 90, res.SafetyScore)
	assert.Equal(t, 0, res.ConfidenceScore)
}

func TestScore_PhraseLabelReportedOnce(t *testing.T) {
	s := newScorer(t, DefaultConfig())

	res := s.Score("Shocking and insane results")
	// two clickbait patterns at 10 each, plus the Drama tone
	assert.Equal(t, 75, res.SafetyScore)
	assert.Equal(t, []string{"Clickbait", "Emotional Tone: Drama"}, res.Categories)
	assert.Equal(t, []string{"Phrase flagged: Clickbait", "Emotional tone: Drama"}, res.ContextReasons)
}

func TestScore_PhraseWeightPerPattern(t *testing.T) {
	s := newScorer(t, DefaultConfig())

	res := s.Score("Shocking prank gone wrong")
	// "shocking" and "gone wrong" are both Clickbait patterns
	assert.Equal(t, 80, res.SafetyScore)
	assert.Equal(t, []string{"Clickbait"}, res.Categories)
	assert.Equal(t, []string{"Phrase flagged: Clickbait"}, res.ContextReasons)
}

func TestScore_ContextFreeRules(t *testing.T) {
	s := newScorer(t, DefaultConfig())

	tests := []struct {
		name    string
		title   string
		flagged []string
		reasons []string
		safety  int
	}{
		{"alias flags keyword", "The naked truth about diets", []string{"nude"}, []string{"nude: Sexualized imagery"}, 80},
		{"keyword itself", "Nude beach tour", []string{"nude"}, []string{"nude: Sexualized imagery"}, 80},
		{"high with context", "Getting high on a Monday", []string{"high"}, []string{"high: Implied drug use"}, 90},
		{"high without context", "High score run", []string{}, []string{}, 100},
		{"short alias as whole word", "Almost OD'd at the party", []string{"overdose"}, []string{"overdose: Drug-related content"}, 85},
		{"short alias inside a word", "Cod fishing trip", []string{}, []string{}, 100},
		{"multi-word alias", "They made fun of me", []string{"bullied"}, []string{"bullied: Bullying framing"}, 90},
		{"shaming alias also a phrase", "Celebrity exposed", []string{"shamed"}, []string{"Phrase flagged: Clickbait", "shamed: Public shaming framing"}, 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := s.Score(tt.title)
			assert.Equal(t, tt.flagged, res.FlaggedWords)
			assert.Equal(t, tt.reasons, res.ContextReasons)
			assert.Equal(t, tt.safety, res.SafetyScore)
			assert.Len(t, res.LessHarshSuggestions, len(res.FlaggedWords))
		})
	}
}

func TestNewTitleScorer_ContextFreeCustomRule(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CompoundRules = []CompoundRuleConfig{
		{Keyword: "rob", Aliases: []string{"heist"}, Reason: "Theft", Weight: 12},
	}
	s := newScorer(t, cfg)

	res := s.Score("The heist of the century")
	assert.Equal(t, []string{"rob"}, res.FlaggedWords)
	assert.Equal(t, []string{"rob: Theft"}, res.ContextReasons)
	assert.Equal(t, 88, res.SafetyScore)
	assert.Equal(t, 10, res.ConfidenceScore)
}

func TestScore_CategorySurchargeOncePerCategory(t *testing.T) {
	s := newScorer(t, DefaultConfig())

	res := s.Score("What an idiot")
	assert.Equal(t, 85, res.SafetyScore)
	assert.Equal(t, 20, res.ConfidenceScore)

	res = s.Score("idiot and moron")
	assert.Equal(t, []string{"idiot", "moron"}, res.FlaggedWords)
	assert.Equal(t, []string{"Identity", "IDENTITY"}, res.Categories)
	assert.Equal(t, 75, res.SafetyScore)
	assert.Equal(t, 40, res.ConfidenceScore)
}

func TestScore_MetacharacterKeyword(t *testing.T) {
	s := newScorer(t, DefaultConfig())

	assert.Equal(t, []string{"18+"}, s.Score("Rated 18+ only").FlaggedWords)
	assert.Empty(t, s.Score("Rated 180 only").FlaggedWords)
	assert.Empty(t, s.Score("Rated 118+ only").FlaggedWords)
}

func TestScore_Unicode(t *testing.T) {
	s := newScorer(t, DefaultConfig())

	res := s.Score("L'ÉTÉ est là")
	assert.Equal(t, []string{"été"}, res.FlaggedWords)
	assert.Equal(t, 100-int(severity.DefaultDeduction), res.SafetyScore)

	res = s.Score("日本語のタイトル")
	assert.Empty(t, res.FlaggedWords)
	assert.Equal(t, 100, res.SafetyScore)
	assert.Equal(t, 0, res.ConfidenceScore)
}

func TestScore_EmptyTitle(t *testing.T) {
	s := newScorer(t, DefaultConfig())

	res := s.Score("")
	assert.Equal(t, 100, res.SafetyScore)
	assert.Equal(t, 0, res.ConfidenceScore)
	assert.NotNil(t, res.FlaggedWords)
	assert.NotNil(t, res.Categories)
	assert.NotNil(t, res.ContextReasons)
	assert.Empty(t, res.FlaggedWords)
	assert.False(t, res.Flagged())
}

func TestScore_BoundsAndIdempotence(t *testing.T) {
	s := newScorer(t, DefaultConfig())

	titles := []string{
		"",
		"12345",
		"This is a scam",
		"HOW TO KILL AN IDIOT AND A MORON SCAM 18+ GONE WRONG!!!!",
		"get rich quick, earn $500 with this miracle cure, act now, guaranteed results",
		"Dead body found after attack caught on footage, I hate this, so scared",
		"Привет мир",
	}

	for _, title := range titles {
		first := s.Score(title)
		second := s.Score(title)
		assert.Equal(t, first, second, title)
		assert.GreaterOrEqual(t, first.SafetyScore, 0)
		assert.LessOrEqual(t, first.SafetyScore, 100)
		assert.GreaterOrEqual(t, first.ConfidenceScore, 0)
		assert.LessOrEqual(t, first.ConfidenceScore, 100)
		assert.Len(t, first.LessHarshSuggestions, len(first.FlaggedWords))
		assert.Len(t, first.AlternativeSuggestions, len(first.FlaggedWords))
		assert.Len(t, first.OppositeSuggestions, len(first.FlaggedWords))
	}

	worst := s.Score(titles[3])
	assert.Equal(t, 0, worst.SafetyScore)
	assert.Equal(t, 100, worst.ConfidenceScore)
}

func TestScore_Monotonic(t *testing.T) {
	s := newScorer(t, DefaultConfig())

	bases := []string{"A calm afternoon walk", "You won't believe this", "Wow!!"}
	for _, base := range bases {
		before := s.Score(base)
		after := s.Score(base + " scam")
		assert.LessOrEqual(t, after.SafetyScore, before.SafetyScore, base)
		assert.GreaterOrEqual(t, after.ConfidenceScore, before.ConfidenceScore, base)
	}
}

func TestScore_ResultsAreIndependent(t *testing.T) {
	s := newScorer(t, DefaultConfig())

	first := s.Score("This is a scam")
	first.FlaggedWords[0] = "changed"
	assert.Equal(t, []string{"scam"}, s.Score("This is a scam").FlaggedWords)
}

func TestNewTitleScorer_Validation(t *testing.T) {
	kt, si := fixtures(t)
	prs := phrases.Default()

	tests := []struct {
		name   string
		mutate func(*Config)
		kt     *keywords.Table
		target error
	}{
		{
			name:   "unknown match mode",
			mutate: func(c *Config) { c.MatchMode = "stem" },
			kt:     kt,
			target: domain.ErrUnknownMatchMode,
		},
		{
			name:   "negative surcharge",
			mutate: func(c *Config) { c.CategorySurcharges["identity"] = -1 },
			kt:     kt,
			target: domain.ErrInvalidWeight,
		},
		{
			name:   "negative stylistic penalty",
			mutate: func(c *Config) { c.AllCapsPenalty = -5 },
			kt:     kt,
			target: domain.ErrInvalidWeight,
		},
		{
			name: "compound rule with blank context",
			mutate: func(c *Config) {
				c.CompoundRules = append(c.CompoundRules, CompoundRuleConfig{Keyword: "rob", Context: []string{" "}, Weight: 5})
			},
			kt:     kt,
			target: domain.ErrInvalidPattern,
		},
		{
			name:   "surcharge keys differing only in case",
			mutate: func(c *Config) { c.CategorySurcharges["Identity"] = 3 },
			kt:     kt,
			target: domain.ErrInvalidWeight,
		},
		{
			name:   "tone without words",
			mutate: func(c *Config) { c.EmotionalTones = []ToneConfig{{Tone: "Joy"}} },
			kt:     kt,
			target: domain.ErrInvalidPattern,
		},
		{
			name:   "missing keyword table",
			mutate: func(c *Config) {},
			kt:     nil,
			target: domain.ErrReferenceNotLoaded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			s, err := NewTitleScorer(tt.kt, si, prs, cfg)
			require.Error(t, err)
			assert.Nil(t, s)
			assert.True(t, domain.IsConfigError(err))
			assert.ErrorIs(t, err, tt.target)
		})
	}
}

func TestNewTitleScorer_EmptyMatchModeDefaultsToWord(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MatchMode = ""
	s := newScorer(t, cfg)

	assert.Empty(t, s.Score("This guy scammed everyone").FlaggedWords)
}
