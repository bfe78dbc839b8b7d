package scoring

type MatchMode string

const (
	// MatchWord flags a keyword only as a whole word: "scam" does not match
	// "scammed".
	MatchWord MatchMode = "word"
	// MatchSubstring flags a keyword anywhere in the title, including inside
	// longer words.
	MatchSubstring MatchMode = "substring"
)

// CompoundRuleConfig fires when Keyword or one of its Aliases is present in
// the title together with at least one of Context. A rule without Context
// fires on the term alone. Keyword is what gets flagged either way.
type CompoundRuleConfig struct {
	Keyword string   `mapstructure:"keyword" json:"keyword"`
	Aliases []string `mapstructure:"aliases" json:"aliases,omitempty"`
	Context []string `mapstructure:"context" json:"context,omitempty"`
	Reason  string   `mapstructure:"reason" json:"reason"`
	Weight  float64  `mapstructure:"weight" json:"weight"`
}

type ToneConfig struct {
	Tone  string   `mapstructure:"tone" json:"tone"`
	Words []string `mapstructure:"words" json:"words"`
}

// Config holds the tunable weights of the scoring pipeline. Weights are
// representative defaults, not invariants.
type Config struct {
	MatchMode            MatchMode            `mapstructure:"match_mode"`
	AllCapsPenalty       float64              `mapstructure:"all_caps_penalty"`
	ExclamationThreshold int                  `mapstructure:"exclamation_threshold"`
	ExclamationPenalty   float64              `mapstructure:"exclamation_penalty"`
	EmotionalTonePenalty float64              `mapstructure:"emotional_tone_penalty"`
	EmotionalTones       []ToneConfig         `mapstructure:"emotional_tones"`
	CategorySurcharges   map[string]float64   `mapstructure:"category_surcharges"`
	CompoundRules        []CompoundRuleConfig `mapstructure:"compound_rules"`
}

const (
	DefaultAllCapsPenalty       = 10.0
	DefaultExclamationThreshold = 1
	DefaultExclamationPenalty   = 5.0
	DefaultEmotionalTonePenalty = 5.0

	AllCapsReason     = "Title is written in all caps"
	ExclamationReason = "Excessive exclamation marks"
)

var DefaultEmotionalTones = []ToneConfig{
	{Tone: "Anger", Words: []string{"hate", "rage", "destroy"}},
	{Tone: "Fear", Words: []string{"scared", "panic", "terrified"}},
	{Tone: "Drama", Words: []string{"insane", "unbelievable", "crazy"}},
	{Tone: "Sadness", Words: []string{"suicide", "depression", "alone", "crying"}},
}

var DefaultCategorySurcharges = map[string]float64{
	"identity":    5,
	"insensitive": 5,
}

var DefaultCompoundRules = []CompoundRuleConfig{
	{Keyword: "kill", Context: []string{"how to", "tutorial", "plan"}, Reason: "Instructional violence", Weight: 20},
	{Keyword: "dead", Context: []string{"found", "body", "accident"}, Reason: "Shocking death", Weight: 15},
	{Keyword: "beat", Context: []string{"up", "badly"}, Reason: "Graphic violence", Weight: 15},
	{Keyword: "attack", Context: []string{"caught", "footage"}, Reason: "Violent content", Weight: 10},
	{Keyword: "sex", Context: []string{"gone wrong", "leaked", "secret"}, Reason: "Suggestive or sexual framing", Weight: 20},
	{Keyword: "nude", Aliases: []string{"naked"}, Reason: "Sexualized imagery", Weight: 20},
	{Keyword: "drug", Context: []string{"try", "challenge", "for 24 hours"}, Reason: "Encouraging drug use", Weight: 15},
	{Keyword: "high", Context: []string{"on", "smoking"}, Reason: "Implied drug use", Weight: 10},
	{Keyword: "overdose", Aliases: []string{"od"}, Reason: "Drug-related content", Weight: 15},
	{Keyword: "abuse", Context: []string{"caught", "watch", "exposed", "filmed"}, Reason: "Graphic abuse framing", Weight: 20},
	{Keyword: "scammed", Context: []string{"got", "was"}, Reason: "Scam victim framing", Weight: 10},
	{Keyword: "forced", Context: []string{"to"}, Reason: "Non-consensual or coercive framing", Weight: 10},
	{Keyword: "bullied", Aliases: []string{"made fun of"}, Reason: "Bullying framing", Weight: 10},
	{Keyword: "shamed", Aliases: []string{"exposed"}, Reason: "Public shaming framing", Weight: 10},
}

// DefaultConfig returns a fresh copy of the built-in scoring configuration.
func DefaultConfig() Config {
	tones := make([]ToneConfig, len(DefaultEmotionalTones))
	copy(tones, DefaultEmotionalTones)

	surcharges := make(map[string]float64, len(DefaultCategorySurcharges))
	for k, v := range DefaultCategorySurcharges {
		surcharges[k] = v
	}

	rules := make([]CompoundRuleConfig, len(DefaultCompoundRules))
	copy(rules, DefaultCompoundRules)

	return Config{
		MatchMode:            MatchWord,
		AllCapsPenalty:       DefaultAllCapsPenalty,
		ExclamationThreshold: DefaultExclamationThreshold,
		ExclamationPenalty:   DefaultExclamationPenalty,
		EmotionalTonePenalty: DefaultEmotionalTonePenalty,
		EmotionalTones:       tones,
		CategorySurcharges:   surcharges,
		CompoundRules:        rules,
	}
}
