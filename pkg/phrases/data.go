package phrases

const (
	Clickbait            = "Clickbait"
	HealthMisinformation = "Health Misinformation"
	FinancialMisleading  = "Financial Misleading"
	ManipulativeUrgency  = "Manipulative Urgency"
	Overpromising        = "Overpromising"
)

// RuleConfig is the configuration form of a labelled group of patterns.
// Every pattern in the group becomes one Rule carrying the group's weight.
type RuleConfig struct {
	Label    string   `mapstructure:"label" json:"label"`
	Patterns []string `mapstructure:"patterns" json:"patterns"`
	Weight   float64  `mapstructure:"weight" json:"weight"`
}

// DefaultRuleConfigs is the built-in rule set, version 3.
var DefaultRuleConfigs = []RuleConfig{
	{
		Label:    Clickbait,
		Patterns: []string{`you won't believe`, `shocking`, `gone wrong`, `insane`, `crazy`, `exposed`},
		Weight:   10,
	},
	{
		Label:    HealthMisinformation,
		Patterns: []string{`cure cancer`, `anti-vax`, `miracle cure`, `flat earth`},
		Weight:   30,
	},
	{
		Label:    FinancialMisleading,
		Patterns: []string{`get rich quick`, `earn \$\d+`, `make money fast`, `no experience needed`},
		Weight:   25,
	},
	{
		Label:    ManipulativeUrgency,
		Patterns: []string{`limited time`, `before it's too late`, `act now`},
		Weight:   15,
	},
	{
		Label:    Overpromising,
		Patterns: []string{`guaranteed results`, `100% success`, `never fail`},
		Weight:   20,
	},
}
