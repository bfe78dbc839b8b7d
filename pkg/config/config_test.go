package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/domain"
	"github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/phrases"
	"github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/scoring"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0600))
	return dir
}

func chdirTemp(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	chdirTemp(t)

	require.NoError(t, Load(t.TempDir()))
	cfg := GetConfig()

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 100, cfg.Server.MaxTitles)
	assert.Equal(t, SourceCSV, cfg.Reference.Source)
	assert.Equal(t, scoring.MatchWord, cfg.Scoring.MatchMode)
	assert.Equal(t, 10.0, cfg.Scoring.DefaultSeverity)
	assert.Equal(t, scoring.DefaultCompoundRules, cfg.Scoring.CompoundRules)
	assert.Equal(t, phrases.DefaultRuleConfigs, cfg.Scoring.PhraseRules)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	chdirTemp(t)
	dir := writeConfig(t, `
server:
  port: 9000
  max_titles: 50
reference:
  source: postgres
scoring:
  match_mode: substring
  all_caps_penalty: 3
  category_surcharges:
    Hate: 12
  compound_rules:
    - keyword: rob
      context: ["bank", "store"]
      reason: Robbery
      weight: 7
  phrase_rules:
    - label: Spam
      patterns: ["free v-bucks"]
      weight: 40
`)

	require.NoError(t, Load(dir))
	cfg := GetConfig()

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 50, cfg.Server.MaxTitles)
	assert.Equal(t, SourcePostgres, cfg.Reference.Source)
	assert.Equal(t, scoring.MatchSubstring, cfg.Scoring.MatchMode)
	assert.Equal(t, 3.0, cfg.Scoring.AllCapsPenalty)
	assert.Equal(t, scoring.DefaultExclamationPenalty, cfg.Scoring.ExclamationPenalty)
	assert.Equal(t, map[string]float64{"hate": 12}, cfg.Scoring.CategorySurcharges)
	assert.Equal(t, []scoring.CompoundRuleConfig{
		{Keyword: "rob", Context: []string{"bank", "store"}, Reason: "Robbery", Weight: 7},
	}, cfg.Scoring.CompoundRules)
	assert.Equal(t, []phrases.RuleConfig{
		{Label: "Spam", Patterns: []string{"free v-bucks"}, Weight: 40},
	}, cfg.Scoring.PhraseRules)
	assert.Equal(t, scoring.DefaultEmotionalTones, cfg.Scoring.EmotionalTones)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	chdirTemp(t)
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("SCORING_MATCH_MODE", "substring")

	require.NoError(t, Load(t.TempDir()))
	cfg := GetConfig()

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, scoring.MatchSubstring, cfg.Scoring.MatchMode)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"max titles too large", "server:\n  max_titles: 501\n"},
		{"max titles zero", "server:\n  max_titles: 0\n"},
		{"unknown source", "reference:\n  source: s3\n"},
		{"negative default severity", "scoring:\n  default_severity: -1\n"},
		{"malformed yaml", "server: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chdirTemp(t)
			assert.Error(t, Load(writeConfig(t, tt.body)))
		})
	}
}

func TestValidate_UnknownSource(t *testing.T) {
	cfg := Config{
		Server:    ServerConfig{MaxTitles: 10},
		Reference: ReferenceConfig{Source: "ftp"},
	}
	assert.ErrorIs(t, cfg.Validate(), domain.ErrUnknownSourceKind)
}
