package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/domain"
	"github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/phrases"
	"github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/scoring"
	"github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/severity"
)

const (
	SourceCSV      = "csv"
	SourcePostgres = "postgres"

	MaxTitlesLimit = 500
)

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
	Log       LogConfig       `mapstructure:"log"`
	Reference ReferenceConfig `mapstructure:"reference"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Scoring   ScoringConfig   `mapstructure:"scoring"`
}

type ServerConfig struct {
	Host        string `mapstructure:"host"`
	Port        int    `mapstructure:"port"`
	MetricsPort int    `mapstructure:"metrics_port"`
	JWTSecret   string `mapstructure:"jwt_secret"`
	MaxTitles   int    `mapstructure:"max_titles"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// ReferenceConfig says where the keyword and severity tables come from.
// Phrase rules always come from the scoring section.
type ReferenceConfig struct {
	Source        string `mapstructure:"source"`
	KeywordsPath  string `mapstructure:"keywords_path"`
	SeverityPath  string `mapstructure:"severity_path"`
	KeywordsTable string `mapstructure:"keywords_table"`
	SeverityTable string `mapstructure:"severity_table"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

type ScoringConfig struct {
	scoring.Config  `mapstructure:",squash"`
	DefaultSeverity float64              `mapstructure:"default_severity"`
	Workers         int                  `mapstructure:"workers"`
	PhraseRules     []phrases.RuleConfig `mapstructure:"phrase_rules"`
}

var globalConfig Config

// Load reads config.yaml from configPath, ./config or the working directory
// and overlays environment variables (server.port -> SERVER_PORT). A missing
// file is not an error: the built-in defaults apply.
func Load(configPath string) error {
	v := viper.New()
	registerDefaults(v)

	var cfg Config
	if err := loadConfigFile(v, configPath, "config", &cfg); err != nil {
		return err
	}
	setDefaultValues(&cfg)

	if err := cfg.Validate(); err != nil {
		return err
	}
	globalConfig = cfg
	return nil
}

func loadConfigFile(v *viper.Viper, configPath, fileName string, out interface{}) error {
	v.SetConfigName(fileName)
	v.SetConfigType("yaml")
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("error reading config file %s.yaml: %w", fileName, err)
		}
	}

	if err := v.Unmarshal(out); err != nil {
		return fmt.Errorf("failed to unmarshal %s config: %w", fileName, err)
	}
	return nil
}

func registerDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.metrics_port", 9090)
	v.SetDefault("server.jwt_secret", "")
	v.SetDefault("server.max_titles", 100)

	v.SetDefault("metrics.enabled", true)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "logs/scanner.log")

	v.SetDefault("reference.source", SourceCSV)
	v.SetDefault("reference.keywords_path", "data/keywords.csv")
	v.SetDefault("reference.severity_path", "data/severity.csv")
	v.SetDefault("reference.keywords_table", "keywords")
	v.SetDefault("reference.severity_table", "keyword_severity")

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "scanner")
	v.SetDefault("database.sslmode", "disable")

	v.SetDefault("scoring.match_mode", string(scoring.MatchWord))
	v.SetDefault("scoring.default_severity", severity.DefaultDeduction)
	v.SetDefault("scoring.workers", 0)
	v.SetDefault("scoring.all_caps_penalty", scoring.DefaultAllCapsPenalty)
	v.SetDefault("scoring.exclamation_threshold", scoring.DefaultExclamationThreshold)
	v.SetDefault("scoring.exclamation_penalty", scoring.DefaultExclamationPenalty)
	v.SetDefault("scoring.emotional_tone_penalty", scoring.DefaultEmotionalTonePenalty)
}

// setDefaultValues fills list and map settings. These are not registered
// with viper because a partial list in the file would be merged element by
// element with the defaults instead of replacing them.
func setDefaultValues(cfg *Config) {
	defaults := scoring.DefaultConfig()
	if cfg.Scoring.EmotionalTones == nil {
		cfg.Scoring.EmotionalTones = defaults.EmotionalTones
	}
	if cfg.Scoring.CategorySurcharges == nil {
		cfg.Scoring.CategorySurcharges = defaults.CategorySurcharges
	}
	if cfg.Scoring.CompoundRules == nil {
		cfg.Scoring.CompoundRules = defaults.CompoundRules
	}
	if cfg.Scoring.PhraseRules == nil {
		cfg.Scoring.PhraseRules = append([]phrases.RuleConfig(nil), phrases.DefaultRuleConfigs...)
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
}

func (c *Config) Validate() error {
	if c.Server.MaxTitles < 1 || c.Server.MaxTitles > MaxTitlesLimit {
		return fmt.Errorf("server.max_titles must be between 1 and %d, got %d", MaxTitlesLimit, c.Server.MaxTitles)
	}
	switch c.Reference.Source {
	case SourceCSV:
		if c.Reference.KeywordsPath == "" || c.Reference.SeverityPath == "" {
			return fmt.Errorf("reference.keywords_path and reference.severity_path are required for the csv source")
		}
	case SourcePostgres:
		if c.Reference.KeywordsTable == "" || c.Reference.SeverityTable == "" {
			return fmt.Errorf("reference.keywords_table and reference.severity_table are required for the postgres source")
		}
	default:
		return fmt.Errorf("%w: reference.source %q, must be %q or %q",
			domain.ErrUnknownSourceKind, c.Reference.Source, SourceCSV, SourcePostgres)
	}
	if c.Scoring.DefaultSeverity < 0 {
		return fmt.Errorf("scoring.default_severity cannot be negative")
	}
	return nil
}

func GetConfig() *Config {
	return &globalConfig
}
