package reference

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/config"
	"github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/domain"
	"github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/infra/database"
	"github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/infra/tabular"
	"github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/keywords"
	"github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/phrases"
	"github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/severity"

	_ "github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/infra/migrations"
)

// Set is a validated, read-only reference set. Nothing in it changes after
// Load returns, so it can be shared by concurrent scans.
type Set struct {
	Keywords *keywords.Table
	Severity *severity.Index
	Phrases  *phrases.RuleSet
}

type Summary struct {
	Source       string   `json:"source"`
	Keywords     int      `json:"keywords"`
	Severities   int      `json:"severities"`
	PhraseRules  int      `json:"phrase_rules"`
	PhraseLabels []string `json:"phrase_labels"`
}

func (s *Set) Summary(source string) Summary {
	return Summary{
		Source:       source,
		Keywords:     s.Keywords.Len(),
		Severities:   s.Severity.Len(),
		PhraseRules:  s.Phrases.Len(),
		PhraseLabels: s.Phrases.Labels(),
	}
}

// Load reads the keyword and severity tables from the configured source and
// compiles the phrase rules. All three are validated before returning and
// every failure is reported, not only the first.
func Load(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*Set, error) {
	var (
		kwRaw, sevRaw tabular.Table
		err           error
	)

	switch cfg.Reference.Source {
	case config.SourceCSV:
		kwRaw, sevRaw, err = readCSV(cfg.Reference)
	case config.SourcePostgres:
		kwRaw, sevRaw, err = readPostgres(ctx, cfg, logger)
	default:
		err = fmt.Errorf("%w: %q", domain.ErrUnknownSourceKind, cfg.Reference.Source)
	}
	if err != nil {
		return nil, err
	}

	set, err := Build(kwRaw, sevRaw, cfg.Scoring.PhraseRules, cfg.Scoring.DefaultSeverity)
	if err != nil {
		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"source":       cfg.Reference.Source,
		"keywords":     set.Keywords.Len(),
		"severities":   set.Severity.Len(),
		"phrase_rules": set.Phrases.Len(),
	}).Info("reference set loaded")
	return set, nil
}

// Build constructs the three components from raw tables and rule configs.
func Build(kwRaw, sevRaw tabular.Table, rules []phrases.RuleConfig, defaultSeverity float64) (*Set, error) {
	kt, kwErr := keywords.NewTable(kwRaw)
	si, sevErr := severity.NewIndex(sevRaw, severity.WithDefaultDeduction(defaultSeverity))
	prs, phErr := phrases.NewRuleSet(rules)

	if err := errors.Join(kwErr, sevErr, phErr); err != nil {
		return nil, err
	}
	return &Set{Keywords: kt, Severity: si, Phrases: prs}, nil
}

func readCSV(cfg config.ReferenceConfig) (tabular.Table, tabular.Table, error) {
	kwRaw, kwErr := tabular.ReadCSVFile(cfg.KeywordsPath)
	sevRaw, sevErr := tabular.ReadCSVFile(cfg.SeverityPath)
	if err := errors.Join(kwErr, sevErr); err != nil {
		return tabular.Table{}, tabular.Table{}, err
	}
	return kwRaw, sevRaw, nil
}

func readPostgres(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (tabular.Table, tabular.Table, error) {
	db, err := database.NewDB(ctx, logger, &database.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		return tabular.Table{}, tabular.Table{}, err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.WithError(err).Warn("failed to close database")
		}
	}()

	kwRaw, kwErr := db.ReadTable(ctx, cfg.Reference.KeywordsTable)
	sevRaw, sevErr := db.ReadTable(ctx, cfg.Reference.SeverityTable)
	if err := errors.Join(kwErr, sevErr); err != nil {
		return tabular.Table{}, tabular.Table{}, err
	}
	return kwRaw, sevRaw, nil
}
