package scanner

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/keywords"
	"github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/phrases"
	"github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/scoring"
	"github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/severity"
	"github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/types"
)

// Scorer scores one title. *scoring.TitleScorer satisfies it.
type Scorer interface {
	Score(title string) types.ScanResult
}

// BatchScanner applies a Scorer to a list of titles, fanning out over a
// bounded number of goroutines. Results always come back in input order.
type BatchScanner struct {
	scorer  Scorer
	workers int
}

type Option func(*BatchScanner)

// WithWorkers bounds the number of titles scored at once. Values below one
// mean sequential scanning.
func WithWorkers(n int) Option {
	return func(b *BatchScanner) {
		if n < 1 {
			n = 1
		}
		b.workers = n
	}
}

func New(scorer Scorer, opts ...Option) *BatchScanner {
	b := &BatchScanner{
		scorer:  scorer,
		workers: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Scan returns one result per title, in the same order as titles.
func (b *BatchScanner) Scan(titles []string) []types.ScanResult {
	results := make([]types.ScanResult, len(titles))
	if len(titles) == 0 {
		return results
	}

	if b.workers == 1 || len(titles) == 1 {
		for i, title := range titles {
			results[i] = b.scorer.Score(title)
		}
		return results
	}

	var g errgroup.Group
	g.SetLimit(b.workers)
	for i, title := range titles {
		i, title := i, title
		g.Go(func() error {
			results[i] = b.scorer.Score(title)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// Scan builds a scorer with the default scoring configuration and scans
// titles against the given reference components.
func Scan(
	titles []string,
	kt *keywords.Table,
	si *severity.Index,
	prs *phrases.RuleSet,
) ([]types.ScanResult, error) {
	scorer, err := scoring.NewTitleScorer(kt, si, prs, scoring.DefaultConfig())
	if err != nil {
		return nil, err
	}
	return New(scorer).Scan(titles), nil
}
