// Package cryptics wires the clue solver to its default collaborators and exposes it
// as a Cloud Function.
package cryptics

import (
	"context"

	"github.com/rotisserie/eris"

	"crosswarped.com/cryptics/internal/config"
	"crosswarped.com/cryptics/pkg/clue"
	"crosswarped.com/cryptics/pkg/phrasing"
	"crosswarped.com/cryptics/pkg/similarity"
	"crosswarped.com/cryptics/pkg/wordlist"
	"crosswarped.com/cryptics/pkg/wordplay"
)

// NewSolver creates a solver session over words using the built-in grammar engine,
// phrasing expander, and thesaurus similarity.
func NewSolver(words *wordlist.List, cfg config.SolverConfig) *clue.Solver {
	agg := clue.NewAggregator(
		phrasing.New(cfg.MaxRun),
		wordplay.NewResolver(words),
		similarity.NewOracle(words),
		words,
		cfg.Workers,
	)
	return clue.NewSolver(agg)
}

// LoadWordList loads the synonym list from the configured source.
func LoadWordList(ctx context.Context, cfg config.WordListConfig) (*wordlist.List, error) {
	switch cfg.Source {
	case config.SourceFile:
		return wordlist.LoadFile(cfg.Path)
	case config.SourceSQLite:
		return wordlist.LoadSQLite(ctx, cfg.Path)
	case config.SourcePostgres:
		pool, err := wordlist.ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		defer pool.Close()
		return wordlist.LoadPostgres(ctx, pool)
	case config.SourceBigQuery:
		return LoadWordsFromCloud(ctx, cfg.BigQuery.Project, cfg.BigQuery.Dataset, cfg.BigQuery.Table)
	}
	return nil, eris.Errorf("cryptics: unknown word list source %q", cfg.Source)
}
