package clue

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"crosswarped.com/cryptics/pkg/pattern"
)

// Aggregator runs every phrasing of a clue through the resolver, scores the answers,
// and ranks them. When no phrasing yields anything it falls back to the word list.
type Aggregator struct {
	expander Expander
	resolver Resolver
	oracle   Oracle
	words    WordList
	workers  int
}

// NewAggregator wires the collaborators together. Phrasings are solved by up to
// workers goroutines; workers <= 1 solves them one at a time on the caller's goroutine.
func NewAggregator(expander Expander, resolver Resolver, oracle Oracle, words WordList, workers int) *Aggregator {
	return &Aggregator{
		expander: expander,
		resolver: resolver,
		oracle:   oracle,
		words:    words,
		workers:  workers,
	}
}

// Solve returns every scored candidate for c, best first. It only fails when ctx is
// done; cancellation is checked between phrasings.
func (a *Aggregator) Solve(ctx context.Context, c Constraints) ([]Answer, error) {
	phrasings := a.expander.Expand(c.Phrases)
	if len(phrasings) == 0 {
		phrasings = [][]string{c.Phrases}
	}

	perPhrasing := make([][]Answer, len(phrasings))
	if err := a.solvePhrasings(ctx, c, phrasings, perPhrasing); err != nil {
		return nil, err
	}

	var answers []Answer
	for _, found := range perPhrasing {
		answers = append(answers, found...)
	}

	if len(answers) == 0 && pattern.HasLetters(c.Pattern) {
		answers = a.fallback(c, phrasings[0])
		zap.L().Info("clue: wordplay found nothing, using pattern matches",
			zap.String("pattern", c.Pattern),
			zap.Int("matches", len(answers)),
		)
	}

	Sort(answers)
	return answers, nil
}

func (a *Aggregator) solvePhrasings(ctx context.Context, c Constraints, phrasings [][]string, out [][]Answer) error {
	if a.workers <= 1 {
		for i, p := range phrasings {
			if err := ctx.Err(); err != nil {
				return eris.Wrap(err, "clue: solve cancelled")
			}
			out[i] = a.SolveConstraints(c.WithPhrases(p))
		}
		return nil
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)
	for i, p := range phrasings {
		if gCtx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			out[i] = a.SolveConstraints(c.WithPhrases(p))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return eris.Wrap(err, "clue: solve cancelled")
	}
	if err := ctx.Err(); err != nil {
		return eris.Wrap(err, "clue: solve cancelled")
	}
	return nil
}

// SolveConstraints scores the answers of every derivation of one phrasing, best first.
// Derivations that cannot be completed contribute nothing.
func (a *Aggregator) SolveConstraints(c Constraints) []Answer {
	zap.L().Debug("clue: trying phrasing", zap.Strings("phrases", c.Phrases))

	var answers []Answer
	for _, cl := range a.resolver.Resolve(c) {
		raw, err := cl.Answers()
		if err != nil {
			if !eris.Is(err, ErrClueUnsolvable) {
				zap.L().Warn("clue: derivation failed", zap.Error(err))
			}
			continue
		}
		for _, r := range raw {
			answers = append(answers, Score(a.oracle, r, cl))
		}
	}
	Sort(answers)
	return answers
}

func (a *Aggregator) fallback(c Constraints, phrasing []string) []Answer {
	var answers []Answer
	for w := range a.words.All() {
		if pattern.Matches(w, c.Pattern, c.Lengths) {
			answers = append(answers, ScorePattern(a.oracle, w, phrasing))
		}
	}
	return answers
}
