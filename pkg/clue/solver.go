package clue

import (
	"context"
	"slices"
	"sync"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// State is where a Solver is in its setup/run lifecycle.
type State int

const (
	Idle State = iota
	Configured
	Solved
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Configured:
		return "configured"
	case Solved:
		return "solved"
	}
	return "unknown"
}

// Solver is a session solving one clue at a time.
//
// Setup stores the clue text, Run parses and solves it, and Reset discards everything.
// Reset may be called from another goroutine while Run is in progress; the results of
// that run are then dropped.
type Solver struct {
	agg *Aggregator

	mu         sync.Mutex
	state      State
	text       string
	answers    []Answer
	generation uint64
}

// NewSolver creates an idle session backed by agg.
func NewSolver(agg *Aggregator) *Solver {
	return &Solver{agg: agg}
}

// State returns the current lifecycle state.
func (s *Solver) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Setup stores a normalized copy of the raw clue text. The text is only parsed by Run.
func (s *Solver) Setup(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.text = NormalizeText(text)
	s.answers = nil
	s.state = Configured
	s.generation++
}

// Run solves the configured clue and returns the ranked candidates.
//
// Malformed clue text returns an error wrapping ErrMalformedClue and leaves the session
// configured. A cancelled ctx resets the session.
func (s *Solver) Run(ctx context.Context) ([]Answer, error) {
	s.mu.Lock()
	if s.state == Idle {
		s.mu.Unlock()
		return nil, eris.Wrap(ErrInvalidState, "solver: run before setup")
	}
	text, gen := s.text, s.generation
	s.mu.Unlock()

	constraints, err := Parse(text)
	if err != nil {
		return nil, err
	}

	log := zap.L().With(zap.String("component", "solver"), zap.String("clue", text))
	log.Debug("solver: solving",
		zap.Strings("phrases", constraints.Phrases),
		zap.Ints("lengths", constraints.Lengths),
		zap.String("pattern", constraints.Pattern),
	)

	answers, err := s.agg.Solve(ctx, constraints)
	if err != nil {
		s.resetIfCurrent(gen)
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation != gen {
		return nil, eris.Wrap(ErrInvalidState, "solver: session reset during run")
	}
	s.answers = answers
	s.state = Solved
	log.Debug("solver: solved", zap.Int("candidates", len(answers)))
	return slices.Clone(answers), nil
}

// Reset discards the clue and any candidates, returning the session to Idle.
func (s *Solver) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
}

// resetIfCurrent resets unless another Setup or Reset already replaced run gen.
func (s *Solver) resetIfCurrent(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation == gen {
		s.resetLocked()
	}
}

func (s *Solver) resetLocked() {
	s.text = ""
	s.answers = nil
	s.state = Idle
	s.generation++
}

// CollectAnswers groups the last run's candidates by answer. It returns nil before
// a successful Run.
func (s *Solver) CollectAnswers() *Solutions {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Solved {
		return nil
	}
	return CollectSolutions(s.answers)
}

// Close resets the session.
func (s *Solver) Close() error {
	s.Reset()
	return nil
}
