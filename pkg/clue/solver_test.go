package clue

import (
	"context"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSolver() *Solver {
	resolver := mapResolver{
		"spin broken shingle": {&fakeClue{definition: "spin", answers: []string{"english"}}},
	}
	agg := NewAggregator(identityExpander{}, resolver, mapOracle{"english|spin": 0.9}, sliceWords{"needless"}, 2)
	return NewSolver(agg)
}

func TestSolver_Lifecycle(t *testing.T) {
	s := newTestSolver()
	assert.Equal(t, Idle, s.State())
	assert.Nil(t, s.CollectAnswers())

	s.Setup("Spin broken shingle (7) | ")
	assert.Equal(t, Configured, s.State())
	assert.Nil(t, s.CollectAnswers())

	got, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Solved, s.State())
	require.Len(t, got, 1)
	assert.Equal(t, "english", got[0].Answer)

	solutions := s.CollectAnswers()
	require.NotNil(t, solutions)
	assert.Equal(t, []RankedAnswer{{Answer: "english", Similarity: 0.9}}, solutions.SortedAnswers())

	// Run again from Solved.
	again, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, got, again)

	s.Reset()
	assert.Equal(t, Idle, s.State())
	assert.Nil(t, s.CollectAnswers())
}

func TestSolver_RunBeforeSetup(t *testing.T) {
	s := newTestSolver()
	_, err := s.Run(context.Background())
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrInvalidState))
	assert.Equal(t, Idle, s.State())
}

func TestSolver_MalformedStaysConfigured(t *testing.T) {
	s := newTestSolver()
	s.Setup("no length group here")

	_, err := s.Run(context.Background())
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrMalformedClue))
	assert.Equal(t, Configured, s.State())
	assert.Nil(t, s.CollectAnswers())

	s.Setup("spin broken shingle (7)")
	got, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestSolver_SetupDiscardsPreviousAnswers(t *testing.T) {
	s := newTestSolver()
	s.Setup("spin broken shingle (7)")
	_, err := s.Run(context.Background())
	require.NoError(t, err)

	s.Setup("something else (4)")
	assert.Nil(t, s.CollectAnswers())

	got, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSolver_CancelResets(t *testing.T) {
	s := newTestSolver()
	s.Setup("spin broken shingle (7)")
	_, err := s.Run(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.Run(ctx)
	require.Error(t, err)
	assert.True(t, eris.Is(err, context.Canceled))
	assert.Equal(t, Idle, s.State())
	assert.Nil(t, s.CollectAnswers())

	_, err = s.Run(context.Background())
	assert.True(t, eris.Is(err, ErrInvalidState))
}

// gatedResolver parks Resolve until release is closed.
type gatedResolver struct {
	entered chan struct{}
	release chan struct{}
	clues   []Clue
}

func newGatedResolver(clues ...Clue) *gatedResolver {
	return &gatedResolver{entered: make(chan struct{}), release: make(chan struct{}), clues: clues}
}

func (g *gatedResolver) Resolve(Constraints) []Clue {
	close(g.entered)
	<-g.release
	return g.clues
}

func runInBackground(s *Solver) <-chan error {
	done := make(chan error, 1)
	go func() {
		_, err := s.Run(context.Background())
		done <- err
	}()
	return done
}

func TestSolver_ResetDuringRun(t *testing.T) {
	resolver := newGatedResolver(&fakeClue{definition: "spin", answers: []string{"english"}})
	s := NewSolver(NewAggregator(identityExpander{}, resolver, mapOracle{}, sliceWords{}, 1))
	s.Setup("spin broken shingle (7)")

	done := runInBackground(s)
	<-resolver.entered
	s.Reset()
	close(resolver.release)

	err := <-done
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrInvalidState))
	assert.Equal(t, Idle, s.State())
	assert.Nil(t, s.CollectAnswers())
}

func TestSolver_SetupDuringRun(t *testing.T) {
	resolver := newGatedResolver(&fakeClue{definition: "spin", answers: []string{"english"}})
	s := NewSolver(NewAggregator(identityExpander{}, resolver, mapOracle{}, sliceWords{}, 1))
	s.Setup("spin broken shingle (7)")

	done := runInBackground(s)
	<-resolver.entered
	s.Setup("another clue (4)")
	close(resolver.release)

	err := <-done
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrInvalidState))
	assert.Equal(t, Configured, s.State())
	assert.Nil(t, s.CollectAnswers())
	assert.Equal(t, "another clue (4)", s.text)
}

func TestSolver_NormalizesText(t *testing.T) {
	s := newTestSolver()
	s.Setup("Spin broken\u00a0 shingle (7) \u2605")
	got, err := s.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "english", got[0].Answer)

	// Non-ASCII letters are dropped, not folded.
	s.Setup("Sp\u00edn broken shingle (7)")
	assert.Equal(t, "Spn broken shingle (7)", s.text)
	got, err = s.Run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSolver_Close(t *testing.T) {
	s := newTestSolver()
	s.Setup("spin broken shingle (7)")
	require.NoError(t, s.Close())
	assert.Equal(t, Idle, s.State())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "configured", Configured.String())
	assert.Equal(t, "solved", Solved.String())
	assert.Equal(t, "unknown", State(9).String())
}
