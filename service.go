package cryptics

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"crosswarped.com/cryptics/internal/config"
	"crosswarped.com/cryptics/pkg/clue"
	"crosswarped.com/cryptics/pkg/wordlist"
)

// Result is the ranked outcome of solving one clue.
type Result struct {
	Clue    string         `json:"clue" yaml:"clue"`
	Answers []ResultAnswer `json:"answers" yaml:"answers"`
	// KnownAnswer echoes the answer supplied with the clue. It never affects ranking;
	// KnownAnswerRank is its 1-based position among all distinct answers, 0 if absent.
	KnownAnswer     string `json:"known_answer,omitempty" yaml:"known_answer,omitempty"`
	KnownAnswerRank int    `json:"known_answer_rank,omitempty" yaml:"known_answer_rank,omitempty"`
}

// ResultAnswer is one distinct answer with every derivation that produced it.
type ResultAnswer struct {
	Answer         string   `json:"answer" yaml:"answer"`
	Similarity     float64  `json:"similarity" yaml:"similarity"`
	Derivations    []string `json:"derivations" yaml:"derivations"`
	LongDerivation string   `json:"long_derivation" yaml:"long_derivation"`
}

// Service solves clues against a loaded word list. Every call gets its own session.
type Service struct {
	words   *wordlist.List
	solver  config.SolverConfig
	limit   int
	timeout time.Duration
}

// NewService creates a Service over words.
func NewService(words *wordlist.List, cfg *config.Config) *Service {
	return &Service{
		words:   words,
		solver:  cfg.Solver,
		limit:   cfg.Output.Limit,
		timeout: time.Duration(cfg.Solver.TimeoutSecs) * time.Second,
	}
}

// Solve solves text and returns at most limit distinct answers, best first. A limit
// of zero or less uses the configured limit.
func (s *Service) Solve(ctx context.Context, text string, limit int) (*Result, error) {
	if limit <= 0 {
		limit = s.limit
	}
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	solver := NewSolver(s.words, s.solver)
	defer solver.Close()

	solver.Setup(text)
	if _, err := solver.Run(ctx); err != nil {
		return nil, err
	}
	solutions := solver.CollectAnswers()

	result := &Result{Clue: text, Answers: []ResultAnswer{}}
	if c, err := clue.Parse(clue.NormalizeText(text)); err == nil && c.KnownAnswer != "" {
		result.KnownAnswer = wordlist.Normalize(c.KnownAnswer)
	}

	for i, ranked := range solutions.SortedAnswers() {
		if result.KnownAnswer != "" && ranked.Answer == result.KnownAnswer {
			result.KnownAnswerRank = i + 1
		}
		if i >= limit {
			continue
		}
		derivations := solutions.Derivations(ranked.Answer)
		ra := ResultAnswer{
			Answer:      ranked.Answer,
			Similarity:  ranked.Similarity,
			Derivations: make([]string, 0, len(derivations)),
		}
		for _, d := range derivations {
			ra.Derivations = append(ra.Derivations, d.Derivation())
		}
		if len(derivations) > 0 {
			ra.LongDerivation = derivations[0].LongDerivation()
		}
		result.Answers = append(result.Answers, ra)
	}
	return result, nil
}

type solveRequest struct {
	Clue  string `json:"clue"`
	Limit int    `json:"limit"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Warn("http: encode response", zap.Error(err))
	}
}

// ServeHTTP solves the clue given as the "clue" query parameter (GET) or in a JSON
// body {"clue": ..., "limit": ...} (POST).
func (s *Service) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req solveRequest
	switch r.Method {
	case http.MethodGet:
		req.Clue = r.URL.Query().Get("clue")
		if l := r.URL.Query().Get("limit"); l != "" {
			n, err := strconv.Atoi(l)
			if err != nil {
				writeJSON(w, http.StatusBadRequest, errorResponse{Error: "limit must be an integer"})
				return
			}
			req.Limit = n
		}
	case http.MethodPost:
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
			return
		}
	default:
		w.Header().Set("Allow", "GET, POST")
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return
	}
	if req.Clue == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "clue is required"})
		return
	}

	result, err := s.Solve(r.Context(), req.Clue, req.Limit)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, result)
	case eris.Is(err, clue.ErrMalformedClue):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case eris.Is(err, context.DeadlineExceeded):
		writeJSON(w, http.StatusGatewayTimeout, errorResponse{Error: "solve timed out"})
	default:
		zap.L().Error("http: solve failed", zap.String("clue", req.Clue), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
