package cryptics

import (
	"context"
	"net/http"
	"sync"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
	"go.uber.org/zap"

	"crosswarped.com/cryptics/internal/config"
)

func init() {
	functions.HTTP("SolveClue", SolveClue)
}

var (
	serviceOnce sync.Once
	service     *Service
	serviceErr  error
)

func loadService() (*Service, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := config.InitLogger(cfg.Log); err != nil {
		return nil, err
	}
	words, err := LoadWordList(context.Background(), cfg.WordList)
	if err != nil {
		return nil, err
	}
	return NewService(words, cfg), nil
}

// SolveClue is the HTTP Cloud Function entry point. The configuration and word list
// are loaded on the first request.
func SolveClue(w http.ResponseWriter, r *http.Request) {
	serviceOnce.Do(func() {
		service, serviceErr = loadService()
	})
	if serviceErr != nil {
		zap.L().Error("function: startup failed", zap.Error(serviceErr))
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "solver unavailable"})
		return
	}
	service.ServeHTTP(w, r)
}
