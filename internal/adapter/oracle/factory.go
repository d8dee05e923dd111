package oracle

import (
	"log/slog"
	"os"
	"time"
)

const (
	// EnvMode is the environment variable name for backend selection.
	EnvMode = "MINDSCOPE_MODE"
	// ModeMock indicates the offline mock backend should be used.
	ModeMock = "MOCK"
)

// NewBackend creates a Backend based on the MINDSCOPE_MODE environment
// variable. If MINDSCOPE_MODE=MOCK, returns a MockBackend; otherwise an HTTP
// client for the configured endpoint.
func NewBackend(baseURL, apiKey string, timeout time.Duration, log *slog.Logger) Backend {
	if os.Getenv(EnvMode) == ModeMock {
		log.Info("MINDSCOPE_MODE=MOCK detected, using mock oracle backend")
		return NewMockBackend()
	}

	return NewClient(baseURL, apiKey, timeout)
}
