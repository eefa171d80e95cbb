package suite

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/usecase"
)

const maxWaitDuration = 10 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger

	// Logs collects everything written through Logger.
	Logs *bytes.Buffer

	Session *usecase.GameSession
}

// New - returns a context bound to the test and a fresh game session with a debug logger.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return ctx, &Suite{
		T:       t,
		Logger:  logger,
		Logs:    logs,
		Session: usecase.NewGameSession(logger),
	}
}

// PlayAll - plays the cells in order and fails the test on the first error.
func (that *Suite) PlayAll(cells ...int) {
	that.Helper()

	for _, cell := range cells {
		if err := that.Session.Play(cell); err != nil {
			that.Fatalf("could not play cell %d: %v", cell, err)
		}
	}
}
