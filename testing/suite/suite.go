package suite

import (
	"context"
	"log/slog"
	"testing"
	"time"
)

const maxWaitDuration = 120 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger
}

// New - returns a context bounded by maxWaitDuration and a debug logger that writes through t.Log.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewTextHandler(testWriter{t}, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return ctx, &Suite{
		T:      t,
		Logger: logger,
	}
}

type testWriter struct {
	t *testing.T
}

func (that testWriter) Write(p []byte) (int, error) {
	that.t.Helper()
	that.t.Log(string(p))
	return len(p), nil
}
