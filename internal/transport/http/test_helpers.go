package http

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/roams-app/roams-server/internal/config"
	"github.com/roams-app/roams-server/internal/core"
	"github.com/roams-app/roams-server/internal/guide"
	"github.com/roams-app/roams-server/internal/store"
	"github.com/roams-app/roams-server/internal/store/sqlite"
)

// startTestServer spins up the full HTTP surface backed by an in-memory
// SQLite store and a running hub.
func startTestServer(t *testing.T) (*httptest.Server, store.CommentStore) {
	t.Helper()

	st, err := sqlite.New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	logger := zerolog.Nop()
	hub := core.NewHub(st, &logger)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)

	gen := guide.New(guide.Config{APIKey: "test"}, &logger)

	server := NewServer(hub, st, gen, config.Config{
		Addr:              ":0",
		ReadHeaderTimeout: time.Second,
		ShutdownTimeout:   time.Second,
	}, &logger)

	ts := httptest.NewServer(server.Handler)
	t.Cleanup(ts.Close)

	return ts, st
}
