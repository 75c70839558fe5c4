package root

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"os"
	"time"

	"advent/internal/backup"
	"advent/internal/calendar"
	"advent/internal/catalog"
	"advent/internal/engine"
	"advent/internal/gate"
	"advent/internal/ledger"
	"advent/internal/profile"
	"advent/internal/storage"
)

// EnvNow pins the clock for demos and testing outside December (RFC3339).
const EnvNow = "ADVENT_NOW"

type app struct {
	db      *sql.DB
	ledger  *ledger.Ledger
	svc     *engine.Service
	gate    *gate.Gate
	codec   *backup.Codec
	profile *profile.Profile
}

func resolveOracle() calendar.Oracle {
	if v := os.Getenv(EnvNow); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return calendar.Fixed(t)
		}
	}
	return calendar.System()
}

func openApp(ctx context.Context) (*app, func(), error) {
	path, err := storage.ResolveDBPath()
	if err != nil {
		return nil, nil, err
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	store := storage.NewStore(db, logger)

	oracle := resolveOracle()
	led := ledger.New(store)
	led.Hydrate(ctx)

	a := &app{
		db:      db,
		ledger:  led,
		svc:     engine.NewService(catalog.MustBuiltin(), oracle, led),
		gate:    gate.New(store),
		codec:   backup.NewCodec(led, oracle.Now),
		profile: profile.New(store),
	}
	a.profile.EnsureFirstVisit(ctx, oracle.Now())
	return a, cleanup, nil
}

// requireAuth guards every state-touching command behind the date gate.
func (a *app) requireAuth(ctx context.Context) error {
	if !a.gate.IsAuthenticated(ctx) {
		return errors.New("not authenticated: run 'advent auth <day> <month> <year>' first")
	}
	return nil
}
