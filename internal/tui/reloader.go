package tui

import (
	"context"
	"log/slog"
	"time"

	"github.com/balkashynov/tinct/internal/colors"
	"github.com/balkashynov/tinct/internal/theme"
)

// Reloader rotates the store's accent color on a timer from its own
// goroutine, the way a background config reload would.
type Reloader struct {
	store    *theme.Store
	interval time.Duration
	accents  []colors.Color
	logger   *slog.Logger
}

// NewReloader returns a reloader cycling through theme.Accents.
func NewReloader(store *theme.Store, interval time.Duration, logger *slog.Logger) *Reloader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reloader{store: store, interval: interval, accents: theme.Accents, logger: logger}
}

// Run applies the next accent every interval until ctx is done. A
// non-positive interval disables reloading.
func (r *Reloader) Run(ctx context.Context) error {
	if r.interval <= 0 || len(r.accents) == 0 {
		<-ctx.Done()
		return nil
	}
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	next := 0
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			accent := r.accents[next%len(r.accents)]
			next++
			if err := r.store.Edit().ColorAccent(accent).Apply(); err != nil {
				r.logger.Error("reload accent", "err", err)
				continue
			}
			r.logger.Debug("reloaded accent", "accent", accent.Hex())
		}
	}
}
