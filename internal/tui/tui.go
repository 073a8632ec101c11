package tui

import (
	"context"
	"errors"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/balkashynov/tinct/internal/attr"
	"github.com/balkashynov/tinct/internal/dispatch"
	"github.com/balkashynov/tinct/internal/errpolicy"
	"github.com/balkashynov/tinct/internal/widget"
)

// DemoOptions configures RunDemo and RenderPreview.
type DemoOptions struct {
	// Deps is shared by every widget. Its Dispatcher is replaced.
	Deps           widget.Deps
	Overrides      attr.Set
	ReloadInterval time.Duration
}

func (o DemoOptions) queueOptions() []dispatch.QueueOption {
	// Under StopPipeline a panicking delivery must not take the loop down
	if o.Deps.Policy != nil && o.Deps.Policy.Mode() == errpolicy.StopPipeline {
		return []dispatch.QueueOption{dispatch.WithPanicHandler(o.Deps.Policy.Recover())}
	}
	return nil
}

// RunDemo starts the interactive demo and a background reloader that edits
// the store off the UI goroutine. It returns when the program exits.
func RunDemo(ctx context.Context, opts DemoOptions) error {
	logger := opts.Deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	d := dispatch.NewProgram(nil, opts.queueOptions()...)
	defer d.Close()

	deps := opts.Deps
	deps.Dispatcher = d
	show := NewShowcase(deps, opts.Overrides)
	model := NewDemoModel(deps.Store, show, d, logger)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	d.Bind(p.Send)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		_, err := p.Run()
		return demoExitError(ctx, err)
	})
	g.Go(func() error {
		return NewReloader(deps.Store, opts.ReloadInterval, logger).Run(gctx)
	})

	err := g.Wait()
	// Program may have been killed without a quit key
	show.Detach()
	return err
}

// demoExitError maps the program's exit error to RunDemo's result. A kill
// caused by ctx cancellation is a normal exit; a recovered panic is not.
func demoExitError(ctx context.Context, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, tea.ErrProgramPanic):
		return err
	case errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil:
		return nil
	}
	return err
}

// RenderPreview attaches the showcase once, delivers the current theme on a
// queue drained by the caller's goroutine, renders, and detaches.
func RenderPreview(opts DemoOptions) string {
	q := dispatch.NewQueue(opts.queueOptions()...)
	deps := opts.Deps
	deps.Dispatcher = q

	show := NewShowcase(deps, opts.Overrides)
	show.Attach()
	q.Drain()
	out := show.View()
	show.Detach()
	q.Close()
	return out
}
