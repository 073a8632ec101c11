// Package errpolicy decides what happens when a theme pipeline fails.
package errpolicy

import (
	"fmt"
	"log/slog"
	"strings"
)

// Mode selects how a failed pipeline is treated after it has been logged.
type Mode int

const (
	// FailFast re-raises the error as a panic on the delivering context so
	// the process's top-level handler sees it.
	FailFast Mode = iota
	// StopPipeline stops only the failed pipeline; the widget keeps its last
	// good value and every other pipeline keeps running.
	StopPipeline
)

func (m Mode) String() string {
	switch m {
	case FailFast:
		return "fail-fast"
	case StopPipeline:
		return "stop-pipeline"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode accepts "fail-fast" or "stop-pipeline".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fail-fast", "failfast":
		return FailFast, nil
	case "stop-pipeline", "stop":
		return StopPipeline, nil
	}
	return 0, fmt.Errorf("unknown error policy %q (want fail-fast or stop-pipeline)", s)
}

// PipelineError carries a pipeline failure with its widget context.
type PipelineError struct {
	Widget   string
	Property string
	Err      error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s.%s: %v", e.Widget, e.Property, e.Err)
}

func (e *PipelineError) Unwrap() error { return e.Err }

// Policy builds the error callbacks used by pipelines.
type Policy struct {
	mode   Mode
	logger *slog.Logger
}

// New returns a policy. A nil logger uses slog.Default.
func New(mode Mode, logger *slog.Logger) *Policy {
	if logger == nil {
		logger = slog.Default()
	}
	return &Policy{mode: mode, logger: logger}
}

// Mode returns the configured mode.
func (p *Policy) Mode() Mode { return p.mode }

// Handler returns the error callback for one widget property.
func (p *Policy) Handler(widget, property string) func(error) {
	return func(err error) {
		perr := &PipelineError{Widget: widget, Property: property, Err: err}
		p.logger.Error("theme pipeline failed",
			"widget", widget,
			"property", property,
			"policy", p.mode.String(),
			"err", err,
		)
		if p.mode == FailFast {
			panic(perr)
		}
	}
}

// Recover returns a dispatch panic handler that logs a recovered panic
// instead of letting it stop delivery for every other widget.
func (p *Policy) Recover() func(recovered any) {
	return func(recovered any) {
		p.logger.Error("recovered panic on ui context", "panic", fmt.Sprint(recovered))
	}
}
