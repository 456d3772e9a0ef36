package mail

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Start starts the queue worker. It processes the queue on every kick and,
// when an interval is configured, on every tick.
func (m *Mailer) Start(ctx context.Context) error {
	if m.ctx != nil && m.cancel != nil {
		return fmt.Errorf("Mailer already started")
	}
	if m.c.WorkerInterval <= 0 {
		slog.Default().InfoContext(ctx, "periodic mail processing disabled")
	}

	m.ctx, m.cancel = context.WithCancel(ctx)
	go m.worker(m.ctx)
	return nil
}

// Stop stops the worker gracefully
func (m *Mailer) Stop() error {
	if m.cancel == nil {
		return fmt.Errorf("Mailer already stopped or not started")
	}

	m.cancel()
	m.cancel = nil
	m.ctx = nil
	return nil
}

// Kick schedules a processing run. Kicks coalesce while one is pending.
func (m *Mailer) Kick() {
	select {
	case m.kick <- struct{}{}:
	default:
	}
}

func (m *Mailer) worker(ctx context.Context) {
	var tick <-chan time.Time
	if m.c.WorkerInterval > 0 {
		ticker := time.NewTicker(m.c.WorkerInterval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		select {
		case <-tick:
			m.run(ctx)
		case <-m.kick:
			m.run(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (m *Mailer) run(ctx context.Context) {
	res, err := m.ProcessQueue(ctx)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't process mail queue",
			slog.String("err", err.Error()),
		)
		return
	}
	if res.Sent > 0 || res.Failed > 0 {
		slog.Default().InfoContext(ctx, "mail queue processed",
			slog.Int("sent", res.Sent),
			slog.Int("failed", res.Failed),
			slog.Int("remaining", res.Remaining),
			slog.Bool("throttled", res.Throttled),
		)
	}
}
