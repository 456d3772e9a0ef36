package reconcile

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Worker periodically runs the matcher over recent unlinked payments.
type Worker struct {
	m    *Matcher
	ctx  context.Context
	stop context.CancelFunc
}

// NewWorker creates a new reconciliation worker.
func NewWorker(m *Matcher) *Worker {
	return &Worker{m: m}
}

// Start starts the worker. A zero interval leaves it disabled.
func (w *Worker) Start(ctx context.Context) error {
	if w.m.c.WorkerInterval <= 0 {
		slog.Default().InfoContext(ctx, "reconcile worker disabled")
		return nil
	}
	if w.ctx != nil && w.stop != nil {
		return fmt.Errorf("reconcile worker already started")
	}
	w.ctx, w.stop = context.WithCancel(ctx)
	go w.worker(w.ctx)
	return nil
}

// Stop stops the worker gracefully.
func (w *Worker) Stop() error {
	if w.stop == nil {
		return nil
	}
	w.stop()
	w.stop = nil
	w.ctx = nil
	return nil
}

func (w *Worker) worker(ctx context.Context) {
	ticker := time.NewTicker(w.m.c.WorkerInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if _, err := w.m.RunOnce(ctx); err != nil {
				slog.Default().ErrorContext(ctx, "reconcile: run failed",
					slog.String("err", err.Error()),
				)
			}
		case <-ctx.Done():
			return
		}
	}
}

// RunOnce matches every unlinked approved payment inside the lookback and
// returns how many got linked. Failures on one payment do not stop the pass.
func (m *Matcher) RunOnce(ctx context.Context) (int, error) {
	since := m.rep.Now().Add(-m.c.Lookback)
	ps, err := m.rep.Payment().GetUnlinkedApprovedPayments(ctx, since, m.c.BatchSize)
	if err != nil {
		return 0, fmt.Errorf("can't get unlinked payments: %w", err)
	}

	linked := 0
	for i := range ps {
		if err := ctx.Err(); err != nil {
			return linked, err
		}
		res, err := m.MatchPayment(ctx, &ps[i])
		if err != nil {
			slog.Default().ErrorContext(ctx, "reconcile: can't match payment",
				slog.Int("payment_id", ps[i].Id),
				slog.String("err", err.Error()),
			)
			continue
		}
		if res.Linked() {
			linked++
		}
	}
	return linked, nil
}
