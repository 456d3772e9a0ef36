package mail

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jekabolt/academy-manager/internal/entity"
	gerr "github.com/jekabolt/academy-manager/internal/errors"
	"github.com/jekabolt/academy-manager/internal/metrics"
)

// errNotRecorded marks a mail the provider accepted but the queue could not mark sent.
var errNotRecorded = errors.New("mail sent but not recorded")

type unrecordedSend struct {
	messageId string
	sentAt    time.Time
}

// ProcessQueue hands pending emails to the provider, oldest first, without exceeding
// the daily cap. Failed items are never retried here.
func (m *Mailer) ProcessQueue(ctx context.Context) (*entity.MailProcessResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	res := &entity.MailProcessResult{}

	if err := m.flushUnrecorded(ctx); err != nil {
		return res, err
	}

	sentToday, err := m.mailRepository.CountSentSince(ctx, m.startOfDay())
	if err != nil {
		return nil, fmt.Errorf("can't count mails sent today: %w", err)
	}

	remaining := m.c.DailyCap - sentToday
	if remaining <= 0 {
		slog.Default().DebugContext(ctx, "daily mail cap reached",
			slog.Int("cap", m.c.DailyCap),
			slog.Int("sent_today", sentToday),
		)
		return res, nil
	}

	pending, err := m.mailRepository.GetPendingMails(ctx, remaining)
	if err != nil {
		return nil, fmt.Errorf("can't get pending mails: %w", err)
	}

	for i := range pending {
		if err := ctx.Err(); err != nil {
			res.Remaining = remaining - res.Sent
			return res, err
		}

		item := &pending[i]
		err := m.sendOne(ctx, item)
		if errors.Is(err, errNotRecorded) {
			metrics.MailProcessedTotal.WithLabelValues("sent").Inc()
			res.Sent++
			res.Remaining = remaining - res.Sent
			return res, err
		}
		if errors.Is(err, gerr.ErrMailApiLimitReached) {
			slog.Default().WarnContext(ctx, "mail provider limit reached, stopping run",
				slog.Int("id", item.Id),
			)
			metrics.MailProcessedTotal.WithLabelValues("throttled").Inc()
			res.Throttled = true
			break
		}
		if err != nil {
			slog.Default().ErrorContext(ctx, "can't send mail",
				slog.String("err", err.Error()),
				slog.Int("id", item.Id),
				slog.String("to", item.ToEmail),
			)
			if err := m.mailRepository.UpdateFailed(ctx, item.Id, err.Error()); err != nil {
				return res, fmt.Errorf("can't log error for email %v: %w", item.Id, err)
			}
			metrics.MailProcessedTotal.WithLabelValues("failed").Inc()
			res.Failed++
			continue
		}
		metrics.MailProcessedTotal.WithLabelValues("sent").Inc()
		res.Sent++
	}

	res.Remaining = remaining - res.Sent
	return res, nil
}

func (m *Mailer) sendOne(ctx context.Context, item *entity.EmailQueueItem) error {
	start := time.Now()
	messageId, err := m.sender.Send(ctx, item)
	metrics.MailSendDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return err
	}

	sent := unrecordedSend{messageId: messageId, sentAt: m.now().UTC()}
	if err := m.recordSent(ctx, item.Id, sent); err != nil {
		// the provider has the mail, it must not be sent again nor marked failed
		m.unrecorded[item.Id] = sent
		slog.Default().ErrorContext(ctx, "can't mark mail as sent",
			slog.String("err", err.Error()),
			slog.Int("id", item.Id),
			slog.String("provider_message_id", messageId),
		)
		return fmt.Errorf("mail %d sent as %s: %w: %w", item.Id, messageId, errNotRecorded, err)
	}
	return nil
}

// recordSent marks the item sent, retrying once outside the caller's cancellation.
func (m *Mailer) recordSent(ctx context.Context, id int, sent unrecordedSend) error {
	ctx = context.WithoutCancel(ctx)
	err := m.mailRepository.UpdateSent(ctx, id, sent.messageId, sent.sentAt)
	if err == nil {
		return nil
	}
	return m.mailRepository.UpdateSent(ctx, id, sent.messageId, sent.sentAt)
}

// flushUnrecorded records sends accepted by the provider in an earlier run.
// The queue is not processed while any of them is still unrecorded.
func (m *Mailer) flushUnrecorded(ctx context.Context) error {
	for id, sent := range m.unrecorded {
		if err := m.recordSent(ctx, id, sent); err != nil {
			return fmt.Errorf("mail %d sent as %s: %w: %w", id, sent.messageId, errNotRecorded, err)
		}
		delete(m.unrecorded, id)
	}
	return nil
}

// Requeue moves a failed email back to pending so the next run picks it up.
func (m *Mailer) Requeue(ctx context.Context, id int) error {
	if err := m.mailRepository.Requeue(ctx, id); err != nil {
		return fmt.Errorf("can't requeue mail %d: %w", id, err)
	}
	return nil
}

// Stats reports today's usage of the daily cap and the pending backlog.
func (m *Mailer) Stats(ctx context.Context) (*entity.MailStats, error) {
	sentToday, err := m.mailRepository.CountSentSince(ctx, m.startOfDay())
	if err != nil {
		return nil, fmt.Errorf("can't count mails sent today: %w", err)
	}
	pending, err := m.mailRepository.CountPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("can't count pending mails: %w", err)
	}
	return &entity.MailStats{
		DailyCap:  m.c.DailyCap,
		SentToday: sentToday,
		Remaining: max(m.c.DailyCap-sentToday, 0),
		Pending:   pending,
	}, nil
}
