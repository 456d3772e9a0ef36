package mailhook

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jekabolt/academy-manager/internal/dependency"
	"github.com/jekabolt/academy-manager/internal/entity"
	gerr "github.com/jekabolt/academy-manager/internal/errors"
	"github.com/jekabolt/academy-manager/internal/metrics"
)

const DefaultSignatureHeader = "X-Webhook-Signature"

type Config struct {
	Secret          string `mapstructure:"secret"`
	SignatureHeader string `mapstructure:"signature_header"`
}

// Ingestor applies provider delivery events to the email queue.
type Ingestor struct {
	c    *Config
	mail dependency.Mail
	now  func() time.Time
}

func New(c *Config, mail dependency.Mail) *Ingestor {
	if c.SignatureHeader == "" {
		c.SignatureHeader = DefaultSignatureHeader
	}
	return &Ingestor{
		c:    c,
		mail: mail,
		now:  time.Now,
	}
}

// SignatureHeader is the request header carrying the body signature.
func (in *Ingestor) SignatureHeader() string {
	return in.c.SignatureHeader
}

// Handle verifies and ingests one webhook delivery.
func (in *Ingestor) Handle(ctx context.Context, body []byte, signature string) (*entity.MailWebhookSummary, error) {
	if err := VerifySignature(in.c.Secret, body, signature); err != nil {
		slog.Default().WarnContext(ctx, "mail webhook signature rejected")
		return nil, err
	}
	events, err := ParseEvents(body, in.now())
	if err != nil {
		return nil, err
	}
	return in.Ingest(ctx, events), nil
}

// Ingest applies events in order. Unknown ids and per-event failures are logged
// and counted, never returned.
func (in *Ingestor) Ingest(ctx context.Context, events []Event) *entity.MailWebhookSummary {
	sum := &entity.MailWebhookSummary{Received: len(events)}
	for i := range events {
		outcome := in.apply(ctx, &events[i])
		metrics.MailWebhookEventsTotal.WithLabelValues(metricEvent(&events[i]), outcome).Inc()
		switch outcome {
		case outcomeApplied:
			sum.Applied++
		case outcomeUnknown:
			sum.Unknown++
		case outcomeError:
			sum.Errors++
		default:
			sum.Ignored++
		}
	}
	return sum
}

const (
	outcomeApplied   = "applied"
	outcomeDuplicate = "duplicate"
	outcomeLogged    = "logged"
	outcomeUnknown   = "unknown"
	outcomeError     = "error"
)

func (in *Ingestor) apply(ctx context.Context, ev *Event) string {
	if ev.Name == "" {
		slog.Default().WarnContext(ctx, "unsupported mail event",
			slog.String("event", ev.Raw),
			slog.String("message_id", ev.MessageId),
		)
		return outcomeLogged
	}
	if ev.MessageId == "" {
		slog.Default().WarnContext(ctx, "mail event without message id",
			slog.String("event", ev.Name),
		)
		return outcomeUnknown
	}

	item, err := in.lookup(ctx, ev.MessageId)
	if errors.Is(err, gerr.ErrNotFound) {
		slog.Default().WarnContext(ctx, "mail event for unknown message id, dropped",
			slog.String("event", ev.Name),
			slog.String("message_id", ev.MessageId),
		)
		return outcomeUnknown
	}
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't look up mail for event",
			slog.String("err", err.Error()),
			slog.String("message_id", ev.MessageId),
		)
		return outcomeError
	}

	u := ev.StatusUpdate()
	if u == nil {
		slog.Default().InfoContext(ctx, "mail event",
			slog.String("event", ev.Name),
			slog.Int("id", item.Id),
		)
		return outcomeLogged
	}

	changed, err := in.mail.ApplyStatusUpdate(ctx, item.Id, u)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't apply mail event",
			slog.String("err", err.Error()),
			slog.String("event", ev.Name),
			slog.Int("id", item.Id),
		)
		return outcomeError
	}
	if !changed {
		return outcomeDuplicate
	}
	return outcomeApplied
}

func (in *Ingestor) lookup(ctx context.Context, messageId string) (*entity.EmailQueueItem, error) {
	item, err := in.mail.GetMailByProviderMessageId(ctx, messageId)
	if err == nil || !errors.Is(err, gerr.ErrNotFound) {
		return item, err
	}
	fragment := MessageIdFragment(messageId)
	if fragment == "" {
		return nil, fmt.Errorf("message id %q: %w", messageId, gerr.ErrNotFound)
	}
	return in.mail.GetMailByProviderMessageIdFragment(ctx, fragment)
}

func metricEvent(ev *Event) string {
	if ev.Name == "" {
		return "unsupported"
	}
	return ev.Name
}
