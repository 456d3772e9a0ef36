package mail

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/jekabolt/academy-manager/internal/dependency"
	"github.com/jekabolt/academy-manager/internal/entity"
)

const (
	ProviderSendgrid = "sendgrid"
	ProviderSES      = "ses"
	ProviderLog      = "log"
)

// NewSender builds the provider client selected by c.Provider.
func NewSender(ctx context.Context, c *Config) (dependency.Sender, error) {
	switch strings.ToLower(c.Provider) {
	case ProviderSendgrid, "":
		if c.APIKey == "" {
			return nil, fmt.Errorf("sendgrid api key is required")
		}
		return newSendgridSender(c.APIKey, ""), nil
	case ProviderSES:
		return newSESSender(ctx, c.SESRegion)
	case ProviderLog:
		return logSender{}, nil
	default:
		return nil, fmt.Errorf("unknown mail provider %q", c.Provider)
	}
}

// logSender only logs messages, for local development.
type logSender struct{}

func (logSender) Send(ctx context.Context, item *entity.EmailQueueItem) (string, error) {
	id := uuid.NewString() + "@log"
	slog.Default().InfoContext(ctx, "mail not sent, log provider",
		slog.Int("id", item.Id),
		slog.String("to", item.ToEmail),
		slog.String("subject", item.Subject),
		slog.String("provider_message_id", id),
	)
	return id, nil
}
