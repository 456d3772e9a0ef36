package mail

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/jekabolt/academy-manager/internal/entity"
	gerr "github.com/jekabolt/academy-manager/internal/errors"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

const sendgridMessageIdHeader = "X-Message-Id"

type sendgridSender struct {
	cli *sendgrid.Client
}

// newSendgridSender targets host, or the public API when host is empty.
func newSendgridSender(apiKey, host string) *sendgridSender {
	req := sendgrid.GetRequest(apiKey, "/v3/mail/send", host)
	req.Method = "POST"
	return &sendgridSender{cli: &sendgrid.Client{Request: req}}
}

func (s *sendgridSender) Send(ctx context.Context, item *entity.EmailQueueItem) (string, error) {
	from := mail.NewEmail(item.FromName, item.FromEmail)
	to := mail.NewEmail(item.ToName, item.ToEmail)
	msg := mail.NewSingleEmail(from, item.Subject, to, "", item.Html)
	if item.ReplyTo != "" {
		msg.SetReplyTo(mail.NewEmail("", item.ReplyTo))
	}
	msg.CustomArgs = map[string]string{"queue_id": strconv.Itoa(item.Id)}

	resp, err := s.cli.SendWithContext(ctx, msg)
	if err != nil {
		return "", fmt.Errorf("error sending email: %w", err)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return "", gerr.ErrMailApiLimitReached
	}
	if resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("error sending email bad status code: %s, status code: %d", resp.Body, resp.StatusCode)
	}

	return messageIdFromHeaders(resp.Headers), nil
}

func messageIdFromHeaders(h map[string][]string) string {
	return http.Header(h).Get(sendgridMessageIdHeader)
}
