package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jekabolt/academy-manager/internal/dependency"
	"github.com/jekabolt/academy-manager/internal/entity"
	gerr "github.com/jekabolt/academy-manager/internal/errors"
)

type mailStore struct {
	*MYSQLStore
}

// Mail returns an object implementing mail interface
func (ms *MYSQLStore) Mail() dependency.Mail {
	return &mailStore{
		MYSQLStore: ms,
	}
}

func (ms *MYSQLStore) AddMail(ctx context.Context, item *entity.EmailQueueItemInsert) (int, error) {
	query := `
	INSERT INTO email_queue
		(created_at, updated_at, status, from_email, from_name, to_email, to_name, reply_to,
		subject, html, template, metadata)
	VALUES
		(:createdAt, :createdAt, :status, :fromEmail, :fromName, :toEmail, :toName, :replyTo,
		:subject, :html, :template, :metadata)
	`
	id, err := ExecNamedLastId(ctx, ms.DB(), query, map[string]any{
		"createdAt": ms.Now(),
		"status":    entity.MailPending,
		"fromEmail": item.FromEmail,
		"fromName":  item.FromName,
		"toEmail":   item.ToEmail,
		"toName":    item.ToName,
		"replyTo":   item.ReplyTo,
		"subject":   item.Subject,
		"html":      item.Html,
		"template":  item.Template,
		"metadata":  item.Metadata,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to add mail: %w", err)
	}
	return id, nil
}

func (ms *MYSQLStore) CountSentSince(ctx context.Context, since time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM email_queue WHERE sent_at IS NOT NULL AND sent_at >= :since`
	n, err := QueryCountNamed(ctx, ms.DB(), query, map[string]any{
		"since": since,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count sent mails: %w", err)
	}
	return n, nil
}

func (ms *MYSQLStore) CountPending(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM email_queue WHERE status = :status`
	n, err := QueryCountNamed(ctx, ms.DB(), query, map[string]any{
		"status": entity.MailPending,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count pending mails: %w", err)
	}
	return n, nil
}

func (ms *MYSQLStore) GetPendingMails(ctx context.Context, limit int) ([]entity.EmailQueueItem, error) {
	query := `
	SELECT * FROM email_queue
	WHERE status = :status
	ORDER BY created_at ASC, id ASC
	LIMIT :limit
	`
	items, err := QueryListNamed[entity.EmailQueueItem](ctx, ms.DB(), query, map[string]any{
		"status": entity.MailPending,
		"limit":  limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get pending mails: %w", err)
	}
	return items, nil
}

func (ms *MYSQLStore) UpdateSent(ctx context.Context, id int, providerMessageId string, sentAt time.Time) error {
	query := `
	UPDATE email_queue
	SET status = :sent, sent_at = :sentAt, provider_message_id = :providerMessageId, error_message = NULL
	WHERE id = :id AND status = :pending
	`
	err := ExecNamed(ctx, ms.DB(), query, map[string]any{
		"id":                id,
		"sent":              entity.MailSent,
		"pending":           entity.MailPending,
		"sentAt":            sentAt,
		"providerMessageId": sql.NullString{String: providerMessageId, Valid: providerMessageId != ""},
	})
	if err != nil {
		return fmt.Errorf("failed to update sent: %w", err)
	}
	return nil
}

func (ms *MYSQLStore) UpdateFailed(ctx context.Context, id int, errMsg string) error {
	query := `UPDATE email_queue SET status = :failed, error_message = :errorMessage WHERE id = :id`
	err := ExecNamed(ctx, ms.DB(), query, map[string]any{
		"id":           id,
		"failed":       entity.MailFailed,
		"errorMessage": errMsg,
	})
	if err != nil {
		return fmt.Errorf("failed to update failed: %w", err)
	}
	return nil
}

func (ms *MYSQLStore) Requeue(ctx context.Context, id int) error {
	query := `
	UPDATE email_queue
	SET status = :pending, error_message = NULL
	WHERE id = :id AND status = :failed
	`
	n, err := ExecNamedRowsAffected(ctx, ms.DB(), query, map[string]any{
		"id":      id,
		"pending": entity.MailPending,
		"failed":  entity.MailFailed,
	})
	if err != nil {
		return fmt.Errorf("failed to requeue mail: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("failed mail %d: %w", id, gerr.ErrNotFound)
	}
	return nil
}

func (ms *MYSQLStore) GetMailByProviderMessageId(ctx context.Context, messageId string) (*entity.EmailQueueItem, error) {
	query := `SELECT * FROM email_queue WHERE provider_message_id = :messageId ORDER BY id DESC LIMIT 1`
	item, err := QueryNamedOne[entity.EmailQueueItem](ctx, ms.DB(), query, map[string]any{
		"messageId": messageId,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("mail with message id %q: %w", messageId, gerr.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get mail by message id: %w", err)
	}
	return &item, nil
}

// GetMailByProviderMessageIdFragment matches stored ids equal to the fragment or whose local part is the fragment.
func (ms *MYSQLStore) GetMailByProviderMessageIdFragment(ctx context.Context, fragment string) (*entity.EmailQueueItem, error) {
	fragment = strings.TrimSpace(fragment)
	if fragment == "" {
		return nil, fmt.Errorf("empty message id fragment: %w", gerr.ErrNotFound)
	}
	query := `
	SELECT * FROM email_queue
	WHERE provider_message_id = :fragment OR provider_message_id LIKE :pattern
	ORDER BY id DESC
	LIMIT 1
	`
	item, err := QueryNamedOne[entity.EmailQueueItem](ctx, ms.DB(), query, map[string]any{
		"fragment": fragment,
		"pattern":  escapeLike(fragment) + "@%",
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("mail with message id fragment %q: %w", fragment, gerr.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get mail by message id fragment: %w", err)
	}
	return &item, nil
}

var setOnceFields = map[entity.MailEventField]bool{
	entity.MailFieldDelivered: true,
	entity.MailFieldOpened:    true,
	entity.MailFieldClicked:   true,
	entity.MailFieldBounced:   true,
}

func (ms *MYSQLStore) ApplyStatusUpdate(ctx context.Context, id int, u *entity.MailStatusUpdate) (bool, error) {
	if !u.Mutates() {
		return false, nil
	}
	params := map[string]any{
		"id":           id,
		"at":           u.At,
		"failed":       entity.MailFailed,
		"errorMessage": u.ErrorMessage,
	}

	var query string
	switch {
	case u.Field == entity.MailFieldNone:
		query = `
		UPDATE email_queue
		SET status = :failed, error_message = :errorMessage
		WHERE id = :id AND status <> :failed
		`
	case !setOnceFields[u.Field]:
		return false, fmt.Errorf("unknown mail event field %q", u.Field)
	default:
		set := []string{fmt.Sprintf("%s = :at", u.Field)}
		if u.Field == entity.MailFieldOpened {
			set = append(set, "delivered_at = COALESCE(delivered_at, :at)")
		}
		if u.Fail {
			set = append(set, "status = :failed", "error_message = :errorMessage")
		}
		query = fmt.Sprintf(
			"UPDATE email_queue SET %s WHERE id = :id AND %s IS NULL",
			strings.Join(set, ", "),
			u.Field,
		)
	}

	n, err := ExecNamedRowsAffected(ctx, ms.DB(), query, params)
	if err != nil {
		return false, fmt.Errorf("failed to apply mail status update: %w", err)
	}
	return n > 0, nil
}
