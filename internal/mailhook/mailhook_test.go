package mailhook

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jekabolt/academy-manager/internal/dependency/mocks"
	"github.com/jekabolt/academy-manager/internal/entity"
	gerr "github.com/jekabolt/academy-manager/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIngestor(t *testing.T, secret string) (*Ingestor, *mocks.Mail) {
	mail := mocks.NewMail(t)
	in := New(&Config{Secret: secret}, mail)
	in.now = func() time.Time { return receivedAt }
	return in, mail
}

func notFound(id string) error {
	return fmt.Errorf("mail with message id %q: %w", id, gerr.ErrNotFound)
}

func TestHandleBounceMarksFailed(t *testing.T) {
	ctx := context.Background()
	in, mail := newTestIngestor(t, "secret")
	body := []byte(`{"event":"hardBounce","message-id":"<abc123@provider>","reason":"mailbox full"}`)

	mail.EXPECT().GetMailByProviderMessageId(ctx, "abc123@provider").
		Return(&entity.EmailQueueItem{Id: 5}, nil)
	mail.EXPECT().ApplyStatusUpdate(ctx, 5, &entity.MailStatusUpdate{
		Field:        entity.MailFieldBounced,
		At:           receivedAt,
		Fail:         true,
		ErrorMessage: "mailbox full",
	}).Return(true, nil)

	sum, err := in.Handle(ctx, body, Sign("secret", body))
	require.NoError(t, err)
	assert.Equal(t, &entity.MailWebhookSummary{Received: 1, Applied: 1}, sum)
}

func TestHandleRejectsBadSignature(t *testing.T) {
	in, _ := newTestIngestor(t, "secret")
	body := []byte(`{"event":"delivered","message-id":"m-1"}`)

	_, err := in.Handle(context.Background(), body, Sign("wrong", body))
	assert.ErrorIs(t, err, gerr.ErrInvalidSignature)
}

func TestHandleInvalidBody(t *testing.T) {
	in, _ := newTestIngestor(t, "")
	_, err := in.Handle(context.Background(), []byte(`nope`), "")
	assert.ErrorIs(t, err, gerr.ErrValidation)
}

func TestIngestReplayIsIdempotent(t *testing.T) {
	ctx := context.Background()
	in, mail := newTestIngestor(t, "")
	ev := Event{Name: EventDelivered, MessageId: "m-1", At: receivedAt}

	mail.EXPECT().GetMailByProviderMessageId(ctx, "m-1").Return(&entity.EmailQueueItem{Id: 1}, nil).Twice()
	mail.EXPECT().ApplyStatusUpdate(ctx, 1, ev.StatusUpdate()).Return(true, nil).Once()
	mail.EXPECT().ApplyStatusUpdate(ctx, 1, ev.StatusUpdate()).Return(false, nil).Once()

	sum := in.Ingest(ctx, []Event{ev, ev})
	assert.Equal(t, &entity.MailWebhookSummary{Received: 2, Applied: 1, Ignored: 1}, sum)
}

func TestIngestFallsBackToLocalPart(t *testing.T) {
	ctx := context.Background()
	in, mail := newTestIngestor(t, "")

	mail.EXPECT().GetMailByProviderMessageId(ctx, "abc123@relay.other").Return(nil, notFound("abc123@relay.other"))
	mail.EXPECT().GetMailByProviderMessageIdFragment(ctx, "abc123").Return(&entity.EmailQueueItem{Id: 8}, nil)
	mail.EXPECT().ApplyStatusUpdate(ctx, 8, &entity.MailStatusUpdate{Field: entity.MailFieldOpened, At: receivedAt}).Return(true, nil)

	sum := in.Ingest(ctx, []Event{{Name: EventOpened, MessageId: "abc123@relay.other", At: receivedAt}})
	assert.Equal(t, 1, sum.Applied)
}

func TestIngestSendgridFilterId(t *testing.T) {
	ctx := context.Background()
	in, mail := newTestIngestor(t, "")
	id := "xyz.filter0001.16648.5515E0B88.0"

	mail.EXPECT().GetMailByProviderMessageId(ctx, id).Return(nil, notFound(id))
	mail.EXPECT().GetMailByProviderMessageIdFragment(ctx, "xyz").Return(&entity.EmailQueueItem{Id: 3}, nil)
	mail.EXPECT().ApplyStatusUpdate(ctx, 3, &entity.MailStatusUpdate{Field: entity.MailFieldClicked, At: receivedAt}).Return(true, nil)

	sum := in.Ingest(ctx, []Event{{Name: EventClick, MessageId: id, At: receivedAt}})
	assert.Equal(t, 1, sum.Applied)
}

func TestIngestUnknownIdIsDropped(t *testing.T) {
	ctx := context.Background()
	in, mail := newTestIngestor(t, "")

	mail.EXPECT().GetMailByProviderMessageId(ctx, "ghost@provider").Return(nil, notFound("ghost@provider"))
	mail.EXPECT().GetMailByProviderMessageIdFragment(ctx, "ghost").Return(nil, notFound("ghost"))
	mail.EXPECT().GetMailByProviderMessageId(ctx, "m-2").Return(&entity.EmailQueueItem{Id: 2}, nil)
	mail.EXPECT().ApplyStatusUpdate(ctx, 2, &entity.MailStatusUpdate{Field: entity.MailFieldDelivered, At: receivedAt}).Return(true, nil)

	sum := in.Ingest(ctx, []Event{
		{Name: EventDelivered, MessageId: "ghost@provider", At: receivedAt},
		{Name: EventDelivered, MessageId: "m-2", At: receivedAt},
	})
	assert.Equal(t, &entity.MailWebhookSummary{Received: 2, Applied: 1, Unknown: 1}, sum)
}

func TestIngestLogOnlyAndUnsupportedEvents(t *testing.T) {
	ctx := context.Background()
	in, mail := newTestIngestor(t, "")

	mail.EXPECT().GetMailByProviderMessageId(ctx, "m-1").Return(&entity.EmailQueueItem{Id: 1}, nil)

	sum := in.Ingest(ctx, []Event{
		{Name: EventSent, MessageId: "m-1", At: receivedAt},
		{Raw: "deferred", MessageId: "m-1", At: receivedAt},
		{Name: EventDelivered, At: receivedAt},
	})
	assert.Equal(t, &entity.MailWebhookSummary{Received: 3, Ignored: 2, Unknown: 1}, sum)
}

func TestIngestStoreErrorIsCounted(t *testing.T) {
	ctx := context.Background()
	in, mail := newTestIngestor(t, "")

	mail.EXPECT().GetMailByProviderMessageId(ctx, "m-1").Return(nil, errors.New("db down"))
	mail.EXPECT().GetMailByProviderMessageId(ctx, "m-2").Return(&entity.EmailQueueItem{Id: 2}, nil)
	mail.EXPECT().ApplyStatusUpdate(ctx, 2, &entity.MailStatusUpdate{At: receivedAt, Fail: true, ErrorMessage: EventSpam}).Return(false, errors.New("db down"))

	sum := in.Ingest(ctx, []Event{
		{Name: EventDelivered, MessageId: "m-1", At: receivedAt},
		{Name: EventSpam, MessageId: "m-2", At: receivedAt},
	})
	assert.Equal(t, &entity.MailWebhookSummary{Received: 2, Errors: 2}, sum)
}
