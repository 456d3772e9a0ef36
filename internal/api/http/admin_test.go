package httpapi

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/jekabolt/academy-manager/internal/entity"
	gerr "github.com/jekabolt/academy-manager/internal/errors"
	"github.com/jekabolt/academy-manager/internal/ratelimit"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdminRequiresToken(t *testing.T) {
	f := newFixture(t, ratelimit.Config{})
	for _, tt := range []struct{ method, path string }{
		{http.MethodPost, "/api/admin/reconcile"},
		{http.MethodPost, "/api/admin/mail/process"},
		{http.MethodPost, "/api/admin/mail/1/requeue"},
		{http.MethodGet, "/api/admin/mail/stats"},
		{http.MethodGet, "/api/admin/payments/unlinked"},
	} {
		w := f.do(t, tt.method, tt.path, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, tt.path)

		w = f.do(t, tt.method, tt.path, nil, "Authorization", "Bearer not-a-token")
		assert.Equal(t, http.StatusUnauthorized, w.Code, tt.path)
	}
}

func TestAdminReconcileQueuesPaymentReceived(t *testing.T) {
	f := newFixture(t, ratelimit.Config{})
	res := &entity.ReconcileResult{
		PaymentId:        5,
		PendingPlayerIds: []int{1, 2},
		Strategy:         entity.ReconcileFamily,
		Exact:            true,
	}
	f.matcher.EXPECT().Match(mock.Anything, mock.MatchedBy(func(req *entity.ReconcileRequest) bool {
		return req.Reference == "TRX-99" && req.Method == entity.Transfer &&
			req.Amount.Valid && req.Amount.Decimal.Equal(decimal.NewFromInt(160))
	})).Return(res, nil).Once()
	f.mailer.EXPECT().QueuePaymentReceived(mock.Anything, "ana@example.com", "Ana", mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(decimal.NewFromInt(160))
	}), res).Return(3, nil).Once()
	f.mailer.EXPECT().Kick().Once()

	w := f.do(t, http.MethodPost, "/api/admin/reconcile", map[string]string{
		"reference":    " TRX-99 ",
		"amount":       "160",
		"method":       "transfer",
		"notify_email": "ana@example.com",
		"notify_name":  "Ana",
	}, "Authorization", f.adminToken(t))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decodeBody(t, w)
	assert.EqualValues(t, 5, body["payment_id"])
	assert.Equal(t, string(entity.ReconcileFamily), body["strategy"])
	assert.Equal(t, true, body["exact"])
}

func TestAdminReconcileUsesStoredAmountForMail(t *testing.T) {
	f := newFixture(t, ratelimit.Config{})
	res := &entity.ReconcileResult{PaymentId: 5, PendingPlayerIds: []int{1}, Strategy: entity.ReconcileIndividual, Exact: true}
	f.matcher.EXPECT().Match(mock.Anything, mock.Anything).Return(res, nil).Once()
	f.payments.EXPECT().GetPaymentById(mock.Anything, 5).Return(&entity.Payment{
		Id:            5,
		PaymentInsert: entity.PaymentInsert{Amount: decimal.NewFromInt(80)},
	}, nil).Once()
	f.mailer.EXPECT().QueuePaymentReceived(mock.Anything, "ana@example.com", "", mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(decimal.NewFromInt(80))
	}), res).Return(3, nil).Once()
	f.mailer.EXPECT().Kick().Once()

	w := f.do(t, http.MethodPost, "/api/admin/reconcile", map[string]string{
		"reference":    "TRX-100",
		"notify_email": "ana@example.com",
	}, "Authorization", f.adminToken(t))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestAdminReconcileNoLinkSendsNoMail(t *testing.T) {
	f := newFixture(t, ratelimit.Config{})
	f.matcher.EXPECT().Match(mock.Anything, mock.Anything).Return(&entity.ReconcileResult{
		PaymentId:  5,
		Strategy:   entity.ReconcileNone,
		Diagnostic: "no pending players",
	}, nil).Once()

	w := f.do(t, http.MethodPost, "/api/admin/reconcile", map[string]string{
		"reference":    "TRX-101",
		"notify_email": "ana@example.com",
	}, "Authorization", f.adminToken(t))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "no pending players", decodeBody(t, w)["diagnostic"])
}

func TestAdminReconcileValidation(t *testing.T) {
	f := newFixture(t, ratelimit.Config{})
	for _, body := range []map[string]string{
		{},
		{"reference": "X", "amount": "abc"},
		{"reference": "X", "method": "bitcoin"},
	} {
		w := f.do(t, http.MethodPost, "/api/admin/reconcile", body, "Authorization", f.adminToken(t))
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
}

func TestAdminMailEndpoints(t *testing.T) {
	f := newFixture(t, ratelimit.Config{})
	auth := f.adminToken(t)

	f.mailer.EXPECT().ProcessQueue(mock.Anything).Return(&entity.MailProcessResult{Sent: 3, Remaining: 7}, nil).Once()
	w := f.do(t, http.MethodPost, "/api/admin/mail/process", nil, "Authorization", auth)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 3, decodeBody(t, w)["sent"])

	f.mailer.EXPECT().Stats(mock.Anything).Return(&entity.MailStats{DailyCap: 300, SentToday: 12, Remaining: 288, Pending: 4}, nil).Once()
	w = f.do(t, http.MethodGet, "/api/admin/mail/stats", nil, "Authorization", auth)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.EqualValues(t, 300, body["daily_cap"])
	assert.EqualValues(t, 288, body["remaining"])

	f.mailer.EXPECT().Requeue(mock.Anything, 42).Return(nil).Once()
	w = f.do(t, http.MethodPost, "/api/admin/mail/42/requeue", nil, "Authorization", auth)
	assert.Equal(t, http.StatusOK, w.Code)

	f.mailer.EXPECT().Requeue(mock.Anything, 43).Return(fmt.Errorf("can't requeue mail 43: %w", gerr.ErrNotFound)).Once()
	w = f.do(t, http.MethodPost, "/api/admin/mail/43/requeue", nil, "Authorization", auth)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = f.do(t, http.MethodPost, "/api/admin/mail/abc/requeue", nil, "Authorization", auth)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminUnlinkedPayments(t *testing.T) {
	f := newFixture(t, ratelimit.Config{})
	now := time.Date(2024, 3, 1, 15, 0, 0, 0, time.UTC)
	f.rep.EXPECT().Now().Return(now)
	f.payments.EXPECT().GetUnlinkedApprovedPayments(mock.Anything, now.Add(-48*time.Hour), 10).Return([]entity.Payment{
		{
			Id:        9,
			CreatedAt: now.Add(-time.Hour),
			PaymentInsert: entity.PaymentInsert{
				Amount: decimal.NewFromInt(160),
				Method: entity.Yappy,
				Status: entity.PaymentApproved,
				Notes:  "Payment recorded from reference CONF-9 via yappy",
			},
		},
	}, nil).Once()

	w := f.do(t, http.MethodGet, "/api/admin/payments/unlinked?since=48h&limit=10", nil, "Authorization", f.adminToken(t))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `[{
		"id": 9,
		"created_at": "2024-03-01T14:00:00Z",
		"amount": "160.00",
		"method": "yappy",
		"status": "Approved",
		"pending_player_ids": [],
		"notes": "Payment recorded from reference CONF-9 via yappy"
	}]`, w.Body.String())

	w = f.do(t, http.MethodGet, "/api/admin/payments/unlinked?limit=-1", nil, "Authorization", f.adminToken(t))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMailWebhook(t *testing.T) {
	f := newFixture(t, ratelimit.Config{})
	body := `[{"event":"delivered","message-id":"<abc@mail.test>"}]`
	f.hook.EXPECT().SignatureHeader().Return("X-Webhook-Signature")
	f.hook.EXPECT().Handle(mock.Anything, []byte(body), "sig-1").Return(&entity.MailWebhookSummary{Received: 1, Applied: 1}, nil).Once()
	f.hook.EXPECT().Handle(mock.Anything, []byte(body), "bad").Return(nil, gerr.ErrInvalidSignature).Once()

	w := f.do(t, http.MethodPost, "/api/webhooks/mail", body, "X-Webhook-Signature", "sig-1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, decodeBody(t, w)["applied"])

	w = f.do(t, http.MethodPost, "/api/webhooks/mail", body, "X-Webhook-Signature", "bad")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
