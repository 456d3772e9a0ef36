package yappy

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/jekabolt/academy-manager/internal/entity"
	gerr "github.com/jekabolt/academy-manager/internal/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(baseURL string) *Config {
	return &Config{
		BaseURL:     baseURL,
		MerchantId:  "MERCH1",
		SecretKey:   "yappy-secret",
		Domain:      "https://academy.test",
		CheckoutURL: "https://academy.test/pay/yappy",
		IPNURL:      "https://academy.test/api/payments/yappy/callback",
	}
}

func TestCreatePaymentLink(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/payments/validate/merchant":
			var body map[string]string
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "MERCH1", body["merchantId"])
			assert.Equal(t, "https://academy.test", body["urlDomain"])
			_, _ = w.Write([]byte(`{"status":{"code":"0000","description":"ok"},"body":{"token":"auth-token","epochTime":1709290800}}`))
		case "/payments/payment-wc":
			assert.Equal(t, "auth-token", r.Header.Get("Authorization"))
			var body createOrderRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "TOK123", body.OrderId)
			assert.Equal(t, "260.00", body.Total)
			assert.Equal(t, int64(1709290800), body.PaymentDate)
			assert.Equal(t, "https://academy.test/api/payments/yappy/callback", body.IPNURL)
			_, _ = w.Write([]byte(`{"status":{"code":"0000"},"body":{"transactionId":"TX-9","token":"order-token","documentName":"doc"}}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	g, err := New(testConfig(srv.URL))
	require.NoError(t, err)

	link, err := g.CreatePaymentLink(context.Background(), &entity.PaymentLinkRequest{
		CheckoutToken: "TOK123",
		Amount:        decimal.RequireFromString("260"),
	})
	require.NoError(t, err)
	assert.Equal(t, "TX-9", link.TransactionId)

	u, err := url.Parse(link.URL)
	require.NoError(t, err)
	assert.Equal(t, "/pay/yappy", u.Path)
	assert.Equal(t, "TX-9", u.Query().Get("transactionId"))
	assert.Equal(t, "order-token", u.Query().Get("token"))
	assert.Equal(t, "TOK123", u.Query().Get("orderId"))
}

func TestCreatePaymentLinkMerchantRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":{"code":"E002","description":"invalid merchant"}}`))
	}))
	defer srv.Close()

	g, err := New(testConfig(srv.URL))
	require.NoError(t, err)
	_, err = g.CreatePaymentLink(context.Background(), &entity.PaymentLinkRequest{
		CheckoutToken: "TOK123",
		Amount:        decimal.RequireFromString("80"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "E002")
}

func TestCreatePaymentLinkHttpError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	g, err := New(testConfig(srv.URL))
	require.NoError(t, err)
	_, err = g.CreatePaymentLink(context.Background(), &entity.PaymentLinkRequest{
		CheckoutToken: "TOK123",
		Amount:        decimal.RequireFromString("80"),
	})
	assert.Error(t, err)
}

func ipn(secret, orderId, status, domain string) url.Values {
	return url.Values{
		"orderId":            {orderId},
		"status":             {status},
		"domain":             {domain},
		"confirmationNumber": {"CONF-77"},
		"hash":               {Hash(secret, orderId, status, domain)},
	}
}

func TestParseCallbackExecuted(t *testing.T) {
	g, err := New(testConfig(""))
	require.NoError(t, err)

	params := ipn("yappy-secret", "TOK123", StatusExecuted, "https://academy.test")
	params.Set("total", "260.00")
	pc, err := g.ParseCallback(context.Background(), params)
	require.NoError(t, err)

	assert.True(t, pc.Approved)
	assert.Equal(t, entity.PaymentApproved, pc.Status)
	assert.Equal(t, entity.Yappy, pc.Method)
	assert.Equal(t, "CONF-77", pc.Reference)
	assert.Equal(t, "TOK123", pc.CheckoutToken)
	assert.True(t, pc.Amount.Equal(decimal.RequireFromString("260")))
	assert.Equal(t, "E", pc.Raw["status"])
}

func TestParseCallbackStatuses(t *testing.T) {
	g, err := New(testConfig(""))
	require.NoError(t, err)

	tests := map[string]entity.PaymentStatus{
		StatusRejected:  entity.PaymentRejected,
		StatusCancelled: entity.PaymentCancelled,
		StatusExpired:   entity.PaymentCancelled,
	}
	for st, want := range tests {
		pc, err := g.ParseCallback(context.Background(), ipn("yappy-secret", "TOK123", st, "https://academy.test"))
		require.NoError(t, err, st)
		assert.False(t, pc.Approved, st)
		assert.Equal(t, want, pc.Status, st)
		assert.True(t, pc.Amount.IsZero(), st)
	}

	_, err = g.ParseCallback(context.Background(), ipn("yappy-secret", "TOK123", "Q", "https://academy.test"))
	assert.ErrorIs(t, err, gerr.ErrValidation)
}

func TestParseCallbackRejectsBadHash(t *testing.T) {
	g, err := New(testConfig(""))
	require.NoError(t, err)

	_, err = g.ParseCallback(context.Background(), ipn("other-secret", "TOK123", StatusExecuted, "https://academy.test"))
	assert.ErrorIs(t, err, gerr.ErrInvalidSignature)

	params := ipn("yappy-secret", "TOK123", StatusExecuted, "https://academy.test")
	params.Set("orderId", "TOK999")
	_, err = g.ParseCallback(context.Background(), params)
	assert.ErrorIs(t, err, gerr.ErrInvalidSignature)

	params.Del("hash")
	_, err = g.ParseCallback(context.Background(), params)
	assert.ErrorIs(t, err, gerr.ErrInvalidSignature)

	_, err = g.ParseCallback(context.Background(), url.Values{"status": {"E"}})
	assert.ErrorIs(t, err, gerr.ErrValidation)
}

func TestNewRequiresConfig(t *testing.T) {
	_, err := New(&Config{MerchantId: "M"})
	assert.Error(t, err)

	g, err := New(testConfig(""))
	require.NoError(t, err)
	assert.Equal(t, defaultBaseURL, g.c.BaseURL)
	assert.Equal(t, entity.Yappy, g.Method())
}
