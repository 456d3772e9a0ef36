package httpapi

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jekabolt/academy-manager/internal/enrollment"
	"github.com/jekabolt/academy-manager/internal/entity"
	"github.com/jekabolt/academy-manager/internal/ratelimit"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateCheckout(t *testing.T) {
	f := newFixture(t, ratelimit.Config{})
	f.enroller.EXPECT().Validate(mock.Anything).Return(nil).Once()
	f.enroller.EXPECT().UnitPrice(mock.Anything).Return(decimal.RequireFromString("80"), nil).Once()
	f.checkouts.EXPECT().Put(mock.Anything, mock.MatchedBy(func(c *entity.Checkout) bool {
		return c.Method == entity.Yappy &&
			c.Amount.Equal(decimal.NewFromInt(160)) &&
			len(c.Form.Players) == 2 &&
			c.Form.Tutor.Email == "ana@example.com"
	})).Return("TOKEN0000000001", nil).Once()
	f.yappy.EXPECT().CreatePaymentLink(mock.Anything, mock.MatchedBy(func(req *entity.PaymentLinkRequest) bool {
		return req.CheckoutToken == "TOKEN0000000001" &&
			req.Amount.Equal(decimal.NewFromInt(160)) &&
			req.PayerEmail == "ana@example.com"
	})).Return(&entity.PaymentLink{URL: "https://pay.test/checkout?t=1", TransactionId: "TX1"}, nil).Once()

	w := f.do(t, http.MethodPost, "/api/enrollment/checkout", checkoutBody(entity.Yappy))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := decodeBody(t, w)
	assert.Equal(t, "TOKEN0000000001", body["token"])
	assert.Equal(t, "https://pay.test/checkout?t=1", body["url"])
	assert.Equal(t, "TX1", body["transaction_id"])
	assert.Equal(t, "160.00", body["amount"])
}

func TestCreateCheckoutWithoutGateway(t *testing.T) {
	f := newFixture(t, ratelimit.Config{})
	w := f.do(t, http.MethodPost, "/api/enrollment/checkout", checkoutBody(entity.Cash))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateCheckoutInvalidFormReportsFields(t *testing.T) {
	f := newFixture(t, ratelimit.Config{})
	f.enroller.EXPECT().Validate(mock.Anything).Return(&enrollment.ValidationError{
		Fields: []enrollment.FieldError{{Field: "tutor.email", Description: "Does not match format 'email'"}},
	}).Once()

	w := f.do(t, http.MethodPost, "/api/enrollment/checkout", checkoutBody(entity.Yappy))
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody(t, w)
	fields, ok := body["fields"].([]any)
	require.True(t, ok)
	require.Len(t, fields, 1)
	assert.Equal(t, "tutor.email", fields[0].(map[string]any)["field"])
}

func TestCreateCheckoutLinkFailureDropsBuffer(t *testing.T) {
	f := newFixture(t, ratelimit.Config{})
	f.enroller.EXPECT().Validate(mock.Anything).Return(nil).Once()
	f.enroller.EXPECT().UnitPrice(mock.Anything).Return(decimal.RequireFromString("80"), nil).Once()
	f.checkouts.EXPECT().Put(mock.Anything, mock.Anything).Return("TOKEN0000000002", nil).Once()
	f.card.EXPECT().CreatePaymentLink(mock.Anything, mock.Anything).Return(nil, errors.New("gateway down")).Once()
	f.checkouts.EXPECT().Delete(mock.Anything, "TOKEN0000000002").Return(nil).Once()

	w := f.do(t, http.MethodPost, "/api/enrollment/checkout", checkoutBody(entity.Card))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), decodeBody(t, w)["error"])
}

func TestCreateCheckoutRateLimited(t *testing.T) {
	f := newFixture(t, ratelimit.Config{CheckoutPerIPHour: 1})

	w := f.do(t, http.MethodPost, "/api/enrollment/checkout", checkoutBody(entity.Cash))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.do(t, http.MethodPost, "/api/enrollment/checkout", checkoutBody(entity.Cash))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestCreateCheckoutMalformedJSON(t *testing.T) {
	f := newFixture(t, ratelimit.Config{})
	w := f.do(t, http.MethodPost, "/api/enrollment/checkout", `{"method":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterOfflineEnrollment(t *testing.T) {
	f := newFixture(t, ratelimit.Config{})
	res := &entity.EnrollmentResult{FamilyId: 4, FamilyCreated: true, PendingPlayerIds: []int{10, 11}}

	f.enroller.EXPECT().UnitPrice(mock.Anything).Return(decimal.RequireFromString("80"), nil).Once()
	f.enroller.EXPECT().Register(mock.Anything, mock.MatchedBy(func(ef *entity.EnrollmentForm) bool {
		return len(ef.Players) == 2
	})).Return(res, nil).Once()
	f.mailer.EXPECT().QueueEnrollmentConfirmation(mock.Anything, mock.Anything, res, mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(decimal.NewFromInt(160))
	})).Return(1, nil).Once()
	f.mailer.EXPECT().Kick().Once()

	w := f.do(t, http.MethodPost, "/api/enrollment", checkoutBody(entity.Transfer))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := decodeBody(t, w)
	assert.EqualValues(t, 4, body["family_id"])
	assert.Equal(t, true, body["family_created"])
	assert.Equal(t, []any{float64(10), float64(11)}, body["pending_player_ids"])
	assert.Equal(t, "160.00", body["amount"])
}

func TestRegisterEnrollmentMailFailureStillSucceeds(t *testing.T) {
	f := newFixture(t, ratelimit.Config{})
	res := &entity.EnrollmentResult{PendingPlayerIds: []int{12}}

	f.enroller.EXPECT().UnitPrice(mock.Anything).Return(decimal.RequireFromString("80"), nil).Once()
	f.enroller.EXPECT().Register(mock.Anything, mock.Anything).Return(res, nil).Once()
	f.mailer.EXPECT().QueueEnrollmentConfirmation(mock.Anything, mock.Anything, res, mock.Anything).Return(0, errors.New("db down")).Once()

	w := f.do(t, http.MethodPost, "/api/enrollment", checkoutBody(entity.Cash))
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestRegisterEnrollmentRequiresOfflineMethod(t *testing.T) {
	f := newFixture(t, ratelimit.Config{})
	w := f.do(t, http.MethodPost, "/api/enrollment", checkoutBody(entity.Yappy))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterEnrollmentRateLimited(t *testing.T) {
	f := newFixture(t, ratelimit.Config{EnrollmentPerIPHour: 1})
	w := f.do(t, http.MethodPost, "/api/enrollment", checkoutBody(entity.Yappy))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = f.do(t, http.MethodPost, "/api/enrollment", checkoutBody(entity.Yappy))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}
