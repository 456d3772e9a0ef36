package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/jekabolt/academy-manager/internal/entity"
	gerr "github.com/jekabolt/academy-manager/internal/errors"
	"github.com/jekabolt/academy-manager/internal/ratelimit"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const yappyCallback = "/api/payments/yappy/callback?orderId=TOKEN0000000001&status=E&domain=academy.test&confirmationNumber=CONF-1&hash=abc"

func approvedYappy() *entity.PaymentConfirmation {
	return &entity.PaymentConfirmation{
		Method:        entity.Yappy,
		Approved:      true,
		Status:        entity.PaymentApproved,
		Reference:     "CONF-1",
		CheckoutToken: "TOKEN0000000001",
	}
}

func bufferedCheckout() *entity.Checkout {
	return &entity.Checkout{
		Token:  "TOKEN0000000001",
		Method: entity.Yappy,
		Amount: decimal.NewFromInt(160),
		Form:   form(),
	}
}

func TestCallbackEnrollsBufferedCheckout(t *testing.T) {
	f := newFixture(t, ratelimit.Config{})
	res := &entity.EnrollmentResult{FamilyId: 3, PendingPlayerIds: []int{5, 6}, PaymentId: 7}

	f.yappy.EXPECT().ParseCallback(mock.Anything, mock.MatchedBy(func(v url.Values) bool {
		return v.Get("orderId") == "TOKEN0000000001" && v.Get("status") == "E"
	})).Return(approvedYappy(), nil).Once()
	f.checkouts.EXPECT().Get(mock.Anything, "TOKEN0000000001").Return(bufferedCheckout(), nil).Once()
	f.enroller.EXPECT().Enroll(mock.Anything, mock.Anything, mock.MatchedBy(func(pc *entity.PaymentConfirmation) bool {
		return pc.Amount.Equal(decimal.NewFromInt(160)) && pc.Reference == "CONF-1"
	})).Return(res, nil).Once()
	f.mailer.EXPECT().QueueEnrollmentConfirmation(mock.Anything, mock.Anything, res, mock.Anything).Return(1, nil).Once()
	f.mailer.EXPECT().Kick().Once()
	f.checkouts.EXPECT().Delete(mock.Anything, "TOKEN0000000001").Return(nil).Once()

	w := f.do(t, http.MethodGet, yappyCallback, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decodeBody(t, w)
	assert.Equal(t, callbackEnrolled, body["status"])
	assert.EqualValues(t, 7, body["payment_id"])
}

func TestCallbackConfirmationMailFailureIsNotFatal(t *testing.T) {
	f := newFixture(t, ratelimit.Config{})
	res := &entity.EnrollmentResult{PendingPlayerIds: []int{5}, PaymentId: 8}

	f.yappy.EXPECT().ParseCallback(mock.Anything, mock.Anything).Return(approvedYappy(), nil).Once()
	f.checkouts.EXPECT().Get(mock.Anything, "TOKEN0000000001").Return(bufferedCheckout(), nil).Once()
	f.enroller.EXPECT().Enroll(mock.Anything, mock.Anything, mock.Anything).Return(res, nil).Once()
	f.mailer.EXPECT().QueueEnrollmentConfirmation(mock.Anything, mock.Anything, res, mock.Anything).Return(0, gerr.ErrBadMailRequest).Once()
	f.checkouts.EXPECT().Delete(mock.Anything, "TOKEN0000000001").Return(errors.New("redis down")).Once()

	w := f.do(t, http.MethodGet, yappyCallback, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, callbackEnrolled, decodeBody(t, w)["status"])
}

func TestCallbackEnrollFailureKeepsBuffer(t *testing.T) {
	f := newFixture(t, ratelimit.Config{})
	f.yappy.EXPECT().ParseCallback(mock.Anything, mock.Anything).Return(approvedYappy(), nil).Once()
	f.checkouts.EXPECT().Get(mock.Anything, "TOKEN0000000001").Return(bufferedCheckout(), nil).Once()
	f.enroller.EXPECT().Enroll(mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("can't enroll: payment: db down")).Once()

	w := f.do(t, http.MethodGet, yappyCallback, nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	f.checkouts.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestCallbackDuplicateReferenceIsAlreadyProcessed(t *testing.T) {
	f := newFixture(t, ratelimit.Config{})
	f.yappy.EXPECT().ParseCallback(mock.Anything, mock.Anything).Return(approvedYappy(), nil).Once()
	f.checkouts.EXPECT().Get(mock.Anything, "TOKEN0000000001").Return(bufferedCheckout(), nil).Once()
	f.enroller.EXPECT().Enroll(mock.Anything, mock.Anything, mock.Anything).
		Return(&entity.EnrollmentResult{PaymentId: 7}, fmt.Errorf("payment reference CONF-1: %w", gerr.ErrDuplicateOperation)).Once()
	f.checkouts.EXPECT().Delete(mock.Anything, "TOKEN0000000001").Return(nil).Once()

	w := f.do(t, http.MethodGet, yappyCallback, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, callbackDuplicate, body["status"])
	assert.EqualValues(t, 7, body["payment_id"])
}

func TestCallbackWithoutBufferRunsMatcher(t *testing.T) {
	f := newFixture(t, ratelimit.Config{})
	pc := approvedYappy()
	pc.Amount = decimal.NewFromInt(160)

	f.yappy.EXPECT().ParseCallback(mock.Anything, mock.Anything).Return(pc, nil).Once()
	f.checkouts.EXPECT().Get(mock.Anything, "TOKEN0000000001").Return(nil, gerr.ErrCheckoutNotFound).Once()
	f.matcher.EXPECT().Match(mock.Anything, mock.MatchedBy(func(req *entity.ReconcileRequest) bool {
		return req.Reference == "CONF-1" &&
			req.Method == entity.Yappy &&
			req.Amount.Valid && req.Amount.Decimal.Equal(decimal.NewFromInt(160))
	})).Return(&entity.ReconcileResult{
		PaymentId:        9,
		PaymentCreated:   true,
		PendingPlayerIds: []int{5, 6},
		Strategy:         entity.ReconcileFamily,
		Exact:            true,
	}, nil).Once()

	w := f.do(t, http.MethodGet, yappyCallback, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decodeBody(t, w)
	assert.Equal(t, callbackReconciled, body["status"])
	assert.EqualValues(t, 9, body["payment_id"])
}

func TestCallbackWithoutBufferOrAmountLeavesAmountUnset(t *testing.T) {
	f := newFixture(t, ratelimit.Config{})
	f.yappy.EXPECT().ParseCallback(mock.Anything, mock.Anything).Return(approvedYappy(), nil).Once()
	f.checkouts.EXPECT().Get(mock.Anything, "TOKEN0000000001").Return(nil, gerr.ErrCheckoutNotFound).Once()
	f.matcher.EXPECT().Match(mock.Anything, mock.MatchedBy(func(req *entity.ReconcileRequest) bool {
		return req.Reference == "CONF-1" && !req.Amount.Valid
	})).Return(&entity.ReconcileResult{PaymentId: 9, Strategy: entity.ReconcileAlreadyLinked}, nil).Once()

	w := f.do(t, http.MethodGet, yappyCallback, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, callbackDuplicate, decodeBody(t, w)["status"])
}

func TestCallbackRejectedIsRecorded(t *testing.T) {
	f := newFixture(t, ratelimit.Config{})
	pc := &entity.PaymentConfirmation{
		Method:        entity.Yappy,
		Status:        entity.PaymentRejected,
		Reference:     "TOKEN0000000001",
		CheckoutToken: "TOKEN0000000001",
	}
	f.yappy.EXPECT().ParseCallback(mock.Anything, mock.Anything).Return(pc, nil).Once()
	f.checkouts.EXPECT().Get(mock.Anything, "TOKEN0000000001").Return(bufferedCheckout(), nil).Once()
	f.payments.EXPECT().AddPayment(mock.Anything, mock.MatchedBy(func(p *entity.PaymentInsert) bool {
		return p.Status == entity.PaymentRejected &&
			p.Method == entity.Yappy &&
			p.Amount.Equal(decimal.NewFromInt(160)) &&
			p.OperationReference.String == "TOKEN0000000001"
	}), mock.MatchedBy(func(evs []*entity.PaymentEventInsert) bool {
		return len(evs) == 1 && evs[0].Kind == entity.PaymentEventCreated
	})).Return(11, nil).Once()

	w := f.do(t, http.MethodGet, yappyCallback, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, callbackDeclined, body["status"])
	assert.EqualValues(t, 11, body["payment_id"])
	f.enroller.AssertNotCalled(t, "Enroll", mock.Anything, mock.Anything, mock.Anything)
}

func TestCallbackRejectedReplayIsAlreadyProcessed(t *testing.T) {
	f := newFixture(t, ratelimit.Config{})
	dup := errors.New("Error 1062: Duplicate entry")
	pc := &entity.PaymentConfirmation{
		Method:    entity.Yappy,
		Status:    entity.PaymentCancelled,
		Amount:    decimal.NewFromInt(80),
		Reference: "TOKEN0000000001",
	}
	f.yappy.EXPECT().ParseCallback(mock.Anything, mock.Anything).Return(pc, nil).Once()
	f.payments.EXPECT().AddPayment(mock.Anything, mock.Anything, mock.Anything).Return(0, dup).Once()
	f.rep.EXPECT().IsErrUniqueViolation(dup).Return(true).Once()

	w := f.do(t, http.MethodGet, yappyCallback, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, callbackDuplicate, decodeBody(t, w)["status"])
}

func TestCallbackInvalidSignature(t *testing.T) {
	f := newFixture(t, ratelimit.Config{})
	f.yappy.EXPECT().ParseCallback(mock.Anything, mock.Anything).Return(nil, gerr.ErrInvalidSignature).Once()

	w := f.do(t, http.MethodGet, yappyCallback, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCallbackUnknownGateway(t *testing.T) {
	f := newFixture(t, ratelimit.Config{})
	w := f.do(t, http.MethodGet, "/api/payments/bitcoin/callback", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCardCallbackRedirects(t *testing.T) {
	f := newFixture(t, ratelimit.Config{})
	res := &entity.EnrollmentResult{PendingPlayerIds: []int{5, 6}, PaymentId: 7}
	pc := &entity.PaymentConfirmation{
		Method:        entity.Card,
		Approved:      true,
		Status:        entity.PaymentApproved,
		Amount:        decimal.NewFromInt(160),
		Reference:     "pi_123",
		CheckoutToken: "TOKEN0000000001",
	}
	f.card.EXPECT().ParseCallback(mock.Anything, mock.MatchedBy(func(v url.Values) bool {
		return v.Get("session_id") == "cs_test_1"
	})).Return(pc, nil).Once()
	f.checkouts.EXPECT().Get(mock.Anything, "TOKEN0000000001").Return(bufferedCheckout(), nil).Once()
	f.enroller.EXPECT().Enroll(mock.Anything, mock.Anything, pc).Return(res, nil).Once()
	f.mailer.EXPECT().QueueEnrollmentConfirmation(mock.Anything, mock.Anything, res, mock.Anything).Return(1, nil).Once()
	f.mailer.EXPECT().Kick().Once()
	f.checkouts.EXPECT().Delete(mock.Anything, "TOKEN0000000001").Return(nil).Once()

	w := f.do(t, http.MethodGet, "/api/payments/card/callback?session_id=cs_test_1", nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, successURL+"?status=enrolled", w.Header().Get("Location"))
}

func TestCardCallbackPendingRedirectsToFailure(t *testing.T) {
	f := newFixture(t, ratelimit.Config{})
	f.card.EXPECT().ParseCallback(mock.Anything, mock.Anything).Return(&entity.PaymentConfirmation{
		Method:    entity.Card,
		Status:    entity.PaymentPending,
		Reference: "pi_124",
	}, nil).Once()

	w := f.do(t, http.MethodGet, "/api/payments/card/callback?session_id=cs_test_2", nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, failureURL+"?status=pending", w.Header().Get("Location"))
	f.payments.AssertNotCalled(t, "AddPayment", mock.Anything, mock.Anything, mock.Anything)
}

func TestCardCallbackBadSessionRedirectsToFailure(t *testing.T) {
	f := newFixture(t, ratelimit.Config{})
	f.card.EXPECT().ParseCallback(mock.Anything, mock.Anything).Return(nil, fmt.Errorf("%w: session_id is required", gerr.ErrValidation)).Once()

	w := f.do(t, http.MethodGet, "/api/payments/card/callback", nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, failureURL+"?status=error", w.Header().Get("Location"))
}

func TestCallbackAcceptsPostedForm(t *testing.T) {
	f := newFixture(t, ratelimit.Config{})
	f.yappy.EXPECT().ParseCallback(mock.Anything, mock.MatchedBy(func(v url.Values) bool {
		return v.Get("orderId") == "TOKEN0000000009"
	})).Return(nil, gerr.ErrInvalidSignature).Once()

	w := f.do(t, http.MethodPost, "/api/payments/yappy/callback", "orderId=TOKEN0000000009&status=E",
		"Content-Type", "application/x-www-form-urlencoded")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
