package dto

import (
	"github.com/jekabolt/academy-manager/internal/entity"
	"github.com/shopspring/decimal"
)

// CheckoutRequest starts a gateway payment for an enrollment form.
type CheckoutRequest struct {
	Method entity.PaymentMethod `json:"method"`
	entity.EnrollmentForm
}

type CheckoutResponse struct {
	Token         string `json:"token"`
	URL           string `json:"url"`
	TransactionId string `json:"transaction_id,omitempty"`
	Amount        string `json:"amount"`
}

func NewCheckoutResponse(token string, link *entity.PaymentLink, amount decimal.Decimal) *CheckoutResponse {
	return &CheckoutResponse{
		Token:         token,
		URL:           link.URL,
		TransactionId: link.TransactionId,
		Amount:        amount.StringFixed(2),
	}
}

// EnrollmentRequest registers an enrollment paid in cash or by transfer.
type EnrollmentRequest struct {
	Method entity.PaymentMethod `json:"method"`
	entity.EnrollmentForm
}

type EnrollmentResponse struct {
	entity.EnrollmentResult
	Amount string `json:"amount"`
}

// CallbackResponse is returned to gateways that notify server to server.
type CallbackResponse struct {
	Status    string `json:"status"`
	PaymentId int    `json:"payment_id,omitempty"`
}
