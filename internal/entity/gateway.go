package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentLinkRequest is what a gateway needs to start a transaction.
type PaymentLinkRequest struct {
	CheckoutToken string
	Amount        decimal.Decimal
	Description   string
	PayerEmail    string
}

type PaymentLink struct {
	URL           string `json:"url"`
	TransactionId string `json:"transaction_id"`
}

// PaymentConfirmation is a gateway callback normalized to one shape.
type PaymentConfirmation struct {
	Method        PaymentMethod
	Approved      bool
	Status        PaymentStatus
	Amount        decimal.Decimal
	Reference     string
	CheckoutToken string
	Raw           map[string]string
}

// Checkout is the enrollment payload buffered between link creation and callback.
type Checkout struct {
	Token     string          `json:"token"`
	Method    PaymentMethod   `json:"method"`
	Amount    decimal.Decimal `json:"amount"`
	Form      EnrollmentForm  `json:"form"`
	CreatedAt time.Time       `json:"created_at"`
}
