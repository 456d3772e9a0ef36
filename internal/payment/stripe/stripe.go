package stripe

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/jekabolt/academy-manager/internal/entity"
	gerr "github.com/jekabolt/academy-manager/internal/errors"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

const (
	metadataCheckoutToken = "checkout_token"
	sessionIdParam        = "session_id"
)

type Config struct {
	SecretKey          string   `mapstructure:"secret_key"`
	PubKey             string   `mapstructure:"pub_key"`
	Currency           string   `mapstructure:"currency"`
	PaymentMethodTypes []string `mapstructure:"payment_method_types"`
	// CallbackURL receives the redirect after a completed checkout.
	CallbackURL string `mapstructure:"callback_url"`
	CancelURL   string `mapstructure:"cancel_url"`
}

// Gateway processes card payments through Stripe Checkout Sessions.
type Gateway struct {
	c  *Config
	sc *client.API
}

func New(c *Config) (*Gateway, error) {
	return newWithBackends(c, nil)
}

func newWithBackends(c *Config, backends *stripe.Backends) (*Gateway, error) {
	if c.SecretKey == "" {
		return nil, fmt.Errorf("stripe secret key is required")
	}
	if c.CallbackURL == "" || c.CancelURL == "" {
		return nil, fmt.Errorf("stripe callback and cancel urls are required")
	}
	if c.Currency == "" {
		c.Currency = "usd"
	}
	if len(c.PaymentMethodTypes) == 0 {
		c.PaymentMethodTypes = []string{"card"}
	}
	return &Gateway{
		c:  c,
		sc: client.New(c.SecretKey, backends),
	}, nil
}

func (g *Gateway) Method() entity.PaymentMethod {
	return entity.Card
}

// CreatePaymentLink opens a checkout session carrying the checkout token.
func (g *Gateway) CreatePaymentLink(ctx context.Context, req *entity.PaymentLinkRequest) (*entity.PaymentLink, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", gerr.ErrValidation)
	}
	amountCents := req.Amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()

	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:         stripe.String(successURL(g.c.CallbackURL)),
		CancelURL:          stripe.String(g.c.CancelURL),
		ClientReferenceID:  stripe.String(req.CheckoutToken),
		PaymentMethodTypes: stripe.StringSlice(g.c.PaymentMethodTypes),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(g.c.Currency),
					UnitAmount: stripe.Int64(amountCents),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(req.Description),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
	if req.PayerEmail != "" {
		params.CustomerEmail = stripe.String(req.PayerEmail)
	}
	params.Context = ctx
	params.AddMetadata(metadataCheckoutToken, req.CheckoutToken)

	s, err := g.sc.CheckoutSessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	return &entity.PaymentLink{
		URL:           s.URL,
		TransactionId: s.ID,
	}, nil
}

// ParseCallback loads the session named by the redirect and normalizes it.
func (g *Gateway) ParseCallback(ctx context.Context, params url.Values) (*entity.PaymentConfirmation, error) {
	sessionId := strings.TrimSpace(params.Get(sessionIdParam))
	if sessionId == "" {
		return nil, fmt.Errorf("%w: %s is required", gerr.ErrValidation, sessionIdParam)
	}

	sp := &stripe.CheckoutSessionParams{}
	sp.Context = ctx
	s, err := g.sc.CheckoutSessions.Get(sessionId, sp)
	if err != nil {
		return nil, fmt.Errorf("failed to get checkout session %s: %w", sessionId, err)
	}
	return sessionToConfirmation(s), nil
}

func sessionToConfirmation(s *stripe.CheckoutSession) *entity.PaymentConfirmation {
	pc := &entity.PaymentConfirmation{
		Method:        entity.Card,
		Amount:        decimal.New(s.AmountTotal, -2),
		Reference:     s.ID,
		CheckoutToken: s.ClientReferenceID,
		Raw: map[string]string{
			sessionIdParam:   s.ID,
			"payment_status": string(s.PaymentStatus),
			"status":         string(s.Status),
		},
	}
	if s.PaymentIntent != nil && s.PaymentIntent.ID != "" {
		pc.Reference = s.PaymentIntent.ID
		pc.Raw["payment_intent"] = s.PaymentIntent.ID
	}
	if pc.CheckoutToken == "" {
		pc.CheckoutToken = s.Metadata[metadataCheckoutToken]
	}

	switch {
	case s.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid:
		pc.Approved = true
		pc.Status = entity.PaymentApproved
	case s.Status == stripe.CheckoutSessionStatusExpired:
		pc.Status = entity.PaymentCancelled
	case s.Status == stripe.CheckoutSessionStatusComplete:
		// async methods settle later
		pc.Status = entity.PaymentPending
	default:
		pc.Status = entity.PaymentRejected
	}
	return pc
}

func successURL(callback string) string {
	sep := "?"
	if strings.Contains(callback, "?") {
		sep = "&"
	}
	return callback + sep + sessionIdParam + "={CHECKOUT_SESSION_ID}"
}
