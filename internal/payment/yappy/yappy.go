package yappy

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jekabolt/academy-manager/internal/entity"
	gerr "github.com/jekabolt/academy-manager/internal/errors"
	"github.com/shopspring/decimal"
)

const (
	defaultBaseURL = "https://apipagosbg.bgeneral.cloud"
	successCode    = "0000"
)

// IPN status codes.
const (
	StatusExecuted  = "E"
	StatusRejected  = "R"
	StatusCancelled = "C"
	StatusExpired   = "X"
)

type Config struct {
	BaseURL    string `mapstructure:"base_url"`
	MerchantId string `mapstructure:"merchant_id"`
	SecretKey  string `mapstructure:"secret_key"`
	// Domain is the merchant url registered with Yappy, echoed back in the IPN.
	Domain string `mapstructure:"domain"`
	// CheckoutURL hosts the Yappy button that completes a created order.
	CheckoutURL string        `mapstructure:"checkout_url"`
	IPNURL      string        `mapstructure:"ipn_url"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

// Gateway creates Yappy orders and verifies their IPN callbacks.
type Gateway struct {
	c          *Config
	httpClient *http.Client
	now        func() time.Time
}

func New(c *Config) (*Gateway, error) {
	if c.MerchantId == "" || c.SecretKey == "" || c.Domain == "" {
		return nil, fmt.Errorf("incomplete yappy config: merchant id, secret key and domain are required")
	}
	if c.BaseURL == "" {
		c.BaseURL = defaultBaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	return &Gateway{
		c: c,
		httpClient: &http.Client{
			Timeout: c.Timeout,
		},
		now: time.Now,
	}, nil
}

func (g *Gateway) Method() entity.PaymentMethod {
	return entity.Yappy
}

type status struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type validateMerchantResponse struct {
	Status status `json:"status"`
	Body   struct {
		Token     string `json:"token"`
		EpochTime int64  `json:"epochTime"`
	} `json:"body"`
}

type createOrderRequest struct {
	MerchantId  string `json:"merchantId"`
	OrderId     string `json:"orderId"`
	Domain      string `json:"domain"`
	PaymentDate int64  `json:"paymentDate"`
	IPNURL      string `json:"ipnUrl"`
	Discount    string `json:"discount"`
	Taxes       string `json:"taxes"`
	Subtotal    string `json:"subtotal"`
	Total       string `json:"total"`
}

type createOrderResponse struct {
	Status status `json:"status"`
	Body   struct {
		TransactionId string `json:"transactionId"`
		Token         string `json:"token"`
		DocumentName  string `json:"documentName"`
	} `json:"body"`
}

// CreatePaymentLink registers an order whose id is the checkout token.
func (g *Gateway) CreatePaymentLink(ctx context.Context, req *entity.PaymentLinkRequest) (*entity.PaymentLink, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", gerr.ErrValidation)
	}

	var vm validateMerchantResponse
	err := g.post(ctx, "/payments/validate/merchant", "", map[string]string{
		"merchantId": g.c.MerchantId,
		"urlDomain":  g.c.Domain,
	}, &vm)
	if err != nil {
		return nil, fmt.Errorf("failed to validate merchant: %w", err)
	}
	if vm.Status.Code != successCode || vm.Body.Token == "" {
		return nil, fmt.Errorf("yappy merchant validation failed: %s %s", vm.Status.Code, vm.Status.Description)
	}

	paymentDate := vm.Body.EpochTime
	if paymentDate == 0 {
		paymentDate = g.now().Unix()
	}
	total := req.Amount.StringFixed(2)

	var co createOrderResponse
	err = g.post(ctx, "/payments/payment-wc", vm.Body.Token, &createOrderRequest{
		MerchantId:  g.c.MerchantId,
		OrderId:     req.CheckoutToken,
		Domain:      g.c.Domain,
		PaymentDate: paymentDate,
		IPNURL:      g.c.IPNURL,
		Discount:    "0.00",
		Taxes:       "0.00",
		Subtotal:    total,
		Total:       total,
	}, &co)
	if err != nil {
		return nil, fmt.Errorf("failed to create yappy order: %w", err)
	}
	if co.Status.Code != successCode || co.Body.TransactionId == "" {
		return nil, fmt.Errorf("yappy order creation failed: %s %s", co.Status.Code, co.Status.Description)
	}

	q := url.Values{}
	q.Set("transactionId", co.Body.TransactionId)
	q.Set("token", co.Body.Token)
	q.Set("documentName", co.Body.DocumentName)
	q.Set("orderId", req.CheckoutToken)

	return &entity.PaymentLink{
		URL:           g.c.CheckoutURL + "?" + q.Encode(),
		TransactionId: co.Body.TransactionId,
	}, nil
}

func (g *Gateway) post(ctx context.Context, path, token string, body, out any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("can't marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, strings.TrimRight(g.c.BaseURL, "/")+path, bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("can't decode response: %w", err)
	}
	return nil
}

// Hash signs orderId+status+domain with the merchant secret.
func Hash(secret, orderId, status, domain string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderId + status + domain))
	return hex.EncodeToString(mac.Sum(nil))
}

// ParseCallback verifies the IPN hash and normalizes the notification.
func (g *Gateway) ParseCallback(_ context.Context, params url.Values) (*entity.PaymentConfirmation, error) {
	orderId := strings.TrimSpace(params.Get("orderId"))
	st := strings.ToUpper(strings.TrimSpace(params.Get("status")))
	domain := strings.TrimSpace(params.Get("domain"))
	if orderId == "" || st == "" {
		return nil, fmt.Errorf("%w: orderId and status are required", gerr.ErrValidation)
	}

	got, err := hex.DecodeString(strings.TrimSpace(params.Get("hash")))
	if err != nil || len(got) == 0 {
		return nil, gerr.ErrInvalidSignature
	}
	want, _ := hex.DecodeString(Hash(g.c.SecretKey, orderId, st, domain))
	if !hmac.Equal(got, want) {
		return nil, gerr.ErrInvalidSignature
	}

	pc := &entity.PaymentConfirmation{
		Method:        entity.Yappy,
		Reference:     orderId,
		CheckoutToken: orderId,
		Raw:           map[string]string{},
	}
	for k := range params {
		pc.Raw[k] = params.Get(k)
	}
	if cn := strings.TrimSpace(params.Get("confirmationNumber")); cn != "" {
		pc.Reference = cn
	}
	if total := strings.TrimSpace(params.Get("total")); total != "" {
		amount, err := decimal.NewFromString(total)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid total %q", gerr.ErrValidation, total)
		}
		pc.Amount = amount
	}

	switch st {
	case StatusExecuted:
		pc.Approved = true
		pc.Status = entity.PaymentApproved
	case StatusRejected:
		pc.Status = entity.PaymentRejected
	case StatusCancelled, StatusExpired:
		pc.Status = entity.PaymentCancelled
	default:
		return nil, fmt.Errorf("%w: unknown yappy status %q", gerr.ErrValidation, st)
	}
	return pc, nil
}
