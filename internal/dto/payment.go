package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/jekabolt/academy-manager/internal/entity"
	gerr "github.com/jekabolt/academy-manager/internal/errors"
	"github.com/shopspring/decimal"
)

// ReconcileRequest is the admin body asking to link a manual or gateway payment.
type ReconcileRequest struct {
	Reference string               `json:"reference"`
	Amount    string               `json:"amount,omitempty"`
	Method    entity.PaymentMethod `json:"method,omitempty"`
	// NotifyEmail receives a payment received email when the run links players.
	NotifyEmail string `json:"notify_email,omitempty"`
	NotifyName  string `json:"notify_name,omitempty"`
}

func ConvertToEntityReconcileRequest(r *ReconcileRequest) (*entity.ReconcileRequest, error) {
	req := &entity.ReconcileRequest{
		Reference: strings.TrimSpace(r.Reference),
		Method:    r.Method,
	}
	if req.Method == "" {
		req.Method = entity.Unknown
	}
	if !entity.ValidPaymentMethods[req.Method] {
		return nil, fmt.Errorf("%w: unknown payment method %q", gerr.ErrValidation, r.Method)
	}
	if a := strings.TrimSpace(r.Amount); a != "" {
		amount, err := decimal.NewFromString(a)
		if err != nil {
			return nil, fmt.Errorf("%w: bad amount %q", gerr.ErrValidation, r.Amount)
		}
		req.Amount = decimal.NullDecimal{Decimal: amount, Valid: true}
	}
	if req.Reference == "" && !req.Amount.Valid {
		return nil, fmt.Errorf("%w: reference or amount is required", gerr.ErrValidation)
	}
	return req, nil
}

// Payment is the admin view of a payment row.
type Payment struct {
	Id               int                  `json:"id"`
	CreatedAt        time.Time            `json:"created_at"`
	Amount           string               `json:"amount"`
	Method           entity.PaymentMethod `json:"method"`
	Status           entity.PaymentStatus `json:"status"`
	Reference        string               `json:"reference,omitempty"`
	PlayerId         int                  `json:"player_id,omitempty"`
	PendingPlayerIds []int                `json:"pending_player_ids"`
	Notes            string               `json:"notes"`
}

func ConvertEntityPaymentToCommon(p *entity.Payment) Payment {
	return Payment{
		Id:               p.Id,
		CreatedAt:        p.CreatedAt,
		Amount:           p.Amount.StringFixed(2),
		Method:           p.Method,
		Status:           p.Status,
		Reference:        p.OperationReference.String,
		PlayerId:         int(p.PlayerId.Int32),
		PendingPlayerIds: p.PendingPlayerIds(),
		Notes:            p.Notes,
	}
}

func ConvertEntityPaymentsToCommon(ps []entity.Payment) []Payment {
	out := make([]Payment, 0, len(ps))
	for i := range ps {
		out = append(out, ConvertEntityPaymentToCommon(&ps[i]))
	}
	return out
}
