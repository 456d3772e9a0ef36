package entity

import "github.com/shopspring/decimal"

type ReconcileRequest struct {
	Reference string              `json:"reference"`
	Amount    decimal.NullDecimal `json:"amount"`
	Method    PaymentMethod       `json:"method"`
}

type ReconcileStrategy string

const (
	ReconcileNone          ReconcileStrategy = "none"
	ReconcileAlreadyLinked ReconcileStrategy = "already_linked"
	ReconcileFamily        ReconcileStrategy = "family"
	ReconcileIndividual    ReconcileStrategy = "individual"
	ReconcileRecent        ReconcileStrategy = "recent"
)

// ReconcileResult describes what the matcher did with a payment.
type ReconcileResult struct {
	PaymentId        int               `json:"payment_id"`
	PaymentCreated   bool              `json:"payment_created"`
	PendingPlayerIds []int             `json:"pending_player_ids,omitempty"`
	Strategy         ReconcileStrategy `json:"strategy"`
	Exact            bool              `json:"exact"`
	Diagnostic       string            `json:"diagnostic,omitempty"`
}

// Linked reports whether this run attached pending players to the payment.
func (rr *ReconcileResult) Linked() bool {
	return len(rr.PendingPlayerIds) > 0 && rr.Strategy != ReconcileAlreadyLinked
}
