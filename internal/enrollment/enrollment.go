package enrollment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jekabolt/academy-manager/internal/dependency"
	"github.com/jekabolt/academy-manager/internal/entity"
	gerr "github.com/jekabolt/academy-manager/internal/errors"
	"github.com/jekabolt/academy-manager/internal/metrics"
	"github.com/shopspring/decimal"
)

type Config struct {
	// UnitPrice is the per-player enrollment price used when settings carry none.
	UnitPrice   string        `mapstructure:"unit_price"`
	CheckoutTTL time.Duration `mapstructure:"checkout_ttl"`
}

// DefaultConfig returns default enrollment configuration
func DefaultConfig() *Config {
	return &Config{
		UnitPrice:   "80.00",
		CheckoutTTL: 2 * time.Hour,
	}
}

// Orchestrator creates the family, pending players and payment of one
// enrollment and undoes its own writes when a later write fails.
type Orchestrator struct {
	c         *Config
	rep       dependency.Repository
	unitPrice decimal.Decimal
	v         *validator
}

// New creates a new enrollment orchestrator
func New(c *Config, rep dependency.Repository) (*Orchestrator, error) {
	if c == nil {
		c = DefaultConfig()
	}
	unitPrice, err := decimal.NewFromString(c.UnitPrice)
	if err != nil {
		return nil, fmt.Errorf("bad enrollment unit price %q: %w", c.UnitPrice, err)
	}
	if !unitPrice.IsPositive() {
		return nil, fmt.Errorf("enrollment unit price must be positive, got %s", c.UnitPrice)
	}
	v, err := newValidator(rep.Now)
	if err != nil {
		return nil, err
	}
	return &Orchestrator{
		c:         c,
		rep:       rep,
		unitPrice: unitPrice,
		v:         v,
	}, nil
}

// Validate checks the payload against the enrollment schema.
func (o *Orchestrator) Validate(form *entity.EnrollmentForm) error {
	return o.v.validate(form)
}

// UnitPrice returns the price stored in settings, falling back to configuration.
func (o *Orchestrator) UnitPrice(ctx context.Context) (decimal.Decimal, error) {
	price, ok, err := o.rep.Settings().GetEnrollmentPrice(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("can't get enrollment price: %w", err)
	}
	if ok && price.IsPositive() {
		return price, nil
	}
	return o.unitPrice, nil
}

// Enroll persists a paid enrollment. It must only be called once the gateway
// confirmed the payment; duplicate operation references are rejected with
// gerr.ErrDuplicateOperation alongside the ids already recorded.
func (o *Orchestrator) Enroll(ctx context.Context, form *entity.EnrollmentForm, pc *entity.PaymentConfirmation) (*entity.EnrollmentResult, error) {
	if err := o.Validate(form); err != nil {
		metrics.EnrollmentsTotal.WithLabelValues("invalid").Inc()
		return nil, err
	}
	if pc == nil || !pc.Approved {
		return nil, gerr.ErrPaymentNotApproved
	}
	if !pc.Amount.IsPositive() {
		metrics.EnrollmentsTotal.WithLabelValues("invalid").Inc()
		return nil, &ValidationError{Fields: []FieldError{{Field: "amount", Description: "must be positive"}}}
	}

	if pc.Reference != "" {
		p, err := o.rep.Payment().GetPaymentByOperationReference(ctx, pc.Reference)
		switch {
		case err == nil:
			metrics.EnrollmentsTotal.WithLabelValues("duplicate").Inc()
			return &entity.EnrollmentResult{
				PaymentId:        p.Id,
				PendingPlayerIds: p.PendingPlayerIds(),
			}, fmt.Errorf("payment reference %s: %w", pc.Reference, gerr.ErrDuplicateOperation)
		case !errors.Is(err, gerr.ErrNotFound):
			return nil, fmt.Errorf("can't check payment reference: %w", err)
		}
	}

	res := &entity.EnrollmentResult{}
	steps := o.rowSteps(form, res)
	steps = append(steps, &paymentStep{rep: o.rep, pc: pc, res: res})

	if err := runSaga(ctx, steps); err != nil {
		if errors.Is(err, gerr.ErrDuplicateOperation) {
			metrics.EnrollmentsTotal.WithLabelValues("duplicate").Inc()
		} else {
			metrics.EnrollmentsTotal.WithLabelValues("failed").Inc()
		}
		slog.Default().ErrorContext(ctx, "enrollment failed",
			slog.String("method", string(pc.Method)),
			slog.String("reference", pc.Reference),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("can't enroll: %w", err)
	}

	metrics.EnrollmentsTotal.WithLabelValues("created").Inc()
	slog.Default().InfoContext(ctx, "enrollment created",
		slog.Int("family_id", res.FamilyId),
		slog.Bool("family_created", res.FamilyCreated),
		slog.String("pending_player_ids", entity.JoinIds(res.PendingPlayerIds)),
		slog.Int("payment_id", res.PaymentId),
		slog.String("method", string(pc.Method)),
		slog.String("amount", pc.Amount.StringFixed(2)),
	)
	return res, nil
}

// Register persists an enrollment paid outside of a gateway. Only the family
// and pending players are written; the payment is linked later by the matcher.
func (o *Orchestrator) Register(ctx context.Context, form *entity.EnrollmentForm) (*entity.EnrollmentResult, error) {
	if err := o.Validate(form); err != nil {
		metrics.EnrollmentsTotal.WithLabelValues("invalid").Inc()
		return nil, err
	}

	res := &entity.EnrollmentResult{}
	if err := runSaga(ctx, o.rowSteps(form, res)); err != nil {
		metrics.EnrollmentsTotal.WithLabelValues("failed").Inc()
		return nil, fmt.Errorf("can't register enrollment: %w", err)
	}

	metrics.EnrollmentsTotal.WithLabelValues("registered").Inc()
	slog.Default().InfoContext(ctx, "enrollment registered",
		slog.Int("family_id", res.FamilyId),
		slog.String("pending_player_ids", entity.JoinIds(res.PendingPlayerIds)),
	)
	return res, nil
}

func (o *Orchestrator) rowSteps(form *entity.EnrollmentForm, res *entity.EnrollmentResult) []step {
	steps := []step{}
	if form.NeedsFamily() {
		steps = append(steps, &familyStep{rep: o.rep, form: form, res: res})
	}
	return append(steps, &playersStep{rep: o.rep, form: form, res: res})
}
