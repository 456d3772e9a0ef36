package httpapi

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/jekabolt/academy-manager/internal/dto"
	"github.com/jekabolt/academy-manager/internal/entity"
	gerr "github.com/jekabolt/academy-manager/internal/errors"
	"github.com/shopspring/decimal"
)

const (
	callbackEnrolled   = "enrolled"
	callbackDuplicate  = "already_processed"
	callbackReconciled = "reconciled"
	callbackPending    = "pending"
	callbackDeclined   = "declined"
)

type callbackOutcome struct {
	status    string
	paymentId int
}

func (s *Server) paymentCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	method := entity.PaymentMethod(chi.URLParam(r, "method"))

	g, ok := s.gateways[method]
	if !ok {
		writeError(w, r, fmt.Errorf("%w: %q", gerr.ErrUnknownGateway, method))
		return
	}
	if err := r.ParseForm(); err != nil {
		s.callbackFailed(w, r, method, fmt.Errorf("%w: %v", gerr.ErrValidation, err))
		return
	}

	pc, err := g.ParseCallback(ctx, r.Form)
	if err != nil {
		s.callbackFailed(w, r, method, err)
		return
	}

	out, err := s.confirm(ctx, pc)
	if err != nil {
		s.callbackFailed(w, r, method, err)
		return
	}

	slog.Default().InfoContext(ctx, "payment callback handled",
		slog.String("method", string(method)),
		slog.String("reference", pc.Reference),
		slog.String("checkout_token", pc.CheckoutToken),
		slog.String("outcome", out.status),
		slog.Int("payment_id", out.paymentId),
	)

	if method == entity.Card {
		target := s.c.SuccessURL
		if out.status == callbackDeclined || out.status == callbackPending {
			target = s.c.FailureURL
		}
		http.Redirect(w, r, withQuery(target, "status", out.status), http.StatusSeeOther)
		return
	}
	writeJSON(w, http.StatusOK, dto.CallbackResponse{Status: out.status, PaymentId: out.paymentId})
}

// confirm applies a normalized gateway confirmation to the store.
func (s *Server) confirm(ctx context.Context, pc *entity.PaymentConfirmation) (*callbackOutcome, error) {
	if !pc.Approved {
		return s.recordDeclined(ctx, pc)
	}

	co, err := s.d.Checkouts.Get(ctx, pc.CheckoutToken)
	if errors.Is(err, gerr.ErrCheckoutNotFound) {
		return s.reconcileOrphan(ctx, pc)
	}
	if err != nil {
		return nil, err
	}

	if !pc.Amount.IsPositive() {
		pc.Amount = co.Amount
	} else if !pc.Amount.Equal(co.Amount) {
		slog.Default().WarnContext(ctx, "gateway amount differs from checkout",
			slog.String("token", co.Token),
			slog.String("checkout_amount", co.Amount.StringFixed(2)),
			slog.String("gateway_amount", pc.Amount.StringFixed(2)),
		)
	}

	res, err := s.d.Enroller.Enroll(ctx, &co.Form, pc)
	if errors.Is(err, gerr.ErrDuplicateOperation) {
		s.dropCheckout(ctx, co.Token)
		out := &callbackOutcome{status: callbackDuplicate}
		if res != nil {
			out.paymentId = res.PaymentId
		}
		return out, nil
	}
	if err != nil {
		// the buffer stays so a gateway retry can enroll again
		return nil, err
	}

	s.queueConfirmation(ctx, &co.Form, res, pc.Amount)
	s.dropCheckout(ctx, co.Token)
	return &callbackOutcome{status: callbackEnrolled, paymentId: res.PaymentId}, nil
}

// reconcileOrphan handles an approved payment whose checkout is gone by
// recording it and letting the matcher link it to recent pending players.
func (s *Server) reconcileOrphan(ctx context.Context, pc *entity.PaymentConfirmation) (*callbackOutcome, error) {
	if strings.TrimSpace(pc.Reference) == "" {
		return nil, fmt.Errorf("%w: approved payment without reference or checkout", gerr.ErrValidation)
	}
	req := &entity.ReconcileRequest{
		Reference: pc.Reference,
		Method:    pc.Method,
	}
	if pc.Amount.IsPositive() {
		req.Amount = decimal.NullDecimal{Decimal: pc.Amount, Valid: true}
	}

	slog.Default().WarnContext(ctx, "checkout missing for approved payment, reconciling",
		slog.String("reference", pc.Reference),
		slog.String("checkout_token", pc.CheckoutToken),
	)
	res, err := s.d.Matcher.Match(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("can't reconcile payment %s: %w", pc.Reference, err)
	}
	status := callbackReconciled
	if res.Strategy == entity.ReconcileAlreadyLinked {
		status = callbackDuplicate
	}
	return &callbackOutcome{status: status, paymentId: res.PaymentId}, nil
}

// recordDeclined stores rejected and cancelled payments for the audit trail.
// Pending confirmations are not stored since the gateway will call again.
func (s *Server) recordDeclined(ctx context.Context, pc *entity.PaymentConfirmation) (*callbackOutcome, error) {
	if pc.Status == entity.PaymentPending {
		return &callbackOutcome{status: callbackPending}, nil
	}
	out := &callbackOutcome{status: callbackDeclined}
	ref := strings.TrimSpace(pc.Reference)
	if ref == "" {
		return out, nil
	}

	status := pc.Status
	if status == "" {
		status = entity.PaymentRejected
	}
	amount := pc.Amount
	if !amount.IsPositive() {
		if co, err := s.d.Checkouts.Get(ctx, pc.CheckoutToken); err == nil {
			amount = co.Amount
		}
	}

	id, err := s.d.Repository.Payment().AddPayment(ctx, &entity.PaymentInsert{
		Amount:             amount,
		Method:             pc.Method,
		Status:             status,
		OperationReference: sql.NullString{String: ref, Valid: true},
	}, []*entity.PaymentEventInsert{{
		Kind:    entity.PaymentEventCreated,
		Message: fmt.Sprintf("Payment %s via %s, reference %s", strings.ToLower(string(status)), pc.Method, ref),
	}})
	if err != nil {
		if id == 0 && s.d.Repository.IsErrUniqueViolation(err) {
			out.status = callbackDuplicate
			return out, nil
		}
		if id == 0 {
			return nil, fmt.Errorf("can't record declined payment %s: %w", ref, err)
		}
		slog.Default().WarnContext(ctx, "declined payment recorded with incomplete event log",
			slog.Int("payment_id", id),
			slog.String("err", err.Error()),
		)
	}
	out.paymentId = id
	return out, nil
}

func (s *Server) callbackFailed(w http.ResponseWriter, r *http.Request, method entity.PaymentMethod, err error) {
	if method == entity.Card && s.c.FailureURL != "" && statusCode(err) != http.StatusInternalServerError {
		slog.Default().WarnContext(r.Context(), "payment callback rejected",
			slog.String("method", string(method)),
			slog.String("err", err.Error()),
		)
		http.Redirect(w, r, withQuery(s.c.FailureURL, "status", "error"), http.StatusSeeOther)
		return
	}
	writeError(w, r, err)
}

func withQuery(target, key, value string) string {
	u, err := url.Parse(target)
	if err != nil {
		return target
	}
	q := u.Query()
	q.Set(key, value)
	u.RawQuery = q.Encode()
	return u.String()
}
