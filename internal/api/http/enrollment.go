package httpapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jekabolt/academy-manager/internal/dto"
	"github.com/jekabolt/academy-manager/internal/entity"
	gerr "github.com/jekabolt/academy-manager/internal/errors"
	clientmw "github.com/jekabolt/academy-manager/internal/middleware"
	"github.com/shopspring/decimal"
)

type priceBody struct {
	UnitPrice string `json:"unit_price"`
}

func (s *Server) enrollmentPrice(w http.ResponseWriter, r *http.Request) {
	price, err := s.d.Enroller.UnitPrice(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, priceBody{UnitPrice: price.StringFixed(2)})
}

// amountFor is the checkout total of form at the current unit price.
func (s *Server) amountFor(ctx context.Context, form *entity.EnrollmentForm) (decimal.Decimal, error) {
	price, err := s.d.Enroller.UnitPrice(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return price.Mul(decimal.NewFromInt(int64(len(form.Players)))), nil
}

func (s *Server) createCheckout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := &dto.CheckoutRequest{}
	if err := decodeJSON(r, req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := s.d.Limiter.CheckCheckout(clientmw.GetClientIP(ctx), req.Tutor.Email); err != nil {
		writeError(w, r, err)
		return
	}
	g, ok := s.gateways[req.Method]
	if !ok {
		writeError(w, r, fmt.Errorf("%w: payment method %q has no gateway", gerr.ErrValidation, req.Method))
		return
	}
	if err := s.d.Enroller.Validate(&req.EnrollmentForm); err != nil {
		writeError(w, r, err)
		return
	}
	amount, err := s.amountFor(ctx, &req.EnrollmentForm)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := s.d.Checkouts.Put(ctx, &entity.Checkout{
		Method: req.Method,
		Amount: amount,
		Form:   req.EnrollmentForm,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	link, err := g.CreatePaymentLink(ctx, &entity.PaymentLinkRequest{
		CheckoutToken: token,
		Amount:        amount,
		Description:   fmt.Sprintf("Inscripción de %d jugador(es)", len(req.Players)),
		PayerEmail:    req.Tutor.Email,
	})
	if err != nil {
		s.dropCheckout(ctx, token)
		writeError(w, r, fmt.Errorf("can't create %s payment link: %w", req.Method, err))
		return
	}

	slog.Default().InfoContext(ctx, "checkout created",
		slog.String("token", token),
		slog.String("method", string(req.Method)),
		slog.String("amount", amount.StringFixed(2)),
		slog.Int("players", len(req.Players)),
	)
	writeJSON(w, http.StatusCreated, dto.NewCheckoutResponse(token, link, amount))
}

func (s *Server) registerEnrollment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := &dto.EnrollmentRequest{}
	if err := decodeJSON(r, req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := s.d.Limiter.CheckEnrollment(clientmw.GetClientIP(ctx)); err != nil {
		writeError(w, r, err)
		return
	}
	if !req.Method.IsOffline() {
		writeError(w, r, fmt.Errorf("%w: method must be cash or transfer", gerr.ErrValidation))
		return
	}
	amount, err := s.amountFor(ctx, &req.EnrollmentForm)
	if err != nil {
		writeError(w, r, err)
		return
	}

	res, err := s.d.Enroller.Register(ctx, &req.EnrollmentForm)
	if err != nil {
		writeError(w, r, err)
		return
	}

	s.queueConfirmation(ctx, &req.EnrollmentForm, res, amount)
	writeJSON(w, http.StatusCreated, dto.EnrollmentResponse{
		EnrollmentResult: *res,
		Amount:           amount.StringFixed(2),
	})
}

// queueConfirmation queues the tutor email and asks for a processing run.
// The enrollment is already stored, so failures are only logged.
func (s *Server) queueConfirmation(ctx context.Context, form *entity.EnrollmentForm, res *entity.EnrollmentResult, amount decimal.Decimal) {
	if _, err := s.d.Mailer.QueueEnrollmentConfirmation(ctx, form, res, amount); err != nil {
		slog.Default().ErrorContext(ctx, "can't queue enrollment confirmation",
			slog.String("to", form.Tutor.Email),
			slog.String("err", err.Error()),
		)
		return
	}
	s.d.Mailer.Kick()
}

func (s *Server) dropCheckout(ctx context.Context, token string) {
	if err := s.d.Checkouts.Delete(ctx, token); err != nil {
		slog.Default().ErrorContext(ctx, "can't delete checkout",
			slog.String("token", token),
			slog.String("err", err.Error()),
		)
	}
}
