package httpapi

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jekabolt/academy-manager/internal/auth/jwt"
	"github.com/jekabolt/academy-manager/internal/dto"
	gerr "github.com/jekabolt/academy-manager/internal/errors"
	"github.com/shopspring/decimal"
)

const (
	defaultUnlinkedLookback = 7 * 24 * time.Hour
	defaultUnlinkedLimit    = 100
)

func (s *Server) setEnrollmentPrice(w http.ResponseWriter, r *http.Request) {
	body := &priceBody{}
	if err := decodeJSON(r, body); err != nil {
		writeError(w, r, err)
		return
	}
	price, err := decimal.NewFromString(strings.TrimSpace(body.UnitPrice))
	if err != nil || !price.IsPositive() {
		writeError(w, r, fmt.Errorf("%w: unit price must be a positive amount", gerr.ErrValidation))
		return
	}
	if err := s.d.Repository.Settings().SetEnrollmentPrice(r.Context(), price); err != nil {
		writeError(w, r, err)
		return
	}
	slog.Default().InfoContext(r.Context(), "enrollment price updated",
		slog.String("unit_price", price.StringFixed(2)),
		slog.String("admin", jwt.Subject(r.Context())),
	)
	writeJSON(w, http.StatusOK, priceBody{UnitPrice: price.StringFixed(2)})
}

func (s *Server) reconcile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body := &dto.ReconcileRequest{}
	if err := decodeJSON(r, body); err != nil {
		writeError(w, r, err)
		return
	}
	req, err := dto.ConvertToEntityReconcileRequest(body)
	if err != nil {
		writeError(w, r, err)
		return
	}

	res, err := s.d.Matcher.Match(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if res.Linked() && body.NotifyEmail != "" {
		amount := req.Amount.Decimal
		if !req.Amount.Valid {
			if p, err := s.d.Repository.Payment().GetPaymentById(ctx, res.PaymentId); err == nil {
				amount = p.Amount
			}
		}
		if _, err := s.d.Mailer.QueuePaymentReceived(ctx, body.NotifyEmail, body.NotifyName, amount, res); err != nil {
			slog.Default().ErrorContext(ctx, "can't queue payment received mail",
				slog.Int("payment_id", res.PaymentId),
				slog.String("err", err.Error()),
			)
		} else {
			s.d.Mailer.Kick()
		}
	}

	slog.Default().InfoContext(ctx, "manual reconcile",
		slog.String("reference", req.Reference),
		slog.String("strategy", string(res.Strategy)),
		slog.Int("payment_id", res.PaymentId),
		slog.String("admin", jwt.Subject(ctx)),
	)
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) unlinkedPayments(w http.ResponseWriter, r *http.Request) {
	lookback := defaultUnlinkedLookback
	if v := r.URL.Query().Get("since"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			writeError(w, r, fmt.Errorf("%w: bad since duration %q", gerr.ErrValidation, v))
			return
		}
		lookback = d
	}
	limit := defaultUnlinkedLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeError(w, r, fmt.Errorf("%w: bad limit %q", gerr.ErrValidation, v))
			return
		}
		limit = n
	}

	ps, err := s.d.Repository.Payment().GetUnlinkedApprovedPayments(r.Context(), s.d.Repository.Now().Add(-lookback), limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ConvertEntityPaymentsToCommon(ps))
}

func (s *Server) processMail(w http.ResponseWriter, r *http.Request) {
	res, err := s.d.Mailer.ProcessQueue(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) requeueMail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		writeError(w, r, fmt.Errorf("%w: bad mail id", gerr.ErrValidation))
		return
	}
	if err := s.d.Mailer.Requeue(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"id": id})
}

func (s *Server) mailStats(w http.ResponseWriter, r *http.Request) {
	st, err := s.d.Mailer.Stats(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (s *Server) mailWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: can't read body: %v", gerr.ErrValidation, err))
		return
	}
	sum, err := s.d.MailWebhook.Handle(r.Context(), body, r.Header.Get(s.d.MailWebhook.SignatureHeader()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sum)
}
