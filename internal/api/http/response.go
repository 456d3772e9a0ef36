package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/jekabolt/academy-manager/internal/enrollment"
	gerr "github.com/jekabolt/academy-manager/internal/errors"
)

const maxBodySize = 1 << 20

type errorResponse struct {
	Error  string                  `json:"error"`
	Fields []enrollment.FieldError `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Default().Error("can't encode response",
			slog.String("err", err.Error()),
		)
	}
}

// statusCode maps domain errors to http status codes.
func statusCode(err error) int {
	switch {
	case errors.Is(err, gerr.ErrValidation),
		errors.Is(err, gerr.ErrBadMailRequest),
		errors.Is(err, gerr.ErrPaymentNotApproved):
		return http.StatusBadRequest
	case errors.Is(err, gerr.ErrInvalidSignature):
		return http.StatusUnauthorized
	case errors.Is(err, gerr.ErrDuplicateOperation):
		return http.StatusConflict
	case errors.Is(err, gerr.ErrTooManyRequests),
		errors.Is(err, gerr.ErrMailApiLimitReached):
		return http.StatusTooManyRequests
	case errors.Is(err, gerr.ErrNotFound),
		errors.Is(err, gerr.ErrCheckoutNotFound),
		errors.Is(err, gerr.ErrUnknownGateway):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusCode(err)
	resp := errorResponse{Error: err.Error()}
	if status == http.StatusInternalServerError {
		slog.Default().ErrorContext(r.Context(), "request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("err", err.Error()),
		)
		resp.Error = http.StatusText(status)
	}
	var ve *enrollment.ValidationError
	if errors.As(err, &ve) {
		resp.Fields = ve.Fields
	}
	writeJSON(w, status, resp)
}

func decodeJSON(r *http.Request, v any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("%w: can't read body: %v", gerr.ErrValidation, err)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: malformed json: %v", gerr.ErrValidation, err)
	}
	return nil
}
