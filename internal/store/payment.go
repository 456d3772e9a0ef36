package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jekabolt/academy-manager/internal/dependency"
	"github.com/jekabolt/academy-manager/internal/entity"
	gerr "github.com/jekabolt/academy-manager/internal/errors"
	"github.com/shopspring/decimal"
)

type paymentStore struct {
	*MYSQLStore
}

// Payment returns an object implementing payment interface
func (ms *MYSQLStore) Payment() dependency.Payment {
	return &paymentStore{
		MYSQLStore: ms,
	}
}

// markerPattern matches notes carrying a pending players marker.
var markerPattern = "%" + escapeLike(entity.PendingPlayerIdsMarker) + "%"

func (ms *MYSQLStore) AddPayment(ctx context.Context, p *entity.PaymentInsert, events []*entity.PaymentEventInsert) (int, error) {
	notes := p.Notes
	for _, pe := range events {
		notes = entity.AppendNote(notes, pe.NoteLines()...)
	}

	query := `
	INSERT INTO payment
		(created_at, updated_at, player_id, amount, method, status, operation_reference, notes)
	VALUES
		(:createdAt, :createdAt, :playerId, :amount, :method, :status, :operationReference, :notes)
	`
	id, err := ExecNamedLastId(ctx, ms.DB(), query, map[string]any{
		"createdAt":          ms.Now(),
		"playerId":           p.PlayerId,
		"amount":             p.Amount.Round(2),
		"method":             p.Method,
		"status":             p.Status,
		"operationReference": p.OperationReference,
		"notes":              notes,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to add payment: %w", err)
	}

	for _, pe := range events {
		if err := ms.insertPaymentEvent(ctx, id, pe); err != nil {
			return id, err
		}
	}
	return id, nil
}

func (ms *MYSQLStore) DeletePaymentById(ctx context.Context, id int) error {
	query := `DELETE FROM payment WHERE id = :id`
	err := ExecNamed(ctx, ms.DB(), query, map[string]any{
		"id": id,
	})
	if err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
	}
	return nil
}

func (ms *MYSQLStore) GetPaymentById(ctx context.Context, id int) (*entity.Payment, error) {
	query := `SELECT * FROM payment WHERE id = :id`
	p, err := QueryNamedOne[entity.Payment](ctx, ms.DB(), query, map[string]any{
		"id": id,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("payment %d: %w", id, gerr.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get payment by id: %w", err)
	}
	return &p, nil
}

func (ms *MYSQLStore) GetPaymentByOperationReference(ctx context.Context, reference string) (*entity.Payment, error) {
	query := `SELECT * FROM payment WHERE operation_reference = :reference`
	p, err := QueryNamedOne[entity.Payment](ctx, ms.DB(), query, map[string]any{
		"reference": reference,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("payment with operation reference %q: %w", reference, gerr.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get payment by operation reference: %w", err)
	}
	return &p, nil
}

func (ms *MYSQLStore) GetPaymentByReference(ctx context.Context, reference string) (*entity.Payment, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return nil, fmt.Errorf("empty payment reference: %w", gerr.ErrNotFound)
	}
	query := `
	SELECT * FROM payment
	WHERE operation_reference = :reference
		OR LOWER(notes) LIKE :pattern
	ORDER BY status = :status DESC, operation_reference = :reference DESC, created_at DESC, id DESC
	LIMIT 1
	`
	p, err := QueryNamedOne[entity.Payment](ctx, ms.DB(), query, map[string]any{
		"reference": reference,
		"pattern":   "%" + escapeLike(strings.ToLower(reference)) + "%",
		"status":    entity.PaymentApproved,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("payment with reference %q: %w", reference, gerr.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get payment by reference: %w", err)
	}
	return &p, nil
}

func (ms *MYSQLStore) GetLatestUnlinkedPaymentByAmount(ctx context.Context, amount decimal.Decimal) (*entity.Payment, error) {
	query := `
	SELECT * FROM payment
	WHERE status = :status
		AND player_id IS NULL
		AND notes NOT LIKE :marker
		AND amount = :amount
	ORDER BY created_at DESC, id DESC
	LIMIT 1
	`
	p, err := QueryNamedOne[entity.Payment](ctx, ms.DB(), query, map[string]any{
		"status": entity.PaymentApproved,
		"marker": markerPattern,
		"amount": amount.Round(2),
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("unlinked payment of %s: %w", amount.StringFixed(2), gerr.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get unlinked payment by amount: %w", err)
	}
	return &p, nil
}

func (ms *MYSQLStore) GetUnlinkedApprovedPayments(ctx context.Context, since time.Time, limit int) ([]entity.Payment, error) {
	query := `
	SELECT * FROM payment
	WHERE status = :status
		AND player_id IS NULL
		AND notes NOT LIKE :marker
		AND created_at >= :since
	ORDER BY created_at ASC, id ASC
	LIMIT :limit
	`
	ps, err := QueryListNamed[entity.Payment](ctx, ms.DB(), query, map[string]any{
		"status": entity.PaymentApproved,
		"marker": markerPattern,
		"since":  since,
		"limit":  limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get unlinked payments: %w", err)
	}
	return ps, nil
}

type paymentNotes struct {
	Notes string `db:"notes"`
}

func (ms *MYSQLStore) GetLinkedPendingPlayerIds(ctx context.Context, excludePaymentId int) ([]int, error) {
	query := `SELECT notes FROM payment WHERE id <> :id AND notes LIKE :marker`
	pns, err := QueryListNamed[paymentNotes](ctx, ms.DB(), query, map[string]any{
		"id":     excludePaymentId,
		"marker": markerPattern,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get linked pending players: %w", err)
	}
	ids := []int{}
	for _, pn := range pns {
		ids = append(ids, entity.ParsePendingPlayerIds(pn.Notes)...)
	}
	return ids, nil
}

func (ms *MYSQLStore) insertPaymentEvent(ctx context.Context, paymentId int, pe *entity.PaymentEventInsert) error {
	query := `
	INSERT INTO payment_event
		(created_at, payment_id, kind, message, pending_player_ids, exact)
	VALUES
		(:createdAt, :paymentId, :kind, :message, :pendingPlayerIds, :exact)
	`
	err := ExecNamed(ctx, ms.DB(), query, map[string]any{
		"createdAt":        ms.Now(),
		"paymentId":        paymentId,
		"kind":             pe.Kind,
		"message":          pe.Message,
		"pendingPlayerIds": pe.PendingPlayerIds,
		"exact":            pe.Exact,
	})
	if err != nil {
		return fmt.Errorf("failed to add payment event: %w", err)
	}
	return nil
}

// AddPaymentEvent appends the rendered event to the notes before logging it.
// A link event on a payment whose notes already carry a marker returns gerr.ErrPaymentLinked.
func (ms *MYSQLStore) AddPaymentEvent(ctx context.Context, paymentId int, pe *entity.PaymentEventInsert) error {
	lines := pe.NoteLines()
	if len(lines) > 0 {
		// append in place, notes are never rewritten from a stale read
		query := `
		UPDATE payment
		SET notes = CASE WHEN notes = '' THEN :lines ELSE CONCAT(notes, :sep, :lines) END
		WHERE id = :id
		`
		params := map[string]any{
			"id":    paymentId,
			"lines": strings.Join(lines, "\n"),
			"sep":   "\n",
		}
		link := pe.Kind == entity.PaymentEventPendingPlayersLinked
		if link {
			query += ` AND notes NOT LIKE :marker`
			params["marker"] = markerPattern
		}
		n, err := ExecNamedRowsAffected(ctx, ms.DB(), query, params)
		if err != nil {
			return fmt.Errorf("failed to append payment notes: %w", err)
		}
		if n == 0 && link {
			return fmt.Errorf("payment %d: %w", paymentId, gerr.ErrPaymentLinked)
		}
	}

	return ms.insertPaymentEvent(ctx, paymentId, pe)
}

func (ms *MYSQLStore) GetPaymentEvents(ctx context.Context, paymentId int) ([]entity.PaymentEvent, error) {
	query := `SELECT * FROM payment_event WHERE payment_id = :paymentId ORDER BY id ASC`
	pes, err := QueryListNamed[entity.PaymentEvent](ctx, ms.DB(), query, map[string]any{
		"paymentId": paymentId,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get payment events: %w", err)
	}
	return pes, nil
}
