package reconcile

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/jekabolt/academy-manager/internal/dependency"
	"github.com/jekabolt/academy-manager/internal/entity"
	gerr "github.com/jekabolt/academy-manager/internal/errors"
	"github.com/jekabolt/academy-manager/internal/metrics"
	"github.com/shopspring/decimal"
)

// PriceSource provides the per-player enrollment price.
type PriceSource interface {
	UnitPrice(ctx context.Context) (decimal.Decimal, error)
}

// Config holds configuration for the matcher and its worker.
type Config struct {
	// Window is how far before the payment pending players are considered.
	Window time.Duration `mapstructure:"window"`
	// Tolerance is the absolute amount difference still treated as a match.
	Tolerance string `mapstructure:"tolerance"`
	// AllowInexact enables the most-recent fallback when no exact match exists.
	AllowInexact   bool          `mapstructure:"allow_inexact"`
	WorkerInterval time.Duration `mapstructure:"worker_interval"`
	// Lookback bounds how old an unlinked payment the worker still retries.
	Lookback  time.Duration `mapstructure:"lookback"`
	BatchSize int           `mapstructure:"batch_size"`
}

// DefaultConfig returns default configuration values.
func DefaultConfig() Config {
	return Config{
		Window:       2 * time.Hour,
		Tolerance:    "1",
		AllowInexact: true,
		Lookback:     24 * time.Hour,
		BatchSize:    50,
	}
}

// Matcher links unlinked payments to the pending players they paid for.
type Matcher struct {
	c         *Config
	rep       dependency.Repository
	prices    PriceSource
	tolerance decimal.Decimal
}

// NewMatcher creates a new payment matcher.
func NewMatcher(c *Config, rep dependency.Repository, prices PriceSource) (*Matcher, error) {
	if c == nil {
		dc := DefaultConfig()
		c = &dc
	}
	if c.Window <= 0 {
		c.Window = 2 * time.Hour
	}
	if c.Tolerance == "" {
		c.Tolerance = "1"
	}
	if c.Lookback <= 0 {
		c.Lookback = 24 * time.Hour
	}
	if c.BatchSize <= 0 {
		c.BatchSize = 50
	}
	tol, err := decimal.NewFromString(c.Tolerance)
	if err != nil {
		return nil, fmt.Errorf("bad reconcile tolerance %q: %w", c.Tolerance, err)
	}
	return &Matcher{
		c:         c,
		rep:       rep,
		prices:    prices,
		tolerance: tol.Abs(),
	}, nil
}

// Match locates the payment by reference or amount and links it.
// A reference that matches nothing creates an approved payment carrying it.
func (m *Matcher) Match(ctx context.Context, req *entity.ReconcileRequest) (*entity.ReconcileResult, error) {
	ref := strings.TrimSpace(req.Reference)
	if ref == "" && !req.Amount.Valid {
		return nil, fmt.Errorf("reference or amount is required: %w", gerr.ErrValidation)
	}

	var (
		p       *entity.Payment
		created bool
		err     error
	)
	if ref != "" {
		p, err = m.rep.Payment().GetPaymentByReference(ctx, ref)
		if errors.Is(err, gerr.ErrNotFound) {
			p, err = m.synthesize(ctx, ref, req)
			created = err == nil
		}
	} else {
		p, err = m.rep.Payment().GetLatestUnlinkedPaymentByAmount(ctx, req.Amount.Decimal)
		if errors.Is(err, gerr.ErrNotFound) {
			res := &entity.ReconcileResult{
				Strategy:   entity.ReconcileNone,
				Diagnostic: fmt.Sprintf("no unlinked approved payment of %s", req.Amount.Decimal.StringFixed(2)),
			}
			m.report(ctx, res)
			return res, nil
		}
	}
	if err != nil {
		return nil, fmt.Errorf("can't locate payment: %w", err)
	}

	if !p.Amount.IsPositive() && req.Amount.Valid {
		p.Amount = req.Amount.Decimal
	}

	// a requested match looks back from the time of the request
	res, err := m.link(ctx, p, m.rep.Now())
	if err != nil {
		return nil, err
	}
	res.PaymentCreated = created
	return res, nil
}

// MatchPayment runs the matching steps for an already located payment,
// looking back from the time the payment was recorded.
func (m *Matcher) MatchPayment(ctx context.Context, p *entity.Payment) (*entity.ReconcileResult, error) {
	return m.link(ctx, p, p.CreatedAt)
}

func (m *Matcher) synthesize(ctx context.Context, ref string, req *entity.ReconcileRequest) (*entity.Payment, error) {
	method := req.Method
	if !entity.ValidPaymentMethods[method] {
		method = entity.Unknown
	}
	note := fmt.Sprintf("Payment recorded from reference %s via %s", ref, method)
	pi := entity.PaymentInsert{
		Amount:             req.Amount.Decimal,
		Method:             method,
		Status:             entity.PaymentApproved,
		OperationReference: sql.NullString{String: ref, Valid: true},
	}
	id, err := m.rep.Payment().AddPayment(ctx, &pi, []*entity.PaymentEventInsert{{
		Kind:    entity.PaymentEventCreated,
		Message: note,
		Exact:   true,
	}})
	if err != nil {
		if id == 0 && m.rep.IsErrUniqueViolation(err) {
			return m.rep.Payment().GetPaymentByOperationReference(ctx, ref)
		}
		if id == 0 {
			return nil, fmt.Errorf("can't record payment for reference %s: %w", ref, err)
		}
		slog.Default().WarnContext(ctx, "payment recorded with incomplete event log",
			slog.Int("payment_id", id),
			slog.String("err", err.Error()),
		)
	}
	pi.Notes = note
	return &entity.Payment{Id: id, CreatedAt: m.rep.Now(), PaymentInsert: pi}, nil
}

type group struct {
	familyId int
	members  []entity.PendingPlayer
}

func (m *Matcher) link(ctx context.Context, p *entity.Payment, anchor time.Time) (*entity.ReconcileResult, error) {
	// only approved payments moved money
	if p.Status != entity.PaymentApproved {
		res := &entity.ReconcileResult{
			PaymentId:  p.Id,
			Strategy:   entity.ReconcileNone,
			Diagnostic: fmt.Sprintf("payment %d is %s", p.Id, p.Status),
		}
		m.report(ctx, res)
		return res, nil
	}

	if p.IsLinked() {
		return m.alreadyLinked(ctx, p), nil
	}

	unitPrice, err := m.prices.UnitPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("can't get unit price: %w", err)
	}

	candidates, err := m.rep.PendingPlayer().GetPendingPlayersCreatedBetween(ctx, anchor.Add(-m.c.Window), anchor)
	if err != nil {
		return nil, fmt.Errorf("can't get candidates: %w", err)
	}
	linked, err := m.rep.Payment().GetLinkedPendingPlayerIds(ctx, p.Id)
	if err != nil {
		return nil, fmt.Errorf("can't get linked pending players: %w", err)
	}
	candidates = unmatched(candidates, linked)

	res := &entity.ReconcileResult{PaymentId: p.Id, Strategy: entity.ReconcileNone}
	if len(candidates) == 0 {
		res.Diagnostic = fmt.Sprintf("no unmatched pending players created in the %s before the payment", m.c.Window)
		m.report(ctx, res)
		return res, nil
	}

	expected := expectedCount(p.Amount, unitPrice)
	message := ""

	if ids, famId := m.byFamily(candidates, p.Amount, unitPrice); ids != nil {
		res.Strategy, res.PendingPlayerIds, res.Exact = entity.ReconcileFamily, ids, true
		message = fmt.Sprintf("Matched family %d by amount %s", famId, p.Amount.StringFixed(2))
	} else if id, ok := m.byIndividual(candidates, p.Amount, unitPrice); ok {
		res.Strategy, res.PendingPlayerIds, res.Exact = entity.ReconcileIndividual, []int{id}, true
		message = fmt.Sprintf("Matched pending player %d by amount %s", id, p.Amount.StringFixed(2))
	} else if m.c.AllowInexact {
		res.Strategy, res.PendingPlayerIds = entity.ReconcileRecent, mostRecent(candidates, expected)
		if expected > 0 {
			message = fmt.Sprintf("Inexact match: linked the %d most recent pending players for %s, expected %d",
				len(res.PendingPlayerIds), p.Amount.StringFixed(2), expected)
		} else {
			message = fmt.Sprintf("Inexact match: linked the most recent pending player, amount %s unknown", p.Amount.StringFixed(2))
		}
	} else {
		res.Diagnostic = fmt.Sprintf("no family or individual matches amount %s", p.Amount.StringFixed(2))
		m.report(ctx, res)
		return res, nil
	}

	err = m.rep.Payment().AddPaymentEvent(ctx, p.Id, entity.LinkEvent(res.PendingPlayerIds, res.Exact, message))
	if errors.Is(err, gerr.ErrPaymentLinked) {
		// another run linked it after the candidates were read
		linked, rerr := m.rep.Payment().GetPaymentById(ctx, p.Id)
		if rerr != nil {
			return nil, fmt.Errorf("can't reload linked payment %d: %w", p.Id, rerr)
		}
		return m.alreadyLinked(ctx, linked), nil
	}
	if err != nil {
		return nil, fmt.Errorf("can't link payment %d: %w", p.Id, err)
	}
	res.Diagnostic = message
	m.report(ctx, res)
	return res, nil
}

func (m *Matcher) alreadyLinked(ctx context.Context, p *entity.Payment) *entity.ReconcileResult {
	res := &entity.ReconcileResult{
		PaymentId:        p.Id,
		PendingPlayerIds: p.PendingPlayerIds(),
		Strategy:         entity.ReconcileAlreadyLinked,
		Exact:            true,
		Diagnostic:       "payment already linked",
	}
	m.report(ctx, res)
	return res
}

// byFamily returns the first family group, most recent first, whose total is within tolerance.
func (m *Matcher) byFamily(candidates []entity.PendingPlayer, amount, unitPrice decimal.Decimal) ([]int, int) {
	for _, g := range familyGroups(candidates) {
		total := unitPrice.Mul(decimal.NewFromInt(int64(len(g.members))))
		if m.within(total, amount) {
			ids := make([]int, 0, len(g.members))
			for _, pp := range g.members {
				ids = append(ids, pp.Id)
			}
			return entity.SortedIds(ids), g.familyId
		}
	}
	return nil, 0
}

// byIndividual returns the most recent family-less candidate when one unit price matches the amount.
func (m *Matcher) byIndividual(candidates []entity.PendingPlayer, amount, unitPrice decimal.Decimal) (int, bool) {
	if !m.within(unitPrice, amount) {
		return 0, false
	}
	for _, pp := range newestFirst(candidates) {
		if !pp.FamilyId.Valid {
			return pp.Id, true
		}
	}
	return 0, false
}

func (m *Matcher) within(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(m.tolerance)
}

func (m *Matcher) report(ctx context.Context, res *entity.ReconcileResult) {
	metrics.ReconcileTotal.WithLabelValues(string(res.Strategy)).Inc()
	slog.Default().InfoContext(ctx, "payment reconciliation",
		slog.Int("payment_id", res.PaymentId),
		slog.String("strategy", string(res.Strategy)),
		slog.Bool("exact", res.Exact),
		slog.String("pending_player_ids", entity.JoinIds(res.PendingPlayerIds)),
		slog.String("diagnostic", res.Diagnostic),
	)
}

// expectedCount is round(amount / unitPrice), zero when either is unknown.
func expectedCount(amount, unitPrice decimal.Decimal) int {
	if !amount.IsPositive() || !unitPrice.IsPositive() {
		return 0
	}
	return int(amount.Div(unitPrice).Round(0).IntPart())
}

func unmatched(candidates []entity.PendingPlayer, linked []int) []entity.PendingPlayer {
	taken := make(map[int]bool, len(linked))
	for _, id := range linked {
		taken[id] = true
	}
	out := make([]entity.PendingPlayer, 0, len(candidates))
	for _, pp := range candidates {
		if !taken[pp.Id] {
			out = append(out, pp)
		}
	}
	return out
}

// familyGroups groups candidates by family, ordered by their most recent member.
func familyGroups(candidates []entity.PendingPlayer) []group {
	byFamily := map[int]*group{}
	groups := []*group{}
	for _, pp := range newestFirst(candidates) {
		if !pp.FamilyId.Valid {
			continue
		}
		id := int(pp.FamilyId.Int32)
		g, ok := byFamily[id]
		if !ok {
			g = &group{familyId: id}
			byFamily[id] = g
			groups = append(groups, g)
		}
		g.members = append(g.members, pp)
	}
	out := make([]group, 0, len(groups))
	for _, g := range groups {
		out = append(out, *g)
	}
	return out
}

// mostRecent returns the ids of the n most recent candidates in ascending order, one when n is unknown.
func mostRecent(candidates []entity.PendingPlayer, n int) []int {
	if n <= 0 {
		n = 1
	}
	sorted := newestFirst(candidates)
	if n > len(sorted) {
		n = len(sorted)
	}
	ids := make([]int, 0, n)
	for _, pp := range sorted[:n] {
		ids = append(ids, pp.Id)
	}
	return entity.SortedIds(ids)
}

func newestFirst(candidates []entity.PendingPlayer) []entity.PendingPlayer {
	out := append([]entity.PendingPlayer(nil), candidates...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].Id > out[j].Id
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
