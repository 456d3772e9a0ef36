package reconcile

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/jekabolt/academy-manager/internal/dependency/mocks"
	"github.com/jekabolt/academy-manager/internal/entity"
	gerr "github.com/jekabolt/academy-manager/internal/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 3, 1, 15, 0, 0, 0, time.UTC)

type fixedPrice string

func (fp fixedPrice) UnitPrice(context.Context) (decimal.Decimal, error) {
	return decimal.RequireFromString(string(fp)), nil
}

type fixture struct {
	rep     *mocks.Repository
	payment *mocks.Payment
	players *mocks.PendingPlayer
	m       *Matcher
}

func newFixture(t *testing.T, c *Config) *fixture {
	f := &fixture{
		rep:     mocks.NewRepository(t),
		payment: mocks.NewPayment(t),
		players: mocks.NewPendingPlayer(t),
	}
	f.rep.EXPECT().Now().Return(now).Maybe()
	f.rep.EXPECT().Payment().Return(f.payment).Maybe()
	f.rep.EXPECT().PendingPlayer().Return(f.players).Maybe()

	m, err := NewMatcher(c, f.rep, fixedPrice("80"))
	require.NoError(t, err)
	f.m = m
	return f
}

func player(id int, familyId int, age time.Duration) entity.PendingPlayer {
	pp := entity.PendingPlayer{Id: id, CreatedAt: now.Add(-age)}
	if familyId != 0 {
		pp.FamilyId = sql.NullInt32{Int32: int32(familyId), Valid: true}
	}
	return pp
}

func payment(id int, amount string) *entity.Payment {
	p := &entity.Payment{Id: id, CreatedAt: now}
	p.Amount = decimal.RequireFromString(amount)
	p.Method = entity.Transfer
	p.Status = entity.PaymentApproved
	return p
}

func familyOfThree() []entity.PendingPlayer {
	return []entity.PendingPlayer{
		player(3, 4, 10*time.Minute),
		player(2, 4, 11*time.Minute),
		player(1, 4, 12*time.Minute),
	}
}

func (f *fixture) expectCandidates(cs []entity.PendingPlayer, linked []int, paymentId int) {
	f.players.EXPECT().GetPendingPlayersCreatedBetween(mock.Anything, now.Add(-2*time.Hour), now).Return(cs, nil)
	f.payment.EXPECT().GetLinkedPendingPlayerIds(mock.Anything, paymentId).Return(linked, nil)
}

func TestMatchFamilyWithinTolerance(t *testing.T) {
	for _, amount := range []string{"240.00", "239.50", "241.00"} {
		t.Run(amount, func(t *testing.T) {
			f := newFixture(t, nil)
			p := payment(20, amount)

			f.payment.EXPECT().GetLatestUnlinkedPaymentByAmount(mock.Anything, mock.Anything).Return(p, nil)
			f.expectCandidates(familyOfThree(), nil, 20)
			f.payment.EXPECT().AddPaymentEvent(mock.Anything, 20, mock.MatchedBy(func(pe *entity.PaymentEventInsert) bool {
				return pe.Kind == entity.PaymentEventPendingPlayersLinked && pe.PendingPlayerIds == "1, 2, 3" && pe.Exact
			})).Return(nil)

			res, err := f.m.Match(context.Background(), &entity.ReconcileRequest{
				Amount: decimal.NewNullDecimal(decimal.RequireFromString(amount)),
			})
			require.NoError(t, err)
			assert.Equal(t, entity.ReconcileFamily, res.Strategy)
			assert.Equal(t, []int{1, 2, 3}, res.PendingPlayerIds)
			assert.True(t, res.Exact)
		})
	}
}

func TestMatchFamilyAmountMismatchFallsBackInexact(t *testing.T) {
	f := newFixture(t, nil)
	p := payment(20, "150.00")

	f.payment.EXPECT().GetLatestUnlinkedPaymentByAmount(mock.Anything, mock.Anything).Return(p, nil)
	f.expectCandidates(familyOfThree(), nil, 20)

	var notes string
	f.payment.EXPECT().AddPaymentEvent(mock.Anything, 20, mock.Anything).
		Run(func(_ context.Context, _ int, pe *entity.PaymentEventInsert) {
			notes = entity.AppendNote(notes, pe.NoteLines()...)
		}).Return(nil)

	res, err := f.m.Match(context.Background(), &entity.ReconcileRequest{
		Amount: decimal.NewNullDecimal(decimal.RequireFromString("150.00")),
	})
	require.NoError(t, err)
	assert.NotEqual(t, entity.ReconcileFamily, res.Strategy)
	assert.Equal(t, entity.ReconcileRecent, res.Strategy)
	assert.False(t, res.Exact)
	// round(150/80) = 2 most recent
	assert.Equal(t, []int{2, 3}, res.PendingPlayerIds)
	assert.Contains(t, notes, "Inexact")
	assert.Equal(t, []int{2, 3}, entity.ParsePendingPlayerIds(notes))
}

func TestMatchWithoutInexactFallbackIsNoop(t *testing.T) {
	c := DefaultConfig()
	c.AllowInexact = false
	f := newFixture(t, &c)
	p := payment(20, "150.00")

	f.payment.EXPECT().GetLatestUnlinkedPaymentByAmount(mock.Anything, mock.Anything).Return(p, nil)
	f.expectCandidates(familyOfThree(), nil, 20)

	res, err := f.m.Match(context.Background(), &entity.ReconcileRequest{
		Amount: decimal.NewNullDecimal(decimal.RequireFromString("150.00")),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ReconcileNone, res.Strategy)
	assert.NotEmpty(t, res.Diagnostic)
	f.payment.AssertNotCalled(t, "AddPaymentEvent", mock.Anything, mock.Anything, mock.Anything)
}

func TestMatchExcludesPlayersLinkedElsewhere(t *testing.T) {
	f := newFixture(t, nil)
	p := payment(20, "160.00")

	f.payment.EXPECT().GetPaymentByReference(mock.Anything, "TRX-7").Return(p, nil)
	f.expectCandidates(familyOfThree(), []int{2}, 20)
	f.payment.EXPECT().AddPaymentEvent(mock.Anything, 20, mock.MatchedBy(func(pe *entity.PaymentEventInsert) bool {
		return pe.PendingPlayerIds == "1, 3"
	})).Return(nil)

	res, err := f.m.Match(context.Background(), &entity.ReconcileRequest{Reference: "TRX-7"})
	require.NoError(t, err)
	assert.Equal(t, entity.ReconcileFamily, res.Strategy)
	assert.Equal(t, []int{1, 3}, res.PendingPlayerIds)
}

func TestMatchPrefersMostRecentFamilyGroup(t *testing.T) {
	f := newFixture(t, nil)
	p := payment(20, "160.00")

	cs := []entity.PendingPlayer{
		player(8, 6, 5*time.Minute),
		player(7, 6, 6*time.Minute),
		player(2, 5, 50*time.Minute),
		player(1, 5, 51*time.Minute),
	}
	f.payment.EXPECT().GetLatestUnlinkedPaymentByAmount(mock.Anything, mock.Anything).Return(p, nil)
	f.expectCandidates(cs, nil, 20)
	f.payment.EXPECT().AddPaymentEvent(mock.Anything, 20, mock.Anything).Return(nil)

	res, err := f.m.Match(context.Background(), &entity.ReconcileRequest{
		Amount: decimal.NewNullDecimal(decimal.NewFromInt(160)),
	})
	require.NoError(t, err)
	assert.Equal(t, []int{7, 8}, res.PendingPlayerIds)
}

func TestMatchIndividual(t *testing.T) {
	f := newFixture(t, nil)
	p := payment(20, "80.00")

	cs := []entity.PendingPlayer{
		player(9, 0, 3*time.Minute),
		player(3, 4, 10*time.Minute),
		player(2, 4, 11*time.Minute),
	}
	f.payment.EXPECT().GetPaymentByReference(mock.Anything, "TRX-8").Return(p, nil)
	f.expectCandidates(cs, nil, 20)
	f.payment.EXPECT().AddPaymentEvent(mock.Anything, 20, mock.MatchedBy(func(pe *entity.PaymentEventInsert) bool {
		return pe.PendingPlayerIds == "9" && pe.Exact
	})).Return(nil)

	res, err := f.m.Match(context.Background(), &entity.ReconcileRequest{Reference: "TRX-8"})
	require.NoError(t, err)
	assert.Equal(t, entity.ReconcileIndividual, res.Strategy)
	assert.Equal(t, []int{9}, res.PendingPlayerIds)
}

func TestMatchAlreadyLinkedStops(t *testing.T) {
	f := newFixture(t, nil)
	p := payment(20, "240.00")
	p.Notes = "Payment confirmed via card\nPending Player IDs: 1, 2, 3"

	f.payment.EXPECT().GetPaymentByReference(mock.Anything, "pi_123").Return(p, nil)

	res, err := f.m.Match(context.Background(), &entity.ReconcileRequest{Reference: "pi_123"})
	require.NoError(t, err)
	assert.Equal(t, entity.ReconcileAlreadyLinked, res.Strategy)
	assert.Equal(t, []int{1, 2, 3}, res.PendingPlayerIds)
	assert.False(t, res.Linked())
	f.players.AssertNotCalled(t, "GetPendingPlayersCreatedBetween", mock.Anything, mock.Anything, mock.Anything)
}

func TestMatchUnknownReferenceSynthesizesPayment(t *testing.T) {
	f := newFixture(t, nil)

	f.payment.EXPECT().GetPaymentByReference(mock.Anything, "YP-404").Return(nil, gerr.ErrNotFound)
	f.payment.EXPECT().AddPayment(mock.Anything, mock.MatchedBy(func(p *entity.PaymentInsert) bool {
		return p.Status == entity.PaymentApproved &&
			p.OperationReference.String == "YP-404" &&
			p.Method == entity.Yappy &&
			p.Amount.Equal(decimal.NewFromInt(160))
	}), mock.Anything).Return(44, nil)
	f.expectCandidates([]entity.PendingPlayer{player(2, 5, time.Minute), player(1, 5, 2*time.Minute)}, nil, 44)
	f.payment.EXPECT().AddPaymentEvent(mock.Anything, 44, mock.Anything).Return(nil)

	res, err := f.m.Match(context.Background(), &entity.ReconcileRequest{
		Reference: "YP-404",
		Amount:    decimal.NewNullDecimal(decimal.NewFromInt(160)),
		Method:    entity.Yappy,
	})
	require.NoError(t, err)
	assert.True(t, res.PaymentCreated)
	assert.Equal(t, 44, res.PaymentId)
	assert.Equal(t, entity.ReconcileFamily, res.Strategy)
}

func TestMatchAmountWithoutPaymentIsNoop(t *testing.T) {
	f := newFixture(t, nil)
	f.payment.EXPECT().GetLatestUnlinkedPaymentByAmount(mock.Anything, mock.Anything).Return(nil, gerr.ErrNotFound)

	res, err := f.m.Match(context.Background(), &entity.ReconcileRequest{
		Amount: decimal.NewNullDecimal(decimal.NewFromInt(80)),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ReconcileNone, res.Strategy)
	assert.Contains(t, res.Diagnostic, "80.00")
}

func TestMatchNoCandidates(t *testing.T) {
	f := newFixture(t, nil)
	p := payment(20, "80.00")

	f.payment.EXPECT().GetPaymentByReference(mock.Anything, "TRX-9").Return(p, nil)
	f.expectCandidates(nil, nil, 20)

	res, err := f.m.Match(context.Background(), &entity.ReconcileRequest{Reference: "TRX-9"})
	require.NoError(t, err)
	assert.Equal(t, entity.ReconcileNone, res.Strategy)
	assert.Empty(t, res.PendingPlayerIds)
}

func TestMatchSkipsPaymentsThatAreNotApproved(t *testing.T) {
	for _, status := range []entity.PaymentStatus{entity.PaymentRejected, entity.PaymentCancelled, entity.PaymentPending} {
		t.Run(string(status), func(t *testing.T) {
			f := newFixture(t, nil)
			p := payment(20, "240.00")
			p.Status = status

			f.payment.EXPECT().GetPaymentByReference(mock.Anything, "ORD-1").Return(p, nil)

			res, err := f.m.Match(context.Background(), &entity.ReconcileRequest{Reference: "ORD-1"})
			require.NoError(t, err)
			assert.Equal(t, entity.ReconcileNone, res.Strategy)
			assert.Empty(t, res.PendingPlayerIds)
			assert.Contains(t, res.Diagnostic, string(status))
			f.players.AssertNotCalled(t, "GetPendingPlayersCreatedBetween", mock.Anything, mock.Anything, mock.Anything)
			f.payment.AssertNotCalled(t, "AddPayment", mock.Anything, mock.Anything, mock.Anything)
			f.payment.AssertNotCalled(t, "AddPaymentEvent", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestMatchLinkedConcurrentlyReportsAlreadyLinked(t *testing.T) {
	f := newFixture(t, nil)
	p := payment(20, "240.00")

	f.payment.EXPECT().GetPaymentByReference(mock.Anything, "TRX-5").Return(p, nil)
	f.expectCandidates(familyOfThree(), nil, 20)
	f.payment.EXPECT().AddPaymentEvent(mock.Anything, 20, mock.Anything).
		Return(fmt.Errorf("payment 20: %w", gerr.ErrPaymentLinked))

	reloaded := payment(20, "240.00")
	reloaded.Notes = "Matched family 9 by amount 240.00\nPending Player IDs: 5, 6, 7"
	f.payment.EXPECT().GetPaymentById(mock.Anything, 20).Return(reloaded, nil)

	res, err := f.m.Match(context.Background(), &entity.ReconcileRequest{Reference: "TRX-5"})
	require.NoError(t, err)
	assert.Equal(t, entity.ReconcileAlreadyLinked, res.Strategy)
	assert.Equal(t, []int{5, 6, 7}, res.PendingPlayerIds)
	assert.False(t, res.Linked())
}

func TestMatchLooksBackFromRequestTime(t *testing.T) {
	f := newFixture(t, nil)
	p := payment(20, "80.00")
	p.CreatedAt = now.Add(-6 * time.Hour)

	f.payment.EXPECT().GetPaymentByReference(mock.Anything, "TRX-OLD").Return(p, nil)
	f.expectCandidates([]entity.PendingPlayer{player(9, 0, 30*time.Minute)}, nil, 20)
	f.payment.EXPECT().AddPaymentEvent(mock.Anything, 20, mock.Anything).Return(nil)

	res, err := f.m.Match(context.Background(), &entity.ReconcileRequest{Reference: "TRX-OLD"})
	require.NoError(t, err)
	assert.Equal(t, entity.ReconcileIndividual, res.Strategy)
	assert.Equal(t, []int{9}, res.PendingPlayerIds)
}

func TestMatchRequiresInput(t *testing.T) {
	f := newFixture(t, nil)
	_, err := f.m.Match(context.Background(), &entity.ReconcileRequest{})
	assert.ErrorIs(t, err, gerr.ErrValidation)
}

func TestRunOnce(t *testing.T) {
	f := newFixture(t, nil)
	linked := payment(20, "240.00")
	orphan := payment(21, "80.00")
	orphan.CreatedAt = now.Add(-5 * time.Hour)

	f.payment.EXPECT().GetUnlinkedApprovedPayments(mock.Anything, now.Add(-24*time.Hour), 50).
		Return([]entity.Payment{*linked, *orphan}, nil)
	f.expectCandidates(familyOfThree(), nil, 20)
	f.payment.EXPECT().AddPaymentEvent(mock.Anything, 20, mock.Anything).Return(nil)
	f.players.EXPECT().GetPendingPlayersCreatedBetween(mock.Anything, orphan.CreatedAt.Add(-2*time.Hour), orphan.CreatedAt).
		Return(nil, nil)
	f.payment.EXPECT().GetLinkedPendingPlayerIds(mock.Anything, 21).Return(nil, nil)

	n, err := f.m.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestExpectedCount(t *testing.T) {
	unit := decimal.NewFromInt(80)
	assert.Equal(t, 3, expectedCount(decimal.RequireFromString("239.50"), unit))
	assert.Equal(t, 2, expectedCount(decimal.RequireFromString("150"), unit))
	assert.Equal(t, 0, expectedCount(decimal.Zero, unit))
	assert.Equal(t, 0, expectedCount(decimal.NewFromInt(80), decimal.Zero))
}

func TestWorkerDisabledByDefault(t *testing.T) {
	f := newFixture(t, nil)
	w := NewWorker(f.m)
	require.NoError(t, w.Start(context.Background()))
	assert.Nil(t, w.stop)
	assert.NoError(t, w.Stop())
}
