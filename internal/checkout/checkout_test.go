package checkout

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/jekabolt/academy-manager/internal/entity"
	gerr "github.com/jekabolt/academy-manager/internal/errors"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return New(rdb, 2*time.Hour), mr
}

func testCheckout() *entity.Checkout {
	return &entity.Checkout{
		Method: entity.Yappy,
		Amount: decimal.RequireFromString("260.00"),
		Form: entity.EnrollmentForm{
			Tutor: entity.Tutor{Name: "María Pérez", Cedula: "8-123-456", Email: "maria@example.com"},
			Players: []entity.PlayerForm{
				{FirstName: "Luis", LastName: "Pérez", BirthDate: "2015-04-02", Category: "U10"},
				{FirstName: "Ana", LastName: "Pérez", BirthDate: "2017-09-12", Category: "U8"},
			},
		},
	}
}

func TestPutGetDelete(t *testing.T) {
	ctx := context.Background()
	s, mr := newTestStore(t)

	token, err := s.Put(ctx, testCheckout())
	require.NoError(t, err)
	assert.Len(t, token, tokenLength)
	assert.Equal(t, 2*time.Hour, mr.TTL(keyPrefix+token))

	c, err := s.Get(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, token, c.Token)
	assert.Equal(t, entity.Yappy, c.Method)
	assert.True(t, c.Amount.Equal(decimal.RequireFromString("260")))
	assert.Equal(t, "8-123-456", c.Form.Tutor.Cedula)
	assert.Len(t, c.Form.Players, 2)
	assert.False(t, c.CreatedAt.IsZero())

	require.NoError(t, s.Delete(ctx, token))
	_, err = s.Get(ctx, token)
	assert.ErrorIs(t, err, gerr.ErrCheckoutNotFound)
}

func TestGetExpired(t *testing.T) {
	ctx := context.Background()
	s, mr := newTestStore(t)

	token, err := s.Put(ctx, testCheckout())
	require.NoError(t, err)

	mr.FastForward(2*time.Hour + time.Second)
	_, err = s.Get(ctx, token)
	assert.ErrorIs(t, err, gerr.ErrCheckoutNotFound)
}

func TestGetUnknownAndEmptyToken(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	_, err := s.Get(ctx, "NOPE")
	assert.ErrorIs(t, err, gerr.ErrCheckoutNotFound)
	_, err = s.Get(ctx, "")
	assert.ErrorIs(t, err, gerr.ErrCheckoutNotFound)
}

func TestPutKeepsGivenToken(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	c := testCheckout()
	c.Token = "FIXED"
	token, err := s.Put(ctx, c)
	require.NoError(t, err)
	assert.Equal(t, "FIXED", token)
}

func TestNewTokenUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		tok := NewToken()
		assert.Len(t, tok, tokenLength)
		assert.False(t, seen[tok])
		seen[tok] = true
	}
}

func TestPing(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.Ping(context.Background()))
}
