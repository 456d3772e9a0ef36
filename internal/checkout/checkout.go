package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jekabolt/academy-manager/internal/entity"
	gerr "github.com/jekabolt/academy-manager/internal/errors"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "academy:checkout:"
	// tokens double as Yappy order ids, which allow at most 15 characters
	tokenLength = 15
)

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// NewRedis creates a client for cfg.
func NewRedis(cfg *RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})
}

// Store buffers enrollment forms between payment link creation and the gateway callback.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
	now func() time.Time
}

func New(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{
		rdb: rdb,
		ttl: ttl,
		now: time.Now,
	}
}

// NewToken returns a fresh checkout token.
func NewToken() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:tokenLength]
}

// Put stores c under its token, generating one when empty.
func (s *Store) Put(ctx context.Context, c *entity.Checkout) (string, error) {
	if c.Token == "" {
		c.Token = NewToken()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = s.now().UTC()
	}
	b, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("can't marshal checkout: %w", err)
	}
	if err := s.rdb.Set(ctx, keyPrefix+c.Token, b, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("can't store checkout %s: %w", c.Token, err)
	}
	return c.Token, nil
}

// Get returns gerr.ErrCheckoutNotFound for unknown or expired tokens.
func (s *Store) Get(ctx context.Context, token string) (*entity.Checkout, error) {
	if token == "" {
		return nil, gerr.ErrCheckoutNotFound
	}
	b, err := s.rdb.Get(ctx, keyPrefix+token).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("checkout %s: %w", token, gerr.ErrCheckoutNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("can't get checkout %s: %w", token, err)
	}
	c := &entity.Checkout{}
	if err := json.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("can't unmarshal checkout %s: %w", token, err)
	}
	return c, nil
}

func (s *Store) Delete(ctx context.Context, token string) error {
	if err := s.rdb.Del(ctx, keyPrefix+token).Err(); err != nil {
		return fmt.Errorf("can't delete checkout %s: %w", token, err)
	}
	return nil
}

// Ping checks the redis connection.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}
