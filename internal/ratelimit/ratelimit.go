package ratelimit

import (
	"fmt"
	"strings"
	"sync"
	"time"

	gerr "github.com/jekabolt/academy-manager/internal/errors"
)

// Limiter implements a simple in-memory fixed window rate limiter
type Limiter struct {
	mu       sync.Mutex
	counters map[string]*counter
	window   time.Duration
	max      int
	now      func() time.Time
}

type counter struct {
	count     int
	expiresAt time.Time
}

// NewLimiter creates a new rate limiter with the specified window and max requests
func NewLimiter(window time.Duration, max int) *Limiter {
	return &Limiter{
		counters: make(map[string]*counter),
		window:   window,
		max:      max,
		now:      time.Now,
	}
}

// Allow checks if a request for the given key is allowed
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	c, exists := l.counters[key]

	if !exists || now.After(c.expiresAt) {
		l.counters[key] = &counter{
			count:     1,
			expiresAt: now.Add(l.window),
		}
		return true
	}

	if c.count >= l.max {
		return false
	}

	c.count++
	return true
}

// GetRemaining returns the number of remaining requests for the given key
func (l *Limiter) GetRemaining(key string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	c, exists := l.counters[key]
	if !exists || l.now().After(c.expiresAt) {
		return l.max
	}

	return max(l.max-c.count, 0)
}

// sweep removes expired counters
func (l *Limiter) sweep() {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	for key, c := range l.counters {
		if now.After(c.expiresAt) {
			delete(l.counters, key)
		}
	}
}

type Config struct {
	CheckoutPerIPHour    int `mapstructure:"checkout_per_ip_hour"`
	CheckoutPerEmailHour int `mapstructure:"checkout_per_email_hour"`
	EnrollmentPerIPHour  int `mapstructure:"enrollment_per_ip_hour"`
}

// DefaultConfig is used for zero values.
func DefaultConfig() Config {
	return Config{
		CheckoutPerIPHour:    30,
		CheckoutPerEmailHour: 10,
		EnrollmentPerIPHour:  20,
	}
}

// MultiKeyLimiter guards the public enrollment endpoints by ip and tutor email.
type MultiKeyLimiter struct {
	limiters map[string]*Limiter
	stop     chan struct{}
	once     sync.Once
}

const (
	keyIPCheckout    = "ip_checkout"
	keyEmailCheckout = "email_checkout"
	keyIPEnrollment  = "ip_enrollment"
)

func NewMultiKeyLimiter(c Config) *MultiKeyLimiter {
	d := DefaultConfig()
	if c.CheckoutPerIPHour <= 0 {
		c.CheckoutPerIPHour = d.CheckoutPerIPHour
	}
	if c.CheckoutPerEmailHour <= 0 {
		c.CheckoutPerEmailHour = d.CheckoutPerEmailHour
	}
	if c.EnrollmentPerIPHour <= 0 {
		c.EnrollmentPerIPHour = d.EnrollmentPerIPHour
	}
	m := &MultiKeyLimiter{
		limiters: map[string]*Limiter{
			keyIPCheckout:    NewLimiter(time.Hour, c.CheckoutPerIPHour),
			keyEmailCheckout: NewLimiter(time.Hour, c.CheckoutPerEmailHour),
			keyIPEnrollment:  NewLimiter(time.Hour, c.EnrollmentPerIPHour),
		},
		stop: make(chan struct{}),
	}
	go m.cleanup()
	return m
}

// Stop ends the cleanup loop.
func (m *MultiKeyLimiter) Stop() {
	m.once.Do(func() { close(m.stop) })
}

func (m *MultiKeyLimiter) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-m.stop:
			return
		case <-ticker.C:
			for _, l := range m.limiters {
				l.sweep()
			}
		}
	}
}

// CheckCheckout verifies a payment link can be created for ip and tutor email.
func (m *MultiKeyLimiter) CheckCheckout(ip, email string) error {
	if !m.limiters[keyIPCheckout].Allow(ip) {
		return fmt.Errorf("%w: too many checkouts from this IP address, please try again later", gerr.ErrTooManyRequests)
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if email != "" && !m.limiters[keyEmailCheckout].Allow(email) {
		return fmt.Errorf("%w: too many checkouts for this email address, please try again later", gerr.ErrTooManyRequests)
	}

	return nil
}

// CheckEnrollment verifies an offline enrollment can be submitted from ip.
func (m *MultiKeyLimiter) CheckEnrollment(ip string) error {
	if !m.limiters[keyIPEnrollment].Allow(ip) {
		return fmt.Errorf("%w: too many enrollments from this IP address, please try again later", gerr.ErrTooManyRequests)
	}
	return nil
}
