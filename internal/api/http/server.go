package httpapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jekabolt/academy-manager/internal/auth/jwt"
	"github.com/jekabolt/academy-manager/internal/dependency"
	"github.com/jekabolt/academy-manager/internal/entity"
	"github.com/jekabolt/academy-manager/internal/metrics"
	clientmw "github.com/jekabolt/academy-manager/internal/middleware"
	"github.com/jekabolt/academy-manager/internal/ratelimit"
	"github.com/jekabolt/academy-manager/log"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

const defaultRequestTimeout = 30 * time.Second

// Config is the configuration for the http server
type Config struct {
	Port           string   `mapstructure:"port"`
	Address        string   `mapstructure:"address"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	// SuccessURL and FailureURL receive the payer after a browser callback.
	SuccessURL     string        `mapstructure:"success_url"`
	FailureURL     string        `mapstructure:"failure_url"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// Deps are the services the http surface drives.
type Deps struct {
	Repository  dependency.Repository
	Enroller    dependency.Enroller
	Matcher     dependency.Matcher
	Mailer      dependency.Mailer
	MailWebhook dependency.MailWebhook
	Checkouts   dependency.CheckoutStore
	Gateways    []dependency.Gateway
	Limiter     *ratelimit.MultiKeyLimiter
	JWTAuth     *jwtauth.JWTAuth
}

// Server is the http server
type Server struct {
	c        *Config
	d        *Deps
	gateways map[entity.PaymentMethod]dependency.Gateway
	hs       *http.Server
	done     chan struct{}
}

// New creates a new server
func New(c *Config, d *Deps) *Server {
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = defaultRequestTimeout
	}
	gateways := make(map[entity.PaymentMethod]dependency.Gateway, len(d.Gateways))
	for _, g := range d.Gateways {
		gateways[g.Method()] = g
	}
	return &Server{
		c:        c,
		d:        d,
		gateways: gateways,
		done:     make(chan struct{}),
	}
}

// Done returns a channel that is closed when the http server exits
func (s *Server) Done() <-chan struct{} {
	return s.done
}

// Router builds the handler tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(clientmw.ClientIdentifier)
	r.Use(log.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.c.RequestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowOriginFunc: func(r *http.Request, origin string) bool {
			return isOriginAllowed(origin, s.c.AllowedOrigins)
		},
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", s.healthz)
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/enrollment/price", s.enrollmentPrice)
		r.Post("/enrollment/checkout", s.createCheckout)
		r.Post("/enrollment", s.registerEnrollment)

		r.Get("/payments/{method}/callback", s.paymentCallback)
		r.Post("/payments/{method}/callback", s.paymentCallback)

		r.Post("/webhooks/mail", s.mailWebhook)

		r.Route("/admin", func(r chi.Router) {
			r.Use(jwt.WithAuth(s.d.JWTAuth))
			r.Put("/enrollment/price", s.setEnrollmentPrice)
			r.Post("/reconcile", s.reconcile)
			r.Get("/payments/unlinked", s.unlinkedPayments)
			r.Post("/mail/process", s.processMail)
			r.Post("/mail/{id}/requeue", s.requeueMail)
			r.Get("/mail/stats", s.mailStats)
		})
	})

	return r
}

// Start starts the server
func (s *Server) Start(ctx context.Context) error {
	listenerAddr := fmt.Sprintf("%s:%s", s.c.Address, s.c.Port)
	s.hs = &http.Server{
		Addr:              listenerAddr,
		Handler:           h2c.NewHandler(s.Router(), &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		defer close(s.done)
		slog.Default().InfoContext(ctx, "academy-manager new listener",
			slog.String("addr", fmt.Sprintf("http://%v", listenerAddr)),
		)
		err := s.hs.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			slog.Default().InfoContext(ctx, "http server returned")
			return
		}
		slog.Default().ErrorContext(ctx, "http server exited with an error",
			slog.String("err", err.Error()),
		)
	}()

	return nil
}

// Stop shuts the server down gracefully
func (s *Server) Stop(ctx context.Context) error {
	if s.hs == nil {
		return nil
	}
	return s.hs.Shutdown(ctx)
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	status := map[string]string{"mysql": "ok", "redis": "ok"}
	code := http.StatusOK
	if err := s.d.Repository.Ping(r.Context()); err != nil {
		status["mysql"] = err.Error()
		code = http.StatusServiceUnavailable
	}
	if err := s.d.Checkouts.Ping(r.Context()); err != nil {
		status["redis"] = err.Error()
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, status)
}

func isOriginAllowed(origin string, allowedOrigins []string) bool {
	// Always allow localhost origins
	if strings.HasPrefix(origin, "http://localhost:") || strings.HasPrefix(origin, "https://localhost:") {
		return true
	}

	for _, allowedOrigin := range allowedOrigins {
		if origin == allowedOrigin {
			return true
		}
	}

	return false
}
