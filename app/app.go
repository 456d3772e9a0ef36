package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jekabolt/academy-manager/config"
	httpapi "github.com/jekabolt/academy-manager/internal/api/http"
	"github.com/jekabolt/academy-manager/internal/auth/jwt"
	"github.com/jekabolt/academy-manager/internal/checkout"
	"github.com/jekabolt/academy-manager/internal/dependency"
	"github.com/jekabolt/academy-manager/internal/enrollment"
	"github.com/jekabolt/academy-manager/internal/mail"
	"github.com/jekabolt/academy-manager/internal/mailhook"
	"github.com/jekabolt/academy-manager/internal/payment/stripe"
	"github.com/jekabolt/academy-manager/internal/payment/yappy"
	"github.com/jekabolt/academy-manager/internal/ratelimit"
	"github.com/jekabolt/academy-manager/internal/reconcile"
	"github.com/jekabolt/academy-manager/internal/store"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 15 * time.Second

// App is the main application
type App struct {
	c        *config.Config
	db       *store.MYSQLStore
	rdb      *redis.Client
	mailer   dependency.Mailer
	reconWkr *reconcile.Worker
	limiter  *ratelimit.MultiKeyLimiter
	hs       *httpapi.Server
	stopOnce sync.Once
	done     chan struct{}
}

// New returns a new instance of App
func New(c *config.Config) *App {
	return &App{
		c:    c,
		done: make(chan struct{}),
	}
}

// Start starts the app. Whatever was opened is released when a step fails.
func (a *App) Start(ctx context.Context) error {
	if err := a.start(ctx); err != nil {
		a.Stop(context.WithoutCancel(ctx))
		return err
	}
	return nil
}

func (a *App) start(ctx context.Context) error {
	var err error
	slog.Default().InfoContext(ctx, "starting academy manager")

	a.db, err = store.New(ctx, a.c.DB)
	if err != nil {
		slog.Default().ErrorContext(ctx, "couldn't connect to mysql",
			slog.String("err", err.Error()),
		)
		return err
	}

	a.rdb = checkout.NewRedis(&a.c.Redis)
	checkouts := checkout.New(a.rdb, a.c.Enrollment.CheckoutTTL)
	if err := checkouts.Ping(ctx); err != nil {
		slog.Default().ErrorContext(ctx, "couldn't connect to redis",
			slog.String("err", err.Error()),
		)
		return err
	}

	sender, err := mail.NewSender(ctx, &a.c.Mailer)
	if err != nil {
		return fmt.Errorf("can't create mail sender: %w", err)
	}
	mailer, err := mail.New(&a.c.Mailer, sender, a.db.Mail())
	if err != nil {
		return fmt.Errorf("can't create mailer: %w", err)
	}

	orchestrator, err := enrollment.New(&a.c.Enrollment, a.db)
	if err != nil {
		return fmt.Errorf("can't create enrollment orchestrator: %w", err)
	}
	matcher, err := reconcile.NewMatcher(&a.c.Reconcile, a.db, orchestrator)
	if err != nil {
		return fmt.Errorf("can't create matcher: %w", err)
	}

	gateways, err := a.gateways()
	if err != nil {
		return err
	}

	jwtAuth, err := jwt.New(&a.c.Auth)
	if err != nil {
		return fmt.Errorf("can't create jwt auth: %w", err)
	}

	if err := mailer.Start(ctx); err != nil {
		return fmt.Errorf("can't start mailer: %w", err)
	}
	a.mailer = mailer
	reconWkr := reconcile.NewWorker(matcher)
	if err := reconWkr.Start(ctx); err != nil {
		return fmt.Errorf("can't start reconcile worker: %w", err)
	}
	a.reconWkr = reconWkr

	a.limiter = ratelimit.NewMultiKeyLimiter(a.c.RateLimit)
	hs := httpapi.New(&a.c.HTTP, &httpapi.Deps{
		Repository:  a.db,
		Enroller:    orchestrator,
		Matcher:     matcher,
		Mailer:      mailer,
		MailWebhook: mailhook.New(&a.c.MailWebhook, a.db.Mail()),
		Checkouts:   checkouts,
		Gateways:    gateways,
		Limiter:     a.limiter,
		JWTAuth:     jwtAuth,
	})
	if err = hs.Start(ctx); err != nil {
		slog.Default().ErrorContext(ctx, "cannot start http server",
			slog.String("err", err.Error()),
		)
		return err
	}
	a.hs = hs

	go func() {
		<-a.hs.Done()
		a.Stop(context.WithoutCancel(ctx))
	}()

	return nil
}

// gateways returns every configured payment gateway.
func (a *App) gateways() ([]dependency.Gateway, error) {
	gs := []dependency.Gateway{}
	if a.c.StripePayment.SecretKey != "" {
		g, err := stripe.New(&a.c.StripePayment)
		if err != nil {
			return nil, fmt.Errorf("can't create stripe gateway: %w", err)
		}
		gs = append(gs, g)
	}
	if a.c.Yappy.MerchantId != "" {
		g, err := yappy.New(&a.c.Yappy)
		if err != nil {
			return nil, fmt.Errorf("can't create yappy gateway: %w", err)
		}
		gs = append(gs, g)
	}
	if len(gs) == 0 {
		slog.Default().Warn("no payment gateway configured, only offline enrollment is available")
	}
	return gs, nil
}

// Stop stops the application and waits for all services to exit
func (a *App) Stop(ctx context.Context) {
	a.stopOnce.Do(func() { a.stop(ctx) })
}

func (a *App) stop(ctx context.Context) {
	defer close(a.done)

	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	var g errgroup.Group
	if a.hs != nil {
		g.Go(func() error { return a.hs.Stop(ctx) })
	}
	if a.mailer != nil {
		g.Go(a.mailer.Stop)
	}
	if a.reconWkr != nil {
		g.Go(a.reconWkr.Stop)
	}
	if err := g.Wait(); err != nil {
		slog.Default().ErrorContext(ctx, "error while stopping services",
			slog.String("err", err.Error()),
		)
	}

	if a.limiter != nil {
		a.limiter.Stop()
	}
	if a.rdb != nil {
		a.rdb.Close()
	}
	if a.db != nil {
		a.db.Close()
	}
}

// Done returns a channel that is closed after the application has exited
func (a *App) Done() chan struct{} {
	return a.done
}
