package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/jekabolt/academy-manager/config"
	"github.com/jekabolt/academy-manager/internal/auth/jwt"
	"github.com/jekabolt/academy-manager/internal/dependency"
	"github.com/jekabolt/academy-manager/internal/dto"
	"github.com/jekabolt/academy-manager/internal/enrollment"
	"github.com/jekabolt/academy-manager/internal/entity"
	"github.com/jekabolt/academy-manager/internal/mail"
	"github.com/jekabolt/academy-manager/internal/reconcile"
	"github.com/jekabolt/academy-manager/internal/store"
	"github.com/spf13/cobra"
)

var (
	mailCmd = &cobra.Command{
		Use:   "mail",
		Short: "Email queue maintenance",
	}

	mailProcessCmd = &cobra.Command{
		Use:   "process",
		Short: "Send pending emails up to the remaining daily cap",
		RunE:  mailProcess,
	}

	mailStatsCmd = &cobra.Command{
		Use:   "stats",
		Short: "Print daily cap usage and pending backlog",
		RunE:  mailStats,
	}

	reconcileCmd = &cobra.Command{
		Use:   "reconcile",
		Short: "Link a payment by reference or amount, or retry every unlinked payment",
		RunE:  reconcileRun,
	}

	migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE:  migrateRun,
	}

	tokenCmd = &cobra.Command{
		Use:   "token",
		Short: "Mint an admin api token",
		RunE:  tokenRun,
	}

	reconcileReference string
	reconcileAmount    string
	reconcileMethod    string
	tokenSubject       string
	tokenTTL           time.Duration
)

func init() {
	mailCmd.AddCommand(mailProcessCmd, mailStatsCmd)

	reconcileCmd.Flags().StringVar(&reconcileReference, "reference", "", "operation reference to match")
	reconcileCmd.Flags().StringVar(&reconcileAmount, "amount", "", "payment amount")
	reconcileCmd.Flags().StringVar(&reconcileMethod, "method", "", "payment method (cash, transfer, yappy, card)")

	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "admin", "token subject recorded in audit logs")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 0, "token lifetime (defaults to auth.jwt_ttl)")
}

func openStore(ctx context.Context, cfg *config.Config) (*store.MYSQLStore, error) {
	db, err := store.New(ctx, cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("couldn't connect to mysql: %w", err)
	}
	return db, nil
}

func newMailer(ctx context.Context, cfg *config.Config, db *store.MYSQLStore) (dependency.Mailer, error) {
	sender, err := mail.NewSender(ctx, &cfg.Mailer)
	if err != nil {
		return nil, err
	}
	return mail.New(&cfg.Mailer, sender, db.Mail())
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func mailProcess(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	db, err := openStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	m, err := newMailer(cmd.Context(), cfg, db)
	if err != nil {
		return err
	}
	res, err := m.ProcessQueue(cmd.Context())
	if err != nil {
		return err
	}
	return printJSON(res)
}

func mailStats(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	db, err := openStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	m, err := newMailer(cmd.Context(), cfg, db)
	if err != nil {
		return err
	}
	st, err := m.Stats(cmd.Context())
	if err != nil {
		return err
	}
	return printJSON(st)
}

func reconcileRun(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	db, err := openStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	orchestrator, err := enrollment.New(&cfg.Enrollment, db)
	if err != nil {
		return err
	}
	matcher, err := reconcile.NewMatcher(&cfg.Reconcile, db, orchestrator)
	if err != nil {
		return err
	}

	if reconcileReference == "" && reconcileAmount == "" {
		linked, err := matcher.RunOnce(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(map[string]int{"linked": linked})
	}

	req, err := dto.ConvertToEntityReconcileRequest(&dto.ReconcileRequest{
		Reference: reconcileReference,
		Amount:    reconcileAmount,
		Method:    entity.PaymentMethod(reconcileMethod),
	})
	if err != nil {
		return err
	}
	res, err := matcher.Match(cmd.Context(), req)
	if err != nil {
		return err
	}
	return printJSON(res)
}

func migrateRun(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	cfg.DB.Automigrate = true
	db, err := openStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	db.Close()
	logger.Info("migrations applied")
	return nil
}

func tokenRun(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	jwtAuth, err := jwt.New(&cfg.Auth)
	if err != nil {
		return err
	}
	ttl := tokenTTL
	if ttl <= 0 {
		ttl = cfg.Auth.JWTTTL
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	token, err := jwt.NewTokenWithSubject(jwtAuth, ttl, tokenSubject)
	if err != nil {
		return fmt.Errorf("can't mint token: %w", err)
	}
	fmt.Println(token)
	return nil
}
