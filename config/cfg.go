package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	httpapi "github.com/jekabolt/academy-manager/internal/api/http"
	"github.com/jekabolt/academy-manager/internal/auth/jwt"
	"github.com/jekabolt/academy-manager/internal/checkout"
	"github.com/jekabolt/academy-manager/internal/enrollment"
	"github.com/jekabolt/academy-manager/internal/mail"
	"github.com/jekabolt/academy-manager/internal/mailhook"
	"github.com/jekabolt/academy-manager/internal/payment/stripe"
	"github.com/jekabolt/academy-manager/internal/payment/yappy"
	"github.com/jekabolt/academy-manager/internal/ratelimit"
	"github.com/jekabolt/academy-manager/internal/reconcile"
	"github.com/jekabolt/academy-manager/internal/store"
	"github.com/jekabolt/academy-manager/log"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config represents the global configuration for the service.
type Config struct {
	DB            store.Config         `mapstructure:"mysql"`
	Logger        log.Config           `mapstructure:"logger"`
	HTTP          httpapi.Config       `mapstructure:"http"`
	Auth          jwt.Config           `mapstructure:"auth"`
	Redis         checkout.RedisConfig `mapstructure:"redis"`
	Mailer        mail.Config          `mapstructure:"mailer"`
	MailWebhook   mailhook.Config      `mapstructure:"mail_webhook"`
	Enrollment    enrollment.Config    `mapstructure:"enrollment"`
	Reconcile     reconcile.Config     `mapstructure:"reconcile"`
	StripePayment stripe.Config        `mapstructure:"stripe_payment"`
	Yappy         yappy.Config         `mapstructure:"yappy"`
	RateLimit     ratelimit.Config     `mapstructure:"rate_limit"`
}

// LoadConfig loads the configuration from a file and/or environment variables.
// Environment variables take precedence over config file values.
// Nested config keys use double underscore, e.g., MYSQL__DSN for mysql.dsn
func LoadConfig(cfgFile string) (*Config, error) {
	// .env is optional; real environment variables win over it
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %v", err)
	}

	v := viper.New()
	v.SetConfigType("toml")

	v.AutomaticEnv()
	// e.g., mysql.dsn -> MYSQL__DSN, auth.jwt_secret -> AUTH__JWT_SECRET
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "__", "-", "__"))

	setDefaults(v)
	bindEnvVars(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %v", err)
			}
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/config/academy-manager")
		v.AddConfigPath("/etc/academy-manager")
		// Try to read config, but don't fail if it doesn't exist
		_ = v.ReadInConfig()
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config into struct: %v", err)
	}

	// Build the DSN from MYSQL_* parts when it is not set directly
	if config.DB.DSN == "" {
		config.DB.DSN = dsnFromEnv()
	}

	return &config, nil
}

func dsnFromEnv() string {
	host := os.Getenv("MYSQL_HOST")
	if host == "" {
		return ""
	}
	port := os.Getenv("MYSQL_PORT")
	if port == "" {
		port = "3306"
	}
	user, password, database := os.Getenv("MYSQL_USER"), os.Getenv("MYSQL_PASSWORD"), os.Getenv("MYSQL_DATABASE")
	if user == "" || password == "" || database == "" {
		return ""
	}
	params := "charset=utf8mb4&parseTime=true&loc=UTC"
	if os.Getenv("MYSQL_TLS_CA_PATH") != "" {
		params += "&tls=custom"
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, password, host, port, database, params)
}

func setDefaults(v *viper.Viper) {
	ed := enrollment.DefaultConfig()
	v.SetDefault("enrollment.unit_price", ed.UnitPrice)
	v.SetDefault("enrollment.checkout_ttl", ed.CheckoutTTL)

	rd := reconcile.DefaultConfig()
	v.SetDefault("reconcile.window", rd.Window)
	v.SetDefault("reconcile.tolerance", rd.Tolerance)
	v.SetDefault("reconcile.allow_inexact", rd.AllowInexact)
	v.SetDefault("reconcile.lookback", rd.Lookback)
	v.SetDefault("reconcile.batch_size", rd.BatchSize)

	ld := ratelimit.DefaultConfig()
	v.SetDefault("rate_limit.checkout_per_ip_hour", ld.CheckoutPerIPHour)
	v.SetDefault("rate_limit.checkout_per_email_hour", ld.CheckoutPerEmailHour)
	v.SetDefault("rate_limit.enrollment_per_ip_hour", ld.EnrollmentPerIPHour)

	v.SetDefault("logger.level", 0)
	v.SetDefault("http.port", "8081")
	v.SetDefault("redis.address", "localhost:6379")
	v.SetDefault("mailer.provider", mail.ProviderSendgrid)
	v.SetDefault("mailer.daily_cap", 300)
	v.SetDefault("mailer.timezone", "America/Panama")
	v.SetDefault("mail_webhook.signature_header", mailhook.DefaultSignatureHeader)
	v.SetDefault("auth.jwt_ttl", "24h")
}

// bindEnvVars binds environment variables to config keys
// This allows using both nested keys (MYSQL__DSN) and flat keys (MYSQL_DSN)
func bindEnvVars(v *viper.Viper) {
	// MySQL
	v.BindEnv("mysql.dsn", "MYSQL_DSN")
	v.BindEnv("mysql.automigrate", "MYSQL_AUTOMIGRATE")
	v.BindEnv("mysql.max_open_connections", "MYSQL_MAX_OPEN_CONNECTIONS")
	v.BindEnv("mysql.max_idle_connections", "MYSQL_MAX_IDLE_CONNECTIONS")
	v.BindEnv("mysql.tls_ca_path", "MYSQL_TLS_CA_PATH")

	// Logger
	v.BindEnv("logger.level", "LOG_LEVEL")
	v.BindEnv("logger.add_source", "LOG_ADD_SOURCE")

	// HTTP
	v.BindEnv("http.port", "HTTP_PORT", "PORT")
	v.BindEnv("http.address", "HTTP_ADDRESS")
	v.BindEnv("http.allowed_origins", "HTTP_ALLOWED_ORIGINS")
	v.BindEnv("http.success_url", "HTTP_SUCCESS_URL")
	v.BindEnv("http.failure_url", "HTTP_FAILURE_URL")
	v.BindEnv("http.request_timeout", "HTTP_REQUEST_TIMEOUT")

	// Auth
	v.BindEnv("auth.jwt_secret", "AUTH_JWT_SECRET")
	v.BindEnv("auth.jwt_ttl", "AUTH_JWT_TTL")

	// Redis
	v.BindEnv("redis.address", "REDIS_ADDRESS")
	v.BindEnv("redis.password", "REDIS_PASSWORD")
	v.BindEnv("redis.db", "REDIS_DB")

	// Mailer
	v.BindEnv("mailer.provider", "MAILER_PROVIDER")
	v.BindEnv("mailer.sendgrid_api_key", "MAILER_SENDGRID_API_KEY")
	v.BindEnv("mailer.ses_region", "MAILER_SES_REGION", "AWS_REGION")
	v.BindEnv("mailer.from_email", "MAILER_FROM_EMAIL")
	v.BindEnv("mailer.from_email_name", "MAILER_FROM_EMAIL_NAME")
	v.BindEnv("mailer.reply_to", "MAILER_REPLY_TO")
	v.BindEnv("mailer.academy_name", "MAILER_ACADEMY_NAME")
	v.BindEnv("mailer.daily_cap", "MAILER_DAILY_CAP")
	v.BindEnv("mailer.timezone", "MAILER_TIMEZONE")
	v.BindEnv("mailer.worker_interval", "MAILER_WORKER_INTERVAL")

	// Mail webhook
	v.BindEnv("mail_webhook.secret", "MAIL_WEBHOOK_SECRET")
	v.BindEnv("mail_webhook.signature_header", "MAIL_WEBHOOK_SIGNATURE_HEADER")

	// Enrollment
	v.BindEnv("enrollment.unit_price", "ENROLLMENT_UNIT_PRICE")
	v.BindEnv("enrollment.checkout_ttl", "ENROLLMENT_CHECKOUT_TTL")

	// Reconcile
	v.BindEnv("reconcile.window", "RECONCILE_WINDOW")
	v.BindEnv("reconcile.tolerance", "RECONCILE_TOLERANCE")
	v.BindEnv("reconcile.allow_inexact", "RECONCILE_ALLOW_INEXACT")
	v.BindEnv("reconcile.worker_interval", "RECONCILE_WORKER_INTERVAL")
	v.BindEnv("reconcile.lookback", "RECONCILE_LOOKBACK")
	v.BindEnv("reconcile.batch_size", "RECONCILE_BATCH_SIZE")

	// Stripe Payment
	v.BindEnv("stripe_payment.secret_key", "STRIPE_PAYMENT_SECRET_KEY")
	v.BindEnv("stripe_payment.pub_key", "STRIPE_PAYMENT_PUB_KEY")
	v.BindEnv("stripe_payment.currency", "STRIPE_PAYMENT_CURRENCY")
	v.BindEnv("stripe_payment.callback_url", "STRIPE_PAYMENT_CALLBACK_URL")
	v.BindEnv("stripe_payment.cancel_url", "STRIPE_PAYMENT_CANCEL_URL")

	// Yappy
	v.BindEnv("yappy.base_url", "YAPPY_BASE_URL")
	v.BindEnv("yappy.merchant_id", "YAPPY_MERCHANT_ID")
	v.BindEnv("yappy.secret_key", "YAPPY_SECRET_KEY")
	v.BindEnv("yappy.domain", "YAPPY_DOMAIN")
	v.BindEnv("yappy.checkout_url", "YAPPY_CHECKOUT_URL")
	v.BindEnv("yappy.ipn_url", "YAPPY_IPN_URL")
	v.BindEnv("yappy.timeout", "YAPPY_TIMEOUT")

	// Rate limit
	v.BindEnv("rate_limit.checkout_per_ip_hour", "RATE_LIMIT_CHECKOUT_PER_IP_HOUR")
	v.BindEnv("rate_limit.checkout_per_email_hour", "RATE_LIMIT_CHECKOUT_PER_EMAIL_HOUR")
	v.BindEnv("rate_limit.enrollment_per_ip_hour", "RATE_LIMIT_ENROLLMENT_PER_IP_HOUR")
}
