package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Cookie  CookieConfig
	Redis   RedisConfig
	Session SessionConfig
	Stripe  StripeConfig
	Mail    MailConfig
	Site    SiteConfig
	Migrate MigrateConfig
	Admin   AdminConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"10"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"8h"`
	Issuer   string        `envconfig:"JWT_ISSUER" default:"pta-storefront"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAMESITE" default:"Lax"`
}

type RedisConfig struct {
	URL string `envconfig:"REDIS_URL" default:"redis://localhost:6379/0"`
}

type SessionConfig struct {
	CookieName string        `envconfig:"SESSION_COOKIE_NAME" default:"pta_session"`
	TTL        time.Duration `envconfig:"SESSION_TTL" default:"24h"`
}

// Secret keys are not required at load time so that a misconfigured
// deployment still serves the cart. Checkout fails closed instead.
type StripeConfig struct {
	TestMode      bool          `envconfig:"STRIPE_TEST_MODE" default:"true"`
	TestSecretKey string        `envconfig:"STRIPE_TEST_SECRET_KEY"`
	LiveSecretKey string        `envconfig:"STRIPE_LIVE_SECRET_KEY"`
	WebhookSecret string        `envconfig:"STRIPE_WEBHOOK_SECRET"`
	Currency      string        `envconfig:"STRIPE_CURRENCY" default:"usd"`
	Timeout       time.Duration `envconfig:"STRIPE_TIMEOUT" default:"10s"`
	APIBase       string        `envconfig:"STRIPE_API_BASE"`
}

type MailConfig struct {
	Host     string        `envconfig:"SMTP_HOST" default:"localhost"`
	Port     string        `envconfig:"SMTP_PORT" default:"587"`
	Username string        `envconfig:"SMTP_USERNAME"`
	Password string        `envconfig:"SMTP_PASSWORD"`
	From     string        `envconfig:"MAIL_FROM" default:"no-reply@localhost"`
	PoolSize int           `envconfig:"MAIL_POOL_SIZE" default:"2"`
	Timeout  time.Duration `envconfig:"MAIL_TIMEOUT" default:"10s"`
}

type SiteConfig struct {
	Name string `envconfig:"SITE_NAME" default:"PTA"`
	URL  string `envconfig:"SITE_URL" required:"true"`
}

type MigrateConfig struct {
	OnStart bool `envconfig:"MIGRATE_ON_START" default:"true"`
}

// AdminConfig seeds the first staff account on start-up when both are set.
type AdminConfig struct {
	Email    string `envconfig:"ADMIN_EMAIL"`
	Password string `envconfig:"ADMIN_PASSWORD"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// BuildMigrateURL returns the DSN in the form the golang-migrate pgx/v5 driver expects.
func (c *DBConfig) BuildMigrateURL() string {
	return fmt.Sprintf(
		"pgx5://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func (c *StripeConfig) ActiveSecretKey() string {
	if c.TestMode {
		return c.TestSecretKey
	}
	return c.LiveSecretKey
}

func (c *MailConfig) Addr() string {
	return c.Host + ":" + c.Port
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 5,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: time.Hour,
			Issuer:   "pta-storefront-test",
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Redis: RedisConfig{
			URL: "redis://localhost:16379/0",
		},
		Session: SessionConfig{
			CookieName: "pta_session",
			TTL:        time.Hour,
		},
		Stripe: StripeConfig{
			TestMode:      true,
			TestSecretKey: "sk_test_dummy",
			WebhookSecret: "whsec_test_secret",
			Currency:      "usd",
			Timeout:       5 * time.Second,
		},
		Mail: MailConfig{
			Host:     "localhost",
			Port:     "1025",
			From:     "no-reply@example.com",
			PoolSize: 1,
			Timeout:  time.Second,
		},
		Site: SiteConfig{
			Name: "Test PTA",
			URL:  "http://localhost:8889",
		},
		Migrate: MigrateConfig{
			OnStart: false,
		},
	}
}
