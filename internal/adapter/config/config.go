package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Database   *Database
	HTTP       *HTTP
	App        *App
	Auth       *Auth
	Redis      *Redis
	Kafka      *Kafka
	Webhook    *Webhook
	Dispatcher *Dispatcher
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

type App struct {
	LogLevel string `env:"LOG_LEVEL"`
	Mode     string `env:"APP_MODE"`
	Name     string `env:"APP_NAME"`
}

// Database with an empty DSN selects the in-memory store.
type Database struct {
	DSN      string `env:"DATABASE_URI"`
	MaxConns int32  `env:"DATABASE_MAX_CONNS"`
}

type HTTP struct {
	HostString string `env:"RUN_ADDRESS"`
	// CORSOrigins enables CORS for the listed origins; empty disables it.
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:","`
}

type Auth struct {
	// TokenKey is a hex encoded PASETO v4 symmetric key. A random key is
	// generated when empty, so issued tokens do not survive a restart.
	TokenKey string `env:"TOKEN_KEY"`
}

// Redis with an empty address selects the in-process order lock.
type Redis struct {
	Addr    string        `env:"REDIS_ADDR"`
	LockTTL time.Duration `env:"LOCK_TTL"`
}

type Kafka struct {
	Brokers []string `env:"KAFKA_BROKERS" envSeparator:","`
	Topic   string   `env:"KAFKA_TOPIC"`
}

type Webhook struct {
	URL     string        `env:"NOTIFY_WEBHOOK_URL"`
	Timeout time.Duration `env:"NOTIFY_WEBHOOK_TIMEOUT"`
}

type Dispatcher struct {
	Workers        int           `env:"DISPATCH_WORKERS"`
	QueueSize      int           `env:"DISPATCH_QUEUE_SIZE"`
	MaxAttempts    int           `env:"DISPATCH_MAX_ATTEMPTS"`
	BaseDelay      time.Duration `env:"DISPATCH_BASE_DELAY"`
	MaxDelay       time.Duration `env:"DISPATCH_MAX_DELAY"`
	RecallInterval time.Duration `env:"DISPATCH_RECALL_INTERVAL"`
	// Rate caps publishes per second across all workers, 0 means no cap.
	Rate float64 `env:"DISPATCH_RATE"`
}

func NewConfig() (*Config, error) {
	return parse(flag.CommandLine, os.Args[1:])
}

func parse(fs *flag.FlagSet, args []string) (*Config, error) {
	var db Database
	var http HTTP
	var app App
	var auth Auth
	var redis Redis
	var kafka Kafka
	var webhook Webhook
	var dispatcher Dispatcher

	fs.StringVar(&db.DSN, "d", "", "Database string")
	fs.StringVar(&http.HostString, "a", `localhost:8080`, "HTTP server endpoint")
	fs.StringVar(&app.LogLevel, "l", `error`, "Log level")
	fs.StringVar(&app.Mode, "m", `DEV`, "PROD / DEV")
	fs.StringVar(&app.Name, "n", `marketplace`, "Service name used as event producer")
	fs.StringVar(&auth.TokenKey, "k", "", "Token key (hex)")
	fs.StringVar(&redis.Addr, "redis", "", "Redis address for order locks")
	fs.DurationVar(&redis.LockTTL, "lock-ttl", 30*time.Second, "Order lock lease")
	fs.StringVar(&kafka.Topic, "topic", "vendor.notifications", "Kafka notification topic")
	fs.StringVar(&webhook.URL, "webhook", "", "Notification webhook URL")
	fs.DurationVar(&webhook.Timeout, "webhook-timeout", 5*time.Second, "Notification webhook timeout")
	fs.IntVar(&dispatcher.Workers, "workers", 4, "Notification dispatch workers")
	fs.IntVar(&dispatcher.QueueSize, "queue", 1024, "Notification queue size")
	fs.IntVar(&dispatcher.MaxAttempts, "attempts", 5, "Notification delivery attempts")
	fs.DurationVar(&dispatcher.BaseDelay, "retry-delay", time.Second, "First retry delay")
	fs.DurationVar(&dispatcher.MaxDelay, "retry-max-delay", time.Minute, "Retry delay cap")
	fs.DurationVar(&dispatcher.RecallInterval, "recall", time.Minute, "Undispatched notification recall interval")
	fs.Float64Var(&dispatcher.Rate, "rate", 0, "Notification publishes per second, 0 for unlimited")

	var brokers, origins string
	fs.StringVar(&brokers, "brokers", "", "Kafka brokers, comma separated")
	fs.StringVar(&origins, "cors", "", "Allowed CORS origins, comma separated")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}
	kafka.Brokers = splitList(brokers)
	http.CORSOrigins = splitList(origins)

	for name, section := range map[string]any{
		"database":   &db,
		"http":       &http,
		"app":        &app,
		"auth":       &auth,
		"redis":      &redis,
		"kafka":      &kafka,
		"webhook":    &webhook,
		"dispatcher": &dispatcher,
	} {
		if err := env.Parse(section); err != nil {
			return nil, fmt.Errorf("error parsing env %s config: %w", name, err)
		}
	}

	config := Config{
		Database:   &db,
		HTTP:       &http,
		App:        &app,
		Auth:       &auth,
		Redis:      &redis,
		Kafka:      &kafka,
		Webhook:    &webhook,
		Dispatcher: &dispatcher,
	}

	return &config, nil
}
