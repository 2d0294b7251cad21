package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/MikeRez0/ypmarket/internal/adapter/auth"
	"github.com/MikeRez0/ypmarket/internal/adapter/config"
	"github.com/MikeRez0/ypmarket/internal/adapter/handler/http"
	"github.com/MikeRez0/ypmarket/internal/adapter/lock"
	"github.com/MikeRez0/ypmarket/internal/adapter/logger"
	"github.com/MikeRez0/ypmarket/internal/adapter/notify"
	"github.com/MikeRez0/ypmarket/internal/adapter/storage"
	"github.com/MikeRez0/ypmarket/internal/adapter/storage/memory"
	"github.com/MikeRez0/ypmarket/internal/adapter/storage/repository"
	"github.com/MikeRez0/ypmarket/internal/core/port"
	"github.com/MikeRez0/ypmarket/internal/core/service"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	// .env is optional; real environment variables win over it.
	_ = godotenv.Load()

	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		return
	}

	log, err := logger.NewLogger(conf.App)
	if err != nil {
		fmt.Printf("error creating log: %s", err)
		return
	}
	defer func() {
		_ = log.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo, closeRepo, err := newRepository(ctx, conf.Database, log)
	if err != nil {
		log.Error("repository creating error", zap.Error(err))
		return
	}
	defer closeRepo()

	locker, closeLocker, err := newLocker(ctx, conf.Redis, log)
	if err != nil {
		log.Error("locker creating error", zap.Error(err))
		return
	}
	defer closeLocker()

	publisher, closePublisher := newPublisher(conf, log)
	defer closePublisher()

	dispatcher, err := notify.NewDispatcher(conf.Dispatcher, repo, publisher, log.Named("Dispatcher"))
	if err != nil {
		log.Error("dispatcher creating error", zap.Error(err))
		return
	}
	dispatcher.Start(ctx)
	if err := dispatcher.Recall(ctx); err != nil {
		log.Error("notification recall error", zap.Error(err))
	}

	tokenService, err := newTokenService(conf, os.Stderr)
	if err != nil {
		log.Error("token service creating error", zap.Error(err))
		return
	}

	svc, err := service.NewService(repo, notify.NewOutbox(repo, dispatcher), locker, log.Named("Service"))
	if err != nil {
		log.Error("service creating error", zap.Error(err))
		return
	}

	orderHandler, err := http.NewOrderHandler(svc, log.Named("Order handler"))
	if err != nil {
		log.Error("order handler creating error", zap.Error(err))
		return
	}
	vendorHandler, err := http.NewVendorHandler(svc, log.Named("Vendor handler"))
	if err != nil {
		log.Error("vendor handler creating error", zap.Error(err))
		return
	}

	r, err := http.NewRouter(conf.HTTP, tokenService, orderHandler, vendorHandler, log.Named("Router"))
	if err != nil {
		log.Error("router creating error", zap.Error(err))
		return
	}

	err = r.Serve(ctx, conf.HTTP.HostString)
	if err != nil {
		log.Error("router serve error", zap.Error(err))
	}

	stop()
	dispatcher.Wait()
}

func newRepository(ctx context.Context, conf *config.Database,
	log *zap.Logger) (port.Repository, func(), error) {
	if conf.DSN == "" {
		log.Warn("no database configured, using in-memory storage")
		return memory.NewRepository(), func() {}, nil
	}

	db, err := storage.NewDBStorage(ctx, conf)
	if err != nil {
		return nil, nil, fmt.Errorf("database error: %w", err)
	}
	err = db.RunMigrations()
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("database migration error: %w", err)
	}

	repo, err := repository.NewRepository(db)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	return repo, db.Close, nil
}

func newLocker(ctx context.Context, conf *config.Redis, log *zap.Logger) (port.Locker, func(), error) {
	if conf.Addr == "" {
		return lock.NewLocalLocker(), func() {}, nil
	}

	rdb := redis.NewClient(&redis.Options{Addr: conf.Addr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, nil, fmt.Errorf("redis ping: %w", err)
	}
	return lock.NewRedisLocker(rdb, conf.LockTTL, log.Named("Locker")), func() { _ = rdb.Close() }, nil
}

func newPublisher(conf *config.Config, log *zap.Logger) (port.NotificationPublisher, func()) {
	switch {
	case len(conf.Kafka.Brokers) > 0:
		p := notify.NewKafkaPublisher(conf.Kafka, conf.App.Name)
		return p, func() {
			if err := p.Close(); err != nil {
				log.Error("kafka writer close", zap.Error(err))
			}
		}
	case conf.Webhook.URL != "":
		return notify.NewWebhookPublisher(conf.Webhook), func() {}
	default:
		return notify.NewLogPublisher(log.Named("Notifications")), func() {}
	}
}

// newTokenService requires a configured key in production. In development
// a random key is generated and written to w, never to the log.
func newTokenService(conf *config.Config, w io.Writer) (*auth.PasetoToken, error) {
	if conf.Auth.TokenKey == "" && conf.App.Mode != config.AppModeDevelop {
		return nil, errors.New("TOKEN_KEY is required outside DEV mode")
	}

	ts, err := auth.New(conf.Auth.TokenKey)
	if err != nil {
		return nil, err
	}
	if conf.Auth.TokenKey == "" {
		fmt.Fprintf(w, "no token key configured, generated one for this run: %s\n", ts.ExportKey())
	}
	return ts, nil
}
