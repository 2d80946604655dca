package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/SergeyBogomolovv/order-desk/internal/app"
	"github.com/SergeyBogomolovv/order-desk/internal/catalog"
	"github.com/SergeyBogomolovv/order-desk/internal/config"
	"github.com/SergeyBogomolovv/order-desk/internal/entities"
	"github.com/SergeyBogomolovv/order-desk/internal/handler"
	"github.com/SergeyBogomolovv/order-desk/internal/postal"
	"github.com/SergeyBogomolovv/order-desk/internal/pricing"
	"github.com/SergeyBogomolovv/order-desk/internal/service"
	"github.com/SergeyBogomolovv/order-desk/internal/submit"
	"github.com/SergeyBogomolovv/order-desk/pkg/cache"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	markup, err := decimal.NewFromString(conf.Pricing.Markup)
	panicIfErr("invalid pricing markup", err)
	fallback, err := decimal.NewFromString(conf.Pricing.FallbackMin)
	panicIfErr("invalid fallback minimum", err)
	deriver := pricing.NewDeriver(markup, fallback)

	searchCache := cache.NewLRUCache[[]entities.Product](conf.Catalog.SearchCacheCapacity, conf.Catalog.SearchCacheTTL)
	catalogClient := catalog.NewClient(logger, conf.Catalog, catalog.NewNormalizer(deriver), searchCache)
	postalClient := postal.NewClient(logger, conf.Postal)
	submitter := newSubmitter(logger, conf.Submit)

	service.RegisterMetrics()
	desk := service.NewDesk(logger, catalogClient, postalClient, submitter, deriver, service.Options{
		HandoffPhone:    conf.Handoff.Phone,
		SubmitTimeout:   conf.Submit.Timeout,
		SearchDebounce:  conf.Search.Debounce,
		MinQueryLen:     conf.Search.MinQueryLen,
		SessionCapacity: conf.Session.Capacity,
		SessionTTL:      conf.Session.TTL,
	})

	httpHandler := handler.NewHTTPHandler(logger, desk)

	app := app.New(logger, conf)

	app.SetHTTPHandlers(httpHandler)
	app.SetStarters(searchCache, desk)
	app.SetClosers(desk, submitter)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", app.Start(ctx))
	select {
	case <-ctx.Done():
	case err := <-app.Errors():
		logger.Error("shutting down after server failure", slog.Any("error", err))
	}
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

type orderSink interface {
	service.Submitter
	Close() error
}

func newSubmitter(logger *slog.Logger, cfg config.Submit) orderSink {
	if cfg.Sink == "kafka" {
		return submit.NewKafkaSubmitter(logger, cfg.Kafka)
	}
	return submit.NewHTTPSubmitter(logger, cfg)
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
