package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/clinwell/billing/internal/api"
	"github.com/clinwell/billing/internal/clients/auth"
	"github.com/clinwell/billing/internal/clients/catalog"
	"github.com/clinwell/billing/internal/clients/expenses"
	"github.com/clinwell/billing/internal/clients/gateway"
	"github.com/clinwell/billing/internal/clients/patients"
	"github.com/clinwell/billing/internal/repository"
	"github.com/clinwell/billing/internal/service"
	"github.com/clinwell/billing/pkg/broker"
	"github.com/clinwell/billing/pkg/config"
	"github.com/clinwell/billing/pkg/job"
	"github.com/clinwell/billing/pkg/logger"
	"github.com/clinwell/billing/pkg/postgres"
)

const (
	ReadTimeout  = 3 * time.Second
	WriteTimeout = 2 * time.Second
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	l, err := logger.New(cfg.Logger.Level)
	panicOnErr("create logger", err)

	pool, err := postgres.Connect(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConn)
	panicOnErr("connect to postgres", err)
	defer pool.Close()

	err = postgres.UpMigrations(cfg.Postgres.DSN)
	panicOnErr("up migrations", err)

	repo := repository.New(pool)

	patientsService := patients.NewClient(cfg.PatientsServiceURL)
	catalogService := catalog.NewClient(cfg.CatalogServiceURL)
	expensesService := expenses.NewClient(cfg.ExpensesServiceURL)

	producer := broker.NewProducer(l, cfg.Kafka.Brokers, cfg.Kafka.AuditTopic, cfg.Kafka.NotificationsTopic)
	defer producer.Close()

	gatewayClient := gateway.NewClient(cfg.Gateway)

	s := service.New(repo, patientsService, catalogService, expensesService, gatewayClient, producer, producer)

	authService := auth.NewClient(cfg.AuthServiceURL)

	{
		job.NewRunner().
			Schedule("send overdue invoice reminders", time.Hour, s.NotifyOverdueInvoices).
			Start(ctx)
	}

	handler := api.NewHandler(s, cfg.Gateway.WebhookCheckEnabled, cfg.Gateway.WebhookSecret)
	mw := api.NewMiddleware(authService, cfg.HTTP.APIKeyEnabled, cfg.HTTP.APIKey, cfg.Gateway.CallbackIPWL)

	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}
	}()

	slog.InfoContext(ctx, "service started", "port", cfg.HTTP.Port)

	wg.Add(1)

	go func() {
		defer wg.Done()

		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
		sig := <-ch

		slog.InfoContext(ctx, "got OS signal", "signal", sig.String())

		err = server.Shutdown(ctx)
		if err != nil {
			slog.ErrorContext(ctx, "server shutdown", "error", err)
		}
	}()

	wg.Wait()
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
