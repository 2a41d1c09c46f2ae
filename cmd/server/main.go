package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"checkout-proxy/internal/config"
	"checkout-proxy/internal/invoice"
	"checkout-proxy/internal/logger"
	"checkout-proxy/internal/metrics"
	"checkout-proxy/internal/middleware"
	"checkout-proxy/internal/payment"
	"checkout-proxy/internal/payment/webhook"
	"checkout-proxy/internal/utils"

	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Swapped out in tests.
var startServerFunc = listenAndServe

func main() {
	if err := run(); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	logger.L().Info("configuration loaded",
		zap.String("api_gateway_url", cfg.GatewayURL),
		zap.String("api_key", cfg.MaskedAPIKey()),
		zap.String("callback_url", cfg.CallbackURL),
	)

	router, err := newServer(cfg)
	if err != nil {
		return err
	}

	metrics.SetupPush(cfg.MetricsPushURL, cfg.MetricsPushInterval)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.L().Info("🚀 checkout proxy running", zap.String("port", cfg.AppPort))
	return startServerFunc(ctx, ":"+cfg.AppPort, router)
}

// newServer wires the handlers for cfg and wraps them in the middleware chain.
func newServer(cfg *config.Config) (http.Handler, error) {
	defaults, err := invoice.LoadDefaults(cfg.InvoiceDefaultsFile)
	if err != nil {
		return nil, err
	}

	gateway := payment.NewXenditGateway(cfg.GatewayURL, cfg.APIKey, cfg.GatewayTimeout)
	builder := invoice.NewPayloadBuilder(defaults, cfg.CallbackURL, utils.NewExternalIDGenerator(cfg.ExternalIDPrefix))

	invoiceHandler := invoice.NewHandler(gateway, builder)
	webhookHandler := webhook.NewWebhookHandler()

	router := setupRouter(invoiceHandler.CreateInvoice, webhookHandler.CallbackHandler)

	var h http.Handler = router
	h = logger.LoggingMiddleware(h)
	h = logger.RequestIDMiddleware(h)
	h = middleware.CORS(cfg.CORSAllowedOrigin)(h)
	return h, nil
}

func setupRouter(invoiceHandler, callbackHandler http.HandlerFunc) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/healthcheck/readiness", readiness)
	mux.HandleFunc("POST /api/invoice", invoiceHandler)
	mux.HandleFunc("POST /xendit-callback", callbackHandler)
	mux.Handle("GET /metrics", metrics.Handler())

	return mux
}

func readiness(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// listenAndServe serves until ctx is done, then drains in-flight requests.
func listenAndServe(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.L().Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
