package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"checkout-proxy/internal/logger"
	"checkout-proxy/internal/metrics"

	"go.uber.org/zap"
)

const invoicesPath = "/v2/invoices"

type xenditGateway struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// ----------------- Constructor -----------------

// NewXenditGateway builds a client for baseURL. A zero timeout leaves the
// transport defaults in place.
func NewXenditGateway(baseURL, apiKey string, timeout time.Duration) Gateway {
	if apiKey == "" {
		logger.L().Warn("Xendit API key is empty")
	}

	return &xenditGateway{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ----------------- CreateInvoice -----------------

func (x *xenditGateway) CreateInvoice(ctx context.Context, payload any) (*GatewayResponse, error) {
	log := logger.FromCtx(ctx)

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		log.Error("Failed to marshal invoice request", zap.Error(err))
		return nil, fmt.Errorf("marshal invoice request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, x.baseURL+invoicesPath, bytes.NewReader(jsonBody))
	if err != nil {
		log.Error("Failed creating request", zap.Error(err))
		return nil, fmt.Errorf("build invoice request: %w", err)
	}

	// Basic auth with the API key as username and an empty password.
	req.SetBasicAuth(x.apiKey, "")
	req.Header.Set("Content-Type", "application/json")

	log.Info("Sending invoice request to Xendit", zap.String("url", req.URL.String()))

	timer := metrics.StartTimer()
	resp, err := x.httpClient.Do(req)
	timer.ObserveGateway()
	if err != nil {
		log.Error("Xendit request failed", zap.Error(err), zap.Duration("elapsed", timer.Duration()))
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("Failed to read response body", zap.Error(err))
		return nil, fmt.Errorf("failed to read xendit response: %w", err)
	}

	res := &GatewayResponse{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        bodyBytes,
	}

	if !res.IsSuccess() {
		log.Error("Xendit returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", bodyBytes),
		)
		return res, nil
	}

	log.Info("Invoice created",
		zap.Int("status", resp.StatusCode),
		zap.ByteString("response", bodyBytes),
	)
	return res, nil
}
