package invoice

import (
	"context"
	"io"
	"net/http"

	"checkout-proxy/internal/logger"
	"checkout-proxy/internal/metrics"
	"checkout-proxy/internal/payment"
	"checkout-proxy/internal/utils"

	"go.uber.org/zap"
)

type Handler struct {
	gateway payment.Gateway
	builder *PayloadBuilder
}

func NewHandler(gateway payment.Gateway, builder *PayloadBuilder) *Handler {
	return &Handler{gateway: gateway, builder: builder}
}

// CreateInvoice proxies one invoice request to Xendit. A 2xx reply is
// relayed as 200, any other reply with its own status, and a call that got
// no reply becomes a 500.
func (h *Handler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	log := logger.FromCtx(r.Context())

	body, err := io.ReadAll(r.Body)
	if err != nil {
		metrics.InvoiceOutcome(metrics.OutcomeBadRequest)
		utils.WriteJSONError(w, "failed to read body", http.StatusBadRequest)
		return
	}
	log.Debug("Request body", zap.ByteString("body", body))

	req, err := ParseRequest(body)
	if err != nil {
		log.Warn("invalid invoice request", zap.Error(err))
		metrics.InvoiceOutcome(metrics.OutcomeBadRequest)
		utils.WriteJSONError(w, "invalid JSON payload", http.StatusBadRequest)
		return
	}

	payload := h.builder.Build(req)
	log = log.With(zap.Any("external_id", payload[keyExternalID]))

	// The gateway call outlives a client that hangs up.
	ctx := context.WithoutCancel(r.Context())

	resp, err := h.gateway.CreateInvoice(ctx, payload)
	if err != nil {
		log.Error("Error occurred while creating invoice", zap.Error(err))
		metrics.InvoiceOutcome(metrics.OutcomeTransportError)
		utils.WriteJSON(w, http.StatusInternalServerError, map[string]string{
			"message": "Internal Server Error",
			"error":   err.Error(),
		})
		return
	}

	status := resp.StatusCode
	if resp.IsSuccess() {
		status = http.StatusOK
		metrics.InvoiceOutcome(metrics.OutcomeSuccess)
	} else {
		log.Warn("Xendit API response error", zap.Int("status", resp.StatusCode))
		metrics.InvoiceOutcome(metrics.OutcomeGatewayError)
	}

	relay(w, status, resp)
}

func relay(w http.ResponseWriter, status int, resp *payment.GatewayResponse) {
	contentType := resp.ContentType
	if contentType == "" {
		contentType = "application/json"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	_, _ = w.Write(resp.Body)
}
