package webhook

import (
	"encoding/json"
	"io"
	"net/http"

	"checkout-proxy/internal/logger"
	"checkout-proxy/internal/metrics"
	"checkout-proxy/internal/payment"

	"go.uber.org/zap"
)

const ackBody = "Callback received"

// Notification holds the invoice callback fields Xendit sends that we log.
type Notification struct {
	ID         string                `json:"id"`
	ExternalID string                `json:"external_id"`
	Status     payment.InvoiceStatus `json:"status"`
	Amount     float64               `json:"amount"`
	PaidAt     string                `json:"paid_at,omitempty"`
}

// Handler acknowledges invoice callbacks. The sender is not verified and
// nothing is stored: every request, repeated or not, gets the same 200.
type Handler struct{}

func NewWebhookHandler() *Handler {
	return &Handler{}
}

func (h *Handler) CallbackHandler(w http.ResponseWriter, r *http.Request) {
	log := logger.FromCtx(r.Context())

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Warn("failed to read callback body", zap.Error(err))
	}

	log.Info("Received callback from Xendit", zap.ByteString("body", body))

	var n Notification
	if err := json.Unmarshal(body, &n); err != nil {
		log.Warn("callback body is not an invoice notification", zap.Error(err))
	}

	metrics.CallbackReceived(string(n.Status))

	switch n.Status {
	case payment.InvoiceStatusPaid:
		log.Info("Payment successful for invoice", zap.String("external_id", n.ExternalID))
	case payment.InvoiceStatusFailed:
		log.Info("Payment failed for invoice", zap.String("external_id", n.ExternalID))
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, ackBody)
}
