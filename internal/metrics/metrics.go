package metrics

import (
	"fmt"
	"net/http"
	"time"

	vm "github.com/VictoriaMetrics/metrics"
	"go.uber.org/zap"

	"checkout-proxy/internal/logger"
)

// Invoice outcomes.
const (
	OutcomeSuccess        = "success"
	OutcomeGatewayError   = "gateway_error"
	OutcomeTransportError = "transport_error"
	OutcomeBadRequest     = "bad_request"
)

func InvoiceOutcome(outcome string) {
	vm.GetOrCreateCounter(fmt.Sprintf(`invoice_requests_total{outcome=%q}`, outcome)).Inc()
}

// Statuses allowed as label values; anything else is counted as "other".
var callbackStatuses = map[string]bool{
	"PAID":    true,
	"FAILED":  true,
	"PENDING": true,
	"EXPIRED": true,
	"SETTLED": true,
}

// CallbackReceived counts callbacks by reported status. Blank statuses are
// counted as "unknown", unrecognised ones as "other".
func CallbackReceived(status string) {
	vm.GetOrCreateCounter(fmt.Sprintf(`xendit_callbacks_total{status=%q}`, callbackStatusLabel(status))).Inc()
}

func callbackStatusLabel(status string) string {
	switch {
	case status == "":
		return "unknown"
	case callbackStatuses[status]:
		return status
	default:
		return "other"
	}
}

type Timer struct {
	start time.Time
}

func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}

// ObserveGateway records the duration of one gateway call.
func (t *Timer) ObserveGateway() {
	vm.GetOrCreateHistogram(`gateway_request_duration_seconds`).UpdateDuration(t.start)
}

// Handler exposes every registered metric in Prometheus text format.
func Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		vm.WritePrometheus(w, true)
	})
}

// SetupPush starts pushing metrics when url is set.
func SetupPush(url string, interval time.Duration) {
	if url == "" {
		return
	}

	if err := vm.InitPush(url, interval, `service="checkout-proxy"`, true); err != nil {
		logger.L().Error("failed to initialise metrics push", zap.String("url", url), zap.Error(err))
	}
}
