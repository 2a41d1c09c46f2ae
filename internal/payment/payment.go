// internal/payment/payment.go
package payment

import "context"

type Gateway interface {
	// CreateInvoice sends payload to the gateway once. Any HTTP response,
	// successful or not, comes back as a GatewayResponse; the error is
	// reserved for calls that got no response at all.
	CreateInvoice(ctx context.Context, payload any) (*GatewayResponse, error)
}
