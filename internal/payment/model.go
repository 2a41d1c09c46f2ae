package payment

import "net/http"

// GatewayResponse is the gateway's reply as received, left undecoded so it
// can be relayed verbatim.
type GatewayResponse struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

func (r *GatewayResponse) IsSuccess() bool {
	return r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}

// InvoiceStatus is a status reported by Xendit for an invoice.
type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "PENDING"
	InvoiceStatusPaid    InvoiceStatus = "PAID"
	InvoiceStatusFailed  InvoiceStatus = "FAILED"
	InvoiceStatusExpired InvoiceStatus = "EXPIRED"
	InvoiceStatusSettled InvoiceStatus = "SETTLED"
)
