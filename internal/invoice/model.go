package invoice

import (
	"bytes"
	"encoding/json"
)

// Request is the client's invoice request. Fields stay raw JSON so the
// values reach Xendit exactly as sent; nothing is validated here.
type Request struct {
	Currency    json.RawMessage `json:"currency,omitempty"`
	Amount      json.RawMessage `json:"amount,omitempty"`
	RedirectURL json.RawMessage `json:"redirect_url,omitempty"`
}

// Request body keys, matched exactly.
const (
	fieldCurrency    = "currency"
	fieldAmount      = "amount"
	fieldRedirectURL = "redirect_url"
)

// ParseRequest reads an invoice request body. Keys are matched exactly, so
// "Currency" or "AMOUNT" are not picked up. An empty body is an empty request.
func ParseRequest(body []byte) (Request, error) {
	var req Request
	if len(bytes.TrimSpace(body)) == 0 {
		return req, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return req, err
	}

	req.Currency = fields[fieldCurrency]
	req.Amount = fields[fieldAmount]
	req.RedirectURL = fields[fieldRedirectURL]
	return req, nil
}

// Payload is the body sent to POST /v2/invoices.
type Payload map[string]any

// Payload keys set per request.
const (
	keyExternalID         = "external_id"
	keyCurrency           = "currency"
	keyAmount             = "amount"
	keyFailureRedirectURL = "failure_redirect_url"
	keySuccessRedirectURL = "success_redirect_url"
	keyCallbackURL        = "callback_url"
)

type IDGenerator interface {
	NewExternalID() string
}
