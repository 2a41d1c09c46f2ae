package invoice

import "encoding/json"

type PayloadBuilder struct {
	defaults    map[string]any
	callbackURL string
	ids         IDGenerator
}

func NewPayloadBuilder(defaults map[string]any, callbackURL string, ids IDGenerator) *PayloadBuilder {
	return &PayloadBuilder{
		defaults:    defaults,
		callbackURL: callbackURL,
		ids:         ids,
	}
}

// Build copies the defaults and overrides the per-request fields. A field
// missing from req is dropped from the payload, defaults included.
func (b *PayloadBuilder) Build(req Request) Payload {
	p := make(Payload, len(b.defaults)+6)
	for k, v := range b.defaults {
		p[k] = v
	}

	p[keyExternalID] = b.ids.NewExternalID()
	p.setRaw(keyCurrency, req.Currency)
	p.setRaw(keyAmount, req.Amount)
	p.setRaw(keyFailureRedirectURL, req.RedirectURL)
	p.setRaw(keySuccessRedirectURL, req.RedirectURL)

	if b.callbackURL != "" {
		p[keyCallbackURL] = b.callbackURL
	}
	return p
}

func (p Payload) setRaw(key string, v json.RawMessage) {
	if len(v) == 0 {
		delete(p, key)
		return
	}
	p[key] = v
}
