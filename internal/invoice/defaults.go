package invoice

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// DefaultFields are the merchant invoice fields used when no defaults file
// is configured.
func DefaultFields() map[string]any {
	return map[string]any{
		"description":       "Checkout Demo",
		"invoice_duration":  86400,
		"should_send_email": false,
	}
}

// LoadDefaults reads a JSON object of invoice fields from path. An empty
// path yields DefaultFields.
func LoadDefaults(path string) (map[string]any, error) {
	if path == "" {
		return DefaultFields(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read invoice defaults: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		return nil, fmt.Errorf("decode invoice defaults %s: %w", path, err)
	}
	if fields == nil {
		return nil, fmt.Errorf("invoice defaults %s: expected a JSON object", path)
	}
	return fields, nil
}
