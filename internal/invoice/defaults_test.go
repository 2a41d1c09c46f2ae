package invoice

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Run("Built-in when no path", func(t *testing.T) {
		fields, err := LoadDefaults("")
		require.NoError(t, err)
		assert.Equal(t, DefaultFields(), fields)
	})

	t.Run("From file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "invoice.json")
		require.NoError(t, os.WriteFile(path, []byte(`{
			"description": "Order from Toko",
			"invoice_duration": 3600,
			"customer": {"given_names": "Demo"}
		}`), 0o600))

		fields, err := LoadDefaults(path)
		require.NoError(t, err)
		assert.Equal(t, "Order from Toko", fields["description"])
		assert.Equal(t, json.Number("3600"), fields["invoice_duration"])
		assert.Equal(t, map[string]any{"given_names": "Demo"}, fields["customer"])
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := LoadDefaults(filepath.Join(t.TempDir(), "nope.json"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read invoice defaults")
	})

	t.Run("Not an object", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "invoice.json")
		require.NoError(t, os.WriteFile(path, []byte(`null`), 0o600))

		_, err := LoadDefaults(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "expected a JSON object")
	})

	t.Run("Invalid JSON", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "invoice.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"description":`), 0o600))

		_, err := LoadDefaults(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode invoice defaults")
	})
}
