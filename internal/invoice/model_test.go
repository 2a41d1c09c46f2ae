package invoice

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRequest(t *testing.T) {
	t.Run("Exact keys", func(t *testing.T) {
		req, err := ParseRequest([]byte(`{"currency":"IDR","amount":50000,"redirect_url":"https://shop.example.com"}`))
		require.NoError(t, err)

		assert.Equal(t, json.RawMessage(`"IDR"`), req.Currency)
		assert.Equal(t, json.RawMessage(`50000`), req.Amount)
		assert.Equal(t, json.RawMessage(`"https://shop.example.com"`), req.RedirectURL)
	})

	t.Run("Keys differing in case are ignored", func(t *testing.T) {
		req, err := ParseRequest([]byte(`{"CURRENCY":"IDR","Amount":5,"Redirect_URL":"https://x"}`))
		require.NoError(t, err)

		assert.Nil(t, req.Currency)
		assert.Nil(t, req.Amount)
		assert.Nil(t, req.RedirectURL)
	})

	t.Run("Exact key wins over a case variant", func(t *testing.T) {
		req, err := ParseRequest([]byte(`{"Amount":5,"amount":7}`))
		require.NoError(t, err)

		assert.Equal(t, json.RawMessage(`7`), req.Amount)
	})

	t.Run("Empty body", func(t *testing.T) {
		req, err := ParseRequest([]byte("  \n"))
		require.NoError(t, err)
		assert.Equal(t, Request{}, req)
	})

	t.Run("Null body", func(t *testing.T) {
		req, err := ParseRequest([]byte(`null`))
		require.NoError(t, err)
		assert.Equal(t, Request{}, req)
	})

	t.Run("Not an object", func(t *testing.T) {
		_, err := ParseRequest([]byte(`["IDR"]`))
		assert.Error(t, err)
	})

	t.Run("Malformed", func(t *testing.T) {
		_, err := ParseRequest([]byte(`{"amount":`))
		assert.Error(t, err)
	})
}
