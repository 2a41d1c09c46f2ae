package utils

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExternalIDGenerator(t *testing.T) {
	fixed := time.UnixMilli(1700000000123)

	t.Run("Format", func(t *testing.T) {
		gen := NewExternalIDGeneratorWithClock("checkout-demo", func() time.Time { return fixed })
		assert.Equal(t, "checkout-demo-1700000000123", gen.NewExternalID())
	})

	t.Run("Same millisecond stays unique", func(t *testing.T) {
		gen := NewExternalIDGeneratorWithClock("checkout-demo", func() time.Time { return fixed })

		assert.Equal(t, "checkout-demo-1700000000123", gen.NewExternalID())
		assert.Equal(t, "checkout-demo-1700000000124", gen.NewExternalID())
		assert.Equal(t, "checkout-demo-1700000000125", gen.NewExternalID())
	})

	t.Run("Clock moving backwards", func(t *testing.T) {
		now := fixed
		gen := NewExternalIDGeneratorWithClock("inv", func() time.Time { return now })

		first := gen.NewExternalID()
		now = fixed.Add(-time.Second)
		second := gen.NewExternalID()

		assert.Equal(t, "inv-1700000000123", first)
		assert.Equal(t, "inv-1700000000124", second)
	})

	t.Run("Concurrent callers", func(t *testing.T) {
		gen := NewExternalIDGenerator("checkout-demo")

		var (
			wg   sync.WaitGroup
			mu   sync.Mutex
			seen = make(map[string]struct{})
		)
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				id := gen.NewExternalID()
				mu.Lock()
				seen[id] = struct{}{}
				mu.Unlock()
			}()
		}
		wg.Wait()

		assert.Len(t, seen, 50)
	})
}
