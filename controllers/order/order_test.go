package orderControllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderLookup(t *testing.T) {
	column, value := orderLookup("42")
	assert.Equal(t, "id = ?", column)
	assert.Equal(t, uint64(42), value)

	column, value = orderLookup("20250601120000-3f8a1c2e")
	assert.Equal(t, "order_ref = ?", column)
	assert.Equal(t, "20250601120000-3f8a1c2e", value)

	// Generated refs always resolve through order_ref, never the bigint id.
	column, _ = orderLookup(generateOrderRef())
	assert.Equal(t, "order_ref = ?", column)
}
