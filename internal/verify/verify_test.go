package verify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExact(t *testing.T) {
	t.Run("equal values pass", func(t *testing.T) {
		assert.NoError(t, Exact("v", "x=1", uint64(70), uint64(70)))
		assert.NoError(t, Exact("v", "x=1", "abc", "abc"))
	})

	t.Run("mismatch reports variant, input and both values", func(t *testing.T) {
		err := Exact("unrolled4", "x=3", uint32(70), uint32(71))
		require.Error(t, err)
		assert.Equal(t, `variant "unrolled4" failed for input x=3: expected 70, got 71`, err.Error())

		var m *Mismatch
		require.ErrorAs(t, err, &m)
		assert.Equal(t, "unrolled4", m.Variant)
		assert.Equal(t, "x=3", m.Input)
	})
}

func TestFloat(t *testing.T) {
	t.Run("within tolerance passes", func(t *testing.T) {
		assert.NoError(t, Float("v", "size=4", 70.0, 70.0, Epsilon))
		assert.NoError(t, Float("v", "size=4", 70.0, 70.0+Epsilon/2, Epsilon))
		assert.NoError(t, Float("v", "size=4", 70.0, 70.0-Epsilon/2, Epsilon))
	})

	t.Run("outside tolerance fails", func(t *testing.T) {
		err := Float("v", "size=4", 70.0, 70.001, Epsilon)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `variant "v" failed for input size=4`)
		assert.Contains(t, err.Error(), "diff")
	})

	t.Run("tolerance is absolute, not relative", func(t *testing.T) {
		// At large magnitudes the same absolute gap still fails.
		assert.Error(t, Float("v", "size=4", 1e9, 1e9+1, Epsilon))
	})
}
