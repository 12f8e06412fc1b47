package storage_test

import (
	"testing"

	"github.com/niksmo/storefront/internal/adapter/storage"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newKV(t *testing.T) (storage.FileKV, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	kv, err := storage.NewFileKV(fs, "/data")
	require.NoError(t, err)
	return kv, fs
}

func TestFileKV(t *testing.T) {

	t.Run("WriteReadRoundTrip", func(t *testing.T) {
		kv, _ := newKV(t)

		want := map[string]int{"per-mouse-x1": 2}
		require.NoError(t, kv.Write("cart_v1", want))

		var got map[string]int
		require.True(t, kv.Read("cart_v1", &got))
		assert.Equal(t, want, got)
	})

	t.Run("MissingKeyReportsFalse", func(t *testing.T) {
		kv, _ := newKV(t)

		var got map[string]int
		assert.False(t, kv.Read("cart_v1", &got))
		assert.Nil(t, got)
	})

	t.Run("CorruptedPayloadReportsFalse", func(t *testing.T) {
		kv, fs := newKV(t)

		err := afero.WriteFile(fs, "/data/cart_v1.json", []byte("{broken"), 0o644)
		require.NoError(t, err)

		var got map[string]int
		assert.False(t, kv.Read("cart_v1", &got))

		// The broken payload stays on disk until the next write.
		data, err := afero.ReadFile(fs, "/data/cart_v1.json")
		require.NoError(t, err)
		assert.Equal(t, "{broken", string(data))
	})

	t.Run("ShapeMismatchReportsFalse", func(t *testing.T) {
		kv, _ := newKV(t)
		require.NoError(t, kv.Write("wishlist_v1", []string{"a"}))

		var got map[string]int
		assert.False(t, kv.Read("wishlist_v1", &got))
	})

	t.Run("WriteReplacesPriorPayload", func(t *testing.T) {
		kv, _ := newKV(t)
		require.NoError(t, kv.Write("currency_v1", "KZT"))
		require.NoError(t, kv.Write("currency_v1", "USD"))

		var got string
		require.True(t, kv.Read("currency_v1", &got))
		assert.Equal(t, "USD", got)
	})

	t.Run("KeysAreIndependent", func(t *testing.T) {
		kv, _ := newKV(t)
		require.NoError(t, kv.Write("cart_v1", map[string]int{"a": 1}))
		require.NoError(t, kv.Write("wishlist_v1", []string{"b"}))

		var cart map[string]int
		var wishlist []string
		require.True(t, kv.Read("cart_v1", &cart))
		require.True(t, kv.Read("wishlist_v1", &wishlist))
		assert.Equal(t, map[string]int{"a": 1}, cart)
		assert.Equal(t, []string{"b"}, wishlist)
	})
}
