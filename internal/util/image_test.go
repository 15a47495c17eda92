package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageBytesToURL(t *testing.T) {
	assert.Equal(t, "data:image/jpeg;base64,aGVsbG8=", ImageBytesToURL([]byte("hello")))
	assert.Empty(t, ImageBytesToURL(nil))
}

func TestImageURLToBytes(t *testing.T) {
	t.Run("data url", func(t *testing.T) {
		b, err := ImageURLToBytes("data:image/jpeg;base64,aGVsbG8=")
		require.NoError(t, err)
		assert.Equal(t, []byte("hello"), b)
	})

	t.Run("bare base64", func(t *testing.T) {
		b, err := ImageURLToBytes("aGVsbG8=")
		require.NoError(t, err)
		assert.Equal(t, []byte("hello"), b)
	})

	t.Run("empty", func(t *testing.T) {
		b, err := ImageURLToBytes("")
		require.NoError(t, err)
		assert.Nil(t, b)
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := ImageURLToBytes("not base64!!")
		assert.Error(t, err)
	})
}
