package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type slot struct {
	Date  string `json:"date"`
	Taken bool   `json:"taken"`
}

func TestEncodeDecode(t *testing.T) {
	t.Run("strings are stored raw", func(t *testing.T) {
		payload, err := encode("rzeszów")
		require.NoError(t, err)
		assert.Equal(t, "rzeszów", payload)

		var out string
		require.NoError(t, decode(payload, &out))
		assert.Equal(t, "rzeszów", out)
	})

	t.Run("structs round trip as json", func(t *testing.T) {
		payload, err := encode(slot{Date: "2026-01-21", Taken: true})
		require.NoError(t, err)
		assert.JSONEq(t, `{"date":"2026-01-21","taken":true}`, payload)

		var out slot
		require.NoError(t, decode(payload, &out))
		assert.Equal(t, slot{Date: "2026-01-21", Taken: true}, out)
	})

	t.Run("unencodable value", func(t *testing.T) {
		_, err := encode(make(chan int))
		assert.ErrorContains(t, err, "failed to marshal cache value")
	})

	t.Run("corrupt payload", func(t *testing.T) {
		var out slot
		assert.ErrorContains(t, decode("{", &out), "failed to unmarshal cache value")
	})
}

func TestTTL(t *testing.T) {
	assert.Equal(t, "1m0s", ttl(60).String())
	assert.Zero(t, ttl(0))
}
