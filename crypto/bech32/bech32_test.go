package bech32

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	// Reference value produced with: bech32 -e -h tiov "test-payload"
	const encoded = "tiov1w3jhxapdwpshjmr0v9jqymqq4y"

	hrp, payload, err := Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, "tiov", hrp)
	assert.Equal(t, []byte("test-payload"), payload)

	raw, err := Encode(hrp, payload)
	require.NoError(t, err)
	assert.Equal(t, encoded, string(raw))
}

func TestDecodeInvalid(t *testing.T) {
	cases := map[string]string{
		"checksum mismatch": "tiov1w3jhxapdwpshjmr0v9jqymqq4z",
		"no separator":      "tiovw3jhxapdwpshjmr0v9jqymqq4y",
		"empty":             "",
	}
	for testName, enc := range cases {
		t.Run(testName, func(t *testing.T) {
			_, _, err := Decode(enc)
			assert.Error(t, err)
		})
	}
}
