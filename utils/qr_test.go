package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestGenerateQRCode(t *testing.T) {
	png, err := GenerateQRCode("sold-ticket:1|event:2|attendee:3|type:vip", 256)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic), "expected PNG output")
}

func TestGenerateQRCodeDistinctContent(t *testing.T) {
	a, err := GenerateQRCode("sold-ticket:1", 128)
	require.NoError(t, err)
	b, err := GenerateQRCode("sold-ticket:2", 128)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
