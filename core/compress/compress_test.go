// core/compress/compress_test.go
package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestXZRoundTrip(t *testing.T) {
	plain := bytes.Repeat([]byte("<Node ID=\"0\"/>"), 64)
	z, err := Compress(plain)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(z, xzMagic))

	got, err := Decompress(z)
	require.NoError(t, err)
	require.Equal(t, plain, got)
}

func TestZlibRoundTrip(t *testing.T) {
	plain := bytes.Repeat([]byte("ACGT"), 100)
	z, err := Deflate(plain)
	require.NoError(t, err)

	got, err := Inflate(z)
	require.NoError(t, err)
	require.Equal(t, plain, got)
}

func TestDecompressGarbage(t *testing.T) {
	_, err := Decompress([]byte{0xde, 0xad, 0xbe, 0xef})
	require.Error(t, err)
}
