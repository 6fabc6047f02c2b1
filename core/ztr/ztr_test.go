// core/ztr/ztr_test.go
package ztr

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/merv1n34k/sgffp/core/binio"
	"github.com/merv1n34k/sgffp/core/compress"
)

func sampleTrace() *Trace {
	return &Trace{
		Version: [2]byte{1, 2},
		Chunks: []Chunk{
			{Type: TypeBases, Value: Bases{Calls: []byte("ACGT")}},
			{Type: TypePositions, Value: Positions{Offsets: []uint32{3, 9, 14, 21}}},
			{Type: TypeConfidence, Value: Confidence{Scores: []byte{40, 38, 12, 55}}},
			{Type: TypeSamples4, Value: Samples4{
				A: []uint16{100, 0}, C: []uint16{0, 80}, G: []uint16{5, 5}, T: []uint16{0, 0},
			}},
			{Type: TypeSamples1, Meta: []byte{'A', 0, 0, 0}, Value: Samples1{Channel: 'A', Samples: []uint16{7, 8, 9}}},
			{Type: TypeText, Value: Text{Fields: []TextField{{Key: "MACH", Value: "ABI3730"}}}},
			{Type: TypeClip, Value: Clip{Left: 2, Right: 3}},
			{Type: TypeComment, Value: Comment{Text: "run 42"}},
		},
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	enc, err := Encode(sampleTrace(), EncodeOptions{})
	require.NoError(t, err)

	got, err := Decode(enc)
	require.NoError(t, err)
	require.Equal(t, [2]byte{1, 2}, got.Version)
	require.Len(t, got.Chunks, 8)

	require.Equal(t, Bases{Calls: []byte("ACGT")}, got.Chunks[0].Value)
	require.Equal(t, Positions{Offsets: []uint32{3, 9, 14, 21}}, got.Chunks[1].Value)
	require.Equal(t, Confidence{Scores: []byte{40, 38, 12, 55}}, got.Chunks[2].Value)
	require.Equal(t, Samples4{A: []uint16{100, 0}, C: []uint16{0, 80}, G: []uint16{5, 5}, T: []uint16{0, 0}}, got.Chunks[3].Value)
	require.Equal(t, Samples1{Channel: 'A', Samples: []uint16{7, 8, 9}}, got.Chunks[4].Value)
	require.Equal(t, Text{Fields: []TextField{{Key: "MACH", Value: "ABI3730"}}}, got.Chunks[5].Value)
	require.Equal(t, Clip{Left: 2, Right: 3}, got.Chunks[6].Value)
	require.Equal(t, Comment{Text: "run 42"}, got.Chunks[7].Value)

	require.Equal(t, []byte("ACGT"), got.Bases())

	// Decoded chunks keep their original bytes; re-encoding the parsed
	// trace is byte-identical.
	again, err := Encode(got, EncodeOptions{})
	require.NoError(t, err)
	require.Equal(t, enc, again)
}

// Wrapping a chunk body in zlib framing must decode identically to the
// raw 0x00 framing for every supported chunk type.
func TestCompressedChunkEquivalence(t *testing.T) {
	tr := sampleTrace()
	for _, c := range tr.Chunks {
		raw, err := EncodeChunk(&c, EncodeOptions{})
		require.NoError(t, err, c.Type)
		require.Equal(t, byte(framingRaw), raw[0], c.Type)

		z, err := compress.Deflate(raw[1:])
		require.NoError(t, err, c.Type)
		var w binio.Writer
		w.U8(framingZlib)
		w.U32(uint32(len(raw) - 1))
		w.Bytes(z)

		plain, err := DecodeChunk(c.Type, c.Meta, raw)
		require.NoError(t, err, c.Type)
		inflated, err := DecodeChunk(c.Type, c.Meta, w.Out())
		require.NoError(t, err, c.Type)
		require.Equal(t, plain, inflated, c.Type)
	}
}

func TestZlibMinFraming(t *testing.T) {
	tr := &Trace{Chunks: []Chunk{
		{Type: TypeComment, Value: Comment{Text: "xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx"}},
	}}
	enc, err := Encode(tr, EncodeOptions{ZlibMin: 4})
	require.NoError(t, err)

	got, err := Decode(enc)
	require.NoError(t, err)
	require.Equal(t, Comment{Text: "xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx"}, got.Chunks[0].Value)
	require.Equal(t, byte(framingZlib), got.Chunks[0].Raw[0])
}

func TestUnknownChunkIsOpaque(t *testing.T) {
	tr := &Trace{Chunks: []Chunk{
		{Type: "XYZ1", Value: Opaque{Body: []byte{9, 9, 9}}},
	}}
	enc, err := Encode(tr, EncodeOptions{})
	require.NoError(t, err)

	got, err := Decode(enc)
	require.NoError(t, err)
	require.Equal(t, Opaque{Body: []byte{9, 9, 9}}, got.Chunks[0].Value)
}

// A caller-built SAMP chunk carries its channel in the payload; the
// encoder must emit the channel metadata the decoder requires.
func TestSamples1MetaSynthesized(t *testing.T) {
	tr := &Trace{Chunks: []Chunk{
		{Type: TypeSamples1, Value: Samples1{Channel: 'G', Samples: []uint16{1, 2}}},
	}}
	enc, err := Encode(tr, EncodeOptions{})
	require.NoError(t, err)

	got, err := Decode(enc)
	require.NoError(t, err)
	require.Equal(t, []byte{'G', 0, 0, 0}, got.Chunks[0].Meta)
	require.Equal(t, Samples1{Channel: 'G', Samples: []uint16{1, 2}}, got.Chunks[0].Value)
}

func TestTextUnpairedKeyRejected(t *testing.T) {
	body := []byte{0, 0}
	body = append(body, "MACH"...)
	body = append(body, 0)

	var w binio.Writer
	w.Bytes(Magic)
	w.Bytes([]byte{1, 2})
	w.Bytes([]byte(TypeText))
	w.U32(0)
	w.U32(uint32(len(body)))
	w.Bytes(body)

	_, err := Decode(w.Out())
	require.Error(t, err)
	require.Contains(t, err.Error(), "MACH")
}

func TestInvalidMagic(t *testing.T) {
	_, err := Decode([]byte("definitely not a trace"))
	require.ErrorIs(t, err, ErrInvalidMagic)
}

func TestUnsupportedSelector(t *testing.T) {
	var w binio.Writer
	w.Bytes(Magic)
	w.Bytes([]byte{1, 2})
	w.Bytes([]byte(TypeComment))
	w.U32(0)
	w.U32(1)
	w.U8(0x07)
	_, err := Decode(w.Out())
	require.ErrorIs(t, err, ErrUnsupportedCompression)
}

func TestSetValueDropsRaw(t *testing.T) {
	enc, err := Encode(sampleTrace(), EncodeOptions{})
	require.NoError(t, err)
	got, err := Decode(enc)
	require.NoError(t, err)

	got.Chunks[7].SetValue(Comment{Text: "edited"})
	again, err := Encode(got, EncodeOptions{})
	require.NoError(t, err)

	reparsed, err := Decode(again)
	require.NoError(t, err)
	require.Equal(t, Comment{Text: "edited"}, reparsed.Chunks[7].Value)
}
