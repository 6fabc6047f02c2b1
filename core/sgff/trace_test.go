// core/sgff/trace_test.go
package sgff

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/merv1n34k/sgffp/core/binio"
	"github.com/merv1n34k/sgffp/core/ztr"
)

func testTrace() *ztr.Trace {
	return &ztr.Trace{
		Version: [2]byte{1, 2},
		Chunks: []ztr.Chunk{
			{Type: ztr.TypeBases, Value: ztr.Bases{Calls: []byte("ACGT")}},
			{Type: ztr.TypeConfidence, Value: ztr.Confidence{Scores: []byte{50, 48, 47, 52}}},
			{Type: ztr.TypeClip, Value: ztr.Clip{Left: 1, Right: 3}},
		},
	}
}

func TestTraceContainerRoundTrip(t *testing.T) {
	inner := NewNested()
	inner.Append(TypeProperties, &Markup{Text: []byte(`<Properties UploadedFilename="read1.ab1"/>`)})
	inner.Append(TypeTrace, &TraceBlock{Trace: testTrace()})

	c := New(testHeader())
	c.Append(TypeTraceContainer, &TraceContainer{Reverse: true, Inner: inner})
	data, err := c.Serialize()
	require.NoError(t, err)

	got, err := Parse(data)
	require.NoError(t, err)
	b := got.First(TypeTraceContainer)
	require.NotNil(t, b)
	tc, ok := b.Value.(*TraceContainer)
	require.True(t, ok)
	require.True(t, tc.Reverse)

	props := tc.Inner.First(TypeProperties)
	require.NotNil(t, props)
	require.Contains(t, string(props.Value.(*Markup).Text), "read1.ab1")

	traces := got.Traces()
	require.Len(t, traces, 1)
	require.Equal(t, []byte("ACGT"), traces[0].Bases())

	out, err := got.Serialize()
	require.NoError(t, err)
	require.Equal(t, data, out)
}

func TestTraceContainerEncodeRequiresTrace(t *testing.T) {
	inner := NewNested()
	inner.Append(TypeProperties, &Markup{Text: []byte("<Properties/>")})

	c := New(testHeader())
	c.Append(TypeTraceContainer, &TraceContainer{Inner: inner})
	_, err := c.Serialize()
	require.ErrorIs(t, err, ErrMissingTrace)

	var se *SerializeError
	require.ErrorAs(t, err, &se)
	require.Equal(t, TypeTraceContainer, se.BlockType)
}

func TestTraceContainerDecodeRequiresTrace(t *testing.T) {
	var w binio.Writer
	w.U32(0)
	w.Bytes(rawBlock(TypeProperties, []byte("<Properties/>")))
	_, err := Parse(rawFile(rawBlock(TypeTraceContainer, w.Out())))
	require.ErrorIs(t, err, ErrMissingTrace)
}
