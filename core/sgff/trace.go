// core/sgff/trace.go
package sgff

import (
	"fmt"

	"github.com/merv1n34k/sgffp/core/binio"
	"github.com/merv1n34k/sgffp/core/ztr"
)

// TraceContainer is a type-16 block: a direction flag followed by a
// nested TLV stream holding exactly one embedded trace and optionally
// a properties block.
type TraceContainer struct {
	Reverse bool
	Inner   *Container
}

func (*TraceContainer) blockValue() {}

// Trace returns the embedded chromatogram.
func (tc *TraceContainer) Trace() *ztr.Trace {
	b := tc.Inner.First(TypeTrace)
	if b == nil {
		return nil
	}
	if tb, ok := b.Value.(*TraceBlock); ok {
		return tb.Trace
	}
	return nil
}

// TraceBlock wraps a decoded ZTR stream as a type-18 block value.
type TraceBlock struct {
	Trace *ztr.Trace
}

func (*TraceBlock) blockValue() {}

func decodeTraceContainer(ctx decCtx, payload []byte) (*TraceContainer, error) {
	r := binio.NewReader(payload)
	dir, err := r.U32()
	if err != nil {
		return nil, fmt.Errorf("trace container: direction flag: %w", err)
	}
	inner, err := parseNested(r.Rest(), ctx.depth)
	if err != nil {
		return nil, err
	}
	tc := &TraceContainer{Reverse: dir != 0, Inner: inner}
	if tc.Trace() == nil {
		return nil, ErrMissingTrace
	}
	return tc, nil
}

func encodeTraceContainer(tc *TraceContainer) ([]byte, error) {
	if tc.Trace() == nil {
		return nil, ErrMissingTrace
	}
	var w binio.Writer
	if tc.Reverse {
		w.U32(1)
	} else {
		w.U32(0)
	}
	if err := serializeBlocks(&w, tc.Inner.Blocks()); err != nil {
		return nil, err
	}
	return w.Out(), nil
}

func decodeTraceBlock(payload []byte) (*TraceBlock, error) {
	t, err := ztr.Decode(payload)
	if err != nil {
		return nil, err
	}
	return &TraceBlock{Trace: t}, nil
}

func encodeTraceBlock(tb *TraceBlock) ([]byte, error) {
	return ztr.Encode(tb.Trace, ztr.EncodeOptions{})
}
