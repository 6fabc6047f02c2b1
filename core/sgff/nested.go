// core/sgff/nested.go
package sgff

import (
	"github.com/merv1n34k/sgffp/core/binio"
	"github.com/merv1n34k/sgffp/core/compress"
)

// Nested is an LZMA-wrapped TLV container block. The inner stream has
// the same block vocabulary as the top level and is parsed by feeding
// the decompressed bytes back through the dispatcher.
type Nested struct {
	Container *Container
}

func (*Nested) blockValue() {}

func decodeNested(ctx decCtx, payload []byte) (*Nested, error) {
	plain, err := compress.Decompress(payload)
	if err != nil {
		return nil, err
	}
	inner, err := parseNested(plain, ctx.depth)
	if err != nil {
		return nil, err
	}
	return &Nested{Container: inner}, nil
}

func encodeNested(n *Nested) ([]byte, error) {
	var w binio.Writer
	if err := serializeBlocks(&w, n.Container.Blocks()); err != nil {
		return nil, err
	}
	return compress.Compress(w.Out())
}
