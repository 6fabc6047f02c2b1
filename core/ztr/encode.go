// core/ztr/encode.go
package ztr

import (
	"fmt"

	"github.com/merv1n34k/sgffp/core/binio"
	"github.com/merv1n34k/sgffp/core/compress"
)

// EncodeOptions controls chunk body framing. The zero value always
// emits raw 0x00 framing; setting ZlibMin re-enables zlib framing for
// bodies of at least that many bytes.
type EncodeOptions struct {
	ZlibMin int
}

// Encode serializes a trace back into the ZTR wire form. Chunks still
// carrying their original bytes are emitted verbatim; everything else
// goes through EncodeChunk.
func Encode(t *Trace, opts EncodeOptions) ([]byte, error) {
	var w binio.Writer
	w.Bytes(Magic)
	w.Bytes(t.Version[:])
	for i := range t.Chunks {
		c := &t.Chunks[i]
		if len(c.Type) != 4 {
			return nil, fmt.Errorf("ztr: chunk %d: type tag %q is not 4 bytes", i, c.Type)
		}
		data := c.Raw
		if data == nil {
			var err error
			data, err = EncodeChunk(c, opts)
			if err != nil {
				return nil, err
			}
		}
		meta := chunkMeta(c)
		w.Bytes([]byte(c.Type))
		w.U32(uint32(len(meta)))
		w.Bytes(meta)
		w.U32(uint32(len(data)))
		w.Bytes(data)
	}
	return w.Out(), nil
}

// chunkMeta returns the metadata bytes to emit for a chunk. SAMP
// chunks need the channel id + 3 null bytes for the decoder to accept
// them, so a caller-built chunk with no explicit Meta gets it
// synthesized from the payload.
func chunkMeta(c *Chunk) []byte {
	if c.Meta == nil {
		if s, ok := c.Value.(Samples1); ok {
			return []byte{s.Channel, 0, 0, 0}
		}
	}
	return c.Meta
}

// EncodeChunk produces the framed data bytes for one chunk.
func EncodeChunk(c *Chunk, opts EncodeOptions) ([]byte, error) {
	body, err := encodeBody(c.Value)
	if err != nil {
		return nil, fmt.Errorf("ztr: %s: %w", c.Type, err)
	}
	if opts.ZlibMin > 0 && len(body) >= opts.ZlibMin {
		z, err := compress.Deflate(body)
		if err != nil {
			return nil, fmt.Errorf("ztr: %s: %w", c.Type, err)
		}
		var w binio.Writer
		w.U8(framingZlib)
		w.U32(uint32(len(body)))
		w.Bytes(z)
		return w.Out(), nil
	}
	return append([]byte{framingRaw}, body...), nil
}

func encodeBody(v Payload) ([]byte, error) {
	var w binio.Writer
	switch p := v.(type) {
	case Bases:
		w.U8(0)
		w.Bytes(p.Calls)
	case Positions:
		w.Bytes([]byte{0, 0, 0})
		for _, o := range p.Offsets {
			w.U32(o)
		}
	case Confidence:
		w.Bytes(p.Scores)
	case Samples4:
		n := len(p.A)
		if len(p.C) != n || len(p.G) != n || len(p.T) != n {
			return nil, fmt.Errorf("channel lengths differ (A=%d C=%d G=%d T=%d)", len(p.A), len(p.C), len(p.G), len(p.T))
		}
		w.U8(0)
		for i := 0; i < n; i++ {
			w.U16(p.A[i])
			w.U16(p.C[i])
			w.U16(p.G[i])
			w.U16(p.T[i])
		}
	case Samples1:
		w.U8(0)
		for _, s := range p.Samples {
			w.U16(s)
		}
	case Text:
		w.U8(0)
		for _, f := range p.Fields {
			w.Bytes([]byte(f.Key))
			w.U8(0)
			w.Bytes([]byte(f.Value))
			w.U8(0)
		}
	case Clip:
		w.U8(0)
		w.U32(p.Left)
		w.U32(p.Right)
	case Comment:
		w.Bytes([]byte(p.Text))
	case Opaque:
		w.Bytes(p.Body)
	case nil:
		return nil, fmt.Errorf("no payload and no preserved bytes")
	default:
		return nil, fmt.Errorf("unhandled payload %T", v)
	}
	return w.Out(), nil
}
