// core/sgff/serialize.go
package sgff

import (
	"fmt"

	"github.com/merv1n34k/sgffp/core/binio"
)

// Serialize emits the container back into wire form: header (for
// top-level containers) followed by every block in arrival order.
// Blocks still holding their original payload are written verbatim;
// mutated or caller-built values go through their codec. Any failure
// aborts with a *SerializeError and no output.
func (c *Container) Serialize() ([]byte, error) {
	var w binio.Writer
	if c.Header != nil {
		c.Header.encode(&w)
	}
	if err := serializeBlocks(&w, c.blocks); err != nil {
		return nil, err
	}
	return w.Out(), nil
}

func serializeBlocks(w *binio.Writer, blocks []*Block) error {
	for _, b := range blocks {
		payload := b.Raw
		if payload == nil {
			if b.Value == nil {
				return &SerializeError{BlockType: int(b.Type), Err: fmt.Errorf("no value and no raw payload")}
			}
			c, ok := registry[b.Type]
			if !ok {
				return &SerializeError{BlockType: int(b.Type), Err: fmt.Errorf("no codec registered")}
			}
			var err error
			payload, err = c.encode(b.Value)
			if err != nil {
				return &SerializeError{BlockType: int(b.Type), Err: err}
			}
		}
		w.U8(b.Type)
		w.U32(uint32(len(payload)))
		w.Bytes(payload)
	}
	return nil
}
