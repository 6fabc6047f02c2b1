// core/sgff/markup.go
package sgff

import (
	"github.com/merv1n34k/sgffp/core/compress"
)

// Markup is an embedded markup fragment (features, notes, primers,
// history tree, ...). Compressed marks block types stored behind LZMA;
// Text always holds the decompressed form.
type Markup struct {
	Text       []byte
	Compressed bool
}

func (*Markup) blockValue() {}

func decodeMarkup(payload []byte) (*Markup, error) {
	return &Markup{Text: append([]byte(nil), payload...)}, nil
}

func decodeCompressedMarkup(payload []byte) (*Markup, error) {
	text, err := compress.Decompress(payload)
	if err != nil {
		return nil, err
	}
	return &Markup{Text: text, Compressed: true}, nil
}

func encodeMarkup(m *Markup) ([]byte, error) {
	if m.Compressed {
		return compress.Compress(m.Text)
	}
	return append([]byte(nil), m.Text...), nil
}
