// core/sgff/registry.go
package sgff

import (
	"fmt"

	"github.com/merv1n34k/sgffp/core/binio"
)

// decCtx carries the remaining nesting budget through recursive
// decodes.
type decCtx struct {
	depth int
}

// codec pairs the decoder and encoder for one block type. The table
// is built once at package init; everything outside it takes the
// raw-bytes path.
type codec struct {
	decode func(decCtx, []byte) (Value, error)
	encode func(Value) ([]byte, error)
}

var registry map[byte]codec

func wrongValue(v Value) error { return fmt.Errorf("wrong value type %T", v) }

func init() {
	plain := func(kind Kind) codec {
		return codec{
			decode: func(_ decCtx, p []byte) (Value, error) { return decodePlainSequence(kind, p) },
			encode: func(v Value) ([]byte, error) {
				s, ok := v.(*Sequence)
				if !ok {
					return nil, wrongValue(v)
				}
				return encodePlainSequence(s), nil
			},
		}
	}
	markup := func(compressed bool) codec {
		return codec{
			decode: func(_ decCtx, p []byte) (Value, error) {
				if compressed {
					return decodeCompressedMarkup(p)
				}
				return decodeMarkup(p)
			},
			encode: func(v Value) ([]byte, error) {
				m, ok := v.(*Markup)
				if !ok {
					return nil, wrongValue(v)
				}
				return encodeMarkup(m)
			},
		}
	}

	registry = map[byte]codec{
		TypeSequenceDNA:     plain(KindDNA),
		TypeSequenceRNA:     plain(KindRNA),
		TypeSequenceProtein: plain(KindProtein),

		TypeCompressedDNA: {
			decode: func(_ decCtx, p []byte) (Value, error) {
				return decodeCompressedSequence(binio.NewReader(p))
			},
			encode: func(v Value) ([]byte, error) {
				cs, ok := v.(*CompressedSequence)
				if !ok {
					return nil, wrongValue(v)
				}
				return encodeCompressedSequence(cs)
			},
		},

		TypePrimers:          markup(false),
		TypeNotes:            markup(false),
		TypeProperties:       markup(false),
		TypeFeatures:         markup(false),
		TypeCustomEnzymes:    markup(false),
		TypeAlignable:        markup(false),
		TypeEnzymeVisibility: markup(false),
		TypeHistoryTree:      markup(true),
		TypeCompressedMarkup: markup(true),

		TypeHistoryEntry: {
			decode: func(ctx decCtx, p []byte) (Value, error) { return decodeHistoryEntry(ctx, p) },
			encode: func(v Value) ([]byte, error) {
				e, ok := v.(*HistoryEntry)
				if !ok {
					return nil, wrongValue(v)
				}
				return encodeHistoryEntry(e)
			},
		},

		TypeNestedContainer: {
			decode: func(ctx decCtx, p []byte) (Value, error) { return decodeNested(ctx, p) },
			encode: func(v Value) ([]byte, error) {
				n, ok := v.(*Nested)
				if !ok {
					return nil, wrongValue(v)
				}
				return encodeNested(n)
			},
		},

		TypeTraceContainer: {
			decode: func(ctx decCtx, p []byte) (Value, error) { return decodeTraceContainer(ctx, p) },
			encode: func(v Value) ([]byte, error) {
				tc, ok := v.(*TraceContainer)
				if !ok {
					return nil, wrongValue(v)
				}
				return encodeTraceContainer(tc)
			},
		},

		TypeTrace: {
			decode: func(_ decCtx, p []byte) (Value, error) { return decodeTraceBlock(p) },
			encode: func(v Value) ([]byte, error) {
				tb, ok := v.(*TraceBlock)
				if !ok {
					return nil, wrongValue(v)
				}
				return encodeTraceBlock(tb)
			},
		},
	}
}
