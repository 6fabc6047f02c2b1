// core/sgff/container.go
package sgff

// Block type identifiers with registered codecs. Any other id is
// preserved as raw bytes and flagged "not decoded".
const (
	TypeSequenceDNA        = 0
	TypeCompressedDNA      = 1
	TypePrimers            = 5
	TypeNotes              = 6
	TypeHistoryTree        = 7
	TypeProperties         = 8
	TypeFeatures           = 10
	TypeHistoryEntry       = 11
	TypeCustomEnzymes      = 14
	TypeTraceContainer     = 16
	TypeAlignable          = 17
	TypeTrace              = 18
	TypeSequenceProtein    = 21
	TypeEnzymeVisibility   = 28
	TypeCompressedMarkup   = 29
	TypeNestedContainer    = 30
	TypeSequenceRNA        = 32
)

// Value is a decoded block payload variant.
type Value interface{ blockValue() }

// Block is one TLV record. Raw holds the original payload bytes so an
// untouched block serializes verbatim, compression framing included;
// Value is nil for unrecognized types. Replacing the value through
// SetValue drops Raw and routes serialization through the codec.
type Block struct {
	Type  byte
	Raw   []byte
	Value Value
}

// Decoded reports whether the block type had a registered codec.
func (b *Block) Decoded() bool { return b.Value != nil }

// SetValue installs a new decoded value and invalidates the preserved
// payload bytes.
func (b *Block) SetValue(v Value) {
	b.Value = v
	b.Raw = nil
}

// Container is a parsed file or nested TLV stream. Blocks stay in
// arrival order; that order is what Serialize reproduces. Header is
// nil for nested streams, which carry no 19-byte prefix.
type Container struct {
	Header *Header
	blocks []*Block
}

// New returns an empty top-level container with the given header.
func New(h Header) *Container { return &Container{Header: &h} }

// NewNested returns an empty header-less container for nesting inside
// other blocks.
func NewNested() *Container { return &Container{} }

// Blocks returns all blocks in arrival order.
func (c *Container) Blocks() []*Block { return c.blocks }

// ByType returns the blocks of one type, preserving relative order.
func (c *Container) ByType(t byte) []*Block {
	var out []*Block
	for _, b := range c.blocks {
		if b.Type == t {
			out = append(out, b)
		}
	}
	return out
}

// First returns the first block of the given type, or nil.
func (c *Container) First(t byte) *Block {
	for _, b := range c.blocks {
		if b.Type == t {
			return b
		}
	}
	return nil
}

// Append adds a caller-built block at the end of the stream.
func (c *Container) Append(t byte, v Value) *Block {
	b := &Block{Type: t, Value: v}
	c.blocks = append(c.blocks, b)
	return b
}

// AppendRaw adds an undecoded block carrying the payload verbatim.
func (c *Container) AppendRaw(t byte, payload []byte) *Block {
	b := &Block{Type: t, Raw: append([]byte(nil), payload...)}
	c.blocks = append(c.blocks, b)
	return b
}

// Retain drops every block whose type is not listed, keeping the
// arrival order of the survivors.
func (c *Container) Retain(types ...byte) {
	keep := make(map[byte]bool, len(types))
	for _, t := range types {
		keep[t] = true
	}
	kept := c.blocks[:0]
	for _, b := range c.blocks {
		if keep[b.Type] {
			kept = append(kept, b)
		}
	}
	c.blocks = kept
}
