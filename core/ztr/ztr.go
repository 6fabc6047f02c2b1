// core/ztr/ztr.go
// ZTR chromatogram sub-format embedded in SnapGene trace container blocks.
package ztr

import "errors"

// Magic is the fixed 8-byte signature opening every ZTR stream.
var Magic = []byte{0xae, 'Z', 'T', 'R', 0x0d, 0x0a, 0x1a, 0x0a}

var (
	ErrInvalidMagic           = errors.New("ztr: bad magic")
	ErrUnsupportedCompression = errors.New("ztr: unsupported chunk compression")
)

// Chunk type tags.
const (
	TypeBases      = "BASE"
	TypePositions  = "BPOS"
	TypeConfidence = "CNF4"
	TypeSamples4   = "SMP4"
	TypeSamples1   = "SAMP"
	TypeText       = "TEXT"
	TypeClip       = "CLIP"
	TypeComment    = "COMM"
)

// Trace is one decoded chromatogram: an opaque version tag plus the
// chunk sequence in stream order.
type Trace struct {
	Version [2]byte
	Chunks  []Chunk
}

// Chunk pairs a 4-character type tag with its decoded payload. Raw
// holds the original data bytes (compression framing included) so an
// untouched chunk re-encodes verbatim; mutate via SetValue to force
// re-encoding.
type Chunk struct {
	Type  string
	Meta  []byte
	Value Payload
	Raw   []byte
}

// SetValue replaces the decoded payload and drops the preserved bytes.
func (c *Chunk) SetValue(v Payload) {
	c.Value = v
	c.Raw = nil
}

// Payload is the decoded chunk body variant.
type Payload interface{ payload() }

// Bases holds the ASCII base calls (BASE).
type Bases struct{ Calls []byte }

// Positions holds the per-base sample offsets (BPOS).
type Positions struct{ Offsets []uint32 }

// Confidence holds one score byte per base (CNF4).
type Confidence struct{ Scores []byte }

// Samples4 holds the four-channel sample streams (SMP4); the wire form
// interleaves A,C,G,T repeating.
type Samples4 struct{ A, C, G, T []uint16 }

// Samples1 holds a single labelled channel (SAMP).
type Samples1 struct {
	Channel byte
	Samples []uint16
}

// TextField is one key/value pair from a TEXT chunk, order preserved.
type TextField struct{ Key, Value string }

// Text holds the TEXT chunk fields.
type Text struct{ Fields []TextField }

// Clip holds quality clip boundaries (CLIP).
type Clip struct{ Left, Right uint32 }

// Comment holds free text (COMM).
type Comment struct{ Text string }

// Opaque carries the normalized body of a chunk type this package does
// not decode.
type Opaque struct{ Body []byte }

func (Bases) payload()      {}
func (Positions) payload()  {}
func (Confidence) payload() {}
func (Samples4) payload()   {}
func (Samples1) payload()   {}
func (Text) payload()       {}
func (Clip) payload()       {}
func (Comment) payload()    {}
func (Opaque) payload()     {}

// Bases returns the base calls, if the trace has a BASE chunk.
func (t *Trace) Bases() []byte {
	for _, c := range t.Chunks {
		if b, ok := c.Value.(Bases); ok {
			return b.Calls
		}
	}
	return nil
}
