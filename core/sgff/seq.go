// core/sgff/seq.go
package sgff

import (
	"fmt"

	"github.com/merv1n34k/sgffp/core/binio"
	"github.com/merv1n34k/sgffp/core/twobit"
)

// Property-flag bitmask of plain sequence blocks.
const (
	flagCircular = 1 << 0
	flagDouble   = 1 << 1
	flagDam      = 1 << 2
	flagDcm      = 1 << 3
	flagEcoKI    = 1 << 4
)

// Sequence is a plain sequence block: one flag byte followed by the
// bases in the alphabet of its kind.
type Sequence struct {
	Kind           Kind
	Circular       bool
	DoubleStranded bool
	Dam, Dcm       bool
	EcoKI          bool
	Bases          []byte
}

func (*Sequence) blockValue() {}

func (s *Sequence) Len() int { return len(s.Bases) }

func decodePlainSequence(kind Kind, payload []byte) (*Sequence, error) {
	if len(payload) < 1 {
		return nil, fmt.Errorf("%w: missing flag byte", ErrTruncatedSequence)
	}
	flags := payload[0]
	return &Sequence{
		Kind:           kind,
		Circular:       flags&flagCircular != 0,
		DoubleStranded: flags&flagDouble != 0,
		Dam:            flags&flagDam != 0,
		Dcm:            flags&flagDcm != 0,
		EcoKI:          flags&flagEcoKI != 0,
		Bases:          append([]byte(nil), payload[1:]...),
	}, nil
}

func encodePlainSequence(s *Sequence) []byte {
	var flags byte
	if s.Circular {
		flags |= flagCircular
	}
	if s.DoubleStranded {
		flags |= flagDouble
	}
	if s.Dam {
		flags |= flagDam
	}
	if s.Dcm {
		flags |= flagDcm
	}
	if s.EcoKI {
		flags |= flagEcoKI
	}
	return append([]byte{flags}, s.Bases...)
}

// CompressedSequence is the 2-bit packed DNA block. Extra preserves
// the 14 undocumented bytes between the length fields and the packed
// payload. CompressedLen is the on-wire byte count declared after its
// own field; zero means "compute on encode".
type CompressedSequence struct {
	CompressedLen uint32
	BaseCount     int
	Extra         [14]byte
	Packed        []byte
}

func (*CompressedSequence) blockValue() {}

// Bases unpacks the 2-bit payload.
func (cs *CompressedSequence) Bases() ([]byte, error) {
	return twobit.Unpack(cs.Packed, cs.BaseCount)
}

// NewCompressedSequence packs a G/A/T/C sequence.
func NewCompressedSequence(bases []byte) (*CompressedSequence, error) {
	packed, err := twobit.Pack(bases)
	if err != nil {
		return nil, err
	}
	return &CompressedSequence{BaseCount: len(bases), Packed: packed}, nil
}

// wireLen is the declared compressed length for a packed payload: the
// base-count field, the opaque region, and the payload itself.
func wireLen(packed int) uint32 { return uint32(4 + 14 + packed) }

// decodeCompressedSequence consumes one compressed-DNA body from the
// cursor: compressed length, base count, 14 opaque bytes, packed data.
// Exactly CompressedLen bytes are consumed after the length field, so
// the history-entry codec can keep walking the record afterwards.
func decodeCompressedSequence(r *binio.Reader) (*CompressedSequence, error) {
	compLen, err := r.U32()
	if err != nil {
		return nil, fmt.Errorf("%w: compressed length", ErrTruncatedSequence)
	}
	body, err := r.Take(int(compLen))
	if err != nil {
		return nil, fmt.Errorf("%w: %d declared, %d available", ErrTruncatedSequence, compLen, r.Remaining())
	}
	br := binio.NewReader(body)
	baseCount, err := br.U32()
	if err != nil {
		return nil, fmt.Errorf("%w: base count", ErrTruncatedSequence)
	}
	cs := &CompressedSequence{CompressedLen: compLen, BaseCount: int(baseCount)}
	extra, err := br.Take(len(cs.Extra))
	if err != nil {
		return nil, fmt.Errorf("%w: opaque field", ErrTruncatedSequence)
	}
	copy(cs.Extra[:], extra)
	cs.Packed, err = br.Take(twobit.PackedLen(cs.BaseCount))
	if err != nil {
		return nil, fmt.Errorf("%w: packed data for %d bases", ErrTruncatedSequence, baseCount)
	}
	cs.Packed = append([]byte(nil), cs.Packed...)
	return cs, nil
}

func encodeCompressedSequence(cs *CompressedSequence) ([]byte, error) {
	if len(cs.Packed) != twobit.PackedLen(cs.BaseCount) {
		return nil, fmt.Errorf("packed length %d does not match %d bases", len(cs.Packed), cs.BaseCount)
	}
	need := wireLen(len(cs.Packed))
	if cs.CompressedLen != 0 && cs.CompressedLen != need {
		return nil, fmt.Errorf("declared compressed length %d, payload needs %d", cs.CompressedLen, need)
	}
	var w binio.Writer
	w.U32(need)
	w.U32(uint32(cs.BaseCount))
	w.Bytes(cs.Extra[:])
	w.Bytes(cs.Packed)
	return w.Out(), nil
}
