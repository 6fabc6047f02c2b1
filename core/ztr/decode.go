// core/ztr/decode.go
package ztr

import (
	"bytes"
	"fmt"

	"github.com/merv1n34k/sgffp/core/binio"
	"github.com/merv1n34k/sgffp/core/compress"
)

// Chunk body framing selectors.
const (
	framingRaw  = 0x00
	framingZlib = 0x02
)

// Decode parses a full ZTR stream: magic, version, then chunks until
// the input is exhausted.
func Decode(data []byte) (*Trace, error) {
	r := binio.NewReader(data)
	magic, err := r.Take(len(Magic))
	if err != nil || !bytes.Equal(magic, Magic) {
		return nil, ErrInvalidMagic
	}
	t := &Trace{}
	ver, err := r.Take(2)
	if err != nil {
		return nil, fmt.Errorf("ztr: version: %w", err)
	}
	copy(t.Version[:], ver)

	for r.Remaining() > 0 {
		typ, err := r.Take(4)
		if err != nil {
			return nil, fmt.Errorf("ztr: chunk type: %w", err)
		}
		metaLen, err := r.U32()
		if err != nil {
			return nil, fmt.Errorf("ztr: %s meta length: %w", typ, err)
		}
		meta, err := r.Take(int(metaLen))
		if err != nil {
			return nil, fmt.Errorf("ztr: %s meta: %w", typ, err)
		}
		dataLen, err := r.U32()
		if err != nil {
			return nil, fmt.Errorf("ztr: %s data length: %w", typ, err)
		}
		body, err := r.Take(int(dataLen))
		if err != nil {
			return nil, fmt.Errorf("ztr: %s data: %w", typ, err)
		}
		v, err := DecodeChunk(string(typ), meta, body)
		if err != nil {
			return nil, err
		}
		t.Chunks = append(t.Chunks, Chunk{Type: string(typ), Meta: meta, Value: v, Raw: body})
	}
	return t, nil
}

// DecodeChunk decodes one chunk payload. The leading selector byte is
// inspected first: 0x00 means the rest is the literal body, 0x02 means
// a 4-byte header to discard followed by a zlib stream. Either way the
// type-specific decoders below only ever see the plain body.
func DecodeChunk(typ string, meta, data []byte) (Payload, error) {
	body, err := normalize(typ, data)
	if err != nil {
		return nil, err
	}
	switch typ {
	case TypeBases:
		return decodeBases(body)
	case TypePositions:
		return decodePositions(body)
	case TypeConfidence:
		return Confidence{Scores: body}, nil
	case TypeSamples4:
		return decodeSamples4(body)
	case TypeSamples1:
		return decodeSamples1(meta, body)
	case TypeText:
		return decodeText(body)
	case TypeClip:
		return decodeClip(body)
	case TypeComment:
		return Comment{Text: string(body)}, nil
	default:
		return Opaque{Body: body}, nil
	}
}

func normalize(typ string, data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("ztr: %s: empty chunk data", typ)
	}
	switch data[0] {
	case framingRaw:
		return data[1:], nil
	case framingZlib:
		if len(data) < 5 {
			return nil, fmt.Errorf("ztr: %s: truncated zlib framing", typ)
		}
		return compress.Inflate(data[5:])
	default:
		return nil, fmt.Errorf("%w: %s selector 0x%02x", ErrUnsupportedCompression, typ, data[0])
	}
}

func decodeBases(body []byte) (Payload, error) {
	if len(body) < 1 {
		return nil, fmt.Errorf("ztr: BASE: missing padding")
	}
	return Bases{Calls: body[1:]}, nil
}

func decodePositions(body []byte) (Payload, error) {
	if len(body) < 3 || (len(body)-3)%4 != 0 {
		return nil, fmt.Errorf("ztr: BPOS: bad length %d", len(body))
	}
	r := binio.NewReader(body[3:])
	offs := make([]uint32, 0, r.Remaining()/4)
	for r.Remaining() > 0 {
		v, _ := r.U32()
		offs = append(offs, v)
	}
	return Positions{Offsets: offs}, nil
}

func decodeSamples4(body []byte) (Payload, error) {
	if len(body) < 1 || (len(body)-1)%8 != 0 {
		return nil, fmt.Errorf("ztr: SMP4: bad length %d", len(body))
	}
	r := binio.NewReader(body[1:])
	var s Samples4
	for r.Remaining() > 0 {
		a, _ := r.U16()
		c, _ := r.U16()
		g, _ := r.U16()
		t, _ := r.U16()
		s.A = append(s.A, a)
		s.C = append(s.C, c)
		s.G = append(s.G, g)
		s.T = append(s.T, t)
	}
	return s, nil
}

func decodeSamples1(meta, body []byte) (Payload, error) {
	if len(meta) < 1 {
		return nil, fmt.Errorf("ztr: SAMP: missing channel metadata")
	}
	if len(body) < 1 || (len(body)-1)%2 != 0 {
		return nil, fmt.Errorf("ztr: SAMP: bad length %d", len(body))
	}
	r := binio.NewReader(body[1:])
	s := Samples1{Channel: meta[0]}
	for r.Remaining() > 0 {
		v, _ := r.U16()
		s.Samples = append(s.Samples, v)
	}
	return s, nil
}

func decodeText(body []byte) (Payload, error) {
	if len(body) < 1 {
		return nil, fmt.Errorf("ztr: TEXT: missing padding")
	}
	var t Text
	parts := bytes.Split(body[1:], []byte{0})
	// A well-formed body ends with a terminator, leaving one empty
	// trailing part.
	if n := len(parts); n > 0 && len(parts[n-1]) == 0 {
		parts = parts[:n-1]
	}
	if len(parts)%2 != 0 {
		return nil, fmt.Errorf("ztr: TEXT: key %q has no value", parts[len(parts)-1])
	}
	for i := 0; i+1 < len(parts); i += 2 {
		t.Fields = append(t.Fields, TextField{Key: string(parts[i]), Value: string(parts[i+1])})
	}
	return t, nil
}

func decodeClip(body []byte) (Payload, error) {
	if len(body) != 9 {
		return nil, fmt.Errorf("ztr: CLIP: bad length %d", len(body))
	}
	r := binio.NewReader(body[1:])
	left, _ := r.U32()
	right, _ := r.U32()
	return Clip{Left: left, Right: right}, nil
}
