// core/sgff/header.go
package sgff

import (
	"bytes"
	"fmt"

	"github.com/merv1n34k/sgffp/core/binio"
)

// Fixed header layout: magic byte, uint32 length (always 14), 8-byte
// title tag, then three uint16 cookie fields.
const (
	headerLen    = 19
	magicByte    = 0x09
	headerLength = 14
)

var titleTag = []byte("SnapGene")

// Kind is the sequence kind recorded in the header cookie.
type Kind uint16

const (
	KindDNA     Kind = 1
	KindRNA     Kind = 2
	KindProtein Kind = 3
)

func (k Kind) String() string {
	switch k {
	case KindDNA:
		return "DNA"
	case KindRNA:
		return "RNA"
	case KindProtein:
		return "Protein"
	default:
		return fmt.Sprintf("Kind(%d)", uint16(k))
	}
}

// Header is the parsed cookie. Immutable once parsed.
type Header struct {
	Kind          Kind
	ExportVersion uint16
	ImportVersion uint16
}

func parseHeader(r *binio.Reader) (Header, error) {
	var h Header
	if r.Remaining() < headerLen {
		return h, fmt.Errorf("%w: %d bytes, need %d", ErrInvalidHeader, r.Remaining(), headerLen)
	}
	magic, _ := r.U8()
	length, _ := r.U32()
	title, _ := r.Take(len(titleTag))
	if magic != magicByte || length != headerLength || !bytes.Equal(title, titleTag) {
		return h, fmt.Errorf("%w: bad magic or title", ErrInvalidHeader)
	}
	kind, _ := r.U16()
	h.Kind = Kind(kind)
	h.ExportVersion, _ = r.U16()
	h.ImportVersion, _ = r.U16()
	if h.Kind < KindDNA || h.Kind > KindProtein {
		return h, fmt.Errorf("%w: sequence kind %d", ErrInvalidHeader, kind)
	}
	return h, nil
}

func (h Header) encode(w *binio.Writer) {
	w.U8(magicByte)
	w.U32(headerLength)
	w.Bytes(titleTag)
	w.U16(uint16(h.Kind))
	w.U16(h.ExportVersion)
	w.U16(h.ImportVersion)
}
