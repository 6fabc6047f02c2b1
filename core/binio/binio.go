// core/binio/binio.go
package binio

import (
	"encoding/binary"
	"errors"
)

// ErrShort is returned when a read runs past the end of the buffer.
// Callers wrap it with the block type and offset they were decoding.
var ErrShort = errors.New("short buffer")

// Reader is a bounds-checked big-endian cursor over a byte slice.
// All reads advance the cursor; a failed read leaves it unchanged.
type Reader struct {
	buf []byte
	off int
}

func NewReader(b []byte) *Reader { return &Reader{buf: b} }

// Offset reports how many bytes have been consumed.
func (r *Reader) Offset() int { return r.off }

// Remaining reports how many bytes are left.
func (r *Reader) Remaining() int { return len(r.buf) - r.off }

func (r *Reader) U8() (byte, error) {
	if r.Remaining() < 1 {
		return 0, ErrShort
	}
	v := r.buf[r.off]
	r.off++
	return v, nil
}

func (r *Reader) U16() (uint16, error) {
	if r.Remaining() < 2 {
		return 0, ErrShort
	}
	v := binary.BigEndian.Uint16(r.buf[r.off:])
	r.off += 2
	return v, nil
}

func (r *Reader) U32() (uint32, error) {
	if r.Remaining() < 4 {
		return 0, ErrShort
	}
	v := binary.BigEndian.Uint32(r.buf[r.off:])
	r.off += 4
	return v, nil
}

// Take returns the next n bytes as a subslice of the underlying buffer.
func (r *Reader) Take(n int) ([]byte, error) {
	if n < 0 || r.Remaining() < n {
		return nil, ErrShort
	}
	v := r.buf[r.off : r.off+n]
	r.off += n
	return v, nil
}

// Rest consumes and returns everything left.
func (r *Reader) Rest() []byte {
	v := r.buf[r.off:]
	r.off = len(r.buf)
	return v
}

// Writer builds a byte slice with big-endian appends.
type Writer struct {
	buf []byte
}

func (w *Writer) U8(v byte) { w.buf = append(w.buf, v) }
func (w *Writer) U16(v uint16) {
	w.buf = binary.BigEndian.AppendUint16(w.buf, v)
}
func (w *Writer) U32(v uint32) {
	w.buf = binary.BigEndian.AppendUint32(w.buf, v)
}
func (w *Writer) Bytes(p []byte) { w.buf = append(w.buf, p...) }

// Out returns the accumulated buffer.
func (w *Writer) Out() []byte { return w.buf }

// Len reports the number of bytes written so far.
func (w *Writer) Len() int { return len(w.buf) }
