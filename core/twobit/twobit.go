// core/twobit/twobit.go
package twobit

import "fmt"

// SnapGene packs four bases per byte, two bits each, most significant
// pair first: 00 G, 01 A, 10 T, 11 C.
var bases = [4]byte{'G', 'A', 'T', 'C'}

var codes = map[byte]byte{'G': 0, 'A': 1, 'T': 2, 'C': 3}

// PackedLen returns the packed byte count for n bases: ceil(2n/8).
func PackedLen(n int) int { return (n*2 + 7) / 8 }

// Pack encodes a G/A/T/C sequence into 2-bit form. The low-order bits
// of a partial final byte are zero.
func Pack(seq []byte) ([]byte, error) {
	out := make([]byte, PackedLen(len(seq)))
	for i, b := range seq {
		code, ok := codes[b]
		if !ok {
			return nil, fmt.Errorf("twobit: invalid base %q at %d", b, i)
		}
		shift := uint(6 - (i%4)*2)
		out[i/4] |= code << shift
	}
	return out, nil
}

// Unpack decodes n bases from packed 2-bit data.
func Unpack(data []byte, n int) ([]byte, error) {
	if len(data) < PackedLen(n) {
		return nil, fmt.Errorf("twobit: need %d bytes for %d bases, have %d", PackedLen(n), n, len(data))
	}
	out := make([]byte, 0, n)
	for _, b := range data {
		for _, shift := range [4]uint{6, 4, 2, 0} {
			if len(out) == n {
				return out, nil
			}
			out = append(out, bases[(b>>shift)&3])
		}
	}
	return out, nil
}
