package shannonfano

import (
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// Pack writes a textual bit string produced by Compress to w as packed
// binary, one bit per '0'/'1' digit, padding the final byte with zero bits.
// The textual form remains the canonical representation; packing is an
// optional transport layer on top of it.
func Pack(w io.Writer, bits string) error {
	bw := bitio.NewWriter(w)
	for i := 0; i < len(bits); i++ {
		var err error
		switch bits[i] {
		case '0':
			err = bw.WriteBool(false)
		case '1':
			err = bw.WriteBool(true)
		default:
			return fmt.Errorf("shannonfano: bit string contains %q at offset %d", bits[i], i)
		}
		if err != nil {
			return err
		}
	}
	return bw.Close()
}

// Unpack reads n bits from r and returns them as a textual bit string
// suitable for Decompress.  The caller supplies n because Pack pads the
// final byte: the bit count must travel alongside the packed bytes.
func Unpack(r io.Reader, n int) (string, error) {
	br := bitio.NewReader(r)
	buf := make([]byte, n)
	for i := 0; i < n; i++ {
		b, err := br.ReadBool()
		if err != nil {
			return "", fmt.Errorf("shannonfano: short read at bit %d of %d: %w", i, n, err)
		}
		if b {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}
	return string(buf), nil
}
