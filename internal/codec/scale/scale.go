// Package scale implements the subset of the SCALE binary format needed by
// the key core: compact-length prefixes, fixed-width little-endian integers
// and length-prefixed byte strings. These byte layouts feed the junction
// chain codes and HDKD preimages, so they must match the network exactly.
package scale

import (
	"encoding/binary"
	"errors"
	"fmt"
)

var (
	// ErrCompactTooLarge is returned when a compact integer does not fit in 64 bits.
	ErrCompactTooLarge = errors.New("compact integer exceeds 64 bits")
	// ErrShortBuffer is returned when a decode runs out of input bytes.
	ErrShortBuffer = errors.New("buffer too short for compact integer")
)

// Encodable is anything that can render itself into SCALE bytes.
// Signing payloads are passed through this interface before being signed.
type Encodable interface {
	Encode() ([]byte, error)
}

// CompactUint encodes v using the SCALE compact integer encoding.
//
// Modes (selected by the two low bits of the first byte):
//   - 0b00: single byte, values 0..63
//   - 0b01: two bytes little-endian, values up to 2^14-1
//   - 0b10: four bytes little-endian, values up to 2^30-1
//   - 0b11: big-integer mode, first byte carries the byte count minus four
func CompactUint(v uint64) []byte {
	return AppendCompactUint(nil, v)
}

// AppendCompactUint appends the compact encoding of v to dst.
func AppendCompactUint(dst []byte, v uint64) []byte {
	switch {
	case v < 1<<6:
		return append(dst, byte(v)<<2)
	case v < 1<<14:
		return binary.LittleEndian.AppendUint16(dst, uint16(v)<<2|0b01)
	case v < 1<<30:
		return binary.LittleEndian.AppendUint32(dst, uint32(v)<<2|0b10)
	default:
		n := 0
		for tmp := v; tmp > 0; tmp >>= 8 {
			n++
		}
		dst = append(dst, byte(n-4)<<2|0b11)
		for i := 0; i < n; i++ {
			dst = append(dst, byte(v>>(8*i)))
		}
		return dst
	}
}

// DecodeCompactUint decodes a compact integer from the front of b.
// It returns the value and the number of bytes consumed.
func DecodeCompactUint(b []byte) (uint64, int, error) {
	if len(b) == 0 {
		return 0, 0, ErrShortBuffer
	}
	switch b[0] & 0b11 {
	case 0b00:
		return uint64(b[0] >> 2), 1, nil
	case 0b01:
		if len(b) < 2 {
			return 0, 0, ErrShortBuffer
		}
		return uint64(binary.LittleEndian.Uint16(b[:2]) >> 2), 2, nil
	case 0b10:
		if len(b) < 4 {
			return 0, 0, ErrShortBuffer
		}
		return uint64(binary.LittleEndian.Uint32(b[:4]) >> 2), 4, nil
	default:
		n := int(b[0]>>2) + 4
		if n > 8 {
			return 0, 0, ErrCompactTooLarge
		}
		if len(b) < n+1 {
			return 0, 0, ErrShortBuffer
		}
		var v uint64
		for i := 0; i < n; i++ {
			v |= uint64(b[1+i]) << (8 * i)
		}
		return v, n + 1, nil
	}
}

// FixedUint64 encodes v as a fixed-width 8-byte little-endian integer,
// the SCALE encoding of u64.
func FixedUint64(v uint64) []byte {
	return binary.LittleEndian.AppendUint64(nil, v)
}

// String encodes s as a SCALE string: compact length followed by the raw
// UTF-8 bytes.
func String(s string) []byte {
	out := AppendCompactUint(nil, uint64(len(s)))
	return append(out, s...)
}

// ByteSlice is a SCALE Vec<u8>: compact length followed by the bytes.
type ByteSlice []byte

// Encode implements Encodable.
func (b ByteSlice) Encode() ([]byte, error) {
	out := AppendCompactUint(nil, uint64(len(b)))
	return append(out, b...), nil
}

// RawBytes is a pre-encoded payload passed through unchanged. Used when the
// caller has already rendered the wire bytes (e.g. an extrinsic payload).
type RawBytes []byte

// Encode implements Encodable.
func (b RawBytes) Encode() ([]byte, error) {
	if b == nil {
		return nil, fmt.Errorf("raw payload is nil")
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}
