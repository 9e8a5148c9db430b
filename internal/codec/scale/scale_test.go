package scale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompactUint_Vectors(t *testing.T) {
	tests := []struct {
		name     string
		value    uint64
		expected []byte
	}{
		{"zero", 0, []byte{0x00}},
		{"one", 1, []byte{0x04}},
		{"single byte max", 63, []byte{0xfc}},
		{"two byte min", 64, []byte{0x01, 0x01}},
		{"two byte max", 16383, []byte{0xfd, 0xff}},
		{"four byte min", 16384, []byte{0x02, 0x00, 0x01, 0x00}},
		{"u16 max", 65535, []byte{0xfe, 0xff, 0x03, 0x00}},
		{"four byte max", 1<<30 - 1, []byte{0xfe, 0xff, 0xff, 0xff}},
		{"big integer min", 1 << 30, []byte{0x03, 0x00, 0x00, 0x00, 0x40}},
		{"u32 max", 1<<32 - 1, []byte{0x03, 0xff, 0xff, 0xff, 0xff}},
		{"five bytes", 1 << 32, []byte{0x07, 0x00, 0x00, 0x00, 0x00, 0x01}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CompactUint(tt.value))
		})
	}
}

func TestCompactUint_RoundTrip(t *testing.T) {
	values := []uint64{0, 1, 42, 63, 64, 255, 16383, 16384, 1 << 20, 1<<30 - 1, 1 << 30, 1 << 40, 1<<64 - 1}
	for _, v := range values {
		enc := CompactUint(v)
		dec, n, err := DecodeCompactUint(enc)
		require.NoError(t, err)
		assert.Equal(t, v, dec)
		assert.Equal(t, len(enc), n)
	}
}

func TestDecodeCompactUint_ShortBuffer(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
	}{
		{"empty", nil},
		{"truncated two byte", []byte{0x01}},
		{"truncated four byte", []byte{0x02, 0x00}},
		{"truncated big integer", []byte{0x03, 0x00, 0x00}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := DecodeCompactUint(tt.input)
			assert.ErrorIs(t, err, ErrShortBuffer)
		})
	}
}

func TestDecodeCompactUint_TooLarge(t *testing.T) {
	// Byte count 9 does not fit uint64.
	_, _, err := DecodeCompactUint([]byte{0b10111, 0, 0, 0, 0, 0, 0, 0, 0, 0})
	assert.ErrorIs(t, err, ErrCompactTooLarge)
}

func TestString(t *testing.T) {
	assert.Equal(t, []byte{0x14, 'A', 'l', 'i', 'c', 'e'}, String("Alice"))
	assert.Equal(t, []byte{0x00}, String(""))
}

func TestFixedUint64(t *testing.T) {
	assert.Equal(t, []byte{1, 0, 0, 0, 0, 0, 0, 0}, FixedUint64(1))
	assert.Equal(t, []byte{0xff, 0xff, 0, 0, 0, 0, 0, 0}, FixedUint64(65535))
}

func TestByteSlice_Encode(t *testing.T) {
	enc, err := ByteSlice([]byte{0xde, 0xad}).Encode()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x08, 0xde, 0xad}, enc)
}

func TestRawBytes_Encode(t *testing.T) {
	enc, err := RawBytes([]byte{1, 2, 3}).Encode()
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, enc)

	_, err = RawBytes(nil).Encode()
	assert.Error(t, err)
}
