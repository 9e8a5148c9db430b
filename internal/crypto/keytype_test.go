package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyType_String(t *testing.T) {
	tests := []struct {
		name     string
		keyType  KeyType
		expected string
	}{
		{"Unknown", KeyTypeUnknown, "unknown"},
		{"Sr25519", KeyTypeSr25519, "sr25519"},
		{"Ed25519", KeyTypeEd25519, "ed25519"},
		{"Secp256k1", KeyTypeSecp256k1, "secp256k1"},
		{"Invalid value", KeyType(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.keyType.String())
		})
	}
}

func TestParseKeyType(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected KeyType
		wantErr  bool
	}{
		{"sr25519", "sr25519", KeyTypeSr25519, false},
		{"ed25519", "ed25519", KeyTypeEd25519, false},
		{"secp256k1", "secp256k1", KeyTypeSecp256k1, false},
		{"ecdsa alias", "ecdsa", KeyTypeSecp256k1, false},
		{"empty", "", KeyTypeUnknown, true},
		{"unknown scheme", "p256", KeyTypeUnknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kt, err := ParseKeyType(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnsupportedKeyType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, kt)
		})
	}
}

func TestSizes(t *testing.T) {
	tests := []struct {
		keyType KeyType
		seed    int
		pub     int
		sig     int
	}{
		{KeyTypeSr25519, 32, 32, 64},
		{KeyTypeEd25519, 32, 32, 64},
		{KeyTypeSecp256k1, 32, 33, 65},
		{KeyTypeUnknown, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.keyType.String(), func(t *testing.T) {
			assert.Equal(t, tt.seed, SeedSize(tt.keyType))
			assert.Equal(t, tt.pub, PublicKeySize(tt.keyType))
			assert.Equal(t, tt.sig, SignatureSize(tt.keyType))
		})
	}
}

func TestNewSignature(t *testing.T) {
	sig, err := NewSignature(KeyTypeSr25519, make([]byte, 64))
	require.NoError(t, err)
	assert.Equal(t, KeyTypeSr25519, sig.Type())
	assert.Len(t, sig.Bytes(), 64)

	_, err = NewSignature(KeyTypeSr25519, make([]byte, 65))
	assert.ErrorIs(t, err, ErrBadSignatureLength)

	_, err = NewSignature(KeyTypeSecp256k1, make([]byte, 64))
	assert.ErrorIs(t, err, ErrBadSignatureLength)

	_, err = NewSignature(KeyTypeUnknown, make([]byte, 64))
	assert.ErrorIs(t, err, ErrUnsupportedKeyType)
}

func TestSignature_BytesIsACopy(t *testing.T) {
	raw := make([]byte, 64)
	sig, err := NewSignature(KeyTypeEd25519, raw)
	require.NoError(t, err)

	got := sig.Bytes()
	got[0] = 0xff
	assert.Zero(t, sig.Bytes()[0])
}
