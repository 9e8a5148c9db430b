package keyring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/substratekit/gosubd/internal/codec/scale"
	"github.com/substratekit/gosubd/internal/crypto"
)

func TestSigner_Sign(t *testing.T) {
	kp, err := FromURI(crypto.KeyTypeSr25519, "//Alice", "")
	require.NoError(t, err)

	s := NewSigner(kp, kp.Public())
	assert.Equal(t, kp.Public().Bytes(), s.Account().Bytes())

	payload := scale.ByteSlice([]byte("remark"))
	sig, err := s.Sign(payload)
	require.NoError(t, err)

	encoded, err := payload.Encode()
	require.NoError(t, err)
	assert.True(t, kp.Verify(encoded, sig))
	assert.False(t, kp.Verify([]byte("remark"), sig),
		"signature covers the encoded payload, not the raw bytes")
}

func TestSigner_AccountMismatch(t *testing.T) {
	alice, err := FromURI(crypto.KeyTypeSr25519, "//Alice", "")
	require.NoError(t, err)
	bob, err := FromURI(crypto.KeyTypeSr25519, "//Bob", "")
	require.NoError(t, err)

	s := NewSigner(alice, bob.Public())
	_, err = s.Sign(scale.ByteSlice([]byte("remark")))
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestSigner_SchemeMismatch(t *testing.T) {
	sr, err := FromURI(crypto.KeyTypeSr25519, "//Alice", "")
	require.NoError(t, err)
	ed, err := FromURI(crypto.KeyTypeEd25519, "//Alice", "")
	require.NoError(t, err)

	s := NewSigner(sr, ed.Public())
	_, err = s.Sign(scale.ByteSlice([]byte("remark")))
	assert.ErrorIs(t, err, ErrAccountNotFound)
}
