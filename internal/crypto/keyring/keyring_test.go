package keyring

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/substratekit/gosubd/internal/crypto"
	"github.com/substratekit/gosubd/internal/crypto/derivation"
)

func TestFromURI_HexSeedBase(t *testing.T) {
	kp, err := FromURI(crypto.KeyTypeSr25519,
		"0x9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60", "")
	require.NoError(t, err)
	assert.Equal(t,
		"44a996beb1eef7bdcab976ab6d2ca26104834164ecf28fb375600576fcc6eb0f",
		hex.EncodeToString(kp.Public().Bytes()))
}

func TestFromURI_EmptyBaseIsDevPhrase(t *testing.T) {
	implicit, err := FromURI(crypto.KeyTypeSr25519, "", "")
	require.NoError(t, err)
	explicit, err := FromURI(crypto.KeyTypeSr25519, derivation.DevPhrase, "")
	require.NoError(t, err)
	assert.Equal(t, explicit.Public().Bytes(), implicit.Public().Bytes())
}

func TestFromURI_HardJunction(t *testing.T) {
	kp, err := FromURI(crypto.KeyTypeSr25519, "//Alice", "")
	require.NoError(t, err)
	assert.Equal(t,
		"d43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d",
		hex.EncodeToString(kp.Public().Bytes()))
}

func TestFromURI_ExplicitPasswordOverridesEmbedded(t *testing.T) {
	// "//Alice///password" with an explicit override "password" must land on
	// the same key as DEV_PHRASE + "//Alice" with the password passed
	// explicitly.
	embedded, err := FromURI(crypto.KeyTypeSr25519, "//Alice///password", "password")
	require.NoError(t, err)

	explicit, err := FromURI(crypto.KeyTypeSr25519, derivation.DevPhrase+"//Alice", "password")
	require.NoError(t, err)

	assert.Equal(t, explicit.Public().Bytes(), embedded.Public().Bytes())

	// And the password matters: without it, a different key.
	plain, err := FromURI(crypto.KeyTypeSr25519, "//Alice", "")
	require.NoError(t, err)
	assert.NotEqual(t, plain.Public().Bytes(), embedded.Public().Bytes())
}

func TestFromURI_EmbeddedPasswordAlone(t *testing.T) {
	embedded, err := FromURI(crypto.KeyTypeSr25519, "//Alice///pw", "")
	require.NoError(t, err)
	explicit, err := FromURI(crypto.KeyTypeSr25519, "//Alice", "pw")
	require.NoError(t, err)
	assert.Equal(t, explicit.Public().Bytes(), embedded.Public().Bytes())
}

func TestFromURI_PasswordIgnoredForHexSeed(t *testing.T) {
	const uri = "0x9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60"
	plain, err := FromURI(crypto.KeyTypeSr25519, uri, "")
	require.NoError(t, err)
	salted, err := FromURI(crypto.KeyTypeSr25519, uri, "password")
	require.NoError(t, err)
	assert.Equal(t, plain.Public().Bytes(), salted.Public().Bytes())
}

func TestFromURI_AddressOfSoftAliceMatchesImplicitBase(t *testing.T) {
	derived, err := FromURI(crypto.KeyTypeSr25519, derivation.DevPhrase+"/Alice", "")
	require.NoError(t, err)

	implicit, err := FromURI(crypto.KeyTypeSr25519, "/Alice", "")
	require.NoError(t, err)

	assert.Equal(t, derived.Public().SS58(42), implicit.Public().SS58(42))
	assert.Equal(t,
		"d6c71059dbbe9ad2b0ed3f289738b800836eb425544ce694825285b958ca755e",
		hex.EncodeToString(implicit.Public().Bytes()))
}

func TestFromURI_MalformedPath(t *testing.T) {
	_, err := FromURI(crypto.KeyTypeSr25519, "//Alice//", "")
	assert.ErrorIs(t, err, derivation.ErrMalformedPath)
}

func TestFromURI_BadHexSeed(t *testing.T) {
	_, err := FromURI(crypto.KeyTypeSr25519, "0xnothex", "")
	assert.ErrorIs(t, err, crypto.ErrBadPrivateKey)

	// Valid hex, wrong length.
	_, err = FromURI(crypto.KeyTypeSr25519, "0x9d61b19d", "")
	assert.ErrorIs(t, err, crypto.ErrBadSeedLength)
}

func TestFromURI_AllSchemes(t *testing.T) {
	for _, kt := range []crypto.KeyType{
		crypto.KeyTypeSr25519, crypto.KeyTypeEd25519, crypto.KeyTypeSecp256k1,
	} {
		t.Run(kt.String(), func(t *testing.T) {
			kp, err := FromURI(kt, "//Alice", "")
			require.NoError(t, err)
			assert.Equal(t, kt, kp.Type())
			assert.Len(t, kp.Public().Bytes(), crypto.PublicKeySize(kt))

			sig, err := kp.Sign([]byte("msg"))
			require.NoError(t, err)
			assert.True(t, kp.Verify([]byte("msg"), sig))
		})
	}
}

func TestFromURI_SoftJunctionFailsForHardOnlySchemes(t *testing.T) {
	for _, kt := range []crypto.KeyType{crypto.KeyTypeEd25519, crypto.KeyTypeSecp256k1} {
		_, err := FromURI(kt, "/Alice", "")
		assert.ErrorIs(t, err, crypto.ErrSoftDeriveNotSupported, kt.String())
	}
}

func TestFromURI_UnsupportedScheme(t *testing.T) {
	_, err := FromURI(crypto.KeyTypeUnknown, "//Alice", "")
	assert.ErrorIs(t, err, crypto.ErrUnsupportedKeyType)
}

func TestPublicKeyFromBytes_RoundTrip(t *testing.T) {
	for _, kt := range []crypto.KeyType{
		crypto.KeyTypeSr25519, crypto.KeyTypeEd25519, crypto.KeyTypeSecp256k1,
	} {
		t.Run(kt.String(), func(t *testing.T) {
			kp, err := FromURI(kt, "//Alice", "")
			require.NoError(t, err)

			pub, err := PublicKeyFromBytes(kt, kp.Public().Bytes())
			require.NoError(t, err)
			assert.Equal(t, kp.Public().Bytes(), pub.Bytes())
		})
	}
}

func TestPublicKeyFromSS58(t *testing.T) {
	kp, err := FromURI(crypto.KeyTypeSr25519, "//Alice", "")
	require.NoError(t, err)

	addr := kp.Public().SS58(42)
	pub, network, err := PublicKeyFromSS58(crypto.KeyTypeSr25519, addr)
	require.NoError(t, err)
	assert.Equal(t, uint16(42), network)
	assert.Equal(t, kp.Public().Bytes(), pub.Bytes())
}

func TestAccountID(t *testing.T) {
	sr, err := FromURI(crypto.KeyTypeSr25519, "//Alice", "")
	require.NoError(t, err)
	id := crypto.AccountID(sr.Public())
	assert.Equal(t, sr.Public().Bytes(), id[:], "32-byte keys are their own account id")

	ec, err := FromURI(crypto.KeyTypeSecp256k1, "//Alice", "")
	require.NoError(t, err)
	ecID := crypto.AccountID(ec.Public())
	assert.Len(t, ecID[:], crypto.AccountIDSize)
	assert.NotEqual(t, ec.Public().Bytes()[:32], ecID[:], "compressed points are hashed down")
}
