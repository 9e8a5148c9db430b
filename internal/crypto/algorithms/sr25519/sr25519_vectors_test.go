package sr25519

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/substratekit/gosubd/internal/crypto/derivation"
)

// Network key-derivation vectors. These pin the seed expansion, the mnemonic
// stretch and both derivation flavors to the live network's behavior.

func TestFromSeed_KnownVector(t *testing.T) {
	seed, err := hex.DecodeString("9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60")
	require.NoError(t, err)

	kp, err := FromSeed(seed)
	require.NoError(t, err)
	require.Equal(t,
		"44a996beb1eef7bdcab976ab6d2ca26104834164ecf28fb375600576fcc6eb0f",
		hex.EncodeToString(kp.Public().Bytes()))
}

func TestFromPhrase_DevPhraseVector(t *testing.T) {
	kp, err := FromPhrase(derivation.DevPhrase, "")
	require.NoError(t, err)
	require.Equal(t,
		"46ebddef8cd9bb167dc30878d7113b7e168e6f0646beffd77d69d39bad76b47a",
		hex.EncodeToString(kp.Public().Bytes()))
}

func TestDerive_HardAliceVector(t *testing.T) {
	kp, err := FromPhrase(derivation.DevPhrase, "")
	require.NoError(t, err)

	alice, err := kp.Derive(derivation.Hard("Alice"))
	require.NoError(t, err)
	require.Equal(t,
		"d43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d",
		hex.EncodeToString(alice.Public().Bytes()))
}

func TestDerive_SoftAliceVector(t *testing.T) {
	kp, err := FromPhrase(derivation.DevPhrase, "")
	require.NoError(t, err)

	alice, err := kp.Derive(derivation.Soft("Alice"))
	require.NoError(t, err)
	require.Equal(t,
		"d6c71059dbbe9ad2b0ed3f289738b800836eb425544ce694825285b958ca755e",
		hex.EncodeToString(alice.Public().Bytes()))
}
