// Package keyring ties the pieces of the key core together: it resolves a
// secret URI into a key pair of the requested scheme, dispatches the
// per-scheme constructors behind the shared capability interfaces, and
// carries the account-checked signer used by the rest of the client.
package keyring

import (
	"encoding/hex"
	"fmt"
	"strings"

	addresscodec "github.com/substratekit/gosubd/internal/codec/address-codec"
	"github.com/substratekit/gosubd/internal/crypto"
	ed25519 "github.com/substratekit/gosubd/internal/crypto/algorithms/ed25519"
	secp256k1 "github.com/substratekit/gosubd/internal/crypto/algorithms/secp256k1"
	sr25519 "github.com/substratekit/gosubd/internal/crypto/algorithms/sr25519"
	"github.com/substratekit/gosubd/internal/crypto/derivation"
)

// FromSeed builds a key pair of the given scheme from a raw seed.
func FromSeed(kt crypto.KeyType, seed []byte) (crypto.KeyPair, error) {
	switch kt {
	case crypto.KeyTypeSr25519:
		return sr25519.FromSeed(seed)
	case crypto.KeyTypeEd25519:
		return ed25519.FromSeed(seed)
	case crypto.KeyTypeSecp256k1:
		return secp256k1.FromSeed(seed)
	default:
		return nil, crypto.ErrUnsupportedKeyType
	}
}

// FromPhrase builds a key pair of the given scheme from a mnemonic phrase
// and password.
func FromPhrase(kt crypto.KeyType, phrase, password string) (crypto.KeyPair, error) {
	switch kt {
	case crypto.KeyTypeSr25519:
		return sr25519.FromPhrase(phrase, password)
	case crypto.KeyTypeEd25519:
		return ed25519.FromPhrase(phrase, password)
	case crypto.KeyTypeSecp256k1:
		return secp256k1.FromPhrase(phrase, password)
	default:
		return nil, crypto.ErrUnsupportedKeyType
	}
}

// Random builds a key pair of the given scheme from the secure random
// source.
func Random(kt crypto.KeyType) (crypto.KeyPair, error) {
	switch kt {
	case crypto.KeyTypeSr25519:
		return sr25519.Random()
	case crypto.KeyTypeEd25519:
		return ed25519.Random()
	case crypto.KeyTypeSecp256k1:
		return secp256k1.Random()
	default:
		return nil, crypto.ErrUnsupportedKeyType
	}
}

// PublicKeyFromBytes builds a public key of the given scheme from its
// canonical encoding.
func PublicKeyFromBytes(kt crypto.KeyType, b []byte) (crypto.PublicKey, error) {
	switch kt {
	case crypto.KeyTypeSr25519:
		return sr25519.NewPublicKey(b)
	case crypto.KeyTypeEd25519:
		return ed25519.NewPublicKey(b)
	case crypto.KeyTypeSecp256k1:
		return secp256k1.NewPublicKey(b)
	default:
		return nil, crypto.ErrUnsupportedKeyType
	}
}

// PublicKeyFromSS58 decodes an address and interprets its body under the
// given scheme, returning the public key and the network prefix carried by
// the address.
func PublicKeyFromSS58(kt crypto.KeyType, address string) (crypto.PublicKey, uint16, error) {
	network, body, err := addresscodec.Decode(address)
	if err != nil {
		return nil, 0, err
	}
	pub, err := PublicKeyFromBytes(kt, body)
	if err != nil {
		return nil, 0, err
	}
	return pub, network, nil
}

// FromURI resolves a full secret URI into a key pair: the base becomes a
// seed (dev phrase when empty, hex decode for 0x bases, mnemonic otherwise)
// and the junctions are applied in order. An explicit non-empty password
// overrides one embedded via "///". The password only reaches the mnemonic
// stretch; it has no effect on hex-seed bases.
func FromURI(kt crypto.KeyType, uri, password string) (crypto.KeyPair, error) {
	path, err := derivation.ParseURI(uri)
	if err != nil {
		return nil, err
	}

	pw := path.Password
	if password != "" {
		pw = password
	}

	phrase := path.Phrase
	if phrase == "" {
		phrase = derivation.DevPhrase
	}

	var pair crypto.KeyPair
	if hexSeed, ok := strings.CutPrefix(phrase, "0x"); ok {
		seed, err := hex.DecodeString(hexSeed)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", crypto.ErrBadPrivateKey, err)
		}
		pair, err = FromSeed(kt, seed)
		if err != nil {
			return nil, err
		}
		crypto.SecureErase(seed)
	} else {
		pair, err = FromPhrase(kt, phrase, pw)
		if err != nil {
			return nil, err
		}
	}

	if len(path.Junctions) == 0 {
		return pair, nil
	}
	return pair.Derive(path.Junctions...)
}
