// Package crypto provides the key-management core of the client: algorithm
// tags, the key-pair and public-key capability contracts shared by the three
// signature schemes, and the helpers they have in common.
package crypto

import "fmt"

// KeyType identifies the signature scheme of a key pair, public key or
// signature. Exactly three schemes exist on the network.
type KeyType int

const (
	// KeyTypeUnknown indicates an unknown or invalid key type.
	KeyTypeUnknown KeyType = iota
	// KeyTypeSr25519 indicates a Schnorr-over-Ristretto key.
	KeyTypeSr25519
	// KeyTypeEd25519 indicates an Ed25519 key.
	KeyTypeEd25519
	// KeyTypeSecp256k1 indicates an ECDSA key over secp256k1.
	KeyTypeSecp256k1
)

// String returns the canonical scheme name.
func (kt KeyType) String() string {
	switch kt {
	case KeyTypeSr25519:
		return "sr25519"
	case KeyTypeEd25519:
		return "ed25519"
	case KeyTypeSecp256k1:
		return "secp256k1"
	default:
		return "unknown"
	}
}

// ParseKeyType maps a scheme name to its KeyType.
func ParseKeyType(s string) (KeyType, error) {
	switch s {
	case "sr25519":
		return KeyTypeSr25519, nil
	case "ed25519":
		return KeyTypeEd25519, nil
	case "secp256k1", "ecdsa":
		return KeyTypeSecp256k1, nil
	default:
		return KeyTypeUnknown, fmt.Errorf("%w: %q", ErrUnsupportedKeyType, s)
	}
}

// SeedSize returns the seed length in bytes required by the scheme.
// All three schemes take a 32-byte seed (for secp256k1 the seed is the
// private scalar and must additionally be valid on the curve).
func SeedSize(kt KeyType) int {
	switch kt {
	case KeyTypeSr25519, KeyTypeEd25519, KeyTypeSecp256k1:
		return 32
	default:
		return 0
	}
}

// PublicKeySize returns the canonical public key length in bytes.
func PublicKeySize(kt KeyType) int {
	switch kt {
	case KeyTypeSr25519, KeyTypeEd25519:
		return 32
	case KeyTypeSecp256k1:
		// Compressed point.
		return 33
	default:
		return 0
	}
}

// SignatureSize returns the canonical signature length in bytes.
// The secp256k1 form carries a trailing recovery id.
func SignatureSize(kt KeyType) int {
	switch kt {
	case KeyTypeSr25519, KeyTypeEd25519:
		return 64
	case KeyTypeSecp256k1:
		return 65
	default:
		return 0
	}
}
