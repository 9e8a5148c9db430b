package crypto

import (
	"golang.org/x/crypto/blake2b"

	"github.com/substratekit/gosubd/internal/crypto/derivation"
)

// PublicKey is the public half of a key pair, tagged with its scheme.
// Implementations are immutable and safe for concurrent use.
type PublicKey interface {
	// Type returns the scheme tag.
	Type() KeyType
	// Bytes returns the canonical encoding: 32 bytes for sr25519/ed25519,
	// the 33-byte compressed point for secp256k1.
	Bytes() []byte
	// Verify reports whether sig is a valid signature over msg. It is total:
	// a mismatched scheme tag, malformed bytes or a tampered signature all
	// yield false, never an error.
	Verify(msg []byte, sig Signature) bool
	// Derive applies a single junction to the public key alone. Only sr25519
	// supports this, and only for soft junctions; everything else fails with
	// a derivation error.
	Derive(junction derivation.Junction) (PublicKey, error)
	// SS58 renders the key as a checksummed address under the given network
	// prefix.
	SS58(network uint16) string
}

// KeyPair is the signing capability shared by the three schemes. Values are
// immutable after construction; Derive returns a new independent pair.
type KeyPair interface {
	// Type returns the scheme tag.
	Type() KeyType
	// Public returns the cached public key.
	Public() PublicKey
	// Seed returns the 32-byte seed the pair was built from, or nil when the
	// seed is not recoverable (an sr25519 pair reached via soft derivation).
	Seed() []byte
	// Sign produces a scheme-tagged signature over msg. sr25519 signs the raw
	// message; ed25519 and secp256k1 sign its Blake2b-256 digest.
	Sign(msg []byte) (Signature, error)
	// Verify reports whether sig is a valid signature over msg by this pair.
	// Total, like PublicKey.Verify.
	Verify(msg []byte, sig Signature) bool
	// Derive applies the junctions left to right and returns the resulting
	// pair. An empty path returns the pair itself.
	Derive(path ...derivation.Junction) (KeyPair, error)
}

// AccountIDSize is the size of an on-chain account identifier in bytes.
const AccountIDSize = 32

// AccountID computes the 32-byte account identity of a public key.
// sr25519 and ed25519 keys are account identities already; a secp256k1
// compressed point is hashed down with Blake2b-256.
func AccountID(pub PublicKey) [AccountIDSize]byte {
	b := pub.Bytes()
	if len(b) == AccountIDSize {
		var id [AccountIDSize]byte
		copy(id[:], b)
		return id
	}
	return blake2b.Sum256(b)
}
