// Package secp256k1 implements ECDSA key pairs over secp256k1. Messages are
// reduced to a Blake2b-256 digest before signing, and signatures carry a
// trailing recovery id so the signer's key can be recovered on-chain. Only
// hard derivation exists for this scheme.
package secp256k1

import (
	"fmt"

	secp "github.com/decred/dcrd/dcrec/secp256k1/v4"
	secpecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"golang.org/x/crypto/blake2b"

	addresscodec "github.com/substratekit/gosubd/internal/codec/address-codec"
	"github.com/substratekit/gosubd/internal/crypto"
	"github.com/substratekit/gosubd/internal/crypto/derivation"
	"github.com/substratekit/gosubd/internal/crypto/mnemonic"
)

const (
	// SeedSize is the private scalar size in bytes.
	SeedSize = 32
	// PublicKeySize is the compressed point size in bytes.
	PublicKeySize = 33
	// SignatureSize is the signature size in bytes: r || s || recovery id.
	SignatureSize = 65
)

// compactHeaderOffset converts between the recovery id in the network's
// trailing-v layout and the header byte of the primitive's compact
// signature form (27 for the base offset, 4 for compressed keys).
const compactHeaderOffset = 27 + 4

// KeyPair is a secp256k1 signing key with its cached public key. Immutable
// after construction.
type KeyPair struct {
	priv   *secp.PrivateKey
	public *PublicKey
	seed   [SeedSize]byte
}

// PublicKey is a compressed secp256k1 public key.
type PublicKey struct {
	key *secp.PublicKey
}

// FromSeed builds a key pair from a 32-byte private scalar. The scalar must
// be non-zero and below the curve order.
func FromSeed(seed []byte) (*KeyPair, error) {
	if len(seed) != SeedSize {
		return nil, fmt.Errorf("%w: got %d, want %d", crypto.ErrBadSeedLength, len(seed), SeedSize)
	}
	var priv secp.PrivateKey
	if overflow := priv.Key.SetByteSlice(seed); overflow || priv.Key.IsZero() {
		return nil, fmt.Errorf("%w: scalar out of range", crypto.ErrBadPrivateKey)
	}
	kp := &KeyPair{
		priv:   &priv,
		public: &PublicKey{key: priv.PubKey()},
	}
	copy(kp.seed[:], seed)
	return kp, nil
}

// FromPhrase builds a key pair from a mnemonic phrase and password.
func FromPhrase(phrase, password string) (*KeyPair, error) {
	seed, err := mnemonic.Seed(phrase, password)
	if err != nil {
		return nil, err
	}
	defer crypto.SecureErase(seed)
	return FromSeed(seed)
}

// Random builds a key pair from a fresh random scalar, retrying the
// negligible case where the bytes fall outside the scalar range.
func Random() (*KeyPair, error) {
	for {
		seed, err := crypto.RandomBytes(SeedSize)
		if err != nil {
			return nil, err
		}
		kp, err := FromSeed(seed)
		crypto.SecureErase(seed)
		if err == nil {
			return kp, nil
		}
	}
}

// Type implements crypto.KeyPair.
func (kp *KeyPair) Type() crypto.KeyType {
	return crypto.KeyTypeSecp256k1
}

// Public implements crypto.KeyPair.
func (kp *KeyPair) Public() crypto.PublicKey {
	return kp.public
}

// Seed implements crypto.KeyPair.
func (kp *KeyPair) Seed() []byte {
	out := make([]byte, SeedSize)
	copy(out, kp.seed[:])
	return out
}

// Sign signs the Blake2b-256 digest of msg, producing r || s || v where v is
// the recovery id.
func (kp *KeyPair) Sign(msg []byte) (crypto.Signature, error) {
	digest := blake2b.Sum256(msg)
	compact := secpecdsa.SignCompact(kp.priv, digest[:], true)
	out := make([]byte, SignatureSize)
	copy(out, compact[1:])
	out[SignatureSize-1] = compact[0] - compactHeaderOffset
	return crypto.NewSignature(crypto.KeyTypeSecp256k1, out)
}

// Verify implements crypto.KeyPair.
func (kp *KeyPair) Verify(msg []byte, sig crypto.Signature) bool {
	return kp.public.Verify(msg, sig)
}

// Derive applies hard junctions left to right: the domain-tagged digest of
// the current scalar becomes the child scalar, which is re-validated on
// construction. Soft junctions fail.
func (kp *KeyPair) Derive(path ...derivation.Junction) (crypto.KeyPair, error) {
	if len(path) == 0 {
		return kp, nil
	}
	seed := kp.seed
	for _, j := range path {
		if !j.Hard() {
			return nil, crypto.ErrSoftDeriveNotSupported
		}
		seed = derivation.HDKD(derivation.Secp256k1HDKD, seed[:], j.ChainCode())
	}
	return FromSeed(seed[:])
}

// NewPublicKey builds a public key from its 33-byte compressed encoding.
func NewPublicKey(b []byte) (*PublicKey, error) {
	if len(b) != PublicKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", crypto.ErrBadPublicKey, len(b), PublicKeySize)
	}
	key, err := secp.ParsePubKey(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", crypto.ErrBadPublicKey, err)
	}
	return &PublicKey{key: key}, nil
}

// Type implements crypto.PublicKey.
func (pk *PublicKey) Type() crypto.KeyType {
	return crypto.KeyTypeSecp256k1
}

// Bytes implements crypto.PublicKey.
func (pk *PublicKey) Bytes() []byte {
	return pk.key.SerializeCompressed()
}

// Verify reports whether sig is a valid recoverable signature over the
// Blake2b-256 digest of msg by this key. The key recovered from the
// signature must equal this key, which also validates the recovery id.
// Total on untrusted input.
func (pk *PublicKey) Verify(msg []byte, sig crypto.Signature) bool {
	if sig.Type() != crypto.KeyTypeSecp256k1 {
		return false
	}
	raw := sig.Bytes()
	if len(raw) != SignatureSize {
		return false
	}
	digest := blake2b.Sum256(msg)
	compact := make([]byte, SignatureSize)
	compact[0] = raw[SignatureSize-1] + compactHeaderOffset
	copy(compact[1:], raw[:SignatureSize-1])
	recovered, _, err := secpecdsa.RecoverCompact(compact, digest[:])
	if err != nil {
		return false
	}
	return recovered.IsEqual(pk.key)
}

// Derive always fails: secp256k1 public keys cannot be derived from at all.
func (pk *PublicKey) Derive(junction derivation.Junction) (crypto.PublicKey, error) {
	if junction.Hard() {
		return nil, crypto.ErrHardDeriveOnPublic
	}
	return nil, crypto.ErrSoftDeriveNotSupported
}

// SS58 implements crypto.PublicKey.
func (pk *PublicKey) SS58(network uint16) string {
	return addresscodec.Encode(network, pk.Bytes())
}
