// Package ed25519 implements Ed25519 key pairs on top of the standard
// library primitive. Messages are reduced to a Blake2b-256 digest before
// signing, matching the network's fixed-digest convention. Only hard
// derivation exists for this scheme.
package ed25519

import (
	ed "crypto/ed25519"
	"fmt"

	"golang.org/x/crypto/blake2b"

	addresscodec "github.com/substratekit/gosubd/internal/codec/address-codec"
	"github.com/substratekit/gosubd/internal/crypto"
	"github.com/substratekit/gosubd/internal/crypto/derivation"
	"github.com/substratekit/gosubd/internal/crypto/mnemonic"
)

const (
	// SeedSize is the Ed25519 seed size in bytes.
	SeedSize = ed.SeedSize
	// PublicKeySize is the Ed25519 public key size in bytes.
	PublicKeySize = ed.PublicKeySize
	// SignatureSize is the Ed25519 signature size in bytes.
	SignatureSize = ed.SignatureSize
)

// KeyPair is an Ed25519 signing key with its cached public key. Immutable
// after construction.
type KeyPair struct {
	priv   ed.PrivateKey
	public *PublicKey
	seed   [SeedSize]byte
}

// PublicKey is an Ed25519 public key.
type PublicKey struct {
	key ed.PublicKey
}

// FromSeed builds a key pair from a 32-byte seed.
func FromSeed(seed []byte) (*KeyPair, error) {
	if len(seed) != SeedSize {
		return nil, fmt.Errorf("%w: got %d, want %d", crypto.ErrBadSeedLength, len(seed), SeedSize)
	}
	priv := ed.NewKeyFromSeed(seed)
	kp := &KeyPair{
		priv:   priv,
		public: &PublicKey{key: priv.Public().(ed.PublicKey)},
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

// Random builds a key pair from a fresh random seed.
func Random() (*KeyPair, error) {
	seed, err := crypto.RandomBytes(SeedSize)
	if err != nil {
		return nil, err
	}
	defer crypto.SecureErase(seed)
	return FromSeed(seed)
}

// Type implements crypto.KeyPair.
func (kp *KeyPair) Type() crypto.KeyType {
	return crypto.KeyTypeEd25519
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

// Sign signs the Blake2b-256 digest of msg.
func (kp *KeyPair) Sign(msg []byte) (crypto.Signature, error) {
	digest := blake2b.Sum256(msg)
	return crypto.NewSignature(crypto.KeyTypeEd25519, ed.Sign(kp.priv, digest[:]))
}

// Verify implements crypto.KeyPair.
func (kp *KeyPair) Verify(msg []byte, sig crypto.Signature) bool {
	return kp.public.Verify(msg, sig)
}

// Derive applies hard junctions left to right, rebuilding the pair from the
// domain-tagged child seed each time. Soft junctions fail: the scheme has no
// public scalar-offset construction.
func (kp *KeyPair) Derive(path ...derivation.Junction) (crypto.KeyPair, error) {
	if len(path) == 0 {
		return kp, nil
	}
	seed := kp.seed
	for _, j := range path {
		if !j.Hard() {
			return nil, crypto.ErrSoftDeriveNotSupported
		}
		seed = derivation.HDKD(derivation.Ed25519HDKD, seed[:], j.ChainCode())
	}
	return FromSeed(seed[:])
}

// NewPublicKey builds a public key from its 32-byte encoding.
func NewPublicKey(b []byte) (*PublicKey, error) {
	if len(b) != PublicKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", crypto.ErrBadPublicKey, len(b), PublicKeySize)
	}
	key := make(ed.PublicKey, PublicKeySize)
	copy(key, b)
	return &PublicKey{key: key}, nil
}

// Type implements crypto.PublicKey.
func (pk *PublicKey) Type() crypto.KeyType {
	return crypto.KeyTypeEd25519
}

// Bytes implements crypto.PublicKey.
func (pk *PublicKey) Bytes() []byte {
	out := make([]byte, PublicKeySize)
	copy(out, pk.key)
	return out
}

// Verify reports whether sig is a valid Ed25519 signature over the
// Blake2b-256 digest of msg. Total on untrusted input.
func (pk *PublicKey) Verify(msg []byte, sig crypto.Signature) bool {
	if sig.Type() != crypto.KeyTypeEd25519 {
		return false
	}
	raw := sig.Bytes()
	if len(raw) != SignatureSize {
		return false
	}
	digest := blake2b.Sum256(msg)
	return ed.Verify(pk.key, digest[:], raw)
}

// Derive always fails: Ed25519 public keys cannot be derived from at all.
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
