// Package sr25519 implements Schnorr-over-Ristretto key pairs. The curve
// and transcript work is delegated to go-schnorrkel; this package owns seed
// handling, the signing context and the derivation rules (hard and soft on
// the secret, soft on a bare public key).
package sr25519

import (
	"fmt"

	schnorrkel "github.com/ChainSafe/go-schnorrkel"
	"github.com/gtank/merlin"

	addresscodec "github.com/substratekit/gosubd/internal/codec/address-codec"
	"github.com/substratekit/gosubd/internal/crypto"
	"github.com/substratekit/gosubd/internal/crypto/derivation"
	"github.com/substratekit/gosubd/internal/crypto/mnemonic"
)

const (
	// SeedSize is the mini secret key size in bytes.
	SeedSize = 32
	// PublicKeySize is the compressed Ristretto point size in bytes.
	PublicKeySize = 32
	// SignatureSize is the Schnorr signature size in bytes.
	SignatureSize = 64
)

// signingContext domain-separates signatures from every other transcript use
// on the network.
var signingContext = []byte("substrate")

// KeyPair is an sr25519 signing key with its cached public key. Immutable
// after construction.
type KeyPair struct {
	secret *schnorrkel.SecretKey
	public *PublicKey
	seed   []byte
}

// PublicKey is an sr25519 public key.
type PublicKey struct {
	key *schnorrkel.PublicKey
}

// FromSeed builds a key pair from a 32-byte mini secret, expanding it the
// way the network does.
func FromSeed(seed []byte) (*KeyPair, error) {
	if len(seed) != SeedSize {
		return nil, fmt.Errorf("%w: got %d, want %d", crypto.ErrBadSeedLength, len(seed), SeedSize)
	}
	var raw [SeedSize]byte
	copy(raw[:], seed)
	mini, err := schnorrkel.NewMiniSecretKeyFromRaw(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", crypto.ErrBadPrivateKey, err)
	}
	kept := make([]byte, SeedSize)
	copy(kept, seed)
	return fromSecret(mini.ExpandEd25519(), kept)
}

// FromPhrase builds a key pair from a mnemonic phrase and password.
func FromPhrase(phrase, password string) (*KeyPair, error) {
	seed, err := mnemonic.Seed(phrase, password)
	if err != nil {
		return nil, err
	}
	return FromSeed(seed)
}

// Random builds a key pair from a fresh random seed.
func Random() (*KeyPair, error) {
	seed, err := crypto.RandomBytes(SeedSize)
	if err != nil {
		return nil, err
	}
	return FromSeed(seed)
}

func fromSecret(secret *schnorrkel.SecretKey, seed []byte) (*KeyPair, error) {
	pub, err := secret.Public()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", crypto.ErrBadPrivateKey, err)
	}
	return &KeyPair{secret: secret, public: &PublicKey{key: pub}, seed: seed}, nil
}

// Type implements crypto.KeyPair.
func (kp *KeyPair) Type() crypto.KeyType {
	return crypto.KeyTypeSr25519
}

// Public implements crypto.KeyPair.
func (kp *KeyPair) Public() crypto.PublicKey {
	return kp.public
}

// Seed returns the seed the pair was built from, or nil for pairs reached
// through soft derivation, whose seed is not recoverable.
func (kp *KeyPair) Seed() []byte {
	if kp.seed == nil {
		return nil
	}
	out := make([]byte, len(kp.seed))
	copy(out, kp.seed)
	return out
}

// Sign signs the raw message under the "substrate" signing context. The
// underlying primitive accepts variable-length input, so no prehash is
// applied.
func (kp *KeyPair) Sign(msg []byte) (crypto.Signature, error) {
	sig, err := kp.secret.Sign(schnorrkel.NewSigningContext(signingContext, msg))
	if err != nil {
		return crypto.Signature{}, fmt.Errorf("sr25519 sign: %w", err)
	}
	enc := sig.Encode()
	return crypto.NewSignature(crypto.KeyTypeSr25519, enc[:])
}

// Verify implements crypto.KeyPair.
func (kp *KeyPair) Verify(msg []byte, sig crypto.Signature) bool {
	return kp.public.Verify(msg, sig)
}

// Derive applies the junctions left to right. Hard junctions yield an
// unrelated child (and a fresh seed); soft junctions offset the secret
// scalar, after which no seed exists for the child.
func (kp *KeyPair) Derive(path ...derivation.Junction) (crypto.KeyPair, error) {
	if len(path) == 0 {
		return kp, nil
	}
	secret := kp.secret
	seed := kp.seed
	for _, j := range path {
		cc := j.ChainCode()
		if j.Hard() {
			mini, _, err := secret.HardDeriveMiniSecretKey([]byte{}, cc)
			if err != nil {
				return nil, fmt.Errorf("sr25519 hard derive: %w", err)
			}
			secret = mini.ExpandEd25519()
			miniRaw := mini.Encode()
			seed = miniRaw[:]
		} else {
			ext, err := secret.DeriveKey(softTranscript(), cc)
			if err != nil {
				return nil, fmt.Errorf("sr25519 soft derive: %w", err)
			}
			secret, err = ext.Secret()
			if err != nil {
				return nil, fmt.Errorf("sr25519 soft derive: %w", err)
			}
			seed = nil
		}
	}
	return fromSecret(secret, seed)
}

// NewPublicKey builds a public key from its 32-byte encoding.
func NewPublicKey(b []byte) (*PublicKey, error) {
	if len(b) != PublicKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", crypto.ErrBadPublicKey, len(b), PublicKeySize)
	}
	var raw [PublicKeySize]byte
	copy(raw[:], b)
	key := new(schnorrkel.PublicKey)
	if err := key.Decode(raw); err != nil {
		return nil, fmt.Errorf("%w: %s", crypto.ErrBadPublicKey, err)
	}
	return &PublicKey{key: key}, nil
}

// Type implements crypto.PublicKey.
func (pk *PublicKey) Type() crypto.KeyType {
	return crypto.KeyTypeSr25519
}

// Bytes implements crypto.PublicKey.
func (pk *PublicKey) Bytes() []byte {
	enc := pk.key.Encode()
	return enc[:]
}

// Verify reports whether sig is a valid sr25519 signature over msg. Total:
// wrong tags, wrong lengths and undecodable signatures all return false.
func (pk *PublicKey) Verify(msg []byte, sig crypto.Signature) bool {
	if sig.Type() != crypto.KeyTypeSr25519 {
		return false
	}
	raw := sig.Bytes()
	if len(raw) != SignatureSize {
		return false
	}
	var enc [SignatureSize]byte
	copy(enc[:], raw)
	decoded := new(schnorrkel.Signature)
	if err := decoded.Decode(enc); err != nil {
		return false
	}
	ok, err := pk.key.Verify(decoded, schnorrkel.NewSigningContext(signingContext, msg))
	return err == nil && ok
}

// Derive applies a soft junction to the public key alone, offsetting the
// point without the secret. Hard junctions cannot work here.
func (pk *PublicKey) Derive(junction derivation.Junction) (crypto.PublicKey, error) {
	if junction.Hard() {
		return nil, crypto.ErrHardDeriveOnPublic
	}
	ext, err := pk.key.DeriveKey(softTranscript(), junction.ChainCode())
	if err != nil {
		return nil, fmt.Errorf("sr25519 public derive: %w", err)
	}
	derived, err := ext.Public()
	if err != nil {
		return nil, fmt.Errorf("sr25519 public derive: %w", err)
	}
	return &PublicKey{key: derived}, nil
}

// SS58 implements crypto.PublicKey.
func (pk *PublicKey) SS58(network uint16) string {
	return addresscodec.Encode(network, pk.Bytes())
}

// softTranscript is the domain-separated transcript shared by secret and
// public soft derivation; both sides must absorb identical bytes for the
// derived points to line up.
func softTranscript() *merlin.Transcript {
	t := merlin.NewTranscript("SchnorrRistrettoHDKD")
	t.AppendMessage([]byte("sign-bytes"), nil)
	return t
}
