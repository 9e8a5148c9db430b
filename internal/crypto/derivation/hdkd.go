package derivation

import (
	"golang.org/x/crypto/blake2b"

	"github.com/substratekit/gosubd/internal/codec/scale"
)

// Domain-separation tags for hard key derivation. The tag keeps child seeds
// of different schemes unrelated even when built from identical inputs.
const (
	Ed25519HDKD   = "Ed25519HDKD"
	Secp256k1HDKD = "Secp256k1HDKD"
)

// HDKD computes the child seed for a hard junction:
// Blake2b-256 over the SCALE tuple (tag, secret, chainCode), i.e.
// compact(len(tag)) || tag || secret || chainCode. The layout is shared with
// the live network and must be reproduced byte for byte.
func HDKD(tag string, secret []byte, cc [ChainCodeLength]byte) [32]byte {
	pre := make([]byte, 0, 1+len(tag)+len(secret)+ChainCodeLength)
	pre = scale.AppendCompactUint(pre, uint64(len(tag)))
	pre = append(pre, tag...)
	pre = append(pre, secret...)
	pre = append(pre, cc[:]...)
	return blake2b.Sum256(pre)
}
