// Package derivation implements the hierarchical-derivation mini-language:
// junction chain codes, the secret-URI grammar parser and the domain-tagged
// HDKD hashing used by hard derivation.
package derivation

import (
	"strconv"

	"golang.org/x/crypto/blake2b"

	"github.com/substratekit/gosubd/internal/codec/scale"
)

// ChainCodeLength is the size of a junction chain code in bytes.
const ChainCodeLength = 32

// DevPhrase is the fixed, publicly known mnemonic behind development
// accounts. An empty base in a secret URI resolves to it. Never fund it.
const DevPhrase = "bottom drive obey lake curtain smoke basket hold race lonely fit walk"

// Junction is one segment of a derivation path. The component is reduced to
// a 32-byte chain code at construction, so two junctions with the same code
// and hardness are interchangeable.
type Junction struct {
	hard      bool
	chainCode [ChainCodeLength]byte
}

// Soft builds a soft junction from a path component.
func Soft(component string) Junction {
	return Junction{chainCode: chainCode(component)}
}

// Hard builds a hard junction from a path component.
func Hard(component string) Junction {
	return Junction{hard: true, chainCode: chainCode(component)}
}

// SoftIndex builds a soft junction from a numeric index.
func SoftIndex(index uint64) Junction {
	return Junction{chainCode: indexChainCode(index)}
}

// HardIndex builds a hard junction from a numeric index.
func HardIndex(index uint64) Junction {
	return Junction{hard: true, chainCode: indexChainCode(index)}
}

// Hard reports whether the junction requires the secret to derive.
func (j Junction) Hard() bool {
	return j.hard
}

// ChainCode returns the 32-byte code mixed into the child key.
func (j Junction) ChainCode() [ChainCodeLength]byte {
	return j.chainCode
}

// Harden returns the hard form of the junction with the same chain code.
func (j Junction) Harden() Junction {
	return Junction{hard: true, chainCode: j.chainCode}
}

// chainCode reduces a path component to its chain code. A component that
// parses as a decimal u64 is encoded as a fixed-width little-endian integer;
// anything else is encoded as a SCALE string. Encodings that fit in 32 bytes
// are zero-padded, longer ones are hashed down with Blake2b-256. This rule
// is network-interoperable and must not drift.
func chainCode(component string) [ChainCodeLength]byte {
	if index, err := strconv.ParseUint(component, 10, 64); err == nil {
		return indexChainCode(index)
	}
	return reduce(scale.String(component))
}

func indexChainCode(index uint64) [ChainCodeLength]byte {
	return reduce(scale.FixedUint64(index))
}

func reduce(encoded []byte) [ChainCodeLength]byte {
	if len(encoded) > ChainCodeLength {
		return blake2b.Sum256(encoded)
	}
	var cc [ChainCodeLength]byte
	copy(cc[:], encoded)
	return cc
}
