// Package mnemonic turns BIP-39 phrases into key seeds using the network's
// seed construction: the PBKDF2 salt stretches the phrase's raw entropy, not
// the phrase text, so only valid checksummed phrases are accepted.
package mnemonic

import (
	"crypto/sha512"
	"errors"
	"fmt"

	bip39 "github.com/tyler-smith/go-bip39"
	"golang.org/x/crypto/pbkdf2"

	"github.com/substratekit/gosubd/internal/crypto"
)

// SeedSize is the key seed length in bytes taken from the stretched output.
const SeedSize = 32

const (
	saltPrefix = "mnemonic"
	rounds     = 2048
	outputLen  = 64
)

// ErrInvalidMnemonic is returned when the phrase has unknown words or a bad
// checksum.
var ErrInvalidMnemonic = errors.New("invalid mnemonic phrase")

// Seed derives the 32-byte key seed from a mnemonic phrase and password:
// PBKDF2-HMAC-SHA512 over the phrase entropy with salt "mnemonic"+password,
// 2048 rounds, first 32 of 64 output bytes.
func Seed(phrase, password string) ([]byte, error) {
	entropy, err := bip39.EntropyFromMnemonic(phrase)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidMnemonic, err)
	}
	stretched := pbkdf2.Key(entropy, []byte(saltPrefix+password), rounds, outputLen, sha512.New)
	seed := make([]byte, SeedSize)
	copy(seed, stretched)
	crypto.SecureErase(stretched)
	crypto.SecureErase(entropy)
	return seed, nil
}

// Generate produces a fresh phrase with the given word count (12, 15, 18,
// 21 or 24 words).
func Generate(words int) (string, error) {
	if words < 12 || words > 24 || words%3 != 0 {
		return "", fmt.Errorf("%w: unsupported word count %d", ErrInvalidMnemonic, words)
	}
	entropy, err := crypto.RandomBytes(words / 3 * 4)
	if err != nil {
		return "", err
	}
	return bip39.NewMnemonic(entropy)
}

// Validate reports whether phrase is a well-formed checksummed mnemonic.
func Validate(phrase string) bool {
	return bip39.IsMnemonicValid(phrase)
}
