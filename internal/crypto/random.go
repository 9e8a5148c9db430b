package crypto

import (
	"crypto/rand"
	"io"
)

// Reader is the process-wide secure random source used by the random key
// constructors. Tests may swap it for a deterministic reader; production
// code never should.
var Reader io.Reader = rand.Reader

// RandomBytes generates n cryptographically secure random bytes.
func RandomBytes(n int) ([]byte, error) {
	return RandomBytesFrom(Reader, n)
}

// RandomBytesFrom generates n random bytes from an explicit source.
func RandomBytesFrom(src io.Reader, n int) ([]byte, error) {
	if n <= 0 {
		return nil, nil
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(src, b); err != nil {
		return nil, ErrRandomGeneration
	}
	return b, nil
}

// RandomSeed generates a random seed of the length required by the scheme.
func RandomSeed(kt KeyType) ([]byte, error) {
	n := SeedSize(kt)
	if n == 0 {
		return nil, ErrUnsupportedKeyType
	}
	return RandomBytes(n)
}
