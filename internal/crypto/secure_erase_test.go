package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSecureErase(t *testing.T) {
	b := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	SecureErase(b)
	for i, v := range b {
		assert.Zerof(t, v, "byte %d not cleared", i)
	}
}

func TestSecureErase_Empty(t *testing.T) {
	// Must not panic.
	SecureErase(nil)
	SecureErase([]byte{})
}
