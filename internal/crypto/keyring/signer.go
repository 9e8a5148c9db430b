package keyring

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/substratekit/gosubd/internal/codec/scale"
	"github.com/substratekit/gosubd/internal/crypto"
)

// ErrAccountNotFound is returned when a signer is asked to sign for an
// account whose public key it does not own.
var ErrAccountNotFound = errors.New("signer does not own the requested account")

// Signer binds a key pair to the account it is expected to sign for.
// Sign refuses to produce signatures when the pair's public key does not
// byte-match the account, so a mis-wired keystore fails loudly instead of
// signing with the wrong key.
type Signer struct {
	pair    crypto.KeyPair
	account crypto.PublicKey
}

// NewSigner builds a signer for the given pair and expected account.
func NewSigner(pair crypto.KeyPair, account crypto.PublicKey) *Signer {
	return &Signer{pair: pair, account: account}
}

// Account returns the account the signer is bound to.
func (s *Signer) Account() crypto.PublicKey {
	return s.account
}

// Sign encodes the payload and signs the encoded bytes. It fails with
// ErrAccountNotFound when the key pair does not own the bound account.
func (s *Signer) Sign(payload scale.Encodable) (crypto.Signature, error) {
	if s.pair.Type() != s.account.Type() ||
		!bytes.Equal(s.pair.Public().Bytes(), s.account.Bytes()) {
		return crypto.Signature{}, ErrAccountNotFound
	}
	encoded, err := payload.Encode()
	if err != nil {
		return crypto.Signature{}, fmt.Errorf("encode payload: %w", err)
	}
	return s.pair.Sign(encoded)
}
