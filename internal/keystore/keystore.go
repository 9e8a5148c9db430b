// Package keystore persists key pairs on disk, indexed by scheme and public
// key. Only the 32-byte seed is stored; the pair is rebuilt from it on load,
// so soft-derived sr25519 pairs (which carry no recoverable seed) cannot be
// inserted.
package keystore

import (
	"errors"
	"fmt"
	"sync"

	"github.com/cockroachdb/pebble"

	"github.com/substratekit/gosubd/internal/crypto"
	"github.com/substratekit/gosubd/internal/crypto/keyring"
)

var (
	ErrClosed   = errors.New("keystore is closed")
	ErrNotFound = errors.New("key not found in keystore")
	ErrNoSeed   = errors.New("key pair has no recoverable seed")
)

// Keystore is a pebble-backed store of seeds keyed by scheme tag and public
// key bytes.
type Keystore struct {
	mu sync.Mutex
	db *pebble.DB
}

// Open opens (or creates) a keystore at the given directory.
func Open(path string) (*Keystore, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("failed to open keystore: %w", err)
	}
	return &Keystore{db: db}, nil
}

// Close closes the underlying database. The keystore is unusable afterwards.
func (k *Keystore) Close() error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.db == nil {
		return ErrClosed
	}
	err := k.db.Close()
	k.db = nil
	return err
}

// storageKey is one scheme tag byte followed by the public key bytes, so a
// prefix scan over the tag lists one scheme.
func storageKey(kt crypto.KeyType, pub []byte) []byte {
	out := make([]byte, 1+len(pub))
	out[0] = byte(kt)
	copy(out[1:], pub)
	return out
}

// Insert stores the pair's seed under its scheme and public key.
func (k *Keystore) Insert(pair crypto.KeyPair) error {
	seed := pair.Seed()
	if seed == nil {
		return ErrNoSeed
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	if k.db == nil {
		return ErrClosed
	}
	return k.db.Set(storageKey(pair.Type(), pair.Public().Bytes()), seed, pebble.Sync)
}

// Get rebuilds the pair stored under the given scheme and public key.
func (k *Keystore) Get(kt crypto.KeyType, pub []byte) (crypto.KeyPair, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.db == nil {
		return nil, ErrClosed
	}

	val, closer, err := k.db.Get(storageKey(kt, pub))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	defer closer.Close()

	// Copy out: pebble's value is only valid until the closer is closed.
	seed := make([]byte, len(val))
	copy(seed, val)
	defer crypto.SecureErase(seed)

	return keyring.FromSeed(kt, seed)
}

// Contains reports whether a key is stored under the given scheme and public
// key.
func (k *Keystore) Contains(kt crypto.KeyType, pub []byte) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.db == nil {
		return false
	}

	_, closer, err := k.db.Get(storageKey(kt, pub))
	if err != nil {
		return false
	}
	closer.Close()
	return true
}

// Remove deletes the key stored under the given scheme and public key.
func (k *Keystore) Remove(kt crypto.KeyType, pub []byte) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.db == nil {
		return ErrClosed
	}
	if _, closer, err := k.db.Get(storageKey(kt, pub)); err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return ErrNotFound
		}
		return err
	} else {
		closer.Close()
	}
	return k.db.Delete(storageKey(kt, pub), pebble.Sync)
}

// List returns the public keys of every stored pair of the given scheme.
func (k *Keystore) List(kt crypto.KeyType) ([]crypto.PublicKey, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.db == nil {
		return nil, ErrClosed
	}

	iter, err := k.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte{byte(kt)},
		UpperBound: []byte{byte(kt) + 1},
	})
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	var keys []crypto.PublicKey
	for iter.First(); iter.Valid(); iter.Next() {
		key := iter.Key()
		pub, err := keyring.PublicKeyFromBytes(kt, key[1:])
		if err != nil {
			return nil, fmt.Errorf("corrupt keystore entry: %w", err)
		}
		keys = append(keys, pub)
	}
	if err := iter.Error(); err != nil {
		return nil, err
	}
	return keys, nil
}
