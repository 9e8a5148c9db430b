package crypto

import "errors"

var (
	// ErrUnsupportedKeyType is returned when an unsupported key type is requested.
	ErrUnsupportedKeyType = errors.New("unsupported key type")
	// ErrRandomGeneration is returned when random number generation fails.
	ErrRandomGeneration = errors.New("failed to generate random bytes")
	// ErrBadSeedLength is returned when a seed does not have the exact length
	// required by the scheme.
	ErrBadSeedLength = errors.New("seed has wrong length")
	// ErrBadPrivateKey is returned when the underlying primitive rejects the
	// secret material, e.g. a secp256k1 scalar that is zero or not below the
	// curve order.
	ErrBadPrivateKey = errors.New("invalid private key")
	// ErrBadPublicKey is returned when public key bytes do not decode to a
	// valid curve element.
	ErrBadPublicKey = errors.New("invalid public key")
	// ErrBadSignatureLength is returned when signature bytes do not have the
	// scheme's canonical length.
	ErrBadSignatureLength = errors.New("signature has wrong length")
	// ErrSoftDeriveNotSupported is returned when a soft junction is applied
	// to a scheme that only supports hard derivation.
	ErrSoftDeriveNotSupported = errors.New("soft derivation not supported by this scheme")
	// ErrHardDeriveOnPublic is returned when a hard junction is applied to a
	// bare public key. Hard derivation needs the secret.
	ErrHardDeriveOnPublic = errors.New("hard derivation requires the secret key")
)
