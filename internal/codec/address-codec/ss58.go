// Package addresscodec implements the SS58 textual address format: a
// network prefix and public key bytes wrapped with a Blake2b checksum and
// rendered in base58.
package addresscodec

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/blake2b"
)

const (
	// SubstratePrefix is the generic network prefix used unless an address
	// format override is supplied.
	SubstratePrefix uint16 = 42
	// MaxPrefix is the largest encodable network prefix (14 bits).
	MaxPrefix uint16 = 0b0011_1111_1111_1111
	// ChecksumLength is the checksum size for the 32- and 33-byte public key
	// bodies used here.
	ChecksumLength = 2
)

// checksumPreamble is prepended to the payload before hashing, separating
// SS58 checksums from every other use of Blake2b on the network.
var checksumPreamble = []byte("SS58PRE")

var (
	// ErrBadBase58 is returned when an address contains characters outside
	// the base58 alphabet.
	ErrBadBase58 = errors.New("invalid base58 string")
	// ErrBadChecksum is returned when the recomputed checksum does not match
	// the trailing checksum bytes.
	ErrBadChecksum = errors.New("address checksum mismatch")
	// ErrBadLength is returned when the decoded payload does not have a
	// recognized size.
	ErrBadLength = errors.New("address has wrong length")
	// ErrBadPrefix is returned when the leading prefix bytes use a reserved
	// encoding.
	ErrBadPrefix = errors.New("invalid address prefix")
)

// Encode renders (network, body) as an SS58 address. The body is the
// canonical public key encoding, 32 or 33 bytes. Prefixes 0-63 take one
// byte; 64-16383 take two bytes with the high bits of the first byte
// signalling the wide form. Prefixes above 14 bits are masked down, matching
// network behavior.
func Encode(network uint16, body []byte) string {
	ident := network & MaxPrefix

	var payload []byte
	if ident < 64 {
		payload = make([]byte, 0, 1+len(body)+ChecksumLength)
		payload = append(payload, byte(ident))
	} else {
		first := byte(ident&0b0000_0000_1111_1100)>>2 | 0b0100_0000
		second := byte(ident>>8) | byte(ident&0b11)<<6
		payload = make([]byte, 0, 2+len(body)+ChecksumLength)
		payload = append(payload, first, second)
	}
	payload = append(payload, body...)
	payload = append(payload, checksum(payload)...)
	return base58.Encode(payload)
}

// Decode parses an SS58 address back into its network prefix and public key
// bytes, verifying the checksum. Only 32- and 33-byte bodies are accepted.
func Decode(address string) (uint16, []byte, error) {
	raw, err := base58.Decode(address)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %s", ErrBadBase58, err)
	}
	if len(raw) < 1 {
		return 0, nil, ErrBadLength
	}

	var ident uint16
	var prefixLen int
	switch b := raw[0]; {
	case b < 64:
		ident, prefixLen = uint16(b), 1
	case b < 128:
		if len(raw) < 2 {
			return 0, nil, ErrBadLength
		}
		lower := b<<2 | raw[1]>>6
		upper := raw[1] & 0b0011_1111
		ident, prefixLen = uint16(lower)|uint16(upper)<<8, 2
	default:
		return 0, nil, ErrBadPrefix
	}

	bodyLen := len(raw) - prefixLen - ChecksumLength
	if bodyLen != 32 && bodyLen != 33 {
		return 0, nil, fmt.Errorf("%w: %d byte body", ErrBadLength, bodyLen)
	}

	payload := raw[:prefixLen+bodyLen]
	if !bytes.Equal(checksum(payload), raw[prefixLen+bodyLen:]) {
		return 0, nil, ErrBadChecksum
	}

	body := make([]byte, bodyLen)
	copy(body, raw[prefixLen:prefixLen+bodyLen])
	return ident, body, nil
}

// checksum is the leading bytes of Blake2b-512 over "SS58PRE" ++ payload.
func checksum(payload []byte) []byte {
	pre := make([]byte, 0, len(checksumPreamble)+len(payload))
	pre = append(pre, checksumPreamble...)
	pre = append(pre, payload...)
	h := blake2b.Sum512(pre)
	return h[:ChecksumLength]
}
