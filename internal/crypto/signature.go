package crypto

import "fmt"

// Signature is a scheme-tagged signature value. The tag travels with the
// bytes so that verification can reject a signature produced under a
// different scheme without inspecting its contents.
type Signature struct {
	keyType KeyType
	data    []byte
}

// NewSignature builds a Signature after checking the byte length against the
// scheme's canonical size.
func NewSignature(kt KeyType, data []byte) (Signature, error) {
	want := SignatureSize(kt)
	if want == 0 {
		return Signature{}, fmt.Errorf("%w: %d", ErrUnsupportedKeyType, kt)
	}
	if len(data) != want {
		return Signature{}, fmt.Errorf("%w: got %d, want %d", ErrBadSignatureLength, len(data), want)
	}
	out := make([]byte, want)
	copy(out, data)
	return Signature{keyType: kt, data: out}, nil
}

// Type returns the scheme tag.
func (s Signature) Type() KeyType {
	return s.keyType
}

// Bytes returns a copy of the signature bytes.
func (s Signature) Bytes() []byte {
	out := make([]byte, len(s.data))
	copy(out, s.data)
	return out
}
