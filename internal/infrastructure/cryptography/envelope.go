package cryptography

import (
	"fmt"

	"github.com/cybervault/crypto-engine/internal/domain/crypto"
)

// Envelope layout: nonce || tag || ciphertext.
const (
	// NonceSize is the AES-GCM nonce size in bytes (96 bits)
	NonceSize = 12

	// TagSize is the AES-GCM authentication tag size in bytes (128 bits)
	TagSize = 16

	// MinEnvelopeSize is the size of an envelope around an empty plaintext
	MinEnvelopeSize = NonceSize + TagSize
)

// SealEnvelope frames the parts of an AEAD result. nonce and tag must have the fixed sizes.
func SealEnvelope(nonce, tag, ciphertext []byte) ([]byte, error) {
	if len(nonce) != NonceSize {
		return nil, fmt.Errorf("nonce must be %d bytes, got %d", NonceSize, len(nonce))
	}
	if len(tag) != TagSize {
		return nil, fmt.Errorf("tag must be %d bytes, got %d", TagSize, len(tag))
	}

	envelope := make([]byte, 0, MinEnvelopeSize+len(ciphertext))
	envelope = append(envelope, nonce...)
	envelope = append(envelope, tag...)
	envelope = append(envelope, ciphertext...)
	return envelope, nil
}

// OpenEnvelope splits an envelope into nonce, tag and ciphertext. The returned slices are copies.
func OpenEnvelope(envelope []byte) (nonce, tag, ciphertext []byte, err error) {
	if len(envelope) < MinEnvelopeSize {
		return nil, nil, nil, fmt.Errorf("%w: envelope is %d bytes, need at least %d", crypto.ErrMalformedCiphertext, len(envelope), MinEnvelopeSize)
	}

	nonce = append([]byte(nil), envelope[:NonceSize]...)
	tag = append([]byte(nil), envelope[NonceSize:MinEnvelopeSize]...)
	ciphertext = append([]byte(nil), envelope[MinEnvelopeSize:]...)
	return nonce, tag, ciphertext, nil
}
