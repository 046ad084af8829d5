package keys

import (
	"errors"
	"fmt"
	"time"

	"github.com/cybervault/crypto-engine/internal/domain/crypto"

	"github.com/go-playground/validator/v10"
)

// Kind tags the material held by a KeyRecord.
type Kind string

const (
	// KindSymmetricKey holds raw AES key bytes
	KindSymmetricKey Kind = "symmetric"
	// KindRSAPrivateKey holds a PEM encoded PKCS#1 RSA private key
	KindRSAPrivateKey Kind = "private"
	// KindRSAPublicKey holds a PEM encoded PKIX RSA public key
	KindRSAPublicKey Kind = "public"
)

// ParseKind converts a persisted kind back into a Kind, rejecting anything outside the closed set.
func ParseKind(value string) (Kind, error) {
	switch Kind(value) {
	case KindSymmetricKey, KindRSAPrivateKey, KindRSAPublicKey:
		return Kind(value), nil
	default:
		return "", fmt.Errorf("unknown key kind %q", value)
	}
}

// KeyRecord is the stored unit of key material. Records are immutable once stored:
// stores copy Material on insert and on every read.
type KeyRecord struct {
	// ID is assigned by the store on insertion and is empty before that
	ID              string
	Kind            Kind   `validate:"required,oneof=symmetric private public"`
	Material        []byte `validate:"required"`
	SizeBits        uint32 `validate:"required"`
	DateTimeCreated time.Time
}

// NewKeyRecord creates a record stamped with the current UTC time. The material slice is copied.
func NewKeyRecord(kind Kind, material []byte, sizeBits uint32) *KeyRecord {
	return &KeyRecord{
		Kind:            kind,
		Material:        append([]byte(nil), material...),
		SizeBits:        sizeBits,
		DateTimeCreated: time.Now().UTC(),
	}
}

// Validate for validating KeyRecord struct
func (r *KeyRecord) Validate() error {
	validate := validator.New()

	err := validate.Struct(r)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// Require returns the record material if the record is of the wanted kind and
// crypto.ErrKeyKindMismatch otherwise.
func (r *KeyRecord) Require(kind Kind) ([]byte, error) {
	if r.Kind != kind {
		return nil, fmt.Errorf("%w: key %s is %s, need %s", crypto.ErrKeyKindMismatch, r.ID, r.Kind, kind)
	}
	return r.Material, nil
}

// SymmetricKey returns the raw AES key bytes of a symmetric record.
func (r *KeyRecord) SymmetricKey() ([]byte, error) {
	return r.Require(KindSymmetricKey)
}

// RSAPrivateKey returns the PEM encoded private key of a private record.
func (r *KeyRecord) RSAPrivateKey() ([]byte, error) {
	return r.Require(KindRSAPrivateKey)
}

// RSAPublicKey returns the PEM encoded public key of a public record.
func (r *KeyRecord) RSAPublicKey() ([]byte, error) {
	return r.Require(KindRSAPublicKey)
}

// Wipe zeroes the record material in place.
func (r *KeyRecord) Wipe() {
	clear(r.Material)
}

// Clone returns a deep copy of the record.
func (r *KeyRecord) Clone() *KeyRecord {
	clone := *r
	clone.Material = append([]byte(nil), r.Material...)
	return &clone
}

// Descriptor returns the non-secret metadata of the record.
func (r *KeyRecord) Descriptor() *KeyDescriptor {
	return &KeyDescriptor{
		ID:              r.ID,
		Kind:            r.Kind,
		SizeBits:        r.SizeBits,
		DateTimeCreated: r.DateTimeCreated,
	}
}

// KeyDescriptor describes a stored key without its material.
type KeyDescriptor struct {
	ID              string
	Kind            Kind
	SizeBits        uint32
	DateTimeCreated time.Time
}

// GeneratedKey is one record created by a key generation call.
// Material is the base64 encoding of the stored material, or empty when export is disabled.
type GeneratedKey struct {
	ID       string
	Kind     Kind
	Material string
}

// GenerateKeyResult holds the records created by one key generation call:
// Symmetric for AES, Private and Public for an RSA key pair.
type GenerateKeyResult struct {
	KeyType   crypto.KeyType
	Symmetric *GeneratedKey
	Private   *GeneratedKey
	Public    *GeneratedKey
}
