package v1

import (
	"errors"
	"fmt"
	"time"

	"github.com/cybervault/crypto-engine/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse is returned for every failed request
type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// HealthResponse is returned by the health route
type HealthResponse struct {
	Status string `json:"status"`
}

// GenerateKeyRequest asks for a symmetric key or an RSA key pair
type GenerateKeyRequest struct {
	KeyType string `json:"key_type" validate:"required"`
	KeySize uint32 `json:"key_size" validate:"required,keysize"`
}

// GenerateKeyResponse carries key_id/key_value for a symmetric key, or the private and public
// pairs for an RSA key pair. Values are omitted when key export is disabled.
type GenerateKeyResponse struct {
	KeyID           string `json:"key_id,omitempty"`
	KeyValue        string `json:"key_value,omitempty"`
	PrivateKeyID    string `json:"private_key_id,omitempty"`
	PrivateKeyValue string `json:"private_key_value,omitempty"`
	PublicKeyID     string `json:"public_key_id,omitempty"`
	PublicKeyValue  string `json:"public_key_value,omitempty"`
}

// EncryptRequest encrypts plaintext with a stored key
type EncryptRequest struct {
	KeyID     string `json:"key_id" validate:"required"`
	Plaintext string `json:"plaintext"`
	Algorithm string `json:"algorithm" validate:"required"`
}

// EncryptResponse holds base64 ciphertext
type EncryptResponse struct {
	Ciphertext string `json:"ciphertext"`
}

// DecryptRequest decrypts base64 ciphertext with a stored key
type DecryptRequest struct {
	KeyID      string `json:"key_id" validate:"required"`
	Ciphertext string `json:"ciphertext" validate:"required"`
	Algorithm  string `json:"algorithm" validate:"required"`
}

// DecryptResponse holds the recovered plaintext
type DecryptResponse struct {
	Plaintext string `json:"plaintext"`
}

// HashRequest digests data
type HashRequest struct {
	Data      string `json:"data"`
	Algorithm string `json:"algorithm" validate:"required"`
}

// HashResponse holds a base64 digest and the canonical algorithm name
type HashResponse struct {
	HashValue string `json:"hash_value"`
	Algorithm string `json:"algorithm"`
}

// VerifyHashRequest compares data against a base64 digest
type VerifyHashRequest struct {
	Data      string `json:"data"`
	HashValue string `json:"hash_value" validate:"required"`
	Algorithm string `json:"algorithm" validate:"required"`
}

// HMACRequest computes a keyed digest with a stored symmetric key
type HMACRequest struct {
	KeyID     string `json:"key_id" validate:"required"`
	Data      string `json:"data"`
	Algorithm string `json:"algorithm" validate:"required"`
}

// HMACResponse holds a base64 MAC and the canonical algorithm name
type HMACResponse struct {
	MAC       string `json:"mac"`
	Algorithm string `json:"algorithm"`
}

// VerifyHMACRequest compares data against a base64 MAC
type VerifyHMACRequest struct {
	KeyID     string `json:"key_id" validate:"required"`
	Data      string `json:"data"`
	MAC       string `json:"mac" validate:"required"`
	Algorithm string `json:"algorithm" validate:"required"`
}

// VerifyResponse reports whether a digest or MAC matched
type VerifyResponse struct {
	IsValid bool   `json:"is_valid"`
	Message string `json:"message"`
}

// KeyDescriptorResponse describes a stored key without its material
type KeyDescriptorResponse struct {
	ID              string    `json:"id"`
	Kind            string    `json:"kind"`
	SizeBits        uint32    `json:"size_bits"`
	DateTimeCreated time.Time `json:"date_time_created"`
}

var requestValidator = validators.New()

// validateRequest runs the validate tags of a request DTO
func validateRequest(request interface{}) error {
	err := requestValidator.Struct(request)
	if err == nil {
		return nil
	}

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

// Validate checks key type and a key size allowed for it
func (r *GenerateKeyRequest) Validate() error { return validateRequest(r) }

// Validate checks required fields
func (r *EncryptRequest) Validate() error { return validateRequest(r) }

// Validate checks required fields
func (r *DecryptRequest) Validate() error { return validateRequest(r) }

// Validate checks required fields
func (r *HashRequest) Validate() error { return validateRequest(r) }

// Validate checks required fields
func (r *VerifyHashRequest) Validate() error { return validateRequest(r) }

// Validate checks required fields
func (r *HMACRequest) Validate() error { return validateRequest(r) }

// Validate checks required fields
func (r *VerifyHMACRequest) Validate() error { return validateRequest(r) }
