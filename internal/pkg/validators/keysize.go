package validators

import (
	"github.com/cybervault/crypto-engine/internal/domain/crypto"

	"github.com/go-playground/validator/v10"
)

// KeySizeTag is the struct tag name KeySizeValidation is registered under
const KeySizeTag = "keysize"

// KeySizeValidation validates a key size field against the sibling KeyType field (AES or RSA aliases).
func KeySizeValidation(fl validator.FieldLevel) bool {
	keyType, err := crypto.ParseKeyType(fl.Parent().FieldByName("KeyType").String())
	if err != nil {
		return false
	}
	return crypto.IsSupportedKeySize(keyType, uint32(fl.Field().Uint()))
}

// New returns a validator with the engine's custom tags registered.
func New() *validator.Validate {
	validate := validator.New()
	// registration only fails for an empty tag or nil func
	_ = validate.RegisterValidation(KeySizeTag, KeySizeValidation)
	return validate
}
