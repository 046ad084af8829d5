package commands

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

type generateKeyOutput struct {
	KeyID           string `json:"key_id,omitempty"`
	KeyValue        string `json:"key_value,omitempty"`
	PrivateKeyID    string `json:"private_key_id,omitempty"`
	PrivateKeyValue string `json:"private_key_value,omitempty"`
	PublicKeyID     string `json:"public_key_id,omitempty"`
	PublicKeyValue  string `json:"public_key_value,omitempty"`
}

type keyDescriptorOutput struct {
	ID              string    `json:"id"`
	Kind            string    `json:"kind"`
	SizeBits        uint32    `json:"size_bits"`
	DateTimeCreated time.Time `json:"date_time_created"`
}

type ciphertextOutput struct {
	Ciphertext string `json:"ciphertext"`
}

type plaintextOutput struct {
	Plaintext string `json:"plaintext"`
}

type hashOutput struct {
	HashValue string `json:"hash_value"`
	Algorithm string `json:"algorithm"`
}

type hmacOutput struct {
	MAC       string `json:"mac"`
	Algorithm string `json:"algorithm"`
}

type verifyOutput struct {
	IsValid bool   `json:"is_valid"`
	Message string `json:"message"`
}

// writeJSON prints v as indented JSON on the command's stdout
func writeJSON(cmd *cobra.Command, v interface{}) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
