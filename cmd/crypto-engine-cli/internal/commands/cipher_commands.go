package commands

import (
	"github.com/cybervault/crypto-engine/internal/domain/crypto"

	"github.com/spf13/cobra"
)

// CipherCommandHandler handles encrypt and decrypt commands.
type CipherCommandHandler struct {
	cmdContext *CommandContext
}

// EncryptCmd encrypts plaintext with a stored AES key or RSA public key
func (handler *CipherCommandHandler) EncryptCmd(cmd *cobra.Command, _ []string) error {
	keyID, _ := cmd.Flags().GetString("key-id")
	plaintext, _ := cmd.Flags().GetString("plaintext")
	algorithmFlag, _ := cmd.Flags().GetString("algorithm")

	algorithm, err := crypto.ParseAlgorithm(algorithmFlag)
	if err != nil {
		return err
	}

	engine, err := handler.cmdContext.Engine(cmd)
	if err != nil {
		return err
	}

	ciphertext, err := engine.Encrypt(cmd.Context(), keyID, plaintext, algorithm)
	if err != nil {
		return err
	}
	return writeJSON(cmd, ciphertextOutput{Ciphertext: ciphertext})
}

// DecryptCmd decrypts base64 ciphertext with a stored AES key or RSA private key
func (handler *CipherCommandHandler) DecryptCmd(cmd *cobra.Command, _ []string) error {
	keyID, _ := cmd.Flags().GetString("key-id")
	ciphertext, _ := cmd.Flags().GetString("ciphertext")
	algorithmFlag, _ := cmd.Flags().GetString("algorithm")

	algorithm, err := crypto.ParseAlgorithm(algorithmFlag)
	if err != nil {
		return err
	}

	engine, err := handler.cmdContext.Engine(cmd)
	if err != nil {
		return err
	}

	plaintext, err := engine.Decrypt(cmd.Context(), keyID, ciphertext, algorithm)
	if err != nil {
		return err
	}
	return writeJSON(cmd, plaintextOutput{Plaintext: plaintext})
}

func registerCipherCommands(rootCmd *cobra.Command, cmdContext *CommandContext) {
	handler := &CipherCommandHandler{cmdContext: cmdContext}

	var encryptCmd = &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt text with a stored key",
		Args:  cobra.NoArgs,
		RunE:  handler.EncryptCmd,
	}
	encryptCmd.Flags().String("key-id", "", "AES key ID or RSA public key ID")
	encryptCmd.Flags().String("plaintext", "", "UTF-8 text to encrypt")
	encryptCmd.Flags().String("algorithm", "AES", "Cipher algorithm: AES or RSA")
	_ = encryptCmd.MarkFlagRequired("key-id")
	rootCmd.AddCommand(encryptCmd)

	var decryptCmd = &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt base64 ciphertext with a stored key",
		Args:  cobra.NoArgs,
		RunE:  handler.DecryptCmd,
	}
	decryptCmd.Flags().String("key-id", "", "AES key ID or RSA private key ID")
	decryptCmd.Flags().String("ciphertext", "", "Base64 ciphertext")
	decryptCmd.Flags().String("algorithm", "AES", "Cipher algorithm: AES or RSA")
	_ = decryptCmd.MarkFlagRequired("key-id")
	_ = decryptCmd.MarkFlagRequired("ciphertext")
	rootCmd.AddCommand(decryptCmd)
}
