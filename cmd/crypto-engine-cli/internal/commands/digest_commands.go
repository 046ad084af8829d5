package commands

import (
	"github.com/cybervault/crypto-engine/internal/domain/crypto"

	"github.com/spf13/cobra"
)

// DigestCommandHandler handles hash and HMAC commands.
type DigestCommandHandler struct {
	cmdContext *CommandContext
}

// HashCmd prints the base64 digest of data
func (handler *DigestCommandHandler) HashCmd(cmd *cobra.Command, _ []string) error {
	data, _ := cmd.Flags().GetString("data")
	algorithm, err := hashAlgorithmFlag(cmd)
	if err != nil {
		return err
	}

	engine, err := handler.cmdContext.Engine(cmd)
	if err != nil {
		return err
	}

	result, err := engine.Hash(cmd.Context(), data, algorithm)
	if err != nil {
		return err
	}
	return writeJSON(cmd, hashOutput{HashValue: result.HashValue, Algorithm: string(result.Algorithm)})
}

// VerifyHashCmd compares data against a base64 digest
func (handler *DigestCommandHandler) VerifyHashCmd(cmd *cobra.Command, _ []string) error {
	data, _ := cmd.Flags().GetString("data")
	hashValue, _ := cmd.Flags().GetString("hash-value")
	algorithm, err := hashAlgorithmFlag(cmd)
	if err != nil {
		return err
	}

	engine, err := handler.cmdContext.Engine(cmd)
	if err != nil {
		return err
	}

	result, err := engine.VerifyHash(cmd.Context(), data, hashValue, algorithm)
	if err != nil {
		return err
	}
	return writeJSON(cmd, verifyOutput{IsValid: result.IsValid, Message: result.Message})
}

// HMACCmd prints the base64 HMAC of data under a stored AES key
func (handler *DigestCommandHandler) HMACCmd(cmd *cobra.Command, _ []string) error {
	keyID, _ := cmd.Flags().GetString("key-id")
	data, _ := cmd.Flags().GetString("data")
	algorithm, err := hashAlgorithmFlag(cmd)
	if err != nil {
		return err
	}

	engine, err := handler.cmdContext.Engine(cmd)
	if err != nil {
		return err
	}

	result, err := engine.HMAC(cmd.Context(), keyID, data, algorithm)
	if err != nil {
		return err
	}
	return writeJSON(cmd, hmacOutput{MAC: result.MAC, Algorithm: string(result.Algorithm)})
}

// VerifyHMACCmd compares data against a base64 HMAC
func (handler *DigestCommandHandler) VerifyHMACCmd(cmd *cobra.Command, _ []string) error {
	keyID, _ := cmd.Flags().GetString("key-id")
	data, _ := cmd.Flags().GetString("data")
	mac, _ := cmd.Flags().GetString("mac")
	algorithm, err := hashAlgorithmFlag(cmd)
	if err != nil {
		return err
	}

	engine, err := handler.cmdContext.Engine(cmd)
	if err != nil {
		return err
	}

	result, err := engine.VerifyHMAC(cmd.Context(), keyID, data, mac, algorithm)
	if err != nil {
		return err
	}
	return writeJSON(cmd, verifyOutput{IsValid: result.IsValid, Message: result.Message})
}

func hashAlgorithmFlag(cmd *cobra.Command) (crypto.HashAlgorithm, error) {
	value, _ := cmd.Flags().GetString("algorithm")
	return crypto.ParseHashAlgorithm(value)
}

func registerDigestCommands(rootCmd *cobra.Command, cmdContext *CommandContext) {
	handler := &DigestCommandHandler{cmdContext: cmdContext}

	var hashCmd = &cobra.Command{
		Use:   "hash",
		Short: "Compute the digest of data",
		Args:  cobra.NoArgs,
		RunE:  handler.HashCmd,
	}
	hashCmd.Flags().String("data", "", "Data to hash")
	hashCmd.Flags().String("algorithm", "SHA-256", "Hash algorithm: SHA-256, SHA-512 or MD5")
	rootCmd.AddCommand(hashCmd)

	var verifyHashCmd = &cobra.Command{
		Use:   "verify-hash",
		Short: "Check data against a base64 digest",
		Args:  cobra.NoArgs,
		RunE:  handler.VerifyHashCmd,
	}
	verifyHashCmd.Flags().String("data", "", "Data to verify")
	verifyHashCmd.Flags().String("hash-value", "", "Base64 digest")
	verifyHashCmd.Flags().String("algorithm", "SHA-256", "Hash algorithm: SHA-256, SHA-512 or MD5")
	_ = verifyHashCmd.MarkFlagRequired("hash-value")
	rootCmd.AddCommand(verifyHashCmd)

	var hmacCmd = &cobra.Command{
		Use:   "hmac",
		Short: "Compute the HMAC of data under a stored AES key",
		Args:  cobra.NoArgs,
		RunE:  handler.HMACCmd,
	}
	hmacCmd.Flags().String("key-id", "", "AES key ID")
	hmacCmd.Flags().String("data", "", "Data to authenticate")
	hmacCmd.Flags().String("algorithm", "SHA-256", "Hash algorithm: SHA-256, SHA-512 or MD5")
	_ = hmacCmd.MarkFlagRequired("key-id")
	rootCmd.AddCommand(hmacCmd)

	var verifyHMACCmd = &cobra.Command{
		Use:   "verify-hmac",
		Short: "Check data against a base64 HMAC",
		Args:  cobra.NoArgs,
		RunE:  handler.VerifyHMACCmd,
	}
	verifyHMACCmd.Flags().String("key-id", "", "AES key ID")
	verifyHMACCmd.Flags().String("data", "", "Data to verify")
	verifyHMACCmd.Flags().String("mac", "", "Base64 HMAC")
	verifyHMACCmd.Flags().String("algorithm", "SHA-256", "Hash algorithm: SHA-256, SHA-512 or MD5")
	_ = verifyHMACCmd.MarkFlagRequired("key-id")
	_ = verifyHMACCmd.MarkFlagRequired("mac")
	rootCmd.AddCommand(verifyHMACCmd)
}
