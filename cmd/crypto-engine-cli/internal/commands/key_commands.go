package commands

import (
	"github.com/cybervault/crypto-engine/internal/domain/crypto"

	"github.com/spf13/cobra"
)

// KeyCommandHandler handles key generation and key lookup commands.
type KeyCommandHandler struct {
	cmdContext *CommandContext
}

// GenerateKeyCmd creates an AES key or an RSA key pair in the key store
func (handler *KeyCommandHandler) GenerateKeyCmd(cmd *cobra.Command, _ []string) error {
	keyTypeFlag, err := cmd.Flags().GetString("key-type")
	if err != nil {
		return err
	}
	keySize, err := cmd.Flags().GetUint32("key-size")
	if err != nil {
		return err
	}

	keyType, err := crypto.ParseKeyType(keyTypeFlag)
	if err != nil {
		return err
	}

	engine, err := handler.cmdContext.Engine(cmd)
	if err != nil {
		return err
	}

	result, err := engine.GenerateKey(cmd.Context(), keyType, keySize)
	if err != nil {
		return err
	}

	var output generateKeyOutput
	if result.Symmetric != nil {
		output.KeyID = result.Symmetric.ID
		output.KeyValue = result.Symmetric.Material
	}
	if result.Private != nil {
		output.PrivateKeyID = result.Private.ID
		output.PrivateKeyValue = result.Private.Material
	}
	if result.Public != nil {
		output.PublicKeyID = result.Public.ID
		output.PublicKeyValue = result.Public.Material
	}
	return writeJSON(cmd, output)
}

// DescribeKeyCmd prints the kind, size and creation time of a stored key
func (handler *KeyCommandHandler) DescribeKeyCmd(cmd *cobra.Command, _ []string) error {
	keyID, err := cmd.Flags().GetString("key-id")
	if err != nil {
		return err
	}

	engine, err := handler.cmdContext.Engine(cmd)
	if err != nil {
		return err
	}

	descriptor, err := engine.DescribeKey(cmd.Context(), keyID)
	if err != nil {
		return err
	}

	return writeJSON(cmd, keyDescriptorOutput{
		ID:              descriptor.ID,
		Kind:            string(descriptor.Kind),
		SizeBits:        descriptor.SizeBits,
		DateTimeCreated: descriptor.DateTimeCreated,
	})
}

func registerKeyCommands(rootCmd *cobra.Command, cmdContext *CommandContext) {
	handler := &KeyCommandHandler{cmdContext: cmdContext}

	var generateKeyCmd = &cobra.Command{
		Use:   "generate-key",
		Short: "Generate an AES key or an RSA key pair",
		Args:  cobra.NoArgs,
		RunE:  handler.GenerateKeyCmd,
	}
	generateKeyCmd.Flags().String("key-type", "", "Key type: AES or RSA")
	generateKeyCmd.Flags().Uint32("key-size", 0, "Key size in bits: 128/192/256 for AES, 1024/2048/4096 for RSA")
	_ = generateKeyCmd.MarkFlagRequired("key-type")
	_ = generateKeyCmd.MarkFlagRequired("key-size")
	rootCmd.AddCommand(generateKeyCmd)

	var describeKeyCmd = &cobra.Command{
		Use:   "describe-key",
		Short: "Show the metadata of a stored key",
		Args:  cobra.NoArgs,
		RunE:  handler.DescribeKeyCmd,
	}
	describeKeyCmd.Flags().String("key-id", "", "Key ID")
	_ = describeKeyCmd.MarkFlagRequired("key-id")
	rootCmd.AddCommand(describeKeyCmd)
}
