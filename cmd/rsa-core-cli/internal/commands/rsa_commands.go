package commands

import (
	"fmt"
	"io"

	"github.com/MGTheTrain/rsa-core/internal/app"
	"github.com/MGTheTrain/rsa-core/internal/domain/crypto"
	"github.com/MGTheTrain/rsa-core/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/rsa-core/internal/pkg/config"
	"github.com/MGTheTrain/rsa-core/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// RSACommandHandler encapsulates logic for handling RSA operations via CLI.
type RSACommandHandler struct {
	settings *config.KeyGenSettings
	logger   logger.Logger
}

// NewRSACommandHandler initializes a new RSACommandHandler with logging and key generation settings read from the environment.
func NewRSACommandHandler() (*RSACommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	settings, err := config.LoadKeyGenSettingsFromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to load key generation settings: %w", err)
	}

	return &RSACommandHandler{
		settings: settings,
		logger:   loggerInstance,
	}, nil
}

// newServices builds the processor and a service whose entropy is crypto/rand, or a reproducible stream when seed is set
func (commandHandler *RSACommandHandler) newServices(seed string) (crypto.RSAProcessor, crypto.KeyPairService, error) {
	rsaProcessor, err := cryptography.NewRSAProcessor(commandHandler.settings, cryptography.NewEntropySource(seed, "rsa-core-cli/keys"), commandHandler.logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create RSA processor: %w", err)
	}

	service, err := app.NewKeyPairService(rsaProcessor, commandHandler.settings.MaxKeyGenAttempts, commandHandler.logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create key pair service: %w", err)
	}

	return rsaProcessor, service, nil
}

func (commandHandler *RSACommandHandler) bitsFlag(cmd *cobra.Command) (int, error) {
	bits, err := cmd.Flags().GetInt("bits")
	if err != nil {
		return 0, fmt.Errorf("invalid bits flag: %w", err)
	}
	if bits == 0 {
		bits = commandHandler.settings.Bits
	}
	return bits, nil
}

// GenerateKeysCmd generates a key pair and prints its components as decimal integers
func (commandHandler *RSACommandHandler) GenerateKeysCmd(cmd *cobra.Command, _ []string) {
	bits, err := commandHandler.bitsFlag(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	seed, err := cmd.Flags().GetString("seed")
	if err != nil {
		commandHandler.logger.Error("invalid seed flag: ", err)
		return
	}

	_, service, err := commandHandler.newServices(seed)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	keyPair, err := service.GenerateKeyPair(cmd.Context(), bits)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	printKeyPair(cmd.OutOrStdout(), keyPair)
}

// EncryptCmd computes message^e mod n
func (commandHandler *RSACommandHandler) EncryptCmd(cmd *cobra.Command, _ []string) {
	message, err := getIntFlag(cmd, "message")
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	e, err := getIntFlag(cmd, "e")
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	n, err := getIntFlag(cmd, "n")
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	rsaProcessor, _, err := commandHandler.newServices("")
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	ciphertext, err := rsaProcessor.Encrypt(message, &crypto.PublicKey{E: e, N: n})
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	fmt.Fprintln(cmd.OutOrStdout(), ciphertext)
}

// DecryptCmd computes ciphertext^d mod n
func (commandHandler *RSACommandHandler) DecryptCmd(cmd *cobra.Command, _ []string) {
	ciphertext, err := getIntFlag(cmd, "ciphertext")
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	d, err := getIntFlag(cmd, "d")
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	n, err := getIntFlag(cmd, "n")
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	rsaProcessor, _, err := commandHandler.newServices("")
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	message, err := rsaProcessor.Decrypt(ciphertext, &crypto.PrivateKey{D: d, N: n})
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	fmt.Fprintln(cmd.OutOrStdout(), message)
}

// DemoCmd generates a key pair, encrypts a message and decrypts it again
func (commandHandler *RSACommandHandler) DemoCmd(cmd *cobra.Command, _ []string) {
	bits, err := commandHandler.bitsFlag(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	message, err := getIntFlag(cmd, "message")
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	seed, err := cmd.Flags().GetString("seed")
	if err != nil {
		commandHandler.logger.Error("invalid seed flag: ", err)
		return
	}

	_, service, err := commandHandler.newServices(seed)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	result, err := service.RoundTrip(cmd.Context(), bits, message)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	out := cmd.OutOrStdout()
	printKeyPair(out, result.KeyPair)
	fmt.Fprintf(out, "message=%s\n", result.Message)
	fmt.Fprintf(out, "ciphertext=%s\n", result.Ciphertext)
	fmt.Fprintf(out, "decrypted=%s\n", result.Decrypted)
	fmt.Fprintf(out, "match=%t\n", result.Match())
}

func printKeyPair(out io.Writer, keyPair *crypto.KeyPair) {
	fmt.Fprintf(out, "id=%s\n", keyPair.ID)
	fmt.Fprintf(out, "bits=%d\n", keyPair.Bits())
	fmt.Fprintf(out, "e=%s\n", keyPair.PublicKey.E)
	fmt.Fprintf(out, "n=%s\n", keyPair.PublicKey.N)
	fmt.Fprintf(out, "d=%s\n", keyPair.PrivateKey.D)
}

// InitRSACommands registers RSA-related commands
func InitRSACommands(rootCmd *cobra.Command) error {
	handler, err := NewRSACommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create RSA command handler: %w", err)
	}

	var generateKeysCmd = &cobra.Command{
		Use:   "generate-keys",
		Short: "Generate a textbook RSA key pair",
		Run:   handler.GenerateKeysCmd,
	}
	generateKeysCmd.Flags().IntP("bits", "", 0, "Modulus size in bits (defaults to RSA_CORE_BITS or 1024)")
	generateKeysCmd.Flags().StringP("seed", "", "", "Seed for reproducible output (not for real keys)")
	rootCmd.AddCommand(generateKeysCmd)

	var encryptCmd = &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a decimal integer with a public key",
		Run:   handler.EncryptCmd,
	}
	encryptCmd.Flags().StringP("message", "", "", "Message as decimal integer in [0, n)")
	encryptCmd.Flags().StringP("e", "", "", "Public exponent")
	encryptCmd.Flags().StringP("n", "", "", "Modulus")
	rootCmd.AddCommand(encryptCmd)

	var decryptCmd = &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a decimal integer with a private key",
		Run:   handler.DecryptCmd,
	}
	decryptCmd.Flags().StringP("ciphertext", "", "", "Ciphertext as decimal integer in [0, n)")
	decryptCmd.Flags().StringP("d", "", "", "Private exponent")
	decryptCmd.Flags().StringP("n", "", "", "Modulus")
	rootCmd.AddCommand(decryptCmd)

	var demoCmd = &cobra.Command{
		Use:   "demo",
		Short: "Generate a key pair and round-trip a message through it",
		Run:   handler.DemoCmd,
	}
	demoCmd.Flags().IntP("bits", "", 0, "Modulus size in bits (defaults to RSA_CORE_BITS or 1024)")
	demoCmd.Flags().StringP("message", "", "12345", "Message as decimal integer")
	demoCmd.Flags().StringP("seed", "", "", "Seed for reproducible output (not for real keys)")
	rootCmd.AddCommand(demoCmd)

	return nil
}
