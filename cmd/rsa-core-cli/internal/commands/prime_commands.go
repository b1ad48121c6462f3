package commands

import (
	"fmt"

	"github.com/MGTheTrain/rsa-core/internal/domain/crypto"
	"github.com/MGTheTrain/rsa-core/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/rsa-core/internal/pkg/config"
	"github.com/MGTheTrain/rsa-core/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// PrimeCommandHandler encapsulates logic for prime generation and primality tests via CLI.
type PrimeCommandHandler struct {
	settings *config.KeyGenSettings
	logger   logger.Logger
}

// NewPrimeCommandHandler initializes a new PrimeCommandHandler
func NewPrimeCommandHandler() (*PrimeCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	settings, err := config.LoadKeyGenSettingsFromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to load key generation settings: %w", err)
	}

	return &PrimeCommandHandler{
		settings: settings,
		logger:   loggerInstance,
	}, nil
}

func (commandHandler *PrimeCommandHandler) tester(seed string) (crypto.PrimalityTester, error) {
	exponentiator, err := cryptography.NewExponentiator(commandHandler.settings.Exponentiation)
	if err != nil {
		return nil, err
	}
	return cryptography.NewPrimalityTester(commandHandler.settings.PrimalityTest, cryptography.NewEntropySource(seed, "rsa-core-cli/witnesses"), exponentiator)
}

// GeneratePrimeCmd prints a probable prime with exactly the requested number of bits
func (commandHandler *PrimeCommandHandler) GeneratePrimeCmd(cmd *cobra.Command, _ []string) {
	bits, err := cmd.Flags().GetInt("bits")
	if err != nil {
		commandHandler.logger.Error("invalid bits flag: ", err)
		return
	}
	seed, err := cmd.Flags().GetString("seed")
	if err != nil {
		commandHandler.logger.Error("invalid seed flag: ", err)
		return
	}

	tester, err := commandHandler.tester(seed)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	generator, err := cryptography.NewPrimeGenerator(
		cryptography.NewEntropySource(seed, "rsa-core-cli/candidates"),
		tester,
		commandHandler.settings.MillerRabinRounds,
		commandHandler.settings.MaxPrimeAttempts,
		commandHandler.logger,
	)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	prime, err := generator.GeneratePrime(cmd.Context(), bits)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	fmt.Fprintln(cmd.OutOrStdout(), prime)
}

// IsPrimeCmd reports whether n is a probable prime
func (commandHandler *PrimeCommandHandler) IsPrimeCmd(cmd *cobra.Command, _ []string) {
	n, err := getIntFlag(cmd, "n")
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	rounds, err := cmd.Flags().GetInt("rounds")
	if err != nil {
		commandHandler.logger.Error("invalid rounds flag: ", err)
		return
	}
	if rounds == 0 {
		rounds = commandHandler.settings.MillerRabinRounds
	}

	tester, err := commandHandler.tester("")
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	probablePrime, err := tester.IsProbablePrime(n, rounds)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	fmt.Fprintln(cmd.OutOrStdout(), probablePrime)
}

// InitPrimeCommands registers prime-related commands
func InitPrimeCommands(rootCmd *cobra.Command) error {
	handler, err := NewPrimeCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create prime command handler: %w", err)
	}

	var generatePrimeCmd = &cobra.Command{
		Use:   "generate-prime",
		Short: "Generate a probable prime of an exact bit length",
		Run:   handler.GeneratePrimeCmd,
	}
	generatePrimeCmd.Flags().IntP("bits", "", 512, "Bit length of the prime")
	generatePrimeCmd.Flags().StringP("seed", "", "", "Seed for reproducible output")
	rootCmd.AddCommand(generatePrimeCmd)

	var isPrimeCmd = &cobra.Command{
		Use:   "is-prime",
		Short: "Test a decimal integer for primality",
		Run:   handler.IsPrimeCmd,
	}
	isPrimeCmd.Flags().StringP("n", "", "", "Integer to test")
	isPrimeCmd.Flags().IntP("rounds", "", 0, "Number of rounds (defaults to RSA_CORE_MR_ROUNDS or 20)")
	rootCmd.AddCommand(isPrimeCmd)

	return nil
}
