package commands

import (
	"fmt"

	"github.com/MGTheTrain/rsa-core/internal/domain/bigint"
	"github.com/MGTheTrain/rsa-core/internal/pkg/config"
	"github.com/MGTheTrain/rsa-core/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// NewRootCmd returns the rsa-core-cli root command without sub-commands
func NewRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rsa-core-cli",
		Short: "Textbook RSA and prime arithmetic CLI tool",
		Long: `rsa-core-cli generates probable primes and textbook RSA key pairs and runs
raw modular-exponentiation encryption and decryption on decimal integers.
No padding is applied; this is not a secure encryption scheme.

Defaults can be overridden with environment variables:
- RSA_CORE_BITS, RSA_CORE_PUBLIC_EXPONENT, RSA_CORE_MR_ROUNDS
- RSA_CORE_MAX_PRIME_ATTEMPTS, RSA_CORE_MAX_KEYGEN_ATTEMPTS
- RSA_CORE_EXPONENTIATION (binary, constant-time)
- RSA_CORE_PRIMALITY_TEST (miller-rabin, baillie-psw)
- RSA_CORE_LOG_LEVEL, RSA_CORE_LOG_TYPE, RSA_CORE_LOG_FILE`,
	}
}

// InitCommands registers all command groups with the root command
func InitCommands(rootCmd *cobra.Command) error {
	if err := InitRSACommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize RSA commands: %w", err)
	}
	if err := InitPrimeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize prime commands: %w", err)
	}
	return nil
}

func setupLogger() (logger.Logger, error) {
	settings, err := config.LoadLoggerSettingsFromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to load logger settings: %w", err)
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

func getIntFlag(cmd *cobra.Command, name string) (bigint.Int, error) {
	raw, err := cmd.Flags().GetString(name)
	if err != nil {
		return bigint.Int{}, fmt.Errorf("invalid %s flag: %w", name, err)
	}
	if raw == "" {
		return bigint.Int{}, fmt.Errorf("flag --%s is required", name)
	}
	value, err := bigint.Parse(raw)
	if err != nil {
		return bigint.Int{}, fmt.Errorf("invalid %s flag: %w", name, err)
	}
	return value, nil
}
