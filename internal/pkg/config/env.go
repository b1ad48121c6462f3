package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variables read by the Load*FromEnv helpers
const (
	EnvLogLevel          = "RSA_CORE_LOG_LEVEL"
	EnvLogType           = "RSA_CORE_LOG_TYPE"
	EnvLogFilePath       = "RSA_CORE_LOG_FILE"
	EnvBits              = "RSA_CORE_BITS"
	EnvPublicExponent    = "RSA_CORE_PUBLIC_EXPONENT"
	EnvMillerRabinRounds = "RSA_CORE_MR_ROUNDS"
	EnvMaxPrimeAttempts  = "RSA_CORE_MAX_PRIME_ATTEMPTS"
	EnvMaxKeyGenAttempts = "RSA_CORE_MAX_KEYGEN_ATTEMPTS"
	EnvExponentiation    = "RSA_CORE_EXPONENTIATION"
	EnvPrimalityTest     = "RSA_CORE_PRIMALITY_TEST"
)

// LoadLoggerSettingsFromEnv returns DefaultLoggerSettings overridden by RSA_CORE_LOG_* variables.
// A file logger gets the default rotation from UseFile.
func LoadLoggerSettingsFromEnv() (*LoggerSettings, error) {
	settings := DefaultLoggerSettings()

	if v := os.Getenv(EnvLogLevel); v != "" {
		settings.LogLevel = v
	}
	if v := os.Getenv(EnvLogType); v != "" {
		settings.LogType = v
	}
	if settings.LogType == LogTypeFile {
		settings.UseFile(os.Getenv(EnvLogFilePath))
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// LoadKeyGenSettingsFromEnv returns DefaultKeyGenSettings overridden by RSA_CORE_* variables.
func LoadKeyGenSettingsFromEnv() (*KeyGenSettings, error) {
	settings := DefaultKeyGenSettings()

	ints := map[string]*int{
		EnvBits:              &settings.Bits,
		EnvMillerRabinRounds: &settings.MillerRabinRounds,
		EnvMaxPrimeAttempts:  &settings.MaxPrimeAttempts,
		EnvMaxKeyGenAttempts: &settings.MaxKeyGenAttempts,
	}
	for name, target := range ints {
		v := os.Getenv(name)
		if v == "" {
			continue
		}
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: %w", name, err)
		}
		*target = parsed
	}

	if v := os.Getenv(EnvPublicExponent); v != "" {
		e, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: %w", EnvPublicExponent, err)
		}
		settings.PublicExponent = e
	}
	if v := os.Getenv(EnvExponentiation); v != "" {
		settings.Exponentiation = v
	}
	if v := os.Getenv(EnvPrimalityTest); v != "" {
		settings.PrimalityTest = v
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}
