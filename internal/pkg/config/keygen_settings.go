package config

import (
	"fmt"

	"github.com/MGTheTrain/rsa-core/internal/domain/crypto"
	"github.com/MGTheTrain/rsa-core/internal/pkg/validators"
	"github.com/go-playground/validator/v10"
)

// DefaultModulusBits is the modulus size used when none is configured
const DefaultModulusBits = 1024

// KeyGenSettings holds the tunables of prime search, key assembly and exponentiation
type KeyGenSettings struct {
	Bits              int    `mapstructure:"bits" validate:"required,modulusbits"`
	PublicExponent    int64  `mapstructure:"public_exponent" validate:"required,publicexponent"`
	MillerRabinRounds int    `mapstructure:"miller_rabin_rounds" validate:"required,min=1,max=256"`
	MaxPrimeAttempts  int    `mapstructure:"max_prime_attempts" validate:"min=0"`
	MaxKeyGenAttempts int    `mapstructure:"max_keygen_attempts" validate:"required,min=1,max=100"`
	Exponentiation    string `mapstructure:"exponentiation" validate:"required,oneof=binary constant-time"`
	PrimalityTest     string `mapstructure:"primality_test" validate:"required,oneof=miller-rabin baillie-psw"`
}

// DefaultKeyGenSettings returns settings matching the classic demonstration:
// 1024-bit modulus, e = 65537, 20 Miller-Rabin rounds.
func DefaultKeyGenSettings() *KeyGenSettings {
	return &KeyGenSettings{
		Bits:              DefaultModulusBits,
		PublicExponent:    crypto.DefaultPublicExponent,
		MillerRabinRounds: crypto.DefaultMillerRabinRounds,
		MaxPrimeAttempts:  crypto.DefaultMaxPrimeAttempts,
		MaxKeyGenAttempts: crypto.DefaultMaxKeyGenAttempts,
		Exponentiation:    crypto.ExponentiationBinary,
		PrimalityTest:     crypto.PrimalityMillerRabin,
	}
}

// Validate checks that all fields in KeyGenSettings are valid
func (s *KeyGenSettings) Validate() error {
	validate := validator.New()
	if err := validators.Register(validate); err != nil {
		return fmt.Errorf("failed to register key generation validators: %w", err)
	}

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for KeyGenSettings: %w", err)
	}

	return nil
}
