package cryptography

import (
	"fmt"

	"github.com/MGTheTrain/rsa-core/internal/domain/bigint"
	cryptoDomain "github.com/MGTheTrain/rsa-core/internal/domain/crypto"
)

// ModPow returns base^exponent mod modulus in [0, modulus).
// The exponent is scanned from its most significant bit down; the accumulator is squared
// and reduced at every step, so intermediates never exceed twice the modulus size.
// A negative base is reduced into [0, modulus) first.
func ModPow(base, exponent, modulus bigint.Int) (bigint.Int, error) {
	if err := checkModPowArgs(exponent, modulus); err != nil {
		return bigint.Int{}, err
	}
	if modulus.IsOne() {
		return bigint.Zero, nil
	}

	b, err := base.Mod(modulus)
	if err != nil {
		return bigint.Int{}, err
	}

	result := bigint.One
	for i := exponent.BitLen() - 1; i >= 0; i-- {
		result = mulMod(result, result, modulus)
		if exponent.Bit(i) == 1 {
			result = mulMod(result, b, modulus)
		}
	}
	return result, nil
}

func checkModPowArgs(exponent, modulus bigint.Int) error {
	if modulus.Sign() < 1 {
		return fmt.Errorf("%w: got %s", cryptoDomain.ErrInvalidModulus, modulus)
	}
	if exponent.Sign() < 0 {
		return fmt.Errorf("%w: got %s", cryptoDomain.ErrNegativeExponent, exponent)
	}
	return nil
}

// mulMod expects a positive modulus
func mulMod(a, b, modulus bigint.Int) bigint.Int {
	r, _ := a.Mul(b).Mod(modulus)
	return r
}

// binaryExponentiator implements the Exponentiator interface with ModPow
type binaryExponentiator struct{}

func (binaryExponentiator) ModPow(base, exponent, modulus bigint.Int) (bigint.Int, error) {
	return ModPow(base, exponent, modulus)
}

func (binaryExponentiator) Name() string {
	return cryptoDomain.ExponentiationBinary
}

// NewExponentiator returns the backend registered under name
func NewExponentiator(name string) (cryptoDomain.Exponentiator, error) {
	switch name {
	case cryptoDomain.ExponentiationBinary:
		return binaryExponentiator{}, nil
	case cryptoDomain.ExponentiationConstantTime:
		return constantTimeExponentiator{}, nil
	default:
		return nil, fmt.Errorf("unsupported exponentiation backend %q", name)
	}
}
