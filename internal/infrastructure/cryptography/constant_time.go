package cryptography

import (
	"github.com/MGTheTrain/rsa-core/internal/domain/bigint"
	cryptoDomain "github.com/MGTheTrain/rsa-core/internal/domain/crypto"
	"github.com/cronokirby/saferith"
)

// constantTimeExponentiator runs the exponentiation on saferith naturals, whose running time
// depends only on the announced sizes of the operands and not on their values.
// saferith's Exp only handles odd moduli; even moduli go through ModPow. Parity of the
// modulus is public, and RSA moduli are always odd.
type constantTimeExponentiator struct{}

func (constantTimeExponentiator) ModPow(base, exponent, modulus bigint.Int) (bigint.Int, error) {
	if err := checkModPowArgs(exponent, modulus); err != nil {
		return bigint.Int{}, err
	}
	if modulus.IsOne() {
		return bigint.Zero, nil
	}
	if modulus.IsEven() {
		return ModPow(base, exponent, modulus)
	}
	if exponent.IsZero() {
		return bigint.One, nil
	}

	b, err := base.Mod(modulus)
	if err != nil {
		return bigint.Int{}, err
	}

	m := saferith.ModulusFromBytes(modulus.Bytes())
	x := new(saferith.Nat).SetBytes(b.Bytes())
	x.Mod(x, m)
	y := new(saferith.Nat).SetBytes(exponent.Bytes())

	z := new(saferith.Nat).Exp(x, y, m)
	return bigint.FromBytes(z.Bytes()), nil
}

func (constantTimeExponentiator) Name() string {
	return cryptoDomain.ExponentiationConstantTime
}
