package cryptography

import (
	"fmt"

	"github.com/MGTheTrain/rsa-core/internal/domain/bigint"
	cryptoDomain "github.com/MGTheTrain/rsa-core/internal/domain/crypto"
)

// ModInverse returns the x in [0, m) with (a*x) mod m = 1, using the extended Euclidean algorithm.
// It fails with ErrNotInvertible when gcd(a, m) != 1. Every value is congruent to 0 modulo 1,
// so ModInverse(a, 1) returns 0.
func ModInverse(a, m bigint.Int) (bigint.Int, error) {
	if m.Sign() < 1 {
		return bigint.Int{}, fmt.Errorf("%w: got %s", cryptoDomain.ErrInvalidModulus, m)
	}
	if m.IsOne() {
		return bigint.Zero, nil
	}

	r0, err := a.Mod(m)
	if err != nil {
		return bigint.Int{}, err
	}
	r1 := m
	s0, s1 := bigint.One, bigint.Zero

	for !r1.IsZero() {
		q, r, err := r0.QuoRem(r1)
		if err != nil {
			return bigint.Int{}, err
		}
		r0, r1 = r1, r
		s0, s1 = s1, s0.Sub(q.Mul(s1))
	}

	if !r0.IsOne() {
		return bigint.Int{}, fmt.Errorf("%w: gcd(%s, %s) = %s", cryptoDomain.ErrNotInvertible, a, m, r0)
	}
	return s0.Mod(m)
}
