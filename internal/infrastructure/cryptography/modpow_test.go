//go:build unit
// +build unit

package cryptography

import (
	"crypto/rand"
	"testing"

	"github.com/MGTheTrain/rsa-core/internal/domain/bigint"
	"github.com/MGTheTrain/rsa-core/internal/domain/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupExponentiators(t *testing.T) []crypto.Exponentiator {
	t.Helper()
	var exponentiators []crypto.Exponentiator
	for _, name := range []string{crypto.ExponentiationBinary, crypto.ExponentiationConstantTime} {
		exp, err := NewExponentiator(name)
		require.NoError(t, err)
		require.Equal(t, name, exp.Name())
		exponentiators = append(exponentiators, exp)
	}
	return exponentiators
}

// naiveModPow multiplies e times, reducing after every step
func naiveModPow(t *testing.T, a bigint.Int, e int64, m bigint.Int) bigint.Int {
	t.Helper()
	r, err := bigint.One.Mod(m)
	require.NoError(t, err)
	for i := int64(0); i < e; i++ {
		r, err = r.Mul(a).Mod(m)
		require.NoError(t, err)
	}
	return r
}

func randomIn(t *testing.T, min, max int64) bigint.Int {
	t.Helper()
	r, err := bigint.RandomRange(rand.Reader, bigint.New(min), bigint.New(max))
	require.NoError(t, err)
	return r
}

func TestModPowMatchesNaiveReference(t *testing.T) {
	for _, exp := range setupExponentiators(t) {
		t.Run(exp.Name(), func(t *testing.T) {
			for i := 0; i < 300; i++ {
				a := randomIn(t, -1_000_000, 1_000_000)
				e := randomIn(t, 0, 20)
				m := randomIn(t, 1, 1_000_000)

				eInt, _ := e.Int64()
				expected := naiveModPow(t, a, eInt, m)

				got, err := exp.ModPow(a, e, m)
				require.NoError(t, err)
				assert.True(t, got.Sign() >= 0 && got.Cmp(m) < 0, "result %s outside [0, %s)", got, m)
				assert.Equal(t, expected.String(), got.String(), "%s^%s mod %s", a, e, m)
			}
		})
	}
}

func TestModPowLargeOperands(t *testing.T) {
	for _, exp := range setupExponentiators(t) {
		t.Run(exp.Name(), func(t *testing.T) {
			for i := 0; i < 10; i++ {
				a, err := bigint.RandomBits(rand.Reader, 512)
				require.NoError(t, err)
				e, err := bigint.RandomBits(rand.Reader, 512)
				require.NoError(t, err)
				m, err := bigint.RandomBits(rand.Reader, 512)
				require.NoError(t, err)
				m = m.Add(bigint.Two)

				expected := a.Big()
				expected.Exp(expected, e.Big(), m.Big())

				got, err := exp.ModPow(a, e, m)
				require.NoError(t, err)
				assert.Equal(t, expected.String(), got.String())
			}
		})
	}
}

func TestModPowEdgeCases(t *testing.T) {
	for _, exp := range setupExponentiators(t) {
		t.Run(exp.Name(), func(t *testing.T) {
			r, err := exp.ModPow(bigint.New(12345), bigint.New(65537), bigint.One)
			require.NoError(t, err)
			assert.True(t, r.IsZero())

			r, err = exp.ModPow(bigint.New(7), bigint.Zero, bigint.New(13))
			require.NoError(t, err)
			assert.True(t, r.IsOne())

			r, err = exp.ModPow(bigint.Zero, bigint.Zero, bigint.New(13))
			require.NoError(t, err)
			assert.True(t, r.IsOne())

			r, err = exp.ModPow(bigint.Zero, bigint.New(5), bigint.New(13))
			require.NoError(t, err)
			assert.True(t, r.IsZero())

			_, err = exp.ModPow(bigint.Two, bigint.Two, bigint.Zero)
			assert.ErrorIs(t, err, crypto.ErrInvalidModulus)

			_, err = exp.ModPow(bigint.Two, bigint.Two, bigint.New(-7))
			assert.ErrorIs(t, err, crypto.ErrInvalidModulus)

			_, err = exp.ModPow(bigint.Two, bigint.New(-1), bigint.New(7))
			assert.ErrorIs(t, err, crypto.ErrNegativeExponent)
		})
	}
}

func TestNewExponentiatorUnknown(t *testing.T) {
	_, err := NewExponentiator("montgomery")
	assert.Error(t, err)
}

func TestModPowEvenModulus(t *testing.T) {
	tests := []struct {
		base, exponent, modulus int64
		expected                int64
	}{
		{3, 2, 10, 9},
		{3, 2, 11, 9},
		{7, 5, 2, 1},
		{2, 10, 1024, 0},
		{5, 3, 1_000_000, 125},
		{-3, 3, 8, 5},
		{12345, 65537, 65536, 12345},
	}

	for _, exp := range setupExponentiators(t) {
		t.Run(exp.Name(), func(t *testing.T) {
			for _, tt := range tests {
				got, err := exp.ModPow(bigint.New(tt.base), bigint.New(tt.exponent), bigint.New(tt.modulus))
				require.NoError(t, err)
				assert.Equal(t, bigint.New(tt.expected).String(), got.String(), "%d^%d mod %d", tt.base, tt.exponent, tt.modulus)
			}
		})
	}
}
