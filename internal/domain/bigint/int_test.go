//go:build unit
// +build unit

package bigint

import (
	"bytes"
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{name: "zero", input: "0", expected: "0"},
		{name: "negative zero is canonical", input: "-0", expected: "0"},
		{name: "positive", input: "12345", expected: "12345"},
		{name: "explicit plus", input: "+42", expected: "42"},
		{name: "negative", input: "-987654321987654321987654321", expected: "-987654321987654321987654321"},
		{name: "leading zeros", input: "000123", expected: "123"},
		{name: "empty", input: "", wantErr: true},
		{name: "whitespace", input: " 12", wantErr: true},
		{name: "trailing garbage", input: "12a", wantErr: true},
		{name: "hex prefix", input: "0x1f", wantErr: true},
		{name: "underscore", input: "1_000", wantErr: true},
		{name: "sign only", input: "-", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, err := Parse(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, x.String())
		})
	}
}

func TestParseBase(t *testing.T) {
	x, err := ParseBase("ff", 16)
	require.NoError(t, err)
	assert.Equal(t, "255", x.String())

	_, err = ParseBase("12", 1)
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = ParseBase("2", 2)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestZeroValue(t *testing.T) {
	var x Int
	assert.True(t, x.IsZero())
	assert.Equal(t, "0", x.String())
	assert.Equal(t, 0, x.BitLen())
	assert.True(t, x.Add(One).IsOne())
}

func TestArithmetic(t *testing.T) {
	a := MustParse("123456789012345678901234567890")
	b := MustParse("-987654321")

	assert.Equal(t, "123456789012345678900246913569", a.Add(b).String())
	assert.Equal(t, "123456789012345678902222222211", a.Sub(b).String())
	assert.Equal(t, "-121932631124828532112482853211126352690", a.Mul(b).String())
	assert.Equal(t, "987654321", b.Neg().String())
	assert.Equal(t, "987654321", b.Abs().String())
}

func TestQuoRemTruncates(t *testing.T) {
	tests := []struct {
		x, y, q, r int64
	}{
		{7, 2, 3, 1},
		{-7, 2, -3, -1},
		{7, -2, -3, 1},
		{-7, -2, 3, -1},
		{0, 5, 0, 0},
	}

	for _, tt := range tests {
		q, r, err := New(tt.x).QuoRem(New(tt.y))
		require.NoError(t, err)
		assert.Equal(t, New(tt.q).String(), q.String(), "quotient of %d/%d", tt.x, tt.y)
		assert.Equal(t, New(tt.r).String(), r.String(), "remainder of %d/%d", tt.x, tt.y)
	}
}

func TestDivisionByZero(t *testing.T) {
	_, _, err := New(10).QuoRem(Zero)
	assert.ErrorIs(t, err, ErrDivisionByZero)

	_, err = New(10).Quo(Int{})
	assert.ErrorIs(t, err, ErrDivisionByZero)

	_, err = New(10).Rem(Zero)
	assert.ErrorIs(t, err, ErrDivisionByZero)

	_, err = New(10).Mod(Zero)
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestModIsEuclidean(t *testing.T) {
	r, err := New(-7).Mod(New(3))
	require.NoError(t, err)
	assert.Equal(t, "2", r.String())

	r, err = New(-7).Mod(New(-3))
	require.NoError(t, err)
	assert.Equal(t, "2", r.String())
}

func TestPow(t *testing.T) {
	assert.Equal(t, "1", New(0).Pow(0).String())
	assert.Equal(t, "1024", Two.Pow(10).String())
	assert.Equal(t, "-27", New(-3).Pow(3).String())
	assert.Equal(t, new(big.Int).Exp(big.NewInt(7), big.NewInt(100), nil).String(), New(7).Pow(100).String())
}

func TestGCD(t *testing.T) {
	assert.Equal(t, "6", New(48).GCD(New(18)).String())
	assert.Equal(t, "6", New(-48).GCD(New(18)).String())
	assert.Equal(t, "5", New(0).GCD(New(-5)).String())
	assert.Equal(t, "0", Zero.GCD(Zero).String())
	assert.Equal(t, "1", New(65537).GCD(New(65536)).String())
}

func TestBits(t *testing.T) {
	x := New(0b101100)
	assert.Equal(t, 6, x.BitLen())
	assert.Equal(t, uint(2), x.TrailingZeroBits())
	assert.Equal(t, uint(1), x.Bit(5))
	assert.Equal(t, uint(0), x.Bit(4))
	assert.True(t, x.IsEven())
	assert.Equal(t, "11", x.Rsh(2).String())
	assert.Equal(t, "176", x.Lsh(2).String())
}

func TestImmutability(t *testing.T) {
	a := New(10)
	b := New(3)

	_ = a.Add(b)
	_ = a.Mul(b)
	_, _, _ = a.QuoRem(b)
	_ = a.Pow(5)

	assert.Equal(t, "10", a.String())
	assert.Equal(t, "3", b.String())

	raw := big.NewInt(99)
	x := FromBig(raw)
	raw.SetInt64(1)
	assert.Equal(t, "99", x.String())

	exported := x.Big()
	exported.SetInt64(2)
	assert.Equal(t, "99", x.String())
}

func TestInt64(t *testing.T) {
	v, ok := New(-42).Int64()
	assert.True(t, ok)
	assert.Equal(t, int64(-42), v)

	_, ok = Two.Pow(80).Int64()
	assert.False(t, ok)
}

func TestRandomRange(t *testing.T) {
	min := New(2)
	max := New(9)
	for i := 0; i < 200; i++ {
		r, err := RandomRange(rand.Reader, min, max)
		require.NoError(t, err)
		assert.True(t, r.Cmp(min) >= 0 && r.Cmp(max) <= 0, "value %s out of range", r)
	}

	single, err := RandomRange(rand.Reader, New(5), New(5))
	require.NoError(t, err)
	assert.Equal(t, "5", single.String())

	_, err = RandomRange(rand.Reader, New(5), New(4))
	assert.ErrorIs(t, err, ErrEmptyRange)
}

func TestRandomBits(t *testing.T) {
	for i := 0; i < 100; i++ {
		r, err := RandomBits(rand.Reader, 13)
		require.NoError(t, err)
		assert.LessOrEqual(t, r.BitLen(), 13)
	}

	all := bytes.Repeat([]byte{0xff}, 4)
	r, err := RandomBits(bytes.NewReader(all), 13)
	require.NoError(t, err)
	assert.Equal(t, "8191", r.String())

	_, err = RandomBits(bytes.NewReader(nil), 8)
	assert.Error(t, err)

	_, err = RandomBits(rand.Reader, 0)
	assert.ErrorIs(t, err, ErrEmptyRange)
}
