package cryptography

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/MGTheTrain/rsa-core/internal/domain/bigint"
	cryptoDomain "github.com/MGTheTrain/rsa-core/internal/domain/crypto"
)

var three = bigint.New(3)

// millerRabinTester implements the PrimalityTester interface with random witnesses in [2, n-2]
type millerRabinTester struct {
	random        io.Reader
	exponentiator cryptoDomain.Exponentiator
}

// NewMillerRabinTester creates a Miller-Rabin tester drawing witnesses from random.
// A nil random falls back to crypto/rand, a nil exponentiator to ModPow.
func NewMillerRabinTester(random io.Reader, exponentiator cryptoDomain.Exponentiator) cryptoDomain.PrimalityTester {
	if random == nil {
		random = rand.Reader
	}
	if exponentiator == nil {
		exponentiator = binaryExponentiator{}
	}
	return &millerRabinTester{
		random:        random,
		exponentiator: exponentiator,
	}
}

// IsProbablePrime reports whether n survives `rounds` independent witnesses.
// A composite passes with probability at most 4^-rounds.
func (t *millerRabinTester) IsProbablePrime(n bigint.Int, rounds int) (bool, error) {
	if rounds < 1 {
		return false, fmt.Errorf("%w: got %d", cryptoDomain.ErrInvalidRounds, rounds)
	}
	if n.Cmp(bigint.Two) < 0 {
		return false, nil
	}
	if n.Cmp(three) <= 0 {
		return true, nil
	}
	if n.IsEven() {
		return false, nil
	}

	// n-1 = 2^s * d with d odd
	nMinusOne := n.Sub(bigint.One)
	s := nMinusOne.TrailingZeroBits()
	d := nMinusOne.Rsh(s)
	maxWitness := n.Sub(bigint.Two)

	for round := 0; round < rounds; round++ {
		a, err := bigint.RandomRange(t.random, bigint.Two, maxWitness)
		if err != nil {
			return false, fmt.Errorf("failed to draw witness: %w", err)
		}

		passed, err := t.witnessRound(a, d, s, n, nMinusOne)
		if err != nil {
			return false, err
		}
		if !passed {
			return false, nil
		}
	}
	return true, nil
}

func (t *millerRabinTester) witnessRound(a, d bigint.Int, s uint, n, nMinusOne bigint.Int) (bool, error) {
	x, err := t.exponentiator.ModPow(a, d, n)
	if err != nil {
		return false, fmt.Errorf("failed to compute witness power: %w", err)
	}
	if x.IsOne() || x.Equal(nMinusOne) {
		return true, nil
	}
	for i := uint(1); i < s; i++ {
		x = mulMod(x, x, n)
		if x.Equal(nMinusOne) {
			return true, nil
		}
	}
	return false, nil
}

func (t *millerRabinTester) Name() string {
	return cryptoDomain.PrimalityMillerRabin
}

// bailliePSWTester implements the PrimalityTester interface with Miller-Rabin rounds
// followed by a strong Lucas test, as done by math/big.
// No composite is known to pass Baillie-PSW.
type bailliePSWTester struct{}

func (bailliePSWTester) IsProbablePrime(n bigint.Int, rounds int) (bool, error) {
	if rounds < 1 {
		return false, fmt.Errorf("%w: got %d", cryptoDomain.ErrInvalidRounds, rounds)
	}
	return n.Big().ProbablyPrime(rounds), nil
}

func (bailliePSWTester) Name() string {
	return cryptoDomain.PrimalityBailliePSW
}

// NewPrimalityTester returns the tester registered under name
func NewPrimalityTester(name string, random io.Reader, exponentiator cryptoDomain.Exponentiator) (cryptoDomain.PrimalityTester, error) {
	switch name {
	case cryptoDomain.PrimalityMillerRabin:
		return NewMillerRabinTester(random, exponentiator), nil
	case cryptoDomain.PrimalityBailliePSW:
		return bailliePSWTester{}, nil
	default:
		return nil, fmt.Errorf("unsupported primality test %q", name)
	}
}
