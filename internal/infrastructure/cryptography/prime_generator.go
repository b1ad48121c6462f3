package cryptography

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"

	"github.com/MGTheTrain/rsa-core/internal/domain/bigint"
	cryptoDomain "github.com/MGTheTrain/rsa-core/internal/domain/crypto"
	"github.com/MGTheTrain/rsa-core/internal/pkg/logger"
)

// primeGenerator struct that implements the PrimeGenerator interface
type primeGenerator struct {
	random      io.Reader
	tester      cryptoDomain.PrimalityTester
	rounds      int
	maxAttempts int
	logger      logger.Logger
}

// NewPrimeGenerator creates a generator drawing candidates from random and checking them with tester.
// maxAttempts bounds the candidates per prime, 0 leaves the search uncapped.
func NewPrimeGenerator(random io.Reader, tester cryptoDomain.PrimalityTester, rounds, maxAttempts int, logger logger.Logger) (cryptoDomain.PrimeGenerator, error) {
	if tester == nil {
		return nil, fmt.Errorf("primality tester cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}
	if rounds < 1 {
		return nil, fmt.Errorf("%w: got %d", cryptoDomain.ErrInvalidRounds, rounds)
	}
	if maxAttempts < 0 {
		return nil, fmt.Errorf("max attempts must not be negative, got %d", maxAttempts)
	}
	if random == nil {
		random = rand.Reader
	}

	return &primeGenerator{
		random:      random,
		tester:      tester,
		rounds:      rounds,
		maxAttempts: maxAttempts,
		logger:      logger,
	}, nil
}

// GeneratePrime draws odd candidates in [2^(bits-1), 2^bits - 1] until one passes the primality test
func (g *primeGenerator) GeneratePrime(ctx context.Context, bits int) (bigint.Int, error) {
	if bits < 2 {
		return bigint.Int{}, fmt.Errorf("%w: primes need at least 2 bits, got %d", cryptoDomain.ErrInvalidBitLength, bits)
	}

	top := bigint.One.Lsh(uint(bits - 1))

	prime, err := Retry(ctx, g.maxAttempts, func(attempt int) (bigint.Int, bool, error) {
		candidate, err := g.candidate(top, bits)
		if err != nil {
			return bigint.Int{}, false, err
		}

		ok, err := g.tester.IsProbablePrime(candidate, g.rounds)
		if err != nil {
			return bigint.Int{}, false, fmt.Errorf("failed to test candidate: %w", err)
		}
		if ok {
			g.logger.Debug(fmt.Sprintf("Found %d-bit probable prime after %d candidates", bits, attempt))
		}
		return candidate, ok, nil
	})
	if err != nil {
		return bigint.Int{}, fmt.Errorf("failed to generate %d-bit prime: %w", bits, err)
	}

	return prime, nil
}

// candidate returns top + r with r drawn from [0, top), rounded up to the next odd value
func (g *primeGenerator) candidate(top bigint.Int, bits int) (bigint.Int, error) {
	r, err := bigint.RandomBits(g.random, bits-1)
	if err != nil {
		return bigint.Int{}, fmt.Errorf("failed to draw candidate: %w", err)
	}
	c := top.Add(r)
	if c.IsEven() {
		c = c.Add(bigint.One)
	}
	return c, nil
}
