package cryptography

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"

	"github.com/MGTheTrain/rsa-core/internal/domain/bigint"
	cryptoDomain "github.com/MGTheTrain/rsa-core/internal/domain/crypto"
	"github.com/MGTheTrain/rsa-core/internal/pkg/config"
	"github.com/MGTheTrain/rsa-core/internal/pkg/logger"
	"github.com/google/uuid"
)

// maxDistinctPrimeAttempts caps how often q is redrawn while it equals p.
// Only tiny prime sizes, where few primes exist, ever need more than one draw.
const maxDistinctPrimeAttempts = 64

// rsaProcessor struct that implements the RSAProcessor interface
type rsaProcessor struct {
	publicExponent bigint.Int
	exponentiator  cryptoDomain.Exponentiator
	generator      cryptoDomain.PrimeGenerator
	logger         logger.Logger
}

// NewRSAProcessor creates and returns a new instance of rsaProcessor.
// settings select the public exponent, the exponentiation backend and the prime search;
// random is the entropy source for candidates and witnesses (crypto/rand when nil).
func NewRSAProcessor(settings *config.KeyGenSettings, random io.Reader, logger logger.Logger) (cryptoDomain.RSAProcessor, error) {
	if settings == nil {
		return nil, fmt.Errorf("key generation settings cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if random == nil {
		random = rand.Reader
	}

	exponentiator, err := NewExponentiator(settings.Exponentiation)
	if err != nil {
		return nil, err
	}
	tester, err := NewPrimalityTester(settings.PrimalityTest, random, exponentiator)
	if err != nil {
		return nil, err
	}
	generator, err := NewPrimeGenerator(random, tester, settings.MillerRabinRounds, settings.MaxPrimeAttempts, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create prime generator: %w", err)
	}

	return newRSAProcessor(bigint.New(settings.PublicExponent), exponentiator, generator, logger), nil
}

func newRSAProcessor(publicExponent bigint.Int, exponentiator cryptoDomain.Exponentiator, generator cryptoDomain.PrimeGenerator, logger logger.Logger) *rsaProcessor {
	return &rsaProcessor{
		publicExponent: publicExponent,
		exponentiator:  exponentiator,
		generator:      generator,
		logger:         logger,
	}
}

// GenerateKeyPair generates two distinct primes of bits/2 bits each and assembles them.
// The modulus has bits or bits-1 bits.
func (r *rsaProcessor) GenerateKeyPair(ctx context.Context, bits int) (*cryptoDomain.KeyPair, error) {
	if bits < cryptoDomain.MinModulusBits || bits%2 != 0 {
		return nil, fmt.Errorf("%w: modulus size must be even and at least %d, got %d", cryptoDomain.ErrInvalidBitLength, cryptoDomain.MinModulusBits, bits)
	}

	p, err := r.generator.GeneratePrime(ctx, bits/2)
	if err != nil {
		return nil, err
	}

	q, err := Retry(ctx, maxDistinctPrimeAttempts, func(attempt int) (bigint.Int, bool, error) {
		q, err := r.generator.GeneratePrime(ctx, bits/2)
		if err != nil {
			return bigint.Int{}, false, err
		}
		if q.Equal(p) {
			r.logger.Warn("Second prime equals the first, drawing again")
			return q, false, nil
		}
		return q, true, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate distinct primes: %w", err)
	}

	return r.AssembleKeyPair(p, q)
}

// AssembleKeyPair derives n = p*q, phi = (p-1)(q-1) and d = e^-1 mod phi.
// p and q are trusted to be prime; they must be distinct and greater than one.
func (r *rsaProcessor) AssembleKeyPair(p, q bigint.Int) (*cryptoDomain.KeyPair, error) {
	if p.Cmp(bigint.Two) < 0 || q.Cmp(bigint.Two) < 0 {
		return nil, fmt.Errorf("%w: primes must be at least 2", cryptoDomain.ErrInvalidKey)
	}
	if p.Equal(q) {
		return nil, fmt.Errorf("%w: primes must be distinct", cryptoDomain.ErrInvalidKey)
	}

	n := p.Mul(q)
	phi := p.Sub(bigint.One).Mul(q.Sub(bigint.One))
	e := r.publicExponent

	if e.Cmp(bigint.One) <= 0 || e.Cmp(phi) >= 0 {
		return nil, fmt.Errorf("%w: e = %s, phi = %s", cryptoDomain.ErrInvalidExponent, e, phi)
	}
	if g := e.GCD(phi); !g.IsOne() {
		return nil, fmt.Errorf("%w: gcd(e, phi) = %s", cryptoDomain.ErrExponentNotCoprime, g)
	}

	d, err := ModInverse(e, phi)
	if err != nil {
		return nil, fmt.Errorf("failed to derive private exponent: %w", err)
	}

	keyPair := &cryptoDomain.KeyPair{
		ID:         uuid.NewString(),
		Algorithm:  cryptoDomain.AlgorithmRSA,
		PublicKey:  cryptoDomain.PublicKey{E: e, N: n},
		PrivateKey: cryptoDomain.PrivateKey{D: d, N: n},
	}
	if err := keyPair.Validate(); err != nil {
		return nil, err
	}

	r.logger.Info(fmt.Sprintf("Generated RSA key pair %s with %d-bit modulus", keyPair.ID, keyPair.Bits()))
	return keyPair, nil
}

// Encrypt returns message^e mod n
func (r *rsaProcessor) Encrypt(message bigint.Int, publicKey *cryptoDomain.PublicKey) (bigint.Int, error) {
	if publicKey == nil {
		return bigint.Int{}, fmt.Errorf("public key cannot be nil")
	}
	if err := publicKey.Validate(); err != nil {
		return bigint.Int{}, err
	}
	if err := checkRange(message, publicKey.N); err != nil {
		return bigint.Int{}, err
	}

	c, err := r.exponentiator.ModPow(message, publicKey.E, publicKey.N)
	if err != nil {
		return bigint.Int{}, fmt.Errorf("failed to encrypt message: %w", err)
	}

	r.logger.Info("RSA encryption succeeded")
	return c, nil
}

// Decrypt returns ciphertext^d mod n
func (r *rsaProcessor) Decrypt(ciphertext bigint.Int, privateKey *cryptoDomain.PrivateKey) (bigint.Int, error) {
	if privateKey == nil {
		return bigint.Int{}, fmt.Errorf("private key cannot be nil")
	}
	if err := privateKey.Validate(); err != nil {
		return bigint.Int{}, err
	}
	if err := checkRange(ciphertext, privateKey.N); err != nil {
		return bigint.Int{}, err
	}

	m, err := r.exponentiator.ModPow(ciphertext, privateKey.D, privateKey.N)
	if err != nil {
		return bigint.Int{}, fmt.Errorf("failed to decrypt ciphertext: %w", err)
	}

	r.logger.Info("RSA decryption succeeded")
	return m, nil
}

func checkRange(x, n bigint.Int) error {
	if x.Sign() < 0 || x.Cmp(n) >= 0 {
		return fmt.Errorf("%w: value has %d bits, modulus has %d", cryptoDomain.ErrMessageOutOfRange, x.BitLen(), n.BitLen())
	}
	return nil
}
