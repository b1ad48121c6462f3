package crypto

import (
	"context"

	"github.com/MGTheTrain/rsa-core/internal/domain/bigint"
)

// Exponentiator computes modular powers.
type Exponentiator interface {
	// ModPow returns base^exponent mod modulus in [0, modulus).
	// Fails with ErrInvalidModulus for modulus < 1 and ErrNegativeExponent for exponent < 0.
	ModPow(base, exponent, modulus bigint.Int) (bigint.Int, error)

	// Name returns the backend identifier (ExponentiationBinary, ExponentiationConstantTime).
	Name() string
}

// PrimalityTester decides whether an integer is a probable prime.
type PrimalityTester interface {
	// IsProbablePrime reports whether n passes `rounds` rounds of the test.
	// The answer is probabilistic: true means "probable prime", never a proof.
	IsProbablePrime(n bigint.Int, rounds int) (bool, error)

	// Name returns the test identifier (PrimalityMillerRabin, PrimalityBailliePSW).
	Name() string
}

// PrimeGenerator produces random probable primes of an exact bit length.
type PrimeGenerator interface {
	// GeneratePrime returns a probable prime with exactly `bits` bits (top bit set).
	// Fails with ErrGenerationExhausted when the attempt cap is reached and with
	// ctx.Err() when the context is done between attempts.
	GeneratePrime(ctx context.Context, bits int) (bigint.Int, error)
}

// RSAProcessor handles textbook RSA key generation, encryption and decryption.
// No padding scheme is applied; the operations are the raw modular-exponentiation primitive.
type RSAProcessor interface {
	// GenerateKeyPair generates two distinct primes of bits/2 each and assembles a KeyPair.
	// Fails with ErrExponentNotCoprime when gcd(e, φ(n)) != 1; the caller decides whether to retry.
	GenerateKeyPair(ctx context.Context, bits int) (*KeyPair, error)

	// AssembleKeyPair derives a KeyPair from two given primes.
	AssembleKeyPair(p, q bigint.Int) (*KeyPair, error)

	// Encrypt returns message^e mod n. The message must be in [0, n).
	Encrypt(message bigint.Int, publicKey *PublicKey) (bigint.Int, error)

	// Decrypt returns ciphertext^d mod n. The ciphertext must be in [0, n).
	Decrypt(ciphertext bigint.Int, privateKey *PrivateKey) (bigint.Int, error)
}

// KeyPairService is the entry point for callers that need key pairs without handling
// regeneration themselves.
type KeyPairService interface {
	// GenerateKeyPair generates a key pair on a worker goroutine, regenerating primes
	// when the public exponent is not coprime with the totient.
	// It returns ctx.Err() as soon as ctx is done.
	GenerateKeyPair(ctx context.Context, bits int) (*KeyPair, error)

	// RoundTrip generates a key pair, encrypts message, decrypts the ciphertext and
	// reports whether the original message came back.
	RoundTrip(ctx context.Context, bits int, message bigint.Int) (*RoundTripResult, error)
}
