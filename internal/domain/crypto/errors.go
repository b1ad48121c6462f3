package crypto

import "errors"

var (
	// ErrInvalidModulus is returned when a modulus is smaller than one.
	ErrInvalidModulus = errors.New("modulus must be at least 1")

	// ErrNegativeExponent is returned by modular exponentiation with a negative exponent.
	ErrNegativeExponent = errors.New("exponent must not be negative")

	// ErrNotInvertible is returned when gcd(a, m) != 1 and no modular inverse exists.
	ErrNotInvertible = errors.New("value is not invertible modulo m")

	// ErrExponentNotCoprime is returned when the public exponent shares a factor with the totient.
	// The library never retries on it; callers regenerate primes themselves.
	ErrExponentNotCoprime = errors.New("public exponent is not coprime with the totient")

	// ErrInvalidExponent is returned when the public exponent is outside (1, totient).
	ErrInvalidExponent = errors.New("public exponent out of range")

	// ErrGenerationExhausted is returned when a bounded search runs out of attempts.
	ErrGenerationExhausted = errors.New("generation attempts exhausted")

	// ErrInvalidBitLength is returned for unsupported prime or modulus sizes.
	ErrInvalidBitLength = errors.New("invalid bit length")

	// ErrInvalidRounds is returned when fewer than one primality round is requested.
	ErrInvalidRounds = errors.New("primality rounds must be at least 1")

	// ErrMessageOutOfRange is returned when a message or ciphertext is outside [0, n).
	ErrMessageOutOfRange = errors.New("value must be in [0, n)")

	// ErrInvalidKey is returned when key material fails validation.
	ErrInvalidKey = errors.New("invalid key")
)
