package crypto

import (
	"errors"
	"fmt"

	"github.com/MGTheTrain/rsa-core/internal/domain/bigint"
	"github.com/go-playground/validator/v10"
)

// PublicKey is the public half of a textbook RSA key: exponent E and modulus N.
type PublicKey struct {
	E bigint.Int
	N bigint.Int
}

// Validate checks that N > 1 and 1 < E < N.
// The totient is not known from the public key alone, so coprimality is checked at generation time.
func (k *PublicKey) Validate() error {
	if k.N.Cmp(bigint.One) <= 0 {
		return fmt.Errorf("%w: modulus must be greater than 1", ErrInvalidKey)
	}
	if k.E.Cmp(bigint.One) <= 0 || k.E.Cmp(k.N) >= 0 {
		return fmt.Errorf("%w: public exponent must be in (1, n)", ErrInvalidKey)
	}
	return nil
}

// PrivateKey is the private half of a textbook RSA key: exponent D and modulus N.
type PrivateKey struct {
	D bigint.Int
	N bigint.Int
}

// Validate checks that N > 1 and 0 < D < N.
func (k *PrivateKey) Validate() error {
	if k.N.Cmp(bigint.One) <= 0 {
		return fmt.Errorf("%w: modulus must be greater than 1", ErrInvalidKey)
	}
	if k.D.Sign() <= 0 || k.D.Cmp(k.N) >= 0 {
		return fmt.Errorf("%w: private exponent must be in (0, n)", ErrInvalidKey)
	}
	return nil
}

// KeyPair owns a PublicKey and a PrivateKey sharing the same modulus.
// It is created atomically by the key generator and never modified afterwards.
type KeyPair struct {
	ID         string `validate:"required,uuid"`
	Algorithm  string `validate:"required,eq=RSA"`
	PublicKey  PublicKey
	PrivateKey PrivateKey
}

// Bits returns the bit length of the shared modulus.
func (kp *KeyPair) Bits() int {
	return kp.PublicKey.N.BitLen()
}

// Validate checks the metadata tags, both halves and that they share one modulus.
func (kp *KeyPair) Validate() error {
	validate := validator.New()

	err := validate.Struct(kp)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("%w: validation failed: %v", ErrInvalidKey, messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	if err := kp.PublicKey.Validate(); err != nil {
		return err
	}
	if err := kp.PrivateKey.Validate(); err != nil {
		return err
	}
	if !kp.PublicKey.N.Equal(kp.PrivateKey.N) {
		return fmt.Errorf("%w: public and private modulus differ", ErrInvalidKey)
	}
	return nil
}

// RoundTripResult records one encrypt/decrypt cycle under a fresh key pair.
type RoundTripResult struct {
	KeyPair    *KeyPair
	Message    bigint.Int
	Ciphertext bigint.Int
	Decrypted  bigint.Int
}

// Match reports whether decryption recovered the message.
func (r *RoundTripResult) Match() bool {
	return r.Decrypted.Equal(r.Message)
}
