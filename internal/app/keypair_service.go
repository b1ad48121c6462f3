package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/MGTheTrain/rsa-core/internal/domain/bigint"
	"github.com/MGTheTrain/rsa-core/internal/domain/crypto"
	"github.com/MGTheTrain/rsa-core/internal/pkg/logger"
)

// keyPairService implements the KeyPairService interface on top of an RSAProcessor
type keyPairService struct {
	rsaProcessor crypto.RSAProcessor
	maxAttempts  int
	logger       logger.Logger
}

// NewKeyPairService creates a new keyPairService instance.
// maxAttempts bounds how often primes are regenerated after ErrExponentNotCoprime.
func NewKeyPairService(rsaProcessor crypto.RSAProcessor, maxAttempts int, logger logger.Logger) (crypto.KeyPairService, error) {
	if rsaProcessor == nil {
		return nil, fmt.Errorf("rsa processor cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}
	if maxAttempts < 1 {
		return nil, fmt.Errorf("max key generation attempts must be at least 1, got %d", maxAttempts)
	}

	return &keyPairService{
		rsaProcessor: rsaProcessor,
		maxAttempts:  maxAttempts,
		logger:       logger,
	}, nil
}

type keyGenResult struct {
	keyPair *crypto.KeyPair
	err     error
}

// GenerateKeyPair runs key generation on its own goroutine so that a done ctx returns immediately.
// The worker observes the same ctx and stops at its next retry boundary.
func (s *keyPairService) GenerateKeyPair(ctx context.Context, bits int) (*crypto.KeyPair, error) {
	results := make(chan keyGenResult, 1)

	go func() {
		keyPair, err := s.generate(ctx, bits)
		results <- keyGenResult{keyPair: keyPair, err: err}
	}()

	select {
	case <-ctx.Done():
		s.logger.Warn("Key generation cancelled")
		return nil, ctx.Err()
	case result := <-results:
		return result.keyPair, result.err
	}
}

func (s *keyPairService) generate(ctx context.Context, bits int) (*crypto.KeyPair, error) {
	var lastErr error

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		keyPair, err := s.rsaProcessor.GenerateKeyPair(ctx, bits)
		if err == nil {
			return keyPair, nil
		}
		if !errors.Is(err, crypto.ErrExponentNotCoprime) {
			return nil, fmt.Errorf("failed to generate key pair: %w", err)
		}

		lastErr = err
		s.logger.Warn(fmt.Sprintf("Key generation attempt %d of %d: %v; regenerating primes", attempt, s.maxAttempts, err))
	}

	return nil, fmt.Errorf("%w after %d key generation attempts: %w", crypto.ErrGenerationExhausted, s.maxAttempts, lastErr)
}

// RoundTrip generates a key pair of the given size and runs message through Encrypt and Decrypt
func (s *keyPairService) RoundTrip(ctx context.Context, bits int, message bigint.Int) (*crypto.RoundTripResult, error) {
	keyPair, err := s.GenerateKeyPair(ctx, bits)
	if err != nil {
		return nil, err
	}

	ciphertext, err := s.rsaProcessor.Encrypt(message, &keyPair.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt message: %w", err)
	}

	decrypted, err := s.rsaProcessor.Decrypt(ciphertext, &keyPair.PrivateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt ciphertext: %w", err)
	}

	result := &crypto.RoundTripResult{
		KeyPair:    keyPair,
		Message:    message,
		Ciphertext: ciphertext,
		Decrypted:  decrypted,
	}
	if !result.Match() {
		s.logger.Error(fmt.Sprintf("Round trip under key pair %s did not recover the message", keyPair.ID))
	}

	return result, nil
}
