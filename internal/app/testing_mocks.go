//go:build unit
// +build unit

package app

import (
	"context"

	"github.com/MGTheTrain/rsa-core/internal/domain/bigint"
	"github.com/MGTheTrain/rsa-core/internal/domain/crypto"

	"github.com/stretchr/testify/mock"
)

// MockRSAProcessor is a mock implementation of RSAProcessor
type MockRSAProcessor struct {
	mock.Mock
}

func (m *MockRSAProcessor) GenerateKeyPair(ctx context.Context, bits int) (*crypto.KeyPair, error) {
	args := m.Called(ctx, bits)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*crypto.KeyPair), args.Error(1)
}

func (m *MockRSAProcessor) AssembleKeyPair(p, q bigint.Int) (*crypto.KeyPair, error) {
	args := m.Called(p, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*crypto.KeyPair), args.Error(1)
}

func (m *MockRSAProcessor) Encrypt(message bigint.Int, publicKey *crypto.PublicKey) (bigint.Int, error) {
	args := m.Called(message, publicKey)
	return args.Get(0).(bigint.Int), args.Error(1)
}

func (m *MockRSAProcessor) Decrypt(ciphertext bigint.Int, privateKey *crypto.PrivateKey) (bigint.Int, error) {
	args := m.Called(ciphertext, privateKey)
	return args.Get(0).(bigint.Int), args.Error(1)
}
