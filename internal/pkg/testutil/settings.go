package testutil

import (
	"testing"

	"github.com/MGTheTrain/rsa-core/internal/pkg/config"
	"github.com/stretchr/testify/require"
)

// NewTestKeyGenSettings returns validated default settings with the given modulus size.
func NewTestKeyGenSettings(t *testing.T, bits int) *config.KeyGenSettings {
	t.Helper()

	settings := config.DefaultKeyGenSettings()
	settings.Bits = bits
	require.NoError(t, settings.Validate())

	return settings
}
