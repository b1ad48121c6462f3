package testutil

import (
	"testing"

	"github.com/MGTheTrain/rsa-core/internal/pkg/config"
	"github.com/MGTheTrain/rsa-core/internal/pkg/logger"
	"github.com/stretchr/testify/require"
)

// SetupTestLogger sets up a console logger for testing purposes.
// The logger is a process-wide singleton, so the first caller fixes its settings.
func SetupTestLogger(t *testing.T) logger.Logger {
	t.Helper()

	err := logger.InitLogger(config.DefaultLoggerSettings())
	require.NoError(t, err)

	log, err := logger.GetLogger()
	require.NoError(t, err)

	return log
}
