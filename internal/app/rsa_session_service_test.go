//go:build unit
// +build unit

package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mykola-Nikolayev/RSA-algo/internal/infrastructure/cryptography"
	"github.com/Mykola-Nikolayev/RSA-algo/internal/pkg/config"
	"github.com/Mykola-Nikolayev/RSA-algo/internal/pkg/testutil"
)

func setupSessionService(t *testing.T) *RSASessionService {
	t.Helper()
	logger := testutil.SetupTestLogger(t)

	settings := config.NewDefaultKeyGenSettings()
	settings.KeySize = 64

	processor, err := cryptography.NewRSAProcessor(settings, logger)
	require.NoError(t, err)

	service, err := NewRSASessionService(processor, logger)
	require.NoError(t, err)
	return service
}

func TestRSASessionService(t *testing.T) {
	t.Run("OperationsRequireKeys", func(t *testing.T) {
		service := setupSessionService(t)

		assert.Nil(t, service.CurrentKeyPair())

		_, err := service.Encrypt("hello")
		assert.ErrorIs(t, err, ErrNoKeyPair)

		_, err = service.Decrypt(nil)
		assert.ErrorIs(t, err, ErrNoKeyPair)
	})

	t.Run("RoundTrip", func(t *testing.T) {
		service := setupSessionService(t)

		_, err := service.GenerateKeys(64)
		require.NoError(t, err)

		ciphertext, err := service.Encrypt("session message")
		require.NoError(t, err)

		decrypted, err := service.Decrypt(ciphertext)
		require.NoError(t, err)
		assert.Equal(t, "session message", decrypted)
	})

	t.Run("GenerateReplacesPreviousPair", func(t *testing.T) {
		service := setupSessionService(t)

		first, err := service.GenerateKeys(64)
		require.NoError(t, err)

		second, err := service.GenerateKeys(64)
		require.NoError(t, err)

		assert.NotEqual(t, first.ID, second.ID)
		assert.Equal(t, second, service.CurrentKeyPair())
	})

	t.Run("NilProcessorRejected", func(t *testing.T) {
		logger := testutil.SetupTestLogger(t)
		_, err := NewRSASessionService(nil, logger)
		assert.Error(t, err)
	})
}
