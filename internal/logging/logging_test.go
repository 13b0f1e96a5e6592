package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("JSONRespectsLevel", func(t *testing.T) {
		var buf bytes.Buffer

		logger, err := New(&buf, "warn", FormatJSON)
		require.NoError(t, err)

		logger.Info().Msg("hidden")
		logger.Warn().Str("url", "/api/me").Msg("fetch failed")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), `"message":"fetch failed"`)
		assert.Contains(t, buf.String(), `"url":"/api/me"`)
	})

	t.Run("Defaults", func(t *testing.T) {
		var buf bytes.Buffer

		logger, err := New(&buf, "", "")
		require.NoError(t, err)

		logger.Debug().Msg("hidden")
		logger.Info().Msg("shown")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "shown")
	})

	t.Run("Console", func(t *testing.T) {
		var buf bytes.Buffer

		logger, err := New(&buf, "DEBUG", FormatConsole)
		require.NoError(t, err)

		logger.Debug().Msg("attempt started")
		assert.Contains(t, buf.String(), "attempt started")
		assert.NotContains(t, buf.String(), `"message"`)
	})

	t.Run("InvalidInput", func(t *testing.T) {
		_, err := New(&bytes.Buffer{}, "loud", FormatJSON)
		assert.Error(t, err)

		_, err = New(&bytes.Buffer{}, "info", "xml")
		assert.Error(t, err)
	})
}
