package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("VITE_GEMINI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, []string{"gemini-1.5-flash", "gemini-1.5-pro", "gemini-pro"}, cfg.PreferredModels)
	assert.Equal(t, "gemini-1.5-flash", cfg.FallbackModel)
	assert.Equal(t, 10, cfg.HistoryWindow)
	assert.Equal(t, 30*time.Second, cfg.CallTimeout)
	assert.Empty(t, cfg.APIKey())
}

func TestAPIKeyFirstNonEmptyWins(t *testing.T) {
	t.Run("vite variable wins", func(t *testing.T) {
		t.Setenv("VITE_GEMINI_API_KEY", "vite-key")
		t.Setenv("GEMINI_API_KEY", "plain-key")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "vite-key", cfg.APIKey())
	})

	t.Run("plain variable as fallback", func(t *testing.T) {
		t.Setenv("VITE_GEMINI_API_KEY", "")
		t.Setenv("GEMINI_API_KEY", "plain-key")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "plain-key", cfg.APIKey())
	})
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("PREFERRED_MODELS", "gemini-2.0-flash,gemini-1.5-pro")
	t.Setenv("HISTORY_WINDOW", "5")
	t.Setenv("AI_CALL_TIMEOUT", "10s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, []string{"gemini-2.0-flash", "gemini-1.5-pro"}, cfg.PreferredModels)
	assert.Equal(t, 5, cfg.HistoryWindow)
	assert.Equal(t, 10*time.Second, cfg.CallTimeout)
}
