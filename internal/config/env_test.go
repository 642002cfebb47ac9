package config

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("GD_TEST_VALUE", "")
	assert.Equal(t, "", GetEnv("GD_TEST_VALUE", "fallback"), "set but empty wins")
	assert.Equal(t, "fallback", GetEnv("GD_TEST_UNSET", "fallback"))
}

func TestGetEnvInt64(t *testing.T) {
	n, err := GetEnvInt64("GD_TEST_UNSET", 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)

	t.Setenv("GD_TEST_SEED", "42")
	n, err = GetEnvInt64("GD_TEST_SEED", 7)
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)

	t.Setenv("GD_TEST_SEED", "forty-two")
	n, err = GetEnvInt64("GD_TEST_SEED", 7)
	require.ErrorContains(t, err, "GD_TEST_SEED")
	assert.Equal(t, int64(7), n)
}

func TestNewLoggerLevel(t *testing.T) {
	var buf bytes.Buffer

	t.Setenv("LOG_LEVEL", "debug")
	assert.Equal(t, log.DebugLevel, NewLogger(&buf, "test").GetLevel())

	t.Setenv("LOG_LEVEL", "loud")
	assert.Equal(t, log.InfoLevel, NewLogger(&buf, "test").GetLevel())
	assert.Contains(t, buf.String(), "unknown LOG_LEVEL")
}
