package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexwulf/alloy-configurator/internal/testutil"
)

func TestParseDefaults(t *testing.T) {
	var out testutil.SafeBuffer
	cfg, exit, err := Parse(nil, &out)
	require.NoError(t, err)
	assert.False(t, exit)
	require.NotNil(t, cfg)

	assert.Equal(t, "", cfg.ManifestsPath)
	assert.Equal(t, ":8094", cfg.ListenAddr)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestParseFlags(t *testing.T) {
	var out testutil.SafeBuffer
	cfg, exit, err := Parse([]string{
		"--manifests", "/etc/alloy/manifests",
		"--listen", "127.0.0.1:9000",
		"--log-format", "text",
		"--log-level", "DEBUG",
	}, &out)
	require.NoError(t, err)
	assert.False(t, exit)

	assert.Equal(t, "/etc/alloy/manifests", cfg.ManifestsPath)
	assert.Equal(t, "127.0.0.1:9000", cfg.ListenAddr)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "debug", cfg.LogLevel, "log level is normalized to lower case")
}

func TestParseHelp(t *testing.T) {
	var out testutil.SafeBuffer
	cfg, exit, err := Parse([]string{"--help"}, &out)
	require.NoError(t, err)
	assert.True(t, exit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParseInvalidLogLevel(t *testing.T) {
	var out testutil.SafeBuffer
	_, _, err := Parse([]string{"--log-level", "bogus"}, &out)
	require.Error(t, err)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
	assert.Contains(t, exitErr.Message, "invalid log-level")
}

func TestParseInvalidLogFormat(t *testing.T) {
	var out testutil.SafeBuffer
	_, _, err := Parse([]string{"--log-format", "yaml"}, &out)
	require.Error(t, err)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Contains(t, exitErr.Message, "invalid log-format")
}

func TestParseUnknownFlag(t *testing.T) {
	var out testutil.SafeBuffer
	_, _, err := Parse([]string{"--no-such-flag"}, &out)
	require.Error(t, err)

	var exitErr *ExitError
	assert.ErrorAs(t, err, &exitErr)
}
