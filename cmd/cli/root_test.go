package cli

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetVersion(t *testing.T) {
	SetVersion("1.2.3", "abc1234", "2026-01-01")

	v := getVersion()
	assert.Contains(t, v, "1.2.3")
	assert.Contains(t, v, "abc1234")
	assert.Equal(t, v, rootCmd.Version)
}

func TestSetConfigDefaults(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	setConfigDefaults()

	assert.Equal(t, "127.0.0.1", viper.GetString("server.host"))
	assert.Equal(t, 8080, viper.GetInt("server.port"))
	assert.Equal(t, "info", viper.GetString("logging.level"))
	assert.Equal(t, "text", viper.GetString("logging.format"))
}

func TestRootCommandHasSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}

	for _, expected := range []string{"serve", "import", "hosts"} {
		require.True(t, names[expected], "missing %q command", expected)
	}
}
