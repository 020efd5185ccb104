package sys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePort(t *testing.T) {
	t.Setenv("PORT", "9090")
	assert.Equal(t, 9090, ResolvePort(DefaultPort))

	t.Setenv("PORT", "")
	assert.Equal(t, DefaultPort, ResolvePort(DefaultPort))

	t.Setenv("PORT", "not-a-port")
	assert.Equal(t, DefaultPort, ResolvePort(DefaultPort))

	t.Setenv("PORT", "0")
	assert.Equal(t, DefaultPort, ResolvePort(DefaultPort))

	t.Setenv("PORT", "70000")
	assert.Equal(t, DefaultPort, ResolvePort(DefaultPort))
}

func TestResolveDataDirPrefersEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DATA_DIR", dir)
	assert.Equal(t, dir, ResolveDataDir())
}

func TestValidateRequiresToken(t *testing.T) {
	cfg := &Config{}
	assert.Error(t, cfg.Validate())

	cfg.Token = "token"
	assert.NoError(t, cfg.Validate())
}

func TestValidateGuildID(t *testing.T) {
	cfg := &Config{Token: "token", GuildID: "123"}
	assert.Error(t, cfg.Validate())

	cfg.GuildID = "123456789012345678"
	assert.NoError(t, cfg.Validate())

	// Optional, empty is fine.
	cfg.GuildID = ""
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "test-token")
	t.Setenv("GUILD_ID", "123456789012345678")
	t.Setenv("DATA_DIR", t.TempDir())
	t.Setenv("PORT", "8181")
	t.Setenv("SILENT", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "test-token", cfg.Token)
	assert.Equal(t, "123456789012345678", cfg.GuildID)
	assert.Equal(t, 8181, cfg.Port)
	assert.False(t, cfg.Silent)
}
