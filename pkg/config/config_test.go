package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/configs"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/version"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "localhost:25565", cfg.Server)
	assert.Equal(t, "vanilla", cfg.Brand)
	assert.Equal(t, 8, cfg.ViewDistance)
	assert.Equal(t, 10*time.Second, cfg.ConnectTimeout)
	assert.Equal(t, 30*time.Second, cfg.KeepAliveTimeout)
	assert.Equal(t, -1, cfg.Compression.Level)
	assert.Equal(t, 3, cfg.Chat.Burst)

	warns, errs := cfg.Validate()
	assert.Empty(t, warns)
	assert.Empty(t, errs)

	v, err := cfg.ProtocolVersion()
	require.NoError(t, err)
	assert.Same(t, version.MaximumVersion, v)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corncraft.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
server: play.example.com
username: Alex
version: "1.20.6"
readTimeout: 1m
chat:
  rate: 0.5
`), 0644))

	v := viper.New()
	v.SetConfigFile(path)
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "play.example.com", cfg.Server)
	assert.Equal(t, "Alex", cfg.Username)
	assert.Equal(t, time.Minute, cfg.ReadTimeout)
	assert.Equal(t, 0.5, cfg.Chat.Rate)
	assert.Equal(t, "en_us", cfg.Locale)

	pv, err := cfg.ProtocolVersion()
	require.NoError(t, err)
	assert.Same(t, version.Minecraft_1_20_5, pv)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("CORNCRAFT_USERNAME", "Notch")
	t.Setenv("CORNCRAFT_CHAT_BURST", "5")
	cfg, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "Notch", cfg.Username)
	assert.Equal(t, 5, cfg.Chat.Burst)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg, err := Load(viper.New())
		require.NoError(t, err)
		return cfg
	}
	tests := []struct {
		name   string
		modify func(c *Config)
		errs   int
		warns  int
	}{
		{name: "valid", modify: func(*Config) {}},
		{name: "empty server", modify: func(c *Config) { c.Server = "" }, errs: 1},
		{name: "bad port", modify: func(c *Config) { c.Server = "a:b:c" }, errs: 1},
		{name: "long username", modify: func(c *Config) { c.Username = "ThisNameIsWayTooLong" }, errs: 1},
		{name: "username chars", modify: func(c *Config) { c.Username = "no spaces" }, errs: 1},
		{name: "old version", modify: func(c *Config) { c.Version = "1.8.9" }, errs: 1},
		{name: "unknown version", modify: func(c *Config) { c.Version = "2.0" }, errs: 1},
		{name: "locale", modify: func(c *Config) { c.Locale = "!!" }, warns: 1},
		{name: "view distance", modify: func(c *Config) { c.ViewDistance = 64 }, errs: 1},
		{name: "missing lang file", modify: func(c *Config) { c.LangFile = "/does/not/exist.json" }, errs: 1},
		{name: "compression", modify: func(c *Config) { c.Compression.Level = 10 }, errs: 1},
		{name: "no chat limit", modify: func(c *Config) { c.Chat.Rate = 0 }, warns: 1},
		{name: "chat burst", modify: func(c *Config) { c.Chat.Burst = 0 }, errs: 1},
		{name: "disabled timeouts", modify: func(c *Config) {
			c.ReadTimeout = -1
			c.KeepAliveTimeout = -1
		}, warns: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.modify(cfg)
			warns, errs := cfg.Validate()
			assert.Len(t, errs, tt.errs, "errs: %v", errs)
			assert.Len(t, warns, tt.warns, "warns: %v", warns)
		})
	}

	var nilCfg *Config
	_, errs := nilCfg.Validate()
	assert.Len(t, errs, 1)
}

func TestTemplates(t *testing.T) {
	defaults, err := Load(viper.New())
	require.NoError(t, err)

	for name, b := range map[string][]byte{
		"full":    configs.DefaultConfigBytes,
		"minimal": configs.MinimalConfigBytes,
	} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "corncraft.yml")
			require.NoError(t, os.WriteFile(path, b, 0644))
			v := viper.New()
			v.SetConfigFile(path)
			cfg, err := Load(v)
			require.NoError(t, err)
			assert.Equal(t, defaults, cfg)
			_, errs := cfg.Validate()
			assert.Empty(t, errs)
		})
	}
}
