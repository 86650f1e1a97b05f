// Package config holds the configuration of the corncraft client.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/text/language"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/version"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/proto"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/util/configutil"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/util/validation"
)

// EnvPrefix is the prefix of environment variables overriding config keys.
const EnvPrefix = "CORNCRAFT"

// Config is the configuration of a client, read with Viper.
type Config struct {
	Server   string // host[:port] of the server to join
	Username string // offline mode name
	Version  string // name or protocol number, empty is the latest

	Brand        string
	Locale       string
	ViewDistance int
	// LangFile is a vanilla language file (e.g. en_us.json) used to
	// render translated chat. Empty uses the built-in chat formats.
	LangFile string

	ConnectTimeout   time.Duration
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	KeepAliveTimeout time.Duration

	Compression Compression
	Chat        Chat

	Debug bool
}

type (
	Compression struct {
		Level int // -1..9, zlib level of outbound packets
	}
	// Chat limits outbound chat messages.
	Chat struct {
		Rate  float64 // messages per second, 0 is unlimited
		Burst int
	}
)

// SetDefaults sets Config defaults used with Viper.
func SetDefaults(i configutil.SetDefault) {
	i.SetDefault("server", "localhost:25565")
	i.SetDefault("username", "CornCraft")
	i.SetDefault("version", version.MaximumVersion.LastName())

	i.SetDefault("brand", "vanilla")
	i.SetDefault("locale", "en_us")
	i.SetDefault("viewDistance", 8)
	i.SetDefault("langFile", "")

	i.SetDefault("connectTimeout", "10s")
	i.SetDefault("readTimeout", "30s")
	i.SetDefault("writeTimeout", "10s")
	i.SetDefault("keepAliveTimeout", "30s")

	configutil.Prefix(i, "compression").SetDefault("level", -1)

	// about what vanilla servers tolerate before kicking for spam
	chat := configutil.Prefix(i, "chat")
	chat.SetDefault("rate", 1)
	chat.SetDefault("burst", 3)
}

// Load reads the config from v, applying the defaults first.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if v.ConfigFileUsed() != "" {
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading config file %q: %w", v.ConfigFileUsed(), err)
			}
		}
	}
	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	return cfg, nil
}

// ProtocolVersion resolves the configured version.
func (c *Config) ProtocolVersion() (*proto.Version, error) {
	if c.Version == "" {
		return version.MaximumVersion, nil
	}
	v, err := version.Parse(c.Version)
	if err != nil {
		return nil, err
	}
	if !version.Protocol(v.Protocol).Supported() {
		return nil, fmt.Errorf("version %s is not supported, use %s", v, version.SupportedVersionsString)
	}
	return v, nil
}

// Validate returns problems of the config, only errs prevent connecting.
func (c *Config) Validate() (warns []error, errs []error) {
	e := func(m string, args ...any) { errs = append(errs, fmt.Errorf(m, args...)) }
	w := func(m string, args ...any) { warns = append(warns, fmt.Errorf(m, args...)) }

	if c == nil {
		e("config must not be nil")
		return
	}

	if c.Server == "" {
		e("server is empty")
	} else if strings.Contains(c.Server, ":") {
		if err := validation.ValidHostPort(c.Server); err != nil {
			e("invalid server address %q: %v", c.Server, err)
		}
	}

	if !validation.ValidUsername(c.Username) {
		e("invalid username %q: %s", c.Username, validation.UsernameErrMsg)
	}

	if _, err := c.ProtocolVersion(); err != nil {
		e("invalid version: %v", err)
	}

	if _, err := language.Parse(strings.ReplaceAll(c.Locale, "_", "-")); err != nil {
		w("unknown locale %q, the server may fall back to en_us", c.Locale)
	}

	if c.LangFile != "" {
		if _, err := os.Stat(c.LangFile); err != nil {
			e("invalid language file: %v", err)
		}
	}

	if c.ViewDistance < 2 || c.ViewDistance > 32 {
		e("unsupported view distance %d: must be 2..32", c.ViewDistance)
	}

	if c.Compression.Level < -1 || c.Compression.Level > 9 {
		e("unsupported compression level %d: must be -1..9", c.Compression.Level)
	}

	if c.Chat.Rate < 0 {
		e("invalid chat rate %v: must be >= 0", c.Chat.Rate)
	} else if c.Chat.Rate == 0 {
		w("chat rate limit is disabled, the server may kick for spamming")
	} else if c.Chat.Burst < 1 {
		e("invalid chat burst %d: use a number >= 1", c.Chat.Burst)
	}

	for name, d := range map[string]time.Duration{
		"read":       c.ReadTimeout,
		"write":      c.WriteTimeout,
		"keep alive": c.KeepAliveTimeout,
	} {
		if d < 0 {
			w("%s timeout is disabled", name)
		}
	}
	if c.ConnectTimeout < 0 {
		e("invalid connect timeout %s", c.ConnectTimeout)
	}

	return
}
