package config

import (
	"bytes"
	"io"
	"os"

	"github.com/xyproto/env/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/wippyai/rtbase/errors"
	"github.com/wippyai/rtbase/header"
	"github.com/wippyai/rtbase/memory"
	"github.com/wippyai/rtbase/target"
)

// Environment variable names.
const (
	EnvTarget    = "RTBASE_TARGET"
	EnvToolchain = "RTBASE_TOOLCHAIN"
	EnvDebug     = "RTBASE_DEBUG"
	EnvFrames    = "RTBASE_FRAMES"
	EnvLogLevel  = "RTBASE_LOG_LEVEL"
	EnvOutput    = "RTBASE_OUTPUT"
)

// Config is one build profile.
type Config struct {
	Target             string `yaml:"target"`
	Toolchain          string `yaml:"toolchain"`
	LogLevel           string `yaml:"log_level"`
	Output             string `yaml:"output"`
	Guard              string `yaml:"guard"`
	Pages              uint32 `yaml:"pages"`
	Debug              bool   `yaml:"debug"`
	Frames             bool   `yaml:"frames"`
	ThreadLocalFrames  bool   `yaml:"thread_local_frames"`
	RequireNativeRound bool   `yaml:"require_native_round"`
}

// Default returns the profile used when no file is given.
func Default() *Config {
	return &Config{LogLevel: "info", Pages: 1}
}

// Load reads the profile at path, applies environment overrides and
// validates the result. An empty path loads the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		c := Default()
		c.ApplyEnv()
		return c, c.Validate()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Load("read "+path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, err
	}
	c.ApplyEnv()
	return c, c.Validate()
}

// Parse decodes a YAML profile on top of the defaults. Unknown keys are
// rejected.
func Parse(data []byte) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && err != io.EOF {
		return nil, errors.Load("decode profile", err)
	}
	return c, nil
}

// ApplyEnv overrides fields from the environment. Unset variables leave
// the field alone.
func (c *Config) ApplyEnv() {
	env.Load()
	c.Target = env.Str(EnvTarget, c.Target)
	c.Toolchain = env.Str(EnvToolchain, c.Toolchain)
	c.LogLevel = env.Str(EnvLogLevel, c.LogLevel)
	c.Output = env.Str(EnvOutput, c.Output)
	if env.Has(EnvDebug) {
		c.Debug = env.Bool(EnvDebug)
	}
	if env.Has(EnvFrames) {
		c.Frames = env.Bool(EnvFrames)
	}
}

// Validate checks field values without resolving the target.
func (c *Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return errors.New(errors.PhaseLoad, errors.KindInvalidInput).
			Path("log_level").Value(c.LogLevel).Detail("unknown log level %q", c.LogLevel).Build()
	}
	if c.Pages == 0 || c.Pages > memory.MaxPages {
		return errors.New(errors.PhaseLoad, errors.KindInvalidInput).
			Path("pages").Value(c.Pages).Detail("pages must be in [1, %d]", memory.MaxPages).Build()
	}
	return nil
}

// Platform resolves the configured target. An empty target is the host.
func (c *Config) Platform() (target.Platform, error) {
	var (
		p   target.Platform
		err error
	)
	if c.Target == "" {
		p, err = target.Host()
	} else {
		p, err = target.Parse(c.Target)
	}
	if err != nil {
		return target.Platform{}, err
	}
	if c.Toolchain != "" {
		return target.New(p.Arch, p.OS, target.Toolchain(c.Toolchain))
	}
	return p, nil
}

// HeaderOptions maps the profile onto header generation options.
func (c *Config) HeaderOptions() header.Options {
	return header.Options{
		Guard:              c.Guard,
		RequireNativeRound: c.RequireNativeRound,
		Frames:             c.Frames,
		ThreadLocalFrames:  c.ThreadLocalFrames,
	}
}

// Logger builds the zap logger the profile asks for.
func (c *Config) Logger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, errors.Load("log level", err)
	}
	cfg := zap.NewProductionConfig()
	if c.Debug {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}
