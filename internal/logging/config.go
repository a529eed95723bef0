package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	EnvLogLevel     = "MATMUL_LOG_LEVEL"
	EnvLogTimestamp = "MATMUL_LOG_TIMESTAMP"
	EnvLogNoColor   = "MATMUL_LOG_NOCOLOR"
	EnvLogDisabled  = "MATMUL_LOG_DISABLED"
)

var ErrUnknownLevel = errors.New("logging: unknown level")

type Profile int

const (
	ProfileRuntime Profile = iota
	ProfileTest
)

// Config is the resolved logger setup.
type Config struct {
	Level     zerolog.Level
	Timestamp bool
	NoColor   bool
	Disabled  bool
	Out       io.Writer
}

// Overrides holds optional settings from a config file or the environment.
// A nil field was not set.
type Overrides struct {
	Level     *string
	Timestamp *bool
	NoColor   *bool
	Disabled  *bool
}

// envValues holds the raw MATMUL_LOG_* strings. They are parsed one by one so
// a single bad value only drops that setting.
type envValues struct {
	Level     *string `env:"MATMUL_LOG_LEVEL"`
	Timestamp *string `env:"MATMUL_LOG_TIMESTAMP"`
	NoColor   *string `env:"MATMUL_LOG_NOCOLOR"`
	Disabled  *string `env:"MATMUL_LOG_DISABLED"`
}

var (
	configureOnce sync.Once
	configureErr  error
)

func ConfigureTests() error {
	return Configure(ProfileTest, Overrides{})
}

// Configure installs the global logger once. Environment values that cannot
// be used are reported as warnings through the installed logger.
func Configure(profile Profile, file Overrides) error {
	configureOnce.Do(func() {
		cfg, ignored, err := Resolve(profile, file)
		if err != nil {
			configureErr = err
			return
		}
		zerolog.SetGlobalLevel(cfg.Level)
		log.Logger = New(cfg)
		for _, e := range ignored {
			log.Warn().Err(e).Msg("ignoring log setting")
		}
	})
	return configureErr
}

// Resolve layers file overrides and then the environment on top of the
// profile defaults. Bad file values are errors; bad environment values keep
// the previous setting and are returned as ignored.
func Resolve(profile Profile, file Overrides) (Config, []error, error) {
	cfg := DefaultConfig(profile)
	if err := cfg.Apply(file); err != nil {
		return Config{}, nil, err
	}
	fromEnv, ignored := EnvOverrides()
	if err := cfg.Apply(fromEnv); err != nil {
		return Config{}, nil, err
	}
	return cfg, ignored, nil
}

// EnvOverrides reads MATMUL_LOG_* and keeps only the values that parse.
func EnvOverrides() (Overrides, []error) {
	var raw envValues
	if err := env.Parse(&raw); err != nil {
		return Overrides{}, []error{fmt.Errorf("logging: parse env: %w", err)}
	}

	var (
		out     Overrides
		ignored []error
	)
	if raw.Level != nil && strings.TrimSpace(*raw.Level) != "" {
		if _, err := ParseLevel(*raw.Level); err != nil {
			ignored = append(ignored, fmt.Errorf("%s: %w", EnvLogLevel, err))
		} else {
			out.Level = raw.Level
		}
	}
	out.Timestamp = envBool(EnvLogTimestamp, raw.Timestamp, &ignored)
	out.NoColor = envBool(EnvLogNoColor, raw.NoColor, &ignored)
	out.Disabled = envBool(EnvLogDisabled, raw.Disabled, &ignored)
	return out, ignored
}

func envBool(name string, raw *string, ignored *[]error) *bool {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil
	}
	v, err := strconv.ParseBool(strings.TrimSpace(*raw))
	if err != nil {
		*ignored = append(*ignored, fmt.Errorf("%s: %w", name, err))
		return nil
	}
	return &v
}

func DefaultConfig(profile Profile) Config {
	cfg := Config{Out: os.Stderr}
	switch profile {
	case ProfileTest:
		cfg.Level = zerolog.DebugLevel
		cfg.Timestamp = false
	default:
		cfg.Level = zerolog.InfoLevel
		cfg.Timestamp = true
	}
	if f, ok := cfg.Out.(*os.File); ok && !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		cfg.NoColor = true
	}
	return cfg
}

func (c *Config) Apply(o Overrides) error {
	if o.Level != nil {
		lvl, err := ParseLevel(*o.Level)
		if err != nil {
			return err
		}
		c.Level = lvl
	}
	if o.Timestamp != nil {
		c.Timestamp = *o.Timestamp
	}
	if o.NoColor != nil {
		c.NoColor = *o.NoColor
	}
	if o.Disabled != nil {
		c.Disabled = *o.Disabled
	}
	return nil
}

// New builds a console logger writing to cfg.Out.
func New(cfg Config) zerolog.Logger {
	if cfg.Disabled {
		return zerolog.Nop()
	}
	out := cfg.Out
	if out == nil {
		out = colorable.NewColorableStderr()
	} else if f, ok := out.(*os.File); ok {
		out = colorable.NewColorable(f)
	}
	writer := zerolog.ConsoleWriter{Out: out, NoColor: cfg.NoColor}
	if !cfg.Timestamp {
		writer.PartsExclude = []string{zerolog.TimestampFieldName}
	}
	ctx := zerolog.New(writer).Level(cfg.Level).With()
	if cfg.Timestamp {
		ctx = ctx.Timestamp()
	}
	return ctx.Logger()
}

func ParseLevel(raw string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "trace", "diagnostics":
		return zerolog.TraceLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "", "info":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	case "disabled", "disable", "off", "none", "inactive":
		return zerolog.Disabled, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("%w: %q", ErrUnknownLevel, raw)
	}
}
