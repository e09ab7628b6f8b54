// Package config loads cart store settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/hashicorp/go-hclog"

	"github.com/provide-io/sharecart/pkg/cart"
	"github.com/provide-io/sharecart/pkg/logging"
	"github.com/provide-io/sharecart/pkg/utils/permissions"
)

// Config controls where the cart lives and how the store behaves.
type Config struct {
	Path        string        `env:"SHARECART_PATH"`
	DataRoot    string        `env:"SHARECART_DATA_ROOT"`
	LogLevel    string        `env:"SHARECART_LOG_LEVEL"    envDefault:"warn"`
	JSONLog     bool          `env:"SHARECART_JSON_LOG"`
	FileMode    string        `env:"SHARECART_FILE_MODE"    envDefault:"0644"`
	DirMode     string        `env:"SHARECART_DIR_MODE"     envDefault:"0755"`
	ProcessLock bool          `env:"SHARECART_PROCESS_LOCK"`
	LockTimeout time.Duration `env:"SHARECART_LOCK_TIMEOUT" envDefault:"5s"`
}

// Load reads the configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that env parsing cannot.
func (c Config) Validate() error {
	if c.LogLevel != "" && !logging.ValidLevel(c.LogLevel) {
		return fmt.Errorf("invalid SHARECART_LOG_LEVEL %q", c.LogLevel)
	}
	if _, err := permissions.ParseMode(c.FileMode, cart.DefaultFileMode); err != nil {
		return fmt.Errorf("SHARECART_FILE_MODE: %w", err)
	}
	if _, err := permissions.ParseMode(c.DirMode, cart.DefaultDirMode); err != nil {
		return fmt.Errorf("SHARECART_DIR_MODE: %w", err)
	}
	if c.LockTimeout < 0 {
		return fmt.Errorf("SHARECART_LOCK_TIMEOUT must not be negative")
	}
	return nil
}

// CartPaths resolves the cart location: an explicit path wins, then the data
// root, then the running executable.
func (c Config) CartPaths() (cart.Paths, error) {
	if c.Path != "" {
		return cart.PathsFromFile(c.Path), nil
	}
	root := c.DataRoot
	if root == "" {
		exe, err := cart.DefaultDataRoot()
		if err != nil {
			return cart.Paths{}, fmt.Errorf("resolve data root: %w", err)
		}
		root = exe
	}
	return cart.PathsFromDataRoot(root), nil
}

// StoreOptions translates the configuration into cart store options.
func (c Config) StoreOptions(logger hclog.Logger) ([]cart.Option, error) {
	fileMode, err := permissions.ParseMode(c.FileMode, cart.DefaultFileMode)
	if err != nil {
		return nil, fmt.Errorf("SHARECART_FILE_MODE: %w", err)
	}
	dirMode, err := permissions.ParseMode(c.DirMode, cart.DefaultDirMode)
	if err != nil {
		return nil, fmt.Errorf("SHARECART_DIR_MODE: %w", err)
	}
	if !permissions.OwnerCanWrite(fileMode) {
		logger.Warn("⚠️ Cart file mode is not owner-writable", "mode", permissions.FormatOctal(fileMode))
	}
	if !permissions.IsTraversable(dirMode) {
		logger.Warn("⚠️ Cart directory mode is not owner-traversable", "mode", permissions.FormatOctal(dirMode))
	}

	opts := []cart.Option{
		cart.WithLogger(logger),
		cart.WithFileMode(fileMode),
		cart.WithDirMode(dirMode),
	}
	if c.ProcessLock {
		opts = append(opts, cart.WithProcessLock(c.LockTimeout))
	}
	return opts, nil
}

// NewLogger builds the logger described by the configuration.
func (c Config) NewLogger(name string) hclog.Logger {
	return logging.NewLogger(name, c.LogLevel, c.JSONLog, nil)
}
