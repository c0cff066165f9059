// Package config loads, validates and hot-reloads pathviz YAML scenarios.
package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

// Defaults applied to zero fields after parsing.
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
	DefaultStrategy  = "linear"
	DefaultPolicy    = "revert"
	DefaultStepMs    = 300
)

// Loader reads a YAML config file and watches it for changes.
type Loader struct {
	path     string
	logger   *slog.Logger
	mu       sync.RWMutex
	current  *Config
	onChange []func(*Config)
}

// NewLoader creates a Loader and performs the initial load and validation.
func NewLoader(path string, logger *slog.Logger) (*Loader, error) {
	if logger == nil {
		logger = slog.Default()
	}
	l := &Loader{path: path, logger: logger}
	cfg, err := l.load()
	if err != nil {
		return nil, err
	}
	l.current = cfg

	return l, nil
}

// Path returns the watched file.
func (l *Loader) Path() string { return l.path }

// Config returns the current (latest valid) configuration.
func (l *Loader) Config() *Config {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.current
}

// OnChange registers a callback invoked after every successful reload.
func (l *Loader) OnChange(fn func(*Config)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onChange = append(l.onChange, fn)
}

// Reload re-reads the file. On error the current config is kept.
func (l *Loader) Reload() (*Config, error) {
	cfg, err := l.load()
	if err != nil {
		return nil, err
	}
	l.mu.Lock()
	l.current = cfg
	callbacks := make([]func(*Config), len(l.onChange))
	copy(callbacks, l.onChange)
	l.mu.Unlock()
	for _, fn := range callbacks {
		fn(cfg)
	}

	return cfg, nil
}

// Watch hot-reloads the config on file changes until ctx is done. It
// watches the parent directory so editors that replace the file by rename
// are picked up too. Invalid edits are logged and skipped.
func (l *Loader) Watch(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config watcher: %w", err)
	}
	dir := filepath.Dir(l.path)
	if err = w.Add(dir); err != nil {
		_ = w.Close()
		return fmt.Errorf("config watcher add %s: %w", dir, err)
	}

	go func() {
		defer w.Close()
		target := filepath.Clean(l.path)
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				if _, err := l.Reload(); err != nil {
					l.logger.Warn("config reload skipped", "path", l.path, "error", err)
					continue
				}
				l.logger.Info("config reloaded", "path", l.path)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				l.logger.Warn("config watcher error", "error", err)
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

func (l *Loader) load() (*Config, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", l.path, err)
	}

	return Parse(data)
}

// Parse decodes YAML, applies defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	applyDefaults(&cfg)
	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ErrParse wraps YAML decoding failures.
var ErrParse = errors.New("config: parse")

func applyDefaults(cfg *Config) {
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
	if cfg.Search.Strategy == "" {
		cfg.Search.Strategy = DefaultStrategy
	}
	if cfg.Search.Policy == "" {
		cfg.Search.Policy = DefaultPolicy
	}
	if cfg.Animation.StepMs == nil {
		step := DefaultStepMs
		cfg.Animation.StepMs = &step
	}
}
