package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/kbukum/obtkit/errors"
	"github.com/kbukum/obtkit/logger"
)

// FileSystem interface for file operations (useful for testing).
type FileSystem interface {
	Exists(path string) bool
	LoadEnv(path string) error
}

// RealFileSystem implements FileSystem using actual file operations.
type RealFileSystem struct{}

func (rfs *RealFileSystem) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func (rfs *RealFileSystem) LoadEnv(path string) error {
	return godotenv.Load(path)
}

// Resolver finds config and env files for an application.
type Resolver struct {
	FileSystem FileSystem
}

// ResolvedFiles contains the resolved config and env file paths.
type ResolvedFiles struct {
	ConfigFile string
	EnvFile    string
}

// ResolveFiles returns explicit paths when given, otherwise the first
// existing candidate from the standard locations.
func (r *Resolver) ResolveFiles(name string, opts LoaderConfig) ResolvedFiles {
	resolved := ResolvedFiles{
		ConfigFile: opts.ConfigFile,
		EnvFile:    opts.EnvFile,
	}
	if resolved.ConfigFile == "" {
		resolved.ConfigFile = r.first(configCandidates(name))
	}
	if resolved.EnvFile == "" {
		resolved.EnvFile = r.first(envCandidates(name))
	}
	return resolved
}

func (r *Resolver) first(paths []string) string {
	for _, p := range paths {
		if r.FileSystem.Exists(p) {
			return p
		}
	}
	return ""
}

func configCandidates(name string) []string {
	return []string{
		fmt.Sprintf("./config/%s.yml", name),
		"./config/config.yml",
		fmt.Sprintf("./%s.yml", name),
		"./config.yml",
	}
}

func envCandidates(name string) []string {
	return []string{
		fmt.Sprintf("./.env.%s", name),
		"./config/.env",
		"./.env",
	}
}

// EnvPrefix returns the environment variable prefix for name
// ("billing-api" -> "BILLING_API").
func EnvPrefix(name string) string {
	return strings.ToUpper(strings.NewReplacer("-", "_", ".", "_", " ", "_").Replace(name))
}

// LoaderConfig holds dependencies and optional file overrides.
type LoaderConfig struct {
	FileSystem FileSystem
	ConfigFile string // Direct config file path (optional)
	EnvFile    string // Direct env file path (optional)
	Logger     *logger.Logger

	name string
}

// LoaderOption is a functional option for Load.
type LoaderOption func(*LoaderConfig)

// WithFileSystem sets a custom filesystem for the loader.
func WithFileSystem(fs FileSystem) LoaderOption {
	return func(lc *LoaderConfig) { lc.FileSystem = fs }
}

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// WithLogger sets the logger used for loader warnings.
func WithLogger(l *logger.Logger) LoaderOption {
	return func(lc *LoaderConfig) { lc.Logger = l }
}

// Load reads, defaults, validates and registers the configuration for name.
// Missing files are not an error; a file that exists but cannot be parsed is.
func Load(name string, opts ...LoaderOption) (*KitConfig, error) {
	lc := LoaderConfig{name: name}
	for _, opt := range opts {
		opt(&lc)
	}
	if lc.FileSystem == nil {
		lc.FileSystem = &RealFileSystem{}
	}
	if lc.Logger == nil {
		lc.Logger = logger.Get("config")
	}

	resolver := &Resolver{FileSystem: lc.FileSystem}
	files := resolver.ResolveFiles(name, lc)

	cfg := &KitConfig{}
	if err := loadInto(cfg, files, lc); err != nil {
		return nil, errors.Wrapf(err, "failed to load config for %s", name)
	}

	cfg.ApplyDefaults(name)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Register(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadInto(cfg *KitConfig, files ResolvedFiles, lc LoaderConfig) error {
	v := viper.New()

	// 1. YAML base
	if files.ConfigFile != "" && lc.FileSystem.Exists(files.ConfigFile) {
		v.SetConfigFile(files.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return err
		}
	}

	// 2. .env into the process environment
	if files.EnvFile != "" && lc.FileSystem.Exists(files.EnvFile) {
		if err := lc.FileSystem.LoadEnv(files.EnvFile); err != nil {
			lc.Logger.Warn("failed to load .env file", logger.Fields(logger.FieldFile, files.EnvFile, logger.FieldError, err.Error()))
		}
	}

	// 3. environment overrides
	v.SetEnvPrefix(EnvPrefix(lc.name))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range []string{"name", "environment", "logging.level", "logging.format", "logging.output", "logging.no_color", "logging.caller"} {
		if err := v.BindEnv(key); err != nil {
			return err
		}
	}

	return v.Unmarshal(cfg)
}
