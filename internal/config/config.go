package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const fileName = "techarena.yaml"

type ServerConfig struct {
	Port string `yaml:"port" validate:"required,numeric"`
}

type DatabaseConfig struct {
	Path string `yaml:"path" validate:"required"`
}

type LogConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowedOrigins" validate:"dive,required"`
}

type SessionConfig struct {
	TTL      time.Duration `yaml:"ttl" validate:"min=1m"`
	Cookie   string        `yaml:"cookie" validate:"required"`
	Secure   bool          `yaml:"secure"`
	LoginMax int           `yaml:"loginAttemptsPerMinute" validate:"min=1"`
}

type SeedConfig struct {
	Enabled         bool   `yaml:"enabled"`
	DefaultPassword string `yaml:"defaultPassword" validate:"min=8"`
}

// Config is the service configuration. Defaults apply first, then the
// YAML file, then TECHARENA_* environment variables.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
	Session  SessionConfig  `yaml:"session"`
	Seed     SeedConfig     `yaml:"seed"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

func Default() *Config {
	return &Config{
		Server:   ServerConfig{Port: "8080"},
		Database: DatabaseConfig{Path: "techarena.db"},
		Log:      LogConfig{Level: "info"},
		Session: SessionConfig{
			TTL:      30 * 24 * time.Hour,
			Cookie:   "techarena_session",
			LoginMax: 10,
		},
		Seed: SeedConfig{Enabled: true, DefaultPassword: "password123"},
	}
}

// Load reads .env if present, then techarena.yaml from the working
// directory or the home directory. A missing file is not an error.
func Load() (*Config, error) {
	loadDotEnv()

	path, err := findConfigFile()
	if err != nil {
		return nil, err
	}
	if path == "" {
		cfg := Default()
		return finish(cfg)
	}
	return LoadFromPath(path)
}

// LoadFromPath loads and validates the configuration from a specific path.
func LoadFromPath(path string) (*Config, error) {
	loadDotEnv()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return finish(cfg)
}

func finish(cfg *Config) (*Config, error) {
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate runs struct validation on cfg.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

func loadDotEnv() {
	// Absence of .env is the normal production case.
	_ = godotenv.Load()
}

func findConfigFile() (string, error) {
	if _, err := os.Stat(fileName); err == nil {
		return fileName, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("stat config file: %w", err)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", nil
	}
	homePath := filepath.Join(homeDir, fileName)
	if _, err := os.Stat(homePath); err == nil {
		return homePath, nil
	}
	return "", nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("TECHARENA_PORT"); v != "" {
		cfg.Server.Port = v
	}
	if v := os.Getenv("TECHARENA_DB_PATH"); v != "" {
		cfg.Database.Path = v
	}
	if v := os.Getenv("TECHARENA_LOG_LEVEL"); v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}
	if v := os.Getenv("TECHARENA_ALLOWED_ORIGINS"); v != "" {
		cfg.CORS.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("TECHARENA_SESSION_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("TECHARENA_SESSION_TTL: %w", err)
		}
		cfg.Session.TTL = ttl
	}
	if v := os.Getenv("TECHARENA_SECURE_COOKIE"); v != "" {
		secure, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("TECHARENA_SECURE_COOKIE: %w", err)
		}
		cfg.Session.Secure = secure
	}
	if v := os.Getenv("TECHARENA_SEED"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("TECHARENA_SEED: %w", err)
		}
		cfg.Seed.Enabled = enabled
	}
	if v := os.Getenv("TECHARENA_DEFAULT_PASSWORD"); v != "" {
		cfg.Seed.DefaultPassword = v
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
