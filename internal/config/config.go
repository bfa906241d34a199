// Package config holds the pipeline settings: input file locations, the
// tree store selection, and run tuning. Settings come from a YAML file,
// then the environment, then command-line flags, later sources winning.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/sawakaze/skillsheet/internal/errors"
)

// Store selects where resolved hero trees are persisted between phases.
const (
	StoreFile  = "file"
	StoreRedis = "redis"
)

// Config is the full pipeline configuration.
type Config struct {
	// Data locates the game configuration exports.
	Data DataConfig `yaml:"data"`

	// Language locates the bilingual template tables.
	Language LanguageConfig `yaml:"language"`

	// Rules locates the optional hand-curated exception tables.
	Rules RulesConfig `yaml:"rules"`

	// Stats locates the optional hero stats sheet.
	Stats StatsConfig `yaml:"stats"`

	// OutputDir receives every report file.
	OutputDir string `yaml:"output_dir"`

	// Store is "file" or "redis".
	Store string `yaml:"store"`

	// SnapshotPath is the tree snapshot file for the file store.
	SnapshotPath string `yaml:"snapshot_path"`

	// Redis configures the redis store.
	Redis RedisConfig `yaml:"redis"`

	// Workers bounds concurrent hero resolution in phase one.
	Workers int `yaml:"workers"`

	// LogLevel is debug, info, warn, or error.
	LogLevel string `yaml:"log_level"`
}

// DataConfig names the game configuration directory. The loader expects
// characters.json, specials.json, and battle.json inside it.
type DataConfig struct {
	Dir string `yaml:"dir"`
}

// LanguageConfig names the template sources. OverridesPath is optional.
type LanguageConfig struct {
	EnglishPath   string `yaml:"english"`
	JapanesePath  string `yaml:"japanese"`
	OverridesPath string `yaml:"overrides"`
}

// RulesConfig names the exception CSVs. Both are optional.
type RulesConfig struct {
	TextRulesPath  string `yaml:"text_rules"`
	ValueRulesPath string `yaml:"value_rules"`
}

// StatsConfig names the stats sheet directory and file pattern.
type StatsConfig struct {
	Dir     string `yaml:"dir"`
	Pattern string `yaml:"pattern"`
}

// RedisConfig holds the redis store connection settings.
type RedisConfig struct {
	Endpoint string `yaml:"endpoint"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// Default returns the configuration for a checkout-local run: inputs under
// ./data, outputs under ./out, file store.
func Default() *Config {
	return &Config{
		Data: DataConfig{Dir: "data"},
		Language: LanguageConfig{
			EnglishPath:   filepath.Join("data", "English.csv"),
			JapanesePath:  filepath.Join("data", "Japanese.csv"),
			OverridesPath: filepath.Join("data", "languageOverrides.json"),
		},
		Rules: RulesConfig{
			TextRulesPath:  filepath.Join("data", "exception_lang_rules.csv"),
			ValueRulesPath: filepath.Join("data", "exception_hero_rules.csv"),
		},
		Stats:        StatsConfig{Dir: "data"},
		OutputDir:    "out",
		Store:        StoreFile,
		SnapshotPath: filepath.Join("out", "hero_trees.json"),
		Redis:        RedisConfig{Endpoint: "localhost:6379"},
		Workers:      1,
		LogLevel:     "info",
	}
}

// Load reads the YAML file at path over the defaults and then applies
// environment overrides. A missing file is not an error; the defaults and
// environment stand alone.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, errors.WrapWithCodef(err, errors.CodeInternal, "reading config %s", path)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "parsing config %s", path)
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv layers SKILLSHEET_* and REDIS_* variables over the file values.
// A .env file in the working directory is honored when present.
func (c *Config) applyEnv() {
	_ = godotenv.Load()

	c.Data.Dir = getEnv("SKILLSHEET_DATA_DIR", c.Data.Dir)
	c.OutputDir = getEnv("SKILLSHEET_OUTPUT_DIR", c.OutputDir)
	c.Store = getEnv("SKILLSHEET_STORE", c.Store)
	c.SnapshotPath = getEnv("SKILLSHEET_SNAPSHOT", c.SnapshotPath)
	c.LogLevel = getEnv("SKILLSHEET_LOG_LEVEL", c.LogLevel)
	c.Workers = getEnvInt("SKILLSHEET_WORKERS", c.Workers)

	c.Redis.Endpoint = getEnv("REDIS_ENDPOINT", c.Redis.Endpoint)
	c.Redis.Password = getEnv("REDIS_PASSWORD", c.Redis.Password)
	c.Redis.DB = getEnvInt("REDIS_DB", c.Redis.DB)
}

// Validate checks the settings every command depends on. Path existence is
// left to the loaders, which know which inputs are optional.
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Data.Dir == "" {
		vb.RequiredField("data.dir")
	}
	if c.Language.EnglishPath == "" {
		vb.RequiredField("language.english")
	}
	if c.Language.JapanesePath == "" {
		vb.RequiredField("language.japanese")
	}
	if c.OutputDir == "" {
		vb.RequiredField("output_dir")
	}
	switch c.Store {
	case StoreFile:
		if c.SnapshotPath == "" {
			vb.RequiredField("snapshot_path")
		}
	case StoreRedis:
		if c.Redis.Endpoint == "" {
			vb.RequiredField("redis.endpoint")
		}
	default:
		vb.Fieldf("store", "must be %q or %q, got %q", StoreFile, StoreRedis, c.Store)
	}
	if c.Workers < 0 {
		vb.Field("workers", "must not be negative")
	}

	return vb.Build()
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return n
}
