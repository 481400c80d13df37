package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Source      SourceConfig    `yaml:"source"`
	Scan        ScanConfig      `yaml:"scan"`
	Concurrency int             `yaml:"concurrency"`
	Generator   GeneratorConfig `yaml:"generator"`
	Sinks       SinksConfig     `yaml:"sinks"`
	Retry       RetryConfig     `yaml:"retry"`
	Log         LogConfig       `yaml:"log"`
}

type SourceConfig struct {
	ChunkSize int       `yaml:"chunkSize"`
	Pattern   string    `yaml:"pattern"`
	S3        *S3Config `yaml:"s3,omitempty"`
}

type ScanConfig struct {
	MaxCandidateBytes int `yaml:"maxCandidateBytes"`
}

type GeneratorConfig struct {
	Compression string `yaml:"compression"`
}

type SinksConfig struct {
	Filesystem *FilesystemConfig `yaml:"filesystem,omitempty"`
	MySQL      *MySQLConfig      `yaml:"mysql,omitempty"`
	Postgres   *PostgresConfig   `yaml:"postgres,omitempty"`
	S3         *S3Config         `yaml:"s3,omitempty"`
	Kafka      *KafkaConfig      `yaml:"kafka,omitempty"`
}

type FilesystemConfig struct {
	Dir    string `yaml:"dir"`
	Atomic *bool  `yaml:"atomic,omitempty"`
}

type MySQLConfig struct {
	DSN   string `yaml:"dsn"`
	Table string `yaml:"table"`
}

type PostgresConfig struct {
	DSN string `yaml:"dsn"`
}

type S3Config struct {
	Region    string `yaml:"region"`
	Bucket    string `yaml:"bucket"`
	Prefix    string `yaml:"prefix"`
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"accessKey"`
	SecretKey string `yaml:"secretKey"`
}

type KafkaConfig struct {
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic"`
}

type RetryConfig struct {
	Attempts uint          `yaml:"attempts"`
	Delay    time.Duration `yaml:"delay"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns a config that extracts into ./schemas with no other sinks.
func Default() *Config {
	cfg := base()
	cfg.Sinks.Filesystem = &FilesystemConfig{Dir: "schemas"}
	return cfg
}

// base holds every default except the sinks, which a config file must name.
func base() *Config {
	return &Config{
		Source:      SourceConfig{ChunkSize: 64 * 1024, Pattern: "CAREER-*"},
		Concurrency: 4,
		Generator:   GeneratorConfig{Compression: "none"},
		Retry:       RetryConfig{Attempts: 3, Delay: 500 * time.Millisecond},
		Log:         LogConfig{Level: "info", Format: "text"},
	}
}

// LoadConfig reads path on top of the defaults. A .env file next to the config
// (or in the working directory) is loaded first so ${VAR} references resolve.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is required")
	}

	_, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("config file not found: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	loadDotEnv(filepath.Dir(path))

	cfg := base()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.resolveEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadDotEnv(dir string) {
	// Missing .env files are fine; existing variables are never overridden.
	_ = godotenv.Load(filepath.Join(dir, ".env"))
	_ = godotenv.Load()
}

var envRef = regexp.MustCompile(`\$\{([^}]+)\}`)

// ResolveEnvVars expands ${ENV_VAR} references in a string.
func ResolveEnvVars(value string) string {
	if value == "" {
		return value
	}
	return envRef.ReplaceAllStringFunc(value, func(match string) string {
		return os.Getenv(match[2 : len(match)-1])
	})
}

func (c *Config) resolveEnv() {
	if s := c.Source.S3; s != nil {
		s.resolveEnv()
	}
	if fs := c.Sinks.Filesystem; fs != nil {
		fs.Dir = ResolveEnvVars(fs.Dir)
	}
	if m := c.Sinks.MySQL; m != nil {
		m.DSN = ResolveEnvVars(m.DSN)
	}
	if p := c.Sinks.Postgres; p != nil {
		p.DSN = ResolveEnvVars(p.DSN)
	}
	if s := c.Sinks.S3; s != nil {
		s.resolveEnv()
	}
	if k := c.Sinks.Kafka; k != nil {
		for i, b := range k.Brokers {
			k.Brokers[i] = ResolveEnvVars(b)
		}
		k.Topic = ResolveEnvVars(k.Topic)
	}
}

func (s *S3Config) resolveEnv() {
	s.Region = ResolveEnvVars(s.Region)
	s.Bucket = ResolveEnvVars(s.Bucket)
	s.Endpoint = ResolveEnvVars(s.Endpoint)
	s.AccessKey = ResolveEnvVars(s.AccessKey)
	s.SecretKey = ResolveEnvVars(s.SecretKey)
}

// Validate checks the config for values the extractor cannot run with.
func (c *Config) Validate() error {
	if c.Source.ChunkSize <= 0 {
		return errors.New("source.chunkSize must be positive")
	}
	if c.Source.Pattern != "" {
		if _, err := filepath.Match(c.Source.Pattern, ""); err != nil {
			return fmt.Errorf("source.pattern: %w", err)
		}
	}
	if s := c.Source.S3; s != nil && s.Region == "" {
		return errors.New("source.s3.region is required")
	}
	if c.Scan.MaxCandidateBytes < 0 {
		return errors.New("scan.maxCandidateBytes must not be negative")
	}
	if c.Concurrency <= 0 {
		return errors.New("concurrency must be positive")
	}
	switch c.Generator.Compression {
	case "", "none", "gzip", "zstd", "lz4":
	default:
		return fmt.Errorf("generator.compression %q is not supported", c.Generator.Compression)
	}

	if c.Sinks.count() == 0 {
		return errors.New("at least one sink is required")
	}
	if fs := c.Sinks.Filesystem; fs != nil && strings.TrimSpace(fs.Dir) == "" {
		return errors.New("sinks.filesystem.dir is required")
	}
	if m := c.Sinks.MySQL; m != nil {
		if m.DSN == "" {
			return errors.New("sinks.mysql.dsn is required")
		}
		if _, err := mysql.ParseDSN(m.DSN); err != nil {
			return fmt.Errorf("sinks.mysql.dsn: %w", err)
		}
	}
	if p := c.Sinks.Postgres; p != nil && p.DSN == "" {
		return errors.New("sinks.postgres.dsn is required")
	}
	if s := c.Sinks.S3; s != nil {
		if s.Region == "" {
			return errors.New("sinks.s3.region is required")
		}
		if s.Bucket == "" {
			return errors.New("sinks.s3.bucket is required")
		}
	}
	if k := c.Sinks.Kafka; k != nil {
		if len(k.Brokers) == 0 {
			return errors.New("sinks.kafka.brokers is required")
		}
		if k.Topic == "" {
			return errors.New("sinks.kafka.topic is required")
		}
	}

	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q is not supported", c.Log.Level)
	}
	switch c.Log.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("log.format %q is not supported", c.Log.Format)
	}
	return nil
}

func (s SinksConfig) count() int {
	n := 0
	if s.Filesystem != nil {
		n++
	}
	if s.MySQL != nil {
		n++
	}
	if s.Postgres != nil {
		n++
	}
	if s.S3 != nil {
		n++
	}
	if s.Kafka != nil {
		n++
	}
	return n
}

// Names lists the configured sinks in a fixed order.
func (s SinksConfig) Names() []string {
	var names []string
	if s.Filesystem != nil {
		names = append(names, "filesystem")
	}
	if s.MySQL != nil {
		names = append(names, "mysql")
	}
	if s.Postgres != nil {
		names = append(names, "postgres")
	}
	if s.S3 != nil {
		names = append(names, "s3")
	}
	if s.Kafka != nil {
		names = append(names, "kafka")
	}
	return names
}
