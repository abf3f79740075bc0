package config

import (
	"encoding/json"
	"io/ioutil"
	"runtime"

	"github.com/pkg/errors"
)

const (
	DefaultConfigFilename  = "hexsum.json"
	DefaultLoggingFilename = "hexsum"
	DefaultLogLevel        = "info"
	defaultLogDirname      = "hexsum-logs"
	defaultBatchSize       = 256
	defaultCacheEntries    = 0
	MaxWorkers             = 1024
	MaxBatchSize           = 1 << 20
)

var (
	ErrInvalidWorkers      = errors.New("invalid hasher workers")
	ErrInvalidBatchSize    = errors.New("invalid hasher batch size")
	ErrInvalidCacheEntries = errors.New("invalid hasher cache entries")
	ErrInvalidLogLevel     = errors.New("invalid log level")
)

var logLevels = map[string]bool{
	"panic": true,
	"fatal": true,
	"error": true,
	"warn":  true,
	"info":  true,
	"debug": true,
	"trace": true,
}

type Config struct {
	Log    *Log    `json:"log"`
	Hasher *Hasher `json:"hasher"`
}

type Log struct {
	LogDir        string `json:"log_dir"`
	LogLevel      string `json:"log_level"`
	DisableCPrint bool   `json:"disable_cprint"`
	// DisableFile keeps logs on the console only.
	DisableFile bool `json:"disable_file"`
}

type Hasher struct {
	// Workers is the number of messages hashed concurrently.
	Workers int `json:"workers"`
	// BatchSize is the number of lines read ahead before results are
	// flushed in order.
	BatchSize int `json:"batch_size"`
	// CacheEntries bounds the digest memo, 0 disables it.
	CacheEntries int `json:"cache_entries"`
}

func DefaultConfig() *Config {
	return &Config{
		Log:    DefaultLog(),
		Hasher: DefaultHasher(),
	}
}

func DefaultLog() *Log {
	return &Log{
		LogDir:        defaultLogDirname,
		LogLevel:      DefaultLogLevel,
		DisableCPrint: false,
		DisableFile:   true,
	}
}

func DefaultHasher() *Hasher {
	return &Hasher{
		Workers:      runtime.NumCPU(),
		BatchSize:    defaultBatchSize,
		CacheEntries: defaultCacheEntries,
	}
}

func LoadConfig(filename string) (*Config, error) {
	data, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err = json.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", filename)
	}
	return cfg, nil
}

func CheckConfig(cfg *Config) error {
	if cfg.Log == nil {
		cfg.Log = DefaultLog()
	}

	if cfg.Hasher == nil {
		cfg.Hasher = DefaultHasher()
	}

	// Checks for log
	if cfg.Log.LogLevel == "" {
		cfg.Log.LogLevel = DefaultLogLevel
	}
	if !logLevels[cfg.Log.LogLevel] {
		return errors.Wrapf(ErrInvalidLogLevel, "%q", cfg.Log.LogLevel)
	}
	if cfg.Log.LogDir == "" {
		cfg.Log.LogDir = defaultLogDirname
	}

	// Checks for hasher
	if cfg.Hasher.Workers < 1 || cfg.Hasher.Workers > MaxWorkers {
		return errors.Wrapf(ErrInvalidWorkers, "%d not in [1, %d]", cfg.Hasher.Workers, MaxWorkers)
	}
	if cfg.Hasher.BatchSize < 1 || cfg.Hasher.BatchSize > MaxBatchSize {
		return errors.Wrapf(ErrInvalidBatchSize, "%d not in [1, %d]", cfg.Hasher.BatchSize, MaxBatchSize)
	}
	if cfg.Hasher.CacheEntries < 0 {
		return errors.Wrapf(ErrInvalidCacheEntries, "%d", cfg.Hasher.CacheEntries)
	}

	return nil
}
