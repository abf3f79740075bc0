package cmd

import (
	"io"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"massnet.org/hexsum/config"
	"massnet.org/hexsum/logging"
)

const (
	envPrefix = "hexsum"

	keyLogDir    = "log_dir"
	keyLogLevel  = "log_level"
	keyLogFile   = "log_file"
	keyWorkers   = "workers"
	keyBatchSize = "batch"
	keyCache     = "cache"

	// logMaxAge is the retention of rotated log files in days.
	logMaxAge = 30
)

// options holds the state of one command tree.
type options struct {
	cfgFile         string
	usingConfigFile bool
	v               *viper.Viper
	config          *config.Config
}

func (o *options) bindFlags(flags *pflag.FlagSet) {
	defaults := config.DefaultConfig()
	flags.StringVar(&o.cfgFile, "config", "", "config file (default is ./"+config.DefaultConfigFilename+" if present)")
	flags.String(keyLogDir, defaults.Log.LogDir, "directory for log files")
	flags.String(keyLogLevel, defaults.Log.LogLevel, "level of logs (trace, debug, info, warn, error, fatal, panic)")
	flags.Bool(keyLogFile, !defaults.Log.DisableFile, "also write logs to rotated files under log_dir")
	flags.Int(keyWorkers, defaults.Hasher.Workers, "number of messages hashed concurrently")
	flags.Int(keyBatchSize, defaults.Hasher.BatchSize, "maximum number of lines read ahead")
	flags.Int(keyCache, defaults.Hasher.CacheEntries, "number of digests memoized, 0 disables")

	o.v = viper.New()
	for _, key := range []string{keyLogDir, keyLogLevel, keyLogFile, keyWorkers, keyBatchSize, keyCache} {
		o.v.BindPFlag(key, flags.Lookup(key))
	}
}

// initConfig merges, lowest precedence first: built-in defaults, the
// config file, HEXSUM_* environment variables and command line flags.
func (o *options) initConfig() error {
	cfg := config.DefaultConfig()
	filename := o.cfgFile
	if filename == "" {
		if _, err := os.Stat(config.DefaultConfigFilename); err == nil {
			filename = config.DefaultConfigFilename
		}
	}
	if filename != "" {
		loaded, err := config.LoadConfig(filename)
		if err != nil {
			return err
		}
		cfg = loaded
		o.usingConfigFile = true
	}
	if err := config.CheckConfig(cfg); err != nil {
		return err
	}

	o.v.SetEnvPrefix(envPrefix)
	o.v.AutomaticEnv() // read in environment variables that match

	// Values from the file act as defaults, so only changed flags and
	// set environment variables override them.
	o.v.SetDefault(keyLogDir, cfg.Log.LogDir)
	o.v.SetDefault(keyLogLevel, cfg.Log.LogLevel)
	o.v.SetDefault(keyLogFile, !cfg.Log.DisableFile)
	o.v.SetDefault(keyWorkers, cfg.Hasher.Workers)
	o.v.SetDefault(keyBatchSize, cfg.Hasher.BatchSize)
	o.v.SetDefault(keyCache, cfg.Hasher.CacheEntries)

	cfg.Log.LogDir = o.v.GetString(keyLogDir)
	cfg.Log.LogLevel = o.v.GetString(keyLogLevel)
	cfg.Log.DisableFile = !o.v.GetBool(keyLogFile)
	cfg.Hasher.Workers = o.v.GetInt(keyWorkers)
	cfg.Hasher.BatchSize = o.v.GetInt(keyBatchSize)
	cfg.Hasher.CacheEntries = o.v.GetInt(keyCache)

	if err := config.CheckConfig(cfg); err != nil {
		return err
	}
	o.config = cfg
	return nil
}

// initLogger initializes logging module by config.
func (o *options) initLogger(stderr io.Writer) {
	if o.config.Log.DisableFile {
		logging.InitConsole(stderr, o.config.Log.LogLevel)
		return
	}
	logging.Init(o.config.Log.LogDir, config.DefaultLoggingFilename, o.config.Log.LogLevel, logMaxAge, o.config.Log.DisableCPrint)
}

// logBasicInfo logs the basic info on initializing.
func (o *options) logBasicInfo() {
	logging.VPrint(logging.DEBUG, "using config", logging.LogFormat{
		"file":    o.usingConfigFile,
		"workers": o.config.Hasher.Workers,
		"batch":   o.config.Hasher.BatchSize,
		"cache":   o.config.Hasher.CacheEntries,
	})
}
