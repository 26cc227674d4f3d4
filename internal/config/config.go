package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. ASKDOJO_DELAY_MIN_MS.
const EnvPrefix = "ASKDOJO"

// Keys understood in the config file and as ASKDOJO_<KEY> env variables.
const (
	KeyDelayEnabled = "delay_enabled"
	KeyDelayMinMs   = "delay_min_ms"
	KeyDelayMaxMs   = "delay_max_ms"
	KeyLogMode      = "log_mode"
	KeyLogReplies   = "log_replies"
	KeyLogFile      = "log_file"
	KeyDBPath       = "db_path"
)

// Config holds everything the askdojo binary reads at startup.
type Config struct {
	DelayEnabled bool
	DelayMinMs   int
	DelayMaxMs   int
	LogMode      string
	LogReplies   bool
	LogFile      string // empty means stderr
	DBPath       string
}

// Default returns the built-in settings: a thinking delay of 800-1200ms,
// logging off, and an in-memory transcript.
func Default() Config {
	return Config{
		DelayEnabled: true,
		DelayMinMs:   800,
		DelayMaxMs:   1200,
		LogMode:      "off",
		LogReplies:   false,
		DBPath:       ":memory:",
	}
}

// flagKeys maps command-line flags to config keys.
var flagKeys = map[string]string{
	"delay":       KeyDelayEnabled,
	"delay-min":   KeyDelayMinMs,
	"delay-max":   KeyDelayMaxMs,
	"log":         KeyLogMode,
	"log-replies": KeyLogReplies,
	"log-file":    KeyLogFile,
	"db":          KeyDBPath,
}

// RegisterFlags adds the persistent flags Load understands to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.String("config", "", "config file (default is $HOME/.askdojo.yaml)")
	fs.Bool("delay", d.DelayEnabled, "simulate thinking time before each reply")
	fs.Int("delay-min", d.DelayMinMs, "minimum thinking time in milliseconds")
	fs.Int("delay-max", d.DelayMaxMs, "maximum thinking time in milliseconds (exclusive)")
	fs.String("log", d.LogMode, "log output: off, dev, or prod")
	fs.Bool("log-replies", d.LogReplies, "log every reply's topic and timing")
	fs.String("log-file", d.LogFile, "write logs to this file instead of stderr (in a terminal they go to "+TerminalLogFile()+" by default)")
	fs.String("db", d.DBPath, "transcript database path")
}

// Load layers defaults, the config file, ASKDOJO_* env variables, and
// explicitly set flags, in increasing precedence. fs may be nil.
func Load(fs *pflag.FlagSet) (Config, error) {
	d := Default()
	v := viper.New()
	v.SetDefault(KeyDelayEnabled, d.DelayEnabled)
	v.SetDefault(KeyDelayMinMs, d.DelayMinMs)
	v.SetDefault(KeyDelayMaxMs, d.DelayMaxMs)
	v.SetDefault(KeyLogMode, d.LogMode)
	v.SetDefault(KeyLogReplies, d.LogReplies)
	v.SetDefault(KeyLogFile, d.LogFile)
	v.SetDefault(KeyDBPath, d.DBPath)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	var cfgFile string
	if fs != nil {
		for flag, key := range flagKeys {
			if f := fs.Lookup(flag); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("binding flag --%s: %w", flag, err)
				}
			}
		}
		if f := fs.Lookup("config"); f != nil {
			cfgFile = f.Value.String()
		}
	}

	if err := readConfigFile(v, cfgFile); err != nil {
		return Config{}, err
	}

	cfg := Config{
		DelayEnabled: v.GetBool(KeyDelayEnabled),
		DelayMinMs:   v.GetInt(KeyDelayMinMs),
		DelayMaxMs:   v.GetInt(KeyDelayMaxMs),
		LogMode:      strings.ToLower(strings.TrimSpace(v.GetString(KeyLogMode))),
		LogReplies:   v.GetBool(KeyLogReplies),
		LogFile:      v.GetString(KeyLogFile),
		DBPath:       v.GetString(KeyDBPath),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// readConfigFile reads an explicit file, which must exist, or the optional
// $HOME/.askdojo.yaml.
func readConfigFile(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", cfgFile, err)
		}
		return nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	path := filepath.Join(home, ".askdojo.yaml")
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	return nil
}

var validLogModes = map[string]bool{
	"": true, "off": true, "none": true,
	"dev": true, "development": true,
	"prod": true, "production": true,
}

func (c Config) Validate() error {
	var errs []error
	if c.DelayMinMs < 0 {
		errs = append(errs, fmt.Errorf("%s must be >= 0, got %d", KeyDelayMinMs, c.DelayMinMs))
	}
	if c.DelayMaxMs < c.DelayMinMs {
		errs = append(errs, fmt.Errorf("%s (%d) must be >= %s (%d)", KeyDelayMaxMs, c.DelayMaxMs, KeyDelayMinMs, c.DelayMinMs))
	}
	if !validLogModes[c.LogMode] {
		errs = append(errs, fmt.Errorf("%s %q must be off, dev, or prod", KeyLogMode, c.LogMode))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// LoggingEnabled reports whether LogMode produces any output.
func (c Config) LoggingEnabled() bool {
	switch c.LogMode {
	case "", "off", "none":
		return false
	}
	return true
}

// TerminalLogFile is where logs go when stderr is the terminal a chat
// window is drawn on.
func TerminalLogFile() string {
	return filepath.Join(os.TempDir(), "askdojo.log")
}

// ForTerminal keeps log lines off a terminal the UI draws on: with logging
// on and no log file set, logs go to TerminalLogFile.
func (c Config) ForTerminal() Config {
	if c.LoggingEnabled() && c.LogFile == "" {
		c.LogFile = TerminalLogFile()
	}
	return c
}

func (c Config) DelayMin() time.Duration {
	return time.Duration(c.DelayMinMs) * time.Millisecond
}

func (c Config) DelayMax() time.Duration {
	return time.Duration(c.DelayMaxMs) * time.Millisecond
}
