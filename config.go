package dt885x

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"

	"github.com/luhtfiimanal/go-dt885x/serial"
)

// Config is the file form of the driver settings.
type Config struct {
	Conn       string
	SerialComm string
	ScanBudget time.Duration
	PollPeriod time.Duration
	Log        LogConfig
}

type fileConfig struct {
	Driver struct {
		Conn       string `toml:"conn"`
		SerialComm string `toml:"serialcomm"`
		ScanBudget string `toml:"scan_budget"`
		PollPeriod string `toml:"poll_period"`
	} `toml:"driver"`
	Log LogConfig `toml:"log"`
}

// DefaultConfig returns the settings used when a file leaves them out.
func DefaultConfig() Config {
	return Config{
		SerialComm: DefaultSerialComm,
		ScanBudget: DefaultScanBudget,
		PollPeriod: DefaultPollPeriod,
		Log:        LogConfig{Level: "info", Output: "stderr"},
	}
}

// LoadConfig reads a TOML file such as:
//
//	[driver]
//	conn = "/dev/ttyUSB0"
//	serialcomm = "9600/8n1"
//	scan_budget = "25ms"
//	poll_period = "150ms"
//
//	[log]
//	level = "debug"
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	if meta.IsDefined("driver", "conn") {
		cfg.Conn = strings.TrimSpace(raw.Driver.Conn)
	}
	if meta.IsDefined("driver", "serialcomm") {
		cfg.SerialComm = strings.TrimSpace(raw.Driver.SerialComm)
	}
	if meta.IsDefined("driver", "scan_budget") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.Driver.ScanBudget))
		if err != nil {
			return Config{}, fmt.Errorf("parse scan_budget: %w", err)
		}
		cfg.ScanBudget = d
	}
	if meta.IsDefined("driver", "poll_period") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.Driver.PollPeriod))
		if err != nil {
			return Config{}, fmt.Errorf("parse poll_period: %w", err)
		}
		cfg.PollPeriod = d
	}
	if meta.IsDefined("log", "level") {
		cfg.Log.Level = strings.TrimSpace(raw.Log.Level)
	}
	if meta.IsDefined("log", "output") {
		cfg.Log.Output = strings.TrimSpace(raw.Log.Output)
	}
	if meta.IsDefined("log", "pretty") {
		cfg.Log.Pretty = raw.Log.Pretty
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every setting is usable.
func (c Config) Validate() error {
	if _, err := serial.ParseComm(c.Conn, c.SerialComm); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.ScanBudget <= 0 {
		return fmt.Errorf("config: scan_budget must be positive")
	}
	if c.PollPeriod <= 0 {
		return fmt.Errorf("config: poll_period must be positive")
	}
	if c.Log.Level != "" {
		if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
			return fmt.Errorf("config: log level: %w", err)
		}
	}
	switch c.Log.Output {
	case "", "stdout", "stderr":
	default:
		return fmt.Errorf("config: log output %q: want stdout or stderr", c.Log.Output)
	}
	return nil
}

// Options returns the driver options the config describes.
func (c Config) Options() []Option {
	return []Option{
		WithDefaultConn(c.Conn),
		WithDefaultSerialComm(c.SerialComm),
		WithScanBudget(c.ScanBudget),
		WithPollPeriod(c.PollPeriod),
	}
}
