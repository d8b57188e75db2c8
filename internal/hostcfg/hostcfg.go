//go:build !tinygo

// Package hostcfg turns desktop command-line flags and WATCHFACE_* environment
// variables into HAL and app configuration.
package hostcfg

import (
	"os"
	"strings"
	"time"

	"elitewatch/app"
	"elitewatch/hal"
	"elitewatch/sparkos/proto"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

// EnvPrefix prefixes the environment variable for every flag.
const EnvPrefix = "WATCHFACE_"

const defaultEnvFile = ".env"

// Options are the simulator settings shared by the host binaries.
type Options struct {
	Shape        string
	Mono         bool
	Clock        string
	Battery      int
	Disconnected bool
	LogLevel     string
	EnvFile      string
	PollTicks    uint64
}

func Defaults() Options {
	return Options{
		Shape:    hal.ShapeRect.String(),
		Battery:  -1,
		LogLevel: "info",
		EnvFile:  defaultEnvFile,
	}
}

// Bind registers the options as flags on fs.
func (o *Options) Bind(fs *pflag.FlagSet) {
	fs.StringVar(&o.Shape, "shape", o.Shape, "Display shape: rect or round.")
	fs.BoolVar(&o.Mono, "mono", o.Mono, "Draw as a monochrome device.")
	fs.StringVar(&o.Clock, "clock", o.Clock, "Clock style: 24h or 12h (default 24h).")
	fs.IntVar(&o.Battery, "battery", o.Battery, "Pin the battery percentage (negative reads the machine battery).")
	fs.BoolVar(&o.Disconnected, "disconnected", o.Disconnected, "Start with the phone link down.")
	fs.StringVar(&o.LogLevel, "log-level", o.LogLevel, "Log level: debug, info, warn, error.")
	fs.StringVar(&o.EnvFile, "env-file", o.EnvFile, "File of WATCHFACE_* defaults.")
	fs.Uint64Var(&o.PollTicks, "poll-ticks", o.PollTicks, "Clock and sensor poll period in ticks (0 = service default).")
}

// EnvName returns the environment variable that backs a flag.
func EnvName(flag string) string {
	return EnvPrefix + strings.ToUpper(strings.ReplaceAll(flag, "-", "_"))
}

// LoadEnv reads the env file, then fills every flag the user did not set from
// its WATCHFACE_* variable. A missing default env file is not an error.
func LoadEnv(fs *pflag.FlagSet, envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			explicit := fs.Lookup("env-file") != nil && fs.Changed("env-file")
			if explicit || !os.IsNotExist(errors.Cause(err)) {
				return errors.Wrapf(err, "load env file %s", envFile)
			}
		}
	}

	var firstErr error
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Changed || firstErr != nil {
			return
		}
		v, ok := os.LookupEnv(EnvName(f.Name))
		if !ok {
			return
		}
		if err := fs.Set(f.Name, v); err != nil {
			firstErr = errors.Wrapf(err, "%s", EnvName(f.Name))
		}
	})
	return firstErr
}

// Clock24h parses the clock option. Empty means the HAL default.
func (o Options) Clock24h() (*bool, error) {
	var v bool
	switch strings.ToLower(o.Clock) {
	case "":
		return nil, nil
	case "24h", "24":
		v = true
	case "12h", "12":
		v = false
	default:
		return nil, errors.Errorf("invalid clock style %q (want 24h or 12h)", o.Clock)
	}
	return &v, nil
}

// HostConfig builds the simulated device.
func (o Options) HostConfig(log *logrus.Logger) (hal.HostConfig, error) {
	cfg := hal.DefaultHostConfig()
	shape, ok := hal.ParseDisplayShape(strings.ToLower(o.Shape))
	if !ok {
		return cfg, errors.Errorf("invalid shape %q (want rect or round)", o.Shape)
	}
	cfg.Shape = shape
	if shape == hal.ShapeRound {
		cfg.Width, cfg.Height = 180, 180
	}
	if o.Battery > 100 {
		return cfg, errors.Errorf("invalid battery percentage %d", o.Battery)
	}
	cfg.BatteryPercent = o.Battery
	cfg.Connected = !o.Disconnected
	clock, err := o.Clock24h()
	if err != nil {
		return cfg, err
	}
	cfg.Clock24h = clock
	cfg.Log = log
	return cfg, nil
}

// AppConfig builds the OS configuration.
func (o Options) AppConfig() (app.Config, error) {
	clock, err := o.Clock24h()
	if err != nil {
		return app.Config{}, err
	}
	// Levels the kernel has no name for (trace, fatal) are left to logrus.
	level, ok := proto.ParseLogLevel(o.LogLevel)
	if !ok {
		level = proto.LogDebug
	}
	return app.Config{Monochrome: o.Mono, Clock24h: clock, PollTicks: o.PollTicks, LogLevel: level}, nil
}

// NewLogger returns a logrus logger at level, with full timestamps on a
// terminal.
func NewLogger(level string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrap(err, "parse log level")
	}
	log := logrus.New()
	log.SetLevel(lvl)
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{})
	if term.IsTerminal(int(os.Stderr.Fd())) {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.Kitchen,
		})
	}
	return log, nil
}
