// Package config resolves runtime settings from defaults, an optional .env file,
// PLANET_OFFLINE_* environment variables and command-line flags, later sources winning
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/lixenwraith/planet-offline/constants"
)

const (
	EnvPrefix = "PLANET_OFFLINE_"
	EnvFile   = ".env"

	MinFPS = 10
	MaxFPS = 240
)

// Config holds the binary's settings
type Config struct {
	Debug     bool   // Write logs/planet-offline.log
	Mute      bool   // Start with sound muted
	Volume    int    // Master volume, 0 to 100
	ScoreFile string // High score JSON path
	Seed      uint64 // Simulation seed, 0 picks one from the clock
	FPS       int    // Wall-clock frame rate of the fixed-step loop
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Volume:    80,
		ScoreFile: DefaultScoreFile(),
		FPS:       constants.FrameRate,
	}
}

// DefaultScoreFile places the high score under the user config directory,
// falling back to the working directory when there is none
func DefaultScoreFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "planet-offline-score.json"
	}
	return filepath.Join(dir, "planet-offline", "score.json")
}

// Load resolves the configuration; args excludes the program name
func Load(args []string) (*Config, error) {
	cfg := Default()

	if err := godotenv.Load(EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("reading %s: %w", EnvFile, err)
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.applyFlags(args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.Volume < 0 || c.Volume > 100 {
		return fmt.Errorf("volume %d out of range 0-100", c.Volume)
	}
	if c.FPS < MinFPS || c.FPS > MaxFPS {
		return fmt.Errorf("fps %d out of range %d-%d", c.FPS, MinFPS, MaxFPS)
	}
	if c.ScoreFile == "" {
		return errors.New("score file path is empty")
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	var err error
	env := func(name string, parse func(string) error) {
		if err != nil {
			return
		}
		v, ok := lookup(EnvPrefix + name)
		if !ok || v == "" {
			return
		}
		if perr := parse(v); perr != nil {
			err = fmt.Errorf("%s%s: %w", EnvPrefix, name, perr)
		}
	}

	env("DEBUG", boolInto(&c.Debug))
	env("MUTE", boolInto(&c.Mute))
	env("VOLUME", intInto(&c.Volume))
	env("SCORE_FILE", func(v string) error { c.ScoreFile = v; return nil })
	env("SEED", func(v string) error {
		n, perr := strconv.ParseUint(v, 10, 64)
		c.Seed = n
		return perr
	})
	env("FPS", intInto(&c.FPS))
	return err
}

func (c *Config) flagSet() *flag.FlagSet {
	set := flag.NewFlagSet("planet-offline", flag.ContinueOnError)
	set.SetOutput(io.Discard)
	set.BoolVar(&c.Debug, "debug", c.Debug, "write logs to logs/planet-offline.log")
	set.BoolVar(&c.Mute, "mute", c.Mute, "start muted")
	set.IntVar(&c.Volume, "volume", c.Volume, "master volume 0-100")
	set.StringVar(&c.ScoreFile, "score-file", c.ScoreFile, "high score file")
	set.Uint64Var(&c.Seed, "seed", c.Seed, "simulation seed, 0 for random")
	set.IntVar(&c.FPS, "fps", c.FPS, "frames per second")
	return set
}

// applyFlags returns flag.ErrHelp unwrapped for -h and -help
func (c *Config) applyFlags(args []string) error {
	set := c.flagSet()
	if err := set.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("flags: %w", err)
	}
	if set.NArg() > 0 {
		return fmt.Errorf("unexpected argument %q", set.Arg(0))
	}
	return nil
}

// PrintUsage writes the flag defaults, the environment overrides and the controls to w
func PrintUsage(w io.Writer) {
	set := Default().flagSet()
	set.SetOutput(w)
	fmt.Fprintln(w, "Usage: planet-offline [options]")
	fmt.Fprintln(w, "\nOptions:")
	set.PrintDefaults()
	fmt.Fprintf(w, "\nEvery option can also be set as %s<NAME> in the environment or %s, upper case with underscores\n", EnvPrefix, EnvFile)
	fmt.Fprintln(w, "\nControls:")
	fmt.Fprintln(w, "  arrows            Move")
	fmt.Fprintln(w, "  z / x / c         Lazer / bombs / uplink tether")
	fmt.Fprintln(w, "  m                 Mute")
	fmt.Fprintln(w, "  p, Esc            Pause")
	fmt.Fprintln(w, "  q, Ctrl+C         Quit")
}

func boolInto(dst *bool) func(string) error {
	return func(v string) error {
		b, err := strconv.ParseBool(v)
		*dst = b
		return err
	}
}

func intInto(dst *int) func(string) error {
	return func(v string) error {
		n, err := strconv.Atoi(v)
		*dst = n
		return err
	}
}
