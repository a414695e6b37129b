package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Mode selects which frontend drives the catalog
type Mode string

const (
	ModeAuto Mode = "auto"
	ModeGUI  Mode = "gui"
	ModeCLI  Mode = "cli"
)

// Environment variables read by Load
const (
	EnvMode     = "CATALOG_MODE"
	EnvLanguage = "CATALOG_LANG"
	EnvSeed     = "CATALOG_SEED"
	EnvVerbose  = "CATALOG_VERBOSE"
)

// DefaultEnvFile is loaded when present
const DefaultEnvFile = ".env"

// ErrInvalidMode is returned for a mode other than auto, gui or cli
var ErrInvalidMode = errors.New("invalid mode")

// Options are the runtime options of a single run
type Options struct {
	Mode     Mode
	Language string // empty means use the saved GUI preference or system default
	Seed     bool   // pre-seed the catalog with demo books
	Verbose  bool   // keep diagnostic logging in CLI mode
}

// Load resolves options from env files, the environment and command line
// arguments, in increasing order of precedence. Missing env files are
// ignored.
func Load(args []string, envFiles ...string) (Options, error) {
	if len(envFiles) == 0 {
		envFiles = []string{DefaultEnvFile}
	}
	for _, file := range envFiles {
		if _, err := os.Stat(file); err != nil {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			return Options{}, fmt.Errorf("failed to load %s: %w", file, err)
		}
	}

	opts := Options{
		Mode:     Mode(envOrDefault(EnvMode, string(ModeAuto))),
		Language: os.Getenv(EnvLanguage),
		Seed:     envBool(EnvSeed, true),
		Verbose:  envBool(EnvVerbose, false),
	}

	fs := flag.NewFlagSet("library-catalog", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	mode := fs.String("mode", string(opts.Mode), "frontend to run: auto, gui or cli")
	fs.StringVar(&opts.Language, "lang", opts.Language, "interface language: system, en, ru or pt")
	fs.BoolVar(&opts.Seed, "seed", opts.Seed, "pre-seed the catalog with demo books")
	fs.BoolVar(&opts.Verbose, "verbose", opts.Verbose, "print diagnostic logs in CLI mode")
	if err := fs.Parse(args); err != nil {
		return Options{}, err
	}

	opts.Mode = Mode(*mode)
	if !opts.Mode.IsValid() {
		return Options{}, fmt.Errorf("%w: %q", ErrInvalidMode, *mode)
	}

	return opts, nil
}

// IsValid reports whether the mode is known
func (m Mode) IsValid() bool {
	return m == ModeAuto || m == ModeGUI || m == ModeCLI
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return value
}
