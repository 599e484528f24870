// Package config loads stanza settings from a TOML file and STANZA_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/alexanderramin/stanza/internal/domain"
	"github.com/alexanderramin/stanza/internal/generation"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Dir is the per-user directory holding the config file and database.
const Dir = ".stanza"

// Config is the complete stanza configuration.
type Config struct {
	DBPath          string `toml:"db_path"`
	VocabularyPath  string `toml:"vocabulary_path"`
	DictionaryPath  string `toml:"dictionary_path"`
	Seed            int64  `toml:"seed"`
	LogLevel        string `toml:"log_level"`
	LogFormat       string `toml:"log_format"`
	LookupTimeoutMs int    `toml:"lookup_timeout_ms"`

	Generation GenerationConfig `toml:"generation"`
	FreeVerse  FreeVerseConfig  `toml:"free_verse"`
}

// GenerationConfig tunes line generation.
type GenerationConfig struct {
	PhraseRetries             int     `toml:"phrase_retries"`
	MetaphorChance            float64 `toml:"metaphor_chance"`
	UnspecifiedMetaphorChance float64 `toml:"unspecified_metaphor_chance"`
	ImageChance               float64 `toml:"image_chance"`
	MoodWeight                int     `toml:"mood_weight"`
}

// FreeVerseConfig bounds free verse composition.
type FreeVerseConfig struct {
	MinLines     int `toml:"min_lines"`
	MaxLines     int `toml:"max_lines"`
	MinSyllables int `toml:"min_syllables"`
	MaxSyllables int `toml:"max_syllables"`
	MaxDelta     int `toml:"max_delta"`
}

// DefaultConfigToml is written by WriteDefault.
const DefaultConfigToml = `# stanza configuration

# db_path = "~/.stanza/stanza.db"
# vocabulary_path = ""   # YAML file or directory, replaces the built-in vocabulary
# dictionary_path = ""   # CMU pronouncing dictionary file
seed = 0                 # 0 draws a new seed every run
log_level = "warn"
log_format = "text"
lookup_timeout_ms = 250

[generation]
phrase_retries = 10
metaphor_chance = 0.7
unspecified_metaphor_chance = 0.15
image_chance = 0.3
mood_weight = 2

[free_verse]
min_lines = 4
max_lines = 8
min_syllables = 5
max_syllables = 12
max_delta = 2
`

// Default returns the built-in configuration.
func Default() Config {
	policy := generation.DefaultPolicy()
	fv := domain.DefaultFreeVerseRange()
	return Config{
		DBPath:          defaultPath("stanza.db"),
		LogLevel:        "warn",
		LogFormat:       "text",
		LookupTimeoutMs: 250,
		Generation: GenerationConfig{
			PhraseRetries:             policy.PhraseRetries,
			MetaphorChance:            policy.MetaphorChance,
			UnspecifiedMetaphorChance: policy.UnspecifiedMetaphorChance,
			ImageChance:               policy.ImageChance,
			MoodWeight:                policy.MoodWeight,
		},
		FreeVerse: FreeVerseConfig{
			MinLines:     fv.MinLines,
			MaxLines:     fv.MaxLines,
			MinSyllables: fv.MinSyllables,
			MaxSyllables: fv.MaxSyllables,
			MaxDelta:     fv.MaxDelta,
		},
	}
}

// Path returns the config file location: STANZA_CONFIG or
// ~/.stanza/config.toml.
func Path() string {
	if v := os.Getenv("STANZA_CONFIG"); v != "" {
		return v
	}
	return defaultPath("config.toml")
}

func defaultPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(Dir, name)
	}
	return filepath.Join(home, Dir, name)
}

// Load reads path over the defaults, applies environment overrides and
// validates the result. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("reading config: %w", err)
		default:
			if err := toml.Unmarshal(raw, &cfg); err != nil {
				return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
			}
		}
	}
	applyEnv(&cfg)
	cfg.DBPath = expandHome(cfg.DBPath)
	cfg.VocabularyPath = expandHome(cfg.VocabularyPath)
	cfg.DictionaryPath = expandHome(cfg.DictionaryPath)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// WriteDefault writes DefaultConfigToml to path unless a file already
// exists there.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config already exists at %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return os.WriteFile(path, []byte(DefaultConfigToml), 0o644)
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("STANZA_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("STANZA_VOCABULARY"); v != "" {
		cfg.VocabularyPath = v
	}
	if v := os.Getenv("STANZA_DICTIONARY"); v != "" {
		cfg.DictionaryPath = v
	}
	if v := os.Getenv("STANZA_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Seed = n
		}
	}
	if v := os.Getenv("STANZA_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("STANZA_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	applyIntEnv(&cfg.LookupTimeoutMs, "STANZA_LOOKUP_TIMEOUT_MS")

	applyIntEnv(&cfg.Generation.PhraseRetries, "STANZA_PHRASE_RETRIES")
	applyChanceEnv(&cfg.Generation.MetaphorChance, "STANZA_METAPHOR_CHANCE")
	applyChanceEnv(&cfg.Generation.UnspecifiedMetaphorChance, "STANZA_UNSPECIFIED_METAPHOR_CHANCE")
	applyChanceEnv(&cfg.Generation.ImageChance, "STANZA_IMAGE_CHANCE")
	applyIntEnv(&cfg.Generation.MoodWeight, "STANZA_MOOD_WEIGHT")

	applyIntEnv(&cfg.FreeVerse.MinLines, "STANZA_FREE_VERSE_MIN_LINES")
	applyIntEnv(&cfg.FreeVerse.MaxLines, "STANZA_FREE_VERSE_MAX_LINES")
	applyIntEnv(&cfg.FreeVerse.MinSyllables, "STANZA_FREE_VERSE_MIN_SYLLABLES")
	applyIntEnv(&cfg.FreeVerse.MaxSyllables, "STANZA_FREE_VERSE_MAX_SYLLABLES")
	applyIntEnv(&cfg.FreeVerse.MaxDelta, "STANZA_FREE_VERSE_MAX_DELTA")
}

// applyIntEnv ignores values that are not positive integers.
func applyIntEnv(dst *int, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	*dst = n
}

// applyChanceEnv ignores values outside [0, 1].
func applyChanceEnv(dst *float64, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 || f > 1 {
		return
	}
	*dst = f
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// Validate reports every out-of-range setting, each wrapping ErrInvalid.
func (c Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.DBPath == "" {
		bad("db_path is empty")
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		bad("log_level %q", c.LogLevel)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		bad("log_format %q must be text or json", c.LogFormat)
	}
	if c.LookupTimeoutMs <= 0 {
		bad("lookup_timeout_ms must be positive")
	}

	g := c.Generation
	if g.PhraseRetries < 1 {
		bad("generation.phrase_retries must be at least 1")
	}
	for name, p := range map[string]float64{
		"metaphor_chance":             g.MetaphorChance,
		"unspecified_metaphor_chance": g.UnspecifiedMetaphorChance,
		"image_chance":                g.ImageChance,
	} {
		if p < 0 || p > 1 {
			bad("generation.%s %.2f outside [0, 1]", name, p)
		}
	}
	if g.MoodWeight < 1 {
		bad("generation.mood_weight must be at least 1")
	}

	fv := c.FreeVerse
	if fv.MinLines < 1 || fv.MaxLines < fv.MinLines {
		bad("free_verse lines [%d, %d]", fv.MinLines, fv.MaxLines)
	}
	if fv.MinSyllables < 1 || fv.MaxSyllables < fv.MinSyllables {
		bad("free_verse syllables [%d, %d]", fv.MinSyllables, fv.MaxSyllables)
	}
	if fv.MaxDelta < 0 {
		bad("free_verse.max_delta must not be negative")
	}
	return errors.Join(errs...)
}

// Policy converts the generation settings.
func (c Config) Policy() generation.Policy {
	return generation.Policy{
		PhraseRetries:             c.Generation.PhraseRetries,
		MetaphorChance:            c.Generation.MetaphorChance,
		UnspecifiedMetaphorChance: c.Generation.UnspecifiedMetaphorChance,
		ImageChance:               c.Generation.ImageChance,
		MoodWeight:                c.Generation.MoodWeight,
	}
}

// FreeVerseRange converts the free verse settings.
func (c Config) FreeVerseRange() domain.FreeVerseRange {
	return domain.FreeVerseRange{
		MinLines:     c.FreeVerse.MinLines,
		MaxLines:     c.FreeVerse.MaxLines,
		MinSyllables: c.FreeVerse.MinSyllables,
		MaxSyllables: c.FreeVerse.MaxSyllables,
		MaxDelta:     c.FreeVerse.MaxDelta,
	}
}

// LookupTimeout is the per-lookup deadline for database-backed sources.
func (c Config) LookupTimeout() time.Duration {
	return time.Duration(c.LookupTimeoutMs) * time.Millisecond
}

// SlogLevel returns the configured log level, or warn when unparseable.
func (c Config) SlogLevel() slog.Level {
	lvl, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelWarn
	}
	return lvl
}

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	err := lvl.UnmarshalText([]byte(s))
	return lvl, err
}
