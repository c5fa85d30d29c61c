// Package config handles lvnoise CLI configuration via YAML files and
// environment variables.
//
// Configuration Precedence (highest to lowest):
//  1. Command-line flags (--algorithm, --corner, etc.)
//  2. Environment variables (LVNOISE_*)
//  3. Config file (lvnoise.yaml)
//  4. Built-in defaults
//
// Example Usage:
//
//	cfg, err := config.LoadFromFile(config.FindConfigFile())
//	if err != nil {
//		log.Fatalf("Invalid config: %v", err)
//	}
//
// Environment Variables:
//   - LVNOISE_ALGORITHM="pcg" | "chacha8" | "splitmix64"
//   - LVNOISE_CORNER="1,2,3"
//   - LVNOISE_FORMAT="text" | "yaml"
//   - LVNOISE_ISOTROPY_MIN_DIM=2
//   - LVNOISE_ISOTROPY_MAX_DIM=40
//   - LVNOISE_ISOTROPY_SAMPLES=500
//   - LVNOISE_ISOTROPY_CONFIDENCE=0.99
//   - LVNOISE_ISOTROPY_SEED=1
//   - LVNOISE_ISOTROPY_SPAN=1000
//   - LVNOISE_ISOTROPY_MAX_BIASED_FRACTION=0.05
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvnoise/gradient"
)

// Output formats accepted by Sample.Format.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// ConfigFileName is the file FindConfigFile looks for.
const ConfigFileName = "lvnoise.yaml"

// Config holds all lvnoise CLI configuration.
type Config struct {
	Sampler  SamplerConfig  `yaml:"sampler"`
	Sample   SampleConfig   `yaml:"sample"`
	Isotropy IsotropyConfig `yaml:"isotropy"`
}

// SamplerConfig selects the gradient generator.
type SamplerConfig struct {
	// Algorithm name accepted by gradient.ParseAlgorithm.
	Algorithm string `yaml:"algorithm"`
}

// SampleConfig drives the sample command.
type SampleConfig struct {
	Corner []float32 `yaml:"corner"`
	Format string    `yaml:"format"`
}

// IsotropyConfig drives the isotropy command.
type IsotropyConfig struct {
	MinDim     int     `yaml:"min_dim"`
	MaxDim     int     `yaml:"max_dim"`
	Samples    int     `yaml:"samples"`
	Confidence float64 `yaml:"confidence"`
	Seed       uint64  `yaml:"seed"`
	Span       float32 `yaml:"span"`
	// MaxBiasedFraction is the share of component intervals allowed to miss
	// zero across the whole survey before the run is reported as biased.
	MaxBiasedFraction float64 `yaml:"max_biased_fraction"`
}

// LoadDefaults returns the built-in configuration.
func LoadDefaults() *Config {
	return &Config{
		Sampler: SamplerConfig{Algorithm: gradient.PCG.String()},
		Sample: SampleConfig{
			Corner: []float32{1, 2, 3},
			Format: FormatText,
		},
		Isotropy: IsotropyConfig{
			MinDim:            2,
			MaxDim:            40,
			Samples:           500,
			Confidence:        0.99,
			Seed:              1,
			Span:              1000,
			MaxBiasedFraction: 0.05,
		},
	}
}

// LoadFromEnv returns defaults overridden by LVNOISE_* variables.
func LoadFromEnv() (*Config, error) {
	cfg := LoadDefaults()
	if err := applyEnvVars(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromFile loads defaults, then the YAML file at configPath (a missing
// file is not an error), then environment overrides.
func LoadFromFile(configPath string) (*Config, error) {
	cfg := LoadDefaults()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
			}
		case os.IsNotExist(err):
			// defaults + env only
		default:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := applyEnvVars(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// FindConfigFile returns the first existing config file among
// $LVNOISE_CONFIG, ./lvnoise.yaml and ~/.lvnoise/lvnoise.yaml, or "".
func FindConfigFile() string {
	candidates := []string{os.Getenv("LVNOISE_CONFIG"), ConfigFileName}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".lvnoise", ConfigFileName))
	}
	for _, p := range candidates {
		if p == "" {
			continue
		}
		if st, err := os.Stat(p); err == nil && !st.IsDir() {
			return p
		}
	}

	return ""
}

// Algorithm resolves Sampler.Algorithm.
func (c *Config) Algorithm() (gradient.Algorithm, error) {
	return gradient.ParseAlgorithm(c.Sampler.Algorithm)
}

// Validate checks every section and returns the first problem found.
func (c *Config) Validate() error {
	if _, err := c.Algorithm(); err != nil {
		return fmt.Errorf("sampler.algorithm: %w", err)
	}
	if len(c.Sample.Corner) < 2 {
		return fmt.Errorf("sample.corner: need at least 2 coordinates, got %d", len(c.Sample.Corner))
	}
	if c.Sample.Format != FormatText && c.Sample.Format != FormatYAML {
		return fmt.Errorf("sample.format: unsupported format %q", c.Sample.Format)
	}

	iso := c.Isotropy
	if iso.MinDim < 2 || iso.MaxDim < iso.MinDim {
		return fmt.Errorf("isotropy: invalid dimension range [%d,%d]", iso.MinDim, iso.MaxDim)
	}
	if iso.Samples < 2 {
		return fmt.Errorf("isotropy.samples: need at least 2, got %d", iso.Samples)
	}
	if !(iso.Confidence > 0 && iso.Confidence < 1) {
		return fmt.Errorf("isotropy.confidence: %v not in (0,1)", iso.Confidence)
	}
	if !(iso.Span > 0) {
		return fmt.Errorf("isotropy.span: must be positive, got %v", iso.Span)
	}
	if iso.MaxBiasedFraction < 0 || iso.MaxBiasedFraction > 1 {
		return fmt.Errorf("isotropy.max_biased_fraction: %v not in [0,1]", iso.MaxBiasedFraction)
	}

	return nil
}

// String renders the configuration as YAML.
func (c *Config) String() string {
	out, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Sprintf("config: %v", err)
	}

	return string(out)
}

// ParseCorner parses a comma-separated coordinate list such as "1,2.5,-3".
func ParseCorner(s string) ([]float32, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	corner := make([]float32, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return nil, fmt.Errorf("corner[%d]=%q: %w", i, p, err)
		}
		corner[i] = float32(v)
	}

	return corner, nil
}

func applyEnvVars(cfg *Config) error {
	cfg.Sampler.Algorithm = getEnv("LVNOISE_ALGORITHM", cfg.Sampler.Algorithm)
	cfg.Sample.Format = getEnv("LVNOISE_FORMAT", cfg.Sample.Format)
	if v := os.Getenv("LVNOISE_CORNER"); v != "" {
		corner, err := ParseCorner(v)
		if err != nil {
			return fmt.Errorf("LVNOISE_CORNER: %w", err)
		}
		cfg.Sample.Corner = corner
	}

	iso := &cfg.Isotropy
	iso.MinDim = getEnvInt("LVNOISE_ISOTROPY_MIN_DIM", iso.MinDim)
	iso.MaxDim = getEnvInt("LVNOISE_ISOTROPY_MAX_DIM", iso.MaxDim)
	iso.Samples = getEnvInt("LVNOISE_ISOTROPY_SAMPLES", iso.Samples)
	iso.Confidence = getEnvFloat("LVNOISE_ISOTROPY_CONFIDENCE", iso.Confidence)
	iso.Seed = getEnvUint("LVNOISE_ISOTROPY_SEED", iso.Seed)
	iso.Span = float32(getEnvFloat("LVNOISE_ISOTROPY_SPAN", float64(iso.Span)))
	iso.MaxBiasedFraction = getEnvFloat("LVNOISE_ISOTROPY_MAX_BIASED_FRACTION", iso.MaxBiasedFraction)

	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvUint(key string, defaultVal uint64) uint64 {
	if val := os.Getenv(key); val != "" {
		if u, err := strconv.ParseUint(val, 10, 64); err == nil {
			return u
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}
