// Package main provides the lvnoise CLI entry point.
package main

import (
	"fmt"
	"io"
	"log"
	"math"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvnoise/config"
	"github.com/katalvlaran/lvnoise/gradient"
	"github.com/katalvlaran/lvnoise/isotropy"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lvnoise",
		Short: "lvnoise - deterministic lattice gradients for gradient noise",
		Long: `lvnoise maps n-dimensional lattice corners to stable pseudorandom unit
gradients: one axis is zeroed and the rest are ±1/√(n−1).

Run without a subcommand to print the gradient of the corner [1, 2, 3].`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runDemo,
	}
	rootCmd.PersistentFlags().String("config", "", "Config file (default: $LVNOISE_CONFIG or ./lvnoise.yaml)")
	rootCmd.PersistentFlags().String("algorithm", "", "Generator: pcg, chacha8, splitmix64")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "lvnoise v%s (%s)\n", version, commit)
		},
	})

	sampleCmd := &cobra.Command{
		Use:   "sample",
		Short: "Print the gradient of one corner",
		Args:  cobra.NoArgs,
		RunE:  runSample,
	}
	sampleCmd.Flags().String("corner", "", "Comma-separated coordinates, e.g. 1,2,3")
	sampleCmd.Flags().String("format", "", "Output format: text, yaml")
	rootCmd.AddCommand(sampleCmd)

	isoCmd := &cobra.Command{
		Use:   "isotropy",
		Short: "Survey gradients for directional bias",
		Long: `Samples random corners for every dimension in [min-dim, max-dim], builds a
Student's t interval around each component mean and counts the components whose
interval excludes zero. Fails when the biased share exceeds max-biased-fraction.`,
		Args: cobra.NoArgs,
		RunE: runIsotropy,
	}
	isoCmd.Flags().Int("min-dim", 0, "Smallest dimension surveyed")
	isoCmd.Flags().Int("max-dim", 0, "Largest dimension surveyed")
	isoCmd.Flags().Int("samples", 0, "Corners sampled per dimension")
	isoCmd.Flags().Float64("confidence", 0, "Two-sided confidence level")
	isoCmd.Flags().Uint64("seed", 0, "Corner source seed")
	isoCmd.Flags().Float64("max-biased-fraction", 0, "Allowed share of biased components")
	rootCmd.AddCommand(isoCmd)

	return rootCmd
}

// loadConfig resolves defaults < file < env < flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.FindConfigFile()
	}
	cfg, err := config.LoadFromFile(path)
	if err != nil {
		return nil, err
	}
	if path != "" {
		log.Printf("loaded config from %s", path)
	}

	flags := cmd.Flags()
	if flags.Changed("algorithm") {
		cfg.Sampler.Algorithm, _ = flags.GetString("algorithm")
	}
	if flags.Lookup("corner") != nil && flags.Changed("corner") {
		raw, _ := flags.GetString("corner")
		corner, err := config.ParseCorner(raw)
		if err != nil {
			return nil, fmt.Errorf("--corner: %w", err)
		}
		cfg.Sample.Corner = corner
	}
	if flags.Lookup("format") != nil && flags.Changed("format") {
		cfg.Sample.Format, _ = flags.GetString("format")
	}
	iso := &cfg.Isotropy
	if flags.Lookup("min-dim") != nil {
		if flags.Changed("min-dim") {
			iso.MinDim, _ = flags.GetInt("min-dim")
		}
		if flags.Changed("max-dim") {
			iso.MaxDim, _ = flags.GetInt("max-dim")
		}
		if flags.Changed("samples") {
			iso.Samples, _ = flags.GetInt("samples")
		}
		if flags.Changed("confidence") {
			iso.Confidence, _ = flags.GetFloat64("confidence")
		}
		if flags.Changed("seed") {
			iso.Seed, _ = flags.GetUint64("seed")
		}
		if flags.Changed("max-biased-fraction") {
			iso.MaxBiasedFraction, _ = flags.GetFloat64("max-biased-fraction")
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func newSampler(cfg *config.Config) (*gradient.Sampler, error) {
	alg, err := cfg.Algorithm()
	if err != nil {
		return nil, err
	}
	return gradient.New(gradient.WithAlgorithm(alg)), nil
}

// sampleOutput is the yaml shape of the sample command.
type sampleOutput struct {
	Algorithm string    `yaml:"algorithm"`
	Corner    []float32 `yaml:"corner"`
	Digest    string    `yaml:"digest"`
	Gradient  []float32 `yaml:"gradient"`
	Norm      float32   `yaml:"norm"`
}

// demoCorner is the fixed corner printed by the bare root command.
var demoCorner = []float32{1, 2, 3}

// runDemo prints the default-options gradient of demoCorner. It reads no
// config file, environment or flags.
func runDemo(cmd *cobra.Command, args []string) error {
	g, err := gradient.Generate(demoCorner)
	if err != nil {
		return err
	}

	return writeSample(cmd.OutOrStdout(), config.FormatText, sampleOutput{
		Algorithm: gradient.DefaultOptions().Algorithm.String(),
		Corner:    demoCorner,
		Digest:    fmt.Sprintf("%016x", gradient.Digest(demoCorner)),
		Gradient:  g,
		Norm:      gradient.Norm(g),
	})
}

func runSample(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	s, err := newSampler(cfg)
	if err != nil {
		return err
	}

	corner := cfg.Sample.Corner
	g, err := s.Gradient(corner)
	if err != nil {
		return err
	}

	return writeSample(cmd.OutOrStdout(), cfg.Sample.Format, sampleOutput{
		Algorithm: s.Algorithm().String(),
		Corner:    corner,
		Digest:    fmt.Sprintf("%016x", gradient.Digest(corner)),
		Gradient:  g,
		Norm:      gradient.Norm(g),
	})
}

func writeSample(w io.Writer, format string, out sampleOutput) error {
	if format == config.FormatYAML {
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(out); err != nil {
			return err
		}
		return enc.Close()
	}

	fmt.Fprintf(w, "Gradient for corner %v (%s):\n", out.Corner, out.Algorithm)
	for _, x := range out.Gradient {
		fmt.Fprintf(w, "> %v\n", x)
	}
	return nil
}

func runIsotropy(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	s, err := newSampler(cfg)
	if err != nil {
		return err
	}

	iso := cfg.Isotropy
	out := cmd.OutOrStdout()
	biased, total := 0, 0
	for dim := iso.MinDim; dim <= iso.MaxDim; dim++ {
		rep, err := isotropy.Survey(s, isotropy.Config{
			Dim:        dim,
			Samples:    iso.Samples,
			Confidence: iso.Confidence,
			Seed:       iso.Seed + uint64(dim),
			Span:       iso.Span,
		})
		if err != nil {
			return fmt.Errorf("dim %d: %w", dim, err)
		}
		biased += len(rep.Biased)
		total += dim
		fmt.Fprintf(out, "dim=%-3d biased=%d/%d max|mean|=%.4f\n",
			dim, len(rep.Biased), dim, maxAbs(rep.Mean))
	}

	fraction := float64(biased) / float64(total)
	fmt.Fprintf(out, "total biased=%d/%d (%.2f%%, limit %.2f%%) algorithm=%s\n",
		biased, total, 100*fraction, 100*iso.MaxBiasedFraction, s.Algorithm())
	if fraction > iso.MaxBiasedFraction {
		return fmt.Errorf("directional bias: %d of %d components outside %.0f%% interval",
			biased, total, 100*iso.Confidence)
	}
	return nil
}

func maxAbs(xs []float64) float64 {
	m := 0.0
	for _, x := range xs {
		m = math.Max(m, math.Abs(x))
	}
	return m
}
