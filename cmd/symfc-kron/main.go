// Command symfc-kron runs the force-constant symmetry kernels on COO
// matrices stored in YAML or JSON files.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose    bool
	configPath string
	inputPath  string
	outputPath string
	format     string
	workers    int
	useInt32   bool
	pairing    string
	natomFlag  int

	// Effective configuration after config file and flags are merged.
	cfg Config

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "symfc-kron",
	Short: "Kronecker and compact projector kernels for force-constant symmetry",
	Long: `symfc-kron expands a sparse 3N-basis matrix R (N atoms) into the
matrices used to impose crystal symmetry on force constants:

  kron         R⊗R reindexed into the (N,N,3,3) basis
  compact      R⊗R folded onto unordered index pairs, scaled by 1/√2
  compression  the permutation compression matrix C for N atoms
  labels       the canonical pair id table for N atoms

Input and output documents are YAML; JSON input is accepted as well.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		cfg, err = loadConfig(configPath)
		if err != nil {
			return err
		}
		return applyFlags(cmd, &cfg)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var kronCmd = &cobra.Command{
	Use:   "kron",
	Short: "Compute R⊗R in the NN33 basis",
	Long: `Reads R from --input and writes every pairwise product of its entries.
Entry (i, j) of the output is stored at position i*len(R)+j.

Example:
  symfc-kron kron -i rep.yaml -o kron.yaml --workers 8`,
	Args: cobra.NoArgs,
	RunE: runKron,
}

var compactCmd = &cobra.Command{
	Use:   "compact",
	Short: "Compute the compact (permutation-folded) symmetry projector",
	Long: `Reads R and natom from --input and writes the compact projector.

Pairing:
  entry   label rows by (row[i], col[i]) and cols by (row[j], col[j])
  factor  label rows by (row[i], row[j]) and cols by (col[i], col[j]),
          which equals C^T (R⊗R) C`,
	Args: cobra.NoArgs,
	RunE: runCompact,
}

var compressionCmd = &cobra.Command{
	Use:   "compression",
	Short: "Write the permutation compression matrix for --natom atoms",
	Args:  cobra.NoArgs,
	RunE:  runCompression,
}

var labelsCmd = &cobra.Command{
	Use:   "labels",
	Short: "Write the canonical pair id table for --natom atoms",
	Args:  cobra.NoArgs,
	RunE:  runLabels,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	pf.StringVar(&configPath, "config", "", "YAML config file with defaults")
	pf.StringVarP(&outputPath, "output", "o", "", "output file (default stdout)")
	pf.StringVar(&format, "format", defaultFormat, "output format: yaml or json")
	pf.IntVar(&workers, "workers", defaultWorkers, "goroutines for the outer loop")

	for _, c := range []*cobra.Command{kronCmd, compactCmd} {
		c.Flags().StringVarP(&inputPath, "input", "i", "", "input COO document")
		c.Flags().BoolVar(&useInt32, "int32", false, "use 32-bit index storage")
		_ = c.MarkFlagRequired("input")
	}
	compactCmd.Flags().StringVar(&pairing, "pairing", defaultPairing, "compact labeling: entry or factor")

	for _, c := range []*cobra.Command{compressionCmd, labelsCmd} {
		c.Flags().IntVar(&natomFlag, "natom", 0, "number of atoms")
		_ = c.MarkFlagRequired("natom")
	}

	rootCmd.AddCommand(kronCmd, compactCmd, compressionCmd, labelsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
