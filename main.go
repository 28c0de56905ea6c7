package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"ilpload/ilp"
)

var (
	verbose      bool
	templatePath string
	outputFormat string

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "ilpload",
	Short: "Assemble ILP problems from Prolog fact files",
	Long: `ilpload reads a problem directory holding bk.pl (background knowledge),
pos.pl (positive examples) and neg.pl (negative examples) and builds the
language model, ground atoms and program template an ILP solver consumes.`,
	SilenceUsage:  true,
	SilenceErrors: true,
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
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func newAssembler() (*ilp.Assembler, error) {
	opts := []ilp.Option{ilp.WithLogger(logger)}
	if templatePath != "" {
		cfg, err := ilp.LoadTemplate(templatePath)
		if err != nil {
			return nil, err
		}
		opts = append(opts, ilp.WithTemplate(cfg))
	}
	return ilp.NewAssembler(opts...), nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&templatePath, "template", "", "YAML program template (default: built-in pred/2 template)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text", "Output format: text or yaml")

	rootCmd.AddCommand(showCmd, builtinCmd, exportCmd, checkCmd, serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
