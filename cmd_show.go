package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ilpload/ilp"
	"ilpload/render"
)

var completeNegatives bool

var showCmd = &cobra.Command{
	Use:   "show [problem-dir]",
	Short: "Assemble a problem directory and print it",
	Long: `Parses bk.pl, pos.pl and neg.pl in the given directory and prints the
assembled problem. The directory name is the problem name.

With --complete-negatives and an empty neg.pl, every ground atom of the target
over the constant pool that is not a positive example becomes a negative one.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

var builtinCmd = &cobra.Command{
	Use:       "builtin [name]",
	Short:     "Print one of the bundled problems",
	Args:      cobra.ExactArgs(1),
	ValidArgs: ilp.BuiltinNames(),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, t, err := ilp.Builtin(args[0], logger)
		if err != nil {
			return err
		}
		return printProblem(cmd, p, t)
	},
}

var exportCmd = &cobra.Command{
	Use:   "export [name] [dir]",
	Short: "Write a bundled problem as bk.pl, pos.pl and neg.pl",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, _, err := ilp.Builtin(args[0], logger)
		if err != nil {
			return err
		}
		if err := render.WriteDir(args[1], p); err != nil {
			return err
		}
		logger.Info("exported problem", zap.String("problem", p.Name), zap.String("dir", args[1]))
		return nil
	},
}

func init() {
	showCmd.Flags().BoolVar(&completeNegatives, "complete-negatives", false, "Derive negatives under the closed-world assumption when neg.pl is empty")
}

func runShow(cmd *cobra.Command, args []string) error {
	p, t, err := loadProblem(args[0])
	if err != nil {
		return err
	}
	if completeNegatives && len(p.Negative) == 0 {
		p.Negative = ilp.CompleteNegatives(p.Language, p.Positive)
		logger.Debug("completed negatives", zap.Int("negative", len(p.Negative)))
	}
	return printProblem(cmd, p, t)
}

func loadProblem(dir string) (*ilp.Problem, *ilp.ProgramTemplate, error) {
	a, err := newAssembler()
	if err != nil {
		return nil, nil, err
	}
	return a.AssembleDir(dir)
}

func printProblem(cmd *cobra.Command, p *ilp.Problem, t *ilp.ProgramTemplate) error {
	out := cmd.OutOrStdout()
	switch outputFormat {
	case "text":
		text, err := render.Summary(p, t)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(out, text)
		return err
	case "yaml":
		data, err := render.YAML(p, t)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	default:
		return fmt.Errorf("unknown output format %q (want text or yaml)", outputFormat)
	}
}
