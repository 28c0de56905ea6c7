package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"ilpload/ilp"
	"ilpload/prolog-tool"
)

var (
	programPath  string
	checkBuiltin bool
	checkTimeout time.Duration
)

var checkCmd = &cobra.Command{
	Use:   "check [problem-dir|builtin-name]",
	Short: "Check which examples a hypothesis program entails",
	Long: `Consults the background knowledge and the Prolog clauses in --program,
then queries every positive and negative example. Exits non-zero when the
hypothesis misses a positive example or entails a negative one.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&programPath, "program", "", "Prolog file with the hypothesis clauses")
	checkCmd.Flags().BoolVar(&checkBuiltin, "builtin", false, "Treat the argument as a bundled problem name")
	checkCmd.Flags().DurationVar(&checkTimeout, "timeout", 30*time.Second, "Deadline for all queries")
	_ = checkCmd.MarkFlagRequired("program")
}

func runCheck(cmd *cobra.Command, args []string) error {
	var (
		p   *ilp.Problem
		t   *ilp.ProgramTemplate
		err error
	)
	if checkBuiltin {
		p, t, err = ilp.Builtin(args[0], logger)
	} else {
		p, t, err = loadProblem(args[0])
	}
	if err != nil {
		return err
	}
	hypothesis, err := os.ReadFile(programPath)
	if err != nil {
		return fmt.Errorf("read program: %w", err)
	}

	checker, err := prolog_tool.NewChecker(p, t, string(hypothesis), logger)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), checkTimeout)
	defer cancel()
	cov, err := checker.Evaluate(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "positive: %d/%d covered\n", len(cov.Covered), len(p.Positive))
	for _, a := range cov.Uncovered {
		fmt.Fprintf(out, "  missed %s\n", a)
	}
	fmt.Fprintf(out, "negative: %d/%d rejected\n", len(cov.Rejected), len(p.Negative))
	for _, a := range cov.FalsePositives {
		fmt.Fprintf(out, "  entailed %s\n", a)
	}
	if !cov.Complete() || !cov.Consistent() {
		return fmt.Errorf("hypothesis does not separate the examples of %s", p.Name)
	}
	return nil
}
