package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/parley-lang/parley/grammar"
	spec "github.com/parley-lang/parley/spec/grammar"
	"github.com/spf13/cobra"
)

var checkFlags = struct {
	symsLimit *int
	findAll   *bool
	testRules *bool
	noOutput  *bool
	config    *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "check <grammar file>",
		Short:   "Re-run the ambiguity detector over a compiled grammar",
		Example: `  parley check grammar.json --syms-limit 18 --find-all`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runCheck,
	}
	checkFlags.symsLimit = cmd.Flags().Int("syms-limit", 0, "per-path symbol budget")
	checkFlags.findAll = cmd.Flags().Bool("find-all", false, "report every distinct ambiguity witness")
	checkFlags.testRules = cmd.Flags().Bool("test-rules", false, "run against the built-in ambiguity fixtures")
	checkFlags.noOutput = cmd.Flags().Bool("no-output", false, "suppress witness printing")
	checkFlags.config = cmd.Flags().String("config", "", "TOML file with detector options")
	rootCmd.AddCommand(cmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	opts, err := detectorOptions(cmd, *checkFlags.config, *checkFlags.symsLimit, *checkFlags.findAll, *checkFlags.testRules, *checkFlags.noOutput)
	if err != nil {
		return err
	}

	var g *grammar.Grammar
	if !opts.UseTestRules {
		if len(args) == 0 {
			return fmt.Errorf("check needs a compiled grammar file unless --test-rules is set")
		}
		cg, err := readGrammar(args[0])
		if err != nil {
			return err
		}
		g, err = grammar.FromSpec(cg)
		if err != nil {
			return err
		}
	}

	d, err := grammar.NewDetector(g, opts)
	if err != nil {
		return err
	}
	g = d.Grammar()
	warnings := d.Detect()
	report := buildReport(g, warnings)
	if opts.UseTestRules {
		report.FixtureMisses = grammar.MissedFixtures(g, warnings)
	}
	logReport(report, opts)
	if len(report.FixtureMisses) > 0 {
		return fmt.Errorf("the detector missed %v fixture symbols", len(report.FixtureMisses))
	}
	return nil
}

func readGrammar(path string) (*spec.CompiledGrammar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read the compiled grammar: %w", err)
	}
	defer f.Close()

	cg := &spec.CompiledGrammar{}
	if err := json.NewDecoder(f).Decode(cg); err != nil {
		return nil, fmt.Errorf("cannot read the compiled grammar: %w", err)
	}
	return cg, nil
}
