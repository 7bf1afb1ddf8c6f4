package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/parley-lang/parley/examples/qadomain"
	"github.com/parley-lang/parley/grammar"
	spec "github.com/parley-lang/parley/spec/grammar"
	"github.com/spf13/cobra"
)

var compileFlags = struct {
	output    *string
	symsLimit *int
	findAll   *bool
	testRules *bool
	noOutput  *bool
	config    *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "compile",
		Short:   "Compile the authored grammar and emit it with an ambiguity report",
		Example: `  parley compile -o grammar.json`,
		Args:    cobra.NoArgs,
		RunE:    runCompile,
	}
	compileFlags.output = cmd.Flags().StringP("output", "o", "", "output file path (default stdout)")
	compileFlags.symsLimit = cmd.Flags().Int("syms-limit", 0, "per-path symbol budget for the ambiguity detector")
	compileFlags.findAll = cmd.Flags().Bool("find-all", false, "report every distinct ambiguity witness")
	compileFlags.testRules = cmd.Flags().Bool("test-rules", false, "compile the built-in ambiguity fixtures instead of the domain grammar")
	compileFlags.noOutput = cmd.Flags().Bool("no-output", false, "suppress witness printing")
	compileFlags.config = cmd.Flags().String("config", "", "TOML file with detector options")
	rootCmd.AddCommand(cmd)
}

func runCompile(cmd *cobra.Command, args []string) error {
	opts, err := detectorOptions(cmd, *compileFlags.config, *compileFlags.symsLimit, *compileFlags.findAll, *compileFlags.testRules, *compileFlags.noOutput)
	if err != nil {
		return err
	}

	name := "qadomain"
	var g *grammar.Grammar
	if opts.UseTestRules {
		name = "fixtures"
	} else {
		g, err = qadomain.Build()
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

	return writeGrammar(g.Spec(name), *compileFlags.output)
}

func buildReport(g *grammar.Grammar, warnings []*grammar.AmbiguityWarning) *spec.Report {
	report := &spec.Report{
		Symbols: len(g.Symbols()),
	}
	for _, sym := range g.Symbols() {
		for _, r := range sym.Rules() {
			report.Rules++
			if r.IsEdit() {
				report.EditRules++
			}
		}
	}
	for _, w := range warnings {
		report.Ambiguities = append(report.Ambiguities, &spec.AmbiguityWarning{
			Symbol: w.Symbol,
			RuleA:  w.RuleA,
			RuleB:  w.RuleB,
			TreeA:  w.TreeA.Format(),
			TreeB:  w.TreeB.Format(),
		})
	}
	return report
}

// logReport emits ambiguity findings as warnings. They never fail the
// run: the grammar is still written and the author resolves them.
func logReport(report *spec.Report, opts grammar.DetectorOptions) {
	slog.Info("grammar compiled", "symbols", report.Symbols, "rules", report.Rules, "edit_rules", report.EditRules)
	if opts.NoOutput {
		return
	}
	for _, w := range report.Ambiguities {
		slog.Warn("ambiguity", "symbol", w.Symbol, "rule_a", w.RuleA, "rule_b", w.RuleB)
		fmt.Fprintf(os.Stderr, "%v\nvs.\n%v", w.TreeA, w.TreeB)
	}
	for _, name := range report.FixtureMisses {
		slog.Error("fixture ambiguity not detected", "symbol", name)
	}
}

func writeGrammar(cg *spec.CompiledGrammar, output string) error {
	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.OpenFile(output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return fmt.Errorf("cannot write the compiled grammar: %w", err)
		}
		defer f.Close()
		w = f
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	return enc.Encode(cg)
}

// detectorOptions merges a TOML config file with command-line flags;
// flags the user set win.
func detectorOptions(cmd *cobra.Command, configPath string, symsLimit int, findAll, testRules, noOutput bool) (grammar.DetectorOptions, error) {
	var opts grammar.DetectorOptions
	if configPath != "" {
		var err error
		opts, err = loadCheckConfig(configPath)
		if err != nil {
			return grammar.DetectorOptions{}, err
		}
	}
	if cmd.Flags().Changed("syms-limit") {
		opts.SymsLimit = symsLimit
	}
	if cmd.Flags().Changed("find-all") {
		opts.FindAll = findAll
	}
	if cmd.Flags().Changed("test-rules") {
		opts.UseTestRules = testRules
	}
	if cmd.Flags().Changed("no-output") {
		opts.NoOutput = noOutput
	}
	return opts, nil
}
