// Command ltlcheck checks whether an LTL formula holds over a
// transition system, or runs a batch of such checks from a YAML
// scenario file.
package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"

	"github.com/ltlcheck/ltlcheck/internal/batch"
	"github.com/ltlcheck/ltlcheck/internal/dotexport"
	"github.com/ltlcheck/ltlcheck/internal/ltlparse"
	"github.com/ltlcheck/ltlcheck/internal/textfmt"
	"github.com/ltlcheck/ltlcheck/verify"
)

type options struct {
	tsPath  string
	formula string
	config  string
	dotPath string
	verbose bool
}

func parseFlags() *options {
	opts := &options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription("Checks whether an LTL formula holds over every infinite execution of a transition system.")

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&opts.tsPath, "ts", "t", "", "transition system file, in the reference text format"),
		flagSet.StringVarP(&opts.formula, "ltl", "f", "", "LTL formula to check"),
		flagSet.StringVarP(&opts.config, "config", "c", "", "run a batch of scenarios from a YAML config instead of a single check"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.StringVar(&opts.dotPath, "dot", "", "write the transition system as Graphviz DOT to this file and exit"),
		flagSet.BoolVarP(&opts.verbose, "verbose", "v", false, "display verbose diagnostic output"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("could not read flags: %s", err)
	}

	if opts.verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
	return opts
}

func main() {
	opts := parseFlags()

	if opts.config != "" {
		runBatch(opts.config)
		return
	}

	if opts.tsPath == "" {
		gologger.Fatal().Msgf("-ts is required")
	}

	f, err := os.Open(opts.tsPath)
	if err != nil {
		gologger.Fatal().Msgf("opening %s: %v", opts.tsPath, err)
	}
	tsResult, err := textfmt.Read(f)
	f.Close()
	if err != nil {
		gologger.Fatal().Msgf("reading %s: %v", opts.tsPath, err)
	}

	if opts.dotPath != "" {
		if err := os.WriteFile(opts.dotPath, []byte(dotexport.System(tsResult.System, tsResult.AtomicNames)), 0o644); err != nil {
			gologger.Fatal().Msgf("writing %s: %v", opts.dotPath, err)
		}
		gologger.Info().Msgf("wrote %s", opts.dotPath)
		return
	}

	if opts.formula == "" {
		gologger.Fatal().Msgf("-ltl is required")
	}

	atoms := make(map[string]int, len(tsResult.AtomicNames))
	for i, name := range tsResult.AtomicNames {
		atoms[name] = i
	}
	root, err := ltlparse.Parse(opts.formula, atoms)
	if err != nil {
		gologger.Fatal().Msgf("parsing formula: %v", err)
	}

	gologger.Verbose().Msgf("checking %q over %d states", opts.formula, tsResult.System.NumStates)

	holds, err := verify.LTL(root, tsResult.System)
	if err != nil {
		gologger.Fatal().Msgf("verification failed: %v", err)
	}

	if holds {
		color.Green("PASS: %s holds over %s", opts.formula, opts.tsPath)
	} else {
		color.Red("FAIL: %s does not hold over %s", opts.formula, opts.tsPath)
		os.Exit(1)
	}
}

func runBatch(configPath string) {
	cfg, err := batch.Load(configPath)
	if err != nil {
		gologger.Fatal().Msgf("loading %s: %v", configPath, err)
	}

	outcomes := batch.Run(cfg)
	failed := 0
	for _, o := range outcomes {
		if o.Passed() {
			color.Green("PASS: %s", o.Scenario.Name)
			continue
		}
		failed++
		if o.Err != nil {
			color.Red("ERROR: %s: %v", o.Scenario.Name, o.Err)
		} else {
			color.Red("FAIL: %s (expected %v, got %v)", o.Scenario.Name, o.Scenario.Want, o.Got)
		}
	}
	if failed > 0 {
		os.Exit(1)
	}
}
