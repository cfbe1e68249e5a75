package batch

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/projectdiscovery/gologger"

	"github.com/ltlcheck/ltlcheck/internal/ltlerr"
	"github.com/ltlcheck/ltlcheck/internal/ltlparse"
	"github.com/ltlcheck/ltlcheck/internal/textfmt"
	"github.com/ltlcheck/ltlcheck/verify"
)

// Scenario is one named entry of a batch config file.
type Scenario struct {
	Name    string `yaml:"name"`
	TS      string `yaml:"ts"`
	Formula string `yaml:"formula"`
	Want    bool   `yaml:"want"`
}

// Config is the top-level shape of a batch YAML file.
type Config struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Outcome records the result of checking one scenario.
type Outcome struct {
	Scenario Scenario
	Got      bool
	Err      error
}

// Passed reports whether the scenario's verdict matched its expectation.
func (o Outcome) Passed() bool { return o.Err == nil && o.Got == o.Scenario.Want }

// Load parses a batch config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ltlerr.WrapUser(ltlerr.CodeMalformedInput, fmt.Sprintf("batch: reading %s", path), err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, ltlerr.Userf(ltlerr.CodeMalformedInput, "batch: %s", yaml.FormatError(err, false, true))
	}
	return &cfg, nil
}

// Run checks every scenario in cfg in order, logging progress through
// gologger, and returns one Outcome per scenario.
func Run(cfg *Config) []Outcome {
	outcomes := make([]Outcome, 0, len(cfg.Scenarios))
	for _, sc := range cfg.Scenarios {
		gologger.Info().Msgf("batch: running %q", sc.Name)
		got, err := runOne(sc)
		if err != nil {
			gologger.Error().Msgf("batch: %q failed: %v", sc.Name, err)
		} else if got != sc.Want {
			gologger.Warning().Msgf("batch: %q expected %v, got %v", sc.Name, sc.Want, got)
		}
		outcomes = append(outcomes, Outcome{Scenario: sc, Got: got, Err: err})
	}
	return outcomes
}

func runOne(sc Scenario) (bool, error) {
	f, err := os.Open(sc.TS)
	if err != nil {
		return false, ltlerr.WrapUser(ltlerr.CodeMalformedInput, fmt.Sprintf("batch: opening %s", sc.TS), err)
	}
	defer f.Close()

	tsResult, err := textfmt.Read(f)
	if err != nil {
		return false, err
	}

	atoms := make(map[string]int, len(tsResult.AtomicNames))
	for i, name := range tsResult.AtomicNames {
		atoms[name] = i
	}
	root, err := ltlparse.Parse(sc.Formula, atoms)
	if err != nil {
		return false, err
	}

	return verify.LTL(root, tsResult.System)
}
