// Package batch runs a YAML-described list of verification scenarios
// as surrounding tooling kept external to the core: each entry names a
// transition-system file, an LTL formula, and the expected verdict,
// and the runner reports pass/fail per entry.
package batch
