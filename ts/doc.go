// Package ts defines the transition-system value object the core
// verifier checks an LTL formula against.
package ts
