// Package elementary enumerates the elementary sets of a formula DAG's
// closure: the maximal consistent subsets that become the candidate
// states of the GNBA.
package elementary
