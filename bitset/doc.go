// Package bitset provides the two bit-vector flavours the model checker
// needs: a fixed-width Word for triggers over the atomic-proposition set
// (bounded by the |AP| < 32 builder limit) and a dynamic Set for
// anything sized by the number of states or DAG formulas, which has no
// small fixed bound.
//
// Both types carry their length as part of their identity: two values
// of different length are never equal, and binary operations between
// mismatched lengths panic rather than silently truncating.
package bitset
