// Package formula implements the canonical, hash-consed LTL formula
// DAG and the collector that rewrites an arbitrary parse tree into it.
//
// A formula is named by a signed ID: non-negative values index into the
// DAG directly, negative values name the negation of the corresponding
// non-negative ID. Negation never allocates a DAG node.
package formula
