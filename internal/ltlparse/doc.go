// Package ltlparse turns a textual LTL formula into a formula.Node
// tree. Precedence, loosest to tightest: ∧, ∨, →, U, then the unary
// operators ¬ X F G, mirroring the original source's
// ANTLR-generated parser in csrc/cpp/ltl_parser.cpp.
package ltlparse
