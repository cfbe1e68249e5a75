// Package product implements the Courcoubetis–Vardi–Wolper nested
// depth-first search over the synchronous product of a transition
// system and an NBA.
package product
