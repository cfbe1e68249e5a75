// Package dotexport renders a transition system or an NBA as Graphviz
// DOT source, the way the original source's debug tooling could dump
// automata for inspection. It is a pure diagnostic view over
// already-computed structures: nothing here participates in checking.
package dotexport
