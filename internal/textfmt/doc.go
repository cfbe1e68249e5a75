// Package textfmt reads the reference line-based transition-system
// format, the Go counterpart of the original source's
// csrc/cpp/ts_parser.cpp. It is a read-only consumer of ts.System:
// nothing here feeds back into the core algorithms.
//
// Format, one field-group per line:
//
//	num_states num_transitions
//	initial state indices, space separated, or a lone -1 for all
//	action names, space separated (may be empty)
//	atomic proposition names, space separated
//	<num_transitions lines, each "from action into">
//	<num_states lines, each the AP indices holding at that state, or -1 for all>
package textfmt
