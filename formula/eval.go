package formula

import "github.com/ltlcheck/ltlcheck/bitset"

// Eval reads the bit named by id out of an elementary set (or any
// bitset.Set indexed by formula position), honouring negation and the
// two sentinels: Eval(s, True) is always true, Eval(s, False) is always
// false, and Eval(s, ~n) is the complement of bit n.
func Eval(s bitset.Set, id ID) bool {
	if id == True {
		return true
	}
	if id == False {
		return false
	}
	v := s.Get(int(Original(id)))
	if IsNegation(id) {
		return !v
	}
	return v
}
