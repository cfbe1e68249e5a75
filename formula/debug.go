package formula

import "fmt"

// CheckInvariants verifies the post-condition of collection: the first
// NumAP entries are atomic, in order, and every later entry's operands
// refer strictly earlier in the array or are sentinels. It returns a
// descriptive error rather than panicking, since callers use it as an
// optional sanity check (e.g. in tests), not as a hot-path invariant.
func (d *DAG) CheckInvariants() error {
	for k := 0; k < d.NumAP && k < len(d.entries); k++ {
		if d.entries[k].Kind != Atomic || d.entries[k].A != ID(k) {
			return fmt.Errorf("formula: entry %d expected to be atomic proposition %d", k, k)
		}
	}
	for i := d.NumAP; i < len(d.entries); i++ {
		e := d.entries[i]
		if err := checkOperand(i, e.A); err != nil {
			return err
		}
		if e.Kind == Conj || e.Kind == Until {
			if err := checkOperand(i, e.B); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkOperand(i int, op ID) error {
	if op == True || op == False {
		return nil
	}
	if int(Original(op)) >= i {
		return fmt.Errorf("formula: entry %d references operand %d which is not strictly earlier", i, op)
	}
	return nil
}
