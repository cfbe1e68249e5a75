package formula

import "testing"

type unknownNode struct{}

func (unknownNode) isNode() {}

func TestUnknownNodeKindPanicsInvariant(t *testing.T) {
	c := NewCollector(1)
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic for unknown node kind")
		}
	}()
	c.Collect(unknownNode{})
}
