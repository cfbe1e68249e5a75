package formula

// Node is the external parse-tree interface the collector walks,
// expressed as a sealed Go interface so dispatch in Collector.collect
// is a type switch, never a runtime downcast.
type Node interface {
	isNode()
}

type NotNode struct{ X Node }
type AndNode struct{ L, R Node }
type OrNode struct{ L, R Node }
type ImpliesNode struct{ L, R Node }
type NextNode struct{ X Node }
type AlwaysNode struct{ X Node }
type EventuallyNode struct{ X Node }
type UntilNode struct{ L, R Node }
type AtomicNode struct{ Index int }
type TrueNode struct{}
type FalseNode struct{}

func (NotNode) isNode()        {}
func (AndNode) isNode()        {}
func (OrNode) isNode()         {}
func (ImpliesNode) isNode()    {}
func (NextNode) isNode()       {}
func (AlwaysNode) isNode()     {}
func (EventuallyNode) isNode() {}
func (UntilNode) isNode()      {}
func (AtomicNode) isNode()     {}
func (TrueNode) isNode()       {}
func (FalseNode) isNode()      {}
