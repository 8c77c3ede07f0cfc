package reach

// PortKind tags whether a Port is an operator input or an operator output.
type PortKind uint8

const (
	// PortKindTarget identifies an input port (a target of edges).
	PortKindTarget PortKind = iota
	// PortKindSource identifies an output port (a source of edges).
	PortKindSource
)

// String renders the port kind for diagnostics and test failure messages.
func (k PortKind) String() string {
	if k == PortKindSource {
		return "Source"
	}
	return "Target"
}

// Port is a tagged sum: either an input port (Target) or an output port
// (Source) of a node, identified by its index among ports of that kind.
type Port struct {
	Kind  PortKind
	Index int
}

// TargetPort builds the Port for operator input i.
func TargetPort(i int) Port { return Port{Kind: PortKindTarget, Index: i} }

// SourcePort builds the Port for operator output i.
func SourcePort(i int) Port { return Port{Kind: PortKindSource, Index: i} }

// Location names a port: a (node, port) pair. Node 0 is the distinguished
// meta-node representing the enclosing scope, so a Location with Node == 0
// and a Target port names a scope output, and one with a Source port names
// a scope input.
type Location struct {
	Node int
	Port Port
}

// NewTargetLocation is the Location of operator input (node, port).
func NewTargetLocation(node, port int) Location {
	return Location{Node: node, Port: TargetPort(port)}
}

// NewSourceLocation is the Location of operator output (node, port).
func NewSourceLocation(node, port int) Location {
	return Location{Node: node, Port: SourcePort(port)}
}

// IsTarget reports whether this location names an input port.
func (l Location) IsTarget() bool { return l.Port.Kind == PortKindTarget }

// IsSource reports whether this location names an output port.
func (l Location) IsSource() bool { return l.Port.Kind == PortKindSource }

// less is a total, arbitrary-but-deterministic order over locations, used
// only to break ties between work-list entries that share a timestamp; it
// carries no semantic meaning about reachability.
func (l Location) less(o Location) bool {
	if l.Node != o.Node {
		return l.Node < o.Node
	}
	if l.Port.Kind != o.Port.Kind {
		return l.Port.Kind < o.Port.Kind
	}
	return l.Port.Index < o.Port.Index
}

// Source identifies an operator output port: the origin of zero or more
// edges. Edges do not adjust timestamps; only a node's internal summary
// does.
type Source struct {
	Node int
	Port int
}

// Target identifies an operator input port: the destination of at most one
// edge, by the single-incoming-edge convention this package enforces in
// Builder.Build (see the "at most one incoming edge per target" note in
// DESIGN.md).
type Target struct {
	Node int
	Port int
}

// Location is the (node, port) pair naming this source.
func (s Source) Location() Location { return NewSourceLocation(s.Node, s.Port) }

// Location is the (node, port) pair naming this target.
func (t Target) Location() Location { return NewTargetLocation(t.Node, t.Port) }
