package seq

// Node is one distinct item in a transition graph. Out maps the next item id
// to the edge realizing that transition, giving O(1) lookup during traversal.
type Node struct {
	Id  int32
	Out map[int32]*Edge
}

func newNode(id int32) *Node {
	return &Node{
		Id:  id,
		Out: make(map[int32]*Edge),
	}
}

// OutEdge returns the outgoing edge to item, or nil when the transition was
// never observed.
func (n *Node) OutEdge(item int32) *Edge {
	return n.Out[item]
}

// Edge is one observed item-to-item transition. Ids are assigned in discovery
// order over the database scan so claim bookkeeping is reproducible. Edges
// are immutable once the graph is built.
type Edge struct {
	Id       int
	Src, Dst *Node
	visits   *Visitations
}

// Visitors describes exactly which sequences realize this transition and
// where.
func (e *Edge) Visitors() *Visitations {
	return e.visits
}

// Support is the number of distinct sequences the transition occurs in.
func (e *Edge) Support() int {
	return e.visits.Support()
}
