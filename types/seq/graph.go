package seq

// Graph is one connected transition graph. A database usually decomposes
// into several disconnected graphs; each is mined independently.
type Graph struct {
	Nodes map[int32]*Node
	Edges []*Edge
}

// Node returns the node for item, or nil when the item does not occur in
// this graph.
func (g *Graph) Node(item int32) *Node {
	return g.Nodes[item]
}

// unionFind tracks the connected components of the transition graph under
// construction. Path compression plus union by rank.
type unionFind struct {
	parent map[int32]int32
	rank   map[int32]int
}

func newUnionFind() *unionFind {
	return &unionFind{
		parent: make(map[int32]int32),
		rank:   make(map[int32]int),
	}
}

func (uf *unionFind) add(id int32) {
	if _, has := uf.parent[id]; !has {
		uf.parent[id] = id
	}
}

func (uf *unionFind) find(id int32) int32 {
	parent := uf.parent[id]
	if parent != id {
		root := uf.find(parent)
		uf.parent[id] = root
		return root
	}
	return id
}

func (uf *unionFind) union(a, b int32) {
	rootA := uf.find(a)
	rootB := uf.find(b)
	if rootA == rootB {
		return
	}
	if uf.rank[rootA] < uf.rank[rootB] {
		rootA, rootB = rootB, rootA
	}
	uf.parent[rootB] = rootA
	if uf.rank[rootA] == uf.rank[rootB] {
		uf.rank[rootA]++
	}
}

// FromSequences scans the database once and builds the transition graphs.
// Nodes are the distinct items, edges the observed consecutive transitions,
// each edge annotated with the visitations realizing it. Edge ids follow
// discovery order and the returned graphs are ordered by the first
// appearance of their items in the database, so repeated runs over the same
// input produce identical graphs. The input is not mutated.
func FromSequences(sequences [][]int32) []*Graph {
	nodes := make(map[int32]*Node)
	order := make([]int32, 0, 16)
	edges := make([]*Edge, 0, 16)
	uf := newUnionFind()

	node := func(item int32) *Node {
		n, has := nodes[item]
		if !has {
			n = newNode(item)
			nodes[item] = n
			order = append(order, item)
			uf.add(item)
		}
		return n
	}

	for sid, sequence := range sequences {
		for i := 0; i < len(sequence); i++ {
			src := node(sequence[i])
			if i+1 >= len(sequence) {
				continue
			}
			dst := node(sequence[i+1])
			e := src.OutEdge(dst.Id)
			if e == nil {
				e = &Edge{
					Id:     len(edges),
					Src:    src,
					Dst:    dst,
					visits: NewVisitations(),
				}
				src.Out[dst.Id] = e
				edges = append(edges, e)
				uf.union(src.Id, dst.Id)
			}
			e.visits.Add(int32(sid), Span{Start: int32(i), End: int32(i + 1)})
		}
	}

	graphs := make([]*Graph, 0, 4)
	byRoot := make(map[int32]*Graph)
	for _, item := range order {
		root := uf.find(item)
		g, has := byRoot[root]
		if !has {
			g = &Graph{Nodes: make(map[int32]*Node)}
			byRoot[root] = g
			graphs = append(graphs, g)
		}
		g.Nodes[item] = nodes[item]
	}
	for _, e := range edges {
		g := byRoot[uf.find(e.Src.Id)]
		g.Edges = append(g.Edges, e)
	}
	return graphs
}
