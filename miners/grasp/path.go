package grasp

import (
	"github.com/albertusk95/137-SPM/types/seq"
)

// Path is a walk through a transition graph under construction, plus the
// visitations accumulated for that exact walk. Alive only while one
// candidate pattern is grown.
type Path struct {
	visits *seq.Visitations
	edges  []*seq.Edge
}

func newPath(edges []*seq.Edge, visits *seq.Visitations) *Path {
	return &Path{
		visits: visits,
		edges:  edges,
	}
}

// Size is the number of items in the path.
func (p *Path) Size() int {
	return len(p.edges) + 1
}

func (p *Path) EdgeIds() []int {
	ids := make([]int, 0, len(p.edges))
	for _, e := range p.edges {
		ids = append(ids, e.Id)
	}
	return ids
}

// Items renders the walk as an item sequence, listing shared endpoints
// between consecutive edges once.
func (p *Path) Items() []int32 {
	if len(p.edges) == 0 {
		return nil
	}
	items := make([]int32, 0, len(p.edges)+1)
	var prev *seq.Node
	for _, e := range p.edges {
		if prev == nil || e.Src.Id != prev.Id {
			items = append(items, e.Src.Id)
		}
		items = append(items, e.Dst.Id)
		prev = e.Dst
	}
	return items
}

func (p *Path) Support() int {
	return p.visits.Support()
}

func (p *Path) Cover() int {
	return p.visits.Cover()
}

func (p *Path) RepSeq() *seq.RepSeq {
	return &seq.RepSeq{
		Items:   p.Items(),
		Cover:   p.Cover(),
		Support: p.Support(),
	}
}
