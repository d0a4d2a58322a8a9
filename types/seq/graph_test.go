package seq

import "testing"
import "github.com/stretchr/testify/assert"

func TestFromSequencesComponents(x *testing.T) {
	t := assert.New(x)
	graphs := FromSequences([][]int32{
		{1, 2, 3},
		{1, 2, 3},
		{4, 5, 6},
	})
	t.Len(graphs, 2)

	g := graphs[0]
	t.Len(g.Nodes, 3)
	t.Len(g.Edges, 2)
	t.NotNil(g.Node(1))
	t.NotNil(g.Node(3))
	t.Nil(g.Node(4))

	h := graphs[1]
	t.Len(h.Nodes, 3)
	t.Len(h.Edges, 2)
	t.NotNil(h.Node(4))
	t.Nil(h.Node(1))
}

func TestFromSequencesEdgeIds(x *testing.T) {
	t := assert.New(x)
	graphs := FromSequences([][]int32{
		{1, 2, 3},
		{4, 5},
	})
	t.Len(graphs, 2)
	t.Equal(0, graphs[0].Edges[0].Id)
	t.Equal(1, graphs[0].Edges[1].Id)
	t.Equal(2, graphs[1].Edges[0].Id)
}

func TestFromSequencesSupports(x *testing.T) {
	t := assert.New(x)
	graphs := FromSequences([][]int32{
		{1, 2, 3, 4},
		{1, 2, 3, 4},
		{1, 2, 5},
	})
	t.Len(graphs, 1)
	g := graphs[0]
	t.Equal(3, g.Node(1).OutEdge(2).Support())
	t.Equal(2, g.Node(2).OutEdge(3).Support())
	t.Equal(2, g.Node(3).OutEdge(4).Support())
	t.Equal(1, g.Node(2).OutEdge(5).Support())
	t.Nil(g.Node(1).OutEdge(3))
}

func TestFromSequencesSpans(x *testing.T) {
	t := assert.New(x)
	graphs := FromSequences([][]int32{
		{1, 2, 1, 2},
	})
	t.Len(graphs, 1)
	e := graphs[0].Node(1).OutEdge(2)
	t.Equal(1, e.Support())
	t.Equal([]Span{{0, 1}, {2, 3}}, e.Visitors().Spans(0))
}

func TestFromSequencesJoinsComponents(x *testing.T) {
	t := assert.New(x)
	// the third sequence bridges the first two
	graphs := FromSequences([][]int32{
		{1, 2},
		{3, 4},
		{2, 3},
	})
	t.Len(graphs, 1)
	t.Len(graphs[0].Nodes, 4)
	t.Len(graphs[0].Edges, 3)
}

func TestFromSequencesDeterministic(x *testing.T) {
	t := assert.New(x)
	sequences := [][]int32{
		{9, 8, 7},
		{1, 2, 3},
		{9, 8, 7},
		{4, 5},
	}
	a := FromSequences(sequences)
	b := FromSequences(sequences)
	t.Equal(len(a), len(b))
	for i := range a {
		t.Equal(len(a[i].Edges), len(b[i].Edges))
		for j := range a[i].Edges {
			t.Equal(a[i].Edges[j].Id, b[i].Edges[j].Id)
			t.Equal(a[i].Edges[j].Src.Id, b[i].Edges[j].Src.Id)
			t.Equal(a[i].Edges[j].Dst.Id, b[i].Edges[j].Dst.Id)
		}
	}
}

func TestFromSequencesEmpty(x *testing.T) {
	t := assert.New(x)
	t.Len(FromSequences(nil), 0)
	graphs := FromSequences([][]int32{{}, {42}})
	t.Len(graphs, 1)
	t.Len(graphs[0].Nodes, 1)
	t.Len(graphs[0].Edges, 0)
}
