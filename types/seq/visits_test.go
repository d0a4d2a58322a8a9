package seq

import "testing"
import "github.com/stretchr/testify/assert"

func visitations(spans map[int32][]Span) *Visitations {
	v := NewVisitations()
	for sid, ss := range spans {
		for _, s := range ss {
			v.Add(sid, s)
		}
	}
	return v
}

func TestSupportAndCover(x *testing.T) {
	t := assert.New(x)
	v := visitations(map[int32][]Span{
		0: {{0, 1}, {3, 4}},
		2: {{5, 6}},
	})
	t.Equal(2, v.Support())
	t.Equal(3, v.Cover())
	t.Len(v.Spans(0), 2)
	t.Len(v.Spans(1), 0)
}

func TestConnectSharedEndpoint(x *testing.T) {
	t := assert.New(x)
	a := visitations(map[int32][]Span{0: {{0, 1}}})
	b := visitations(map[int32][]Span{0: {{1, 2}}})
	m := TryConnect(a, b, 1, 1)
	t.Equal(1, m.Support())
	t.Equal([]Span{{0, 2}}, m.Spans(0))
}

func TestConnectAdjacent(x *testing.T) {
	t := assert.New(x)
	a := visitations(map[int32][]Span{0: {{0, 1}}})
	b := visitations(map[int32][]Span{0: {{2, 3}}})
	m := TryConnect(a, b, 1, 1)
	t.Equal(1, m.Support())
	t.Equal([]Span{{0, 3}}, m.Spans(0))
}

func TestConnectWithinGap(x *testing.T) {
	t := assert.New(x)
	a := visitations(map[int32][]Span{0: {{0, 1}}})
	// one unmatched position between the occurrences
	b := visitations(map[int32][]Span{0: {{3, 4}}})
	t.Equal(1, TryConnect(a, b, 1, 1).Support())
	t.Equal(0, TryConnect(a, b, 0, 1).Support())
}

func TestConnectRejectsBackward(x *testing.T) {
	t := assert.New(x)
	a := visitations(map[int32][]Span{0: {{2, 3}}})
	b := visitations(map[int32][]Span{0: {{0, 1}}})
	t.Equal(0, TryConnect(a, b, 10, 1).Support())
}

func TestConnectSupportBound(x *testing.T) {
	t := assert.New(x)
	a := visitations(map[int32][]Span{
		0: {{0, 1}},
		1: {{0, 1}},
		2: {{0, 1}},
	})
	b := visitations(map[int32][]Span{
		0: {{1, 2}},
		2: {{5, 6}},
	})
	m := TryConnect(a, b, 1, 1)
	// sequence 2 has no alignment within the gap, 1 has no occurrence of b
	t.Equal(1, m.Support())
	t.True(m.Support() <= a.Support())
	t.True(m.Support() <= b.Support())
}

func TestConnectMinSupShortCircuit(x *testing.T) {
	t := assert.New(x)
	a := visitations(map[int32][]Span{0: {{0, 1}}})
	b := visitations(map[int32][]Span{
		0: {{1, 2}},
		1: {{1, 2}},
	})
	t.Equal(0, TryConnect(a, b, 1, 2).Support())
	t.Equal(1, TryConnect(a, b, 1, 1).Support())
}

func TestConnectCoverCountsAlignments(x *testing.T) {
	t := assert.New(x)
	a := visitations(map[int32][]Span{0: {{0, 1}, {3, 4}}})
	b := visitations(map[int32][]Span{0: {{1, 2}, {4, 5}}})
	m := TryConnect(a, b, 1, 1)
	t.Equal(1, m.Support())
	t.Equal(2, m.Cover())
}

func TestAddComplement(x *testing.T) {
	t := assert.New(x)
	merged := visitations(map[int32][]Span{0: {{0, 4}}})
	pre := visitations(map[int32][]Span{
		0: {{0, 2}, {3, 5}},
		1: {{0, 2}},
	})
	merged.AddComplement(pre)
	// support never grows, cover picks up the unmerged occurrence
	t.Equal(1, merged.Support())
	t.Equal(2, merged.Cover())
	t.Equal([]Span{{0, 4}, {3, 5}}, merged.Spans(0))
	t.Len(merged.Spans(1), 0)
}

func TestAddComplementNoDuplicateStarts(x *testing.T) {
	t := assert.New(x)
	merged := visitations(map[int32][]Span{0: {{0, 4}}})
	pre := visitations(map[int32][]Span{0: {{0, 2}}})
	merged.AddComplement(pre)
	t.Equal(1, merged.Cover())
}
