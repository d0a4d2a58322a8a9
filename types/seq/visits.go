package seq

// Span is one occurrence of an edge or path inside a sequence. Start and End
// are the positions of the first and last matched item.
type Span struct {
	Start, End int32
}

// Visitations tracks, for an edge or a partially grown path, which sequences
// realize it and where. Spans for a sequence are kept in insertion order
// which is scan order during graph construction.
type Visitations struct {
	spans map[int32][]Span
}

func NewVisitations() *Visitations {
	return &Visitations{
		spans: make(map[int32][]Span),
	}
}

func (v *Visitations) Add(sid int32, s Span) {
	v.spans[sid] = append(v.spans[sid], s)
}

// Support is the number of distinct sequences represented.
func (v *Visitations) Support() int {
	return len(v.spans)
}

// Cover is the total number of occurrences represented. Cover >= Support as a
// sequence may contribute more than one occurrence.
func (v *Visitations) Cover() int {
	cover := 0
	for _, spans := range v.spans {
		cover += len(spans)
	}
	return cover
}

// Spans returns the occurrences of the given sequence.
func (v *Visitations) Spans(sid int32) []Span {
	return v.spans[sid]
}

// gap is the number of unmatched items between two matched occurrences. A
// shared endpoint (b starts on the position a ended) and an immediately
// adjacent occurrence both have gap 0.
func gap(a, b Span) (int, bool) {
	delta := int(b.Start) - int(a.End)
	if delta < 0 {
		return 0, false
	}
	if delta > 0 {
		delta--
	}
	return delta, true
}

// TryConnect computes the Visitations of extending a by b: every alignment
// where b occurs after a in the same sequence within maxGap unmatched
// positions. The merged support counts each sequence once; the merged cover
// counts every qualifying alignment. The merged support never exceeds
// min(a.Support(), b.Support()).
func TryConnect(a, b *Visitations, maxGap, minSup int) *Visitations {
	merged := NewVisitations()
	if a.Support() < minSup || b.Support() < minSup {
		return merged
	}
	for sid, as := range a.spans {
		bs, has := b.spans[sid]
		if !has {
			continue
		}
		for _, sa := range as {
			for _, sb := range bs {
				g, forward := gap(sa, sb)
				if !forward || g > maxGap {
					continue
				}
				merged.Add(sid, Span{Start: sa.Start, End: sb.End})
			}
		}
	}
	return merged
}

// AddComplement restores occurrence detail from the pre-merge Visitations:
// for every sequence that survived the merge, spans of pre whose start is not
// already the start of a merged span are carried over. Cover may grow;
// support does not.
func (v *Visitations) AddComplement(pre *Visitations) {
	for sid, spans := range v.spans {
		preSpans, has := pre.spans[sid]
		if !has {
			continue
		}
		starts := make(map[int32]bool, len(spans))
		for _, s := range spans {
			starts[s.Start] = true
		}
		for _, p := range preSpans {
			if !starts[p.Start] {
				v.spans[sid] = append(v.spans[sid], p)
				starts[p.Start] = true
			}
		}
	}
}
