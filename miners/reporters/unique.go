package reporters

import (
	"github.com/timtadh/data-structures/set"
	"github.com/timtadh/data-structures/types"
)

import (
	"github.com/albertusk95/137-SPM/miners"
	"github.com/albertusk95/137-SPM/types/seq"
)

type Unique struct {
	fmtr     seq.Formatter
	Seen     *set.SortedSet
	Reporter miners.Reporter
}

func NewUnique(fmtr seq.Formatter, reporter miners.Reporter) *Unique {
	return &Unique{
		fmtr:     fmtr,
		Seen:     set.NewSortedSet(10),
		Reporter: reporter,
	}
}

func (r *Unique) Report(n *seq.RepSeq) error {
	label := types.String(r.fmtr.PatternName(n))
	if r.Seen.Has(label) {
		return nil
	}
	r.Seen.Add(label)
	return r.Reporter.Report(n)
}

func (r *Unique) Close() error {
	return r.Reporter.Close()
}
