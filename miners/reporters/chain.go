package reporters

import ()

import (
	"github.com/albertusk95/137-SPM/miners"
	"github.com/albertusk95/137-SPM/types/seq"
)

type Chain struct {
	Reporters []miners.Reporter
}

func (r *Chain) Report(n *seq.RepSeq) error {
	for _, rpt := range r.Reporters {
		err := rpt.Report(n)
		if err != nil {
			return err
		}
	}
	return nil
}

// Close closes every reporter in the chain, even when an earlier one
// errors, and aggregates whatever went wrong.
func (r *Chain) Close() error {
	var errs seq.ErrorList
	for _, rpt := range r.Reporters {
		err := rpt.Close()
		if err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
