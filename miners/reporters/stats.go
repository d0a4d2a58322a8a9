package reporters

import (
	"fmt"
	"os"
)

import (
	"github.com/albertusk95/137-SPM/config"
	"github.com/albertusk95/137-SPM/stats"
	"github.com/albertusk95/137-SPM/types/seq"
)

// Stats accumulates the emitted patterns as a sequence database of their own
// and writes its statistics when the run finishes.
type Stats struct {
	config   *config.Config
	filename string
	patterns [][]int32
}

func NewStats(c *config.Config, filename string) (*Stats, error) {
	r := &Stats{
		config:   c,
		filename: filename,
	}
	return r, nil
}

func (r *Stats) Report(n *seq.RepSeq) error {
	r.patterns = append(r.patterns, n.Items)
	return nil
}

func (r *Stats) Close() error {
	f, err := os.Create(r.config.OutputFile(r.filename))
	if err != nil {
		return err
	}
	_, perr := fmt.Fprintf(f, "%v\n", stats.Calculate(r.patterns))
	err = f.Close()
	if perr != nil {
		return perr
	}
	return err
}
