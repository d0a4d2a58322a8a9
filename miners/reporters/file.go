package reporters

import (
	"fmt"
	"io"
	"os"
)

import (
	"github.com/albertusk95/137-SPM/config"
	"github.com/albertusk95/137-SPM/types/seq"
)

type File struct {
	config   *config.Config
	fmtr     seq.Formatter
	patterns io.WriteCloser
}

func NewFile(c *config.Config, fmtr seq.Formatter, patternsFilename string) (*File, error) {
	patterns, err := os.Create(c.OutputFile(patternsFilename + fmtr.FileExt()))
	if err != nil {
		return nil, err
	}
	r := &File{
		config:   c,
		fmtr:     fmtr,
		patterns: patterns,
	}
	return r, nil
}

func (r *File) Report(n *seq.RepSeq) error {
	_, err := fmt.Fprintln(r.patterns, r.fmtr.FormatPattern(n))
	return err
}

func (r *File) Close() error {
	return r.patterns.Close()
}
