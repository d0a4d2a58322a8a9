package reporters

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/albertusk95/137-SPM/types/seq"
)

type Log struct {
	fmtr   seq.Formatter
	level  string
	prefix string
	count  int
}

func NewLog(fmtr seq.Formatter, level, prefix string) *Log {
	if level == "" {
		level = "INFO"
	}
	return &Log{fmtr: fmtr, level: level, prefix: prefix}
}

func (lr *Log) Report(n *seq.RepSeq) error {
	lr.count++
	if lr.prefix != "" {
		errors.Logf(lr.level, "%s %v %v", lr.prefix, lr.count, n)
	} else {
		errors.Logf(lr.level, "%v %v", lr.count, n)
	}
	return nil
}

func (lr *Log) Close() error {
	return nil
}
