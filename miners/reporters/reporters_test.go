package reporters

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"os"
	"path/filepath"
	"strings"
)

import (
	"github.com/albertusk95/137-SPM/config"
	"github.com/albertusk95/137-SPM/miners"
	"github.com/albertusk95/137-SPM/types/seq"
)

func repseq(items ...int32) *seq.RepSeq {
	return &seq.RepSeq{Items: items, Support: 2, Cover: 3}
}

func TestCollector(x *testing.T) {
	t := assert.New(x)
	c := &Collector{}
	t.Nil(c.Report(repseq(1, 2, 3)))
	t.Nil(c.Report(repseq(4, 5)))
	t.Nil(c.Close())
	t.Len(c.RepSeqs, 2)
	t.Equal([]int32{1, 2, 3}, c.RepSeqs[0].Items)
}

func TestChainFansOut(x *testing.T) {
	t := assert.New(x)
	a := &Collector{}
	b := &Collector{}
	chain := &Chain{Reporters: []miners.Reporter{a, b}}
	t.Nil(chain.Report(repseq(1, 2, 3)))
	t.Nil(chain.Close())
	t.Len(a.RepSeqs, 1)
	t.Len(b.RepSeqs, 1)
}

func TestUniqueDedups(x *testing.T) {
	t := assert.New(x)
	c := &Collector{}
	u := NewUnique(seq.Formatter{}, c)
	t.Nil(u.Report(repseq(1, 2, 3)))
	t.Nil(u.Report(repseq(4, 5, 6)))
	t.Nil(u.Report(repseq(1, 2, 3)))
	t.Nil(u.Close())
	t.Len(c.RepSeqs, 2)
	t.Equal([]int32{1, 2, 3}, c.RepSeqs[0].Items)
	t.Equal([]int32{4, 5, 6}, c.RepSeqs[1].Items)
}

func TestFileWritesPatterns(x *testing.T) {
	t := assert.New(x)
	conf := &config.Config{Output: x.TempDir()}
	fmtr := seq.Formatter{}
	f, err := NewFile(conf, fmtr, "patterns")
	t.Nil(err)
	t.Nil(f.Report(repseq(1, 2, 3)))
	t.Nil(f.Report(repseq(4, 5)))
	t.Nil(f.Close())

	data, err := os.ReadFile(filepath.Join(conf.Output, "patterns"+fmtr.FileExt()))
	t.Nil(err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	t.Len(lines, 2)
	t.Equal("1 -1 2 -1 3 -1 #SUP: 2 #COVER: 3", lines[0])
	t.Equal("4 -1 5 -1 #SUP: 2 #COVER: 3", lines[1])
}

func TestCountWritesTotal(x *testing.T) {
	t := assert.New(x)
	conf := &config.Config{Output: x.TempDir()}
	c, err := NewCount(conf, "count")
	t.Nil(err)
	t.Nil(c.Report(repseq(1, 2, 3)))
	t.Nil(c.Report(repseq(4, 5, 6)))
	t.Nil(c.Close())

	data, err := os.ReadFile(filepath.Join(conf.Output, "count"))
	t.Nil(err)
	t.Equal("2\n", string(data))
}
