package seq

import (
	"fmt"
	"strings"
)

// RepSeq is one emitted representative pattern: the collapsed item walk plus
// its cover and support. Ownership passes to whichever reporter consumes it.
type RepSeq struct {
	Items   []int32
	Cover   int
	Support int
}

func (r *RepSeq) String() string {
	items := make([]string, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, fmt.Sprintf("%v", item))
	}
	return fmt.Sprintf("<%v> sup %v cover %v", strings.Join(items, " "), r.Support, r.Cover)
}

// Formatter renders representative patterns in the SPMF pattern file format
// with the cover appended after the support.
type Formatter struct{}

func (f Formatter) FileExt() string {
	return ".patterns"
}

func (f Formatter) PatternName(r *RepSeq) string {
	items := make([]string, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, fmt.Sprintf("%v", item))
	}
	return strings.Join(items, " ")
}

func (f Formatter) FormatPattern(r *RepSeq) string {
	var buf strings.Builder
	for _, item := range r.Items {
		fmt.Fprintf(&buf, "%v -1 ", item)
	}
	fmt.Fprintf(&buf, "#SUP: %v #COVER: %v", r.Support, r.Cover)
	return buf.String()
}
