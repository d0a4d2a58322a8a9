package stats

import (
	"fmt"
)

// DbStats summarizes a sequence database: the raw input or an emitted
// pattern set.
type DbStats struct {
	Sequences         int
	Items             int
	AvgSequenceLength float64
	DistinctItems     int
	Redundancy        float64
}

// Calculate computes the stats of sequences in one pass. Redundancy is the
// fraction of items that repeat an already seen item id.
func Calculate(sequences [][]int32) DbStats {
	s := DbStats{
		Sequences: len(sequences),
	}
	distinct := make(map[int32]bool)
	for _, sequence := range sequences {
		s.Items += len(sequence)
		for _, item := range sequence {
			distinct[item] = true
		}
	}
	s.DistinctItems = len(distinct)
	if s.Sequences > 0 {
		s.AvgSequenceLength = float64(s.Items) / float64(s.Sequences)
	}
	if s.Items > 0 {
		s.Redundancy = 1 - float64(s.DistinctItems)/float64(s.Items)
	}
	return s
}

func (s DbStats) String() string {
	return fmt.Sprintf(
		"sequences %v items %v avg-length %.2f distinct-items %v redundancy %.4f",
		s.Sequences, s.Items, s.AvgSequenceLength, s.DistinctItems, s.Redundancy)
}
