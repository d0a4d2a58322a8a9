package stats

import "testing"
import "github.com/stretchr/testify/assert"

func TestCalculate(x *testing.T) {
	t := assert.New(x)
	s := Calculate([][]int32{
		{1, 2, 3, 4},
		{1, 2, 3, 4},
		{1, 2},
	})
	t.Equal(3, s.Sequences)
	t.Equal(10, s.Items)
	t.Equal(4, s.DistinctItems)
	t.InDelta(10.0/3.0, s.AvgSequenceLength, 1e-9)
	t.InDelta(1-4.0/10.0, s.Redundancy, 1e-9)
}

func TestCalculateNoRepeats(x *testing.T) {
	t := assert.New(x)
	s := Calculate([][]int32{{1, 2, 3}})
	t.Equal(3, s.DistinctItems)
	t.InDelta(0.0, s.Redundancy, 1e-9)
}

func TestCalculateEmpty(x *testing.T) {
	t := assert.New(x)
	s := Calculate(nil)
	t.Equal(0, s.Sequences)
	t.Equal(0, s.Items)
	t.InDelta(0.0, s.AvgSequenceLength, 1e-9)
	t.InDelta(0.0, s.Redundancy, 1e-9)
}
