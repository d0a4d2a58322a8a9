package seq

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"io"
	"strings"
)

import (
	"github.com/albertusk95/137-SPM/config"
)

func stringInput(text string) Input {
	return func() (io.Reader, func()) {
		return strings.NewReader(text), func() {}
	}
}

func TestSpmfLoader(x *testing.T) {
	t := assert.New(x)
	db, err := NewDatabase(&config.Config{}, NewSpmfLoader)
	t.Nil(err)
	defer db.Close()
	_, err = db.Loader().Load(stringInput(
		"1 -1 2 -1 3 -1 -2\n" +
			"\n" +
			"1 -1 2 -1 -2 trailing garbage\n" +
			"4 -1 5 -1 -2\n"))
	t.Nil(err)
	t.Equal([][]int32{
		{1, 2, 3},
		{1, 2},
		{4, 5},
	}, db.Sequences)
}

func TestIntLoader(x *testing.T) {
	t := assert.New(x)
	db, err := NewDatabase(&config.Config{}, NewIntLoader)
	t.Nil(err)
	defer db.Close()
	_, err = db.Loader().Load(stringInput("1 2 3\n1 2\n"))
	t.Nil(err)
	t.Equal([][]int32{
		{1, 2, 3},
		{1, 2},
	}, db.Sequences)
}

func TestInvertedIndex(x *testing.T) {
	t := assert.New(x)
	db, err := NewDatabase(&config.Config{}, NewIntLoader)
	t.Nil(err)
	defer db.Close()
	t.Nil(db.Add([]int32{1, 2, 2, 3}))
	t.Nil(db.Add([]int32{2, 3}))

	distinct, err := db.DistinctItems()
	t.Nil(err)
	t.Equal(3, distinct)

	sup, err := db.ItemSupport(2)
	t.Nil(err)
	t.Equal(2, sup)

	sup, err = db.ItemSupport(1)
	t.Nil(err)
	t.Equal(1, sup)

	sup, err = db.ItemSupport(99)
	t.Nil(err)
	t.Equal(0, sup)
}
