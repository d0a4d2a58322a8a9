package seq

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/albertusk95/137-SPM/config"
	"github.com/albertusk95/137-SPM/stores/intint"
)

// Input supplies a reader over the raw sequence database plus a closer for
// whatever resources back it.
type Input func() (reader io.Reader, closer func())

type Loader interface {
	Load(input Input) (*Database, error)
}

type MakeLoader func(*Database) Loader

type ErrorList []error

func (self ErrorList) Error() string {
	var s []string
	for _, err := range self {
		s = append(s, err.Error())
	}
	return "Errors [" + strings.Join(s, ", ") + "]"
}

// Database is an ordered collection of sequences of item ids plus an
// inverted index from item id to the sequences containing it. The sequences
// are immutable once loaded.
type Database struct {
	Sequences     [][]int32
	InvertedIndex intint.MultiMap
	makeLoader    MakeLoader
	config        *config.Config
}

func NewDatabase(config *config.Config, makeLoader MakeLoader) (db *Database, err error) {
	index, err := config.IntIntMultiMap("seq-inverted")
	if err != nil {
		return nil, err
	}
	db = &Database{
		Sequences:     make([][]int32, 0, 10),
		InvertedIndex: index,
		makeLoader:    makeLoader,
		config:        config,
	}
	return db, nil
}

func (db *Database) Loader() Loader {
	return db.makeLoader(db)
}

// Add appends a parsed sequence and indexes its items. Items are
// indexed once per sequence so Count(item) is the item's support.
func (db *Database) Add(sequence []int32) error {
	sid := int32(len(db.Sequences))
	db.Sequences = append(db.Sequences, sequence)
	seen := make(map[int32]bool, len(sequence))
	for _, item := range sequence {
		if seen[item] {
			continue
		}
		seen[item] = true
		err := db.InvertedIndex.Add(item, sid)
		if err != nil {
			return err
		}
	}
	return nil
}

// DistinctItems is the number of distinct item ids in the database.
func (db *Database) DistinctItems() (count int, err error) {
	err = intint.DoKey(db.InvertedIndex.Keys, func(item int32) error {
		count++
		return nil
	})
	return count, err
}

// ItemSupport is the number of distinct sequences containing item.
func (db *Database) ItemSupport(item int32) (int, error) {
	return db.InvertedIndex.Count(item)
}

func (db *Database) Close() error {
	return db.InvertedIndex.Delete()
}

// SpmfLoader reads the SPMF sequence database format: one sequence per line,
// items separated by -1, the sequence terminated by -2.
type SpmfLoader struct {
	db *Database
}

func NewSpmfLoader(db *Database) Loader {
	return &SpmfLoader{db: db}
}

func (l *SpmfLoader) Load(input Input) (*Database, error) {
	in, closer := input()
	defer closer()
	scanner := bufio.NewScanner(in)
	lno := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		lno++
		if line == "" {
			continue
		}
		sequence := make([]int32, 0, 10)
		for _, col := range strings.Fields(line) {
			item, err := strconv.Atoi(col)
			if err != nil {
				errors.Logf("WARN", "input line %d contained non int '%s'", lno, col)
				continue
			}
			if item == -1 {
				continue
			}
			if item == -2 {
				break
			}
			sequence = append(sequence, int32(item))
		}
		err := l.db.Add(sequence)
		if err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return l.db, nil
}

// IntLoader reads one space separated integer sequence per line.
type IntLoader struct {
	db *Database
}

func NewIntLoader(db *Database) Loader {
	return &IntLoader{db: db}
}

func (l *IntLoader) Load(input Input) (*Database, error) {
	in, closer := input()
	defer closer()
	scanner := bufio.NewScanner(in)
	lno := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		lno++
		if line == "" {
			continue
		}
		sequence := make([]int32, 0, 10)
		for _, col := range strings.Fields(line) {
			item, err := strconv.Atoi(col)
			if err != nil {
				errors.Logf("WARN", "input line %d contained non int '%s'", lno, col)
				continue
			}
			sequence = append(sequence, int32(item))
		}
		err := l.db.Add(sequence)
		if err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return l.db, nil
}
