package miners

import (
	"github.com/albertusk95/137-SPM/types/seq"
)

// Note: the miner's Close function should close both the reporter and the
// database that were passed into it.
type Miner interface {
	Mine(*seq.Database, Reporter) error
	Close() error
}

type Reporter interface {
	Report(*seq.RepSeq) error
	Close() error
}
