package grasp

import (
	"github.com/albertusk95/137-SPM/config"
	"github.com/albertusk95/137-SPM/miners/reporters"
	"github.com/albertusk95/137-SPM/types/seq"
)

// Collect mines sequences in place and returns every emitted pattern in
// order. The file reporter covers the stream-to-sink mode of consumption;
// this covers the collect mode.
func Collect(conf *config.Config, resync ResyncPolicy, sequences [][]int32) ([]*seq.RepSeq, error) {
	db, err := seq.NewDatabase(conf, seq.NewIntLoader)
	if err != nil {
		return nil, err
	}
	for _, s := range sequences {
		err := db.Add(s)
		if err != nil {
			db.Close()
			return nil, err
		}
	}
	m := NewMiner(conf, resync)
	collector := &reporters.Collector{}
	mineErr := m.Mine(db, collector)
	err = m.Close()
	if err != nil {
		return nil, err
	}
	if mineErr != nil {
		return nil, mineErr
	}
	return collector.RepSeqs, nil
}
