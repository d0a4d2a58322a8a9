package grasp

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/data-structures/set"
	"github.com/timtadh/data-structures/types"
)

import (
	"github.com/albertusk95/137-SPM/config"
	"github.com/albertusk95/137-SPM/miners"
	"github.com/albertusk95/137-SPM/types/seq"
)

// ResyncPolicy controls how a sequence scan recovers when a token has no
// node in the current transition graph. The pair policy drops the token and
// the one after it, matching the paired-token encoding of the upstream
// database format.
type ResyncPolicy int

const (
	ResyncPair ResyncPolicy = iota
	ResyncItem
)

// Miner greedily decomposes a sequence database into representative
// patterns: long, frequent, gap-tolerant walks through its transition
// graphs. It is not an exhaustive enumerator; each run produces one greedy
// non-overlapping decomposition.
type Miner struct {
	Config *config.Config
	MinSup int
	MaxGap int
	Resync ResyncPolicy
	Db     *seq.Database
	Rptr   miners.Reporter
}

func NewMiner(conf *config.Config, resync ResyncPolicy) *Miner {
	minSup := conf.Support
	if minSup < 1 {
		errors.Logf("DEBUG", "support %v clamped to 1", minSup)
		minSup = 1
	}
	maxGap := conf.MaxGap
	if maxGap < 1 {
		errors.Logf("DEBUG", "max-gap %v clamped to 1", maxGap)
		maxGap = 1
	}
	return &Miner{
		Config: conf,
		MinSup: minSup,
		MaxGap: maxGap,
		Resync: resync,
	}
}

func (m *Miner) Close() error {
	// buffered: Close can return before both sends land
	errs := make(chan error, 2)
	go func() {
		if m == nil || m.Db == nil {
			errs <- nil
			return
		}
		errs <- m.Db.Close()
	}()
	go func() {
		if m == nil || m.Rptr == nil {
			errs <- nil
			return
		}
		errs <- m.Rptr.Close()
	}()
	for i := 0; i < 2; i++ {
		err := <-errs
		if err != nil {
			return err
		}
	}
	return nil
}

// Mine builds the transition graphs of db and mines each one. Disconnected
// graphs never share edges, so with Parallelism configured they are mined
// concurrently, one claim set per graph; patterns are still reported in
// deterministic graph order.
func (m *Miner) Mine(db *seq.Database, rptr miners.Reporter) error {
	m.Db = db
	m.Rptr = rptr
	errors.Logf("INFO", "extracting transition graphs")
	graphs := seq.FromSequences(db.Sequences)
	errors.Logf("INFO", "mining %v graphs", len(graphs))
	workers := m.Config.Workers()
	if workers <= 1 || len(graphs) <= 1 {
		for _, g := range graphs {
			err := m.mineGraph(g, rptr.Report)
			if err != nil {
				return err
			}
		}
		errors.Logf("INFO", "exiting grasp Mine")
		return nil
	}
	type result struct {
		patterns []*seq.RepSeq
		err      error
	}
	results := make([]result, len(graphs))
	work := make(chan int)
	m.Config.AsyncTasks.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer m.Config.AsyncTasks.Done()
			for i := range work {
				err := m.mineGraph(graphs[i], func(r *seq.RepSeq) error {
					results[i].patterns = append(results[i].patterns, r)
					return nil
				})
				results[i].err = err
			}
		}()
	}
	for i := range graphs {
		work <- i
	}
	close(work)
	m.Config.AsyncTasks.Wait()
	for i := range results {
		if results[i].err != nil {
			return results[i].err
		}
		for _, r := range results[i].patterns {
			err := rptr.Report(r)
			if err != nil {
				return err
			}
		}
	}
	errors.Logf("INFO", "exiting grasp Mine")
	return nil
}

// mineGraph runs the seed/expand/promote loop of one transition graph over
// every sequence. claimed edges can no longer seed new paths; they may still
// appear inside later expansions.
func (m *Miner) mineGraph(g *seq.Graph, report func(*seq.RepSeq) error) error {
	claimed := set.NewSortedSet(len(g.Edges))
	for _, sequence := range m.Db.Sequences {
		if len(sequence) == 0 {
			continue
		}
		cur := seq.NewCursor(sequence)
		for cur.HasNext() {
			p := m.startingPath(g, cur, claimed)
			// case: no starting path is possible, go to next sequence
			if p == nil {
				break
			}
			p = m.expandPath(p, g, cur.Copy())
			// a single edge is not a pattern
			if p.Size() > 2 {
				for _, id := range p.EdgeIds() {
					claimed.Add(types.Int(id))
				}
				err := report(p.RepSeq())
				if err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// nextNode consumes tokens until one resolves to a node of g. On a miss the
// resync policy decides whether the token's pair is dropped too.
func (m *Miner) nextNode(g *seq.Graph, cur *seq.Cursor) *seq.Node {
	for cur.HasNext() {
		node := g.Node(cur.Next())
		if node == nil {
			if m.Resync == ResyncPair && cur.HasNext() {
				cur.Next()
			}
			continue
		}
		return node
	}
	return nil
}

// nextEdge scans forward for the next transition with enough support. The
// destination is peeked, not consumed, so consecutive calls chain edges
// through their shared node. Unsupported transitions are skipped with the
// cursor still advancing.
func (m *Miner) nextEdge(g *seq.Graph, cur *seq.Cursor) *seq.Edge {
	for cur.HasNext() {
		node := m.nextNode(g, cur)
		if node == nil || !cur.HasNext() {
			return nil
		}
		edge := node.OutEdge(cur.Peek())
		if edge == nil {
			continue
		}
		// case: support not met
		if edge.Support() < m.MinSup {
			continue
		}
		return edge
	}
	return nil
}

// startingPath seeds a two edge path: the next unclaimed supported edge plus
// a second edge within the maxGap lookahead window whose visitations connect
// at minSup. The cursor is only committed past the lookahead when the seed
// succeeds.
func (m *Miner) startingPath(g *seq.Graph, cur *seq.Cursor, claimed *set.SortedSet) *Path {
	for cur.HasNext() {
		start := m.nextEdge(g, cur)
		if start == nil {
			return nil
		}
		// case: already used this edge, don't start with it
		if claimed.Has(types.Int(start.Id)) {
			continue
		}

		look := cur.Copy()
		for i := 0; i < m.MaxGap; i++ {
			if !look.HasNext() {
				break
			}
			next := m.nextEdge(g, look)
			if next == nil {
				break
			}

			merged := seq.TryConnect(start.Visitors(), next.Visitors(), m.MaxGap, m.MinSup)
			if merged.Support() < m.MinSup {
				continue
			}

			// case: enough support, make a path
			cur.Set(look)
			return newPath([]*seq.Edge{start, next}, merged)
		}
	}
	return nil
}

// expandPath keeps merging supported next edges into the path. A merge with
// support 0 is irrecoverable and freezes the path; a merge below minSup is
// skipped while the scan continues.
func (m *Miner) expandPath(p *Path, g *seq.Graph, cur *seq.Cursor) *Path {
	for cur.HasNext() {
		next := m.nextEdge(g, cur)
		if next == nil {
			return p
		}
		candidate := seq.TryConnect(p.visits, next.Visitors(), m.MaxGap, m.MinSup)
		candidateSup := candidate.Support()
		// case: the expansion is supported, make this the new path
		if candidateSup >= m.MinSup {
			candidate.AddComplement(p.visits)
			edges := make([]*seq.Edge, 0, len(p.edges)+1)
			edges = append(edges, p.edges...)
			edges = append(edges, next)
			p = newPath(edges, candidate)
		} else if candidateSup == 0 {
			// not supported by any sequence, done expanding
			return p
		}
	}
	return p
}
