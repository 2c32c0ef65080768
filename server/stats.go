package server

import (
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v4"
)

// runStats counts served runs per scaling mode.
type runStats struct {
	counts *xsync.Map[string, *atomic.Int64]
}

func newRunStats() *runStats {
	return &runStats{counts: xsync.NewMap[string, *atomic.Int64]()}
}

func (s *runStats) inc(mode string) {
	c, _ := s.counts.LoadOrStore(mode, new(atomic.Int64))
	c.Add(1)
}

func (s *runStats) snapshot() (map[string]int64, int64) {
	runs := make(map[string]int64)
	var total int64
	s.counts.Range(func(mode string, c *atomic.Int64) bool {
		n := c.Load()
		runs[mode] = n
		total += n

		return true
	})

	return runs, total
}
