package tetris

import (
	"time"
)

// Stats describes what an engine has done since it was created.
type Stats struct {
	Ticks       int64
	Spawns      int64
	Locks       int64
	LineClears  int64
	RowsCleared int64

	MinTick  time.Duration
	MaxTick  time.Duration
	AvgTick  time.Duration
	LastTick time.Duration
}

type statsInternal struct {
	ticks       int64
	spawns      int64
	locks       int64
	lineClears  int64
	rowsCleared int64

	minTick   time.Duration
	maxTick   time.Duration
	totalTick time.Duration
	lastTick  time.Duration
}

func newStatsInternal() statsInternal {
	return statsInternal{minTick: time.Duration(1<<63 - 1)}
}

func (s *statsInternal) recordTick(d time.Duration) {
	s.ticks++
	s.lastTick = d
	s.totalTick += d
	if d < s.minTick {
		s.minTick = d
	}
	if d > s.maxTick {
		s.maxTick = d
	}
}

func (s *statsInternal) export() Stats {
	stats := Stats{
		Ticks:       s.ticks,
		Spawns:      s.spawns,
		Locks:       s.locks,
		LineClears:  s.lineClears,
		RowsCleared: s.rowsCleared,
		MaxTick:     s.maxTick,
		LastTick:    s.lastTick,
	}
	if s.ticks > 0 {
		stats.MinTick = s.minTick
		stats.AvgTick = s.totalTick / time.Duration(s.ticks)
	}
	return stats
}
