package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Sessions int
	Width    int
	Height   int
	Seed     uint64

	// Results
	Results        []SessionResult
	TotalTime      time.Duration
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats

	// Totals, filled by Finalize
	Played      int
	GameOvers   int
	Ticks       int64
	Spawns      int64
	Locks       int64
	RowsCleared int64
	Intents     int64
	Accepted    int64
	TickTime    Stats
	IntentTime  Stats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// Finalize sums the per-session results. Tick timings come from the engine's
// own stats, weighted by each session's tick count.
func (r *Report) Finalize() {
	r.Played = len(r.Results)
	r.TickTime = Stats{}
	r.IntentTime = Stats{}

	var tickTotal time.Duration
	timed := false
	for _, res := range r.Results {
		if res.GameOver {
			r.GameOvers++
		}
		st := res.Stats
		r.Ticks += st.Ticks
		r.Spawns += st.Spawns
		r.Locks += st.Locks
		r.RowsCleared += st.RowsCleared
		r.Intents += res.Intents
		r.Accepted += res.Accepted
		r.IntentTime.Samples = append(r.IntentTime.Samples, res.IntentTime...)

		if st.Ticks == 0 {
			continue
		}
		tickTotal += st.AvgTick * time.Duration(st.Ticks)
		if !timed || st.MinTick < r.TickTime.Min {
			r.TickTime.Min = st.MinTick
		}
		timed = true
		if st.MaxTick > r.TickTime.Max {
			r.TickTime.Max = st.MaxTick
		}
	}
	if r.Ticks > 0 {
		r.TickTime.Avg = tickTotal / time.Duration(r.Ticks)
	}
	r.IntentTime.Finalize()
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Stakblok Simulation Report

## Configuration
- **Wall Time Limit:** {{.Duration}}
- **Sessions Requested:** {{.Sessions}}
- **Board:** {{.Width}}x{{.Height}}
- **Seed:** {{.Seed}}

## Results
- **Sessions Played:** {{.Played}} ({{.GameOvers}} reached game over)
- **Total Time:** {{.TotalTime}}
- **Ticks:** {{.Ticks}}
- **Spawns:** {{.Spawns}}
- **Locks:** {{.Locks}}
- **Rows Cleared:** {{.RowsCleared}}
- **Intents:** {{.Intents}} ({{.Accepted}} accepted, {{pct .Accepted .Intents}}%)
- **Tick Time:**
  - **Avg:** {{.TickTime.Avg}}
  - **Min:** {{.TickTime.Min}}
  - **Max:** {{.TickTime.Max}}
- **Intent Time:**
  - **Avg:** {{.IntentTime.Avg}}
  - **Min:** {{.IntentTime.Min}}
  - **Max:** {{.IntentTime.Max}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"pct": func(a, b int64) string {
			if b == 0 {
				return "0.0"
			}
			return fmt.Sprintf("%.1f", float64(a)*100/float64(b))
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
