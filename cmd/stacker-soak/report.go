package main

import (
	"fmt"
	"io"
	"runtime"
	"slices"
	"text/template"
	"time"

	"github.com/plus3/stacker/loop"
)

// Report collects the outcome of a soak run and renders it as markdown.
type Report struct {
	Matches int
	Limit   time.Duration
	Frame   time.Duration
	Think   int
	Seed    uint64

	Results    []MatchResult
	WinsA      int
	WinsB      int
	Unfinished int

	TotalTime      time.Duration
	UpdateTime     Stats
	Stats          *loop.SchedulerStats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type MatchResult struct {
	Seed       uint64
	Winner     string
	Played     time.Duration
	Players    [2]PlayerResult
	UpdateTime Stats
}

type PlayerResult struct {
	Score  int
	Lines  int
	Pieces int
	Moves  int
	Dead   bool
}

// Stats summarizes a set of frame update durations.
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
	var sum time.Duration
	for _, d := range s.Samples {
		sum += d
	}
	s.Min, s.Max = slices.Min(s.Samples), slices.Max(s.Samples)
	s.Avg = sum / time.Duration(len(s.Samples))
}

// Finalize tallies the match results and merges their frame samples.
func (r *Report) Finalize() {
	r.UpdateTime = Stats{}
	r.WinsA, r.WinsB, r.Unfinished = 0, 0, 0
	for _, res := range r.Results {
		switch res.Winner {
		case "a":
			r.WinsA++
		case "b":
			r.WinsB++
		default:
			r.Unfinished++
		}
		r.UpdateTime.Samples = append(r.UpdateTime.Samples, res.UpdateTime.Samples...)
	}
	r.UpdateTime.Finalize()
}

const reportTemplate = `# Soak Report

{{.Matches}} bot matches, {{.Limit}} limit each, {{.Frame}} frames, bots act every {{.Think}} frames, first seed {{.Seed}}.

## Outcomes

A won {{.WinsA}}, B won {{.WinsB}}, {{.Unfinished}} hit the time limit.

| Seed | Winner | Played | A score | A lines | A pieces | B score | B lines | B pieces |
|------|--------|--------|---------|---------|----------|---------|---------|----------|
{{- range .Results}}
{{- $a := index .Players 0}}{{$b := index .Players 1}}
| {{.Seed}} | {{.Winner}} | {{.Played}} | {{$a.Score}} | {{$a.Lines}} | {{$a.Pieces}} | {{$b.Score}} | {{$b.Lines}} | {{$b.Pieces}} |
{{- end}}

## Timing

Wall time {{.TotalTime}} over {{.Stats.Frames}} frames. Frame update avg {{.UpdateTime.Avg}}, min {{.UpdateTime.Min}}, max {{.UpdateTime.Max}}.

| System | Runs | Avg | Max |
|--------|------|-----|-----|
{{- range .Stats.Systems}}
| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MaxDuration}} |
{{- end}}

## Memory

| | Start | End |
|-|-------|-----|
| Heap MB | {{mb .MemStatsStart.HeapAlloc}} | {{mb .MemStatsEnd.HeapAlloc}} |
| Allocated MB | {{mb .MemStatsStart.TotalAlloc}} | {{mb .MemStatsEnd.TotalAlloc}} |
| GC cycles | {{.MemStatsStart.NumGC}} | {{.MemStatsEnd.NumGC}} |
{{- if .GCPauseMetrics}}

Total GC pause {{pause .MemStatsEnd.PauseTotalNs .MemStatsStart.PauseTotalNs}}.
{{- end}}
`

var reportTmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"mb": func(b uint64) string {
		return fmt.Sprintf("%.2f", float64(b)/(1<<20))
	},
	"pause": func(end, start uint64) time.Duration {
		return time.Duration(end - start)
	},
}).Parse(reportTemplate))

// Generate writes the report as markdown.
func (r *Report) Generate(w io.Writer) error {
	return reportTmpl.Execute(w, r)
}
