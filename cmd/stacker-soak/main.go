// Command stacker-soak plays bot-driven versus matches headlessly on a
// simulated clock and prints a report of the results and frame costs.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/plus3/stacker/bag"
	"github.com/plus3/stacker/game"
	"github.com/plus3/stacker/loop"
	"github.com/plus3/stacker/settings"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	matches := flag.Int("matches", 10, "Number of matches to play.")
	limit := flag.Duration("limit", 10*time.Minute, "Simulated time limit per match.")
	frame := flag.Duration("frame", time.Second/60, "Simulated frame length.")
	think := flag.Int("think", 15, "Frames between bot moves.")
	seed := flag.Uint64("seed", 1, "Seed of the first match; match i uses seed+i.")
	settingsPath := flag.String("settings", "", "Settings file to play with. Defaults are used when empty.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	logLevel := zap.LevelFlag("log-level", zapcore.InfoLevel, "Log level.")
	flag.Parse()

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(*logLevel)
	logger, err := cfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	var provider settings.Provider = settings.Defaults()
	if *settingsPath != "" {
		s, err := settings.Load(*settingsPath)
		if err != nil {
			logger.Warn("settings reset to defaults", zap.String("path", *settingsPath), zap.Error(err))
		}
		provider = s
	}

	report := &Report{
		Matches:        *matches,
		Limit:          *limit,
		Frame:          *frame,
		Think:          *think,
		Seed:           *seed,
		GCPauseMetrics: *gcPauseMetrics,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	logger.Info("starting soak", zap.Int("matches", *matches), zap.Duration("limit", *limit))
	start := time.Now()
	round := &matchRound{}
	scheduler := loop.NewScheduler()
	scheduler.Register(round)
	for i := range *matches {
		result := round.play(scheduler, logger, provider, *seed+uint64(i), *limit, *frame, *think)
		report.Results = append(report.Results, result)
		logger.Info("match finished",
			zap.Int("match", i),
			zap.String("winner", result.Winner),
			zap.Duration("played", result.Played),
		)
	}
	report.TotalTime = time.Since(start)
	report.Stats = scheduler.GetStats()
	report.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	fmt.Println("\n\n--- Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		logger.Fatal("failed to generate report", zap.Error(err))
	}
	fmt.Println("--- End of Report ---")
}

// matchRound is the scheduler system driving the match currently being
// played. One instance is reused so the statistics cover every match.
type matchRound struct {
	match *game.Match
	bots  [2]*Bot
}

func (r *matchRound) Execute(frame *loop.UpdateFrame) {
	for _, bot := range r.bots {
		bot.Execute()
	}
	r.match.Execute(frame)
}

func (r *matchRound) Name() string { return "MatchRound" }

// play runs one match to completion or the time limit.
func (r *matchRound) play(scheduler *loop.Scheduler, logger *zap.Logger, provider settings.Provider, seed uint64, limit, frame time.Duration, think int) MatchResult {
	m := game.NewMatch(bag.New(seed),
		game.WithLogger(logger),
		game.WithSettings(provider),
		game.WithGarbageSeed(seed),
	)
	a, b := m.Players()
	r.match = m
	r.bots = [2]*Bot{{Session: a, Every: think}, {Session: b, Every: max(think/2, 1)}}

	m.Start()
	result := MatchResult{Seed: seed}
	var played time.Duration
	for played < limit && !m.Over() {
		updateStart := time.Now()
		scheduler.Once(frame)
		result.UpdateTime.Samples = append(result.UpdateTime.Samples, time.Since(updateStart))
		played += frame
	}

	result.Played = played
	result.Winner = "none"
	switch m.Winner() {
	case a:
		result.Winner = "a"
	case b:
		result.Winner = "b"
	}
	result.Players = [2]PlayerResult{summarize(a, r.bots[0]), summarize(b, r.bots[1])}
	result.UpdateTime.Finalize()
	return result
}

func summarize(s *game.Session, bot *Bot) PlayerResult {
	return PlayerResult{
		Score:  s.Score(),
		Lines:  s.Lines(),
		Pieces: s.PiecesLocked(),
		Moves:  bot.moves,
		Dead:   s.GameOver(),
	}
}
