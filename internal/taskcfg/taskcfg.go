// Package taskcfg generates scheduler-facing configuration values that read
// like ordinary Windows task definitions: recent but uneven start times,
// common recurrence intervals, normal-band priorities. Each call produces a
// fresh record; nothing is cached across calls.
package taskcfg

import (
	"fmt"
	"time"

	"artifactgen/internal/pick"
)

// DurationCodes are the execution time limits a generated task may carry,
// ISO-8601 style at hour and day granularity.
var DurationCodes = []string{
	"PT1H", "PT2H", "PT4H", "PT6H", "PT8H", "PT12H",
	"P1D", "P2D", "P3D",
}

// intervalCandidates bias recurrence toward daily and weekly, matching how
// real task populations skew.
var intervalCandidates = []pick.Candidate[int]{
	pick.C(1, 50),
	pick.C(2, 10),
	pick.C(3, 5),
	pick.C(4, 5),
	pick.C(5, 5),
	pick.C(6, 10),
	pick.C(7, 15),
}

// priorityCandidates concentrate on the scheduler's normal band.
var priorityCandidates = []pick.Candidate[int]{
	pick.C(4, 25),
	pick.C(5, 30),
	pick.C(6, 25),
	pick.C(7, 15),
	pick.C(8, 5),
}

// Config is the minimal bundle GenerateAll assembles. Hidden and idle
// values stay out of the default record so the common case configures
// nothing remarkable; callers wanting them use GenerateFull or the field
// generators directly.
type Config struct {
	StartBoundary      string `json:"start_boundary"`
	IntervalDays       int    `json:"interval_days"`
	ExecutionTimeLimit string `json:"execution_time_limit"`
	Priority           int    `json:"priority"`
}

// IdleSettings holds the two idle-behavior flags.
type IdleSettings struct {
	StopOnIdleEnd bool `json:"stop_on_idle_end"`
	RestartOnIdle bool `json:"restart_on_idle"`
}

// FullConfig is Config plus the visibility and idle fields.
type FullConfig struct {
	Config
	Hidden bool         `json:"hidden"`
	Idle   IdleSettings `json:"idle"`
}

// Generator produces task configuration values. Clock defaults to time.Now
// and, like the rest of the engine, uses the local wall clock as-is.
type Generator struct {
	Clock func() time.Time
}

func (g Generator) now() time.Time {
	if g.Clock != nil {
		return g.Clock()
	}
	return time.Now()
}

// StartBoundary returns the current time shifted back by a random 0-23h
// 0-59m 0-59s offset, second precision plus a synthetic 7-digit sub-second
// component so the timestamp is never suspiciously round.
func (g Generator) StartBoundary(rng pick.Source) string {
	t := g.now().Add(-time.Duration(rng.IntN(24))*time.Hour -
		time.Duration(rng.IntN(60))*time.Minute -
		time.Duration(rng.IntN(60))*time.Second)
	subSecond := 1000000 + rng.IntN(9000000)
	return fmt.Sprintf("%s.%d", t.Format("2006-01-02T15:04:05"), subSecond)
}

// IntervalDays draws a recurrence interval in [1,7].
func (g Generator) IntervalDays(rng pick.Source) (int, error) {
	return pick.Weighted(rng, intervalCandidates)
}

// ExecutionTimeLimit draws uniformly over DurationCodes.
func (g Generator) ExecutionTimeLimit(rng pick.Source) (string, error) {
	return pick.Uniform(rng, DurationCodes)
}

// Priority draws a scheduler priority in {4..8}.
func (g Generator) Priority(rng pick.Source) (int, error) {
	return pick.Weighted(rng, priorityCandidates)
}

// Hidden draws the task visibility flag, true-biased 70/30.
func (g Generator) Hidden(rng pick.Source) (bool, error) {
	return pick.Bool(rng, 70, 30)
}

// Idle draws the two idle flags independently: stop-on-idle-end 20/80,
// restart-on-idle 15/85.
func (g Generator) Idle(rng pick.Source) (IdleSettings, error) {
	stop, err := pick.Bool(rng, 20, 80)
	if err != nil {
		return IdleSettings{}, err
	}
	restart, err := pick.Bool(rng, 15, 85)
	if err != nil {
		return IdleSettings{}, err
	}
	return IdleSettings{StopOnIdleEnd: stop, RestartOnIdle: restart}, nil
}

// GenerateAll assembles the minimal record: start boundary, interval, time
// limit, priority.
func (g Generator) GenerateAll(rng pick.Source) (Config, error) {
	interval, err := g.IntervalDays(rng)
	if err != nil {
		return Config{}, err
	}
	limit, err := g.ExecutionTimeLimit(rng)
	if err != nil {
		return Config{}, err
	}
	priority, err := g.Priority(rng)
	if err != nil {
		return Config{}, err
	}
	return Config{
		StartBoundary:      g.StartBoundary(rng),
		IntervalDays:       interval,
		ExecutionTimeLimit: limit,
		Priority:           priority,
	}, nil
}

// GenerateFull is GenerateAll plus the hidden and idle fields.
func (g Generator) GenerateFull(rng pick.Source) (FullConfig, error) {
	cfg, err := g.GenerateAll(rng)
	if err != nil {
		return FullConfig{}, err
	}
	hidden, err := g.Hidden(rng)
	if err != nil {
		return FullConfig{}, err
	}
	idle, err := g.Idle(rng)
	if err != nil {
		return FullConfig{}, err
	}
	return FullConfig{Config: cfg, Hidden: hidden, Idle: idle}, nil
}
