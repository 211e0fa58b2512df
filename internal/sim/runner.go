// Package sim composes a level with its collaborators and drives headless
// fixed-step simulation runs.
package sim

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/levelsim/internal/config"
	"github.com/vovakirdan/levelsim/internal/env"
	"github.com/vovakirdan/levelsim/internal/hazards"
	"github.com/vovakirdan/levelsim/internal/level"
)

// Parts are the components a runner needs. The level, the environment
// scheduler, and the gameplay director are required; the level cannot
// function without both collaborators attached.
type Parts struct {
	Level     *level.GridLevel
	Scheduler *env.Scheduler
	Director  *hazards.Director
	Decorator *env.Decorator // optional
}

// Runner drives a composed level to completion with a fixed time step.
type Runner struct {
	cfg    config.LevelConfig
	parts  Parts
	logger *log.Logger
	stats  *statsListener
	ticks  int
}

// Report summarizes one completed simulation run.
type Report struct {
	RunID          string
	LevelName      string
	Difficulty     string
	Seed           string
	Duration       float64
	Ticks          int
	TimeBroadcasts int
	EventsStarted  []string
	Transitions    int
	FinalStates    map[level.CellState]int
}

// statsListener gathers run metrics from the broadcast stream.
type statsListener struct {
	timeBroadcasts int
	events         []string
	transitions    int
}

func (s *statsListener) LevelTimeChanged(float64)          { s.timeBroadcasts++ }
func (s *statsListener) EventStarted(name string)          { s.events = append(s.events, name) }
func (s *statsListener) CellStateChanged(level.CellChange) { s.transitions++ }

// New assembles a runner from pre-built parts. Returns
// level.ErrMissingCollaborator when a required component is absent.
func New(cfg config.LevelConfig, parts Parts, logger *log.Logger) (*Runner, error) {
	if parts.Level == nil {
		return nil, fmt.Errorf("%w: level", level.ErrMissingCollaborator)
	}
	if parts.Scheduler == nil {
		return nil, fmt.Errorf("%w: environment scheduler", level.ErrMissingCollaborator)
	}
	if parts.Director == nil {
		return nil, fmt.Errorf("%w: gameplay director", level.ErrMissingCollaborator)
	}
	if logger == nil {
		logger = log.Default()
	}
	stats := &statsListener{}
	parts.Level.Register(stats)
	return &Runner{cfg: cfg, parts: parts, logger: logger, stats: stats}, nil
}

// Build constructs a level and its collaborators from a validated level
// definition and assembles a runner around them. Obstacles are placed
// before the first tick.
func Build(cfg config.LevelConfig, logger *log.Logger) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	lvl, err := level.New(cfg.LevelParams(), logger)
	if err != nil {
		return nil, err
	}

	events := make([]env.TimedEvent, 0, len(cfg.Events))
	reactions := make([]hazards.Reaction, 0, len(cfg.Events))
	for _, e := range cfg.Events {
		events = append(events, env.TimedEvent{Name: e.Name, StartAtPercent: e.StartAt})
		if e.Effect == nil {
			continue
		}
		state, ok := level.ParseCellState(e.Effect.State)
		if !ok {
			return nil, fmt.Errorf("%w: effect state %q", level.ErrInvalidConfiguration, e.Effect.State)
		}
		reactions = append(reactions, hazards.Reaction{
			Event: e.Name,
			State: state,
			Count: e.Effect.Cells,
		})
	}

	parts := Parts{
		Level:     lvl,
		Scheduler: env.NewScheduler(lvl, events),
		Director:  hazards.NewDirector(lvl, reactions, logger),
		Decorator: env.NewDecorator(lvl),
	}

	r, err := New(cfg, parts, logger)
	if err != nil {
		return nil, err
	}

	obstacles := make([]hazards.Obstacle, 0, len(cfg.Obstacles))
	for _, o := range cfg.Obstacles {
		obstacles = append(obstacles, hazards.Obstacle{Prefab: o.Prefab, Count: o.Count})
	}
	if _, err := hazards.PlaceObstacles(lvl, obstacles); err != nil {
		return nil, err
	}

	return r, nil
}

// Level returns the composed level.
func (r *Runner) Level() *level.GridLevel {
	return r.parts.Level
}

// Config returns the level definition the runner was built from.
func (r *Runner) Config() config.LevelConfig {
	return r.cfg
}

// Tick advances the level by one step. Hosts that drive the simulation
// interactively use this instead of Run.
func (r *Runner) Tick(dt float64) {
	r.parts.Level.Tick(dt)
	r.ticks++
}

// Report summarizes the run so far. Each call mints a fresh run ID.
func (r *Runner) Report() Report {
	lvl := r.parts.Level
	return Report{
		RunID:          uuid.NewString(),
		LevelName:      r.cfg.Name,
		Difficulty:     string(r.cfg.Difficulty),
		Seed:           r.cfg.Seed,
		Duration:       lvl.Duration(),
		Ticks:          r.ticks,
		TimeBroadcasts: r.stats.timeBroadcasts,
		EventsStarted:  append([]string(nil), r.stats.events...),
		Transitions:    r.stats.transitions,
		FinalStates:    lvl.CountByState(),
	}
}

// Run ticks the level at the given rate until the duration is reached and
// returns the run report. The tick count is bounded so a stalled clock can
// never loop forever.
func (r *Runner) Run(tickRate int) (Report, error) {
	if tickRate <= 0 {
		return Report{}, fmt.Errorf("%w: tick rate %d", level.ErrInvalidArgument, tickRate)
	}

	lvl := r.parts.Level
	dt := 1.0 / float64(tickRate)
	maxTicks := int(lvl.Duration()*float64(tickRate)) + tickRate

	steps := 0
	for !lvl.Ended() && steps < maxTicks {
		r.Tick(dt)
		steps++
	}
	if !lvl.Ended() {
		return Report{}, fmt.Errorf("level did not end within %d ticks", maxTicks)
	}

	r.logger.Debug("run complete",
		"level", r.cfg.Name,
		"ticks", r.ticks,
		"events", len(r.stats.events),
	)

	return r.Report(), nil
}
