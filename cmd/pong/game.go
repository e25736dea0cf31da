package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/term-pong/audio"
	"github.com/lixenwraith/term-pong/config"
	"github.com/lixenwraith/term-pong/engine"
	"github.com/lixenwraith/term-pong/events"
	"github.com/lixenwraith/term-pong/modes"
	"github.com/lixenwraith/term-pong/render"
	"github.com/lixenwraith/term-pong/systems"
)

// options carries command-line choices that are not part of the config file
type options struct {
	seed  int64
	muted bool
}

// game wires the match, input, audio and rendering onto one loop goroutine
type game struct {
	screen    tcell.Screen
	cfg       *config.Config
	match     *systems.Match
	queue     *events.EventQueue
	router    *events.Router
	input     *modes.InputHandler
	sound     *audio.SoundManager
	renderer  *render.TerminalRenderer
	provider  engine.TimeProvider
	clock     *engine.PausableClock
	scheduler *engine.ClockScheduler
	logs      loggers
}

func newGame(screen tcell.Screen, cfg *config.Config, settings *audio.Settings, opts options, logs loggers) *game {
	g := &game{
		screen:   screen,
		cfg:      cfg,
		queue:    events.NewEventQueue(16),
		renderer: render.NewTerminalRenderer(screen, cfg),
		provider: engine.NewMonotonicTimeProvider(),
		logs:     logs,
	}
	g.router = events.NewRouter(g.queue)
	g.clock = engine.NewPausableClock(g.provider)

	g.sound = audio.NewSoundManager(settings, logs.audio)
	if err := g.sound.Initialize(); err != nil {
		logs.audio.Warnf("Audio unavailable, continuing silently: %v", err)
	}
	g.sound.SetMuted(opts.muted)

	g.match = systems.NewMatch(cfg, systems.NewRandDice(opts.seed), g.queue)
	g.input = modes.NewInputHandler(g.match, g.sound, cfg.Input.KeyHold, logs.input)
	g.input.OnResize = func() { g.screen.Sync() }

	g.router.Register(g.sound)
	g.router.Register(events.HandlerFunc{
		Types: []events.EventType{events.EventPauseToggled, events.EventMatchOver, events.EventRestart},
		Fn:    g.trackClock,
	})
	g.router.Register(events.HandlerFunc{Types: events.AllEventTypes(), Fn: g.logEvent})

	g.scheduler = engine.NewClockScheduler(cfg.Match.TickInterval, g.simulate, g.present)
	g.scheduler.SetPauseCheck(g.match.IsPaused)

	logs.pong.Infof("Match started: first to %d, seed %d", cfg.Match.WinningScore, opts.seed)
	return g
}

// simulate is one fixed step: expire held keys, then advance the match
func (g *game) simulate() {
	g.input.ReleaseExpired(g.provider.Now())
	g.match.Tick()
}

// present dispatches the events of this frame and redraws
// Dispatch lives here so pause and restart events are delivered while the simulation is idle
func (g *game) present() {
	g.router.DispatchAll()
	g.renderer.RenderFrame(g.match.State.Snapshot(), render.HUD{
		Paused:  g.match.IsPaused(),
		Muted:   g.sound.IsMuted(),
		Elapsed: g.clock.Elapsed(),
	})
}

func (g *game) trackClock(ev events.MatchEvent) {
	switch ev.Type {
	case events.EventPauseToggled:
		if ev.Paused {
			g.clock.Pause()
		} else {
			g.clock.Resume()
		}
	case events.EventMatchOver:
		g.clock.Pause()
	case events.EventRestart:
		g.clock.Reset()
		g.clock.Resume()
	}
}

func (g *game) logEvent(ev events.MatchEvent) {
	switch ev.Type {
	case events.EventPaddleHit, events.EventWallBounce:
		g.logs.pong.Tracef("%s", ev)
	case events.EventMatchOver:
		g.logs.pong.Infof("%s", ev)
	default:
		g.logs.pong.Debugf("%s", ev)
	}
}

// run owns the loop until a quit key; the poller goroutine only forwards events
func (g *game) run(crash func(any)) {
	eventChan := make(chan tcell.Event, 100)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				crash(r)
			}
		}()
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	g.scheduler.Start()
	defer g.scheduler.Stop()
	g.scheduler.Fire()

	for {
		select {
		case ev := <-eventChan:
			if !g.input.HandleEvent(ev) {
				g.logs.pong.Infof("Quit after %d ticks", g.scheduler.TickCount())
				return
			}
		case <-g.scheduler.C():
			g.scheduler.Fire()
		}
	}
}

// close stops audio; the caller finalizes the screen
func (g *game) close() {
	g.sound.Cleanup()
}

