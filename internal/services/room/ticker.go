package room

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	roomRepo "github.com/KirkDiggler/buzzd/internal/repositories/room"
)

// TickerConfig holds configuration for the countdown ticker
type TickerConfig struct {
	// Service drives the per-second tick
	Service Service

	// Clock provides timers; swap in a fake clock in tests
	Clock clockwork.Clock
}

// Ticker drives the one-second countdown for open buzz windows. One
// loop runs per room; starting a room that is already running is a
// no-op, so a host reconnect never produces a second driver.
type Ticker struct {
	service Service
	clock   clockwork.Clock

	mu    sync.Mutex
	loops map[string]*tickLoop
}

type tickLoop struct {
	cancel context.CancelFunc
}

// NewTicker creates a countdown ticker
func NewTicker(cfg *TickerConfig) (*Ticker, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Service == nil {
		return nil, ErrNilConfig
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clockwork.NewRealClock()
	}

	return &Ticker{
		service: cfg.Service,
		clock:   clk,
		loops:   make(map[string]*tickLoop),
	}, nil
}

// Start begins ticking a room's countdown from the given value. The
// loop stops on its own when the window expires, closes, or another
// driver takes over.
func (t *Ticker) Start(ctx context.Context, code string, from int) {
	t.mu.Lock()
	if _, running := t.loops[code]; running {
		t.mu.Unlock()
		log.Debug().Str("code", code).Msg("tick loop already running")
		return
	}

	loopCtx, cancel := context.WithCancel(ctx)
	loop := &tickLoop{cancel: cancel}
	t.loops[code] = loop
	t.mu.Unlock()

	go t.run(loopCtx, loop, code, from)
}

// Stop halts the tick loop for a room, if one is running
func (t *Ticker) Stop(code string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if loop, running := t.loops[code]; running {
		loop.cancel()
		delete(t.loops, code)
	}
}

// StopAll halts every running tick loop
func (t *Ticker) StopAll() {
	t.mu.Lock()
	defer t.mu.Unlock()

	for code, loop := range t.loops {
		loop.cancel()
		delete(t.loops, code)
	}
}

// remove clears a finished loop's registration without touching any
// replacement that started in the meantime
func (t *Ticker) remove(code string, loop *tickLoop) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.loops[code] == loop {
		delete(t.loops, code)
	}
	loop.cancel()
}

func (t *Ticker) run(ctx context.Context, loop *tickLoop, code string, from int) {
	defer t.remove(code, loop)

	ticker := t.clock.NewTicker(time.Second)
	defer ticker.Stop()

	expected := from

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
		}

		out, err := t.service.Tick(ctx, &TickInput{
			Code:     code,
			Expected: expected,
		})
		if err != nil {
			log.Error().Err(err).Str("code", code).Msg("tick failed, stopping loop")
			return
		}

		switch out.State {
		case roomRepo.TickStateTicked:
			expected = out.Timer
		case roomRepo.TickStateFrozen:
			// slots are full; hold the displayed time until reset
		case roomRepo.TickStateExpired, roomRepo.TickStateInactive:
			log.Debug().Str("code", code).Str("state", string(out.State)).Msg("tick loop finished")
			return
		case roomRepo.TickStateStale:
			// another host session is driving this countdown
			log.Debug().Str("code", code).Msg("tick loop superseded")
			return
		}
	}
}
