package server

import (
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/sinjp/pokerd/internal/engine"
	"github.com/sinjp/pokerd/internal/store"
)

// errStale marks a deferred task that found the game already moved on.
// Stale timers are expected (the hand can finish before they fire) and
// must not mutate anything.
var errStale = errors.New("stale continuation")

// scheduler owns the deferred state advances: the bot "thinking" delay
// and the showdown settlement delay. Every callback re-enters the table
// lock and re-validates phase and seat eligibility before mutating.
type scheduler struct {
	store       *store.Store
	clock       quartz.Clock
	policy      engine.Policy
	botDelay    time.Duration
	settleDelay time.Duration
	logger      *log.Logger
	onChange    func(id string, snap *engine.Game)
}

func newScheduler(st *store.Store, clock quartz.Clock, policy engine.Policy, botDelay, settleDelay time.Duration, logger *log.Logger) *scheduler {
	return &scheduler{
		store:       st,
		clock:       clock,
		policy:      policy,
		botDelay:    botDelay,
		settleDelay: settleDelay,
		logger:      logger.WithPrefix("scheduler"),
		onChange:    func(string, *engine.Game) {},
	}
}

// GameChanged inspects a fresh snapshot and arms whichever timer the new
// state calls for: settlement after a showdown, or a bot action when the
// seat to act is automated.
func (sc *scheduler) GameChanged(id string, snap *engine.Game) {
	switch {
	case snap.Phase == engine.PhaseShowdown:
		sc.clock.AfterFunc(sc.settleDelay, func() { sc.settle(id) })

	case snap.Phase.Betting():
		idx := snap.CurrentPlayerIndex
		if idx < 0 || idx >= len(snap.Players) {
			return
		}
		p := snap.Players[idx]
		if p.IsBot() && p.CanAct() {
			playerID := p.ID
			sc.clock.AfterFunc(sc.botDelay, func() { sc.runBot(id, playerID) })
		}
	}
}

// runBot applies one bot decision through the same ApplyAction path as a
// human actor. The guard re-checks everything that may have changed while
// the timer was pending.
func (sc *scheduler) runBot(id, playerID string) {
	snap, err := sc.store.Update(id, func(g *engine.Game) error {
		if !g.Phase.Betting() {
			return errStale
		}
		idx := g.CurrentPlayerIndex
		if idx < 0 || idx >= len(g.Players) {
			return errStale
		}
		p := g.Players[idx]
		if p.ID != playerID || !p.IsBot() || !p.CanAct() {
			return errStale
		}

		d := sc.policy.Decide(g, p)
		if err := g.ApplyAction(p.ID, d.Action, d.Amount); err != nil {
			// The policy picked an unplayable action; folding is always
			// legal for a seat that can act.
			sc.logger.Warn("bot decision rejected, folding", "game", id, "player", playerID, "error", err)
			return g.ApplyAction(p.ID, engine.Fold, 0)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, errStale) && !errors.Is(err, engine.ErrGameNotFound) {
			sc.logger.Error("bot action failed", "game", id, "player", playerID, "error", err)
		}
		return
	}

	sc.logger.Debug("bot acted", "game", id, "player", playerID, "phase", snap.Phase)
	sc.onChange(id, snap)
	sc.GameChanged(id, snap)
}

// settle completes showdown -> finished. Settle itself no-ops when the
// phase has already moved on, making a stale timer harmless.
func (sc *scheduler) settle(id string) {
	snap, err := sc.store.Update(id, func(g *engine.Game) error {
		if !g.Settle() {
			return errStale
		}
		return nil
	})
	if err != nil {
		return
	}

	sc.logger.Debug("hand settled", "game", id)
	sc.onChange(id, snap)
}
