package engine

import (
	"fmt"
	"time"

	"github.com/sinjp/pokerd/internal/deck"
	"github.com/sinjp/pokerd/internal/evaluator"
)

// Action is a betting decision.
type Action int

const (
	Fold Action = iota
	Check
	Call
	Raise
	AllIn
)

func (a Action) String() string {
	switch a {
	case Fold:
		return "fold"
	case Check:
		return "check"
	case Call:
		return "call"
	case Raise:
		return "raise"
	case AllIn:
		return "all-in"
	default:
		return "unknown"
	}
}

// ParseAction converts a wire action name into an Action.
func ParseAction(s string) (Action, error) {
	switch s {
	case "fold":
		return Fold, nil
	case "check":
		return Check, nil
	case "call":
		return Call, nil
	case "raise":
		return Raise, nil
	case "all-in", "allin":
		return AllIn, nil
	default:
		return 0, fmt.Errorf("%w: unknown action %q", ErrInvalidArgument, s)
	}
}

// ApplyAction validates and applies one betting action for the named
// player, then runs the shared post-action flow: early termination, turn
// advance, round completion, street advance. Validation happens before any
// mutation, so a rejected action leaves the game untouched.
//
// Turn order is deliberately not enforced: any player whose own
// preconditions hold may act, matching the platform's client-driven flow.
func (g *Game) ApplyAction(playerID string, action Action, amount int) error {
	p := g.findPlayer(playerID)
	if p == nil {
		return fmt.Errorf("%w: %q", ErrPlayerNotFound, playerID)
	}
	if !g.Phase.Betting() {
		return fmt.Errorf("%w: hand is not accepting actions in phase %s", ErrInvalidState, g.Phase)
	}
	if p.Folded {
		return fmt.Errorf("%w: cannot act after folding", ErrInvalidState)
	}
	if p.AllIn {
		return fmt.Errorf("%w: cannot act while all-in", ErrInvalidState)
	}

	switch action {
	case Fold:
		p.Folded = true

	case Check:
		if p.Bet != g.CurrentBet {
			return fmt.Errorf("%w: cannot check, must call or raise %d", ErrInvalidState, g.CurrentBet-p.Bet)
		}

	case Call:
		toCall := g.CurrentBet - p.Bet
		if toCall > p.Chips {
			return fmt.Errorf("%w: calling requires %d, have %d", ErrInsufficientFunds, toCall, p.Chips)
		}
		g.commit(p, toCall)

	case Raise:
		if amount <= 0 {
			return fmt.Errorf("%w: raise amount must be positive", ErrInvalidArgument)
		}
		needed := (g.CurrentBet - p.Bet) + amount
		if needed > p.Chips {
			return fmt.Errorf("%w: raising requires %d, have %d", ErrInsufficientFunds, needed, p.Chips)
		}
		g.commit(p, needed)
		g.CurrentBet = p.Bet

	case AllIn:
		g.commit(p, p.Chips)
		p.AllIn = true
		if p.Bet > g.CurrentBet {
			g.CurrentBet = p.Bet
		}

	default:
		return fmt.Errorf("%w: unknown action %d", ErrInvalidArgument, action)
	}

	p.Acted = true
	g.UpdatedAt = time.Now()
	g.advanceAfterAction()
	return nil
}

// commit moves chips from the player's stack into the pot.
func (g *Game) commit(p *Player, amount int) {
	p.Chips -= amount
	p.Bet += amount
	p.TotalBet += amount
	g.Pot += amount
}

// advanceAfterAction is the single post-action control flow shared by
// human and bot actors.
func (g *Game) advanceAfterAction() {
	// With at most one player left able to act there is no more betting:
	// the hand settles immediately without hand evaluation.
	if g.countEligible() <= 1 {
		g.finishEarly()
		return
	}

	g.CurrentPlayerIndex = g.nextEligible(g.CurrentPlayerIndex + 1)

	if g.roundComplete() {
		for _, p := range g.Players {
			p.Acted = false
		}
		g.advancePhase()
	}
}

// roundComplete reports whether every seat still able to act has acted
// and matched the table bet.
func (g *Game) roundComplete() bool {
	for _, p := range g.Players {
		if p.CanAct() && (!p.Acted || p.Bet != g.CurrentBet) {
			return false
		}
	}
	return true
}

// advancePhase moves to the next street, revealing 3/1/1 community cards.
// Bets reset on every transition except into showdown, where the river
// bets stand and the hand is evaluated.
func (g *Game) advancePhase() {
	switch g.Phase {
	case PhasePreflop:
		g.Phase = PhaseFlop
		g.dealCommunity(3)
		g.resetBets()
	case PhaseFlop:
		g.Phase = PhaseTurn
		g.dealCommunity(1)
		g.resetBets()
	case PhaseTurn:
		g.Phase = PhaseRiver
		g.dealCommunity(1)
		g.resetBets()
	case PhaseRiver:
		g.Phase = PhaseShowdown
		g.resolveShowdown()
	}
}

func (g *Game) resetBets() {
	for _, p := range g.Players {
		p.Bet = 0
	}
	g.CurrentBet = 0
}

// finishEarly settles a hand that ended before the river: the pot splits
// evenly among every non-folded seat (all-in seats included) with no hand
// evaluation. The floor-division remainder is not redistributed.
func (g *Game) finishEarly() {
	g.Phase = PhaseShowdown

	var standing []*Player
	for _, p := range g.Players {
		if !p.Folded {
			standing = append(standing, p)
		}
	}
	g.payout(standing)
	g.Phase = PhaseFinished
	g.UpdatedAt = time.Now()
}

// resolveShowdown evaluates every non-folded hand against the board and
// pays the winners. The phase stays at showdown; Settle moves it to
// finished after the settlement delay.
func (g *Game) resolveShowdown() {
	holes := make([][]deck.Card, len(g.Players))
	for i, p := range g.Players {
		if !p.Folded {
			holes[i] = p.Cards
		}
	}

	indices := evaluator.Winners(holes, g.CommunityCards)
	winners := make([]*Player, len(indices))
	for i, idx := range indices {
		winners[i] = g.Players[idx]
	}
	g.payout(winners)
	g.UpdatedAt = time.Now()
}

// payout splits the pot evenly among winners by floor division. The
// remainder chip(s) are lost to rounding, a documented platform quirk.
func (g *Game) payout(winners []*Player) {
	if len(winners) == 0 {
		return
	}
	share := g.Pot / len(winners)
	g.WinnerIDs = make([]string, len(winners))
	for i, p := range winners {
		p.Chips += share
		g.WinnerIDs[i] = p.ID
	}
	g.WinnerID = g.WinnerIDs[0]
	g.Pot = 0
}

// Settle completes the showdown -> finished transition. It is an
// idempotent guard: a stale settlement timer firing after the hand has
// already finished is a no-op.
func (g *Game) Settle() bool {
	if g.Phase != PhaseShowdown {
		return false
	}
	g.Phase = PhaseFinished
	g.UpdatedAt = time.Now()
	return true
}
