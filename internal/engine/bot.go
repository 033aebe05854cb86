package engine

import rand "math/rand/v2"

// Decision is a bot's chosen action.
type Decision struct {
	Action Action
	Amount int
}

// Policy decides an action for an automated seat. Implementations must
// not mutate the game; the decision is applied through ApplyAction like
// any other actor's.
type Policy interface {
	Decide(g *Game, p *Player) Decision
}

// CoinFlipPolicy is the stock bot: a uniform coin flip between calling
// and folding. Calls it cannot afford become folds. It never raises.
type CoinFlipPolicy struct {
	rng *rand.Rand
}

// NewCoinFlipPolicy creates the policy with the given rng.
func NewCoinFlipPolicy(rng *rand.Rand) *CoinFlipPolicy {
	return &CoinFlipPolicy{rng: rng}
}

// Decide implements Policy.
func (cp *CoinFlipPolicy) Decide(g *Game, p *Player) Decision {
	if cp.rng.IntN(2) == 0 {
		toCall := g.CurrentBet - p.Bet
		if toCall <= p.Chips {
			return Decision{Action: Call}
		}
	}
	return Decision{Action: Fold}
}
