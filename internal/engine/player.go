package engine

import (
	"strings"

	"github.com/sinjp/pokerd/internal/deck"
)

// botUserPrefix flags a seat as an automated actor.
const botUserPrefix = "bot-"

// Player is the per-seat state for the duration of a hand.
type Player struct {
	ID       string      `json:"id"`
	UserID   string      `json:"userId"`
	Chips    int         `json:"chips"`
	Bet      int         `json:"bet"`      // committed this betting round
	TotalBet int         `json:"totalBet"` // committed this hand
	Cards    []deck.Card `json:"cards"`
	Folded   bool        `json:"folded"`
	AllIn    bool        `json:"isAllIn"`
	Acted    bool        `json:"hasActed"`
}

// IsBot reports whether the seat is played by an automated actor.
func (p *Player) IsBot() bool {
	return strings.HasPrefix(p.UserID, botUserPrefix)
}

// CanAct reports whether the player is still eligible to act this round.
func (p *Player) CanAct() bool {
	return !p.Folded && !p.AllIn
}

func (p *Player) clone() *Player {
	cp := *p
	cp.Cards = append([]deck.Card(nil), p.Cards...)
	return &cp
}
