package engine

import (
	"fmt"
	rand "math/rand/v2"
	"time"

	"github.com/sinjp/pokerd/internal/deck"
	"github.com/sinjp/pokerd/internal/randutil"
)

// Phase is a betting-round stage. The phase machine only ever moves
// forward: preflop, flop, turn, river, showdown, finished.
type Phase string

const (
	PhasePreflop  Phase = "preflop"
	PhaseFlop     Phase = "flop"
	PhaseTurn     Phase = "turn"
	PhaseRiver    Phase = "river"
	PhaseShowdown Phase = "showdown"
	PhaseFinished Phase = "finished"
)

// Betting reports whether the phase accepts player actions.
func (p Phase) Betting() bool {
	switch p {
	case PhasePreflop, PhaseFlop, PhaseTurn, PhaseRiver:
		return true
	}
	return false
}

// Seat describes one player joining a new hand.
type Seat struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
	Chips  int    `json:"chips"`
}

// Game is the state of one hand at a table. Slice order defines turn
// rotation. The deck and rng are not part of the wire state.
type Game struct {
	ID                 string      `json:"id"`
	Players            []*Player   `json:"players"`
	CommunityCards     []deck.Card `json:"communityCards"`
	Pot                int         `json:"pot"`
	CurrentBet         int         `json:"currentBet"`
	CurrentPlayerIndex int         `json:"currentPlayerIndex"`
	Phase              Phase       `json:"phase"`
	SmallBlind         int         `json:"smallBlind"`
	BigBlind           int         `json:"bigBlind"`
	WinnerID           string      `json:"winnerId,omitempty"`
	WinnerIDs          []string    `json:"winners,omitempty"`
	CreatedAt          time.Time   `json:"createdAt"`
	UpdatedAt          time.Time   `json:"updatedAt"`

	deck *deck.Deck
	rng  *rand.Rand
}

// NewGame deals a fresh hand: shuffles, gives every seat two hole cards,
// posts blinds from seats 0 and 1 and leaves the seat after the big blind
// to act. A short stack posts what it has and is all-in.
func NewGame(rng *rand.Rand, id string, seats []Seat, smallBlind, bigBlind int) (*Game, error) {
	if len(seats) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 players, got %d", ErrInvalidArgument, len(seats))
	}
	if smallBlind <= 0 || bigBlind < smallBlind {
		return nil, fmt.Errorf("%w: blinds %d/%d", ErrInvalidArgument, smallBlind, bigBlind)
	}

	ids := make(map[string]bool, len(seats))
	players := make([]*Player, len(seats))
	for i, seat := range seats {
		if seat.ID == "" {
			return nil, fmt.Errorf("%w: seat %d has no id", ErrInvalidArgument, i)
		}
		if ids[seat.ID] {
			return nil, fmt.Errorf("%w: duplicate player id %q", ErrInvalidArgument, seat.ID)
		}
		if seat.Chips <= 0 {
			return nil, fmt.Errorf("%w: player %q has no chips", ErrInvalidArgument, seat.ID)
		}
		ids[seat.ID] = true
		players[i] = &Player{ID: seat.ID, UserID: seat.UserID, Chips: seat.Chips}
	}

	now := time.Now()
	g := &Game{
		ID:         id,
		Players:    players,
		Phase:      PhasePreflop,
		SmallBlind: smallBlind,
		BigBlind:   bigBlind,
		CreatedAt:  now,
		UpdatedAt:  now,
		rng:        rng,
	}
	g.ensureRNG()
	g.deck = deck.NewShuffled(g.rng)

	for _, p := range g.Players {
		p.Cards = g.deck.DealN(2)
	}

	g.postBlind(0, smallBlind)
	g.postBlind(1, bigBlind)
	g.CurrentBet = bigBlind
	g.CurrentPlayerIndex = g.nextEligible(2 % len(g.Players))

	return g, nil
}

// postBlind commits up to amount from the seat's stack into the pot.
func (g *Game) postBlind(seat, amount int) {
	p := g.Players[seat]
	posted := min(amount, p.Chips)
	p.Chips -= posted
	p.Bet += posted
	p.TotalBet += posted
	g.Pot += posted
	if p.Chips == 0 {
		p.AllIn = true
	}
}

func (g *Game) ensureRNG() {
	if g.rng == nil {
		g.rng = randutil.New(time.Now().UnixNano())
	}
}

func (g *Game) findPlayer(id string) *Player {
	for _, p := range g.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// countEligible counts seats that can still act (not folded, not all-in).
func (g *Game) countEligible() int {
	n := 0
	for _, p := range g.Players {
		if p.CanAct() {
			n++
		}
	}
	return n
}

// nextEligible finds the first seat at or after from that can act,
// wrapping around the table. Returns -1 if no seat can act.
func (g *Game) nextEligible(from int) int {
	n := len(g.Players)
	for i := 0; i < n; i++ {
		idx := (from + i) % n
		if g.Players[idx].CanAct() {
			return idx
		}
	}
	return -1
}

// visibleCards is every card already in play: all hole cards plus the
// board. Used to rebuild a consistent deck.
func (g *Game) visibleCards() []deck.Card {
	visible := make([]deck.Card, 0, len(g.Players)*2+len(g.CommunityCards))
	for _, p := range g.Players {
		visible = append(visible, p.Cards...)
	}
	return append(visible, g.CommunityCards...)
}

// dealCommunity reveals n cards. If the stored deck is missing or
// exhausted it is rebuilt from the unseen cards first, so a reveal never
// fails mid-hand.
func (g *Game) dealCommunity(n int) {
	if g.deck == nil || g.deck.Remaining() < n {
		g.ensureRNG()
		g.deck = deck.NewExcluding(g.rng, g.visibleCards())
	}
	g.CommunityCards = append(g.CommunityCards, g.deck.DealN(n)...)
}

// Snapshot returns a deep copy of the wire-visible state. The copy shares
// nothing with the live game, so it can be marshalled outside the table
// lock.
func (g *Game) Snapshot() *Game {
	cp := *g
	cp.deck = nil
	cp.rng = nil
	cp.Players = make([]*Player, len(g.Players))
	for i, p := range g.Players {
		cp.Players[i] = p.clone()
	}
	cp.CommunityCards = append([]deck.Card(nil), g.CommunityCards...)
	cp.WinnerIDs = append([]string(nil), g.WinnerIDs...)
	return &cp
}
