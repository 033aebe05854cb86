package deck

import rand "math/rand/v2"

// Deck is an ordered stack of cards consumed from the front.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// New creates a full 52-card deck in canonical order. Callers that need a
// random order should Shuffle before dealing.
func New(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: make([]Card, 0, 52),
		rng:   rng,
	}
	for suit := Hearts; suit <= Spades; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards = append(d.cards, NewCard(suit, rank))
		}
	}
	return d
}

// NewShuffled creates a full deck and shuffles it.
func NewShuffled(rng *rand.Rand) *Deck {
	d := New(rng)
	d.Shuffle()
	return d
}

// NewExcluding creates a shuffled deck with every card in visible removed.
// Used to rebuild a playable deck mid-hand when the stored deck has been
// lost or exhausted: the rebuilt deck can never re-deal a card a player or
// the board already shows.
func NewExcluding(rng *rand.Rand, visible []Card) *Deck {
	seen := make(map[Card]bool, len(visible))
	for _, c := range visible {
		seen[c] = true
	}

	d := &Deck{
		cards: make([]Card, 0, 52-len(seen)),
		rng:   rng,
	}
	for suit := Hearts; suit <= Spades; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			c := NewCard(suit, rank)
			if !seen[c] {
				d.cards = append(d.cards, c)
			}
		}
	}
	d.Shuffle()
	return d
}

// FromCards wraps an existing ordered card slice as a deck.
func FromCards(rng *rand.Rand, cards []Card) *Deck {
	return &Deck{cards: cards, rng: rng}
}

// Shuffle randomizes the deck in place (Fisher-Yates).
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal removes and returns the top card.
func (d *Deck) Deal() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, true
}

// DealN deals up to n cards from the top.
func (d *Deck) DealN(n int) []Card {
	if n > len(d.cards) {
		n = len(d.cards)
	}
	cards := make([]Card, 0, n)
	for i := 0; i < n; i++ {
		card, ok := d.Deal()
		if !ok {
			break
		}
		cards = append(cards, card)
	}
	return cards
}

// Remaining returns the number of undealt cards.
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Cards returns the undealt cards in order.
func (d *Deck) Cards() []Card {
	return d.cards
}
