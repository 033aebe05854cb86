// Package evaluator ranks 7-card Texas hold'em hands and determines
// showdown winners. Hands are 52-bit masks, one bit per (suit, rank), so
// category checks reduce to bit arithmetic over per-suit 13-bit masks.
package evaluator

import (
	"math/bits"

	"github.com/sinjp/pokerd/internal/deck"
)

// Hand is a set of cards encoded as a 52-bit mask. Bit layout is 13 bits
// per suit, rank two at the lowest bit of each suit block.
type Hand uint64

// CardBit returns the mask bit for a single card.
func CardBit(c deck.Card) Hand {
	return Hand(1) << (uint(c.Suit)*13 + uint(c.Rank-deck.Two))
}

// NewHand builds a hand from cards.
func NewHand(cards ...deck.Card) Hand {
	var h Hand
	for _, c := range cards {
		h |= CardBit(c)
	}
	return h
}

// Add returns the hand with the card included.
func (h Hand) Add(c deck.Card) Hand {
	return h | CardBit(c)
}

// Count returns the number of cards in the hand.
func (h Hand) Count() int {
	return bits.OnesCount64(uint64(h))
}

// SuitMask returns the 13-bit rank mask for one suit.
func (h Hand) SuitMask(suit deck.Suit) uint16 {
	return uint16(h>>(uint(suit)*13)) & 0x1fff
}

// RankMask returns the union of all suits' rank masks.
func (h Hand) RankMask() uint16 {
	var m uint16
	for suit := deck.Hearts; suit <= deck.Spades; suit++ {
		m |= h.SuitMask(suit)
	}
	return m
}
