package evaluator

import (
	"math/bits"

	"github.com/sinjp/pokerd/internal/deck"
)

// Rank encodes the strength of a 5-card hand. The high 4 bits carry the
// category; the remaining bits break ties within a category, so two Ranks
// compare directly as integers.
type Rank uint32

const (
	HighCard Rank = iota << 28
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// Category strips the tie-break bits, leaving only the hand type.
func (r Rank) Category() Rank {
	return r & 0xf0000000
}

// String returns a human-readable category name.
func (r Rank) String() string {
	switch r.Category() {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// Compare returns 1 if a beats b, -1 if b beats a, 0 on a tie.
func Compare(a, b Rank) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}

// Evaluate7 ranks the best 5-card hand from exactly 7 cards.
func Evaluate7(h Hand) Rank {
	if h.Count() != 7 {
		return 0
	}

	// Flush first: at most one suit can hold 5+ of 7 cards.
	if suit, ok := flushSuit(h); ok {
		flushRanks := uint16(h.SuitMask(suit))
		if high, ok := straightHigh(flushRanks); ok {
			return StraightFlush | Rank(high)
		}
		return Flush | Rank(topRanks(flushRanks, 5))
	}

	counts := rankCounts(h)

	if quad := highestWithCount(counts, 4, -1); quad >= 0 {
		kicker := topRanks(counts.maskExcluding(quad), 1)
		return FourOfAKind | Rank(quad)<<16 | Rank(kicker)
	}

	trips := highestWithCount(counts, 3, -1)
	if trips >= 0 {
		if pair := highestPairBelowTrips(counts, trips); pair >= 0 {
			return FullHouse | Rank(trips)<<4 | Rank(pair)
		}
	}

	if high, ok := straightHigh(h.RankMask()); ok {
		return Straight | Rank(high)
	}

	if trips >= 0 {
		kickers := topRanks(counts.maskExcluding(trips), 2)
		return ThreeOfAKind | Rank(trips)<<16 | Rank(kickers)
	}

	pair1 := highestWithCount(counts, 2, -1)
	if pair1 >= 0 {
		if pair2 := highestWithCount(counts, 2, pair1); pair2 >= 0 {
			kicker := topRanks(counts.maskExcluding(pair1, pair2), 1)
			return TwoPair | Rank(pair1)<<20 | Rank(pair2)<<16 | Rank(kicker)
		}
		kickers := topRanks(counts.maskExcluding(pair1), 3)
		return Pair | Rank(pair1)<<16 | Rank(kickers)
	}

	return HighCard | Rank(topRanks(counts.maskExcluding(), 5))
}

// rankTally holds the card count per rank index (0 == two .. 12 == ace).
type rankTally [13]uint8

func rankCounts(h Hand) rankTally {
	var counts rankTally
	for suit := deck.Hearts; suit <= deck.Spades; suit++ {
		mask := h.SuitMask(suit)
		for r := 0; r < 13; r++ {
			if mask&(1<<r) != 0 {
				counts[r]++
			}
		}
	}
	return counts
}

// maskExcluding returns the rank mask of every held rank not listed.
func (t rankTally) maskExcluding(exclude ...int) uint16 {
	var m uint16
	for r := 0; r < 13; r++ {
		if t[r] == 0 {
			continue
		}
		skip := false
		for _, e := range exclude {
			if r == e {
				skip = true
				break
			}
		}
		if !skip {
			m |= 1 << r
		}
	}
	return m
}

// highestWithCount finds the highest rank held exactly n times, skipping
// except (pass -1 for none).
func highestWithCount(counts rankTally, n uint8, except int) int {
	for r := 12; r >= 0; r-- {
		if r != except && counts[r] == n {
			return r
		}
	}
	return -1
}

// highestPairBelowTrips finds a pair for a full house; a second set of
// trips counts as the pair.
func highestPairBelowTrips(counts rankTally, trips int) int {
	for r := 12; r >= 0; r-- {
		if r != trips && counts[r] >= 2 {
			return r
		}
	}
	return -1
}

func flushSuit(h Hand) (deck.Suit, bool) {
	for suit := deck.Hearts; suit <= deck.Spades; suit++ {
		if bits.OnesCount16(h.SuitMask(suit)) >= 5 {
			return suit, true
		}
	}
	return 0, false
}

// straightHigh returns the high-card rank index of the best straight in
// the rank mask, if any. The wheel (A-2-3-4-5) counts as five high.
func straightHigh(rankMask uint16) (int, bool) {
	for high := 12; high >= 4; high-- {
		window := uint16(0x1f) << (high - 4)
		if rankMask&window == window {
			return high, true
		}
	}
	// ace plays low: A + 2-3-4-5
	if rankMask&0x100f == 0x100f {
		return 3, true
	}
	return 0, false
}

// topRanks returns a mask of the n highest set ranks.
func topRanks(rankMask uint16, n int) uint16 {
	var result uint16
	for r := 12; r >= 0 && n > 0; r-- {
		if rankMask&(1<<r) != 0 {
			result |= 1 << r
			n--
		}
	}
	return result
}

// Winners evaluates every hole-card pair against a 5-card board and
// returns the indices of the players tied for the best hand.
func Winners(holes [][]deck.Card, board []deck.Card) []int {
	boardHand := NewHand(board...)

	var best Rank
	var winners []int
	for i, hole := range holes {
		if len(hole) == 0 {
			continue
		}
		rank := Evaluate7(boardHand | NewHand(hole...))
		switch Compare(rank, best) {
		case 1:
			best = rank
			winners = []int{i}
		case 0:
			winners = append(winners, i)
		}
	}
	return winners
}
