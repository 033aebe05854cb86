package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sinjp/pokerd/internal/deck"
)

func cards(pairs ...[2]int) []deck.Card {
	out := make([]deck.Card, len(pairs))
	for i, p := range pairs {
		out[i] = deck.NewCard(deck.Suit(p[0]), deck.Rank(p[1]))
	}
	return out
}

func hand(pairs ...[2]int) Hand {
	return NewHand(cards(pairs...)...)
}

const (
	h = int(deck.Hearts)
	d = int(deck.Diamonds)
	c = int(deck.Clubs)
	s = int(deck.Spades)
)

func TestEvaluate7Categories(t *testing.T) {
	tests := []struct {
		name string
		hand Hand
		want Rank
	}{
		{
			"high card",
			hand([2]int{h, 2}, [2]int{d, 4}, [2]int{c, 6}, [2]int{s, 8}, [2]int{h, 10}, [2]int{d, 12}, [2]int{c, 14}),
			HighCard,
		},
		{
			"pair",
			hand([2]int{h, 2}, [2]int{d, 2}, [2]int{c, 6}, [2]int{s, 8}, [2]int{h, 10}, [2]int{d, 12}, [2]int{c, 14}),
			Pair,
		},
		{
			"two pair",
			hand([2]int{h, 2}, [2]int{d, 2}, [2]int{c, 8}, [2]int{s, 8}, [2]int{h, 10}, [2]int{d, 12}, [2]int{c, 14}),
			TwoPair,
		},
		{
			"three of a kind",
			hand([2]int{h, 9}, [2]int{d, 9}, [2]int{c, 9}, [2]int{s, 4}, [2]int{h, 6}, [2]int{d, 12}, [2]int{c, 14}),
			ThreeOfAKind,
		},
		{
			"straight",
			hand([2]int{h, 5}, [2]int{d, 6}, [2]int{c, 7}, [2]int{s, 8}, [2]int{h, 9}, [2]int{d, 12}, [2]int{c, 14}),
			Straight,
		},
		{
			"wheel straight",
			hand([2]int{h, 14}, [2]int{d, 2}, [2]int{c, 3}, [2]int{s, 4}, [2]int{h, 5}, [2]int{d, 9}, [2]int{c, 11}),
			Straight,
		},
		{
			"flush",
			hand([2]int{h, 2}, [2]int{h, 5}, [2]int{h, 8}, [2]int{h, 11}, [2]int{h, 13}, [2]int{d, 9}, [2]int{c, 14}),
			Flush,
		},
		{
			"full house",
			hand([2]int{h, 9}, [2]int{d, 9}, [2]int{c, 9}, [2]int{s, 4}, [2]int{h, 4}, [2]int{d, 12}, [2]int{c, 14}),
			FullHouse,
		},
		{
			"four of a kind",
			hand([2]int{h, 9}, [2]int{d, 9}, [2]int{c, 9}, [2]int{s, 9}, [2]int{h, 4}, [2]int{d, 12}, [2]int{c, 14}),
			FourOfAKind,
		},
		{
			"straight flush",
			hand([2]int{h, 5}, [2]int{h, 6}, [2]int{h, 7}, [2]int{h, 8}, [2]int{h, 9}, [2]int{d, 12}, [2]int{c, 14}),
			StraightFlush,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate7(tt.hand)
			assert.Equal(t, tt.want, got.Category(), "got %s", got)
		})
	}
}

func TestEvaluate7RequiresSevenCards(t *testing.T) {
	assert.Equal(t, Rank(0), Evaluate7(hand([2]int{h, 2}, [2]int{d, 4})))
}

func TestKickersBreakTies(t *testing.T) {
	// Both hold a pair of aces; the ace-king kicker must win.
	better := hand([2]int{h, 14}, [2]int{d, 14}, [2]int{c, 13}, [2]int{s, 9}, [2]int{h, 7}, [2]int{d, 4}, [2]int{c, 2})
	worse := hand([2]int{c, 14}, [2]int{s, 14}, [2]int{h, 12}, [2]int{d, 9}, [2]int{c, 7}, [2]int{s, 4}, [2]int{h, 2})

	assert.Equal(t, 1, Compare(Evaluate7(better), Evaluate7(worse)))
}

func TestHigherStraightWins(t *testing.T) {
	nineHigh := hand([2]int{h, 5}, [2]int{d, 6}, [2]int{c, 7}, [2]int{s, 8}, [2]int{h, 9}, [2]int{d, 2}, [2]int{c, 3})
	wheel := hand([2]int{s, 14}, [2]int{h, 2}, [2]int{d, 3}, [2]int{c, 4}, [2]int{s, 5}, [2]int{h, 9}, [2]int{d, 11})

	assert.Equal(t, 1, Compare(Evaluate7(nineHigh), Evaluate7(wheel)))
}

func TestFullHouseFromTwoTrips(t *testing.T) {
	// Two sets of trips must rank as a full house, higher trips on top.
	rank := Evaluate7(hand([2]int{h, 9}, [2]int{d, 9}, [2]int{c, 9}, [2]int{s, 5}, [2]int{h, 5}, [2]int{d, 5}, [2]int{c, 14}))
	require.Equal(t, FullHouse, rank.Category())

	lower := Evaluate7(hand([2]int{h, 8}, [2]int{d, 8}, [2]int{c, 8}, [2]int{s, 5}, [2]int{h, 5}, [2]int{d, 5}, [2]int{c, 14}))
	assert.Equal(t, 1, Compare(rank, lower))
}

func TestWinnersSingleBestHand(t *testing.T) {
	board := cards([2]int{h, 9}, [2]int{d, 9}, [2]int{c, 4}, [2]int{s, 6}, [2]int{h, 11})

	holes := [][]deck.Card{
		cards([2]int{s, 9}, [2]int{d, 2}),  // trips nines
		cards([2]int{c, 14}, [2]int{d, 7}), // pair of nines, ace kicker
	}

	assert.Equal(t, []int{0}, Winners(holes, board))
}

func TestWinnersSplitPotTie(t *testing.T) {
	// Board plays for both: the straight on the board is the best hand.
	board := cards([2]int{h, 5}, [2]int{d, 6}, [2]int{c, 7}, [2]int{s, 8}, [2]int{h, 9})

	holes := [][]deck.Card{
		cards([2]int{s, 2}, [2]int{d, 3}),
		cards([2]int{c, 2}, [2]int{h, 3}),
	}

	assert.Equal(t, []int{0, 1}, Winners(holes, board))
}

func TestWinnersSkipsEmptyHoles(t *testing.T) {
	board := cards([2]int{h, 9}, [2]int{d, 9}, [2]int{c, 4}, [2]int{s, 6}, [2]int{h, 11})

	holes := [][]deck.Card{
		nil, // folded seat
		cards([2]int{c, 14}, [2]int{d, 7}),
	}

	assert.Equal(t, []int{1}, Winners(holes, board))
}
