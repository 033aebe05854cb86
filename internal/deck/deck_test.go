package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sinjp/pokerd/internal/randutil"
)

func TestNewDeckHas52UniqueCards(t *testing.T) {
	d := New(randutil.New(1))
	require.Equal(t, 52, d.Remaining())

	seen := make(map[Card]bool)
	for _, c := range d.Cards() {
		assert.False(t, seen[c], "duplicate card %s", c)
		seen[c] = true
	}
	assert.Len(t, seen, 52)
}

func TestShuffleIsDeterministicForSeed(t *testing.T) {
	a := NewShuffled(randutil.New(42))
	b := NewShuffled(randutil.New(42))
	assert.Equal(t, a.Cards(), b.Cards())

	c := NewShuffled(randutil.New(43))
	assert.NotEqual(t, a.Cards(), c.Cards())
}

func TestDealConsumesFromFront(t *testing.T) {
	d := New(randutil.New(1))
	first := d.Cards()[0]

	card, ok := d.Deal()
	require.True(t, ok)
	assert.Equal(t, first, card)
	assert.Equal(t, 51, d.Remaining())
}

func TestDealNStopsAtEmpty(t *testing.T) {
	d := New(randutil.New(1))
	cards := d.DealN(60)
	assert.Len(t, cards, 52)
	assert.Equal(t, 0, d.Remaining())

	_, ok := d.Deal()
	assert.False(t, ok)
}

func TestNewExcludingOmitsVisibleCards(t *testing.T) {
	visible := []Card{
		NewCard(Spades, Ace),
		NewCard(Hearts, Ten),
		NewCard(Diamonds, Two),
	}

	d := NewExcluding(randutil.New(7), visible)
	require.Equal(t, 49, d.Remaining())

	for _, c := range d.Cards() {
		for _, v := range visible {
			assert.NotEqual(t, v, c)
		}
	}
}
