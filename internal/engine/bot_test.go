package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sinjp/pokerd/internal/randutil"
)

func TestCoinFlipPolicyCallsAndFolds(t *testing.T) {
	policy := NewCoinFlipPolicy(randutil.New(7))
	g := &Game{CurrentBet: 20, Phase: PhasePreflop}
	p := &Player{ID: "b", UserID: "bot-1", Chips: 1000}

	var calls, folds int
	for i := 0; i < 200; i++ {
		d := policy.Decide(g, p)
		switch d.Action {
		case Call:
			calls++
		case Fold:
			folds++
		default:
			t.Fatalf("unexpected action %s", d.Action)
		}
	}

	assert.Positive(t, calls, "coin flip should call sometimes")
	assert.Positive(t, folds, "coin flip should fold sometimes")
}

func TestCoinFlipPolicyFoldsWhenCallUnaffordable(t *testing.T) {
	policy := NewCoinFlipPolicy(randutil.New(7))
	g := &Game{CurrentBet: 500, Phase: PhasePreflop}
	p := &Player{ID: "b", UserID: "bot-1", Chips: 50}

	for i := 0; i < 50; i++ {
		d := policy.Decide(g, p)
		require.Equal(t, Fold, d.Action, "cannot afford the call, must fold")
	}
}

func TestCoinFlipPolicyDecisionAppliesCleanly(t *testing.T) {
	g := newTestGame(t, 1000)
	policy := NewCoinFlipPolicy(randutil.New(3))

	// The bot seat acts through the same ApplyAction path as a human.
	bot := g.Players[2]
	require.True(t, bot.IsBot())

	d := policy.Decide(g, bot)
	require.NoError(t, g.ApplyAction(bot.ID, d.Action, d.Amount))
	assert.True(t, bot.Folded || bot.Bet == 20)
}
