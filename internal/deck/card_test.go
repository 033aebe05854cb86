package deck

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardString(t *testing.T) {
	assert.Equal(t, "A♠", NewCard(Spades, Ace).String())
	assert.Equal(t, "10♥", NewCard(Hearts, Ten).String())
	assert.Equal(t, "2♣", NewCard(Clubs, Two).String())
}

func TestCardEquality(t *testing.T) {
	assert.Equal(t, NewCard(Hearts, King), NewCard(Hearts, King))
	assert.NotEqual(t, NewCard(Hearts, King), NewCard(Spades, King))
	assert.NotEqual(t, NewCard(Hearts, King), NewCard(Hearts, Queen))
}

func TestCardJSONRoundTrip(t *testing.T) {
	card := NewCard(Diamonds, Queen)

	data, err := json.Marshal(card)
	require.NoError(t, err)
	assert.JSONEq(t, `{"suit":"diamonds","rank":"Q"}`, string(data))

	var decoded Card
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, card, decoded)
}

func TestCardJSONTenRank(t *testing.T) {
	data, err := json.Marshal(NewCard(Clubs, Ten))
	require.NoError(t, err)
	assert.JSONEq(t, `{"suit":"clubs","rank":"10"}`, string(data))
}

func TestParseRankRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "1", "11", "ace", "T2"} {
		_, err := ParseRank(s)
		assert.Error(t, err, "rank %q", s)
	}
}

func TestParseSuitRejectsGarbage(t *testing.T) {
	_, err := ParseSuit("stars")
	assert.Error(t, err)
}
