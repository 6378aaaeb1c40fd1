package hand_processor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeaguesOfHoleHoleShoes/showdown/common/g-error"
)

func TestTokenRoundTrip(t *testing.T) {
	for i := 0; i < len(facesStr); i++ {
		r, err := RankFromToken(facesStr[i])
		require.NoError(t, err)
		assert.Equal(t, facesStr[i], r.Token())
	}
	for i := 0; i < len(colorsStr); i++ {
		s, err := SuitFromToken(colorsStr[i])
		require.NoError(t, err)
		assert.Equal(t, colorsStr[i], s.Token())
	}
}

func TestRankWeights(t *testing.T) {
	assert.Len(t, Ranks, 13)
	for i := 1; i < len(Ranks); i++ {
		assert.Equal(t, Ranks[i-1]+1, Ranks[i])
	}
	assert.Equal(t, Rank(2), Two)
	assert.Equal(t, Rank(10), Ten)
	assert.Equal(t, Rank(14), Ace)
	assert.True(t, Ace > King)
}

func TestUnknownToken(t *testing.T) {
	for _, ch := range []byte{'1', 'X', 't', 'a', '0', ' '} {
		_, err := RankFromToken(ch)
		assert.True(t, errors.Is(err, g_error.ErrUnknownToken), "rank %q", ch)
	}
	for _, ch := range []byte{'H', 'x', 'S', '2'} {
		_, err := SuitFromToken(ch)
		assert.True(t, errors.Is(err, g_error.ErrUnknownToken), "suit %q", ch)
	}
	assert.Equal(t, byte(0), Rank(1).Token())
	assert.Equal(t, byte(0), Suit(7).Token())
}

func TestParseCard(t *testing.T) {
	c, err := ParseCard("Th")
	require.NoError(t, err)
	assert.Equal(t, NewCard(Ten, Hearts), c)
	assert.Equal(t, "Th", c.String())
	assert.Equal(t, "Th", c.GetWhole())

	c, err = ParseCard("2c")
	require.NoError(t, err)
	assert.Equal(t, NewCard(Two, Clovers), c)

	for _, token := range []string{"", "A", "10h", "Ahh"} {
		_, err := ParseCard(token)
		assert.True(t, errors.Is(err, g_error.ErrMalformedCardToken), token)
	}
	for _, token := range []string{"1h", "Az", "hA"} {
		_, err := ParseCard(token)
		assert.True(t, errors.Is(err, g_error.ErrUnknownToken), token)
	}
}

func TestMakeDeck(t *testing.T) {
	deck := MakeDeck()
	assert.Len(t, deck, 52)
	seen := map[string]bool{}
	for _, c := range deck {
		parsed, err := ParseCard(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
		seen[c.String()] = true
	}
	assert.Len(t, seen, 52)
}

func TestCardsToString(t *testing.T) {
	assert.Equal(t, "", CardsToString(nil))
	assert.Equal(t, "Ah 2d", CardsToString([]Card{NewCard(Ace, Hearts), NewCard(Two, Diamonds)}))
}
