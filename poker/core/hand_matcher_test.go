package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeaguesOfHoleHoleShoes/showdown/common/g-error"
	"github.com/LeaguesOfHoleHoleShoes/showdown/poker/core/hand_processor"
)

func mustHand(t *testing.T, handStr string) *hand_processor.Hand {
	h, err := hand_processor.ParseHand(handStr)
	require.NoError(t, err)
	return h
}

func TestHMatcher_CmpByScore(t *testing.T) {
	for _, tb := range []TieBreak{TieBreakKicker, TieBreakLiteral} {
		hm := NewHMatcher(tb)
		sf := mustHand(t, "2h 3h 4h 5h 6h")
		three := mustHand(t, "Kh Kd Ks 2c 7d")
		pair := mustHand(t, "Ah Ad 5c 9s Kd")
		assert.Equal(t, 1, hm.Cmp(sf, three), tb.String())
		assert.Equal(t, -1, hm.Cmp(three, sf), tb.String())
		assert.Equal(t, 1, hm.Cmp(three, pair), tb.String())
		assert.Equal(t, 0, hm.Cmp(sf, sf), tb.String())
	}
}

func TestHMatcher_Kicker(t *testing.T) {
	hm := NewHMatcher(TieBreakKicker)
	low := mustHand(t, "2h 5d 9c Jd Ks")
	high := mustHand(t, "3h 5d 9c Jd Ks")
	assert.Equal(t, -1, hm.Cmp(low, high))
	assert.Equal(t, 1, hm.Cmp(high, low))

	// 第一张不同的牌决定大小
	aceHigh := mustHand(t, "Ah 2d 4c 6s 8d")
	kingHigh := mustHand(t, "Kh Qd Jc 9s 7d")
	assert.Equal(t, 1, hm.Cmp(aceHigh, kingHigh))

	sameRanks := mustHand(t, "2s 5c 9d Jh Kh")
	assert.Equal(t, 0, hm.Cmp(low, sameRanks))
}

func TestHMatcher_Literal(t *testing.T) {
	hm := NewHMatcher(TieBreakLiteral)
	low := mustHand(t, "2h 5d 9c Jd Ks")
	high := mustHand(t, "3h 5d 9c Jd Ks")
	// 同分就相等
	assert.Equal(t, 0, hm.Cmp(low, high))
	assert.Equal(t, 0, hm.Cmp(high, low))
	assert.Equal(t, TieBreakLiteral, hm.TieBreak())
}

func TestHMatcher_DifferentLengths(t *testing.T) {
	hm := NewHMatcher(TieBreakKicker)
	short := mustHand(t, "Ah 9d")
	long := mustHand(t, "Ah 9d 2c")
	require.Equal(t, short.Score(), long.Score())
	assert.Equal(t, 0, hm.Cmp(short, long))
	assert.Equal(t, 0, hm.Cmp(long, short))
}

func TestParseTieBreak(t *testing.T) {
	tb, err := ParseTieBreak("")
	assert.NoError(t, err)
	assert.Equal(t, TieBreakKicker, tb)

	tb, err = ParseTieBreak(" Literal ")
	assert.NoError(t, err)
	assert.Equal(t, TieBreakLiteral, tb)

	_, err = ParseTieBreak("best")
	assert.True(t, errors.Is(err, g_error.ErrUnknownTieBreak))
	assert.Equal(t, "unknown", TieBreak(5).String())
}
