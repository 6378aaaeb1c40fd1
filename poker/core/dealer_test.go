package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeaguesOfHoleHoleShoes/showdown/poker/core/hand_processor"
)

func TestDealer_Deal(t *testing.T) {
	d := NewDealer()
	assert.Equal(t, len(originCards), d.Remain())

	cards, err := d.Deal(2)
	require.NoError(t, err)
	assert.Len(t, cards, 2)
	assert.Equal(t, len(originCards)-2, d.Remain())

	_, err = d.Deal(d.Remain() + 1)
	assert.Error(t, err)
	_, err = d.Deal(-1)
	assert.Error(t, err)
}

func TestDealer_ShuffleKeepsDeck(t *testing.T) {
	d := NewDealer()
	seen := map[hand_processor.Card]bool{}
	for _, c := range d.Cards {
		seen[c] = true
	}
	assert.Len(t, seen, 52)
}

func TestDealer_DealPlayers(t *testing.T) {
	d := NewDealer()
	players, err := d.DealPlayers(10, 5)
	require.NoError(t, err)
	require.Len(t, players, 10)
	assert.Equal(t, "P1", players[0].ID())
	assert.Equal(t, "P10", players[9].ID())
	assert.Equal(t, 2, d.Remain())

	// 发出的牌能按输入格式原样解析回来
	for _, p := range players {
		parsed, err := hand_processor.ParsePlayer(PlayerLine(p))
		require.NoError(t, err)
		assert.Equal(t, p.ID(), parsed.ID())
		assert.Equal(t, p.Hand().Cards(), parsed.Hand().Cards())
	}

	_, err = NewDealer().DealPlayers(11, 5)
	assert.Error(t, err)
}

func TestPlayerLine(t *testing.T) {
	assert.Equal(t, "solo", PlayerLine(hand_processor.NewPlayer("solo", hand_processor.NewHand())))
}

// 随机发牌，检查分数不随牌的顺序变化，赢家互相相等且不小于其他人
func TestRandomDealsSelectConsistentWinners(t *testing.T) {
	hm := NewHMatcher(TieBreakKicker)
	for round := 0; round < 50; round++ {
		players, err := NewDealer().DealPlayers(8, 5)
		require.NoError(t, err)
		results, winners, err := SelectWinners(hm, players)
		require.NoError(t, err)
		require.NotEmpty(t, winners)
		for _, w := range winners {
			assert.Equal(t, 0, hm.Cmp(w, winners[0]))
		}
		for _, r := range results {
			assert.NotEqual(t, 1, hm.Cmp(r, winners[0]))
			cards := r.Player().Hand().Cards()
			for i, j := 0, len(cards)-1; i < j; i, j = i+1, j-1 {
				cards[i], cards[j] = cards[j], cards[i]
			}
			assert.Equal(t, r.Score(), hand_processor.NewHand(cards...).Score())
		}
	}
}
