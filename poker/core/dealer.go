package core

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/LeaguesOfHoleHoleShoes/showdown/log"
	"github.com/LeaguesOfHoleHoleShoes/showdown/poker/core/hand_processor"
	"github.com/LeaguesOfHoleHoleShoes/showdown/util"
)

// 最原始的牌，每个牌堆都由它随机排序后生成，只读
var originCards = hand_processor.MakeDeck()

func NewDealer() *Dealer {
	d := &Dealer{}
	d.shuffleTheDeck()
	return d
}

// 牌堆，用来生成随机输入
type Dealer struct {
	Cards []hand_processor.Card `json:"cards"`
}

// 洗牌
func (d *Dealer) shuffleTheDeck() {
	d.Cards = append([]hand_processor.Card{}, originCards...)
	for i := len(d.Cards) - 1; i > 0; i-- {
		j := util.RandANum(i + 1)
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

func (d *Dealer) Remain() int {
	return len(d.Cards)
}

// 从牌堆取牌来发
func (d *Dealer) Deal(count int) ([]hand_processor.Card, error) {
	if count < 0 || count > len(d.Cards) {
		return nil, fmt.Errorf("can't deal %d cards, %d left", count, len(d.Cards))
	}
	log.L.Debug("deal cards", zap.Int("count", count), zap.Int("heap len", len(d.Cards)))
	result := d.Cards[:count:count]
	d.Cards = d.Cards[count:]
	return result, nil
}

// DealPlayers deals handSize cards to each of n players named P1..Pn.
func (d *Dealer) DealPlayers(n, handSize int) ([]*hand_processor.Player, error) {
	players := make([]*hand_processor.Player, 0, n)
	for i := 1; i <= n; i++ {
		cards, err := d.Deal(handSize)
		if err != nil {
			return nil, err
		}
		players = append(players, hand_processor.NewPlayer(fmt.Sprintf("P%d", i), hand_processor.NewHand(cards...)))
	}
	return players, nil
}

// 转成输入格式的一行
func PlayerLine(p *hand_processor.Player) string {
	line := p.ID()
	if p.Hand().Len() > 0 {
		line += " " + p.Hand().String()
	}
	return line
}
