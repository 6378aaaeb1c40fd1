package hand_processor

import (
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/LeaguesOfHoleHoleShoes/showdown/common/g-error"
	"github.com/LeaguesOfHoleHoleShoes/showdown/log"
	"github.com/LeaguesOfHoleHoleShoes/showdown/poker/abstracts"
)

// 一行输入对应一个玩家
type Player struct {
	id   string
	hand *Hand
}

func NewPlayer(id string, hand *Hand) *Player {
	return &Player{id: id, hand: hand}
}

func (p *Player) ID() string {
	return p.id
}

func (p *Player) Hand() *Hand {
	return p.hand
}

// GetHand implements abstracts.Player.
func (p *Player) GetHand() abstracts.Hand {
	return p.hand
}

// ParsePlayer builds a player from "<id> <card> <card> ...". The id is not validated.
func ParsePlayer(line string) (*Player, error) {
	inputs := strings.Fields(line)
	if len(inputs) == 0 {
		return nil, g_error.ErrMissingID
	}
	cards, err := ParseCards(inputs[1:])
	if err != nil {
		return nil, errors.Wrapf(err, "player %s", inputs[0])
	}
	return NewPlayer(inputs[0], NewHand(cards...)), nil
}

// ParseCards keeps the token order.
func ParseCards(tokens []string) ([]Card, error) {
	cards := make([]Card, 0, len(tokens))
	for _, token := range tokens {
		c, err := ParseCard(token)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// 将"2h 3h 4h"这样的字符串转成手牌
func ParseHand(handStr string) (*Hand, error) {
	cards, err := ParseCards(strings.Fields(handStr))
	if err != nil {
		return nil, err
	}
	return NewHand(cards...), nil
}

// ParsePlayers stops at the first bad line; the error carries its 1-based line number.
func ParsePlayers(lines []string) ([]*Player, error) {
	players := make([]*Player, 0, len(lines))
	for i, line := range lines {
		p, err := ParsePlayer(line)
		if err != nil {
			log.L.Debug("parse player failed", zap.Int("line", i+1), zap.String("input", line), zap.Error(err))
			return nil, errors.Wrapf(err, "line %d", i+1)
		}
		players = append(players, p)
	}
	return players, nil
}

// SplitLines splits on \r and \n and drops blank lines.
func SplitLines(input string) []string {
	fields := strings.FieldsFunc(input, func(r rune) bool { return r == '\r' || r == '\n' })
	lines := make([]string, 0, len(fields))
	for _, f := range fields {
		if strings.TrimSpace(f) == "" {
			continue
		}
		lines = append(lines, f)
	}
	return lines
}

// 解析整段输入
func ParseInput(input string) ([]*Player, error) {
	return ParsePlayers(SplitLines(input))
}
