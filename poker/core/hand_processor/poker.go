package hand_processor

import (
	"github.com/pkg/errors"

	"github.com/LeaguesOfHoleHoleShoes/showdown/common/g-error"
)

// 牌面字符，顺序与Rank的权重一致
const facesStr = "23456789TJQKA"
const colorsStr = "hdsc"

// Rank的值就是它的权重，比较大小只看这个值
type Rank int

const (
	Two   Rank = 2
	Three Rank = 3
	Four  Rank = 4
	Five  Rank = 5
	Six   Rank = 6
	Seven Rank = 7
	Eight Rank = 8
	Nine  Rank = 9
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
	Ace   Rank = 14
)

var rankByToken = map[byte]Rank{
	'2': Two, '3': Three, '4': Four, '5': Five, '6': Six, '7': Seven, '8': Eight,
	'9': Nine, 'T': Ten, 'J': Jack, 'Q': Queen, 'K': King, 'A': Ace,
}

// 所有牌面，从小到大
var Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

type Suit int

const (
	Hearts Suit = iota
	Diamonds
	Spades
	Clovers
)

var suitByToken = map[byte]Suit{
	'h': Hearts, 'd': Diamonds, 's': Spades, 'c': Clovers,
}

var Suits = []Suit{Hearts, Diamonds, Spades, Clovers}

func RankFromToken(ch byte) (Rank, error) {
	if r, ok := rankByToken[ch]; ok {
		return r, nil
	}
	return 0, errors.Wrapf(g_error.ErrUnknownToken, "rank %q", ch)
}

func SuitFromToken(ch byte) (Suit, error) {
	if s, ok := suitByToken[ch]; ok {
		return s, nil
	}
	return 0, errors.Wrapf(g_error.ErrUnknownToken, "suit %q", ch)
}

// Token returns the input character of the rank, 0 for an invalid rank.
func (r Rank) Token() byte {
	if r < Two || r > Ace {
		return 0
	}
	return facesStr[r-Two]
}

func (s Suit) Token() byte {
	if s < Hearts || s > Clovers {
		return 0
	}
	return colorsStr[s]
}

func (r Rank) String() string {
	if t := r.Token(); t != 0 {
		return string(t)
	}
	return "?"
}

func (s Suit) String() string {
	switch s {
	case Hearts:
		return "hearts"
	case Diamonds:
		return "diamonds"
	case Spades:
		return "spades"
	case Clovers:
		return "clovers"
	}
	return "?"
}

// 一张牌，值类型，创建后不再修改
type Card struct {
	Rank Rank
	Suit Suit
}

func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// ParseCard converts a two character token such as "Th" into a card.
func ParseCard(token string) (Card, error) {
	if len(token) != 2 {
		return Card{}, errors.Wrapf(g_error.ErrMalformedCardToken, "token %q", token)
	}
	rank, err := RankFromToken(token[0])
	if err != nil {
		return Card{}, errors.Wrapf(err, "token %q", token)
	}
	suit, err := SuitFromToken(token[1])
	if err != nil {
		return Card{}, errors.Wrapf(err, "token %q", token)
	}
	return Card{Rank: rank, Suit: suit}, nil
}

// 转成输入格式，比如"Ah"
func (c Card) String() string {
	return string([]byte{c.Rank.Token(), c.Suit.Token()})
}

// GetWhole implements abstracts.Card.
func (c Card) GetWhole() string {
	return c.String()
}

// 生成一副牌，主要用于测试
func MakeDeck() []Card {
	result := make([]Card, 0, len(Ranks)*len(Suits))
	for _, r := range Ranks {
		for _, s := range Suits {
			result = append(result, NewCard(r, s))
		}
	}
	return result
}

// 将牌组转成字符串，用空格隔开
func CardsToString(cards []Card) string {
	tmp := ""
	for i, c := range cards {
		if i > 0 {
			tmp += " "
		}
		tmp += c.String()
	}
	return tmp
}
