package hand_processor

import (
	"sort"
	"strconv"
)

// 简化后的牌型，数值即分数
type HandCategory int

const (
	CategoryHighCard HandCategory = iota
	CategoryPair
	CategoryFlush
	CategoryStraight
	CategoryThreeOfKind
	CategoryStraightFlush
)

func (i HandCategory) String() string {
	switch i {
	case CategoryStraightFlush:
		return "straight flush"
	case CategoryThreeOfKind:
		return "three of a kind"
	case CategoryStraight:
		return "straight"
	case CategoryFlush:
		return "flush"
	case CategoryPair:
		return "pair"
	case CategoryHighCard:
		return "high card"
	}
	return "HandCategory(" + strconv.Itoa(int(i)) + ")"
}

// 手牌，保持输入顺序，创建后不再修改
type Hand struct {
	cards []Card
}

func NewHand(cards ...Card) *Hand {
	return &Hand{cards: append([]Card{}, cards...)}
}

// Cards returns a copy of the cards in input order.
func (hand *Hand) Cards() []Card {
	return append([]Card{}, hand.cards...)
}

func (hand *Hand) Len() int {
	return len(hand.cards)
}

// Category checks the categories in fixed priority order; the first match wins.
func (hand *Hand) Category() HandCategory {
	switch {
	case hand.IsStraightFlush():
		return CategoryStraightFlush
	case hand.IsThreeOfKind():
		return CategoryThreeOfKind
	case hand.IsStraight():
		return CategoryStraight
	case hand.IsFlush():
		return CategoryFlush
	case hand.IsPair():
		return CategoryPair
	}
	return CategoryHighCard
}

func (hand *Hand) Score() int {
	return int(hand.Category())
}

func (hand *Hand) HasRank(rank Rank) bool {
	for _, c := range hand.cards {
		if c.Rank == rank {
			return true
		}
	}
	return false
}

// 是否有某个牌面恰好出现count次，四条不算三条
func (hand *Hand) matchRank(count int) bool {
	groups := make(map[Rank]int, len(hand.cards))
	for _, c := range hand.cards {
		groups[c.Rank]++
	}
	for _, n := range groups {
		if n == count {
			return true
		}
	}
	return false
}

func (hand *Hand) IsPair() bool {
	return hand.matchRank(2)
}

func (hand *Hand) IsThreeOfKind() bool {
	return hand.matchRank(3)
}

// 0张或1张牌也算同花
func (hand *Hand) IsFlush() bool {
	for _, c := range hand.cards {
		if c.Suit != hand.cards[0].Suit {
			return false
		}
	}
	return true
}

// A、2、3同时出现就算顺子，不看其他牌
func (hand *Hand) IsStraight() bool {
	if len(hand.cards) == 0 {
		return false
	}
	if hand.HasRank(Ace) && hand.HasRank(Two) && hand.HasRank(Three) {
		return true
	}
	sorted := hand.sortedAsc()
	for i := 0; i < len(sorted)-1; i++ {
		if sorted[i].Rank+1 != sorted[i+1].Rank {
			return false
		}
	}
	return true
}

func (hand *Hand) IsStraightFlush() bool {
	return hand.IsStraight() && hand.IsFlush()
}

func (hand *Hand) sortedAsc() []Card {
	sorted := hand.Cards()
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Rank < sorted[j].Rank })
	return sorted
}

// SortedDesc returns the cards ordered by descending rank, ties keep input order.
func (hand *Hand) SortedDesc() []Card {
	sorted := hand.Cards()
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Rank > sorted[j].Rank })
	return sorted
}

func (hand *Hand) DescRanks() []int {
	sorted := hand.SortedDesc()
	result := make([]int, len(sorted))
	for i, c := range sorted {
		result[i] = int(c.Rank)
	}
	return result
}

func (hand *Hand) String() string {
	return CardsToString(hand.cards)
}
