package abstracts

type Card interface {
	// rank + suit, e.g. "Th"
	GetWhole() string
}

type Hand interface {
	// 0~5，越大越好
	Score() int
	// 按牌面从大到小排好序的牌面权重，用于同分时比较
	DescRanks() []int
}

type HandMatcher interface {
	// h1 > h2 return 1, h1 < h2 return -1, h1 == h2 return 0
	Cmp(h1, h2 Hand) int
}

// 参与比牌的玩家
type Player interface {
	ID() string
	GetHand() Hand
}
