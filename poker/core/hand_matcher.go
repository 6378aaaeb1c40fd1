package core

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/LeaguesOfHoleHoleShoes/showdown/common/g-error"
	"github.com/LeaguesOfHoleHoleShoes/showdown/poker/abstracts"
)

// 同分时怎么比
type TieBreak int

const (
	// 同分时按从大到小逐张比较两手牌，第一张不同的决定大小
	TieBreakKicker TieBreak = iota
	// 旧实现的行为：拿自己的牌和自己比，同分即相等
	TieBreakLiteral
)

func (t TieBreak) String() string {
	switch t {
	case TieBreakKicker:
		return "kicker"
	case TieBreakLiteral:
		return "literal"
	}
	return "unknown"
}

func ParseTieBreak(s string) (TieBreak, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "kicker":
		return TieBreakKicker, nil
	case "literal":
		return TieBreakLiteral, nil
	}
	return TieBreakKicker, errors.Wrapf(g_error.ErrUnknownTieBreak, "%q", s)
}

func NewHMatcher(tieBreak TieBreak) *HMatcher {
	return &HMatcher{tieBreak: tieBreak}
}

type HMatcher struct {
	tieBreak TieBreak
}

func (hm *HMatcher) TieBreak() TieBreak {
	return hm.tieBreak
}

// h1 > h2 return 1, h1 < h2 return -1, h1 == h2 return 0
func (hm *HMatcher) Cmp(h1, h2 abstracts.Hand) int {
	// 分数不一样就直接决定大小
	if s1, s2 := h1.Score(), h2.Score(); s1 != s2 {
		if s1 > s2 {
			return 1
		}
		return -1
	}

	ranks := h1.DescRanks()
	otherRanks := h2.DescRanks()
	if hm.tieBreak == TieBreakLiteral {
		otherRanks = h1.DescRanks()
	}
	// 以第一手牌的长度为准，另一手先用完也算相等
	for i := 0; i < len(ranks) && i < len(otherRanks); i++ {
		if ranks[i] > otherRanks[i] {
			return 1
		} else if ranks[i] < otherRanks[i] {
			return -1
		}
	}
	return 0
}
