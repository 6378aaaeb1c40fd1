package core

import (
	"go.uber.org/zap"

	"github.com/LeaguesOfHoleHoleShoes/showdown/log"
	"github.com/LeaguesOfHoleHoleShoes/showdown/poker/core/hand_processor"
)

type Matches struct {
	Matches []*Match `json:"matches"`
}

// 一组对比用例，Result是期望结果：alice大为1，bob大为-1，相等为0
type Match struct {
	Alice  string `json:"alice"`
	Bob    string `json:"bob"`
	Result int    `json:"result"`
	Got    int    `json:"got"`
	Err    string `json:"err,omitempty"`
}

// 执行对比方法，得出对比结果，返回是否与期望一致
func (m *Match) match(matcher *HMatcher) bool {
	aliceHand, err := hand_processor.ParseHand(m.Alice)
	if err != nil {
		m.Err = "alice: " + err.Error()
		return false
	}
	bobHand, err := hand_processor.ParseHand(m.Bob)
	if err != nil {
		m.Err = "bob: " + err.Error()
		return false
	}
	m.Got = matcher.Cmp(aliceHand, bobHand)
	return m.Got == m.Result
}

// RunMatches compares every match and returns the ones whose result differs from the
// expected one, including matches that failed to parse.
func RunMatches(matcher *HMatcher, matches *Matches) []*Match {
	ok := make([]bool, len(matches.Matches))
	fanOut(len(matches.Matches), func(from, to int) {
		for i := from; i < to; i++ {
			ok[i] = matches.Matches[i].match(matcher)
		}
	})

	var failed []*Match
	for i, m := range matches.Matches {
		if !ok[i] {
			log.L.Warn("match mismatch", zap.String("alice", m.Alice), zap.String("bob", m.Bob),
				zap.Int("expect", m.Result), zap.Int("got", m.Got), zap.String("err", m.Err))
			failed = append(failed, m)
		}
	}
	return failed
}
