package core

import (
	"go.uber.org/zap"

	"github.com/LeaguesOfHoleHoleShoes/showdown/common/g-error"
	"github.com/LeaguesOfHoleHoleShoes/showdown/log"
	"github.com/LeaguesOfHoleHoleShoes/showdown/poker/abstracts"
	"github.com/LeaguesOfHoleHoleShoes/showdown/poker/core/hand_processor"
	"github.com/LeaguesOfHoleHoleShoes/showdown/util"
)

// Winners returns every player whose hand equals the best hand, in input order.
func Winners(matcher abstracts.HandMatcher, players []abstracts.Player) ([]abstracts.Player, error) {
	if len(players) == 0 {
		return nil, g_error.ErrEmptyInput
	}
	best := players[0]
	for _, p := range players[1:] {
		if matcher.Cmp(p.GetHand(), best.GetHand()) == 1 {
			best = p
		}
	}
	var result []abstracts.Player
	for _, p := range players {
		if matcher.Cmp(p.GetHand(), best.GetHand()) == 0 {
			result = append(result, p)
		}
	}
	log.L.Debug("winners selected", zap.String("best", best.ID()), zap.Int("winners", len(result)), zap.Int("players", len(players)))
	return result, nil
}

// SelectWinners evaluates the players and picks the winners among them.
func SelectWinners(matcher abstracts.HandMatcher, players []*hand_processor.Player) (results []*Result, winners []*Result, err error) {
	results = Evaluate(players)
	ps := make([]abstracts.Player, len(results))
	util.InterfaceSliceCopy(ps, results)

	ws, err := Winners(matcher, ps)
	if err != nil {
		return results, nil, err
	}
	winners = make([]*Result, len(ws))
	for i, w := range ws {
		winners[i] = w.(*Result)
	}
	return results, winners, nil
}
