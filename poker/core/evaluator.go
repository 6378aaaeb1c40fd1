package core

import (
	"runtime"

	"go.uber.org/zap"

	"github.com/LeaguesOfHoleHoleShoes/showdown/log"
	"github.com/LeaguesOfHoleHoleShoes/showdown/poker/abstracts"
	"github.com/LeaguesOfHoleHoleShoes/showdown/poker/core/hand_processor"
)

var coreNum = runtime.NumCPU()

// 大概80为分界线，80个以下开协程的开销比直接算的开销更大
const parallelThreshold = 80

// 分析后的玩家，牌型只算一次
type Result struct {
	player    *hand_processor.Player
	category  hand_processor.HandCategory
	descRanks []int
}

func evaluate(p *hand_processor.Player) *Result {
	return &Result{
		player:    p,
		category:  p.Hand().Category(),
		descRanks: p.Hand().DescRanks(),
	}
}

func (r *Result) Player() *hand_processor.Player {
	return r.player
}

func (r *Result) Category() hand_processor.HandCategory {
	return r.category
}

func (r *Result) ID() string {
	return r.player.ID()
}

func (r *Result) Score() int {
	return int(r.category)
}

func (r *Result) DescRanks() []int {
	return append([]int{}, r.descRanks...)
}

func (r *Result) GetHand() abstracts.Hand {
	return r
}

// Evaluate classifies every hand. Output order matches input order.
func Evaluate(players []*hand_processor.Player) []*Result {
	results := make([]*Result, len(players))
	fanOut(len(players), func(from, to int) {
		for i := from; i < to; i++ {
			results[i] = evaluate(players[i])
		}
	})
	log.L.Debug("hands evaluated", zap.Int("count", len(players)))
	return results
}

// 把[0, n)分给多个协程去跑，数量少时直接在当前协程跑
func fanOut(n int, fn func(from, to int)) {
	if coreNum < 2 || n < parallelThreshold {
		fn(0, n)
		return
	}
	step := n / coreNum
	chans := make([]chan struct{}, 0, coreNum)
	for i := 0; i < coreNum; i++ {
		from := i * step
		to := (i + 1) * step
		// 最后一组要把除不尽的部分带上
		if i == coreNum-1 {
			to = n
		}
		c := make(chan struct{})
		chans = append(chans, c)
		go func() {
			fn(from, to)
			close(c)
		}()
	}
	for _, c := range chans {
		<-c
	}
}
