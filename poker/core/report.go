package core

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/LeaguesOfHoleHoleShoes/showdown/poker/core/hand_processor"
	"github.com/LeaguesOfHoleHoleShoes/showdown/util"
)

type HandReport struct {
	ID       string `json:"id" bson:"id"`
	Score    int    `json:"score" bson:"score"`
	Category string `json:"category" bson:"category"`
	Cards    string `json:"cards" bson:"cards"`
	Winner   bool   `json:"winner" bson:"winner"`
}

// 一次比牌的结果
type Report struct {
	RunID    string       `json:"run_id,omitempty" bson:"run_id"`
	At       time.Time    `json:"at" bson:"at"`
	TieBreak string       `json:"tie_break" bson:"tie_break"`
	Winners  []string     `json:"winners" bson:"winners"`
	Hands    []HandReport `json:"hands" bson:"hands"`
}

func NewReport(tieBreak TieBreak, results []*Result, winners []*Result) *Report {
	isWinner := make(map[*Result]bool, len(winners))
	r := &Report{TieBreak: tieBreak.String(), At: time.Now().UTC(), Winners: []string{}}
	for _, w := range winners {
		isWinner[w] = true
		r.Winners = append(r.Winners, w.ID())
	}
	for _, res := range results {
		r.Hands = append(r.Hands, HandReport{
			ID:       res.ID(),
			Score:    res.Score(),
			Category: res.Category().String(),
			Cards:    hand_processor.CardsToString(res.Player().Hand().Cards()),
			Winner:   isWinner[res],
		})
	}
	return r
}

// WinnersLine is the space separated winner ids.
func (r *Report) WinnersLine() string {
	return strings.Join(r.Winners, " ")
}

func (r *Report) WriteText(w io.Writer) error {
	_, err := fmt.Fprintln(w, r.WinnersLine())
	return err
}

func (r *Report) WriteJSON(w io.Writer) error {
	b, err := util.StringifyJsonToBytesWithErr(r)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

// WriteExplain prints one row per hand, winners highlighted.
func (r *Report) WriteExplain(w io.Writer) {
	winner := color.New(color.FgGreen, color.Bold)
	other := color.New(color.Faint)
	for _, h := range r.Hands {
		c := other
		mark := " "
		if h.Winner {
			c = winner
			mark = "*"
		}
		c.Fprintf(w, "%s %-12s %d %-16s %s\n", mark, h.ID, h.Score, h.Category, h.Cards)
	}
}
