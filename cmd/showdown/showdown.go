package main

import (
	"fmt"
	"io"
	"io/ioutil"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/LeaguesOfHoleHoleShoes/showdown/common/g-error"
	"github.com/LeaguesOfHoleHoleShoes/showdown/config"
	"github.com/LeaguesOfHoleHoleShoes/showdown/log"
	"github.com/LeaguesOfHoleHoleShoes/showdown/metrics"
	"github.com/LeaguesOfHoleHoleShoes/showdown/poker/archive"
	"github.com/LeaguesOfHoleHoleShoes/showdown/poker/core"
	"github.com/LeaguesOfHoleHoleShoes/showdown/poker/core/hand_processor"
	"github.com/LeaguesOfHoleHoleShoes/showdown/util"
)

// 读入全部输入，任何一行出错整个运行失败，不输出部分结果
func showdown(opts *options, in io.Reader, out io.Writer, errOut io.Writer) error {
	recorder := metrics.NewRecorder()
	defer writeMetrics(recorder, opts.metricsFile)

	input, err := ioutil.ReadAll(in)
	if err != nil {
		return err
	}
	players, err := hand_processor.ParseInput(string(input))
	if err != nil {
		recorder.ObserveParseFailure()
		return err
	}

	results, winners, err := core.SelectWinners(core.NewHMatcher(opts.tieBreak), players)
	if err != nil {
		return err
	}
	for _, r := range results {
		recorder.ObserveHand(r.Category().String())
	}
	recorder.ObserveWinners(len(winners))

	report := core.NewReport(opts.tieBreak, results, winners)
	if len(opts.mongoHosts) > 0 {
		a, err := archive.NewArchiveByMongo(opts.mongoHosts, opts.mongoDB)
		if err != nil {
			return errors.Wrap(err, "open archive")
		}
		if err := a.Save(report); err != nil {
			return errors.Wrap(err, "archive report")
		}
		log.L.Info("report archived", zap.String("run id", report.RunID))
	}
	if opts.explain {
		report.WriteExplain(errOut)
	}
	if opts.format == config.FormatJSON {
		return report.WriteJSON(out)
	}
	return report.WriteText(out)
}

func verify(opts *options, path string, out io.Writer) error {
	recorder := metrics.NewRecorder()
	defer writeMetrics(recorder, opts.metricsFile)

	var matches core.Matches
	if err := util.ReadJsonFromFile(path, &matches); err != nil {
		return errors.Wrapf(err, "read match file %s", path)
	}
	failed := core.RunMatches(core.NewHMatcher(opts.tieBreak), &matches)
	recorder.ObserveMatches(len(matches.Matches), len(failed))

	if len(failed) > 0 {
		b, err := util.StringifyJsonToBytesWithErr(core.Matches{Matches: failed})
		if err != nil {
			return err
		}
		if _, err := out.Write(append(b, '\n')); err != nil {
			return err
		}
		return errors.Wrapf(g_error.ErrMatchMismatch, "%d of %d", len(failed), len(matches.Matches))
	}
	log.L.Info("all matches passed", zap.Int("count", len(matches.Matches)))
	return nil
}

// 发出的牌直接可以作为showdown的输入
func deal(dealer *core.Dealer, players, handSize int, out io.Writer) error {
	ps, err := dealer.DealPlayers(players, handSize)
	if err != nil {
		return err
	}
	for _, p := range ps {
		if _, err := fmt.Fprintln(out, core.PlayerLine(p)); err != nil {
			return err
		}
	}
	return nil
}

func writeMetrics(recorder *metrics.Recorder, path string) {
	if err := recorder.WriteToTextfile(path); err != nil {
		log.L.Error("write metrics failed", zap.String("path", path), zap.Error(err))
	}
}
