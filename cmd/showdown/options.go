package main

import (
	"github.com/urfave/cli"

	"github.com/LeaguesOfHoleHoleShoes/showdown/config"
	"github.com/LeaguesOfHoleHoleShoes/showdown/log"
	"github.com/LeaguesOfHoleHoleShoes/showdown/poker/core"
)

type options struct {
	tieBreak    core.TieBreak
	format      string
	explain     bool
	metricsFile string
	mongoHosts  []string
	mongoDB     string
}

// 配置文件给默认值，命令行参数优先
func loadOptions(c *cli.Context) (*options, error) {
	cfg, err := config.Load(c.GlobalString(ConfigFName))
	if err != nil {
		return nil, err
	}
	if c.GlobalIsSet(TieBreakFName) {
		cfg.TieBreak = c.GlobalString(TieBreakFName)
	}
	if c.GlobalIsSet(FormatFName) {
		cfg.Format = c.GlobalString(FormatFName)
	}
	if c.GlobalIsSet(LogLevelFName) {
		cfg.LogLevel = c.GlobalString(LogLevelFName)
	}
	if c.GlobalIsSet(MetricsFileFName) {
		cfg.MetricsFile = c.GlobalString(MetricsFileFName)
	}
	if c.GlobalIsSet(MongoHostsFName) {
		cfg.Mongo.Hosts = c.GlobalStringSlice(MongoHostsFName)
	}
	if c.GlobalIsSet(MongoDBFName) {
		cfg.Mongo.Database = c.GlobalString(MongoDBFName)
	}
	return newOptions(cfg, c.GlobalBool(ExplainFName))
}

func newOptions(cfg *config.Config, explain bool) (*options, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := log.SetLevel(cfg.LogLevel); err != nil {
		return nil, err
	}
	tieBreak, err := core.ParseTieBreak(cfg.TieBreak)
	if err != nil {
		return nil, err
	}
	return &options{
		tieBreak:    tieBreak,
		format:      cfg.Format,
		explain:     explain,
		metricsFile: cfg.MetricsFile,
		mongoHosts:  cfg.Mongo.Hosts,
		mongoDB:     cfg.Mongo.Database,
	}, nil
}
