package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
	"go.uber.org/zap"

	"github.com/LeaguesOfHoleHoleShoes/showdown/log"
	"github.com/LeaguesOfHoleHoleShoes/showdown/poker/core"
)

const (
	ConfigFName      = "config"
	InputFName       = "input"
	TieBreakFName    = "tie_break"
	FormatFName      = "format"
	ExplainFName     = "explain"
	LogLevelFName    = "log_level"
	MetricsFileFName = "metrics_file"
	MongoHostsFName  = "mongo_hosts"
	MongoDBFName     = "mongo_db"
	MatchFileFName   = "file"
	PlayersFName     = "players"
	HandSizeFName    = "hand_size"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.L.Debug("showdown failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, "showdown:", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "showdown"
	app.Usage = "read one hand per line and print the ids of the best hands"
	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: ConfigFName, Usage: "TOML file with defaults"},
		cli.StringFlag{Name: InputFName, Usage: "read hands from this file instead of stdin"},
		cli.StringFlag{Name: TieBreakFName, Usage: "kicker or literal"},
		cli.StringFlag{Name: FormatFName, Usage: "text or json"},
		cli.BoolFlag{Name: ExplainFName, Usage: "print every hand's category to stderr"},
		cli.StringFlag{Name: LogLevelFName, Usage: "debug, info, warn or error"},
		cli.StringFlag{Name: MetricsFileFName, Usage: "write prometheus metrics to this textfile"},
		cli.StringSliceFlag{Name: MongoHostsFName, Usage: "archive the run into mongo"},
		cli.StringFlag{Name: MongoDBFName, Usage: "mongo database for the archive"},
	}
	app.Action = run
	app.Commands = []cli.Command{
		{
			Name:  "verify",
			Usage: "compare the hand pairs of a match file against their expected results",
			Flags: []cli.Flag{
				cli.StringFlag{Name: MatchFileFName, Usage: "json match file"},
			},
			Action: runVerify,
		},
		{
			Name:  "deal",
			Usage: "print randomly dealt hands in the input format",
			Flags: []cli.Flag{
				cli.IntFlag{Name: PlayersFName, Value: 5},
				cli.IntFlag{Name: HandSizeFName, Value: 5},
			},
			Action: runDeal,
		},
	}
	return app
}

func run(c *cli.Context) error {
	opts, err := loadOptions(c)
	if err != nil {
		return err
	}
	in := os.Stdin
	if path := c.String(InputFName); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	return showdown(opts, in, c.App.Writer, c.App.ErrWriter)
}

func runVerify(c *cli.Context) error {
	opts, err := loadOptions(c)
	if err != nil {
		return err
	}
	return verify(opts, c.String(MatchFileFName), c.App.Writer)
}

func runDeal(c *cli.Context) error {
	return deal(core.NewDealer(), c.Int(PlayersFName), c.Int(HandSizeFName), c.App.Writer)
}
