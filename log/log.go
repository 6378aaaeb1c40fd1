
// default logger
package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func init() {
	// call InitLog outside if need change cfg
	InitLog(DefaultProdCfg())
}

var L *zap.Logger

var level = zap.NewAtomicLevelAt(zap.InfoLevel)

func InitLog(cfg zap.Config) {
	var err error
	level = cfg.Level
	if L, err = cfg.Build(); err != nil {
		panic(err)
	}
}

// SetLevel changes the level of L in place, e.g. "debug", "warn".
func SetLevel(text string) error {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(text)); err != nil {
		return err
	}
	level.SetLevel(lvl)
	return nil
}

// stdout is reserved for results
func DefaultDebugCfg() zap.Config {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)

	return cfg
}

func DefaultProdCfg() zap.Config {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)

	return cfg
}
