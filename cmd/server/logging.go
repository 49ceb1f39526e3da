package main

import (
	"os"

	isatty "github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// newEncoder picks JSON output for log collectors and a coloured console
// layout for terminals.
func newEncoder(terminal bool) zapcore.Encoder {
	if !terminal {
		encoderConf := zap.NewProductionEncoderConfig()
		encoderConf.MessageKey = "message"
		encoderConf.EncodeTime = zapcore.ISO8601TimeEncoder
		return zapcore.NewJSONEncoder(encoderConf)
	}

	encoderConf := zap.NewDevelopmentEncoderConfig()
	encoderConf.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return zapcore.NewConsoleEncoder(encoderConf)
}

// newCore sends errors to errSink and everything from minLevel up to warn
// to infoSink.
func newCore(enc zapcore.Encoder, errSink, infoSink zapcore.WriteSyncer, minLevel zapcore.Level) zapcore.Core {
	errorPriority := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= zapcore.ErrorLevel
	})
	infoPriority := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl < zapcore.ErrorLevel && lvl >= minLevel
	})

	return zapcore.NewTee(
		zapcore.NewCore(enc, errSink, errorPriority),
		zapcore.NewCore(enc, infoSink, infoPriority),
	)
}

func initLogging(level string) {
	terminal := isatty.IsTerminal(os.Stdout.Fd())
	core := newCore(newEncoder(terminal), zapcore.Lock(os.Stderr), zapcore.Lock(os.Stdout), parseLevel(level))

	host, err := os.Hostname()
	if err != nil {
		host = "unknown"
	}

	stackTraceEnabler := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl > zapcore.ErrorLevel
	})
	logger := zap.New(core, zap.Fields(zap.String("host", host)), zap.AddStacktrace(stackTraceEnabler))

	zap.ReplaceGlobals(logger.Named("app"))
	zap.RedirectStdLog(logger.Named("stdlog"))
}
