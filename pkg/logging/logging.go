// Package logging configures logrus for the command line tools.
package logging

import (
	"io"
	"os"

	filename "github.com/keepeye/logrus-filename"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	prefixed "github.com/t-tomalak/logrus-prefixed-formatter"
	"gopkg.in/natefinch/lumberjack.v2"
)

const timestampFormat = "2006-01-02 15:04:05.000"

// Config selects level and destination of log output.
type Config struct {
	Level string
	// empty means stdout
	Filename     string
	AlsoToStderr bool
}

// Init applies cfg to the standard logrus logger.
func Init(cfg Config) error {
	return Configure(log.StandardLogger(), cfg)
}

// Configure applies cfg to logger.
func Configure(logger *log.Logger, cfg Config) error {
	if cfg.Level == "" {
		cfg.Level = log.InfoLevel.String()
	}
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return errors.Wrapf(err, "parse log level %q", cfg.Level)
	}
	logger.SetLevel(level)
	logger.SetFormatter(&prefixed.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: timestampFormat,
		ForceFormatting: true,
	})

	filenameHook := filename.NewHook()
	filenameHook.Field = "line"
	logger.ReplaceHooks(withoutFilenameHooks(logger.Hooks))
	logger.AddHook(filenameHook)

	if cfg.Filename == "" {
		logger.SetOutput(os.Stdout)
		return nil
	}

	output := &lumberjack.Logger{
		Filename:   cfg.Filename,
		MaxSize:    100, // MB
		MaxAge:     7,
		MaxBackups: 10,
		LocalTime:  true,
	}
	if cfg.AlsoToStderr {
		logger.SetOutput(io.MultiWriter(output, os.Stderr))
	} else {
		logger.SetOutput(output)
	}
	return nil
}

// withoutFilenameHooks keeps every hook except the caller hook a previous
// Configure installed.
func withoutFilenameHooks(hooks log.LevelHooks) log.LevelHooks {
	kept := make(log.LevelHooks, len(hooks))
	for level, hs := range hooks {
		for _, h := range hs {
			if _, ok := h.(*filename.Hook); !ok {
				kept[level] = append(kept[level], h)
			}
		}
	}
	return kept
}
