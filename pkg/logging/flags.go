package logging

import "github.com/urfave/cli/v3"

const (
	levelKey        = "log-level"
	filenameKey     = "log-file"
	alsoToStderrKey = "log-also-to-stderr"
)

// Flags returns the logging flags shared by every command.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  levelKey,
			Usage: "Log level: trace, debug, info, warn, error",
			Value: "info",
		},
		&cli.StringFlag{
			Name:  filenameKey,
			Usage: "Write logs to this file instead of stdout",
		},
		&cli.BoolFlag{
			Name:  alsoToStderrKey,
			Usage: "Mirror file logs to stderr",
		},
	}
}

// FromCommand reads the flags registered by Flags.
func FromCommand(cmd *cli.Command) Config {
	return Config{
		Level:        cmd.String(levelKey),
		Filename:     cmd.String(filenameKey),
		AlsoToStderr: cmd.Bool(alsoToStderrKey),
	}
}
