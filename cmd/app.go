// Package cmd implements the sky command-line application.
package cmd

import (
	"flag"
	"fmt"

	"github.com/etnz/skybonds/config"
	"github.com/etnz/skybonds/logger"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// Commands are the sky subcommands, in display order.
var Commands = []subcommands.Command{
	&tradeCmd{},
	&percentCmd{},
	&topicCmd{},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")
	for _, cmd := range Commands {
		group := "calculators"
		if cmd.Name() == "topic" {
			group = "documentation"
		}
		c.Register(cmd, group)
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "", "Path to a configuration file (YAML, TOML or JSON). Defaults and SKYBONDS_* environment variables apply otherwise.")

// Verbose enables debug diagnostics.
var Verbose = flag.Bool("v", false, "log debug diagnostics on the standard error")

// setup loads the configuration and returns the diagnostic logger of a run of 'command'.
func setup(command string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(*configFile)
	if err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("loading configuration: %w", err)
	}
	level := cfg.Logging.Level
	if *Verbose {
		level = "debug"
	}
	logger.Init(level, cfg.Logging.Pretty)
	return cfg, logger.ForRun(*logger.L(), command), nil
}
