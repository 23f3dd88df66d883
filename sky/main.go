package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path"
	"syscall"

	"github.com/etnz/skybonds/cmd"
	"github.com/etnz/skybonds/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	name := path.Base(os.Args[0])
	commander := subcommands.NewCommander(flag.CommandLine, name)
	cmd.Register(commander)

	// Exits when the shell asks for completions (COMP_LINE set).
	completion().Complete(name)

	exitOnInterrupt(os.Exit)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// exitOnInterrupt calls exit with a success status on SIGINT or SIGTERM: an
// interrupted run is not a failure.
func exitOnInterrupt(exit func(code int)) {
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-interrupt
		exit(int(subcommands.ExitSuccess))
	}()
}

// completion describes the sky command line for shell completion.
func completion() *complete.Command {
	root := &complete.Command{
		Flags: map[string]complete.Predictor{
			"config": predict.Files("*"),
			"v":      predict.Nothing,
		},
		Sub: map[string]*complete.Command{},
	}

	var names []string
	for _, c := range cmd.Commands {
		names = append(names, c.Name())
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(fs)
		sub := &complete.Command{Flags: map[string]complete.Predictor{}}
		fs.VisitAll(func(f *flag.Flag) {
			if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
				sub.Flags[f.Name] = predict.Nothing
				return
			}
			switch f.Name {
			case "format":
				sub.Flags[f.Name] = predict.Set(cmd.Formats)
			default:
				sub.Flags[f.Name] = predict.Something
			}
		})
		root.Sub[c.Name()] = sub
	}
	if topics, err := docs.AllTopics(); err == nil {
		root.Sub["topic"].Args = predict.Set(append(topics, docs.Readme))
	}
	root.Sub["help"] = &complete.Command{Args: predict.Set(names)}
	root.Sub["flags"] = &complete.Command{Args: predict.Set(names)}
	root.Sub["commands"] = &complete.Command{}
	return root
}
