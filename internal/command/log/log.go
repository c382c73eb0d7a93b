package log

import (
	"flag"
	"os"

	"github.com/witvcs/wit/internal/command"
	"github.com/witvcs/wit/internal/engine"
	"github.com/witvcs/wit/internal/middleware"
	"github.com/witvcs/wit/internal/present"
)

type Command struct{}

func (c *Command) Name() string      { return "log" }
func (c *Command) Aliases() []string { return nil }
func (c *Command) Usage() string     { return "log" }
func (c *Command) Brief() string     { return "Show the commit history of the current commit" }
func (c *Command) Help() string {
	return `List the history of the current commit, newest first, following first
parents. Merge commits show both parents.`
}
func (c *Command) Subcommands() []command.Command { return nil }
func (c *Command) Flags(fs *flag.FlagSet)         {}

func (c *Command) Run(ctx *command.Context) error {
	e := engine.Open(ctx.Root, ctx.FS)
	entries, err := e.Log()
	if err != nil {
		return err
	}
	present.RenderLog(os.Stdout, entries)
	return nil
}

func init() {
	command.RegisterCommand(
		command.ApplyMiddlewares(
			&Command{},
			middleware.WithDebugArgsPrint(),
			middleware.WithRepoCheck(),
		),
	)
}
