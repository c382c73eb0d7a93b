package status

import (
	"flag"
	"os"

	"github.com/witvcs/wit/internal/command"
	"github.com/witvcs/wit/internal/engine"
	"github.com/witvcs/wit/internal/middleware"
	"github.com/witvcs/wit/internal/present"
)

type Command struct{}

func (c *Command) Name() string      { return "status" }
func (c *Command) Aliases() []string { return []string{"st"} }
func (c *Command) Usage() string     { return "status" }
func (c *Command) Brief() string     { return "Show staged, modified and untracked files" }
func (c *Command) Help() string {
	return `Show the current branch and classify every path into changes to be
committed (staging vs current commit), changes not staged (working tree
vs staging) and untracked files.`
}
func (c *Command) Subcommands() []command.Command { return nil }
func (c *Command) Flags(fs *flag.FlagSet)         {}

func (c *Command) Run(ctx *command.Context) error {
	e := engine.Open(ctx.Root, ctx.FS)
	st, err := e.Status()
	if err != nil {
		return err
	}
	present.RenderStatus(os.Stdout, st)
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
