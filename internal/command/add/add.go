package add

import (
	"flag"
	"fmt"

	"github.com/witvcs/wit/internal/command"
	"github.com/witvcs/wit/internal/engine"
	"github.com/witvcs/wit/internal/middleware"
)

type Command struct{}

func (c *Command) Name() string      { return "add" }
func (c *Command) Aliases() []string { return nil }
func (c *Command) Usage() string     { return "add <path>..." }
func (c *Command) Brief() string     { return "Stage files or directories for the next commit" }
func (c *Command) Help() string {
	return `Copy files or directory trees into the staging area. Staging a
directory stages everything beneath it. Re-adding a path replaces the
staged copy.

Usage:
  add <path>...`
}
func (c *Command) Subcommands() []command.Command { return nil }
func (c *Command) Flags(fs *flag.FlagSet)         {}

func (c *Command) Run(ctx *command.Context) error {
	if len(ctx.Args) == 0 {
		return fmt.Errorf("nothing specified, nothing added")
	}

	e := engine.Open(ctx.Root, ctx.FS)
	for _, path := range ctx.Args {
		if err := e.Add(path); err != nil {
			return err
		}
	}
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
