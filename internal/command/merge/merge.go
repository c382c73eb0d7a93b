package merge

import (
	"flag"
	"fmt"

	"github.com/witvcs/wit/internal/command"
	"github.com/witvcs/wit/internal/engine"
	"github.com/witvcs/wit/internal/middleware"
)

type Command struct{}

func (c *Command) Name() string      { return "merge" }
func (c *Command) Aliases() []string { return nil }
func (c *Command) Usage() string     { return "merge <branch>" }
func (c *Command) Brief() string     { return "Merge another branch into the active branch" }
func (c *Command) Help() string {
	return `Fold another branch into the active branch and record a merge commit
with two parents. Paths the other branch added or changed since the
common ancestor replace the current versions. Requires a clean staging
area and an attached HEAD.

Usage:
  merge <branch>`
}
func (c *Command) Subcommands() []command.Command { return nil }
func (c *Command) Flags(fs *flag.FlagSet)         {}

func (c *Command) Run(ctx *command.Context) error {
	if len(ctx.Args) != 1 {
		return fmt.Errorf("usage: %s", c.Usage())
	}

	e := engine.Open(ctx.Root, ctx.FS)
	id, err := e.Merge(ctx.Args[0])
	if err != nil {
		return err
	}

	fmt.Println("Merge commit:", id)
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
