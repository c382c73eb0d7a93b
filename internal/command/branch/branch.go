package branch

import (
	"flag"
	"fmt"
	"os"

	"github.com/witvcs/wit/internal/command"
	"github.com/witvcs/wit/internal/engine"
	"github.com/witvcs/wit/internal/middleware"
	"github.com/witvcs/wit/internal/present"
)

type Command struct{}

func (c *Command) Name() string      { return "branch" }
func (c *Command) Aliases() []string { return []string{"br"} }
func (c *Command) Usage() string     { return "branch [name]" }
func (c *Command) Brief() string     { return "List branches or create a new one" }
func (c *Command) Help() string {
	return `Without arguments, list all branches and mark the active one. With a
name, create a new branch pointing at the current commit without
switching to it.

Usage:
  branch         - list branches
  branch <name>  - create a branch at the current commit`
}
func (c *Command) Subcommands() []command.Command { return nil }
func (c *Command) Flags(fs *flag.FlagSet)         {}

func (c *Command) Run(ctx *command.Context) error {
	e := engine.Open(ctx.Root, ctx.FS)

	if len(ctx.Args) == 0 {
		branches, err := e.Branches()
		if err != nil {
			return err
		}
		present.RenderBranches(os.Stdout, branches)
		return nil
	}

	name := ctx.Args[0]
	if err := e.Branch(name); err != nil {
		return err
	}
	fmt.Printf("Created branch %s\n", name)
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
