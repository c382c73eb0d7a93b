package checkout

import (
	"flag"
	"fmt"

	"github.com/witvcs/wit/internal/command"
	"github.com/witvcs/wit/internal/engine"
	"github.com/witvcs/wit/internal/middleware"
)

type Command struct{}

func (c *Command) Name() string      { return "checkout" }
func (c *Command) Aliases() []string { return []string{"co"} }
func (c *Command) Usage() string     { return "checkout <branch|commit>" }
func (c *Command) Brief() string     { return "Restore the working tree from a branch or commit" }
func (c *Command) Help() string {
	return `Restore the working tree and staging area from the snapshot of a
branch or commit id. Checking out a commit id detaches from any branch.
Refused while staged or unstaged changes exist; untracked files are left
alone.

Usage:
  checkout <branch>
  checkout <commit-id>`
}
func (c *Command) Subcommands() []command.Command { return nil }
func (c *Command) Flags(fs *flag.FlagSet)         {}

func (c *Command) Run(ctx *command.Context) error {
	if len(ctx.Args) != 1 {
		return fmt.Errorf("usage: %s", c.Usage())
	}

	e := engine.Open(ctx.Root, ctx.FS)
	id, err := e.Checkout(ctx.Args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Checked out %s at %s\n", ctx.Args[0], id)
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
