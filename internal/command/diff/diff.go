package diff

import (
	"flag"
	"fmt"
	"os"

	"github.com/witvcs/wit/internal/command"
	"github.com/witvcs/wit/internal/engine"
	"github.com/witvcs/wit/internal/middleware"
	"github.com/witvcs/wit/internal/present"
)

type Command struct {
	cached bool
}

func (c *Command) Name() string      { return "diff" }
func (c *Command) Aliases() []string { return nil }
func (c *Command) Usage() string     { return "diff [--cached] [<a> <b>]" }
func (c *Command) Brief() string     { return "Show line diffs between trees" }
func (c *Command) Help() string {
	return `Show textual line diffs. Without arguments, compare the staging area
against the working tree. With --cached, compare the current commit
against the staging area. With two refs, compare the two commits.

Usage:
  diff             - staging vs working tree
  diff --cached    - current commit vs staging
  diff <a> <b>     - commit a vs commit b (branch names or ids)`
}
func (c *Command) Subcommands() []command.Command { return nil }
func (c *Command) Flags(fs *flag.FlagSet) {
	fs.BoolVar(&c.cached, "cached", false, "compare the current commit against the staging area")
}

func (c *Command) Run(ctx *command.Context) error {
	e := engine.Open(ctx.Root, ctx.FS)

	var diffs []engine.FileDiff
	var err error
	switch {
	case len(ctx.Args) == 2:
		diffs, err = e.DiffCommits(ctx.Args[0], ctx.Args[1])
	case len(ctx.Args) != 0:
		return fmt.Errorf("usage: %s", c.Usage())
	case c.cached:
		diffs, err = e.DiffCached()
	default:
		diffs, err = e.DiffWork()
	}
	if err != nil {
		return err
	}

	present.RenderDiff(os.Stdout, diffs)
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
