package graph

import (
	"flag"
	"fmt"
	"os"

	"github.com/witvcs/wit/internal/command"
	"github.com/witvcs/wit/internal/config"
	"github.com/witvcs/wit/internal/engine"
	"github.com/witvcs/wit/internal/middleware"
	"github.com/witvcs/wit/internal/present"
	"github.com/witvcs/wit/internal/util"
)

type Command struct {
	output string
}

func (c *Command) Name() string      { return "graph" }
func (c *Command) Aliases() []string { return nil }
func (c *Command) Usage() string     { return "graph [-o file]" }
func (c *Command) Brief() string     { return "Render the commit graph in dot format" }
func (c *Command) Help() string {
	return `Render every commit reachable from the current commit as a Graphviz
dot graph. Written to the control directory by default; -o - prints to
stdout.

Usage:
  graph           - write the graph file into the control directory
  graph -o <file> - write to <file>, or stdout with -`
}
func (c *Command) Subcommands() []command.Command { return nil }
func (c *Command) Flags(fs *flag.FlagSet) {
	fs.StringVar(&c.output, "o", "", "output file (- for stdout)")
}

func (c *Command) Run(ctx *command.Context) error {
	e := engine.Open(ctx.Root, ctx.FS)
	nodes, err := e.GraphNodes()
	if err != nil {
		return err
	}
	data := present.DOT(nodes)

	if c.output == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}

	out := c.output
	if out == "" {
		out = config.New(ctx.Root).GraphFile()
	}
	if err := util.WriteFileAtomic(ctx.FS, out, data); err != nil {
		return err
	}
	fmt.Printf("Graph written to %s\n", out)
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
