package verify

import (
	"flag"
	"fmt"

	"github.com/witvcs/wit/internal/command"
	"github.com/witvcs/wit/internal/engine"
	"github.com/witvcs/wit/internal/middleware"
	"github.com/witvcs/wit/internal/vcserr"
)

type Command struct{}

func (c *Command) Name() string      { return "verify" }
func (c *Command) Aliases() []string { return nil }
func (c *Command) Usage() string     { return "verify" }
func (c *Command) Brief() string     { return "Check every snapshot against its recorded tree hash" }
func (c *Command) Help() string {
	return `Rehash every stored snapshot and compare it against the tree hash
recorded at commit time. Reports commits whose snapshot no longer
matches.`
}
func (c *Command) Subcommands() []command.Command { return nil }
func (c *Command) Flags(fs *flag.FlagSet)         {}

func (c *Command) Run(ctx *command.Context) error {
	e := engine.Open(ctx.Root, ctx.FS)
	bad, err := e.Verify()
	if err != nil {
		return err
	}

	if len(bad) > 0 {
		for _, id := range bad {
			fmt.Printf("corrupt: %s\n", id)
		}
		return fmt.Errorf("%d corrupt snapshot(s): %w", len(bad), vcserr.ErrCorruptStore)
	}
	fmt.Println("All snapshots verified")
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
