package commit

import (
	"flag"
	"fmt"
	"strings"

	"github.com/witvcs/wit/internal/command"
	"github.com/witvcs/wit/internal/engine"
	"github.com/witvcs/wit/internal/middleware"
)

type Command struct{}

func (c *Command) Name() string      { return "commit" }
func (c *Command) Aliases() []string { return []string{"ci"} }
func (c *Command) Usage() string     { return `commit -m "<message>"` }
func (c *Command) Brief() string     { return "Record the staging area as a new commit" }
func (c *Command) Help() string {
	return `Freeze the staging area into a new commit and advance the current
branch. Fails when nothing changed against the current commit.

Usage:
  commit -m "<message>"  - commit with a given message
  commit <message>       - same, message as a bare argument`
}
func (c *Command) Subcommands() []command.Command { return nil }
func (c *Command) Flags(fs *flag.FlagSet)         {}

func (c *Command) Run(ctx *command.Context) error {
	var messages []string

	for i := 0; i < len(ctx.Args); i++ {
		arg := ctx.Args[i]
		switch {
		case arg == "-m" && i+1 < len(ctx.Args):
			messages = append(messages, ctx.Args[i+1])
			i++
		case strings.HasPrefix(arg, "-m="):
			messages = append(messages, strings.TrimPrefix(arg, "-m="))
		case arg == "--message" && i+1 < len(ctx.Args):
			messages = append(messages, ctx.Args[i+1])
			i++
		case strings.HasPrefix(arg, "--message="):
			messages = append(messages, strings.TrimPrefix(arg, "--message="))
		default:
			if len(messages) == 0 {
				messages = append(messages, arg)
			}
		}
	}

	if len(messages) == 0 {
		return fmt.Errorf("commit message required (use -m or pass message directly)")
	}
	message := strings.Join(messages, "\n\n")

	e := engine.Open(ctx.Root, ctx.FS)
	id, err := e.Commit(message, "")
	if err != nil {
		return err
	}

	fmt.Println("Committed:", id)
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
