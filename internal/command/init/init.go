package init

import (
	"flag"
	"fmt"
	"os"

	"github.com/witvcs/wit/internal/command"
	"github.com/witvcs/wit/internal/config"
	"github.com/witvcs/wit/internal/engine"
	"github.com/witvcs/wit/internal/log"
	"github.com/witvcs/wit/internal/middleware"
)

type Command struct {
	hash string
}

func (c *Command) Name() string      { return "init" }
func (c *Command) Aliases() []string { return nil }
func (c *Command) Usage() string     { return "init [--hash xxh3|sha256] [directory]" }
func (c *Command) Brief() string     { return "Create an empty repository" }
func (c *Command) Help() string {
	return `Create an empty repository in the given directory (default: the
current directory). Safe to run again in an existing repository.

Usage:
  init                 - initialize the current directory
  init <dir>           - initialize <dir>
  init --hash sha256   - select the content hash algorithm`
}
func (c *Command) Subcommands() []command.Command { return nil }
func (c *Command) Flags(fs *flag.FlagSet) {
	fs.StringVar(&c.hash, "hash", "", "content hash algorithm (xxh3 or sha256)")
}

func (c *Command) Run(ctx *command.Context) error {
	dir := "."
	if len(ctx.Args) > 0 {
		dir = ctx.Args[0]
	}

	if c.hash != "" && c.hash != config.HashXXH3 && c.hash != config.HashSHA256 {
		return fmt.Errorf("unknown hash algorithm %q", c.hash)
	}

	_, created, err := engine.Init(dir, ctx.FS, c.hash)
	if err != nil {
		return err
	}

	abs := dir
	if a, err := os.Getwd(); err == nil && dir == "." {
		abs = a
	}
	log.Init(config.New(abs).LogFile())
	if created {
		fmt.Printf("Initialized empty repository in %s\n", config.New(abs).ControlPath())
	} else {
		fmt.Printf("Reinitialized existing repository in %s\n", config.New(abs).ControlPath())
	}
	return nil
}

func init() {
	command.RegisterCommand(
		command.ApplyMiddlewares(
			&Command{},
			middleware.WithDebugArgsPrint(),
		),
	)
}
