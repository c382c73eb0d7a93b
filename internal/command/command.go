// Package command implements the CLI command tree: registration, argument
// resolution, middleware wrapping and the runner.
package command

import (
	"flag"

	"github.com/witvcs/wit/internal/fs"
)

// Command is one cli command.
type Command interface {
	Name() string
	Aliases() []string
	Usage() string
	Brief() string
	Help() string
	Subcommands() []Command
	Flags(fs *flag.FlagSet)
	Run(ctx *Context) error
}

// Context carries the parsed invocation into a command. Root is the
// resolved repository root; it is empty until the repo-check middleware
// fills it in.
type Context struct {
	Args  []string
	Flags *flag.FlagSet
	Root  string
	FS    fs.FS
}
