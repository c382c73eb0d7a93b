package middleware

import (
	"os"

	"github.com/witvcs/wit/internal/command"
	"github.com/witvcs/wit/internal/config"
	"github.com/witvcs/wit/internal/log"
)

// WithRepoCheck resolves the repository root from the working directory
// before the command runs, fills it into the context and points the logger
// at the repository log file. Commands behind this middleware can assume
// ctx.Root is a valid repository.
func WithRepoCheck() command.Middleware {
	return func(cmd command.Command) command.Command {
		return &command.WrappedCommand{
			Command: cmd,
			Wrap: func(ctx *command.Context) error {
				cwd, err := os.Getwd()
				if err != nil {
					return err
				}
				root, err := config.FindRoot(cwd)
				if err != nil {
					return err
				}
				ctx.Root = root
				log.Init(config.New(root).LogFile())
				return cmd.Run(ctx)
			},
		}
	}
}
