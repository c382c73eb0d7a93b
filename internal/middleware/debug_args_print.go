package middleware

import (
	"fmt"
	"os"

	"github.com/witvcs/wit/internal/command"
)

// WithDebugArgsPrint echoes the parsed arguments when WIT_DEBUG is set.
func WithDebugArgsPrint() command.Middleware {
	return func(cmd command.Command) command.Command {
		return &command.WrappedCommand{
			Command: cmd,
			Wrap: func(ctx *command.Context) error {
				if os.Getenv("WIT_DEBUG") != "" {
					fmt.Printf("Args: %+v\n", ctx.Args)
				}
				return cmd.Run(ctx)
			},
		}
	}
}
