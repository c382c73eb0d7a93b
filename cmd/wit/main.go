package main

import (
	"os"

	"github.com/witvcs/wit/internal/command"

	_ "github.com/witvcs/wit/internal/command/add"
	_ "github.com/witvcs/wit/internal/command/branch"
	_ "github.com/witvcs/wit/internal/command/checkout"
	_ "github.com/witvcs/wit/internal/command/commit"
	_ "github.com/witvcs/wit/internal/command/diff"
	_ "github.com/witvcs/wit/internal/command/graph"
	_ "github.com/witvcs/wit/internal/command/help"
	_ "github.com/witvcs/wit/internal/command/init"
	_ "github.com/witvcs/wit/internal/command/log"
	_ "github.com/witvcs/wit/internal/command/merge"
	_ "github.com/witvcs/wit/internal/command/status"
	_ "github.com/witvcs/wit/internal/command/verify"
)

func main() {
	os.Exit(command.RunCLI(os.Args[1:]))
}
