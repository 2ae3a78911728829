package main

import (
	"context"
	"fmt"
	"os"

	"github.com/lwmacct/261018-go-pkg-envjson/internal/command"
	app "github.com/lwmacct/261018-go-pkg-envjson/internal/command/convert"
)

func main() {
	if err := app.Command.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(command.ExitCode(err))
	}
}
