package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/261018-go-pkg-envjson/internal/command"
	"github.com/lwmacct/261018-go-pkg-envjson/internal/command/convert"
	"github.com/lwmacct/261018-go-pkg-envjson/internal/version"
)

// newApp 构建命令树；不带子命令时直接执行转换。
func newApp() *cli.Command {
	conv := convert.NewCommand()

	return &cli.Command{
		Name:    version.AppRawName,
		Usage:   "将 .env 文件转换为 JSON",
		Version: version.GetVersion(),
		Flags:   convert.Flags(),
		Action:  conv.Action,
		Commands: []*cli.Command{
			version.Command,
			conv,
		},
	}
}

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(command.ExitCode(err))
	}
}
