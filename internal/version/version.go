// Package version 提供应用名称与构建版本信息。
package version

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/urfave/cli/v3"
)

// AppRawName 应用名称，用于配置文件搜索路径。
const AppRawName = "envjson"

// Version 构建版本，通过 -ldflags "-X .../internal/version.Version=v1.2.3" 注入。
var Version = ""

// GetVersion 返回构建版本；未注入时回退到模块版本信息。
func GetVersion() string {
	if Version != "" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}

	return "(devel)"
}

// Command 版本命令
var Command = &cli.Command{
	Name:  "version",
	Usage: "显示版本信息",
	Action: func(_ context.Context, cmd *cli.Command) error {
		_, err := fmt.Fprintf(cmd.Root().Writer, "%s %s\n", AppRawName, GetVersion())

		return err
	},
}
