// Package convert 提供 .env → JSON 转换命令。
package convert

import (
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/261018-go-pkg-envjson/internal/command"
)

// Command 转换命令
var Command = NewCommand()

// NewCommand 返回一个新的转换命令，供需要多次构建命令树的调用方使用。
func NewCommand() *cli.Command {
	return &cli.Command{
		Name:   "convert",
		Usage:  "将 .env 文件转换为 JSON",
		Action: action,
		Flags:  Flags(),
	}
}

// Flags 返回转换命令的一组新 flags。
//
// flag 对象记录解析状态，根命令与子命令须各持一份。
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "配置文件路径（默认按搜索路径查找）",
		},
		&cli.StringFlag{
			Name:    "env-file",
			Aliases: []string{"i"},
			Value:   command.Defaults.Env.File,
			Usage:   ".env 文件路径",
		},
		&cli.StringFlag{
			Name:  "env-expansion",
			Value: command.Defaults.Env.Expansion,
			Usage: "变量展开方式 (simple|shell|none)",
		},
		&cli.StringFlag{
			Name:  "env-malformed",
			Value: command.Defaults.Env.Malformed,
			Usage: "缺少 '=' 的行的处理方式 (error|skip)",
		},
		&cli.StringFlag{
			Name:    "output-file",
			Aliases: []string{"o"},
			Value:   command.Defaults.Output.File,
			Usage:   "输出文件路径",
		},
		&cli.StringFlag{
			Name:    "output-format",
			Aliases: []string{"f"},
			Value:   command.Defaults.Output.Format,
			Usage:   "输出格式 (json|yaml)",
		},
		&cli.IntFlag{
			Name:  "output-indent",
			Value: command.Defaults.Output.Indent,
			Usage: "缩进空格数，0 为紧凑输出",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Value: command.Defaults.Log.Level,
			Usage: "日志级别 (debug|info|warn|error)",
		},
	}
}
