package convert

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/261018-go-pkg-envjson/internal/command"
	"github.com/lwmacct/261018-go-pkg-envjson/internal/config"
	"github.com/lwmacct/261018-go-pkg-envjson/internal/version"
	"github.com/lwmacct/261018-go-pkg-envjson/pkg/dotenv"
)

func action(_ context.Context, cmd *cli.Command) error {
	// 先按 flag / 环境变量安装日志，配置加载过程的 Debug 日志才可见
	if err := command.SetupLogger(cmd.Root().ErrWriter, bootstrapLogLevel(cmd)); err != nil {
		return err
	}

	// 加载配置：默认值 → 配置文件 → 环境变量 → CLI flags
	opts := []config.Option{
		config.WithCommand(cmd),
		config.WithAppName(version.AppRawName),
		config.WithEnvPrefix(command.EnvPrefix),
	}
	if cmd.IsSet("config") {
		path := cmd.String("config")
		// 显式指定的配置文件必须存在
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("config file: %w", err)
		}
		opts = append(opts, config.WithConfigPaths(path))
	}

	cfg, err := config.Load(opts...)
	if err != nil {
		return err
	}
	if err := command.SetupLogger(cmd.Root().ErrWriter, cfg.Log.Level); err != nil {
		return err
	}

	return run(cfg, cmd.Root().Writer)
}

// bootstrapLogLevel 返回配置文件加载前即可确定的日志级别。
func bootstrapLogLevel(cmd *cli.Command) string {
	if cmd.IsSet("log-level") {
		return cmd.String("log-level")
	}
	if level := os.Getenv(command.EnvPrefix + "LOG_LEVEL"); level != "" {
		return level
	}

	return command.Defaults.Log.Level
}

// run 解析 .env 并写出结果，成功后向 w 输出提示。
//
// 解析失败时不会创建或修改输出文件。
func run(cfg *config.Config, w io.Writer) error {
	expansion, err := dotenv.ParseExpansion(cfg.Env.Expansion)
	if err != nil {
		return err
	}
	malformed, err := dotenv.ParseMalformedPolicy(cfg.Env.Malformed)
	if err != nil {
		return err
	}
	format, err := dotenv.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	slog.Debug("Converting env file",
		"input", cfg.Env.File,
		"output", cfg.Output.File,
		"format", string(format),
		"expansion", string(expansion),
	)

	m, err := dotenv.ParseFile(cfg.Env.File,
		dotenv.WithExpansion(expansion),
		dotenv.WithMalformedPolicy(malformed),
	)
	if err != nil {
		return err
	}

	err = dotenv.WriteFile(cfg.Output.File, m,
		dotenv.WithFormat(format),
		dotenv.WithIndent(cfg.Output.Indent),
	)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "Environment variables have been successfully converted to %s and saved to %s\n", format, cfg.Output.File)

	return err
}
