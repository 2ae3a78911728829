// Package command 提供命令行功能的公共部分。
package command

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/lwmacct/261018-go-pkg-envjson/internal/config"
	"github.com/lwmacct/261018-go-pkg-envjson/pkg/dotenv"
)

// Defaults 为默认配置的单一来源。
var Defaults = config.DefaultConfig()

// EnvPrefix 环境变量前缀，如 ENVJSON_OUTPUT_FILE → output.file。
const EnvPrefix = "ENVJSON_"

// 进程退出码
const (
	ExitOK        = 0
	ExitFailure   = 1
	ExitNotFound  = 2
	ExitWrite     = 3
	ExitMalformed = 4
)

// ExitCode 将错误映射为进程退出码。
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, dotenv.ErrSourceNotFound):
		return ExitNotFound
	case errors.Is(err, dotenv.ErrWriteFailure):
		return ExitWrite
	}

	var lineErr *dotenv.LineError
	if errors.As(err, &lineErr) {
		return ExitMalformed
	}

	return ExitFailure
}

// SetupLogger 以 level 安装写入 w 的默认 slog 文本日志。
func SetupLogger(w io.Writer, level string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})))

	return nil
}
