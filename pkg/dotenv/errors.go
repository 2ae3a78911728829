package dotenv

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceNotFound 输入文件不存在。
	ErrSourceNotFound = errors.New("file not found")
	// ErrWriteFailure 输出文件无法写入。
	ErrWriteFailure = errors.New("failed to write to file")
	// ErrMalformedLine 非注释行缺少 "=" 分隔符。
	ErrMalformedLine = errors.New("missing '=' separator")
)

// LineError 记录解析失败的行号（从 1 开始）。
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
