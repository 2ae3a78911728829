package dotenv

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	yamlv3 "go.yaml.in/yaml/v3"
)

// Format 输出格式。
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// DefaultIndent 默认缩进空格数。
const DefaultIndent = 4

// ParseFormat 将配置字符串转换为 [Format]。
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	}

	return "", fmt.Errorf("unknown output format %q (want json or yaml)", s)
}

// String 返回用于提示信息的大写名称。
func (f Format) String() string {
	return strings.ToUpper(string(f))
}

// writeOptions 序列化选项。
type writeOptions struct {
	format Format
	indent int
	perm   os.FileMode
}

// WriteOption 序列化选项函数。
type WriteOption func(*writeOptions)

// WithFormat 设置输出格式，默认 [FormatJSON]。
func WithFormat(f Format) WriteOption {
	return func(o *writeOptions) {
		o.format = f
	}
}

// WithIndent 设置缩进空格数，默认 [DefaultIndent]。
//
// JSON 中 0 表示紧凑输出；YAML 小于 2 时使用 yaml 库的默认缩进。
func WithIndent(n int) WriteOption {
	return func(o *writeOptions) {
		o.indent = n
	}
}

// WithPerm 设置新建文件的权限，默认 0644。
func WithPerm(perm os.FileMode) WriteOption {
	return func(o *writeOptions) {
		o.perm = perm
	}
}

func newWriteOptions(opts []WriteOption) *writeOptions {
	o := &writeOptions{
		format: FormatJSON,
		indent: DefaultIndent,
		perm:   0o644,
	}
	for _, opt := range opts {
		opt(o)
	}

	return o
}

// Encode 将 m 序列化为指定格式，结果以换行结尾。
func Encode(m *Mapping, opts ...WriteOption) ([]byte, error) {
	o := newWriteOptions(opts)

	switch o.format {
	case FormatJSON:
		return encodeJSON(m, o.indent)
	case FormatYAML:
		return encodeYAML(m, o.indent)
	}

	return nil, fmt.Errorf("unknown output format %q", string(o.format))
}

func encodeJSON(m *Mapping, indent int) ([]byte, error) {
	compact, err := m.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	if indent <= 0 {
		return append(compact, '\n'), nil
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, "", strings.Repeat(" ", indent)); err != nil {
		return nil, fmt.Errorf("indent json: %w", err)
	}
	buf.WriteByte('\n')

	return buf.Bytes(), nil
}

func encodeYAML(m *Mapping, indent int) ([]byte, error) {
	var buf bytes.Buffer
	enc := yamlv3.NewEncoder(&buf)
	if indent >= 2 {
		enc.SetIndent(indent)
	}
	if err := enc.Encode(m); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}

	return buf.Bytes(), nil
}

// WriteFile 序列化 m 并写入 path。
//
// 写入失败时返回的错误满足 errors.Is(err, [ErrWriteFailure])。
func WriteFile(path string, m *Mapping, opts ...WriteOption) error {
	o := newWriteOptions(opts)

	content, err := Encode(m, opts...)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, content, o.perm); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteFailure, path, err)
	}
	slog.Debug("Wrote output file", "path", path, "format", string(o.format), "bytes", len(content))

	return nil
}
