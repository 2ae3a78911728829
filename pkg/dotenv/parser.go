package dotenv

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/lwmacct/261018-go-pkg-envjson/pkg/templexp"
)

// trimCutset 与常见脚本语言 trim() 的默认字符集一致。
const trimCutset = " \t\n\r\x00\x0B"

const bom = "\uFEFF"

// ParseFile 读取并解析 path 指向的 .env 文件。
//
// 文件不存在时返回的错误满足 errors.Is(err, [ErrSourceNotFound])。
func ParseFile(path string, opts ...Option) (*Mapping, error) {
	f, err := os.Open(path) //nolint:gosec // path is supplied by the user on purpose
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}

		return nil, fmt.Errorf("read env file %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	m, err := Parse(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	slog.Debug("Parsed env file", "path", path, "count", m.Len())

	return m, nil
}

// Parse 从 r 逐行解析 .env 内容。
func Parse(r io.Reader, opts ...Option) (*Mapping, error) {
	o := &options{
		expansion: ExpansionSimple,
		malformed: MalformedError,
	}
	for _, opt := range opts {
		opt(o)
	}

	m := NewMapping()
	br := bufio.NewReader(r)

	// 行长度不设上限
	for lineNo := 1; ; lineNo++ {
		line, readErr := br.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return nil, fmt.Errorf("read line %d: %w", lineNo, readErr)
		}
		if line != "" {
			if lineNo == 1 {
				line = strings.TrimPrefix(line, bom)
			}
			if err := parseLine(m, lineNo, line, o); err != nil {
				return nil, err
			}
		}
		if readErr != nil {
			return m, nil
		}
	}
}

// parseLine 处理单行并写入 m，空行与注释行直接返回。
func parseLine(m *Mapping, lineNo int, line string, o *options) error {
	trimmed := strings.Trim(line, trimCutset)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil
	}

	name, value, ok := strings.Cut(trimmed, "=")
	if !ok {
		if o.malformed == MalformedSkip {
			slog.Warn("Skipping line without '=' separator", "line", lineNo)

			return nil
		}

		return &LineError{Line: lineNo, Err: ErrMalformedLine}
	}

	name = strings.Trim(name, trimCutset)
	value = unquote(strings.Trim(value, trimCutset))

	expanded, err := expand(value, m, o.expansion)
	if err != nil {
		return &LineError{Line: lineNo, Err: err}
	}
	m.Set(name, expanded)

	return nil
}

// unquote 去掉整体包围值的一对双引号或单引号。
func unquote(value string) string {
	if len(value) < 2 {
		return value
	}
	first, last := value[0], value[len(value)-1]
	if first == last && (first == '"' || first == '\'') {
		return value[1 : len(value)-1]
	}

	return value
}

func expand(value string, m *Mapping, mode Expansion) (string, error) {
	switch mode {
	case ExpansionNone:
		return value, nil
	case ExpansionShell:
		return templexp.ExpandShell(value, m.Lookup)
	default:
		return templexp.ExpandBraces(value, m.Lookup), nil
	}
}
