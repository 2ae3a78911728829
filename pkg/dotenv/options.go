package dotenv

import "fmt"

// Expansion 选择值中 ${...} 的展开方式。
type Expansion string

const (
	// ExpansionSimple 仅替换 ${NAME}，未定义为空字符串（默认）。
	ExpansionSimple Expansion = "simple"
	// ExpansionShell 支持 ${NAME:-default} 等 Shell 参数展开。
	ExpansionShell Expansion = "shell"
	// ExpansionNone 保留原始值。
	ExpansionNone Expansion = "none"
)

// MalformedPolicy 决定缺少 "=" 的行如何处理。
type MalformedPolicy string

const (
	// MalformedError 中止解析（默认）。
	MalformedError MalformedPolicy = "error"
	// MalformedSkip 记录告警后跳过该行。
	MalformedSkip MalformedPolicy = "skip"
)

// ParseExpansion 将配置字符串转换为 [Expansion]。
func ParseExpansion(s string) (Expansion, error) {
	switch e := Expansion(s); e {
	case ExpansionSimple, ExpansionShell, ExpansionNone:
		return e, nil
	}

	return "", fmt.Errorf("unknown expansion mode %q (want simple, shell or none)", s)
}

// ParseMalformedPolicy 将配置字符串转换为 [MalformedPolicy]。
func ParseMalformedPolicy(s string) (MalformedPolicy, error) {
	switch p := MalformedPolicy(s); p {
	case MalformedError, MalformedSkip:
		return p, nil
	}

	return "", fmt.Errorf("unknown malformed line policy %q (want error or skip)", s)
}

// options 解析选项。
type options struct {
	expansion Expansion
	malformed MalformedPolicy
}

// Option 解析选项函数。
type Option func(*options)

// WithExpansion 设置展开方式，默认 [ExpansionSimple]。
func WithExpansion(e Expansion) Option {
	return func(o *options) {
		o.expansion = e
	}
}

// WithMalformedPolicy 设置缺少 "=" 的行的处理方式，默认 [MalformedError]。
func WithMalformedPolicy(p MalformedPolicy) Option {
	return func(o *options) {
		o.malformed = p
	}
}
