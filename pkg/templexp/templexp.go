package templexp

import (
	"fmt"
	"os"
	"strings"
)

// Lookup 按名称查询变量值，第二个返回值表示变量是否已定义。
type Lookup func(name string) (string, bool)

// ═══════════════════════════════════════════════════════════════════════════
// 变量作用域
// ═══════════════════════════════════════════════════════════════════════════

// scope 在只读的 Lookup 之上叠加一层本次展开内有效的赋值。
//
// ":=" / "=" 只写入 assigned，不会回写到调用方的数据源。
type scope struct {
	lookup   Lookup
	assigned map[string]string
}

func newScope(lookup Lookup) *scope {
	if lookup == nil {
		lookup = func(string) (string, bool) { return "", false }
	}

	return &scope{lookup: lookup}
}

func (s *scope) get(name string) (string, bool) {
	if val, ok := s.assigned[name]; ok {
		return val, true
	}

	return s.lookup(name)
}

func (s *scope) set(name, val string) {
	if s.assigned == nil {
		s.assigned = make(map[string]string)
	}
	s.assigned[name] = val
}

// ═══════════════════════════════════════════════════════════════════════════
// 简单展开 (dotenv 语义)
// ═══════════════════════════════════════════════════════════════════════════

// ExpandBraces 将 text 中的每个 ${NAME} 替换为 lookup(NAME) 的值。
//
// 规则：
//   - NAME 为 "${" 与其后第一个 "}" 之间的全部字符，且至少一个字符
//   - 未定义的变量替换为空字符串
//   - 从左到右单次扫描，替换结果不会再次展开
//   - "${}" 与缺少 "}" 的 "${" 原样保留
func ExpandBraces(text string, lookup Lookup) string {
	if !strings.Contains(text, "${") {
		return text
	}
	sc := newScope(lookup)

	var buf strings.Builder
	buf.Grow(len(text))

	for i := 0; i < len(text); {
		if !strings.HasPrefix(text[i:], "${") {
			buf.WriteByte(text[i])
			i++
			continue
		}

		end := strings.IndexByte(text[i+2:], '}')
		if end <= 0 {
			// 无闭合括号或名称为空
			buf.WriteByte(text[i])
			i++
			continue
		}

		val, _ := sc.get(text[i+2 : i+2+end])
		buf.WriteString(val)
		i += end + 3
	}

	return buf.String()
}

// ═══════════════════════════════════════════════════════════════════════════
// Shell Parameter Expansion
// ═══════════════════════════════════════════════════════════════════════════

func isVarNameStart(ch byte) bool {
	return (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z') || ch == '_'
}

func isVarNameChar(ch byte) bool {
	return isVarNameStart(ch) || (ch >= '0' && ch <= '9')
}

// parseShellParameter 拆分 ${...} 内部表达式为 名称、操作符、word。
func parseShellParameter(expr string) (name, op, word string, ok bool) {
	if expr == "" || !isVarNameStart(expr[0]) {
		return "", "", "", false
	}

	i := 1
	for i < len(expr) && isVarNameChar(expr[i]) {
		i++
	}

	name, rest := expr[:i], expr[i:]
	if rest == "" {
		return name, "", "", true
	}

	if len(rest) >= 2 && rest[0] == ':' {
		switch rest[1] {
		case '-', '+', '?', '=':
			return name, rest[:2], rest[2:], true
		}
	}

	switch rest[0] {
	case '-', '+', '?', '=':
		return name, rest[:1], rest[1:], true
	}

	return "", "", "", false
}

func errorMessage(name, word string) error {
	if word == "" {
		return fmt.Errorf("templexp: %s: parameter null or not set", name)
	}

	return fmt.Errorf("templexp: %s: %s", name, word)
}

func (s *scope) expandWord(word string) (string, error) {
	if !strings.Contains(word, "${") {
		return word, nil
	}

	return s.expandParameters(word)
}

// expandExpression 计算单个 ${...} 表达式。
//
// 第二个返回值为 false 表示表达式无法识别，调用方应保留原文。
func (s *scope) expandExpression(expr string) (string, bool, error) {
	name, op, word, ok := parseShellParameter(expr)
	if !ok {
		return "", false, nil
	}

	val, isSet := s.get(name)
	// 带冒号的操作符将空值视同未设置
	missing := !isSet
	if strings.HasPrefix(op, ":") {
		missing = !isSet || val == ""
	}

	switch op {
	case "":
		return val, true, nil
	case ":-", "-":
		if missing {
			out, err := s.expandWord(word)
			return out, err == nil, err
		}
		return val, true, nil
	case ":+", "+":
		if !missing {
			out, err := s.expandWord(word)
			return out, err == nil, err
		}
		return "", true, nil
	case ":?", "?":
		if missing {
			return "", false, errorMessage(name, word)
		}
		return val, true, nil
	case ":=", "=":
		if missing {
			out, err := s.expandWord(word)
			if err != nil {
				return "", false, err
			}
			s.set(name, out)
			return out, true, nil
		}
		return val, true, nil
	}

	return "", false, nil
}

func (s *scope) expandParameters(text string) (string, error) {
	var buf strings.Builder
	buf.Grow(len(text))

	for i := 0; i < len(text); {
		ch := text[i]
		if ch != '$' || i+1 >= len(text) {
			buf.WriteByte(ch)
			i++
			continue
		}

		switch text[i+1] {
		case '$':
			buf.WriteByte('$')
			i += 2
			continue
		case '{':
		default:
			buf.WriteByte(ch)
			i++
			continue
		}

		end := findMatchingBrace(text, i+2)
		if end == -1 {
			buf.WriteByte(ch)
			i++
			continue
		}

		expanded, ok, err := s.expandExpression(text[i+2 : end])
		if err != nil {
			return "", err
		}
		if ok {
			buf.WriteString(expanded)
		} else {
			buf.WriteString(text[i : end+1])
		}

		i = end + 1
	}

	return buf.String(), nil
}

func findMatchingBrace(text string, start int) int {
	depth := 0
	for i := start; i < len(text); i++ {
		if text[i] == '$' && i+1 < len(text) && text[i+1] == '{' {
			depth++
			i++
			continue
		}
		if text[i] == '}' {
			if depth == 0 {
				return i
			}
			depth--
		}
	}

	return -1
}

// ExpandShell 对 text 执行 Shell 参数展开，变量取自 lookup。
//
// 支持语法：
//   - ${VAR} - 变量替换
//   - ${VAR:-default} / ${VAR-default} - fallback
//   - ${VAR:+alt} / ${VAR+alt} - 替代值
//   - ${VAR:?msg} / ${VAR?msg} - 必填校验
//   - ${VAR:=default} / ${VAR=default} - 赋值（仅作用于当前展开）
//   - $$ - 字面量 "$"
//
// 仅在必填校验失败时返回 error。
func ExpandShell(text string, lookup Lookup) (string, error) {
	return newScope(lookup).expandParameters(text)
}

// ═══════════════════════════════════════════════════════════════════════════
// 模板渲染
// ═══════════════════════════════════════════════════════════════════════════

// ExpandTemplate 使用当前进程环境变量执行 [ExpandShell]。
func ExpandTemplate(text string) (string, error) {
	return ExpandShell(text, os.LookupEnv)
}
