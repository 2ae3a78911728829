// Package templexp 提供 ${...} 变量展开。
//
// 两种语义：
//
//   - [ExpandBraces]：dotenv 风格，仅识别 ${NAME}，单次扫描，不支持转义与默认值
//   - [ExpandShell]：Shell 参数展开子集，支持默认值、替代值、必填校验与 "$$" 字面量
//
// 变量来源由调用方以 [Lookup] 提供，包本身不持有状态。
// [ExpandTemplate] 以进程环境变量作为来源，用于配置文件内容的展开。
//
// # 设计参考
//
//   - Bash 参数展开: https://www.gnu.org/software/bash/manual/bash.html#Shell-Parameter-Expansion
//
// # 语义说明
//
//  1. 仅做字符串层面的替换（不解析 $VAR）
//  2. ":=" 赋值仅作用于当前展开过程，不回写 Lookup 的数据源
//  3. 无法识别的表达式保持原样
//
// # 快速开始
//
//	vars := map[string]string{"HOST": "db"}
//	lookup := func(name string) (string, bool) { v, ok := vars[name]; return v, ok }
//
//	templexp.ExpandBraces("postgres://${HOST}/app", lookup) // postgres://db/app
//	templexp.ExpandShell("${PORT:-5432}", lookup)           // 5432
package templexp
