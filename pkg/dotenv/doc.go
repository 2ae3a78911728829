// Package dotenv 解析 .env 文件并将结果序列化为 JSON / YAML。
//
// # 文件格式
//
//	# 注释行（去除首尾空白后以 # 开头）
//	NAME=value
//	QUOTED="value with spaces"
//	SINGLE='value'
//	URL=http://${HOST}:${PORT}/path
//
// 逐行处理规则：
//  1. 去除首尾空白；空行与注释行跳过（行中间的 # 属于值的一部分）
//  2. 按第一个 "=" 拆分为名称与值，值中可以继续包含 "="
//  3. 名称与值分别去除首尾空白
//  4. 值整体被一对 "" 或 '' 包围时去掉这对引号
//  5. 展开 ${NAME}，只能引用之前行已定义的名称
//  6. 写入 [Mapping]，重复名称以最后一次为准，位置保持首次出现处
//
// # 缺少 "=" 的行
//
// 默认中止解析并返回 [*LineError]；[WithMalformedPolicy]([MalformedSkip]) 可改为记录告警后跳过。
//
// # 快速开始
//
//	m, err := dotenv.ParseFile(".env")
//	if err != nil {
//	    return err
//	}
//	err = dotenv.WriteFile("env.json", m)
package dotenv
