// Package config 提供应用配置管理。
//
// 配置加载优先级 (从低到高)：
//  1. 默认值 - DefaultConfig() 函数中定义
//  2. 配置文件 - 通过 WithAppName / WithConfigPaths 选项设置
//  3. 环境变量 - 通过 WithEnvPrefix 选项启用
//  4. CLI flags - 通过 WithCommand 选项设置
package config

// Config 应用配置。
type Config struct {
	Env    EnvConfig    `json:"env" desc:".env 输入配置"`
	Output OutputConfig `json:"output" desc:"输出配置"`
	Log    LogConfig    `json:"log" desc:"日志配置"`
}

// EnvConfig .env 输入配置。
type EnvConfig struct {
	File      string `json:"file" desc:".env 文件路径"`
	Expansion string `json:"expansion" desc:"变量展开方式 (simple|shell|none)"`
	Malformed string `json:"malformed" desc:"缺少 '=' 的行的处理方式 (error|skip)"`
}

// OutputConfig 输出配置。
type OutputConfig struct {
	File   string `json:"file" desc:"输出文件路径"`
	Format string `json:"format" desc:"输出格式 (json|yaml)"`
	Indent int    `json:"indent" desc:"缩进空格数，0 为紧凑输出"`
}

// LogConfig 日志配置。
type LogConfig struct {
	Level string `json:"level" desc:"日志级别 (debug|info|warn|error)"`
}

// DefaultConfig 返回默认配置。
// 注意：internal/command/command.go 中的 Defaults 变量引用此函数以实现单一配置来源。
func DefaultConfig() Config {
	return Config{
		Env: EnvConfig{
			File:      ".env",
			Expansion: "simple",
			Malformed: "error",
		},
		Output: OutputConfig{
			File:   "env.json",
			Format: "json",
			Indent: 4,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
