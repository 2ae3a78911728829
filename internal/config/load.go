package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/261018-go-pkg-envjson/pkg/templexp"
)

// DefaultPaths 返回默认配置文件的搜索顺序。
//
// 返回顺序即查找顺序，先命中的文件生效。
//
// 提供 appName 时只搜索应用专属路径 (从高到低)：
//  1. ./.appname.yaml - 当前目录应用配置
//  2. ~/.appname.yaml - 用户主目录配置
//  3. /etc/appname/config.yaml - 系统级配置
//
// 未提供时搜索通用路径 config.yaml、config/config.yaml。
// 通用文件常属于同目录下的其他程序，因此两组路径不会混用。
func DefaultPaths(appName ...string) []string {
	if len(appName) == 0 || appName[0] == "" {
		return []string{"config.yaml", "config/config.yaml"}
	}

	name := appName[0]
	paths := []string{"." + name + ".yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, "."+name+".yaml"))
	}

	return append(paths, "/etc/"+name+"/config.yaml")
}

// Load 读取配置并按优先级合并。
//
// 优先级 (从低到高)：
//  1. 默认值 - [DefaultConfig]
//  2. 配置文件 - [WithConfigPaths] / [WithAppName]
//  3. 环境变量(前缀) - [WithEnvPrefix]
//  4. CLI flags - [WithCommand]
//
// 配置 key 由 json tag 定义，YAML 与 JSON 共享同一套 key。
func Load(opts ...Option) (*Config, error) {
	options := &options{}
	for _, opt := range opts {
		opt(options)
	}

	if len(options.configPaths) == 0 {
		options.configPaths = DefaultPaths(options.appName)
	}

	defaults := DefaultConfig()
	configMap := structToMap(defaults)

	// 2️⃣ 配置文件 (按顺序搜索，找到第一个即停止)
	fileMap, err := loadFirstFile(options)
	if err != nil {
		return nil, err
	}
	mergeMaps(configMap, fileMap)

	// 3️⃣ 环境变量
	if options.envPrefix != "" {
		bindings := generateEnvBindings(options.envPrefix, collectConfigKeys(reflect.TypeOf(defaults)))
		for envKey, configPath := range bindings {
			if val := os.Getenv(envKey); val != "" {
				setByPath(configMap, configPath, val)
				slog.Debug("Loaded env binding", "env", envKey, "path", configPath)
			}
		}
	}

	// 4️⃣ CLI flags (仅当用户明确指定时)
	if options.cmd != nil {
		applyCLIFlags(options.cmd, configMap, reflect.TypeOf(defaults), "")
	}

	var cfg Config
	if err := decodeConfigMap(configMap, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// loadFirstFile 返回首个可读配置文件的内容，均不存在时返回 nil。
func loadFirstFile(o *options) (map[string]any, error) {
	for _, path := range o.configPaths {
		if o.baseDir != "" && !filepath.IsAbs(path) {
			path = filepath.Join(o.baseDir, path)
		}

		content, err := os.ReadFile(path) //nolint:gosec // path is from trusted config
		if err != nil {
			continue
		}

		if !o.noTemplateExpansion {
			expanded, expandErr := templexp.ExpandTemplate(string(content))
			if expandErr != nil {
				return nil, fmt.Errorf("expand template in %s: %w", path, expandErr)
			}
			content = []byte(expanded)
		}

		fileMap, err := parseConfigBytes(path, content)
		if err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
		slog.Debug("Loaded config from file", "path", path, "templateExpansion", !o.noTemplateExpansion)

		return fileMap, nil
	}

	slog.Debug("No config file found, using defaults")

	return nil, nil
}

// collectConfigKeys 递归收集结构体的叶子 key（如 output.indent）。
func collectConfigKeys(typ reflect.Type) []string {
	var keys []string
	walkConfigFields(typ, "", func(fullKey string, _ reflect.Type) {
		keys = append(keys, fullKey)
	})

	return keys
}

// walkConfigFields 以 json tag 拼接完整 key，对每个叶子字段调用 fn。
func walkConfigFields(typ reflect.Type, prefix string, fn func(fullKey string, fieldType reflect.Type)) {
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return
	}

	for i := range typ.NumField() {
		field := typ.Field(i)
		key := configTagName(field)
		if key == "" {
			continue
		}

		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		if isStructType(field.Type) {
			walkConfigFields(field.Type, fullKey, fn)

			continue
		}

		fn(fullKey, field.Type)
	}
}

// generateEnvBindings 根据配置 key 生成环境变量映射。
//
// 示例 (前缀 "ENVJSON_")：
//   - env.file → ENVJSON_ENV_FILE
//   - output.indent → ENVJSON_OUTPUT_INDENT
func generateEnvBindings(prefix string, keys []string) map[string]string {
	replacer := strings.NewReplacer(".", "_", "-", "_")
	bindings := make(map[string]string, len(keys))
	for _, key := range keys {
		bindings[prefix+strings.ToUpper(replacer.Replace(key))] = key
	}

	return bindings
}

// applyCLIFlags 将用户显式设置的 CLI flags 写入配置 map。
//
// flag 名称由 key 中的 "." 替换为 "-" 得到，如 output.file → --output-file。
func applyCLIFlags(cmd *cli.Command, config map[string]any, typ reflect.Type, prefix string) {
	walkConfigFields(typ, prefix, func(fullKey string, fieldType reflect.Type) {
		flag := strings.ReplaceAll(fullKey, ".", "-")
		if !cmd.IsSet(flag) {
			return
		}

		switch fieldType.Kind() {
		case reflect.String:
			setByPath(config, fullKey, cmd.String(flag))
		case reflect.Bool:
			setByPath(config, fullKey, cmd.Bool(flag))
		case reflect.Int:
			setByPath(config, fullKey, cmd.Int(flag))
		default:
			// 不支持的类型，忽略
		}
		slog.Debug("Loaded CLI flag", "flag", flag, "path", fullKey)
	})
}
