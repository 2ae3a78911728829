package dotenv

import (
	"bytes"
	"encoding/json"
	"iter"
	"maps"
	"slices"

	yamlv3 "go.yaml.in/yaml/v3"
)

// Mapping 是保持插入顺序的字符串映射。
//
// 覆盖已存在的名称只更新值，名称仍位于首次插入的位置。
// 零值可直接使用。
type Mapping struct {
	keys   []string
	values map[string]string
}

// NewMapping 返回空 Mapping。
func NewMapping() *Mapping {
	return &Mapping{values: make(map[string]string)}
}

// Set 写入 name → value。
func (m *Mapping) Set(name, value string) {
	if m.values == nil {
		m.values = make(map[string]string)
	}
	if _, ok := m.values[name]; !ok {
		m.keys = append(m.keys, name)
	}
	m.values[name] = value
}

// Get 返回 name 的值，未定义时返回空字符串。
func (m *Mapping) Get(name string) string {
	return m.values[name]
}

// Lookup 返回 name 的值以及是否已定义，签名与 os.LookupEnv 一致。
func (m *Mapping) Lookup(name string) (string, bool) {
	v, ok := m.values[name]
	return v, ok
}

// Len 返回名称数量。
func (m *Mapping) Len() int {
	return len(m.keys)
}

// Keys 按插入顺序返回名称副本。
func (m *Mapping) Keys() []string {
	return slices.Clone(m.keys)
}

// All 按插入顺序遍历 name, value。
func (m *Mapping) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

// Map 返回无序的普通 map 副本。
func (m *Mapping) Map() map[string]string {
	if m.values == nil {
		return map[string]string{}
	}

	return maps.Clone(m.values)
}

// MarshalJSON 按插入顺序输出紧凑的 JSON 对象，不转义 HTML 字符。
func (m *Mapping) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	buf.WriteByte('{')
	for i, key := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		// Encode 会追加换行，写完立即去掉
		if err := enc.Encode(key); err != nil {
			return nil, err
		}
		buf.Truncate(buf.Len() - 1)
		buf.WriteByte(':')
		if err := enc.Encode(m.values[key]); err != nil {
			return nil, err
		}
		buf.Truncate(buf.Len() - 1)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// MarshalYAML 返回有序的 mapping 节点，所有标量都标记为 !!str。
func (m *Mapping) MarshalYAML() (any, error) {
	node := &yamlv3.Node{Kind: yamlv3.MappingNode, Tag: "!!map"}
	for key, value := range m.All() {
		node.Content = append(node.Content, strNode(key), strNode(value))
	}

	return node, nil
}

func strNode(s string) *yamlv3.Node {
	return &yamlv3.Node{Kind: yamlv3.ScalarNode, Tag: "!!str", Value: s}
}
