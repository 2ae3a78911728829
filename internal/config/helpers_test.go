package config

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateEnvBindings(t *testing.T) {
	keys := collectConfigKeys(reflect.TypeOf(DefaultConfig()))
	assert.Equal(t, []string{
		"env.file", "env.expansion", "env.malformed",
		"output.file", "output.format", "output.indent",
		"log.level",
	}, keys)

	bindings := generateEnvBindings("ENVJSON_", []string{"env.file", "output.rev-auth"})
	assert.Equal(t, map[string]string{
		"ENVJSON_ENV_FILE":        "env.file",
		"ENVJSON_OUTPUT_REV_AUTH": "output.rev-auth",
	}, bindings)
}

func TestMergeAndSetByPath(t *testing.T) {
	dst := structToMap(DefaultConfig())
	mergeMaps(dst, map[string]any{"output": map[string]any{"indent": 2}})
	setByPath(dst, "env.file", "x.env")
	setByPath(dst, "extra.nested.key", "v")

	output := dst["output"].(map[string]any)
	assert.Equal(t, 2, output["indent"])
	assert.Equal(t, "env.json", output["file"], "merge keeps sibling keys")
	assert.Equal(t, "x.env", dst["env"].(map[string]any)["file"])
	assert.Equal(t, "v", dst["extra"].(map[string]any)["nested"].(map[string]any)["key"])
}
