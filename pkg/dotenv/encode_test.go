package dotenv_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yamlv3 "go.yaml.in/yaml/v3"

	"github.com/lwmacct/261018-go-pkg-envjson/pkg/dotenv"
)

func TestEncode_JSON(t *testing.T) {
	m := parseString(t, "A=1\nB=${A}2\n")

	tests := []struct {
		name   string
		indent int
		want   string
	}{
		{
			name:   "default four spaces",
			indent: dotenv.DefaultIndent,
			want:   "{\n    \"A\": \"1\",\n    \"B\": \"12\"\n}\n",
		},
		{
			name:   "two spaces",
			indent: 2,
			want:   "{\n  \"A\": \"1\",\n  \"B\": \"12\"\n}\n",
		},
		{
			name:   "compact",
			indent: 0,
			want:   "{\"A\":\"1\",\"B\":\"12\"}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := dotenv.Encode(m, dotenv.WithIndent(tt.indent))
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestEncode_JSONEscaping(t *testing.T) {
	m := dotenv.NewMapping()
	m.Set("HTML", "<a href=\"x\">&</a>")
	m.Set("PATH", `C:\bin`)
	m.Set("UNICODE", "héllo")

	got, err := dotenv.Encode(m, dotenv.WithIndent(0))
	require.NoError(t, err)
	assert.Equal(t, `{"HTML":"<a href=\"x\">&</a>","PATH":"C:\\bin","UNICODE":"héllo"}`+"\n", string(got))
}

func TestEncode_EmptyMapping(t *testing.T) {
	got, err := dotenv.Encode(dotenv.NewMapping())
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(got))
}

func TestEncode_YAML(t *testing.T) {
	m := parseString(t, "Z=1\nA=true\nM=hello world\n")

	got, err := dotenv.Encode(m, dotenv.WithFormat(dotenv.FormatYAML))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, yamlv3.Unmarshal(got, &decoded))
	assert.Equal(t, map[string]any{"Z": "1", "A": "true", "M": "hello world"}, decoded)

	out := string(got)
	assert.Less(t, strings.Index(out, "Z:"), strings.Index(out, "A:"))
	assert.Less(t, strings.Index(out, "A:"), strings.Index(out, "M:"))
}

func TestEncode_UnknownFormat(t *testing.T) {
	_, err := dotenv.Encode(dotenv.NewMapping(), dotenv.WithFormat("toml"))
	require.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	f, err := dotenv.ParseFormat("YML")
	require.NoError(t, err)
	assert.Equal(t, dotenv.FormatYAML, f)
	assert.Equal(t, "YAML", f.String())

	_, err = dotenv.ParseFormat("xml")
	require.Error(t, err)
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	m := parseString(t, "X=5\n")

	t.Run("writes json", func(t *testing.T) {
		path := filepath.Join(dir, "env.json")
		require.NoError(t, dotenv.WriteFile(path, m))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.JSONEq(t, `{"X":"5"}`, string(content))
	})

	t.Run("overwrites existing file", func(t *testing.T) {
		path := filepath.Join(dir, "existing.json")
		require.NoError(t, os.WriteFile(path, []byte("old content that is longer"), 0o600))
		require.NoError(t, dotenv.WriteFile(path, m))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.JSONEq(t, `{"X":"5"}`, string(content))
	})

	t.Run("missing directory is a write failure", func(t *testing.T) {
		path := filepath.Join(dir, "no", "such", "dir", "env.json")
		err := dotenv.WriteFile(path, m)
		require.ErrorIs(t, err, dotenv.ErrWriteFailure)
		assert.Contains(t, err.Error(), path)
	})
}
