package dotenv_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwmacct/261018-go-pkg-envjson/pkg/dotenv"
)

func TestMapping(t *testing.T) {
	var m dotenv.Mapping // 零值可用

	m.Set("B", "2")
	m.Set("A", "1")
	m.Set("B", "3")

	assert.Equal(t, 2, m.Len())
	assert.Equal(t, []string{"B", "A"}, m.Keys())
	assert.Equal(t, "3", m.Get("B"))
	assert.Equal(t, "", m.Get("MISSING"))

	v, ok := m.Lookup("A")
	assert.True(t, ok)
	assert.Equal(t, "1", v)

	m.Set("E", "")
	_, ok = m.Lookup("E")
	assert.True(t, ok, "empty value is still defined")
	_, ok = m.Lookup("MISSING")
	assert.False(t, ok)

	var order []string
	for k, v := range m.All() {
		order = append(order, k+"="+v)
	}
	assert.Equal(t, []string{"B=3", "A=1", "E="}, order)
}

func TestMapping_CopiesAreIndependent(t *testing.T) {
	m := dotenv.NewMapping()
	m.Set("A", "1")

	keys := m.Keys()
	keys[0] = "changed"
	plain := m.Map()
	plain["A"] = "changed"

	assert.Equal(t, []string{"A"}, m.Keys())
	assert.Equal(t, "1", m.Get("A"))
}

func TestMapping_MarshalJSONKeepsOrder(t *testing.T) {
	m := dotenv.NewMapping()
	for _, k := range []string{"zeta", "alpha", "mid"} {
		m.Set(k, k)
	}

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `{"zeta":"zeta","alpha":"alpha","mid":"mid"}`, string(data))
}
