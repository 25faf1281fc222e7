package notebook

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadataRoundTripKeepsOrder(t *testing.T) {
	in := `{"zeta": 1, "alpha": {"nested": true}, "mid": "x"}`

	var m Metadata
	require.NoError(t, json.Unmarshal([]byte(in), &m))
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, m.Keys())

	out, err := json.Marshal(&m)
	require.NoError(t, err)
	assert.JSONEq(t, in, string(out))

	// Key order survives the round trip, not just the content.
	var again Metadata
	require.NoError(t, json.Unmarshal(out, &again))
	assert.Equal(t, m.Keys(), again.Keys())
}

func TestMetadataSetDelete(t *testing.T) {
	m := NewMetadata()
	m.Set("a", json.RawMessage(`1`))
	m.Set("b", json.RawMessage(`2`))
	m.Set("a", json.RawMessage(`3`))
	assert.Equal(t, []string{"a", "b"}, m.Keys())

	raw, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, json.RawMessage(`3`), raw)

	m.Delete("a")
	assert.Equal(t, []string{"b"}, m.Keys())
	_, ok = m.Get("a")
	assert.False(t, ok)

	// Deleting a missing key is a no-op.
	m.Delete("nope")
	assert.Equal(t, 1, m.Len())
}

func TestMetadataAccessors(t *testing.T) {
	m := NewMetadata()
	m.Set("skip", json.RawMessage(`true`))
	m.Set("remove_code", json.RawMessage(`"all"`))
	m.Set("slideshow", json.RawMessage(`{"slide_type": "notes"}`))
	m.Set("weird", json.RawMessage(`[1]`))

	assert.True(t, m.Bool("skip"))
	assert.False(t, m.Bool("weird"))
	assert.False(t, m.Bool("missing"))

	s, ok := m.String("remove_code")
	assert.True(t, ok)
	assert.Equal(t, "all", s)
	_, ok = m.String("skip")
	assert.False(t, ok)

	st, ok := m.StringAt("slideshow", "slide_type")
	assert.True(t, ok)
	assert.Equal(t, "notes", st)
	_, ok = m.StringAt("slideshow", "absent")
	assert.False(t, ok)
	_, ok = m.StringAt("missing", "slide_type")
	assert.False(t, ok)
}

func TestMetadataReorder(t *testing.T) {
	m := NewMetadata()
	for _, k := range []string{"custom", "language_info", "other", "kernelspec"} {
		m.Set(k, json.RawMessage(`{}`))
	}
	m.Reorder([]string{"kernelspec", "language_info", "rise"})
	assert.Equal(t, []string{"kernelspec", "language_info", "custom", "other"}, m.Keys())
}

func TestMetadataMarshalNilAndEmpty(t *testing.T) {
	var m *Metadata
	out, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))

	out, err = json.Marshal(NewMetadata())
	require.NoError(t, err)
	assert.Equal(t, "{}", string(out))
}
