package notebook

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Metadata is a notebook or cell metadata mapping. Keys keep their insertion
// order so that serializing a document produces stable, diff-friendly output.
// Values are held as raw JSON and never reinterpreted.
type Metadata struct {
	keys   []string
	values map[string]json.RawMessage
}

func NewMetadata() *Metadata {
	return &Metadata{values: make(map[string]json.RawMessage)}
}

func (m *Metadata) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns the key list in order. The returned slice is a copy.
func (m *Metadata) Keys() []string {
	if m == nil {
		return nil
	}
	ks := make([]string, len(m.keys))
	copy(ks, m.keys)
	return ks
}

func (m *Metadata) Get(key string) (json.RawMessage, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.values[key]
	return v, ok
}

// Set stores a value under key, appending the key if it is new.
func (m *Metadata) Set(key string, value json.RawMessage) {
	if m.values == nil {
		m.values = make(map[string]json.RawMessage)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// SetBool stores a JSON boolean under key.
func (m *Metadata) SetBool(key string, value bool) {
	if value {
		m.Set(key, json.RawMessage("true"))
		return
	}
	m.Set(key, json.RawMessage("false"))
}

func (m *Metadata) Delete(key string) {
	if m == nil {
		return
	}
	if _, ok := m.values[key]; !ok {
		return
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// Bool reads key as a JSON boolean. Missing keys and non-boolean values
// read as false.
func (m *Metadata) Bool(key string) bool {
	raw, ok := m.Get(key)
	if !ok {
		return false
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err != nil {
		return false
	}
	return b
}

// String reads key as a JSON string.
func (m *Metadata) String(key string) (string, bool) {
	raw, ok := m.Get(key)
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// StringAt reads a string nested under a path of object keys, e.g.
// StringAt("slideshow", "slide_type").
func (m *Metadata) StringAt(path ...string) (string, bool) {
	if len(path) == 0 {
		return "", false
	}
	raw, ok := m.Get(path[0])
	if !ok {
		return "", false
	}
	for _, key := range path[1:] {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(raw, &obj); err != nil {
			return "", false
		}
		raw, ok = obj[key]
		if !ok {
			return "", false
		}
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// Reorder moves the listed keys, where present, to the front in the given
// order. All other keys follow in their original relative order.
func (m *Metadata) Reorder(preferred []string) {
	if m == nil || len(m.keys) == 0 {
		return
	}
	ordered := make([]string, 0, len(m.keys))
	for _, k := range preferred {
		if _, ok := m.values[k]; ok {
			ordered = append(ordered, k)
		}
	}
	for _, k := range m.keys {
		if !contains(preferred, k) {
			ordered = append(ordered, k)
		}
	}
	m.keys = ordered
}

func contains(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}

func (m *Metadata) UnmarshalJSON(bts []byte) error {
	if bytes.Equal(bytes.TrimSpace(bts), []byte("null")) {
		m.keys = nil
		m.values = make(map[string]json.RawMessage)
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(bts))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("metadata: expected JSON object, got %v", tok)
	}

	m.keys = nil
	m.values = make(map[string]json.RawMessage)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("metadata: expected object key, got %v", tok)
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return err
		}
		m.Set(key, value)
	}
	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

func (m *Metadata) MarshalJSON() ([]byte, error) {
	if m == nil || len(m.keys) == 0 {
		return []byte("{}"), nil
	}
	buf := new(bytes.Buffer)
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(m.values[k])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
