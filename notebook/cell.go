package notebook

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Cell kinds defined by the notebook format.
const (
	CellTypeCode     = "code"
	CellTypeMarkdown = "markdown"
	CellTypeRaw      = "raw"
)

// SourceText is cell source held as newline-terminated lines. The on-disk
// format allows either an array of strings or one joined string; decoding
// normalizes both to lines so nothing downstream has to branch on shape.
type SourceText []string

func (s *SourceText) UnmarshalJSON(bts []byte) error {
	trimmed := bytes.TrimSpace(bts)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var joined string
		if err := json.Unmarshal(bts, &joined); err != nil {
			return err
		}
		*s = SplitLines(joined)
		return nil
	}
	var lines []string
	if err := json.Unmarshal(bts, &lines); err != nil {
		return err
	}
	*s = lines
	return nil
}

func (s SourceText) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(s))
}

// SplitLines splits text into lines that keep their trailing newline, the
// shape cell source takes in a notebook file.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// Cell is one unit of a document: executable code or narrative text.
type Cell struct {
	CellType       string
	ID             string
	Metadata       *Metadata
	Source         SourceText
	ExecutionCount *int
	Outputs        []json.RawMessage
	Attachments    json.RawMessage
}

func (c *Cell) IsCode() bool {
	return c.CellType == CellTypeCode
}

func (c *Cell) IsMarkdown() bool {
	return c.CellType == CellTypeMarkdown
}

func (c *Cell) UnmarshalJSON(bts []byte) error {
	var raw struct {
		CellType       string            `json:"cell_type"`
		ID             string            `json:"id"`
		Metadata       *Metadata         `json:"metadata"`
		Source         SourceText        `json:"source"`
		ExecutionCount *int              `json:"execution_count"`
		Outputs        []json.RawMessage `json:"outputs"`
		Attachments    json.RawMessage   `json:"attachments"`
	}
	if err := json.Unmarshal(bts, &raw); err != nil {
		return err
	}
	if raw.CellType == "" {
		return fmt.Errorf("cell missing cell_type")
	}
	if raw.Metadata == nil {
		raw.Metadata = NewMetadata()
	}
	c.CellType = raw.CellType
	c.ID = raw.ID
	c.Metadata = raw.Metadata
	c.Source = raw.Source
	c.ExecutionCount = raw.ExecutionCount
	c.Outputs = raw.Outputs
	c.Attachments = raw.Attachments
	return nil
}

// MarshalJSON writes fields in the order convention used by notebook files.
// Code cells always carry execution_count (null when reset) and outputs;
// other cell types must omit both.
func (c *Cell) MarshalJSON() ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.WriteByte('{')

	writeField := func(name string, v interface{}) error {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(name)
		if err != nil {
			return err
		}
		vb, err := json.Marshal(v)
		if err != nil {
			return err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
		return nil
	}

	if err := writeField("cell_type", c.CellType); err != nil {
		return nil, err
	}
	if c.IsCode() {
		if err := writeField("execution_count", c.ExecutionCount); err != nil {
			return nil, err
		}
	}
	if c.ID != "" {
		if err := writeField("id", c.ID); err != nil {
			return nil, err
		}
	}
	meta := c.Metadata
	if meta == nil {
		meta = NewMetadata()
	}
	if err := writeField("metadata", meta); err != nil {
		return nil, err
	}
	if c.Attachments != nil {
		if err := writeField("attachments", c.Attachments); err != nil {
			return nil, err
		}
	}
	if c.IsCode() {
		outputs := c.Outputs
		if outputs == nil {
			outputs = []json.RawMessage{}
		}
		if err := writeField("outputs", outputs); err != nil {
			return nil, err
		}
	}
	if err := writeField("source", c.Source); err != nil {
		return nil, err
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}
