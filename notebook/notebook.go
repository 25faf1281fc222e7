// Package notebook models structured teaching documents: an ordered cell
// sequence plus metadata mappings, loaded and saved as notebook JSON. The
// model keeps metadata key order and leaves values opaque so a load/save
// round trip of untouched content is byte-stable.
package notebook

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// MalformedDocumentError reports a document that cannot be processed at all,
// e.g. invalid JSON or a missing required top-level field. It aborts that one
// document, never a batch.
type MalformedDocumentError struct {
	Path   string
	Reason string
}

func (e *MalformedDocumentError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("malformed document: %s", e.Reason)
	}
	return fmt.Sprintf("malformed document %s: %s", e.Path, e.Reason)
}

// Document is an ordered sequence of cells plus document-level metadata.
type Document struct {
	Cells         []*Cell   `json:"cells"`
	Metadata      *Metadata `json:"metadata"`
	NBFormat      int       `json:"nbformat"`
	NBFormatMinor int       `json:"nbformat_minor"`
}

// Parse decodes a whole document from notebook JSON. Required top-level
// fields are validated here so the pipeline only ever sees fully-loaded
// documents.
func Parse(bts []byte) (*Document, error) {
	var raw struct {
		Cells         *[]*Cell  `json:"cells"`
		Metadata      *Metadata `json:"metadata"`
		NBFormat      *int      `json:"nbformat"`
		NBFormatMinor int       `json:"nbformat_minor"`
	}
	if err := json.Unmarshal(bts, &raw); err != nil {
		return nil, &MalformedDocumentError{Reason: err.Error()}
	}
	if raw.Cells == nil {
		return nil, &MalformedDocumentError{Reason: "missing required field 'cells'"}
	}
	if raw.NBFormat == nil {
		return nil, &MalformedDocumentError{Reason: "missing required field 'nbformat'"}
	}

	d := &Document{
		Cells:         *raw.Cells,
		Metadata:      raw.Metadata,
		NBFormat:      *raw.NBFormat,
		NBFormatMinor: raw.NBFormatMinor,
	}
	if d.Metadata == nil {
		d.Metadata = NewMetadata()
	}
	for _, c := range d.Cells {
		if c.Metadata == nil {
			c.Metadata = NewMetadata()
		}
	}
	return d, nil
}

// Load reads and parses a document from disk.
func Load(path string) (*Document, error) {
	bts, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	d, err := Parse(bts)
	if err != nil {
		var malformed *MalformedDocumentError
		if errors.As(err, &malformed) {
			malformed.Path = path
		}
		return nil, err
	}
	return d, nil
}

// Write serializes the document to path, creating parent directories as
// needed. Output uses one-space indentation and a trailing newline to match
// the common notebook tooling convention, keeping diffs quiet.
func (d *Document) Write(path string) error {
	bts, err := json.MarshalIndent(d, "", " ")
	if err != nil {
		return err
	}
	bts = append(bts, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(path, bts, 0644)
}
