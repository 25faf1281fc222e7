package redact

import (
	"strings"

	"github.com/course-tools/nbredact/notebook"
)

// Legacy comment markers that predate metadata directives. Annotate migrates
// cells carrying them to the metadata-based vocabulary.
const (
	solutionComment = "# Solution"
	solutionHTML    = "<!-- #solution -->"

	keepAllComment = "# KEEP ALL"
	keepAllHTML    = "<!-- KEEP ALL -->"

	hideAllComment = "# HIDE ALL"
	hideAllHTML    = "<!-- HIDE ALL -->"
)

// Annotate adds a remove_code directive to every cell whose source carries a
// legacy solution marker, returning the number of cells updated. KEEP ALL
// maps to mode none and HIDE ALL to mode all; a bare solution marker gets
// the non-comments mode. Existing metadata is left alone apart from the
// remove_code key.
func Annotate(d *notebook.Document) int {
	updated := 0
	for _, cell := range d.Cells {
		source := strings.Join(cell.Source, "")
		if !strings.Contains(source, solutionComment) && !strings.Contains(source, solutionHTML) {
			continue
		}

		mode := ModeNonComments
		switch {
		case strings.Contains(source, keepAllComment) || strings.Contains(source, keepAllHTML):
			mode = ModeNone
		case strings.Contains(source, hideAllComment) || strings.Contains(source, hideAllHTML):
			mode = ModeAll
		}

		if cell.Metadata == nil {
			cell.Metadata = notebook.NewMetadata()
		}
		cell.Metadata.Set(KeyRemoveCode, []byte(`"`+mode+`"`))
		updated++
	}
	return updated
}
