package redact

import (
	"github.com/course-tools/nbredact/notebook"
)

// Summary counts what Apply did to a document.
type Summary struct {
	CellsDropped  int `json:"cells_dropped"`
	CellsRedacted int `json:"cells_redacted"`
}

// Apply transforms a loaded document into its student version in place:
// every cell is interpreted in order, dropped cells are removed from the
// sequence (never left as empty placeholders), surviving cell metadata and
// the document metadata are sanitized, and document metadata is reordered
// for stable serialization.
//
// Cell-level directive errors are fail-open: the flagged cell stays in the
// document and the error is collected for the caller to report. Apply never
// returns a partially-transformed document.
func Apply(d *notebook.Document) (Summary, []error) {
	var summary Summary
	var errs []error

	kept := make([]*notebook.Cell, 0, len(d.Cells))
	for _, cell := range d.Cells {
		_, directed := cell.Metadata.String(KeyRemoveCode)

		keep, err := Interpret(cell)
		if err != nil {
			errs = append(errs, err)
		}
		if !keep {
			summary.CellsDropped++
			continue
		}
		if directed {
			summary.CellsRedacted++
		}
		Sanitize(cell.Metadata, CellMetadataAllow, nil)
		kept = append(kept, cell)
	}
	d.Cells = kept

	Sanitize(d.Metadata, nil, DocumentMetadataDeny)
	d.Metadata.Reorder(DocumentMetadataOrder)

	return summary, errs
}
