// Package redact decides, per cell or per text line, whether instructor
// content is kept, replaced, or deleted when producing the student version
// of a document. It is pure: no filesystem, no logging, documents in and
// documents out.
package redact

// Cell metadata keys recognized by the interpreter. Unrecognized keys are
// inert here; the metadata sanitizer decides separately whether they survive.
const (
	// KeyRemoveCode selects a redaction mode for the cell source.
	KeyRemoveCode = "remove_code"

	// KeySkip marks a cell to be excluded from the student version entirely.
	KeySkip = "skip"

	// KeyNotes marks instructor-only commentary, also excluded entirely.
	KeyNotes = "notes"

	// KeySlideshow and KeySlideType locate the presentation region kind;
	// "skip" and "notes" region kinds exclude the cell the same way the
	// boolean flags do.
	KeySlideshow = "slideshow"
	KeySlideType = "slide_type"

	// KeyEditable is forced to false on surviving narrative cells.
	KeyEditable = "editable"
)

// Redaction modes carried by the remove_code directive.
const (
	// ModeNone keeps the complete solution, for worked examples.
	ModeNone = "none"

	// ModeAll replaces the whole cell source with a placeholder.
	ModeAll = "all"

	// ModeNonComments deletes code lines, keeping comments and blanks.
	ModeNonComments = "non-comments"

	// ModeAfterPrefix introduces "after:<marker>": lines through the marker
	// comment are kept verbatim, code after it is deleted.
	ModeAfterPrefix = "after:"
)

// Region kinds that exclude a cell.
const (
	SlideTypeSkip  = "skip"
	SlideTypeNotes = "notes"
)

// Placeholders substituted for removed solutions, by cell kind.
const (
	CodePlaceholder     = "# Your code here\n"
	MarkdownPlaceholder = "**Your answer here**\n"
)
