package redact

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/course-tools/nbredact/notebook"
)

// Interpret applies the cell's directives in place and reports whether the
// cell survives into the student version. Rules are mutually exclusive and
// the first match wins:
//
//  1. skip, notes, or a skip/notes slide type excludes the cell entirely.
//  2. Surviving cells have outputs cleared and execution counts reset;
//     surviving markdown cells are made non-editable.
//  3. A remove_code directive redacts the source per its mode.
//
// Marker and unknown-mode failures are fail-open: the cell is kept, flagged
// in its content where possible, and the error returned for the caller to
// report. Interpret never drops a cell because of a bad directive.
func Interpret(c *notebook.Cell) (keep bool, err error) {
	if c.Metadata == nil {
		c.Metadata = notebook.NewMetadata()
	}
	meta := c.Metadata
	if meta.Bool(KeySkip) || meta.Bool(KeyNotes) {
		return false, nil
	}
	if st, ok := meta.StringAt(KeySlideshow, KeySlideType); ok {
		if st == SlideTypeSkip || st == SlideTypeNotes {
			return false, nil
		}
	}

	if c.IsCode() {
		c.Outputs = []json.RawMessage{}
		c.ExecutionCount = nil
	}
	if c.IsMarkdown() {
		meta.SetBool(KeyEditable, false)
	}

	mode, ok := meta.String(KeyRemoveCode)
	if !ok {
		return true, nil
	}

	switch {
	case mode == ModeNone:

	case mode == ModeAll:
		c.Source = notebook.SourceText{placeholderFor(c)}

	case mode == ModeNonComments:
		if !c.IsCode() {
			c.Source = notebook.SourceText{MarkdownPlaceholder}
			break
		}
		kept := stripNonComments(c.Source, nil, false)
		if len(kept) == 0 {
			kept = []string{CodePlaceholder}
		}
		c.Source = kept

	case strings.HasPrefix(mode, ModeAfterPrefix):
		if !c.IsCode() {
			c.Source = notebook.SourceText{MarkdownPlaceholder}
			break
		}
		marker := strings.TrimSpace(strings.TrimPrefix(mode, ModeAfterPrefix))
		src, aErr := stripAfterMarker(c.Source, marker)
		c.Source = src
		if aErr != nil {
			return true, aErr
		}

	default:
		return true, &UnknownModeError{Mode: mode}
	}

	return true, nil
}

func placeholderFor(c *notebook.Cell) string {
	if c.IsCode() {
		return CodePlaceholder
	}
	return MarkdownPlaceholder
}

// stripNonComments deletes code lines from lines and appends the survivors
// to out, keeping blank lines and '#' comments. One synthetic blank line is
// inserted before a kept comment when the previous input line was not a
// comment and the last kept line is non-blank, so a single separator marks
// each gap where code was deleted without blank lines piling up. prevComment
// seeds that state, letting after:<marker> treat the marker comment as the
// line before the tail.
func stripNonComments(lines []string, out []string, prevComment bool) []string {
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			out = append(out, line)
			prevComment = false
		case strings.HasPrefix(trimmed, "#"):
			if !prevComment && len(out) > 0 && strings.TrimSpace(out[len(out)-1]) != "" {
				out = append(out, "\n")
			}
			out = append(out, line)
			prevComment = true
		default:
			// Code line: deleted.
			prevComment = false
		}
	}
	return out
}

// stripAfterMarker keeps everything through the marker line verbatim, then
// applies the non-comments rule to the rest. The marker must match the
// trimmed text of exactly one line; zero or multiple matches keep the
// original source with an error comment prepended.
func stripAfterMarker(lines notebook.SourceText, marker string) (notebook.SourceText, error) {
	count := 0
	for _, line := range lines {
		if strings.TrimSpace(line) == marker {
			count++
		}
	}
	switch {
	case count == 0:
		err := &MarkerNotFoundError{Marker: marker}
		flag := fmt.Sprintf("# ERROR: %s\n", err.Error())
		return append(notebook.SourceText{flag}, lines...), err
	case count > 1:
		err := &MarkerAmbiguousError{Marker: marker, Count: count}
		flag := fmt.Sprintf("# ERROR: %s\n", err.Error())
		return append(notebook.SourceText{flag}, lines...), err
	}

	var out []string
	rest := 0
	for i, line := range lines {
		out = append(out, line)
		if strings.TrimSpace(line) == marker {
			rest = i + 1
			break
		}
	}
	out = stripNonComments(lines[rest:], out, true)
	return out, nil
}
