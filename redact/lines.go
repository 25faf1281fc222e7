package redact

import "strings"

// MarkerPair delimits a removable region in flat text. Both markers are
// matched as substrings of a line.
type MarkerPair struct {
	Start string
	End   string
}

// Default marker pairs for the three region families removed from flat text.
var (
	SolutionMarkers = MarkerPair{Start: "<!-- #solution -->", End: "<!-- #endsolution -->"}
	SkipMarkers     = MarkerPair{Start: "<!-- #skip -->", End: "<!-- #endskip -->"}
	NotesMarkers    = MarkerPair{Start: "<!-- #notes -->", End: "<!-- #endnotes -->"}
)

// Structural reports whether a line's syntax forces retention even inside a
// removed region: headings and comments, fence delimiters, and HTML comments
// (which includes the region markers themselves).
func Structural(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, "#") ||
		strings.HasPrefix(trimmed, "```") ||
		strings.HasPrefix(trimmed, "<!--")
}

// FilterRegions removes marker-delimited regions from lines. Per line, in
// order: a start marker opens a block before the line's own retention
// decision; a structural line inside a block is retained regardless; the
// line is retained iff it is outside a block or structural; an end marker
// closes the block after the decision, so the end line itself is still
// subject to the block rule. Regions do not nest: an end marker always
// closes the nearest open start.
func FilterRegions(lines []string, markers MarkerPair, structural func(string) bool) []string {
	inBlock := false
	kept := make([]string, 0, len(lines))

	for _, line := range lines {
		if strings.Contains(line, markers.Start) {
			inBlock = true
		}
		structuralLine := inBlock && structural != nil && structural(line)
		if !inBlock || structuralLine {
			kept = append(kept, line)
		}
		if strings.Contains(line, markers.End) {
			inBlock = false
		}
	}
	return kept
}

// FilterDocumentText runs FilterRegions once per marker pair, in the given
// order, each pass over the previous pass's output. The order is part of the
// contract: a later pass only sees what earlier passes retained.
func FilterDocumentText(lines []string, regions []MarkerPair, structural func(string) bool) []string {
	for _, markers := range regions {
		lines = FilterRegions(lines, markers, structural)
	}
	return lines
}

// DefaultRegions returns the region families in their fixed removal order:
// solutions first, then skip regions, then notes.
func DefaultRegions() []MarkerPair {
	return []MarkerPair{SolutionMarkers, SkipMarkers, NotesMarkers}
}
