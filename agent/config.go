package agent

import "github.com/course-tools/nbredact/redact"

// Config holds everything an Agent needs for a run. It is explicit input:
// the agent discovers nothing from the environment.
type Config struct {
	// Source is the instructor file or directory to read.
	Source string `json:"source"`

	// Target is the student file or directory to write.
	Target string `json:"target"`

	// Regions are the marker pairs removed from flat-text documents, in
	// removal order. Empty means the default solution/skip/notes families.
	Regions []redact.MarkerPair `json:"regions"`

	// Archive bundles the target directory into a tar.gz after processing.
	Archive bool `json:"archive"`

	// Dryrun reports what would be processed without writing anything.
	Dryrun bool `json:"dry_run"`
}
