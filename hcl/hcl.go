// Package hcl decodes the optional nbredact settings file. Settings are
// plain data handed to the command layer; flags always win over file values
// so configuration stays explicit.
package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/hclsimple"

	"github.com/course-tools/nbredact/redact"
)

type HCL struct {
	Source  string    `hcl:"source,optional"`
	Target  string    `hcl:"target,optional"`
	Agent   *Agent    `hcl:"agent,block"`
	Markers []*Marker `hcl:"markers,block"`
	Hook    *Hook     `hcl:"hook,block"`
}

type Agent struct {
	Archive bool `hcl:"archive,optional"`
}

// Marker overrides the start/end literals of one region family. The label
// names the family: "solution", "skip", or "notes".
type Marker struct {
	Region string `hcl:"region,label"`
	Start  string `hcl:"start"`
	End    string `hcl:"end"`
}

type Hook struct {
	Repo      string `hcl:"repo,optional"`
	Template  string `hcl:"template"`
	ExtraArgs string `hcl:"extra_args,optional"`
}

// Parse takes a file path and decodes the file from disk into HCL types.
func Parse(path string) (HCL, error) {
	var h HCL
	err := hclsimple.DecodeFile(path, nil, &h)
	if err != nil {
		return HCL{}, err
	}
	return h, nil
}

// Regions resolves marker blocks against the default region families. The
// removal order is fixed (solution, skip, notes); blocks only swap literals.
func (h HCL) Regions() ([]redact.MarkerPair, error) {
	pairs := map[string]redact.MarkerPair{
		"solution": redact.SolutionMarkers,
		"skip":     redact.SkipMarkers,
		"notes":    redact.NotesMarkers,
	}
	for _, m := range h.Markers {
		if _, ok := pairs[m.Region]; !ok {
			return nil, fmt.Errorf("unknown markers region %q, expected solution, skip, or notes", m.Region)
		}
		pairs[m.Region] = redact.MarkerPair{Start: m.Start, End: m.End}
	}
	return []redact.MarkerPair{pairs["solution"], pairs["skip"], pairs["notes"]}, nil
}
