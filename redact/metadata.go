package redact

import (
	"strings"

	"github.com/course-tools/nbredact/notebook"
)

// DocumentMetadataDeny lists the volatile notebook-level fields that churn
// between editing sessions and pollute version control diffs.
var DocumentMetadataDeny = []string{
	"widgets",
	"varInspector",
	"notebookname",
	"celltoolbar",
	"collapsed",
	"scrolled",
}

// DocumentMetadataOrder lists runtime identity and presentation fields that
// are serialized first, in this order, for stable output.
var DocumentMetadataOrder = []string{
	"kernelspec",
	"language_info",
	"rise",
	"livereveal",
	"slideshow",
	"jupyter-deck",
}

// CellMetadataAllow lists the only cell-level keys that survive: the
// directive vocabulary, presentation hints, and the forced editable flag.
// A trailing '*' matches as a key prefix, for namespaced extension metadata.
var CellMetadataAllow = []string{
	KeyRemoveCode,
	KeySkip,
	KeyNotes,
	KeySlideshow,
	KeySlideType,
	KeyEditable,
	"jupyter-deck*",
	"rise*",
}

// Sanitize filters a metadata mapping in place. Deny-listed keys are always
// removed. If allow is non-empty, only keys matching an allow entry survive;
// otherwise every non-denied key survives. Values are never touched, only
// whole keys kept or removed, so sanitizing twice is a no-op.
func Sanitize(m *notebook.Metadata, allow, deny []string) {
	for _, key := range m.Keys() {
		if !sanitizeKeeps(key, allow, deny) {
			m.Delete(key)
		}
	}
}

func sanitizeKeeps(key string, allow, deny []string) bool {
	for _, d := range deny {
		if key == d {
			return false
		}
	}
	if len(allow) == 0 {
		return true
	}
	for _, a := range allow {
		if strings.HasSuffix(a, "*") {
			if strings.HasPrefix(key, strings.TrimSuffix(a, "*")) {
				return true
			}
		} else if key == a {
			return true
		}
	}
	return false
}
