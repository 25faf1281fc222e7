package redact

import "fmt"

// UnknownModeError reports an unrecognized remove_code value. The cell is
// left unchanged; the caller decides how loudly to complain.
type UnknownModeError struct {
	Mode string
}

func (e *UnknownModeError) Error() string {
	return fmt.Sprintf("unknown remove_code value %q, cell left unchanged", e.Mode)
}

// MarkerNotFoundError reports an after:<marker> directive whose marker does
// not occur in the cell source. The cell is kept with an error comment
// prepended so the broken state is visible in the output.
type MarkerNotFoundError struct {
	Marker string
}

func (e *MarkerNotFoundError) Error() string {
	return fmt.Sprintf("comment marker %q not found in cell", e.Marker)
}

// MarkerAmbiguousError reports a marker that occurs more than once, handled
// the same fail-open way as MarkerNotFoundError.
type MarkerAmbiguousError struct {
	Marker string
	Count  int
}

func (e *MarkerAmbiguousError) Error() string {
	return fmt.Sprintf("comment marker %q appears %d times in cell", e.Marker, e.Count)
}
