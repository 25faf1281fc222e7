package redact

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterRegions(t *testing.T) {
	tcs := []struct {
		name   string
		lines  []string
		expect []string
	}{
		{
			name: "region removed, markers retained as structural",
			lines: []string{
				"Intro\n",
				"<!-- #solution -->\n",
				"answer = 42\n",
				"<!-- #endsolution -->\n",
				"Outro\n",
			},
			expect: []string{
				"Intro\n",
				"<!-- #solution -->\n",
				"<!-- #endsolution -->\n",
				"Outro\n",
			},
		},
		{
			name: "fenced code block delimiters survive inside a region",
			lines: []string{
				"<!-- #solution -->\n",
				"```python\n",
				"answer = 42\n",
				"```\n",
				"<!-- #endsolution -->\n",
			},
			expect: []string{
				"<!-- #solution -->\n",
				"```python\n",
				"```\n",
				"<!-- #endsolution -->\n",
			},
		},
		{
			name: "headings survive inside a region",
			lines: []string{
				"<!-- #solution -->\n",
				"## Walkthrough\n",
				"some prose\n",
				"<!-- #endsolution -->\n",
			},
			expect: []string{
				"<!-- #solution -->\n",
				"## Walkthrough\n",
				"<!-- #endsolution -->\n",
			},
		},
		{
			name: "text outside regions untouched",
			lines: []string{
				"plain\n",
				"    indented code, no region\n",
			},
			expect: []string{
				"plain\n",
				"    indented code, no region\n",
			},
		},
		{
			name: "end marker closes the nearest open start",
			lines: []string{
				"<!-- #solution -->\n",
				"one\n",
				"<!-- #solution -->\n",
				"two\n",
				"<!-- #endsolution -->\n",
				"kept again\n",
			},
			expect: []string{
				"<!-- #solution -->\n",
				"<!-- #solution -->\n",
				"<!-- #endsolution -->\n",
				"kept again\n",
			},
		},
	}

	for _, tc := range tcs {
		got := FilterRegions(tc.lines, SolutionMarkers, Structural)
		assert.Equal(t, tc.expect, got, tc.name)
	}
}

func TestFilterRegionsNonStructuralEndMarker(t *testing.T) {
	// The end marker line itself is decided under the pre-reset block state,
	// so a non-structural end marker is removed with the block.
	markers := MarkerPair{Start: "BEGIN SOLUTION", End: "END SOLUTION"}
	lines := []string{
		"before\n",
		"BEGIN SOLUTION\n",
		"answer = 42\n",
		"END SOLUTION\n",
		"after\n",
	}
	got := FilterRegions(lines, markers, Structural)
	assert.Equal(t, []string{"before\n", "after\n"}, got)
}

func TestFilterDocumentTextPassOrder(t *testing.T) {
	lines := []string{
		"# Lesson\n",
		"<!-- #solution -->\n",
		"answer = 42\n",
		"<!-- #endsolution -->\n",
		"<!-- #skip -->\n",
		"draft section\n",
		"<!-- #endskip -->\n",
		"<!-- #notes -->\n",
		"remember to pause here\n",
		"<!-- #endnotes -->\n",
		"The end.\n",
	}
	got := FilterDocumentText(lines, DefaultRegions(), Structural)
	assert.Equal(t, []string{
		"# Lesson\n",
		"<!-- #solution -->\n",
		"<!-- #endsolution -->\n",
		"<!-- #skip -->\n",
		"<!-- #endskip -->\n",
		"<!-- #notes -->\n",
		"<!-- #endnotes -->\n",
		"The end.\n",
	}, got)
}

func TestStructural(t *testing.T) {
	tcs := []struct {
		line   string
		expect bool
	}{
		{"# heading\n", true},
		{"  ## indented heading\n", true},
		{"```python\n", true},
		{"<!-- comment -->\n", true},
		{"plain text\n", false},
		{"x = 1\n", false},
		{"\n", false},
	}
	for _, tc := range tcs {
		assert.Equal(t, tc.expect, Structural(tc.line), tc.line)
	}
}
