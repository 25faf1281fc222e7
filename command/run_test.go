package command

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/course-tools/nbredact/agent"
	"github.com/course-tools/nbredact/hcl"
)

func TestMergeAgentConfig(t *testing.T) {
	testCases := []struct {
		name    string
		flags   agent.Config
		fileCfg hcl.HCL
		expect  agent.Config
	}{
		{
			name:    "File fills empty flags",
			flags:   agent.Config{},
			fileCfg: hcl.HCL{Source: "Course/", Target: "Student/", Agent: &hcl.Agent{Archive: true}},
			expect:  agent.Config{Source: "Course/", Target: "Student/", Archive: true},
		},
		{
			name:    "Flags win over file values",
			flags:   agent.Config{Source: "Flag/", Target: "FlagOut/"},
			fileCfg: hcl.HCL{Source: "Course/", Target: "Student/"},
			expect:  agent.Config{Source: "Flag/", Target: "FlagOut/"},
		},
		{
			name:    "No agent block leaves archive alone",
			flags:   agent.Config{Source: "a", Target: "b"},
			fileCfg: hcl.HCL{},
			expect:  agent.Config{Source: "a", Target: "b"},
		},
	}

	for _, tc := range testCases {
		got := mergeAgentConfig(tc.flags, tc.fileCfg)
		assert.Equal(t, tc.expect, got, tc.name)
	}
}

func TestRunCommandFlagParseFailure(t *testing.T) {
	ui := cli.NewMockUi()
	c := NewRunCommand(ui)
	rc := c.Run([]string{"-no-such-flag"})
	assert.Equal(t, FlagParseError, rc)
	assert.Contains(t, ui.ErrorWriter.String(), "Usage: nbredact run")
}

func TestRunCommandHelp(t *testing.T) {
	c := NewRunCommand(cli.NewMockUi())
	help := c.Help()
	assert.Contains(t, help, "Usage: nbredact run")
	assert.Contains(t, help, "-source")
	assert.Contains(t, help, "-target")
	assert.NotEmpty(t, c.Synopsis())
}

func Test_writeSummary(t *testing.T) {
	a, err := agent.NewAgent(agent.Config{Source: "in", Target: "out"}, hclog.NewNullLogger())
	require.NoError(t, err)
	a.Stats = agent.Stats{Documents: 3, CellsDropped: 2, CellsRedacted: 5, FilesCopied: 1}

	buf := new(bytes.Buffer)
	require.NoError(t, writeSummary(buf, a))

	out := buf.String()
	assert.Contains(t, out, "The student version can be found at out.")
	assert.Contains(t, out, "documents")
	assert.Contains(t, out, "3")
}

func Test_writeSummaryArchive(t *testing.T) {
	a, err := agent.NewAgent(agent.Config{Source: "in", Target: "out", Archive: true}, hclog.NewNullLogger())
	require.NoError(t, err)

	buf := new(bytes.Buffer)
	require.NoError(t, writeSummary(buf, a))
	assert.Contains(t, buf.String(), a.BundleDest())
}

func TestFormatReportLine(t *testing.T) {
	line := formatReportLine("a", "b", "c")
	assert.True(t, strings.HasSuffix(line, "\n"))
	assert.Equal(t, "a\tb\tc\t\n", line)
}
