package command

import (
	"testing"

	"github.com/mitchellh/cli"
	"github.com/stretchr/testify/assert"
)

func TestAddMetadataCommandFlagParseFailure(t *testing.T) {
	ui := cli.NewMockUi()
	c := NewAddMetadataCommand(ui)
	rc := c.Run([]string{"-no-such-flag"})
	assert.Equal(t, FlagParseError, rc)
	assert.Contains(t, ui.ErrorWriter.String(), "Usage: nbredact add-metadata")
}

func TestAddMetadataCommandHelp(t *testing.T) {
	c := NewAddMetadataCommand(cli.NewMockUi())
	help := c.Help()
	assert.Contains(t, help, "Usage: nbredact add-metadata")
	assert.Contains(t, help, "-source")
	assert.Contains(t, help, "-target")
	assert.NotEmpty(t, c.Synopsis())
}

func TestAddMetadataCommandMissingSource(t *testing.T) {
	ui := cli.NewMockUi()
	c := NewAddMetadataCommand(ui)
	rc := c.Run([]string{})
	assert.Equal(t, AgentSetupError, rc)
}
