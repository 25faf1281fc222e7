package command

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mitchellh/cli"
	home "github.com/mitchellh/go-homedir"

	"github.com/course-tools/nbredact/agent"
	"github.com/course-tools/nbredact/hcl"
)

var _ cli.Command = &AddMetadataCommand{}

type AddMetadataCommand struct {
	ui    cli.Ui
	flags *flag.FlagSet

	source string
	target string
	config string
	dryrun bool
}

func (c *AddMetadataCommand) init() {
	const (
		sourceUsageText = "Notebook file with legacy comment markers, or a directory of them"
		targetUsageText = "File or directory the annotated version is written to"
		configUsageText = "Path to HCL configuration file"
		dryrunUsageText = "Displays all documents that would be annotated during a normal run without actually annotating them."
	)

	c.flags = flag.NewFlagSet("add-metadata", flag.ContinueOnError)

	c.flags.StringVar(&c.source, "source", "", sourceUsageText)
	c.flags.StringVar(&c.target, "target", "", targetUsageText)
	c.flags.StringVar(&c.config, "config", "", configUsageText)
	c.flags.BoolVar(&c.dryrun, "dryrun", false, dryrunUsageText)

	c.flags.SetOutput(io.Discard)
}

// NewAddMetadataCommand produces a new *command pointer, initialized for use in a CLI application.
func NewAddMetadataCommand(ui cli.Ui) *AddMetadataCommand {
	c := &AddMetadataCommand{ui: ui}
	c.init()
	return c
}

// AddMetadataCommandFactory provides a cli.CommandFactory that will produce an appropriately-initiated *command.
func AddMetadataCommandFactory(ui cli.Ui) cli.CommandFactory {
	return func() (cli.Command, error) {
		return NewAddMetadataCommand(ui), nil
	}
}

// Help provides help text to users who pass in the --help flag or who enter invalid options.
func (c *AddMetadataCommand) Help() string {
	helpText := `Usage: nbredact add-metadata [options]

Migrates notebooks that mark solutions with legacy first-line comments to the
metadata directive vocabulary: each marked cell gets a remove_code entry, and
the comment markers themselves are left in place. Markdown documents and other
files are copied through unchanged.
`

	return Usage(helpText, c.flags)
}

// Synopsis provides a brief description of the command, for inclusion in the application's primary --help.
func (c *AddMetadataCommand) Synopsis() string {
	return "Migrate legacy comment markers to metadata directives"
}

// Run executes the command.
func (c *AddMetadataCommand) Run(args []string) int {
	if err := c.flags.Parse(args); err != nil {
		c.ui.Warn(err.Error())
		c.ui.Warn(c.Help())
		return FlagParseError
	}

	l := ConfigureLogging("nbredact")

	cfg := agent.Config{
		Source: c.source,
		Target: c.target,
		Dryrun: c.dryrun,
	}

	if c.config != "" {
		path, err := home.Expand(c.config)
		if err != nil {
			l.Error("Failed to expand config path", "config", c.config, "error", err)
			return ConfigError
		}
		fileCfg, err := hcl.Parse(path)
		if err != nil {
			l.Error("Failed to load configuration", "config", path, "error", err)
			return ConfigError
		}
		cfg = mergeAgentConfig(cfg, fileCfg)
		// Annotation never bundles; only paths are taken from the file.
		cfg.Archive = false
	}

	var err error
	if cfg.Source, err = home.Expand(cfg.Source); err != nil {
		l.Error("Failed to expand source path", "source", cfg.Source, "error", err)
		return ConfigError
	}
	if cfg.Target, err = home.Expand(cfg.Target); err != nil {
		l.Error("Failed to expand target path", "target", cfg.Target, "error", err)
		return ConfigError
	}

	a, err := agent.NewAgent(cfg, l)
	if err != nil {
		l.Error("Problem creating agent", "error", err)
		return AgentSetupError
	}

	errs := a.RunAnnotate()
	if 0 < len(errs) {
		return AgentExecutionError
	}

	if c.dryrun {
		return Success
	}

	fmt.Fprintf(os.Stdout, "Annotation complete. %d cells updated across %d documents; results at %s.\n",
		a.Stats.CellsAnnotated, a.Stats.Documents, a.Config.Target)

	return Success
}
