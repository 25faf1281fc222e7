package command

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	home "github.com/mitchellh/go-homedir"

	"github.com/course-tools/nbredact/agent"
	"github.com/course-tools/nbredact/hcl"
)

var _ cli.Command = &RunCommand{}

type RunCommand struct {
	ui    cli.Ui
	flags *flag.FlagSet

	source  string
	target  string
	config  string
	archive bool
	dryrun  bool
}

func (c *RunCommand) init() {
	const (
		sourceUsageText  = "Instructor notebook/markdown file, or a directory of them"
		targetUsageText  = "File or directory the student version is written to"
		configUsageText  = "Path to HCL configuration file"
		archiveUsageText = "Compress the target directory into a tar.gz bundle after processing"
		dryrunUsageText  = "Displays all documents that would be processed during a normal run without actually processing them."
	)

	// flag.ContinueOnError allows flag.Parse to return an error if one comes up, rather than doing an `os.Exit(2)`
	// on its own.
	c.flags = flag.NewFlagSet("run", flag.ContinueOnError)

	c.flags.StringVar(&c.source, "source", "", sourceUsageText)
	c.flags.StringVar(&c.target, "target", "", targetUsageText)
	c.flags.StringVar(&c.config, "config", "", configUsageText)
	c.flags.BoolVar(&c.archive, "archive", false, archiveUsageText)
	c.flags.BoolVar(&c.dryrun, "dryrun", false, dryrunUsageText)

	// When invalid flags are provided, Go will output a usage message of its own. If we direct our flag set to
	// io.Discard, it will effectively be hidden, allowing us to print our own Help message upon failure.
	c.flags.SetOutput(io.Discard)
}

// NewRunCommand produces a new *command pointer, initialized for use in a CLI application.
func NewRunCommand(ui cli.Ui) *RunCommand {
	c := &RunCommand{ui: ui}
	c.init()
	return c
}

// RunCommandFactory provides a cli.CommandFactory that will produce an appropriately-initiated *command.
func RunCommandFactory(ui cli.Ui) cli.CommandFactory {
	return func() (cli.Command, error) {
		return NewRunCommand(ui), nil
	}
}

// Help provides help text to users who pass in the --help flag or who enter invalid options.
func (c *RunCommand) Help() string {
	helpText := `Usage: nbredact run [options]

Generates the student version of instructor teaching material: solutions are
stripped per cell directives, marker-delimited regions removed from markdown,
and volatile metadata sanitized. Options are available to customize the run.
`

	return Usage(helpText, c.flags)
}

// Synopsis provides a brief description of the command, for inclusion in the application's primary --help.
func (c *RunCommand) Synopsis() string {
	return "Generate the student version of instructor material"
}

// Run executes the command.
func (c *RunCommand) Run(args []string) int {
	if err := c.flags.Parse(args); err != nil {
		// Output the specific error to help the user understand what went wrong.
		c.ui.Warn(err.Error())
		// Since there was an issue in input, let's show our Help to try and assist the user.
		c.ui.Warn(c.Help())
		return FlagParseError
	}

	l := ConfigureLogging("nbredact")

	cfg := agent.Config{
		Source:  c.source,
		Target:  c.target,
		Archive: c.archive,
		Dryrun:  c.dryrun,
	}

	// Layer in file settings where flags were not given. Flags win.
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
		l.Debug("HCL config is", "hcl", fmt.Sprintf("%+v", fileCfg))
		cfg = mergeAgentConfig(cfg, fileCfg)

		regions, err := fileCfg.Regions()
		if err != nil {
			l.Error("Invalid markers configuration", "config", path, "error", err)
			return ConfigError
		}
		cfg.Regions = regions
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

	errs := a.Run()
	if 0 < len(errs) {
		return AgentExecutionError
	}

	// Skip any post-processing/reporting on dry runs because there are no results to handle
	if c.dryrun {
		return Success
	}

	if err := writeSummary(os.Stdout, a); err != nil {
		l.Warn("Failed to generate run summary; please review output files to ensure everything expected is present", "error", err)
	}

	return Success
}

// mergeAgentConfig fills config fields that were not set by flags from the settings file.
func mergeAgentConfig(config agent.Config, fileCfg hcl.HCL) agent.Config {
	if config.Source == "" {
		config.Source = fileCfg.Source
	}
	if config.Target == "" {
		config.Target = fileCfg.Target
	}
	if fileCfg.Agent != nil && !config.Archive {
		config.Archive = fileCfg.Agent.Archive
	}
	return config
}

// ConfigureLogging takes a logger name, sets the default configuration, grabs the LOG_LEVEL from our ENV vars, and
// returns a configured and usable logger.
func ConfigureLogging(loggerName string) hclog.Logger {
	// Create logger, set default and log level
	appLogger := hclog.New(&hclog.LoggerOptions{
		Name:  loggerName,
		Color: hclog.AutoColor,
	})
	hclog.SetDefault(appLogger)
	if logStr := os.Getenv("LOG_LEVEL"); logStr != "" {
		if level := hclog.LevelFromString(logStr); level != hclog.NoLevel {
			appLogger.SetLevel(level)
			appLogger.Debug("Logger configuration change", "LOG_LEVEL", hclog.Fmt("%s", logStr))
		}
	}
	return hclog.Default()
}

func writeSummary(writer io.Writer, a *agent.Agent) error {
	helpText := fmt.Sprintf("The run has completed. The student version can be found at %s.\n", a.Config.Target)
	if a.Config.Archive {
		helpText = fmt.Sprintf("The run has completed. The student bundle can be found at %s.\n", a.BundleDest())
	}
	if _, err := writer.Write([]byte(helpText)); err != nil {
		return err
	}

	t := tabwriter.NewWriter(writer, 0, 0, 2, ' ', 0)
	_, err := fmt.Fprint(t, formatReportLine(
		"documents", "cells dropped", "cells redacted", "files copied", "errors"))
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(t, formatReportLine(
		strconv.Itoa(a.Stats.Documents),
		strconv.Itoa(a.Stats.CellsDropped),
		strconv.Itoa(a.Stats.CellsRedacted),
		strconv.Itoa(a.Stats.FilesCopied),
		strconv.Itoa(a.Stats.Errors)))
	if err != nil {
		return err
	}

	return t.Flush()
}

func formatReportLine(cells ...string) string {
	format := ""

	// The coercion from the argument of type []string to type []interface is required for the later
	// call to fmt.Sprintf, in which variadic arguments must be of type any/interface{}.
	strValues := make([]interface{}, len(cells))
	for i, cell := range cells {
		format += "%s\t"
		strValues[i] = cell
	}

	format += "\n"

	return fmt.Sprintf(format, strValues...)
}
