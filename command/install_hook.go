package command

import (
	"flag"
	"io"

	"github.com/mitchellh/cli"
	home "github.com/mitchellh/go-homedir"

	"github.com/course-tools/nbredact/hcl"
	"github.com/course-tools/nbredact/hook"
)

var _ cli.Command = &InstallHookCommand{}

type InstallHookCommand struct {
	ui    cli.Ui
	flags *flag.FlagSet

	repo      string
	template  string
	source    string
	target    string
	config    string
	verbose   bool
	extraArgs string
}

func (c *InstallHookCommand) init() {
	const (
		repoUsageText      = "Repository root whose .git/hooks directory receives the hook"
		templateUsageText  = "Path to the pre-commit template to render"
		sourceUsageText    = "Instructor source path baked into the hook"
		targetUsageText    = "Student target path baked into the hook"
		configUsageText    = "Path to HCL configuration file"
		verboseUsageText   = "Enable verbose output in the installed hook"
		extraArgsUsageText = "Additional arguments appended to the hook's run command"
	)

	c.flags = flag.NewFlagSet("install-hook", flag.ContinueOnError)

	c.flags.StringVar(&c.repo, "repo", ".", repoUsageText)
	c.flags.StringVar(&c.template, "template", "", templateUsageText)
	c.flags.StringVar(&c.source, "source", "", sourceUsageText)
	c.flags.StringVar(&c.target, "target", "", targetUsageText)
	c.flags.StringVar(&c.config, "config", "", configUsageText)
	c.flags.BoolVar(&c.verbose, "verbose", false, verboseUsageText)
	c.flags.StringVar(&c.extraArgs, "extra-args", "", extraArgsUsageText)

	c.flags.SetOutput(io.Discard)
}

func NewInstallHookCommand(ui cli.Ui) *InstallHookCommand {
	c := &InstallHookCommand{ui: ui}
	c.init()
	return c
}

// InstallHookCommandFactory provides a cli.CommandFactory that will produce an appropriately-initiated *command.
func InstallHookCommandFactory(ui cli.Ui) cli.CommandFactory {
	return func() (cli.Command, error) {
		return NewInstallHookCommand(ui), nil
	}
}

func (c *InstallHookCommand) Help() string {
	helpText := `Usage: nbredact install-hook [options]

Installs a pre-commit hook that regenerates the student version of the
configured material on every commit. The repository root is explicit
configuration and is never discovered from the environment.
`

	return Usage(helpText, c.flags)
}

func (c *InstallHookCommand) Synopsis() string {
	return "Install the student-version pre-commit hook"
}

// Run executes the command.
func (c *InstallHookCommand) Run(args []string) int {
	if err := c.flags.Parse(args); err != nil {
		c.ui.Warn(err.Error())
		c.ui.Warn(c.Help())
		return FlagParseError
	}

	l := ConfigureLogging("nbredact")

	cfg := hook.Config{
		RepoDir:   c.repo,
		Template:  c.template,
		Source:    c.source,
		Target:    c.target,
		Verbose:   c.verbose,
		ExtraArgs: c.extraArgs,
	}

	if c.config != "" {
		fileCfg, err := hcl.Parse(c.config)
		if err != nil {
			l.Error("Failed to load configuration", "config", c.config, "error", err)
			return ConfigError
		}
		cfg = mergeHookConfig(cfg, fileCfg)
	}

	var err error
	if cfg.RepoDir, err = home.Expand(cfg.RepoDir); err != nil {
		l.Error("Failed to expand repo path", "repo", cfg.RepoDir, "error", err)
		return ConfigError
	}

	path, err := hook.Install(cfg)
	if err != nil {
		l.Error("Failed to install pre-commit hook", "error", err)
		return HookError
	}

	c.ui.Output("Pre-commit hook installed at: " + path)
	return Success
}

// mergeHookConfig fills hook config fields that were not set by flags from the settings file.
func mergeHookConfig(cfg hook.Config, fileCfg hcl.HCL) hook.Config {
	if cfg.Source == "" {
		cfg.Source = fileCfg.Source
	}
	if cfg.Target == "" {
		cfg.Target = fileCfg.Target
	}
	if fileCfg.Hook == nil {
		return cfg
	}
	if cfg.Template == "" {
		cfg.Template = fileCfg.Hook.Template
	}
	if cfg.ExtraArgs == "" {
		cfg.ExtraArgs = fileCfg.Hook.ExtraArgs
	}
	if cfg.RepoDir == "." && fileCfg.Hook.Repo != "" {
		cfg.RepoDir = fileCfg.Hook.Repo
	}
	return cfg
}
