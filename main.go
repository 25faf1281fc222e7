package main

import (
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/course-tools/nbredact/command"
	"github.com/course-tools/nbredact/version"
)

func main() {
	os.Exit(realMain())
}

func realMain() int {
	ui := &cli.BasicUi{
		Reader:      os.Stdin,
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
	}

	c := cli.NewCLI("nbredact", version.GetVersion().SemanticVersion())
	c.Args = os.Args[1:]
	c.Commands = map[string]cli.CommandFactory{
		"run":          command.RunCommandFactory(ui),
		"add-metadata": command.AddMetadataCommandFactory(ui),
		"install-hook": command.InstallHookCommandFactory(ui),
		"version":      command.VersionCommandFactory(ui),
	}

	rc, err := c.Run()
	if err != nil {
		hclog.L().Error("Failed to execute command", "error", err)
	}
	return rc
}
