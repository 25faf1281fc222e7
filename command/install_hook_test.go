package command

import (
	"testing"

	"github.com/mitchellh/cli"
	"github.com/stretchr/testify/assert"

	"github.com/course-tools/nbredact/hcl"
	"github.com/course-tools/nbredact/hook"
)

func TestMergeHookConfig(t *testing.T) {
	testCases := []struct {
		name    string
		flags   hook.Config
		fileCfg hcl.HCL
		expect  hook.Config
	}{
		{
			name:  "File fills empty flags",
			flags: hook.Config{RepoDir: "."},
			fileCfg: hcl.HCL{
				Source: "Course/",
				Target: "Student/",
				Hook: &hcl.Hook{
					Repo:      "/srv/course",
					Template:  "tmpl.sh",
					ExtraArgs: "-archive",
				},
			},
			expect: hook.Config{
				RepoDir:   "/srv/course",
				Template:  "tmpl.sh",
				Source:    "Course/",
				Target:    "Student/",
				ExtraArgs: "-archive",
			},
		},
		{
			name: "Flags win over file values",
			flags: hook.Config{
				RepoDir:  "/flag/repo",
				Template: "flag.sh",
				Source:   "FlagSrc/",
				Target:   "FlagDst/",
			},
			fileCfg: hcl.HCL{
				Source: "Course/",
				Hook:   &hcl.Hook{Repo: "/file/repo", Template: "file.sh"},
			},
			expect: hook.Config{
				RepoDir:  "/flag/repo",
				Template: "flag.sh",
				Source:   "FlagSrc/",
				Target:   "FlagDst/",
			},
		},
		{
			name:    "No hook block leaves flags untouched",
			flags:   hook.Config{RepoDir: ".", Template: "t.sh"},
			fileCfg: hcl.HCL{Source: "Course/"},
			expect:  hook.Config{RepoDir: ".", Template: "t.sh", Source: "Course/"},
		},
	}

	for _, tc := range testCases {
		got := mergeHookConfig(tc.flags, tc.fileCfg)
		assert.Equal(t, tc.expect, got, tc.name)
	}
}

func TestInstallHookCommandHelp(t *testing.T) {
	c := NewInstallHookCommand(cli.NewMockUi())
	help := c.Help()
	assert.Contains(t, help, "Usage: nbredact install-hook")
	assert.Contains(t, help, "-template")
	assert.NotEmpty(t, c.Synopsis())
}

func TestInstallHookCommandFlagParseFailure(t *testing.T) {
	ui := cli.NewMockUi()
	c := NewInstallHookCommand(ui)
	rc := c.Run([]string{"-bogus"})
	assert.Equal(t, FlagParseError, rc)
}
