// Package hook installs the pre-commit hook that regenerates the student
// version on every commit. The repository root and template location are
// explicit configuration; nothing is discovered from the environment.
package hook

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cosiner/argv"
	"github.com/hashicorp/go-hclog"
)

// Placeholders substituted in the pre-commit template.
const (
	sourcePlaceholder    = "__SOURCE_PATH__"
	targetPlaceholder    = "__TARGET_PATH__"
	verbosePlaceholder   = "__VERBOSE__"
	extraArgsPlaceholder = "__ADDITIONAL_ARGS__"
)

const hookPerms = 0755

type Config struct {
	// RepoDir is the repository root; its .git/hooks directory receives the
	// rendered hook.
	RepoDir string

	// Template is the path of the hook template to render.
	Template string

	Source    string
	Target    string
	Verbose   bool
	ExtraArgs string
}

// Install renders the template with the configured paths and writes it to
// <repo>/.git/hooks/pre-commit, marking it executable. It returns the path
// of the installed hook.
func Install(cfg Config) (string, error) {
	gitDir := filepath.Join(cfg.RepoDir, ".git")
	info, err := os.Stat(gitDir)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("%s is not a git repository root", cfg.RepoDir)
	}

	// Reject extra args a shell would not split cleanly, before they are
	// baked into an executable script.
	if cfg.ExtraArgs != "" {
		if _, err := argv.Argv(cfg.ExtraArgs, nil, nil); err != nil {
			return "", fmt.Errorf("invalid extra args %q: %w", cfg.ExtraArgs, err)
		}
	}

	template, err := os.ReadFile(cfg.Template)
	if err != nil {
		return "", fmt.Errorf("failed to read hook template: %w", err)
	}

	verboseFlag := ""
	if cfg.Verbose {
		verboseFlag = "-verbose"
	}
	content := strings.NewReplacer(
		sourcePlaceholder, cfg.Source,
		targetPlaceholder, cfg.Target,
		verbosePlaceholder, verboseFlag,
		extraArgsPlaceholder, cfg.ExtraArgs,
	).Replace(string(template))

	hooksDir := filepath.Join(gitDir, "hooks")
	if err := os.MkdirAll(hooksDir, 0755); err != nil {
		return "", err
	}
	hookPath := filepath.Join(hooksDir, "pre-commit")
	if err := os.WriteFile(hookPath, []byte(content), hookPerms); err != nil {
		return "", err
	}
	// WriteFile honours umask; make sure the execute bits stick.
	if err := os.Chmod(hookPath, hookPerms); err != nil {
		return "", err
	}

	hclog.L().Info("Installed pre-commit hook", "path", hookPath)
	return hookPath, nil
}
