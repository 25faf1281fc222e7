// Package agent orchestrates a redaction run: it discovers candidate
// documents, feeds each one whole through the redact engine, copies
// everything else unchanged, and reports what happened. Documents are
// independent; an error in one never aborts the batch.
package agent

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/course-tools/nbredact/notebook"
	"github.com/course-tools/nbredact/redact"
	"github.com/course-tools/nbredact/util"
)

// Stats aggregates counters across a run, for the end-of-run summary.
type Stats struct {
	Documents      int `json:"documents"`
	CellsDropped   int `json:"cells_dropped"`
	CellsRedacted  int `json:"cells_redacted"`
	CellsAnnotated int `json:"cells_annotated"`
	FilesCopied    int `json:"files_copied"`
	Errors         int `json:"errors"`
}

// Agent holds the configuration and accumulated state of one run.
type Agent struct {
	l      hclog.Logger
	Config Config    `json:"configuration"`
	Stats  Stats     `json:"statistics"`
	Start  time.Time `json:"started_at"`
	End    time.Time `json:"ended_at"`
}

func NewAgent(config Config, logger hclog.Logger) (*Agent, error) {
	if config.Source == "" {
		return nil, fmt.Errorf("agent config requires a source path")
	}
	if config.Target == "" {
		return nil, fmt.Errorf("agent config requires a target path")
	}
	if len(config.Regions) == 0 {
		config.Regions = redact.DefaultRegions()
	}
	return &Agent{l: logger, Config: config}, nil
}

// Run processes the configured source and returns every error encountered.
// Per-document errors are collected, logged, and do not stop the run; only a
// source that cannot be read at all ends it early.
func (a *Agent) Run() []error {
	return a.run(a.runFile)
}

// RunAnnotate migrates legacy comment-marker notebooks to metadata
// directives instead of redacting them, with the same walking and copying
// behavior as Run.
func (a *Agent) RunAnnotate() []error {
	return a.run(a.annotateFile)
}

func (a *Agent) run(process func(src, dst string) error) []error {
	var errs []error

	a.Start = time.Now()
	defer func() { a.End = time.Now() }()

	info, err := os.Stat(a.Config.Source)
	if err != nil {
		a.l.Error("Failed to read source", "source", a.Config.Source, "error", err)
		return []error{err}
	}

	if info.IsDir() {
		errs = a.runFolder(process)
	} else if err := process(a.Config.Source, a.Config.Target); err != nil {
		errs = append(errs, err)
	}
	a.Stats.Errors = len(errs)

	// Bundling only makes sense for directory runs.
	if a.Config.Archive && info.IsDir() && !a.Config.Dryrun {
		if err := a.writeBundle(); err != nil {
			errs = append(errs, err)
			a.Stats.Errors = len(errs)
		}
	}
	return errs
}

// runFolder processes each document directly inside the source directory and
// copies other regular files unchanged. Subdirectories are not descended
// into; nested courses are separate runs.
func (a *Agent) runFolder(process func(src, dst string) error) []error {
	var errs []error

	entries, err := os.ReadDir(a.Config.Source)
	if err != nil {
		return []error{err}
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		src := filepath.Join(a.Config.Source, name)
		dst := filepath.Join(a.Config.Target, name)

		if isDocument(name) {
			if err := process(src, dst); err != nil {
				a.l.Error("Failed to process document", "path", src, "error", err)
				errs = append(errs, err)
			}
			continue
		}

		if a.Config.Dryrun {
			a.l.Info("Would copy", "path", src, "to", dst)
			continue
		}
		if err := util.CopyFile(dst, src); err != nil {
			a.l.Error("Failed to copy file", "path", src, "error", err)
			errs = append(errs, err)
			continue
		}
		a.Stats.FilesCopied++
	}
	return errs
}

func (a *Agent) runFile(src, dst string) error {
	switch {
	case strings.HasSuffix(src, ".ipynb"):
		return a.ProcessNotebook(src, dst)
	case strings.HasSuffix(src, ".md") || strings.HasSuffix(src, ".markdown"):
		return a.ProcessMarkdown(src, dst)
	default:
		return fmt.Errorf("unsupported document type: %s", src)
	}
}

// annotateFile migrates a notebook in place of redacting it. Markdown has no
// legacy comment markers, so it is copied through unchanged.
func (a *Agent) annotateFile(src, dst string) error {
	switch {
	case strings.HasSuffix(src, ".ipynb"):
		return a.AnnotateNotebook(src, dst)
	case strings.HasSuffix(src, ".md") || strings.HasSuffix(src, ".markdown"):
		if a.Config.Dryrun {
			a.l.Info("Would copy", "path", src, "to", dst)
			return nil
		}
		if err := util.CopyFile(dst, src); err != nil {
			return err
		}
		a.Stats.FilesCopied++
		return nil
	default:
		return fmt.Errorf("unsupported document type: %s", src)
	}
}

// AnnotateNotebook rewrites one notebook with remove_code metadata derived
// from its legacy first-line comment markers.
func (a *Agent) AnnotateNotebook(src, dst string) error {
	if a.Config.Dryrun {
		a.l.Info("Would annotate notebook", "path", src, "to", dst)
		return nil
	}
	a.l.Debug("Annotating notebook", "path", src)

	doc, err := notebook.Load(src)
	if err != nil {
		return err
	}

	annotated := redact.Annotate(doc)

	if err := doc.Write(dst); err != nil {
		return err
	}

	a.Stats.Documents++
	a.Stats.CellsAnnotated += annotated
	a.l.Info("Annotated notebook", "path", dst, "cells", annotated)
	return nil
}

// ProcessNotebook produces the student version of one notebook: whole-file
// read, in-memory transform, whole-file write. Cell-level directive errors
// are logged and counted but leave the document producible.
func (a *Agent) ProcessNotebook(src, dst string) error {
	if a.Config.Dryrun {
		a.l.Info("Would process notebook", "path", src, "to", dst)
		return nil
	}
	a.l.Debug("Processing notebook", "path", src)

	doc, err := notebook.Load(src)
	if err != nil {
		return err
	}

	summary, cellErrs := redact.Apply(doc)
	for _, cellErr := range cellErrs {
		a.l.Warn("Cell directive problem", "path", src, "error", cellErr)
	}

	if err := doc.Write(dst); err != nil {
		return err
	}

	a.Stats.Documents++
	a.Stats.CellsDropped += summary.CellsDropped
	a.Stats.CellsRedacted += summary.CellsRedacted
	a.l.Info("Created student version", "path", dst,
		"dropped", summary.CellsDropped, "redacted", summary.CellsRedacted)
	return nil
}

// ProcessMarkdown removes solution, skip, and notes regions from a flat
// markdown document, in that order.
func (a *Agent) ProcessMarkdown(src, dst string) error {
	if a.Config.Dryrun {
		a.l.Info("Would process markdown", "path", src, "to", dst)
		return nil
	}
	a.l.Debug("Processing markdown", "path", src)

	bts, err := os.ReadFile(src)
	if err != nil {
		return err
	}

	lines := notebook.SplitLines(string(bts))
	kept := redact.FilterDocumentText(lines, a.Config.Regions, redact.Structural)

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(dst, []byte(strings.Join(kept, "")), 0644); err != nil {
		return err
	}

	a.Stats.Documents++
	a.l.Info("Created student version", "path", dst, "removed_lines", len(lines)-len(kept))
	return nil
}

// writeBundle compresses the target directory into a sibling tar.gz.
func (a *Agent) writeBundle() error {
	dest := a.BundleDest()
	a.l.Info("Writing bundle", "path", dest)
	return util.TarGz(filepath.Clean(a.Config.Target), dest)
}

// BundleDest returns the archive path used when Config.Archive is set.
func (a *Agent) BundleDest() string {
	return filepath.Clean(a.Config.Target) + ".tar.gz"
}

func isDocument(name string) bool {
	return strings.HasSuffix(name, ".ipynb") ||
		strings.HasSuffix(name, ".md") ||
		strings.HasSuffix(name, ".markdown")
}
