package util

import (
	"io"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
)

const directoryPerms = 0755

// CopyFile copies a file to a target file path, creating parent directories
// as needed.
func CopyFile(to, src string) error {
	hclog.L().Debug("copying", "path", src, "to", to)

	// Ensure directories
	dir, _ := filepath.Split(to)
	err := os.MkdirAll(dir, directoryPerms)
	if err != nil {
		return err
	}

	// Open source file
	r, err := os.Open(src)
	if err != nil {
		return err
	}
	defer r.Close()

	// Create destination file
	w, err := os.Create(to)
	if err != nil {
		return err
	}
	defer w.Close()

	// Write source contents to destination
	_, err = io.Copy(w, r)
	return err
}
