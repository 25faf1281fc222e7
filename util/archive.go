package util

import (
	"archive/tar"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
)

// TarGz archives and compresses a source directory into destFileName.
// Entries are named relative to the source directory so unpacking does not
// recreate the absolute path the bundle was built from.
func TarGz(sourceDir string, destFileName string) error {
	destFile, err := os.Create(destFileName)
	if err != nil {
		hclog.L().Error("TarGz", "error creating archive", err)
		return err
	}
	defer destFile.Close()

	gzWriter := gzip.NewWriter(destFile)
	defer gzWriter.Close()

	tarWriter := tar.NewWriter(gzWriter)
	defer tarWriter.Close()

	return filepath.Walk(sourceDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(sourceDir, path)
		if err != nil {
			return err
		}

		sourceFile, err := os.Open(path)
		if err != nil {
			hclog.L().Error("TarGz", "error opening source file", err)
			return err
		}
		defer sourceFile.Close()

		header := &tar.Header{
			Name:    filepath.ToSlash(rel),
			Size:    info.Size(),
			Mode:    int64(info.Mode()),
			ModTime: info.ModTime(),
		}
		if err := tarWriter.WriteHeader(header); err != nil {
			hclog.L().Error("TarGz", "error writing header for tar", err)
			return err
		}
		if _, err := io.Copy(tarWriter, sourceFile); err != nil {
			hclog.L().Error("TarGz", "error copying file to archive", err)
			return err
		}
		return nil
	})
}
