package sink

import (
	"fmt"
	"path/filepath"

	"github.com/pluqqy/adaptergen/internal/logger"
	"github.com/pluqqy/adaptergen/pkg/files"
	"github.com/pluqqy/adaptergen/pkg/substitute"
)

// Download materializes rendered text as a file inside a target directory
type Download struct {
	dir string
	log *logger.Logger
}

func NewDownload(dir string, log *logger.Logger) *Download {
	if dir == "" {
		dir = "."
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Download{dir: dir, log: log}
}

// Path returns where filename would be written
func (d *Download) Path(filename string) string {
	return filepath.Join(d.dir, filename)
}

// DownloadAsFile writes content as UTF-8 text named filename and returns the
// written path. An existing file is replaced.
func (d *Download) DownloadAsFile(filename, content string) (string, error) {
	if filename == "" {
		return "", fmt.Errorf("filename is required")
	}
	if filepath.Base(filename) != filename {
		return "", fmt.Errorf("filename %q must not contain a directory", filename)
	}

	path := d.Path(filename)
	if err := files.WriteFile(path, content); err != nil {
		d.log.Warn("download failed", "path", path, "error", err)
		return "", err
	}

	d.log.Debug("artifact written", "path", path, "bytes", len(content))
	return path, nil
}

// DownloadArtifact writes the current artifact
func (d *Download) DownloadArtifact(filename string, artifact *substitute.Artifact) (string, error) {
	return d.DownloadAsFile(filename, artifact.String())
}
