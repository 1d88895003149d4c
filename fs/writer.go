// Package fs provides file-based storage helpers for committing documents.
package fs

import (
	"bufio"
	"errors"
	"io"
	iofs "io/fs"
	"path/filepath"

	"github.com/google/renameio/v2"
)

// defaultMode is used when the target file does not exist yet.
const defaultMode iofs.FileMode = 0644

// WriteFile replaces the file at path with the bytes produced by write.
//
// The content is written to a temporary file in the same directory and
// renamed over path once complete, so an interrupted write never leaves a
// truncated file behind. The permissions of an existing file are kept and
// symlinks are followed so the link itself survives.
func WriteFile(path string, write func(w io.Writer) error) error {
	target, err := resolve(path)
	if err != nil {
		return err
	}

	f, err := renameio.NewPendingFile(target,
		renameio.WithPermissions(defaultMode),
		renameio.WithExistingPermissions(),
	)
	if err != nil {
		return err
	}
	defer func() { _ = f.Cleanup() }()

	bw := bufio.NewWriter(f)
	if err := write(bw); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return err
	}

	return f.CloseAtomicallyReplace()
}

// resolve follows symlinks at path. A path that does not exist yet is
// returned unchanged.
func resolve(path string) (string, error) {
	target, err := filepath.EvalSymlinks(path)
	if errors.Is(err, iofs.ErrNotExist) {
		return path, nil
	}
	return target, err
}
