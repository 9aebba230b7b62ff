package docbind

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Scan enumerates supported files under dir and returns them in lexical walk
// order. The sorted order is deliberate: the original directory listing is
// filesystem-dependent, and a stable order keeps section numbering
// reproducible across runs and platforms.
//
// Files with unsupported extensions are skipped silently; an empty result is
// not an error. Fails with ErrDirectoryNotFound if dir does not exist or is
// not a directory.
func Scan(dir string) ([]InputFile, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDirectoryNotFound, dir)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrDirectoryNotFound, dir)
	}

	var files []InputFile
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		kind, kerr := KindForExtension(ext)
		if kerr != nil {
			return nil // unsupported extension: skip, not an error
		}

		fi, statErr := d.Info()
		if statErr != nil {
			return fmt.Errorf("scanning %s: %w", path, statErr)
		}

		rel, relErr := filepath.Rel(dir, path)
		if relErr != nil {
			rel = d.Name()
		}

		files = append(files, InputFile{
			Path:    path,
			RelPath: rel,
			Name:    d.Name(),
			Ext:     ext,
			Kind:    kind,
			ModTime: fi.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}
