package enbxdoc

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"enbx2html/format"
)

// Unpack extracts the ENBX container at src into dst, preserving
// relative paths. Existing files are overwritten in place, so re-running
// a conversion into the same directory is idempotent. The input is
// verified to be an ENBX archive (ZIP envelope plus courseware marker
// parts) before anything is written; failures wrap ErrArchive.
func Unpack(src, dst string) error {
	f, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrArchive, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrArchive, err)
	}

	detected, err := format.DetectFromReader(f, info.Size())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrArchive, err)
	}
	if detected != format.ENBX {
		return fmt.Errorf("%w: %s is not an ENBX container", ErrArchive, src)
	}

	zr, err := zip.NewReader(f, info.Size())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrArchive, err)
	}

	if err := os.MkdirAll(dst, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}

	for _, entry := range zr.File {
		if err := extractEntry(entry, dst); err != nil {
			return err
		}
	}

	return nil
}

// extractEntry writes a single archive entry under dst, rejecting
// entries whose cleaned path would escape it.
func extractEntry(entry *zip.File, dst string) error {
	name := filepath.FromSlash(entry.Name)
	target := filepath.Join(dst, name)

	// Zip-slip guard: the joined path must stay inside dst.
	if rel, err := filepath.Rel(dst, target); err != nil || rel == ".." ||
		strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%w: entry %q escapes target directory", ErrArchive, entry.Name)
	}

	if entry.FileInfo().IsDir() {
		return os.MkdirAll(target, 0o755)
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", entry.Name, err)
	}

	rc, err := entry.Open()
	if err != nil {
		return fmt.Errorf("%w: reading entry %s: %v", ErrArchive, entry.Name, err)
	}
	defer rc.Close()

	out, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("writing %s: %w", target, err)
	}

	if _, err := io.Copy(out, rc); err != nil {
		out.Close()
		return fmt.Errorf("%w: extracting %s: %v", ErrArchive, entry.Name, err)
	}

	return out.Close()
}
