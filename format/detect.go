// Package format provides input format detection for the enbx2html library.
package format

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Format represents a supported input format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// ENBX indicates a packed EasiNote courseware container (ZIP based).
	ENBX
	// PackageDir indicates an already-unpacked courseware directory.
	PackageDir
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case ENBX:
		return "ENBX"
	case PackageDir:
		return "PackageDir"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	if f == ENBX {
		return ".enbx"
	}
	return ""
}

// Detect determines the input format from the filename extension.
// Directories are probed for the package marker files.
func Detect(path string) Format {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		if isPackageDir(path) {
			return PackageDir
		}
		return Unknown
	}

	if strings.ToLower(filepath.Ext(path)) == ".enbx" {
		return ENBX
	}
	return Unknown
}

// DetectFromMagic checks file magic bytes. ENBX containers are plain ZIP
// archives, so this can only confirm the ZIP envelope; use DetectFromReader
// to verify the courseware parts inside.
func DetectFromMagic(data []byte) Format {
	if len(data) < 4 {
		return Unknown
	}

	// ZIP magic: PK\x03\x04
	if data[0] == 0x50 && data[1] == 0x4B && data[2] == 0x03 && data[3] == 0x04 {
		return ENBX
	}

	return Unknown
}

// DetectFromReader inspects the content to determine the format. This is
// more reliable than extension-based detection: it opens the ZIP directory
// and looks for the courseware descriptor parts.
func DetectFromReader(r io.ReaderAt, size int64) (Format, error) {
	magic := make([]byte, 4)
	n, err := r.ReadAt(magic, 0)
	if err != nil && err != io.EOF {
		return Unknown, err
	}
	if DetectFromMagic(magic[:n]) != ENBX {
		return Unknown, nil
	}

	zr, err := zip.NewReader(r, size)
	if err != nil {
		return Unknown, err
	}

	return detectZIPFormat(zr), nil
}

// detectZIPFormat inspects a ZIP archive for courseware markers.
func detectZIPFormat(zr *zip.Reader) Format {
	var hasBoard, hasDocument, hasContentTypes bool
	for _, f := range zr.File {
		switch f.Name {
		case "Board.xml":
			hasBoard = true
		case "Document.xml":
			hasDocument = true
		case "[Content_Types].xml":
			hasContentTypes = true
		}
	}

	// Board.xml is the one part the conversion cannot proceed without.
	// Document.xml or the OPC content-types part confirm the family.
	if hasBoard && (hasDocument || hasContentTypes) {
		return ENBX
	}

	return Unknown
}

// isPackageDir reports whether dir looks like an unpacked courseware
// package (Board.xml present at the root).
func isPackageDir(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, "Board.xml"))
	return err == nil && !info.IsDir()
}
