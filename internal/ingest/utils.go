package ingest

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/joseph-ayodele/course-stats/constants"
)

// AllowedExt checks if a file extension has a reader.
func AllowedExt(ext string) bool {
	_, ok := constants.KindForExt(ext)
	return ok
}

// UnsupportedExt reports a recognized timetable format that cannot be read.
func UnsupportedExt(ext string) bool {
	_, ok := constants.UnsupportedExtensions[constants.NormalizeExt(ext)]
	return ok
}

// IsHidden checks if a file or directory is hidden (starts with '.').
func IsHidden(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".")
}

// IsLockFile matches the "~$name.xlsx" owner files office suites leave next
// to open workbooks.
func IsLockFile(path string) bool {
	return strings.HasPrefix(filepath.Base(path), "~$")
}

// HashFile returns the hex SHA-256 of the file content and its size.
func HashFile(path string) (string, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", 0, err
	}
	defer f.Close()

	h := sha256.New()
	n, err := io.Copy(h, f)
	if err != nil {
		return "", 0, fmt.Errorf("hash %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), n, nil
}
