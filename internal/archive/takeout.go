// Package archive locates and extracts a Google Takeout chat export: an
// already-extracted Takeout folder, or the newest takeout-*.zip in the
// downloads directory.
package archive

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound reports that neither an extracted Takeout folder nor a
// candidate zip exists in the downloads directory.
var ErrNotFound = errors.New("no takeout archive found")

const (
	zipPrefix = "takeout-"
	zipSuffix = ".zip"
)

// groupsSubdir is where the chat conversations live inside an export.
var groupsSubdir = filepath.Join("Takeout", "Google Chat", "Groups")

// DownloadsDir returns the well-known archive location, ~/Downloads.
func DownloadsDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, "Downloads")
}

// FindExtracted reports the Groups folder of an already-extracted Takeout
// under dir, if present.
func FindExtracted(dir string) (string, bool) {
	path := filepath.Join(dir, groupsSubdir)
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return path, true
	}
	return "", false
}

// FindLatestZip returns the most recently modified takeout-*.zip in dir.
// Equal modification times keep the directory listing's order.
func FindLatestZip(dir string) (string, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}

	best := ""
	var bestMtime int64 = -1
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, zipPrefix) || !strings.HasSuffix(name, zipSuffix) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if mt := info.ModTime().UnixNano(); mt > bestMtime {
			best = filepath.Join(dir, name)
			bestMtime = mt
		}
	}

	return best, best != ""
}

// Locate returns the Groups folder under dir, extracting the most recent
// Takeout zip first when no extracted copy exists. ErrNotFound means there
// is nothing to work with: no extracted folder and no candidate zip.
func Locate(dir string) (string, error) {
	if groups, ok := FindExtracted(dir); ok {
		fmt.Println("✅ Found extracted Takeout folder.")
		return groups, nil
	}

	zipPath, ok := FindLatestZip(dir)
	if !ok {
		return "", ErrNotFound
	}
	fmt.Println("✅ Found latest ZIP:", zipPath)

	fmt.Println("📦 Extracting ZIP...")
	if err := Extract(zipPath, dir); err != nil {
		return "", err
	}
	fmt.Println("✅ Extraction completed.")

	groups, ok := FindExtracted(dir)
	if !ok {
		return "", fmt.Errorf("extracted, but %s not found under %s", groupsSubdir, dir)
	}
	return groups, nil
}

// Extract unpacks zipPath into destDir, preserving the archive's directory
// structure. Entries that would escape destDir are rejected.
func Extract(zipPath, destDir string) error {
	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return fmt.Errorf("open zip: %w", err)
	}
	defer r.Close()

	for _, f := range r.File {
		if err := extractFile(f, destDir); err != nil {
			return fmt.Errorf("extract %s: %w", f.Name, err)
		}
	}
	return nil
}

func extractFile(f *zip.File, destDir string) error {
	target := filepath.Join(destDir, filepath.FromSlash(f.Name))

	// zip-slip guard
	if rel, err := filepath.Rel(destDir, target); err != nil || strings.HasPrefix(rel, "..") {
		return fmt.Errorf("entry escapes destination: %s", f.Name)
	}

	if f.FileInfo().IsDir() {
		return os.MkdirAll(target, 0o755)
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, rc)
	return err
}
