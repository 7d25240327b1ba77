package store

import (
	"os"
	"path/filepath"
	"strings"

	"revu/internal/logs"
	"revu/internal/notes"
)

// ScanDirs walks the configured note directories and parses every file
// with a matching extension. Ids are assigned in scan order. Unreadable
// files are logged and skipped; files too short to carry metadata still
// produce a placeholder note so they show up in listings.
func ScanDirs(dirs []string, exts []string) []*notes.Note {
	var scanned []*notes.Note
	for _, dir := range dirs {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			logs.Logger.Printf("Warning: could not resolve %s: %v", dir, err)
			continue
		}
		walkNotesDir(absDir, exts, &scanned)
	}
	return scanned
}

func walkNotesDir(dir string, exts []string, scanned *[]*notes.Note) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			logs.Logger.Printf("Warning: could not read %s: %v", dir, err)
		}
		return
	}

	for _, entry := range entries {
		name := entry.Name()
		path := filepath.Join(dir, name)

		if entry.IsDir() {
			if shouldSkipDir(name) {
				continue
			}
			walkNotesDir(path, exts, scanned)
			continue
		}
		if !hasExt(name, exts) {
			continue
		}

		content, err := os.ReadFile(path)
		if err != nil {
			logs.Logger.Printf("Warning: could not read %s: %v", path, err)
			continue
		}

		n, ok := notes.Parse(content, path)
		if !ok {
			logs.Logger.Printf("Warning: %s has no metadata line", path)
		}
		n.ID = len(*scanned)
		*scanned = append(*scanned, &n)
	}
}

func shouldSkipDir(name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	return name == "node_modules" || name == "vendor"
}

func hasExt(name string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range exts {
		if ext == strings.ToLower(e) {
			return true
		}
	}
	return false
}
