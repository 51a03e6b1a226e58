package util

import (
	"os"
	"path/filepath"
	"strings"
)

// DataDir returns the per-user data directory where the database and
// log file live: $XDG_DATA_HOME/<app>, falling back to
// ~/.local/share/<app>.
func DataDir(app string) string {
	if base := strings.TrimSpace(os.Getenv("XDG_DATA_HOME")); base != "" {
		return filepath.Join(base, app)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".", app)
	}
	return filepath.Join(home, ".local", "share", app)
}

// ReportsDir returns the folder exported weekly reports are written to,
// a capitalized app folder inside the user's documents directory.
func ReportsDir(app string) string {
	return filepath.Join(documentsDir(), strings.ToUpper(app[:1])+app[1:])
}

// documentsDir resolves the user's documents folder: $XDG_DOCUMENTS_DIR
// if set, else the matching user-dirs.dirs entry, else ~/Documents.
func documentsDir() string {
	if base := strings.TrimSpace(os.Getenv("XDG_DOCUMENTS_DIR")); base != "" {
		return expandHome(base)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	if data, err := os.ReadFile(filepath.Join(home, ".config", "user-dirs.dirs")); err == nil {
		for _, line := range strings.Split(string(data), "\n") {
			rest, ok := strings.CutPrefix(strings.TrimSpace(line), "XDG_DOCUMENTS_DIR=")
			if !ok {
				continue
			}
			if dir := strings.Trim(rest, `"`); dir != "" {
				return expandHome(dir)
			}
		}
	}
	return filepath.Join(home, "Documents")
}

func expandHome(path string) string {
	if !strings.Contains(path, "$HOME") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return strings.ReplaceAll(path, "$HOME", "")
	}
	return strings.ReplaceAll(path, "$HOME", home)
}
