// scan.go - Paket-Suche in geklonten Repositories
//
// Dieses Modul enthaelt:
// - FindPackages: Sucht pubspec.yaml Dateien unterhalb eines Wurzelverzeichnisses
package pubspec

import (
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
)

// Verzeichnisse ohne eigenstaendige Pakete werden beim Scan uebersprungen.
var skipDirs = map[string]bool{
	".git":       true,
	".dart_tool": true,
	"build":      true,
	"ios":        true,
	"android":    true,
	"windows":    true,
	"linux":      true,
	"macos":      true,
	"web":        true,
}

// FindPackages laeuft rekursiv durch root und laedt jede pubspec.yaml.
// Unlesbare oder unvollstaendige Dateien werden geloggt und uebersprungen,
// nicht als Fehler gemeldet.
func FindPackages(root string) ([]*Pubspec, error) {
	var pkgs []*Pubspec

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if skipDirs[name] || (strings.HasPrefix(name, ".") && path != root) {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Name() != "pubspec.yaml" {
			return nil
		}

		p, err := Load(path)
		if err != nil {
			slog.Debug("skipping unreadable pubspec", "path", path, "error", err)
			return nil
		}
		pkgs = append(pkgs, p)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return pkgs, nil
}
