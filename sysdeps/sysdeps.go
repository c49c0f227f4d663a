// sysdeps.go - Erkennung von System-Abhaengigkeiten
//
// Dieses Modul enthaelt:
// - DetectManager: Findet den Paket-Manager der Plattform
// - Check: Prueft benoetigte Werkzeuge (git, gh, flutter)
// - Version: Liest die Versionszeile eines Binaries
package sysdeps

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// RequiredTools sind die Werkzeuge, ohne die der Setup-Flow nicht laeuft.
var RequiredTools = []string{"git", "gh", "flutter"}

// PackageManager beschreibt den erkannten System-Paket-Manager.
type PackageManager struct {
	Name       string
	installFmt string
}

// InstallHint gibt das Install-Kommando fuer ein Werkzeug zurueck.
func (m PackageManager) InstallHint(tool string) string {
	if m.installFmt == "" {
		return ""
	}
	return fmt.Sprintf(m.installFmt, tool)
}

// Kandidaten in Erkennungs-Reihenfolge, je Plattform.
var managerCandidates = map[string][]PackageManager{
	"darwin": {
		{"brew", "brew install %s"},
		{"port", "sudo port install %s"},
	},
	"linux": {
		{"apt-get", "sudo apt-get install %s"},
		{"dnf", "sudo dnf install %s"},
		{"pacman", "sudo pacman -S %s"},
		{"zypper", "sudo zypper install %s"},
		{"brew", "brew install %s"},
	},
	"windows": {
		{"winget", "winget install %s"},
		{"choco", "choco install %s"},
	},
}

// DetectManager sucht den ersten verfuegbaren Paket-Manager der Plattform.
func DetectManager() (PackageManager, bool) {
	for _, m := range managerCandidates[runtime.GOOS] {
		if _, err := exec.LookPath(m.Name); err == nil {
			return m, true
		}
	}
	return PackageManager{}, false
}

// Status ist das Pruef-Ergebnis fuer ein Werkzeug.
type Status struct {
	Name    string
	Found   bool
	Path    string
	Version string
	Hint    string
}

// Check prueft jedes Werkzeug auf Verfuegbarkeit im PATH. Fuer fehlende
// Werkzeuge wird ein Install-Hinweis des erkannten Paket-Managers ergaenzt.
func Check(ctx context.Context, tools ...string) []Status {
	mgr, hasMgr := DetectManager()

	var out []Status
	for _, tool := range tools {
		st := Status{Name: tool}
		if path, err := exec.LookPath(tool); err == nil {
			st.Found = true
			st.Path = path
			st.Version = Version(ctx, tool)
		} else if hasMgr {
			st.Hint = mgr.InstallHint(pkgName(tool, mgr))
		}
		out = append(out, st)
	}
	return out
}

// Missing filtert die nicht gefundenen Werkzeuge heraus.
func Missing(statuses []Status) []Status {
	var missing []Status
	for _, st := range statuses {
		if !st.Found {
			missing = append(missing, st)
		}
	}
	return missing
}

// Version fuehrt "<bin> --version" aus und gibt die erste Zeile zurueck.
func Version(ctx context.Context, bin string) string {
	var stdout bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, "--version")
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		return ""
	}
	line, _, _ := strings.Cut(strings.TrimSpace(stdout.String()), "\n")
	return strings.TrimSpace(line)
}

// pkgName uebersetzt Tool-Namen in Paket-Namen wo sie abweichen.
func pkgName(tool string, mgr PackageManager) string {
	if tool == "gh" {
		switch mgr.Name {
		case "winget":
			return "GitHub.cli"
		case "dnf", "apt-get":
			return "gh"
		}
	}
	return tool
}
