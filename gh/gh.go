// gh.go - GitHub CLI Anbindung
//
// Dieses Modul kapselt Aufrufe des gh-Binaries:
// - Available/Authenticated: Verfuegbarkeits- und Login-Checks
// - ListRepos: Repositories des Benutzers als JSON
// - Clone: Klont ein Repository ins Zielverzeichnis
package gh

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/daslaller/flutter-packagemanager-setup/envconfig"
)

// ErrNotInstalled: das gh-Binary wurde nicht gefunden.
var ErrNotInstalled = errors.New("github cli (gh) not found in PATH")

// ErrNotAuthenticated: gh ist installiert, aber kein Benutzer angemeldet.
var ErrNotAuthenticated = errors.New("not logged in to github, run 'gh auth login' first")

// Repo beschreibt ein Repository aus "gh repo list --json".
type Repo struct {
	Name        string    `json:"name"`
	Owner       repoOwner `json:"owner"`
	Description string    `json:"description"`
	IsPrivate   bool      `json:"isPrivate"`
	UpdatedAt   time.Time `json:"updatedAt"`
	URL         string    `json:"url"`
	SSHURL      string    `json:"sshUrl"`
}

type repoOwner struct {
	Login string `json:"login"`
}

// FullName gibt "owner/name" zurueck.
func (r Repo) FullName() string {
	if r.Owner.Login == "" {
		return r.Name
	}
	return r.Owner.Login + "/" + r.Name
}

// run fuehrt gh mit den gegebenen Argumenten aus und liefert stdout.
func run(ctx context.Context, args ...string) ([]byte, error) {
	bin := envconfig.Gh()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	slog.Debug("running gh", "args", args)
	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return nil, ErrNotInstalled
		}
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return nil, fmt.Errorf("gh %s: %s", args[0], msg)
	}

	return stdout.Bytes(), nil
}

// Available prueft ob das gh-Binary im PATH liegt.
func Available() bool {
	_, err := exec.LookPath(envconfig.Gh())
	return err == nil
}

// Authenticated prueft ob ein GitHub-Login vorliegt.
func Authenticated(ctx context.Context) error {
	if !Available() {
		return ErrNotInstalled
	}
	if _, err := run(ctx, "auth", "status"); err != nil {
		return ErrNotAuthenticated
	}
	return nil
}

// ListRepos listet die Repositories des angemeldeten Benutzers,
// sortiert nach letzter Aenderung (gh-Default).
func ListRepos(ctx context.Context, limit uint) ([]Repo, error) {
	out, err := run(ctx, "repo", "list",
		"--limit", fmt.Sprint(limit),
		"--json", "name,owner,description,isPrivate,updatedAt,url,sshUrl")
	if err != nil {
		return nil, err
	}

	return parseRepos(out)
}

func parseRepos(out []byte) ([]Repo, error) {
	var repos []Repo
	if err := json.Unmarshal(out, &repos); err != nil {
		return nil, fmt.Errorf("parsing gh repo list output: %w", err)
	}
	return repos, nil
}

// Clone klont ein Repository nach dest. Existiert dest bereits,
// ist das kein Fehler; der Clone wird uebersprungen.
func Clone(ctx context.Context, repo Repo, dest string) error {
	_, err := run(ctx, "repo", "clone", repo.FullName(), dest, "--", "--depth", "1")
	if err != nil && strings.Contains(err.Error(), "already exists") {
		slog.Debug("clone destination exists, skipping", "repo", repo.FullName(), "dest", dest)
		return nil
	}
	return err
}
