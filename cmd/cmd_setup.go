// cmd_setup.go - Interaktiver Setup-Flow
// Hauptfunktionen: SetupHandler, cloneRepos, resolveTarget
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/daslaller/flutter-packagemanager-setup/envconfig"
	"github.com/daslaller/flutter-packagemanager-setup/gh"
	"github.com/daslaller/flutter-packagemanager-setup/pubspec"
	"github.com/daslaller/flutter-packagemanager-setup/selector"
	"github.com/daslaller/flutter-packagemanager-setup/sysdeps"
)

func newSetupCmd() *cobra.Command {
	var projectFlag string
	var noPubGet bool

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Pick GitHub repositories and add their packages to a Flutter project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return SetupHandler(cmd.Context(), projectFlag, noPubGet)
		},
	}

	cmd.Flags().StringVar(&projectFlag, "project", "", "Target Flutter project directory")
	cmd.Flags().BoolVar(&noPubGet, "no-pub-get", false, "Do not run 'flutter pub get' afterwards")
	return cmd
}

// foundPackage verbindet ein gefundenes Paket mit seinem Herkunfts-Repository.
type foundPackage struct {
	spec   *pubspec.Pubspec
	repo   gh.Repo
	subdir string
}

// SetupHandler - Kompletter Flow: Tools pruefen, Repos waehlen und klonen,
// Pakete waehlen, pubspec.yaml des Zielprojekts bearbeiten
func SetupHandler(ctx context.Context, projectFlag string, noPubGet bool) error {
	if err := checkTools(ctx); err != nil {
		return err
	}
	if err := gh.Authenticated(ctx); err != nil {
		return err
	}

	repos, err := gh.ListRepos(ctx, envconfig.RepoLimit())
	if err != nil {
		return err
	}
	if len(repos) == 0 {
		return errors.New("no repositories found for this github account")
	}

	repoOpts := make([]selector.Option, len(repos))
	for i, r := range repos {
		repoOpts[i] = selector.Option{Label: r.FullName(), Description: r.Description}
	}

	picked, err := selector.MultiSelect("Select repositories to scan for packages", repoOpts)
	if err != nil {
		if errors.Is(err, selector.ErrCancelled) {
			return ErrNothingSelected
		}
		return err
	}
	if len(picked) == 0 {
		return ErrNothingSelected
	}

	selected := make([]gh.Repo, len(picked))
	for i, idx := range picked {
		selected[i] = repos[idx]
	}

	dests, err := cloneRepos(ctx, selected)
	if err != nil {
		return err
	}

	pkgs, err := scanClones(selected, dests)
	if err != nil {
		return err
	}
	if len(pkgs) == 0 {
		return errors.New("no dart packages found in the selected repositories")
	}

	pkgOpts := make([]selector.Option, len(pkgs))
	for i, p := range pkgs {
		desc := p.repo.FullName()
		if p.subdir != "" {
			desc += "/" + p.subdir
		}
		pkgOpts[i] = selector.Option{Label: p.spec.Name, Description: desc}
	}

	pickedPkgs, err := selector.MultiSelect("Select packages to add", pkgOpts)
	if err != nil {
		if errors.Is(err, selector.ErrCancelled) {
			return ErrNothingSelected
		}
		return err
	}
	if len(pickedPkgs) == 0 {
		return ErrNothingSelected
	}

	targetPath, err := resolveTarget(projectFlag)
	if err != nil {
		return err
	}

	target, err := pubspec.Load(targetPath)
	if err != nil {
		return err
	}

	for _, idx := range pickedPkgs {
		p := pkgs[idx]
		dep := pubspec.GitDependency{
			Name: p.spec.Name,
			URL:  p.repo.URL,
			Path: p.subdir,
		}
		if err := target.AddGitDependency(dep); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "added %s (%s)\n", p.spec.Name, p.repo.FullName())
	}

	if err := target.Save(); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "updated %s\n", targetPath)

	if noPubGet {
		return nil
	}
	ok, err := selector.Confirm("Run 'flutter pub get' now?")
	if err != nil || !ok {
		return err
	}
	return pubGet(ctx, filepath.Dir(targetPath))
}

// checkTools prueft die benoetigten Werkzeuge und meldet Install-Hinweise.
func checkTools(ctx context.Context) error {
	missing := sysdeps.Missing(sysdeps.Check(ctx, sysdeps.RequiredTools...))
	if len(missing) == 0 {
		return nil
	}

	for _, st := range missing {
		if st.Hint != "" {
			fmt.Fprintf(os.Stderr, "missing: %s (install with: %s)\n", st.Name, st.Hint)
		} else {
			fmt.Fprintf(os.Stderr, "missing: %s\n", st.Name)
		}
	}
	return fmt.Errorf("%d required tools missing, run 'flutter-pm doctor' for details", len(missing))
}

// cloneRepos klont die gewaehlten Repositories parallel ins Arbeitsverzeichnis.
func cloneRepos(ctx context.Context, repos []gh.Repo) ([]string, error) {
	workdir := envconfig.WorkDir()
	if err := os.MkdirAll(workdir, 0o755); err != nil {
		return nil, err
	}

	fmt.Fprintf(os.Stderr, "cloning %d repositories into %s\n", len(repos), workdir)

	dests := make([]string, len(repos))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(int(envconfig.Parallel()))

	for i, repo := range repos {
		dests[i] = filepath.Join(workdir, repo.Name)
		g.Go(func() error {
			if err := gh.Clone(gctx, repo, dests[i]); err != nil {
				return fmt.Errorf("cloning %s: %w", repo.FullName(), err)
			}
			fmt.Fprintf(os.Stderr, "  %s\n", repo.FullName())
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return dests, nil
}

// scanClones sucht Dart-Pakete in den geklonten Repositories.
func scanClones(repos []gh.Repo, dests []string) ([]foundPackage, error) {
	var pkgs []foundPackage
	for i, dest := range dests {
		found, err := pubspec.FindPackages(dest)
		if err != nil {
			return nil, err
		}
		for _, spec := range found {
			subdir, err := filepath.Rel(dest, filepath.Dir(spec.Path))
			if err != nil {
				return nil, err
			}
			if subdir == "." {
				subdir = ""
			}
			pkgs = append(pkgs, foundPackage{spec: spec, repo: repos[i], subdir: filepath.ToSlash(subdir)})
		}
	}

	sort.Slice(pkgs, func(i, j int) bool { return pkgs[i].spec.Name < pkgs[j].spec.Name })
	return pkgs, nil
}

// resolveTarget findet die pubspec.yaml des Zielprojekts: --project Flag,
// sonst das aktuelle Verzeichnis, sonst Einzelauswahl unter den
// Unterverzeichnissen des aktuellen Verzeichnisses.
func resolveTarget(projectFlag string) (string, error) {
	if projectFlag != "" {
		path := filepath.Join(projectFlag, "pubspec.yaml")
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("no pubspec.yaml in %s", projectFlag)
		}
		return path, nil
	}

	if _, err := os.Stat("pubspec.yaml"); err == nil {
		return "pubspec.yaml", nil
	}

	entries, err := os.ReadDir(".")
	if err != nil {
		return "", err
	}

	var candidates []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		path := filepath.Join(e.Name(), "pubspec.yaml")
		if _, err := os.Stat(path); err == nil {
			candidates = append(candidates, path)
		}
	}

	switch len(candidates) {
	case 0:
		return "", errors.New("no flutter project found here, use --project")
	case 1:
		return candidates[0], nil
	}

	opts := make([]selector.Option, len(candidates))
	for i, c := range candidates {
		opts[i] = selector.Option{Label: filepath.Dir(c)}
	}
	idx, err := selector.Select("Select the target project", opts)
	if err != nil {
		if errors.Is(err, selector.ErrCancelled) {
			return "", ErrNothingSelected
		}
		return "", err
	}
	return candidates[idx], nil
}

// pubGet fuehrt "flutter pub get" im Projektverzeichnis aus.
func pubGet(ctx context.Context, dir string) error {
	cmd := exec.CommandContext(ctx, "flutter", "pub", "get")
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
