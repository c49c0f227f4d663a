// pubspec.go - Lesen und Bearbeiten von pubspec.yaml Dateien
//
// Dieses Modul enthaelt:
// - Load/Save: pubspec.yaml als YAML-Knotenbaum (Kommentare bleiben erhalten)
// - AddGitDependency: Fuegt eine git-Dependency hinzu oder ersetzt sie
// - HasDependency: Prueft ob eine Dependency existiert
package pubspec

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrNoName: die pubspec.yaml hat kein name-Feld und ist kein gueltiges Paket.
var ErrNoName = errors.New("pubspec has no name field")

// GitDependency beschreibt eine git-basierte Paket-Dependency.
type GitDependency struct {
	Name string
	URL  string
	Ref  string // Branch, Tag oder Commit; leer = Default-Branch
	Path string // Unterverzeichnis im Repository; leer = Root
}

// Pubspec ist eine geladene pubspec.yaml. Bearbeitet wird der rohe
// YAML-Knotenbaum, damit Reihenfolge und Kommentare erhalten bleiben.
type Pubspec struct {
	Path        string
	Name        string
	Description string

	doc *yaml.Node
}

// Load liest und parst eine pubspec.yaml.
func Load(path string) (*Pubspec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, fmt.Errorf("parsing %s: not a mapping document", path)
	}

	p := &Pubspec{Path: path, doc: &doc}
	if n := mapValue(p.root(), "name"); n != nil {
		p.Name = n.Value
	}
	if p.Name == "" {
		return nil, fmt.Errorf("%s: %w", path, ErrNoName)
	}
	if n := mapValue(p.root(), "description"); n != nil {
		p.Description = n.Value
	}

	return p, nil
}

func (p *Pubspec) root() *yaml.Node {
	return p.doc.Content[0]
}

// IsFlutter meldet ob das Paket vom Flutter SDK abhaengt.
func (p *Pubspec) IsFlutter() bool {
	deps := mapValue(p.root(), "dependencies")
	return deps != nil && mapValue(deps, "flutter") != nil
}

// HasDependency prueft ob eine Dependency mit diesem Namen existiert.
func (p *Pubspec) HasDependency(name string) bool {
	deps := mapValue(p.root(), "dependencies")
	return deps != nil && mapValue(deps, name) != nil
}

// AddGitDependency traegt eine git-Dependency unter dependencies ein.
// Eine vorhandene Dependency gleichen Namens wird ersetzt.
func (p *Pubspec) AddGitDependency(dep GitDependency) error {
	if dep.Name == "" || dep.URL == "" {
		return errors.New("git dependency needs a name and a url")
	}

	deps := mapValue(p.root(), "dependencies")
	if deps == nil {
		deps = &yaml.Node{Kind: yaml.MappingNode}
		mapSet(p.root(), "dependencies", deps)
	}

	git := &yaml.Node{Kind: yaml.MappingNode}
	mapSet(git, "url", strNode(dep.URL))
	if dep.Ref != "" {
		mapSet(git, "ref", strNode(dep.Ref))
	}
	if dep.Path != "" {
		mapSet(git, "path", strNode(dep.Path))
	}

	entry := &yaml.Node{Kind: yaml.MappingNode}
	mapSet(entry, "git", git)
	mapSet(deps, dep.Name, entry)

	return nil
}

// Save schreibt die Datei zurueck (2 Spaces Einrueckung, Dart-Konvention).
func (p *Pubspec) Save() error {
	data, err := p.marshal()
	if err != nil {
		return err
	}
	return os.WriteFile(p.Path, data, 0o644)
}

func (p *Pubspec) marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(p.doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// mapValue sucht den Wert-Knoten zu key in einem Mapping.
func mapValue(m *yaml.Node, key string) *yaml.Node {
	if m == nil || m.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}

// mapSet ersetzt den Wert zu key oder haengt das Paar hinten an.
func mapSet(m *yaml.Node, key string, value *yaml.Node) {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			m.Content[i+1] = value
			return
		}
	}
	m.Content = append(m.Content, strNode(key), value)
}

func strNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}
