package pubspec

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePubspec(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pubspec.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const samplePubspec = `name: demo_app
description: A demo Flutter application.
version: 1.0.0+1

environment:
  sdk: ">=3.0.0 <4.0.0"

# Runtime dependencies
dependencies:
  flutter:
    sdk: flutter
  http: ^1.2.0

dev_dependencies:
  flutter_test:
    sdk: flutter
`

func TestLoad(t *testing.T) {
	t.Run("ReadsNameAndDescription", func(t *testing.T) {
		p, err := Load(writePubspec(t, samplePubspec))
		require.NoError(t, err)
		assert.Equal(t, "demo_app", p.Name)
		assert.Equal(t, "A demo Flutter application.", p.Description)
		assert.True(t, p.IsFlutter())
	})

	t.Run("PureDartPackage", func(t *testing.T) {
		p, err := Load(writePubspec(t, "name: tool\ndependencies:\n  args: ^2.0.0\n"))
		require.NoError(t, err)
		assert.False(t, p.IsFlutter())
	})

	t.Run("MissingName", func(t *testing.T) {
		_, err := Load(writePubspec(t, "description: nameless\n"))
		require.ErrorIs(t, err, ErrNoName)
	})

	t.Run("NotAMapping", func(t *testing.T) {
		_, err := Load(writePubspec(t, "- just\n- a\n- list\n"))
		require.Error(t, err)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "pubspec.yaml"))
		require.Error(t, err)
	})
}

func TestHasDependency(t *testing.T) {
	p, err := Load(writePubspec(t, samplePubspec))
	require.NoError(t, err)

	assert.True(t, p.HasDependency("http"))
	assert.False(t, p.HasDependency("provider"))
	assert.False(t, p.HasDependency("flutter_test"), "dev_dependencies do not count")
}

func TestAddGitDependency(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		path := writePubspec(t, samplePubspec)
		p, err := Load(path)
		require.NoError(t, err)

		err = p.AddGitDependency(GitDependency{
			Name: "shared_widgets",
			URL:  "https://github.com/daslaller/shared_widgets",
			Path: "packages/widgets",
		})
		require.NoError(t, err)
		require.NoError(t, p.Save())

		reloaded, err := Load(path)
		require.NoError(t, err)
		assert.True(t, reloaded.HasDependency("shared_widgets"))
		assert.True(t, reloaded.HasDependency("http"), "existing dependencies survive")

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		out := string(data)
		assert.Contains(t, out, "url: https://github.com/daslaller/shared_widgets")
		assert.Contains(t, out, "path: packages/widgets")
		assert.Contains(t, out, "# Runtime dependencies", "comments survive the rewrite")
		assert.NotContains(t, out, "ref:")
	})

	t.Run("WithRef", func(t *testing.T) {
		path := writePubspec(t, samplePubspec)
		p, err := Load(path)
		require.NoError(t, err)

		require.NoError(t, p.AddGitDependency(GitDependency{
			Name: "shared_widgets",
			URL:  "https://github.com/daslaller/shared_widgets",
			Ref:  "v2.1.0",
		}))

		data, err := p.marshal()
		require.NoError(t, err)
		assert.Contains(t, string(data), "ref: v2.1.0")
	})

	t.Run("ReplacesExisting", func(t *testing.T) {
		path := writePubspec(t, samplePubspec)
		p, err := Load(path)
		require.NoError(t, err)

		require.NoError(t, p.AddGitDependency(GitDependency{Name: "http", URL: "https://example.com/http"}))

		data, err := p.marshal()
		require.NoError(t, err)
		out := string(data)
		assert.Equal(t, 1, strings.Count(out, "http:"), "no duplicate entry")
		assert.NotContains(t, out, "^1.2.0")
	})

	t.Run("CreatesDependenciesSection", func(t *testing.T) {
		p, err := Load(writePubspec(t, "name: bare\n"))
		require.NoError(t, err)

		require.NoError(t, p.AddGitDependency(GitDependency{Name: "a", URL: "https://example.com/a"}))
		assert.True(t, p.HasDependency("a"))
	})

	t.Run("RejectsIncomplete", func(t *testing.T) {
		p, err := Load(writePubspec(t, samplePubspec))
		require.NoError(t, err)

		assert.Error(t, p.AddGitDependency(GitDependency{Name: "x"}))
		assert.Error(t, p.AddGitDependency(GitDependency{URL: "https://example.com/x"}))
	})
}

func TestPreservesKeyOrder(t *testing.T) {
	path := writePubspec(t, samplePubspec)
	p, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, p.Save())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)

	name := strings.Index(out, "name:")
	env := strings.Index(out, "environment:")
	deps := strings.Index(out, "dependencies:")
	dev := strings.Index(out, "dev_dependencies:")
	assert.True(t, name < env && env < deps && deps < dev, "top-level key order preserved:\n%s", out)
}
