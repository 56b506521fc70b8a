package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for Discovery:
// - IsComponentFile accepts .jsx/.tsx outright
// - IsComponentFile accepts .js/.ts only with JSX tags or a React import
// - IsComponentFile rejects unknown extensions
// - DiscoverFiles applies include and ignore patterns
// - DiscoverFiles skips the .seoscan output directory

func TestIsComponentFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		path    string
		content string
		want    bool
	}{
		{"tsx always matches", "Button.tsx", "whatever", true},
		{"jsx always matches", "Button.jsx", "", true},
		{"ts with jsx tags", "app.ts", "return <div>Hi</div>;", true},
		{"ts with react import", "app.ts", "import React from 'react';\n", true},
		{"plain ts", "util.ts", "export const add = (a, b) => a + b;", false},
		{"plain js", "util.js", "module.exports = {};", false},
		{"go file", "main.go", "package main", false},
		{"css file", "style.css", ".card { color: red }", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsComponentFile(tt.path, []byte(tt.content)))
		})
	}
}

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestDiscovery_DiscoverFiles(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "src/App.tsx", `export const App = () => <div>Hi</div>;`)
	writeFile(t, root, "src/util.ts", `export const add = (a, b) => a + b;`)
	writeFile(t, root, "Banner.jsx", `export const Banner = () => <p>Hello</p>;`)
	writeFile(t, root, "node_modules/lib/Thing.tsx", `export const T = () => <i/>;`)
	writeFile(t, root, ".seoscan/metadata.json", `{}`)
	writeFile(t, root, "style.css", `.card {}`)

	d, err := NewDiscovery(root,
		[]string{"**/*.jsx", "**/*.tsx", "**/*.js", "**/*.ts"},
		[]string{"node_modules/**"})
	require.NoError(t, err)

	files, err := d.DiscoverFiles()
	require.NoError(t, err)

	rel := make([]string, 0, len(files))
	for _, f := range files {
		r, err := filepath.Rel(root, f)
		require.NoError(t, err)
		rel = append(rel, filepath.ToSlash(r))
	}

	assert.ElementsMatch(t, []string{"src/App.tsx", "Banner.jsx"}, rel)
}

func TestDiscovery_InvalidPattern(t *testing.T) {
	t.Parallel()

	_, err := NewDiscovery(t.TempDir(), []string{"[unclosed"}, nil)
	assert.Error(t, err)
}
