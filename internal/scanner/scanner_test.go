package scanner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvp-joe/seoscan/internal/extract"
)

// Test Plan for the Scanner:
// - Scan produces one component per successfully extracted file, in
//   discovery order, with root-relative file paths
// - A file that fails to parse is reported as a diagnostic and
//   contributes no component; the run continues
// - Rescanning unchanged files hits the result cache and yields the
//   same output
// - Cancellation stops the scan between files

var defaultPatterns = []string{"**/*.jsx", "**/*.tsx", "**/*.js", "**/*.ts"}

func newTestScanner(t *testing.T, root string) *Scanner {
	t.Helper()
	s, err := New(root, defaultPatterns, []string{"node_modules/**"}, nil)
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func TestScanner_Scan(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "src/Hero.tsx", `export const Hero = () => <h1>Welcome to our site</h1>;`)
	writeFile(t, root, "src/Plans.tsx", `export const items = [{ title: "Our Plans", price: "9.99", features: ["Fast", "Secure"] }];`)

	s := newTestScanner(t, root)

	meta, err := s.Scan(context.Background())
	require.NoError(t, err)
	require.Len(t, meta.Components, 2)

	byPath := make(map[string]extract.ComponentMetadata)
	for _, c := range meta.Components {
		byPath[c.FilePath] = c
	}

	hero, ok := byPath["src/Hero.tsx"]
	require.True(t, ok, "expected root-relative slash paths")
	assert.Equal(t, []string{"Welcome to our site"}, hero.TextContent)

	plans := byPath["src/Plans.tsx"]
	assert.Equal(t, []string{"Our Plans", "Fast", "Secure"}, plans.TextContent)

	assert.Empty(t, s.Diagnostics())
}

func TestScanner_ParseFailureIsolatesToFile(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "Good.tsx", `export const Good = () => <p>Still standing</p>;`)
	writeFile(t, root, "Broken.tsx", `const 123 = ]]] <<<`)

	s := newTestScanner(t, root)

	meta, err := s.Scan(context.Background())
	require.NoError(t, err)

	// The broken file is absent from the collection; the good file made it.
	require.Len(t, meta.Components, 1)
	assert.Equal(t, "Good.tsx", meta.Components[0].FilePath)

	diagnostics := s.Diagnostics()
	require.Len(t, diagnostics, 1)
	assert.Equal(t, extract.DiagnosticFileSkipped, diagnostics[0].Kind)
	assert.Equal(t, "Broken.tsx", diagnostics[0].FilePath)
}

func TestScanner_RescanYieldsSameResults(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "App.tsx", `export const App = () => <div>Hello World</div>;`)

	s := newTestScanner(t, root)

	first, err := s.Scan(context.Background())
	require.NoError(t, err)
	second, err := s.Scan(context.Background())
	require.NoError(t, err)

	// Scan id and timestamp differ per run; the extracted components
	// must not.
	assert.Equal(t, first.Components, second.Components)
}

func TestScanner_Cancellation(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "App.tsx", `export const App = () => <div>Hello World</div>;`)

	s := newTestScanner(t, root)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Scan(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
