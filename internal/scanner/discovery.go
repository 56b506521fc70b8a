// Package scanner discovers component files under a project root and
// drives the extraction engine over them, one file at a time.
package scanner

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gobwas/glob"
)

// compiledPattern holds both the pattern string and compiled glob.
type compiledPattern struct {
	pattern string
	glob    glob.Glob
}

// Discovery walks a directory tree applying include and ignore glob
// patterns, then sniffs each candidate for component content.
type Discovery struct {
	rootDir         string
	includePatterns []compiledPattern
	ignorePatterns  []compiledPattern
}

// NewDiscovery compiles the given glob patterns for the root directory.
func NewDiscovery(rootDir string, includePatterns, ignorePatterns []string) (*Discovery, error) {
	d := &Discovery{rootDir: rootDir}

	for _, pattern := range includePatterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, err
		}
		d.includePatterns = append(d.includePatterns, compiledPattern{pattern: pattern, glob: g})
	}

	for _, pattern := range ignorePatterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, err
		}
		d.ignorePatterns = append(d.ignorePatterns, compiledPattern{pattern: pattern, glob: g})
	}

	return d, nil
}

// DiscoverFiles returns component candidate files in walk order.
// The sniff test is applied here so the engine only ever sees files
// that look like UI components.
func (d *Discovery) DiscoverFiles() ([]string, error) {
	files := []string{}

	err := filepath.Walk(d.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		relPath, err := filepath.Rel(d.rootDir, path)
		if err != nil {
			return err
		}
		relPath = filepath.ToSlash(relPath)

		if d.shouldIgnore(relPath) {
			return nil
		}
		if !matchesAnyPattern(relPath, d.includePatterns) {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			// Unreadable candidates are the scanner's problem, not the
			// walk's; skip here and let the scan report it if the file
			// matters.
			return nil
		}
		if IsComponentFile(path, content) {
			files = append(files, path)
		}
		return nil
	})

	return files, err
}

// shouldIgnore checks a relative path against the ignore patterns.
func (d *Discovery) shouldIgnore(relPath string) bool {
	// Always ignore the scanner's own output directory.
	if strings.HasPrefix(relPath, ".seoscan/") || relPath == ".seoscan" {
		return true
	}

	if matchesAnyPattern(relPath, d.ignorePatterns) {
		return true
	}

	// A bare directory name should match its "dir/**" pattern too.
	return matchesAnyPattern(relPath+"/**", d.ignorePatterns)
}

// matchesAnyPattern checks a path against each compiled pattern, with
// a fallback so "**/*.tsx" also matches root-level files.
func matchesAnyPattern(path string, patterns []compiledPattern) bool {
	for _, cp := range patterns {
		if cp.glob.Match(path) {
			return true
		}
	}

	if !strings.Contains(path, "/") {
		for _, cp := range patterns {
			if strings.HasPrefix(cp.pattern, "**/") {
				simplified := strings.TrimPrefix(cp.pattern, "**/")
				if simplifiedGlob, err := glob.Compile(simplified, '/'); err == nil {
					if simplifiedGlob.Match(path) {
						return true
					}
				}
			}
		}
	}

	return false
}

// componentExtensions are the extensions that can hold embedded markup.
// The markup-bearing ones are accepted outright; plain .js/.ts need the
// content sniff.
var componentExtensions = map[string]bool{
	".jsx": true,
	".tsx": true,
	".js":  false,
	".ts":  false,
}

var (
	jsxTagRe      = regexp.MustCompile(`<[A-Za-z][A-Za-z0-9]*[\s/>]`)
	reactImportRe = regexp.MustCompile(`(?m)^\s*import\s+.*['"]react['"]`)
)

// IsComponentFile reports whether path looks like a UI component
// source file: extension in the fixed set, and for plain .js/.ts the
// content must contain markup-tag syntax or a React import.
func IsComponentFile(path string, content []byte) bool {
	markupExt, known := componentExtensions[strings.ToLower(filepath.Ext(path))]
	if !known {
		return false
	}
	if markupExt {
		return true
	}
	return jsxTagRe.Match(content) || reactImportRe.Match(content)
}
