package extract

import (
	"path/filepath"
	"strings"
)

// Extractor runs one parse and one tree walk per file. Safe to reuse
// across files: each call builds a fresh binding table and result.
type Extractor struct {
	diag DiagnosticSink
}

// NewExtractor creates an extractor. sink may be nil to discard
// diagnostics.
func NewExtractor(sink DiagnosticSink) *Extractor {
	return &Extractor{diag: sink}
}

// Extract parses source and returns the file's metadata. A *ParseError
// is returned when the source cannot be parsed as the expected dialect;
// the caller continues with remaining files. filePath is used for the
// title fallback and diagnostics only; callers set FilePath on the
// result afterwards.
func (e *Extractor) Extract(source []byte, filePath string) (*ComponentMetadata, error) {
	tree, err := parseTSX(source, filePath)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	meta := &ComponentMetadata{TextContent: []string{}}

	v := newVisitor(source, filePath, meta, e.diag)
	v.walk(tree.RootNode())

	// First-occurrence dedup; entries are re-checked against the
	// classifier on the way out.
	meta.TextContent = dedupContent(meta.TextContent)

	if meta.Title == "" {
		base := filepath.Base(filePath)
		meta.Title = strings.TrimSuffix(base, filepath.Ext(base))
	}
	if meta.Description == "" && len(meta.TextContent) > 0 {
		meta.Description = meta.TextContent[0]
	}

	return meta, nil
}

// dedupContent removes duplicates preserving first-seen order and
// drops anything that no longer passes the classifier.
func dedupContent(content []string) []string {
	seen := make(map[string]struct{}, len(content))
	result := make([]string, 0, len(content))
	for _, text := range content {
		if _, ok := seen[text]; ok {
			continue
		}
		if !IsMeaningfulContent(text) {
			continue
		}
		seen[text] = struct{}{}
		result = append(result, text)
	}
	return result
}
