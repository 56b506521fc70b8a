// Package extract implements the text extraction and classification
// engine for UI component files. It walks a tree-sitter syntax tree,
// pulls candidate strings out of the syntactic positions that can hold
// human-readable content, and filters them through a classifier that
// rejects structural noise (CSS utility tokens, SVG path data, numeric
// measurements, framework attribute names).
package extract

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ComponentMetadata is the per-file extraction result.
type ComponentMetadata struct {
	FilePath    string   `json:"filePath"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	TextContent []string `json:"textContent"`
}

// ProjectMetadata collects every successfully extracted component for
// one scan run.
type ProjectMetadata struct {
	ScanID      uuid.UUID           `json:"scanId"`
	GeneratedAt time.Time           `json:"generatedAt"`
	Components  []ComponentMetadata `json:"components"`
}

// DiagnosticKind identifies what went wrong while processing a single
// candidate or file.
type DiagnosticKind string

const (
	// DiagnosticNodeSkipped reports a malformed declaration or
	// attribute that was skipped; extraction of the file continued.
	DiagnosticNodeSkipped DiagnosticKind = "node_skipped"
	// DiagnosticFileSkipped reports a file dropped from the run
	// (parse or read failure).
	DiagnosticFileSkipped DiagnosticKind = "file_skipped"
)

// Diagnostic is a structured event emitted by the engine in place of
// ad-hoc logging. The engine never writes to a log stream; callers
// collect these.
type Diagnostic struct {
	Kind     DiagnosticKind
	FilePath string
	Detail   string
}

// DiagnosticSink receives diagnostics during extraction. A nil sink
// discards them.
type DiagnosticSink func(Diagnostic)

// ParseError reports a file whose source could not be parsed as the
// expected dialect. It is fatal to that file only; callers continue
// with remaining files.
type ParseError struct {
	FilePath string
	Detail   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %s", e.FilePath, e.Detail)
}
