package scanner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/maypok86/otter"

	"github.com/mvp-joe/seoscan/internal/extract"
)

// resultCacheCapacity bounds the per-process extraction cache. Sized
// for large component trees; eviction beyond this only costs a re-parse.
const resultCacheCapacity = 10_000

// ProgressReporter receives scan lifecycle events. Implementations
// must tolerate being called from the scan goroutine only.
type ProgressReporter interface {
	OnDiscoveryStart()
	OnDiscoveryComplete(totalFiles int)
	OnFileProcessed(path string)
	OnScanComplete(components, skipped int)
}

// Scanner runs the extraction engine over a project, one file at a
// time in discovery order. Each file's traversal state is independent;
// the only thing shared across files is the content-hash result cache,
// which makes watch-mode re-scans cheap.
type Scanner struct {
	rootDir     string
	discovery   *Discovery
	extractor   *extract.Extractor
	cache       otter.Cache[string, extract.ComponentMetadata]
	progress    ProgressReporter
	diagnostics []extract.Diagnostic
}

// New creates a scanner for rootDir with the given glob patterns.
// progress may be nil.
func New(rootDir string, includePatterns, ignorePatterns []string, progress ProgressReporter) (*Scanner, error) {
	discovery, err := NewDiscovery(rootDir, includePatterns, ignorePatterns)
	if err != nil {
		return nil, fmt.Errorf("failed to compile discovery patterns: %w", err)
	}

	cache, err := otter.MustBuilder[string, extract.ComponentMetadata](resultCacheCapacity).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build result cache: %w", err)
	}

	s := &Scanner{
		rootDir:   rootDir,
		discovery: discovery,
		cache:     cache,
		progress:  progress,
	}
	s.extractor = extract.NewExtractor(func(d extract.Diagnostic) {
		s.diagnostics = append(s.diagnostics, d)
	})
	return s, nil
}

// Scan discovers component files and extracts each in sequence. A file
// that fails to read or parse is reported as a diagnostic and dropped;
// the run continues. The returned metadata contains one component per
// successfully extracted file, in discovery order.
func (s *Scanner) Scan(ctx context.Context) (*extract.ProjectMetadata, error) {
	s.diagnostics = s.diagnostics[:0]

	if s.progress != nil {
		s.progress.OnDiscoveryStart()
	}

	files, err := s.discovery.DiscoverFiles()
	if err != nil {
		return nil, fmt.Errorf("file discovery failed: %w", err)
	}

	if s.progress != nil {
		s.progress.OnDiscoveryComplete(len(files))
	}

	aggregator := extract.NewAggregator()
	skipped := 0

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		meta, ok := s.scanFile(path)
		if !ok {
			skipped++
		} else {
			aggregator.Add(meta)
		}
		if s.progress != nil {
			s.progress.OnFileProcessed(path)
		}
	}

	if s.progress != nil {
		s.progress.OnScanComplete(aggregator.Len(), skipped)
	}

	return aggregator.Finalize(), nil
}

// scanFile extracts a single file, consulting the result cache first.
func (s *Scanner) scanFile(path string) (extract.ComponentMetadata, bool) {
	relPath := s.relative(path)

	content, err := os.ReadFile(path)
	if err != nil {
		s.diagnostics = append(s.diagnostics, extract.Diagnostic{
			Kind:     extract.DiagnosticFileSkipped,
			FilePath: relPath,
			Detail:   fmt.Sprintf("read failed: %v", err),
		})
		return extract.ComponentMetadata{}, false
	}

	cacheKey := relPath + ":" + strconv.FormatUint(xxhash.Sum64(content), 16)
	if cached, hit := s.cache.Get(cacheKey); hit {
		return cached, true
	}

	meta, err := s.extractor.Extract(content, path)
	if err != nil {
		s.diagnostics = append(s.diagnostics, extract.Diagnostic{
			Kind:     extract.DiagnosticFileSkipped,
			FilePath: relPath,
			Detail:   err.Error(),
		})
		return extract.ComponentMetadata{}, false
	}

	meta.FilePath = relPath
	s.cache.Set(cacheKey, *meta)
	return *meta, true
}

// Diagnostics returns the events collected during the last Scan.
func (s *Scanner) Diagnostics() []extract.Diagnostic {
	return s.diagnostics
}

// Close releases the result cache.
func (s *Scanner) Close() {
	s.cache.Close()
}

func (s *Scanner) relative(path string) string {
	relPath, err := filepath.Rel(s.rootDir, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(relPath)
}
