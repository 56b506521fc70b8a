package extract

import (
	"time"

	"github.com/google/uuid"
)

// Aggregator folds per-file metadata into a project-wide collection.
type Aggregator struct {
	components []ComponentMetadata
}

// NewAggregator returns an empty aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{components: []ComponentMetadata{}}
}

// Add appends one component's metadata in discovery order.
func (a *Aggregator) Add(meta ComponentMetadata) {
	a.components = append(a.components, meta)
}

// Len returns the number of aggregated components.
func (a *Aggregator) Len() int {
	return len(a.components)
}

// Finalize stamps the run and hands ownership of the component list to
// the caller. The aggregator should not be reused afterwards.
func (a *Aggregator) Finalize() *ProjectMetadata {
	return &ProjectMetadata{
		ScanID:      uuid.New(),
		GeneratedAt: time.Now().UTC(),
		Components:  a.components,
	}
}

// FlattenedText returns the order-preserving, deduplicated union of
// every component's text content. Downstream tag generation consumes
// the first 3, first 5 and full-list slices of this sequence.
func (p *ProjectMetadata) FlattenedText() []string {
	seen := make(map[string]struct{})
	var flattened []string
	for _, component := range p.Components {
		for _, text := range component.TextContent {
			if _, ok := seen[text]; ok {
				continue
			}
			seen[text] = struct{}{}
			flattened = append(flattened, text)
		}
	}
	return flattened
}

// FirstN returns at most n leading entries of s.
func FirstN(s []string, n int) []string {
	if len(s) < n {
		return s
	}
	return s[:n]
}
