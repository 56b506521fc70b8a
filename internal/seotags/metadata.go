package seotags

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mvp-joe/seoscan/internal/extract"
)

// MetadataFileName is the JSON artifact written under the output dir.
const MetadataFileName = "metadata.json"

// metadataFile is the persisted shape: the project record plus the
// derived tag values, so downstream tooling needs no second pass.
type metadataFile struct {
	Project *extract.ProjectMetadata `json:"project"`
	Tags    TagSet                   `json:"tags"`
}

// WriteMetadata persists the project metadata and derived tags to
// outDir/metadata.json, creating outDir if needed.
func WriteMetadata(outDir string, meta *extract.ProjectMetadata, tags TagSet) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	payload, err := json.MarshalIndent(metadataFile{Project: meta, Tags: tags}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}

	path := filepath.Join(outDir, MetadataFileName)
	if err := os.WriteFile(path, append(payload, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
