// Package seotags turns aggregated scan results into SEO metadata
// artifacts: derived tag values, a metadata JSON file, and spliced
// meta tags in an HTML document's head.
package seotags

import (
	"fmt"
	"strings"

	"github.com/mvp-joe/seoscan/internal/extract"
)

// TagSet holds the generated tag values for one project.
type TagSet struct {
	Description   string `json:"description"`
	Keywords      string `json:"keywords"`
	OGTitle       string `json:"ogTitle"`
	OGDescription string `json:"ogDescription"`
}

// Build derives tag values from the project's flattened text view:
// the description from the first 5 strings, keywords from the full
// list, and social-sharing tags from the first 3.
func Build(projectName string, meta *extract.ProjectMetadata) TagSet {
	flattened := meta.FlattenedText()

	return TagSet{
		Description:   strings.Join(extract.FirstN(flattened, 5), "; "),
		Keywords:      strings.Join(flattened, ", "),
		OGTitle:       fmt.Sprintf("%s | %d components", projectName, len(meta.Components)),
		OGDescription: strings.Join(extract.FirstN(flattened, 3), "; "),
	}
}
