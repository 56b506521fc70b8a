package seotags

import (
	"bytes"
	"fmt"
	"html"
	"os"

	"github.com/PuerkitoBio/goquery"
)

// generatedAttr marks tags written by this tool so a later run can
// replace them without touching hand-written metadata.
const generatedAttr = "data-seoscan"

// PatchHead splices the generated meta tags into the head of the HTML
// document at path. Previously generated tags are removed first; the
// patch is idempotent.
func PatchHead(path string, tags TagSet) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	patched, err := PatchHeadHTML(content, tags)
	if err != nil {
		return fmt.Errorf("failed to patch %s: %w", path, err)
	}

	if err := os.WriteFile(path, patched, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// PatchHeadHTML returns document with the generated meta tags spliced
// into its head section.
func PatchHeadHTML(document []byte, tags TagSet) ([]byte, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(document))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	head := doc.Find("head")
	if head.Length() == 0 {
		return nil, fmt.Errorf("document has no head section")
	}

	doc.Find("meta[" + generatedAttr + "]").Remove()

	for _, tag := range metaTags(tags) {
		head.AppendHtml(tag)
	}

	out, err := doc.Html()
	if err != nil {
		return nil, fmt.Errorf("failed to render HTML: %w", err)
	}
	return []byte(out), nil
}

func metaTags(tags TagSet) []string {
	var rendered []string
	add := func(attr, name, content string) {
		if content == "" {
			return
		}
		rendered = append(rendered, fmt.Sprintf(
			`<meta %s="%s" content="%s" %s="true"/>`,
			attr, name, html.EscapeString(content), generatedAttr))
	}

	add("name", "description", tags.Description)
	add("name", "keywords", tags.Keywords)
	add("property", "og:title", tags.OGTitle)
	add("property", "og:description", tags.OGDescription)
	return rendered
}
