package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for the Per-File Extractor and Visitor:
// - Extract named-export array-of-objects content (name/price/title/
//   description keys plus features arrays), with classifier filtering
// - Extract all string properties of any array-of-objects initializer,
//   skipping properties named "icon"
// - Extract JSX text nodes, with class-like attribute values excluded
// - Extract literal JSX attribute values
// - Resolve identifier and member-access attribute expressions through
//   the binding table (member access by base object only)
// - Skip SVG attributes wholesale regardless of value
// - Reach declarations nested inside function and arrow-function bodies
// - Dedup preserving first-occurrence order
// - Title and description fallbacks
// - Parse failure surfaces as *ParseError
// - Extraction is idempotent

func extractSource(t *testing.T, source, path string) *ComponentMetadata {
	t.Helper()
	meta, err := NewExtractor(nil).Extract([]byte(source), path)
	require.NoError(t, err)
	require.NotNil(t, meta)
	return meta
}

func TestExtract_NamedExportArrayOfObjects(t *testing.T) {
	t.Parallel()

	source := `export const items = [{ title: "Our Plans", price: "9.99", features: ["Fast", "Secure"] }];`
	meta := extractSource(t, source, "plans.tsx")

	// The purely numeric price value is rejected by the classifier.
	assert.Equal(t, []string{"Our Plans", "Fast", "Secure"}, meta.TextContent)
}

func TestExtract_JSXTextWithClassNameNoise(t *testing.T) {
	t.Parallel()

	source := `export const App = () => <div className="card-wrapper">Hello World</div>;`
	meta := extractSource(t, source, "app.tsx")

	assert.Equal(t, []string{"Hello World"}, meta.TextContent)
}

func TestExtract_ObjectPropertiesSkipIcon(t *testing.T) {
	t.Parallel()

	source := `
const perks = [
  { name: "Priority queue", icon: "Golden Star Icon", blurb: "Jump every line" },
];
`
	meta := extractSource(t, source, "perks.tsx")

	assert.Contains(t, meta.TextContent, "Priority queue")
	assert.Contains(t, meta.TextContent, "Jump every line")
	assert.NotContains(t, meta.TextContent, "Golden Star Icon")
}

func TestExtract_NestedDeclarationsInsideFunctions(t *testing.T) {
	t.Parallel()

	source := `
export default function Pricing() {
  const perks = ["Unlimited seats", "Cancel anytime"];
  const fineprint = () => {
    const notes = ["Prices include tax"];
    return notes;
  };
  return <div>{perks.length}</div>;
}
`
	meta := extractSource(t, source, "pricing.tsx")

	assert.Contains(t, meta.TextContent, "Unlimited seats")
	assert.Contains(t, meta.TextContent, "Cancel anytime")
	assert.Contains(t, meta.TextContent, "Prices include tax")
}

func TestExtract_AttributeLiteralValue(t *testing.T) {
	t.Parallel()

	source := `export const Link = () => <a title="Read the docs" className="text-sm">Docs</a>;`
	meta := extractSource(t, source, "link.tsx")

	assert.Contains(t, meta.TextContent, "Read the docs")
	assert.Contains(t, meta.TextContent, "Docs")
	assert.NotContains(t, meta.TextContent, "text-sm")
}

func TestExtract_AttributeIdentifierResolvesThroughBindings(t *testing.T) {
	t.Parallel()

	source := `
const labels = ["Premium Support", "Fast Delivery"];
export function Badge() {
  return <img alt={labels} />;
}
`
	meta := extractSource(t, source, "badge.tsx")

	assert.Contains(t, meta.TextContent, "Premium Support")
	assert.Contains(t, meta.TextContent, "Fast Delivery")
}

func TestExtract_MemberAccessResolvesByBaseObject(t *testing.T) {
	t.Parallel()

	// Member resolution is a best-effort approximation: everything
	// recorded for the base identifier comes back, whatever the member.
	source := `
const copy = ["Start your trial", "No card required"];
export function Hero() {
  return <section aria-label={copy.headline} />;
}
`
	meta := extractSource(t, source, "hero.tsx")

	assert.Contains(t, meta.TextContent, "Start your trial")
	assert.Contains(t, meta.TextContent, "No card required")
}

func TestExtract_SVGAttributesNeverContribute(t *testing.T) {
	t.Parallel()

	source := `
export const Icon = () => (
  <svg viewBox="0 0 24 24">
    <path d="M0 0L10 10" fill="Currently Visible" />
  </svg>
);
`
	meta := extractSource(t, source, "icon.tsx")

	// d, viewBox and fill are vector-graphics attributes; even a value
	// that would pass the classifier contributes nothing.
	assert.Empty(t, meta.TextContent)
}

func TestExtract_DedupPreservesFirstOccurrenceOrder(t *testing.T) {
	t.Parallel()

	source := `
export const rows = [
  { title: "Monthly billing", description: "Monthly billing" },
];
export const App = () => <p>Monthly billing</p>;
`
	meta := extractSource(t, source, "rows.tsx")

	assert.Equal(t, []string{"Monthly billing"}, meta.TextContent)
}

func TestExtract_TitleAndDescription(t *testing.T) {
	t.Parallel()

	t.Run("explicit fields win", func(t *testing.T) {
		t.Parallel()
		source := `
export const page = [
  { title: "Pricing overview", description: "Compare all plans side by side" },
];
`
		meta := extractSource(t, source, "pricing-page.tsx")
		assert.Equal(t, "Pricing overview", meta.Title)
		assert.Equal(t, "Compare all plans side by side", meta.Description)
	})

	t.Run("title falls back to base name", func(t *testing.T) {
		t.Parallel()
		source := `export const App = () => <div>Welcome aboard</div>;`
		meta := extractSource(t, source, "src/components/WelcomeBanner.tsx")
		assert.Equal(t, "WelcomeBanner", meta.Title)
	})

	t.Run("description falls back to first text entry", func(t *testing.T) {
		t.Parallel()
		source := `export const App = () => <div>Welcome aboard</div>;`
		meta := extractSource(t, source, "banner.tsx")
		assert.Equal(t, "Welcome aboard", meta.Description)
	})

	t.Run("empty file keeps empty description", func(t *testing.T) {
		t.Parallel()
		meta := extractSource(t, `const n = 42;`, "empty.tsx")
		assert.Empty(t, meta.TextContent)
		assert.Equal(t, "empty", meta.Title)
		assert.Equal(t, "", meta.Description)
	})
}

func TestExtract_ParseFailure(t *testing.T) {
	t.Parallel()

	meta, err := NewExtractor(nil).Extract([]byte(`const 123 = ]]] <<<`), "broken.tsx")
	require.Error(t, err)
	assert.Nil(t, meta)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "broken.tsx", parseErr.FilePath)
}

func TestExtract_Idempotent(t *testing.T) {
	t.Parallel()

	source := `
export const items = [{ title: "Our Plans", features: ["Fast", "Secure"] }];
export const App = () => <div className="card">Hello World</div>;
`
	first := extractSource(t, source, "app.tsx")
	second := extractSource(t, source, "app.tsx")

	assert.Equal(t, first, second)
}

func TestExtract_NonLatinContent(t *testing.T) {
	t.Parallel()

	source := `export const App = () => <h1>சுவாகதம்</h1>;`
	meta := extractSource(t, source, "welcome.tsx")

	assert.Equal(t, []string{"சுவாகதம்"}, meta.TextContent)
}
