package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test Plan for Bindings:
// - Record and resolve literal lists by identifier name
// - Repeated declarations accumulate
// - Member access resolves by base object, ignoring the member name
// - Unknown identifiers resolve to nil
// - Empty names and empty literal lists are not recorded

func TestBindings_RecordAndResolve(t *testing.T) {
	t.Parallel()

	b := NewBindings()
	b.Record("labels", []string{"Home", "About"})

	assert.Equal(t, []string{"Home", "About"}, b.Resolve("labels"))
	assert.Nil(t, b.Resolve("missing"))
	assert.Equal(t, 1, b.Len())
}

func TestBindings_RepeatedDeclarationsAccumulate(t *testing.T) {
	t.Parallel()

	b := NewBindings()
	b.Record("labels", []string{"Home"})
	b.Record("labels", []string{"About"})

	assert.Equal(t, []string{"Home", "About"}, b.Resolve("labels"))
}

func TestBindings_ResolveMemberIgnoresMemberName(t *testing.T) {
	t.Parallel()

	b := NewBindings()
	b.Record("config", []string{"Acme Inc", "Best tools in town"})

	// config.title and config.price both resolve to everything
	// recorded for config.
	assert.Equal(t, b.ResolveMember("config", "title"), b.ResolveMember("config", "price"))
	assert.Equal(t, []string{"Acme Inc", "Best tools in town"}, b.ResolveMember("config", "anything"))
}

func TestBindings_IgnoresEmptyRecords(t *testing.T) {
	t.Parallel()

	b := NewBindings()
	b.Record("", []string{"Home"})
	b.Record("labels", nil)

	assert.Equal(t, 0, b.Len())
}
