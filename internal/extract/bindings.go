package extract

// Bindings maps locally declared identifier names to the string
// literals they were initialized with. It is populated while the
// visitor walks declarations whose initializer is a literal array of
// strings, and consulted when a JSX attribute references an identifier
// instead of a literal. The table is scoped to a single file's
// traversal and discarded afterwards.
//
// Values are recorded unfiltered; classification happens again at the
// point of use. Resolution is deliberately shallow: no imports, no
// expression evaluation, no reassignment tracking.
type Bindings struct {
	values map[string][]string
}

// NewBindings returns an empty binding table.
func NewBindings() *Bindings {
	return &Bindings{values: make(map[string][]string)}
}

// Record associates name with the given literal values. Repeated
// declarations of the same name accumulate.
func (b *Bindings) Record(name string, literals []string) {
	if name == "" || len(literals) == 0 {
		return
	}
	b.values[name] = append(b.values[name], literals...)
}

// Resolve returns the literals recorded for name, or nil.
func (b *Bindings) Resolve(name string) []string {
	return b.values[name]
}

// ResolveMember resolves a member access (obj.field) through the base
// object identifier only. The member name is ignored: everything
// recorded for the object is returned as a best-effort approximation.
// This cannot distinguish config.title from config.price; the coarse
// behavior is intentional and load-bearing for downstream consumers.
func (b *Bindings) ResolveMember(object, _ string) []string {
	return b.values[object]
}

// Len returns the number of distinct bound names.
func (b *Bindings) Len() int {
	return len(b.values)
}
