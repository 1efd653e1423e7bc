package domain

import "sort"

// Field constants for change tracking on the Promotion aggregate.
const (
	FieldName      = "name"
	FieldWindow    = "window"
	FieldBindings  = "bindings"
	FieldDeletedAt = "deleted_at"
)

// ChangeTracker records which parts of a promotion were modified so the
// repository can emit only the mutations that are needed: a row update for
// name/window, a delete-and-reinsert of child rows for bindings.
type ChangeTracker struct {
	dirty map[string]struct{}
}

// NewChangeTracker creates an empty tracker.
func NewChangeTracker() *ChangeTracker {
	return &ChangeTracker{dirty: make(map[string]struct{})}
}

// MarkDirty marks a field as modified.
func (ct *ChangeTracker) MarkDirty(field string) {
	ct.dirty[field] = struct{}{}
}

// Dirty reports whether field was modified.
func (ct *ChangeTracker) Dirty(field string) bool {
	_, ok := ct.dirty[field]
	return ok
}

// HasChanges returns true if any field has been marked dirty.
func (ct *ChangeTracker) HasChanges() bool {
	return len(ct.dirty) > 0
}

// DirtyFields returns the modified fields in a stable order.
func (ct *ChangeTracker) DirtyFields() []string {
	fields := make([]string, 0, len(ct.dirty))
	for f := range ct.dirty {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// Clear forgets all modifications, typically after a successful commit.
func (ct *ChangeTracker) Clear() {
	ct.dirty = make(map[string]struct{})
}
