// Package resource implements the generic entity engine: one parameterized
// use case per verb instead of a copy of the same handler logic per table.
// Each entity is described by a Descriptor; records travel as column-keyed
// maps so the engine stays agnostic of any one entity's shape.
package resource

import "strings"

// Record is one row keyed by column name, as decoded from a request body or
// scanned from the store.
type Record = map[string]any

// Filter narrows a lookup to rows matching Column = Value.
type Filter struct {
	Column string
	Value  any
}

// KeyKind tells a relation route how to validate its path key.
type KeyKind int

const (
	KeyID KeyKind = iota
	KeyEmail
)

// RelationMode selects the response convention of a relation route. The
// conventions differ per entity and are preserved as observed.
type RelationMode int

const (
	// RelationList answers 200 with the (possibly empty) row list.
	RelationList RelationMode = iota
	// RelationListOr404 answers 404 when no row matches.
	RelationListOr404
	// RelationFirstOr404 answers the first row, 404 when none matches.
	RelationFirstOr404
	// RelationFirst answers the first row, or a 200 null body when none matches.
	RelationFirst
)

// RelationKey is one validated path segment of a relation route.
type RelationKey struct {
	Param  string
	Column string
	Kind   KeyKind
}

// Relation is a get-by-foreign-key route of an entity.
type Relation struct {
	Path            string
	Keys            []RelationKey
	Mode            RelationMode
	NotFoundMessage string // default "<Name> not found"
}

// Descriptor configures the generic engine for one entity.
type Descriptor struct {
	Name      string // display name, e.g. "Job result"
	MountPath string
	Table     string
	IDColumn  string

	// Columns the engine reads from a create body, in insert order. Absent
	// body fields are written as NULL, keeping full-resubmission parity with
	// updates.
	Columns []string
	// UpdateColumns, when set, narrows what an update writes; nil means Columns.
	UpdateColumns []string

	RequiredCreate []string
	// RequiredUpdate lists the fields an update must resubmit. nil falls back
	// to RequiredCreate; an empty slice means updates have no required fields.
	RequiredUpdate []string

	// IDFields and EmailFields are format-checked whenever present in a body.
	IDFields    []string
	EmailFields []string

	CreatedColumn   string
	UpdatedColumn   string
	UpdatedOnCreate bool // stamp UpdatedColumn at create time (else written NULL)

	ListRoute bool
	Relations []Relation
}

// InsertColumns is the full ordered column list an insert writes.
func (d Descriptor) InsertColumns() []string {
	cols := append([]string(nil), d.Columns...)
	if d.CreatedColumn != "" {
		cols = append(cols, d.CreatedColumn)
	}
	if d.UpdatedColumn != "" {
		cols = append(cols, d.UpdatedColumn)
	}
	return cols
}

// UpdateColumnList is the full ordered column list an update writes.
func (d Descriptor) UpdateColumnList() []string {
	base := d.UpdateColumns
	if base == nil {
		base = d.Columns
	}
	cols := append([]string(nil), base...)
	if d.UpdatedColumn != "" {
		cols = append(cols, d.UpdatedColumn)
	}
	return cols
}

func (d Descriptor) requiredForUpdate() []string {
	if d.RequiredUpdate == nil {
		return d.RequiredCreate
	}
	return d.RequiredUpdate
}

// IDLabel is the human form of an id column, for messages like
// "Invalid interaction ID".
func IDLabel(column string) string {
	return strings.ReplaceAll(strings.TrimSuffix(column, "_id"), "_", " ")
}
