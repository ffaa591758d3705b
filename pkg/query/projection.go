// Package query builds parameterized SQL against aliased projections.
package query

import (
	"fmt"
	"strings"
)

// ProjectionMap translates view property names into qualified column
// references (alias.column) for one table. Builders consult it so callers
// can filter and sort by logical field names without knowing column names.
type ProjectionMap struct {
	schema  string
	table   string
	alias   string
	byView  map[string]string
	ordered []string
}

// NewProjectionMap starts an empty projection for schema.table under alias.
func NewProjectionMap(schema, table, alias string) *ProjectionMap {
	return &ProjectionMap{
		schema: schema,
		table:  table,
		alias:  alias,
		byView: make(map[string]string),
	}
}

// Project maps a database column to a view property name. Columns appear in
// SELECT lists in the order they were projected.
func (p *ProjectionMap) Project(column, viewName string) *ProjectionMap {
	qualified := p.alias + "." + column
	p.byView[viewName] = qualified
	p.ordered = append(p.ordered, qualified)
	return p
}

// Alias returns the table alias.
func (p *ProjectionMap) Alias() string {
	return p.alias
}

// Table returns the aliased table reference (schema.table alias).
func (p *ProjectionMap) Table() string {
	return fmt.Sprintf("%s.%s %s", p.schema, p.table, p.alias)
}

// Column resolves a view property name to its qualified column. Unmapped
// names pass through unchanged.
func (p *ProjectionMap) Column(viewName string) string {
	if col, ok := p.byView[viewName]; ok {
		return col
	}
	return viewName
}

// Columns returns the projected columns joined for a SELECT list.
func (p *ProjectionMap) Columns() string {
	return strings.Join(p.ordered, ", ")
}

// ColumnList returns the projected columns in projection order.
func (p *ProjectionMap) ColumnList() []string {
	return p.ordered
}
