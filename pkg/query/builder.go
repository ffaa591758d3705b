package query

import (
	"fmt"
	"reflect"
	"strings"
)

// SortField names one ORDER BY column by its view property name.
type SortField struct {
	Field      string
	Descending bool
}

// ParseSortFields parses a comma-separated sort expression into SortFields.
// A "-" prefix marks a field descending ("name,-createdAt"). Empty input
// yields nil.
func ParseSortFields(s string) []SortField {
	if s == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	fields := make([]SortField, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, desc := strings.CutPrefix(part, "-")
		fields = append(fields, SortField{Field: name, Descending: desc})
	}
	return fields
}

type condition struct {
	clause string
	args   []any
}

// Builder accumulates WHERE conditions and ordering against a projection,
// then renders SELECT variants with sequential $n placeholders. Conditions
// holding nil or empty values are skipped, so optional filters chain without
// branching at the call site.
type Builder struct {
	projection  *ProjectionMap
	conditions  []condition
	orderBy     []SortField
	defaultSort []SortField
}

// NewBuilder creates a Builder with an optional default sort, used when no
// explicit ordering is set.
func NewBuilder(projection *ProjectionMap, defaultSort ...SortField) *Builder {
	return &Builder{projection: projection, defaultSort: defaultSort}
}

// OrderByFields replaces the sort order, overriding the default sort.
func (b *Builder) OrderByFields(fields []SortField) *Builder {
	b.orderBy = fields
	return b
}

// WhereEquals adds an equality condition. Nil values are skipped.
func (b *Builder) WhereEquals(field string, value any) *Builder {
	if isNil(value) {
		return b
	}
	return b.where(b.projection.Column(field)+" = $%d", value)
}

// WhereContains adds a case-insensitive substring match. Nil and empty
// values are skipped.
func (b *Builder) WhereContains(field string, value *string) *Builder {
	if value == nil || *value == "" {
		return b
	}
	return b.where(b.projection.Column(field)+" ILIKE $%d", "%"+*value+"%")
}

// WhereIn adds an IN condition. Empty slices are skipped.
func (b *Builder) WhereIn(field string, values []any) *Builder {
	if len(values) == 0 {
		return b
	}

	placeholders := make([]string, len(values))
	for i := range values {
		placeholders[i] = "$%d"
	}
	clause := fmt.Sprintf("%s IN (%s)", b.projection.Column(field), strings.Join(placeholders, ", "))
	return b.where(clause, values...)
}

// WhereNullable adds an equality condition, or IS NULL when value is nil.
func (b *Builder) WhereNullable(field string, value any) *Builder {
	col := b.projection.Column(field)
	if isNil(value) {
		b.conditions = append(b.conditions, condition{clause: col + " IS NULL"})
		return b
	}
	return b.where(col+" = $%d", value)
}

// WhereSearch adds one grouped OR of ILIKE matches across fields. Nil and
// empty search values are skipped.
func (b *Builder) WhereSearch(search *string, fields ...string) *Builder {
	if search == nil || *search == "" || len(fields) == 0 {
		return b
	}

	pattern := "%" + *search + "%"
	clauses := make([]string, len(fields))
	args := make([]any, len(fields))
	for i, field := range fields {
		clauses[i] = b.projection.Column(field) + " ILIKE $%d"
		args[i] = pattern
	}
	return b.where("("+strings.Join(clauses, " OR ")+")", args...)
}

// Build renders a SELECT with the accumulated conditions and ordering.
func (b *Builder) Build() (string, []any) {
	where, args := b.renderWhere()
	sql := fmt.Sprintf("SELECT %s FROM %s%s%s",
		b.projection.Columns(), b.projection.Table(), where, b.renderOrderBy())
	return sql, args
}

// BuildCount renders a COUNT(*) with the accumulated conditions.
func (b *Builder) BuildCount() (string, []any) {
	where, args := b.renderWhere()
	return fmt.Sprintf("SELECT COUNT(*) FROM %s%s", b.projection.Table(), where), args
}

// BuildPage renders a SELECT with ordering, LIMIT, and OFFSET for the given
// 1-based page.
func (b *Builder) BuildPage(page, pageSize int) (string, []any) {
	where, args := b.renderWhere()
	sql := fmt.Sprintf("SELECT %s FROM %s%s%s LIMIT %d OFFSET %d",
		b.projection.Columns(), b.projection.Table(), where, b.renderOrderBy(),
		pageSize, (page-1)*pageSize)
	return sql, args
}

// BuildSingle renders a SELECT keyed on a single identifier field, ignoring
// any accumulated conditions.
func (b *Builder) BuildSingle(idField string, id any) (string, []any) {
	sql := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1",
		b.projection.Columns(), b.projection.Table(), b.projection.Column(idField))
	return sql, []any{id}
}

// BuildSingleOrNull renders a SELECT limited to one row with the accumulated
// conditions.
func (b *Builder) BuildSingleOrNull() (string, []any) {
	where, args := b.renderWhere()
	sql := fmt.Sprintf("SELECT %s FROM %s%s LIMIT 1",
		b.projection.Columns(), b.projection.Table(), where)
	return sql, args
}

func (b *Builder) where(clause string, args ...any) *Builder {
	b.conditions = append(b.conditions, condition{clause: clause, args: args})
	return b
}

func (b *Builder) renderOrderBy() string {
	fields := b.orderBy
	if len(fields) == 0 {
		fields = b.defaultSort
	}
	if len(fields) == 0 {
		return ""
	}

	parts := make([]string, len(fields))
	for i, f := range fields {
		dir := "ASC"
		if f.Descending {
			dir = "DESC"
		}
		parts[i] = b.projection.Column(f.Field) + " " + dir
	}
	return " ORDER BY " + strings.Join(parts, ", ")
}

// renderWhere joins conditions with AND, numbering the $%d placeholders
// sequentially as it flattens their arguments.
func (b *Builder) renderWhere() (string, []any) {
	if len(b.conditions) == 0 {
		return "", nil
	}

	clauses := make([]string, 0, len(b.conditions))
	args := make([]any, 0)
	n := 1

	for _, cond := range b.conditions {
		clause := cond.clause
		for _, arg := range cond.args {
			clause = strings.Replace(clause, "$%d", fmt.Sprintf("$%d", n), 1)
			args = append(args, arg)
			n++
		}
		clauses = append(clauses, clause)
	}

	return " WHERE " + strings.Join(clauses, " AND "), args
}

func isNil(value any) bool {
	if value == nil {
		return true
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	}
	return false
}
