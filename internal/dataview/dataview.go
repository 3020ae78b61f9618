// Package dataview models the tabular result a query provider hands to the gallery.
//
// A DataView is loosely shaped: any part of it may be missing. Validate is the only
// place that checks structure; everything downstream works on a TableView.
package dataview

import (
	"fmt"
	"strconv"
)

// RoleImageURL is the role bound to the column holding image locations.
const RoleImageURL = "imageUrl"

// RoleTitle is the optional caption role.
const RoleTitle = "title"

// Objects holds user-configurable properties keyed by object then property name.
type Objects map[string]map[string]any

// Column describes one result column and the roles bound to it.
type Column struct {
	Name  string
	Roles map[string]bool
}

// HasRole reports whether role is bound to the column.
func (c Column) HasRole(role string) bool {
	return c.Roles[role]
}

// Metadata describes the result columns and carries settings objects.
type Metadata struct {
	Columns []Column
	Objects Objects
}

// Table is the raw row payload. Source names the query the rows came from.
type Table struct {
	Source string
	Rows   [][]any
}

// DataView is one update's payload from the query provider.
type DataView struct {
	Metadata *Metadata
	Table    *Table
}

// TableView is a structurally valid DataView.
type TableView struct {
	source  string
	columns []Column
	rows    [][]any
	objects Objects
}

// Validate checks the payload once. The second return is false when the view is
// absent or malformed; callers fall back to an empty gallery in that case.
func Validate(dv *DataView) (TableView, bool) {
	if dv == nil || dv.Metadata == nil || dv.Table == nil {
		return TableView{}, false
	}
	if len(dv.Metadata.Columns) == 0 || dv.Table.Rows == nil {
		return TableView{}, false
	}
	return TableView{
		source:  dv.Table.Source,
		columns: dv.Metadata.Columns,
		rows:    dv.Table.Rows,
		objects: dv.Metadata.Objects,
	}, true
}

// Source returns the name of the query that produced the rows.
func (t TableView) Source() string { return t.source }

// Len returns the row count.
func (t TableView) Len() int { return len(t.rows) }

// Columns returns the column descriptors.
func (t TableView) Columns() []Column { return t.columns }

// Objects returns the settings objects attached to the view, possibly nil.
func (t TableView) Objects() Objects { return t.objects }

// Cell returns the raw value at row, col. A short row has no value for the
// columns it lacks; extra cells are never addressed.
func (t TableView) Cell(row, col int) any {
	r := t.rows[row]
	if col < 0 || col >= len(r) {
		return nil
	}
	return r[col]
}

// ColumnIndex returns the first column bound to role.
func (t TableView) ColumnIndex(role string) (int, bool) {
	for i, c := range t.columns {
		if c.HasRole(role) {
			return i, true
		}
	}
	return -1, false
}

// Text casts a cell to text. A nil cell has no text.
func Text(v any) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "", false
	case string:
		return x, true
	case []byte:
		return string(x), true
	case *string:
		if x == nil {
			return "", false
		}
		return *x, true
	case int64:
		return strconv.FormatInt(x, 10), true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(x), true
	default:
		return fmt.Sprint(x), true
	}
}
