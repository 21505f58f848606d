// SPDX-License-Identifier: MIT

package selection

import "reflect"

// Role selects which per-row value a model returns.
type Role int

const (
	// DisplayRole is the text shown to the user.
	DisplayRole Role = iota

	// UserRole carries the object's internal name; matching uses it by default.
	UserRole
)

// Named is a domain object identified by its name.
type Named interface {
	Name() string
}

// ItemModel exposes rows and their per-role values.
type ItemModel interface {
	// RowCount returns the number of top-level rows.
	RowCount() int

	// Data returns the value of row for role; ok is false for invalid rows.
	Data(row int, role Role) (value string, ok bool)
}

// ItemView is a view over an ItemModel that supports additive selection.
type ItemView interface {
	Model() ItemModel

	// Select adds rows to the current selection without clearing it.
	Select(rows []int)
}

// Option customizes an ItemViewSelection.
type Option func(*ItemViewSelection)

// WithRole matches names against role instead of UserRole.
func WithRole(role Role) Option {
	return func(s *ItemViewSelection) {
		s.role = role
	}
}

// ItemViewSelection synchronizes an ItemView's selection from named objects.
type ItemViewSelection struct {
	view ItemView
	role Role
}

// New returns an ItemViewSelection bound to view.
func New(view ItemView, opts ...Option) *ItemViewSelection {
	s := &ItemViewSelection{view: view, role: UserRole}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// ApplyFrom selects every row whose role value exactly equals the name of one
// of objs, in a single Select call, and returns the selected rows in row
// order. Nil objects (typed nil pointers included) and invalid rows are
// skipped. Nothing is deselected.
//
// Complexity: O(rows + len(objs)).
func (s *ItemViewSelection) ApplyFrom(objs []Named) []int {
	if s.view == nil {
		return nil
	}
	model := s.view.Model()
	if model == nil || len(objs) == 0 {
		return nil
	}

	names := make(map[string]struct{}, len(objs))
	for _, obj := range objs {
		if isNil(obj) {
			continue
		}
		names[obj.Name()] = struct{}{}
	}

	var rows []int
	for row := 0; row < model.RowCount(); row++ {
		name, ok := model.Data(row, s.role)
		if !ok {
			continue
		}
		if _, hit := names[name]; hit {
			rows = append(rows, row)
		}
	}
	if len(rows) > 0 {
		s.view.Select(rows)
	}

	return rows
}

// isNil reports whether obj is nil or wraps a nil pointer, map, slice, func,
// chan or interface.
func isNil(obj Named) bool {
	if obj == nil {
		return true
	}
	v := reflect.ValueOf(obj)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}
