// Package selection mirrors a set of named objects onto the rows of an item
// view: every row whose name matches one of the objects is added to the
// view's selection. Rows that do not match keep whatever state they had.
//
// The view and its model are narrow interfaces; any list or tree widget can
// be adapted with a few lines.
package selection
