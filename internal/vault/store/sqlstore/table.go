package sqlstore

import "strings"

// Table maps a resource type onto its SQL table.
type Table[T any] struct {
	Name string
	Key  string
	// Owner is the user foreign key column, empty for unowned tables.
	Owner string
	// Columns are the mutable columns in write order. The key and
	// created_at are managed by the database.
	Columns []string

	// Values returns the values of Columns for v, in order.
	Values func(v *T) []any
	// Dest returns scan targets for Key, Columns... and created_at, in order.
	Dest func(v *T) []any
	// ID returns the key of v.
	ID func(v *T) int64
}

func (t *Table[T]) selectList() string {
	cols := make([]string, 0, len(t.Columns)+2)
	cols = append(cols, t.Key)
	cols = append(cols, t.Columns...)
	cols = append(cols, "created_at")
	return strings.Join(cols, ", ")
}

func (t *Table[T]) listSQL() string {
	return "SELECT " + t.selectList() + " FROM " + t.Name + " ORDER BY " + t.Key
}

func (t *Table[T]) getSQL(d Dialect) string {
	return "SELECT " + t.selectList() + " FROM " + t.Name + " WHERE " + t.Key + " = " + d.Placeholder(1)
}

func (t *Table[T]) insertSQL(d Dialect) string {
	marks := make([]string, len(t.Columns))
	for i := range t.Columns {
		marks[i] = d.Placeholder(i + 1)
	}
	return "INSERT INTO " + t.Name + " (" + strings.Join(t.Columns, ", ") + ") VALUES (" +
		strings.Join(marks, ", ") + ") RETURNING " + t.selectList()
}

func (t *Table[T]) updateSQL(d Dialect) string {
	sets := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		sets[i] = c + " = " + d.Placeholder(i+1)
	}
	return "UPDATE " + t.Name + " SET " + strings.Join(sets, ", ") +
		" WHERE " + t.Key + " = " + d.Placeholder(len(t.Columns)+1) +
		" RETURNING " + t.selectList()
}

func (t *Table[T]) deleteSQL(d Dialect) string {
	return "DELETE FROM " + t.Name + " WHERE " + t.Key + " = " + d.Placeholder(1)
}

func (t *Table[T]) existsSQL(d Dialect) string {
	return "SELECT 1 FROM " + t.Name + " WHERE " + t.Key + " = " + d.Placeholder(1)
}

func (t *Table[T]) countSQL() string {
	return "SELECT COUNT(*) FROM " + t.Name
}

func (t *Table[T]) countByOwnerSQL(d Dialect) string {
	return "SELECT COUNT(*) FROM " + t.Name + " WHERE " + t.Owner + " = " + d.Placeholder(1)
}

func (t *Table[T]) deleteByOwnerSQL(d Dialect) string {
	return "DELETE FROM " + t.Name + " WHERE " + t.Owner + " = " + d.Placeholder(1)
}
