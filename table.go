package mysqlq

import "fmt"

// Table describes a table: its name and its ordered column names. Tables are declared once and never change.
type Table struct {
	name    string
	columns []string
}

func NewTable(name string, columns ...string) *Table {
	return &Table{name: name, columns: append([]string(nil), columns...)}
}

func (t *Table) Name() string { return t.name }

func (t *Table) Columns() []string { return append([]string(nil), t.columns...) }

// QTable is a Table bound to an alias within one statement.
type QTable struct {
	table *Table
	alias string
	scope Scope
}

func (s *Session) qtable(t *Table) *QTable {
	alias := s.nextAlias()
	scope := Scope{}
	for _, name := range t.columns {
		scope = scope.with(name, newColumn(alias, name))
	}
	return &QTable{table: t, alias: alias, scope: scope}
}

func (q *QTable) Name() string { return q.table.name }

func (q *QTable) Alias() string { return q.alias }

func (q *QTable) Table() *Table { return q.table }

func (q *QTable) Col(name string) *Column { return q.scope.Col(name) }

func (q *QTable) Scope() Scope { return q.scope }

// Scope resolves names to columns. It is the column model handed to select, where and join callbacks.
// Scopes are values: With, Merge and Prefixed return new scopes and leave the receiver untouched.
type Scope struct {
	names []string
	cols  map[string]*Column
}

// NewScope builds a scope from fields whose values are columns.
func NewScope(cols ...Field) Scope {
	s := Scope{}
	for _, f := range cols {
		c, ok := f.Value.(*Column)
		if !ok {
			panic(fmt.Errorf("mysqlq: scope entry %q is %T, not a column", f.Name, f.Value))
		}
		s = s.with(f.Name, c)
	}
	return s
}

// Col returns the column registered under name. It panics with ErrUnknownColumn if there is none.
func (s Scope) Col(name string) *Column {
	c, ok := s.cols[name]
	if !ok {
		panic(fmt.Errorf("%w: %s", ErrUnknownColumn, name))
	}
	return c
}

func (s Scope) Lookup(name string) (*Column, bool) {
	c, ok := s.cols[name]
	return c, ok
}

func (s Scope) Names() []string { return append([]string(nil), s.names...) }

func (s Scope) Len() int { return len(s.names) }

// Fields lists every column of the scope in order, ready to be returned from a select callback.
func (s Scope) Fields() Fields {
	fields := make(Fields, 0, len(s.names))
	for _, name := range s.names {
		fields = append(fields, F(name, s.cols[name]))
	}
	return fields
}

func (s Scope) With(name string, c *Column) Scope {
	return s.clone().with(name, c)
}

// Merge returns the union of both scopes. Names present in both resolve to other's column.
func (s Scope) Merge(other Scope) Scope {
	out := s.clone()
	for _, name := range other.names {
		out = out.with(name, other.cols[name])
	}
	return out
}

// Prefixed returns the scope with every name rewritten to prefix.name.
func (s Scope) Prefixed(prefix string) Scope {
	out := Scope{}
	for _, name := range s.names {
		out = out.with(prefix+"."+name, s.cols[name])
	}
	return out
}

func (s Scope) clone() Scope {
	out := Scope{names: append([]string(nil), s.names...), cols: make(map[string]*Column, len(s.cols))}
	for k, v := range s.cols {
		out.cols[k] = v
	}
	return out
}

// with adds or replaces name in place; callers own s.
func (s Scope) with(name string, c *Column) Scope {
	if s.cols == nil {
		s.cols = make(map[string]*Column)
	}
	if _, exists := s.cols[name]; !exists {
		s.names = append(s.names, name)
	}
	s.cols[name] = c
	return s
}

// Field is one entry of a projection, an insert row or an update assignment list.
type Field struct {
	Name  string
	Value interface{}
}

// Fields is an ordered projection.
type Fields []Field

func F(name string, value interface{}) Field { return Field{Name: name, Value: value} }

func (fs Fields) Names() []string {
	names := make([]string, len(fs))
	for i, f := range fs {
		names[i] = f.Name
	}
	return names
}

func (fs Fields) get(name string) (interface{}, bool) {
	for _, f := range fs {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// KeyFunc picks a join key from a scope.
type KeyFunc func(Scope) *Column

// MergeFunc combines the scope accumulated so far with the scope of a newly joined table.
type MergeFunc func(left, right Scope) Scope

// Key selects the named column.
func Key(name string) KeyFunc {
	return func(s Scope) *Column { return s.Col(name) }
}

// Merge is the default MergeFunc: all columns of both sides, the joined table winning on conflicts.
func Merge(left, right Scope) Scope { return left.Merge(right) }

// KeepLeft discards the joined table's columns; they can still be used as join keys.
func KeepLeft(left, _ Scope) Scope { return left }

// Nest adds the joined table's columns as prefix.column.
func Nest(prefix string) MergeFunc {
	return func(left, right Scope) Scope { return left.Merge(right.Prefixed(prefix)) }
}
