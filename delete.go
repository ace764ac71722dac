package mysqlq

// Deletable is a DELETE statement. It needs no columns and can be rendered right away,
// which deletes every row.
type Deletable struct {
	st *state
}

// DeleteFrom starts a DELETE statement on t.
func (s *Session) DeleteFrom(t *Table) *Deletable {
	return &Deletable{st: s.newState(deleteStatement, t)}
}

// Where adds a condition. Multiple conditions are joined with AND.
func (d *Deletable) Where(fn func(Scope) Expression) *Deletable {
	d.st.addWhere(fn(d.st.scope))
	return d
}

func (d *Deletable) SQL() (string, error) {
	if d == nil || d.st == nil {
		return "", ErrMissingColumns
	}
	return d.st.sql()
}

func (d *Deletable) String() string { return text(d.SQL()) }
