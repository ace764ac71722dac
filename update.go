package mysqlq

// Updatable is the stage after Update.
type Updatable struct {
	st *state
}

// Update starts an UPDATE statement on t.
func (s *Session) Update(t *Table) *Updatable {
	return &Updatable{st: s.newState(updateStatement, t)}
}

// Set establishes the assignments. fn receives the table's columns, so a new value may refer to the
// old one: F("likes", o.Col("likes").Plus(1)).
func (u *Updatable) Set(fn func(Scope) Fields) *Updated {
	u.st.project(fn(u.st.scope))
	return &Updated{st: u.st}
}

// Updated is an UPDATE statement with its assignments established.
type Updated struct {
	st *state
}

// Where adds a condition. Multiple conditions are joined with AND.
func (u *Updated) Where(fn func(Scope) Expression) *Updated {
	u.st.addWhere(fn(u.st.scope))
	return u
}

func (u *Updated) OrderBy(fn func(Scope) []Order) *Updated {
	u.st.addOrder(fn(u.st.scope))
	return u
}

func (u *Updated) Limit(n int) *Updated {
	u.st.limit = n
	return u
}

func (u *Updated) SQL() (string, error) {
	if u == nil || u.st == nil {
		return "", ErrMissingColumns
	}
	return u.st.sql()
}

func (u *Updated) String() string { return text(u.SQL()) }
