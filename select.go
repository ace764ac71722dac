package mysqlq

// Joinable is the stage after From and after every join: more tables can be joined, or columns selected.
type Joinable struct {
	st *state
}

// From starts a SELECT statement over t, bound to a fresh alias.
func (s *Session) From(t *Table) *Joinable {
	return &Joinable{st: s.newState(selectStatement, t)}
}

// Scope returns the columns accumulated so far.
func (j *Joinable) Scope() Scope { return j.st.scope }

// InnerJoin joins t ON left(current scope) = right(t's columns). merge builds the scope
// for the following stages; nil means Merge.
func (j *Joinable) InnerJoin(t *Table, left, right KeyFunc, merge MergeFunc) *Joinable {
	return j.join(innerJoin, t, left, right, merge)
}

func (j *Joinable) LeftJoin(t *Table, left, right KeyFunc, merge MergeFunc) *Joinable {
	return j.join(leftJoin, t, left, right, merge)
}

func (j *Joinable) RightJoin(t *Table, left, right KeyFunc, merge MergeFunc) *Joinable {
	return j.join(rightJoin, t, left, right, merge)
}

func (j *Joinable) CrossJoin(t *Table, left, right KeyFunc, merge MergeFunc) *Joinable {
	return j.join(crossJoin, t, left, right, merge)
}

func (j *Joinable) join(kind joinKind, t *Table, left, right KeyFunc, merge MergeFunc) *Joinable {
	st := j.st
	qt := st.s.qtable(t)
	l, r := left(st.scope), right(qt.Scope())
	st.joins = append(st.joins, Operation{
		Text:     string(kind) + " JOIN " + qt.Name() + " " + qt.Alias() + " ON " + l.Path() + " = " + r.Path(),
		Bindings: Bindings(nil).merge(l.bindings).merge(r.bindings),
	})
	if merge == nil {
		merge = Merge
	}
	st.scope = merge(st.scope, qt.Scope())
	return &Joinable{st: st}
}

// Select establishes the output columns. Columns without an explicit alias are aliased to their field name.
func (j *Joinable) Select(fn func(Scope) Fields) *Selected {
	j.st.project(fn(j.st.scope))
	return &Selected{st: j.st}
}

// Selected is a SELECT statement with its columns established. Every clause method records
// into the statement and returns the same stage; clauses are rendered in SQL order whatever
// order they were added in.
//
// A Selected is also an Expression and can be embedded as a subquery into statements of the same Session.
// The subquery is rendered when it is embedded; later changes to it do not affect the outer statement.
type Selected struct {
	st *state
}

// Source returns the scope the callbacks of Where, GroupBy, Having and OrderBy receive.
func (s *Selected) Source() Scope { return s.st.scope }

// Columns returns the projected columns, keyed by field name.
func (s *Selected) Columns() Scope {
	out := Scope{}
	for _, c := range s.st.columns {
		out = out.with(c.name, columnFromOperation(c.name, c.alias, c.op))
	}
	return out
}

// Where adds a condition. Multiple conditions are joined with AND.
func (s *Selected) Where(fn func(Scope) Expression) *Selected {
	s.st.addWhere(fn(s.st.scope))
	return s
}

// GroupBy sets the GROUP BY expression, replacing any previous one.
func (s *Selected) GroupBy(fn func(Scope) Expression) *Selected {
	if op, ok := s.st.record(fn(s.st.scope)); ok {
		s.st.groupBy = &op
	}
	return s
}

func (s *Selected) Having(fn func(Scope) Expression) *Selected {
	if op, ok := s.st.record(fn(s.st.scope)); ok {
		s.st.having = append(s.st.having, op)
	}
	return s
}

// OrderBy appends ORDER BY entries after those of earlier calls.
func (s *Selected) OrderBy(fn func(Scope) []Order) *Selected {
	s.st.addOrder(fn(s.st.scope))
	return s
}

func (s *Selected) Limit(n int) *Selected {
	s.st.limit = n
	return s
}

func (s *Selected) Offset(n int) *Selected {
	s.st.offset = n
	return s
}

func (s *Selected) Distinct() *Selected {
	s.st.distinct = true
	return s
}

// SQL renders the binding preamble and the statement.
func (s *Selected) SQL() (string, error) {
	if s == nil || s.st == nil {
		return "", ErrMissingColumns
	}
	return s.st.sql()
}

func (s *Selected) String() string { return text(s.SQL()) }

func (*Selected) Kind() Kind { return SubqueryKind }

func (s *Selected) session() *Session { return s.st.s }

func (s *Selected) compiled() (Operation, error) { return s.st.compile(" ") }
