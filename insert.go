package mysqlq

// Insertable is the stage after InsertInto.
type Insertable struct {
	st *state
}

// InsertInto starts an INSERT statement into t.
func (s *Session) InsertInto(t *Table) *Insertable {
	return &Insertable{st: s.newState(insertStatement, t)}
}

// Values appends literal rows. The first row ever added fixes the column list and its order;
// every row is rendered positionally in that order, DEFAULT standing in for a missing field.
// Fields not in the column list are ignored.
func (i *Insertable) Values(rows ...Fields) *Inserted {
	st := i.st
	for _, row := range rows {
		if len(st.columns) == 0 {
			for _, f := range row {
				st.columns = append(st.columns, output{name: f.Name, alias: f.Name})
			}
		}
		values := make([]Operation, len(st.columns))
		for n, c := range st.columns {
			v, ok := row.get(c.name)
			if !ok {
				values[n] = Operation{Text: "DEFAULT"}
				continue
			}
			op, ok := st.record(v)
			if !ok {
				return &Inserted{st: st}
			}
			values[n] = op
		}
		st.rows = append(st.rows, values)
	}
	return &Inserted{st: st}
}

// ValuesFrom makes the statement an INSERT ... SELECT. The columns are the projection keys of sub,
// which must belong to the same Session.
// It renders INSERT INTO t T1 (cols) followed by (SELECT ...) on the next line, with no VALUES keyword.
func (i *Insertable) ValuesFrom(sub *Selected) *Inserted {
	st := i.st
	op, ok := st.record(sub)
	if !ok {
		return &Inserted{st: st}
	}
	// record wraps subqueries in parentheses; the head adds its own.
	op.Text = op.Text[1 : len(op.Text)-1]
	st.columns = st.columns[:0]
	for _, c := range sub.st.columns {
		st.columns = append(st.columns, output{name: c.name, alias: c.alias})
	}
	st.insertSelect = &op
	return &Inserted{st: st}
}

// Inserted is a complete INSERT statement.
type Inserted struct {
	st *state
}

func (i *Inserted) SQL() (string, error) {
	if i == nil || i.st == nil {
		return "", ErrMissingColumns
	}
	return i.st.sql()
}

func (i *Inserted) String() string { return text(i.SQL()) }
