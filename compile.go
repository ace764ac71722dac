package mysqlq

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

type statementKind int

const (
	selectStatement statementKind = iota
	insertStatement
	updateStatement
	deleteStatement
)

func (k statementKind) String() string {
	switch k {
	case selectStatement:
		return "SELECT"
	case insertStatement:
		return "INSERT"
	case updateStatement:
		return "UPDATE"
	case deleteStatement:
		return "DELETE"
	}
	return "statementKind(" + strconv.Itoa(int(k)) + ")"
}

type joinKind string

const (
	innerJoin joinKind = "INNER"
	leftJoin  joinKind = "LEFT"
	rightJoin joinKind = "RIGHT"
	crossJoin joinKind = "CROSS"
)

// output is one entry of the output column map: a projected column, an insert column or an update assignment.
type output struct {
	name  string
	alias string
	op    Operation
}

// state accumulates the clauses of one statement. Stages record into it in any order;
// compile decides the clause order.
type state struct {
	s      *Session
	kind   statementKind
	source *QTable
	scope  Scope

	columns  []output
	distinct bool
	joins    []Operation
	where    []Operation
	groupBy  *Operation
	having   []Operation
	orderBy  []Operation
	limit    int
	offset   int

	rows         [][]Operation
	insertSelect *Operation

	err error
}

func (s *Session) newState(kind statementKind, t *Table) *state {
	qt := s.qtable(t)
	return &state{s: s, kind: kind, source: qt, scope: qt.Scope(), limit: -1}
}

// fail keeps the first construction error; SQL returns it.
func (st *state) fail(err error) {
	if st.err == nil {
		st.err = err
	}
}

func (st *state) record(v interface{}) (Operation, bool) {
	if st.err != nil {
		return Operation{}, false
	}
	op, err := st.s.bind(v)
	if err != nil {
		st.fail(err)
		return Operation{}, false
	}
	return op, true
}

func (st *state) addWhere(v interface{}) {
	if op, ok := st.record(v); ok {
		st.where = append(st.where, op)
	}
}

func (st *state) addOrder(orders []Order) {
	for _, o := range orders {
		op, ok := st.record(o.On)
		if !ok {
			return
		}
		dir := o.Direction
		if dir == "" {
			dir = Ascending
		}
		op.Text += " " + string(dir)
		st.orderBy = append(st.orderBy, op)
	}
}

// project replaces the output column map. Columns without an explicit alias take the field name.
func (st *state) project(fields Fields) {
	columns := make([]output, 0, len(fields))
	for _, f := range fields {
		op, ok := st.record(f.Value)
		if !ok {
			return
		}
		alias := f.Name
		if c, isCol := f.Value.(*Column); isCol && c.alias != "" {
			alias = c.alias
		}
		columns = append(columns, output{name: f.Name, alias: alias, op: op})
	}
	st.columns = columns
}

func (st *state) hasColumns() bool {
	return st.kind == deleteStatement || len(st.columns) > 0
}

// compile renders the statement body, clauses joined by sep. It does not allocate names and
// does not touch the state, so it can be called any number of times.
func (st *state) compile(sep string) (Operation, error) {
	if st.err != nil {
		return Operation{}, st.err
	}
	if !st.hasColumns() {
		return Operation{}, fmt.Errorf("%w: %s %s", ErrMissingColumns, st.kind, st.source.Name())
	}

	bindings := Bindings{}
	use := func(op Operation) string {
		bindings.merge(op.Bindings)
		return op.Text
	}
	list := func(ops []Operation, format, joiner string) string {
		texts := make([]string, len(ops))
		for i, op := range ops {
			texts[i] = fmt.Sprintf(format, use(op))
		}
		return strings.Join(texts, joiner)
	}
	table := st.source.Name() + " " + st.source.Alias()

	var lines []string
	switch st.kind {
	case selectStatement:
		cols := make([]string, len(st.columns))
		for i, c := range st.columns {
			cols[i] = use(c.op) + " AS " + c.alias
		}
		head := "SELECT "
		if st.distinct {
			head += "DISTINCT "
		}
		lines = append(lines, head+strings.Join(cols, ", ")+" FROM "+table)
	case insertStatement:
		cols := make([]string, len(st.columns))
		for i, c := range st.columns {
			cols[i] = st.source.Alias() + "." + c.name
		}
		head := "INSERT INTO " + table + " (" + strings.Join(cols, ", ") + ")"
		if st.insertSelect != nil {
			lines = append(lines, head, "("+use(*st.insertSelect)+")")
		} else {
			rows := make([]string, len(st.rows))
			for i, row := range st.rows {
				rows[i] = "(" + list(row, "%s", ", ") + ")"
			}
			lines = append(lines, head+" VALUES "+strings.Join(rows, ", "))
		}
	case updateStatement:
		set := make([]string, len(st.columns))
		for i, c := range st.columns {
			set[i] = c.name + " = " + use(c.op)
		}
		lines = append(lines, "UPDATE "+table, "SET "+strings.Join(set, ", "))
	case deleteStatement:
		lines = append(lines, "DELETE "+st.source.Alias()+" FROM "+table)
	}

	for _, j := range st.joins {
		lines = append(lines, use(j))
	}
	if len(st.where) > 0 {
		lines = append(lines, "WHERE "+list(st.where, "(%s)", " AND "))
	}
	if st.groupBy != nil {
		lines = append(lines, "GROUP BY "+use(*st.groupBy))
	}
	if len(st.having) > 0 {
		lines = append(lines, "HAVING "+list(st.having, "(%s)", " AND "))
	}
	if len(st.orderBy) > 0 {
		lines = append(lines, "ORDER BY "+list(st.orderBy, "%s", ", "))
	}
	if st.limit >= 0 {
		lines = append(lines, "LIMIT "+strconv.Itoa(st.limit))
	}
	if st.offset > 0 {
		lines = append(lines, "OFFSET "+strconv.Itoa(st.offset))
	}

	if len(bindings) == 0 {
		bindings = nil
	}
	return Operation{Text: strings.Join(lines, sep), Bindings: bindings}, nil
}

// sql renders the binding preamble followed by the statement.
func (st *state) sql() (string, error) {
	sep := st.s.dialect.Separator()
	op, err := st.compile(sep)
	if err != nil {
		return "", err
	}
	names := op.Bindings.Names()
	lines := make([]string, 0, len(names)+1)
	for _, name := range names {
		literal, err := st.s.escape(op.Bindings[name])
		if err != nil {
			return "", fmt.Errorf("mysqlq: escape @%s: %w", name, err)
		}
		lines = append(lines, st.s.dialect.Assign(name, literal))
	}
	lines = append(lines, op.Text)

	st.s.log.WithFields(logrus.Fields{
		"statement": st.kind.String(),
		"table":     st.source.Name(),
		"bindings":  len(names),
		"joins":     len(st.joins),
	}).Debug("Compiled statement")
	return strings.Join(lines, sep), nil
}

// text is the String form of a rendered statement: the SQL, or the error message.
func text(sql string, err error) string {
	if err != nil {
		return err.Error()
	}
	return sql
}
