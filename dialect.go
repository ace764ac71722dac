package mysqlq

// Dialect decides how bind variables are referenced and assigned.
// MySQLDialect is the only implementation.
type Dialect interface {
	BindRef(name string) string         // reference to a bind variable at its use site
	Assign(name, literal string) string // preamble line assigning an escaped literal to a bind variable
	Separator() string                  // joins preamble lines and statement clauses
}

// MySQLDialect uses session user variables: SET @name = literal; followed by @name references.
type MySQLDialect struct{}

func (MySQLDialect) BindRef(name string) string { return "@" + name }

func (MySQLDialect) Assign(name, literal string) string {
	return "SET @" + name + " = " + literal + ";"
}

func (MySQLDialect) Separator() string { return "\r\n" }
