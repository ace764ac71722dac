package mysqlq

// Column is a reference to a table column or to a computed expression that has been bound
// into a statement (a projected column, for instance).
//
// Alias returns "" until the column is explicitly aliased with As or AsAlias; projections
// fall back to the field name in that case.
type Column struct {
	path     string
	name     string
	alias    string
	compound bool
	bindings Bindings
}

// Ident returns a column reference with the given path, used verbatim.
func Ident(path string) *Column {
	return &Column{path: path, name: path}
}

func newColumn(alias, name string) *Column {
	return &Column{path: alias + "." + name, name: name}
}

func columnFromOperation(name, alias string, op Operation) *Column {
	return &Column{path: op.Text, name: name, alias: alias, compound: op.compound, bindings: op.Bindings}
}

func (*Column) Kind() Kind { return ColumnRefKind }

func (c *Column) Path() string { return c.path }

// Name is the declared column name, or the projection key for projected columns.
func (c *Column) Name() string { return c.name }

func (c *Column) Alias() string { return c.alias }

// As returns a copy of the column carrying an explicit output name.
func (c *Column) As(alias string) *Column {
	cp := *c
	cp.alias = alias
	return &cp
}

// AsAlias marks the column as explicitly named. Without an existing alias the column name is used.
func (c *Column) AsAlias() *Column {
	if c.alias != "" {
		return c
	}
	return c.As(c.name)
}

func (c *Column) Bindings() Bindings { return c.bindings.clone() }

func (c *Column) Eq(other interface{}) *Fragment        { return Equals(c, other) }
func (c *Column) NotEq(other interface{}) *Fragment     { return NotEquals(c, other) }
func (c *Column) Less(other interface{}) *Fragment      { return LessThan(c, other) }
func (c *Column) LessEq(other interface{}) *Fragment    { return LessOrEqual(c, other) }
func (c *Column) Greater(other interface{}) *Fragment   { return GreaterThan(c, other) }
func (c *Column) GreaterEq(other interface{}) *Fragment { return GreaterOrEqual(c, other) }
func (c *Column) Plus(other interface{}) *Fragment      { return Add(c, other) }
func (c *Column) Minus(other interface{}) *Fragment     { return Subtract(c, other) }
func (c *Column) Mult(other interface{}) *Fragment      { return Multiply(c, other) }
func (c *Column) Div(other interface{}) *Fragment       { return Divide(c, other) }
func (c *Column) Mod(other interface{}) *Fragment       { return Modulo(c, other) }
func (c *Column) Like(pattern interface{}) *Fragment    { return Like(c, pattern) }
func (c *Column) In(values ...interface{}) *Fragment    { return In(c, values...) }
func (c *Column) IsNull() *Fragment                     { return IsNull(c) }
func (c *Column) IsNotNull() *Fragment                  { return IsNotNull(c) }
func (c *Column) Asc() Order                            { return Asc(c) }
func (c *Column) Desc() Order                           { return Desc(c) }
