package mysqlq

import (
	"fmt"
	"sort"
	"strings"
)

// Kind tags the variants of Expression. The binder switches on it.
type Kind int

const (
	ColumnRefKind   Kind = iota // *Column
	FragmentKind                // *Fragment
	LiteralKind                 // Literal
	AggregateKind               // *Aggregate
	ConditionalKind             // *CaseExpr
	SubqueryKind                // *Selected
)

func (k Kind) String() string {
	switch k {
	case ColumnRefKind:
		return "column"
	case FragmentKind:
		return "fragment"
	case LiteralKind:
		return "literal"
	case AggregateKind:
		return "aggregate"
	case ConditionalKind:
		return "case"
	case SubqueryKind:
		return "subquery"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Expression is anything that renders to SQL text: column references, operator fragments,
// literals, aggregate calls, CASE expressions and subqueries.
//
// Functions that build expressions take interface{} operands. An operand that is an Expression is
// embedded structurally; nil renders NULL; any other value becomes a bind variable.
type Expression interface {
	Kind() Kind
}

// Bindings maps bind names to the literal values assigned to them in the statement preamble.
type Bindings map[string]interface{}

// Names returns the bind names ordered by allocation number.
func (b Bindings) Names() []string {
	names := make([]string, 0, len(b))
	for name := range b {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) < len(names[j])
		}
		return names[i] < names[j]
	})
	return names
}

func (b Bindings) merge(other Bindings) Bindings {
	if len(other) == 0 {
		return b
	}
	if b == nil {
		b = make(Bindings, len(other))
	}
	for k, v := range other {
		b[k] = v
	}
	return b
}

func (b Bindings) clone() Bindings {
	return Bindings(nil).merge(b)
}

// Operation is a bound expression: its final text plus every binding it depends on.
// Operations are produced when a clause is recorded and never change afterwards.
type Operation struct {
	Text     string
	Bindings Bindings
	compound bool
}

// Literal is a scalar value. By default it is rendered as a bind variable;
// Raw literals are escaped and inlined instead.
type Literal struct {
	Value  interface{}
	inline bool
}

func (Literal) Kind() Kind { return LiteralKind }

// Lit wraps a value so it can be used where an Expression is required.
func Lit(value interface{}) Literal { return Literal{Value: value} }

// Raw is a passthrough literal: the escaped value is written inline instead of through a bind variable.
func Raw(value interface{}) Literal { return Literal{Value: value, inline: true} }

// Fragment is a piece of SQL text with operand slots. Operator and function builders return Fragments.
type Fragment struct {
	parts    []string
	args     []interface{}
	compound bool // needs parentheses when used as an operand of another operator
	enclosed bool // the text already delimits its operands
}

func (*Fragment) Kind() Kind { return FragmentKind }

// Expr builds a fragment from a template where each ? is replaced by the matching argument.
// It panics if the number of ? does not match the number of arguments.
func Expr(template string, args ...interface{}) *Fragment {
	parts := strings.Split(template, "?")
	if len(parts)-1 != len(args) {
		panic(fmt.Errorf("mysqlq: template %q has %d slots, got %d arguments", template, len(parts)-1, len(args)))
	}
	return &Fragment{parts: parts, args: args, compound: true}
}

func (f *Fragment) And(other interface{}) *Fragment { return And(f, other) }
func (f *Fragment) Or(other interface{}) *Fragment  { return Or(f, other) }
func (f *Fragment) Not() *Fragment                  { return Not(f) }

// Aggregate is an aggregate function call such as COUNT or GROUP_CONCAT.
type Aggregate struct {
	name      string
	args      []interface{}
	distinct  bool
	separator *Literal
}

func (*Aggregate) Kind() Kind { return AggregateKind }

// Distinct returns a copy of the call that aggregates distinct values only.
func (a *Aggregate) Distinct() *Aggregate {
	cp := *a
	cp.distinct = true
	return &cp
}

// Separator returns a copy of a GROUP_CONCAT call with an explicit separator.
func (a *Aggregate) Separator(sep string) *Aggregate {
	cp := *a
	lit := Raw(sep)
	cp.separator = &lit
	return &cp
}

type when struct {
	cond, then interface{}
}

// CaseExpr is a searched (Case) or simple (CaseOf) CASE expression.
type CaseExpr struct {
	subject interface{}
	simple  bool
	whens   []when
	els     interface{}
	hasElse bool
}

func (*CaseExpr) Kind() Kind { return ConditionalKind }

// Case starts a searched CASE: CASE WHEN cond THEN value ... END.
func Case() *CaseExpr { return &CaseExpr{} }

// CaseOf starts a simple CASE comparing subject against each WHEN value.
func CaseOf(subject interface{}) *CaseExpr {
	return &CaseExpr{subject: subject, simple: true}
}

func (c *CaseExpr) When(cond, then interface{}) *CaseExpr {
	c.whens = append(c.whens, when{cond: cond, then: then})
	return c
}

func (c *CaseExpr) Else(value interface{}) *CaseExpr {
	c.els = value
	c.hasElse = true
	return c
}

// subquery is implemented by statements that can be embedded into another statement.
type subquery interface {
	Expression
	session() *Session
	compiled() (Operation, error)
}
