package mysqlq

import "reflect"

func binary(a interface{}, op string, b interface{}) *Fragment {
	return &Fragment{parts: []string{"", " " + op + " ", ""}, args: []interface{}{a, b}, compound: true}
}

func postfix(a interface{}, op string) *Fragment {
	return &Fragment{parts: []string{"", " " + op}, args: []interface{}{a}, compound: true}
}

func prefix(op string, a interface{}) *Fragment {
	return &Fragment{parts: []string{op + " ", ""}, args: []interface{}{a}}
}

// joined lays out parts for open a1 sep a2 ... end.
func joined(open, sep, end string, args []interface{}) []string {
	if len(args) == 0 {
		return []string{open + end}
	}
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, open)
	for i := 1; i < len(args); i++ {
		parts = append(parts, sep)
	}
	return append(parts, end)
}

func Equals(a, b interface{}) *Fragment         { return binary(a, "=", b) }
func NotEquals(a, b interface{}) *Fragment      { return binary(a, "<>", b) }
func LessThan(a, b interface{}) *Fragment       { return binary(a, "<", b) }
func GreaterThan(a, b interface{}) *Fragment    { return binary(a, ">", b) }
func LessOrEqual(a, b interface{}) *Fragment    { return binary(a, "<=", b) }
func GreaterOrEqual(a, b interface{}) *Fragment { return binary(a, ">=", b) }

func Add(a, b interface{}) *Fragment      { return binary(a, "+", b) }
func Subtract(a, b interface{}) *Fragment { return binary(a, "-", b) }
func Multiply(a, b interface{}) *Fragment { return binary(a, "*", b) }
func Divide(a, b interface{}) *Fragment   { return binary(a, "/", b) }
func Modulo(a, b interface{}) *Fragment   { return binary(a, "%", b) }

func BitAnd(a, b interface{}) *Fragment { return binary(a, "&", b) }
func BitOr(a, b interface{}) *Fragment  { return binary(a, "|", b) }
func BitXor(a, b interface{}) *Fragment { return binary(a, "^", b) }

func Like(a, pattern interface{}) *Fragment    { return binary(a, "LIKE", pattern) }
func NotLike(a, pattern interface{}) *Fragment { return binary(a, "NOT LIKE", pattern) }

func IsNull(a interface{}) *Fragment    { return postfix(a, "IS NULL") }
func IsNotNull(a interface{}) *Fragment { return postfix(a, "IS NOT NULL") }

// And joins its operands with AND, each one parenthesized.
func And(exprs ...interface{}) *Fragment { return logical("AND", exprs) }

// Or joins its operands with OR, each one parenthesized.
func Or(exprs ...interface{}) *Fragment { return logical("OR", exprs) }

func logical(op string, exprs []interface{}) *Fragment {
	if len(exprs) == 0 {
		return &Fragment{parts: []string{"TRUE"}}
	}
	return &Fragment{parts: joined("(", ") "+op+" (", ")", exprs), args: exprs, compound: true, enclosed: true}
}

func Not(a interface{}) *Fragment {
	return &Fragment{parts: []string{"NOT (", ")"}, args: []interface{}{a}, compound: true, enclosed: true}
}

// Between renders a BETWEEN lo AND hi.
func Between(a, lo, hi interface{}) *Fragment {
	return &Fragment{parts: []string{"", " BETWEEN ", " AND ", ""}, args: []interface{}{a, lo, hi}, compound: true}
}

// In renders a IN (v1, v2, ...). A single *Selected value renders a IN (SELECT ...),
// and a single slice is expanded into one operand per element. An empty list is rendered as is.
func In(a interface{}, values ...interface{}) *Fragment { return membership(a, "IN", values) }

func NotIn(a interface{}, values ...interface{}) *Fragment { return membership(a, "NOT IN", values) }

func membership(a interface{}, op string, values []interface{}) *Fragment {
	if len(values) == 1 {
		if sub, ok := values[0].(subquery); ok {
			return binary(a, op, sub)
		}
		if list, ok := toInterfaceSlice(values[0]); ok {
			values = list
		}
	}
	args := append([]interface{}{a}, values...)
	parts := append([]string{""}, joined(" "+op+" (", ", ", ")", values)...)
	return &Fragment{parts: parts, args: args, compound: true}
}

// toInterfaceSlice spreads a slice value into its elements. []byte is a single value.
func toInterfaceSlice(v interface{}) ([]interface{}, bool) {
	if _, ok := v.([]byte); ok {
		return nil, false
	}
	val := reflect.ValueOf(v)
	if !val.IsValid() || val.Kind() != reflect.Slice {
		return nil, false
	}
	result := make([]interface{}, val.Len())
	for i := range result {
		result[i] = val.Index(i).Interface()
	}
	return result, true
}

// Func renders a function call: name(arg1, arg2, ...).
func Func(name string, args ...interface{}) *Fragment {
	return &Fragment{parts: joined(name+"(", ", ", ")", args), args: args, enclosed: true}
}

func Concat(args ...interface{}) *Fragment   { return Func("CONCAT", args...) }
func Coalesce(args ...interface{}) *Fragment { return Func("COALESCE", args...) }
func IfNull(a, b interface{}) *Fragment      { return Func("IFNULL", a, b) }

// Exists renders EXISTS (SELECT ...).
func Exists(sub *Selected) *Fragment { return prefix("EXISTS", sub) }

func NotExists(sub *Selected) *Fragment { return prefix("NOT EXISTS", sub) }

// Any is the right-hand side of a quantified comparison: GreaterThan(col, Any(sub)).
func Any(sub *Selected) *Fragment { return prefix("ANY", sub) }

// All is the right-hand side of a quantified comparison: GreaterThan(col, All(sub)).
func All(sub *Selected) *Fragment { return prefix("ALL", sub) }

func aggregate(name string, args []interface{}) *Aggregate {
	return &Aggregate{name: name, args: args}
}

// Count renders COUNT(expr), or COUNT(*) without arguments.
func Count(args ...interface{}) *Aggregate { return aggregate("COUNT", args) }

func CountDistinct(args ...interface{}) *Aggregate { return aggregate("COUNT", args).Distinct() }

func Max(a interface{}) *Aggregate { return aggregate("MAX", []interface{}{a}) }
func Min(a interface{}) *Aggregate { return aggregate("MIN", []interface{}{a}) }
func Avg(a interface{}) *Aggregate { return aggregate("AVG", []interface{}{a}) }
func Sum(a interface{}) *Aggregate { return aggregate("SUM", []interface{}{a}) }

func GroupConcat(args ...interface{}) *Aggregate { return aggregate("GROUP_CONCAT", args) }

// Direction of an ORDER BY entry.
type Direction string

const (
	Ascending  Direction = "ASC"
	Descending Direction = "DESC"
)

// Order is one ORDER BY entry. An empty Direction means ascending.
type Order struct {
	On        interface{}
	Direction Direction
}

func Asc(on interface{}) Order  { return Order{On: on, Direction: Ascending} }
func Desc(on interface{}) Order { return Order{On: on, Direction: Descending} }
