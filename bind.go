package mysqlq

import (
	"fmt"
	"reflect"
	"strings"
)

// binder turns expressions into Operations. It allocates bind names from the session
// and collects every binding the expression depends on.
type binder struct {
	s        *Session
	bindings Bindings
}

// bind renders v once. Names are allocated here, so rendering a statement later is pure.
func (s *Session) bind(v interface{}) (Operation, error) {
	b := &binder{s: s, bindings: Bindings{}}
	text, compound, err := b.operand(v)
	if err != nil {
		return Operation{}, err
	}
	if len(b.bindings) == 0 {
		b.bindings = nil
	}
	return Operation{Text: text, Bindings: b.bindings, compound: compound}, nil
}

func (b *binder) operand(v interface{}) (text string, compound bool, err error) {
	switch v := v.(type) {
	case nil:
		return "NULL", false, nil
	case Expression:
		return b.expr(v)
	}
	return b.literal(Literal{Value: v})
}

// nested renders an operand of an operator, parenthesizing compound operands.
func (b *binder) nested(v interface{}) (string, error) {
	text, compound, err := b.operand(v)
	if err != nil {
		return "", err
	}
	if compound {
		text = "(" + text + ")"
	}
	return text, nil
}

func (b *binder) expr(e Expression) (string, bool, error) {
	switch e.Kind() {
	case ColumnRefKind:
		c := e.(*Column)
		b.bindings.merge(c.bindings)
		return c.path, c.compound, nil
	case LiteralKind:
		return b.literal(e.(Literal))
	case FragmentKind:
		return b.fragment(e.(*Fragment))
	case AggregateKind:
		return b.aggregate(e.(*Aggregate))
	case ConditionalKind:
		return b.conditional(e.(*CaseExpr))
	case SubqueryKind:
		return b.subquery(e.(subquery))
	}
	return "", false, fmt.Errorf("mysqlq: cannot bind %v [%v]", e, reflect.TypeOf(e))
}

func (b *binder) literal(l Literal) (string, bool, error) {
	if l.Value == nil {
		return "NULL", false, nil
	}
	if l.inline {
		text, err := b.s.escape(l.Value)
		return text, false, err
	}
	name := b.s.nextBind()
	b.bindings[name] = l.Value
	return b.s.dialect.BindRef(name), false, nil
}

func (b *binder) fragment(f *Fragment) (string, bool, error) {
	var sb strings.Builder
	for i, part := range f.parts {
		sb.WriteString(part)
		if i >= len(f.args) {
			continue
		}
		var text string
		var err error
		if f.enclosed {
			text, _, err = b.operand(f.args[i])
		} else {
			text, err = b.nested(f.args[i])
		}
		if err != nil {
			return "", false, err
		}
		sb.WriteString(text)
	}
	return sb.String(), f.compound, nil
}

func (b *binder) aggregate(a *Aggregate) (string, bool, error) {
	var sb strings.Builder
	sb.WriteString(a.name)
	sb.WriteString("(")
	if a.distinct {
		sb.WriteString("DISTINCT ")
	}
	if len(a.args) == 0 {
		sb.WriteString("*")
	}
	for i, arg := range a.args {
		if i > 0 {
			sb.WriteString(", ")
		}
		text, _, err := b.operand(arg)
		if err != nil {
			return "", false, err
		}
		sb.WriteString(text)
	}
	if a.separator != nil {
		sep, _, err := b.literal(*a.separator)
		if err != nil {
			return "", false, err
		}
		sb.WriteString(" SEPARATOR ")
		sb.WriteString(sep)
	}
	sb.WriteString(")")
	return sb.String(), false, nil
}

func (b *binder) conditional(c *CaseExpr) (string, bool, error) {
	var sb strings.Builder
	sb.WriteString("CASE")
	if c.simple {
		subject, err := b.nested(c.subject)
		if err != nil {
			return "", false, err
		}
		sb.WriteString(" " + subject)
	}
	for _, w := range c.whens {
		cond, _, err := b.operand(w.cond)
		if err != nil {
			return "", false, err
		}
		then, _, err := b.operand(w.then)
		if err != nil {
			return "", false, err
		}
		sb.WriteString(" WHEN " + cond + " THEN " + then)
	}
	if c.hasElse {
		els, _, err := b.operand(c.els)
		if err != nil {
			return "", false, err
		}
		sb.WriteString(" ELSE " + els)
	}
	sb.WriteString(" END")
	return sb.String(), false, nil
}

func (b *binder) subquery(sq subquery) (string, bool, error) {
	if sq.session() != b.s {
		return "", false, ErrForeignStatement
	}
	op, err := sq.compiled()
	if err != nil {
		return "", false, err
	}
	b.bindings.merge(op.Bindings)
	return "(" + op.Text + ")", false, nil
}
