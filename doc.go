/*
Package mysqlq builds SQL statements from typed method chains and renders them as parameterized MySQL text.

mysqlq never talks to a database. It produces a statement preceded by one SET line per literal, and the caller runs both on its own connection.

Examples in this document assume the package is dot-imported for brevity.

# Getting started

Tables are declared once:

	posts := NewTable("posts", "id", "name", "likes", "deleted")

A *Session is needed to build statements. It owns the allocator that names table aliases (T1, T2, ...) and bind variables (@value_3, ...). Statements that embed each other must come from the same session:

	q := New(WithEscaper(StandardEscaper))

The escaper turns literal values into SQL text. It can also be registered once for the whole process with RegisterEscaper. Rendering a literal without one fails with ErrUnregisteredEscaper.

# Expressions and parameterization

Columns are obtained from a Scope inside callbacks. Operator functions (Equals, Add, And, In, Between, Coalesce, Count, ...) accept any mix of expressions and plain values. Expressions are embedded as they are; every other value becomes a bind variable:

	Equals(o.Col("id"), 100) // T1.id = @value_2, with SET @value_2 = 100;

Raw inlines an escaped value instead, and Expr accepts a template with ? slots for anything the builders do not cover.

# SELECT

	q.From(posts).
		InnerJoin(users, Key("author_id"), Key("id"), Nest("author")).
		Select(func(o Scope) Fields {
			return Fields{F("title", o.Col("name")), F("author", o.Col("author.email"))}
		}).
		Where(func(o Scope) Expression { return o.Col("likes").Greater(10) }).
		OrderBy(func(o Scope) []Order { return []Order{o.Col("likes").Desc()} }).
		Limit(20)

From and every join return a *Joinable; Select returns a *Selected. Where, GroupBy, Having, OrderBy, Limit and Offset return the same *Selected and can be called in any order: the clauses are always rendered in SQL order. A *Selected is also an expression, usable with In, Exists, Any and All.

# INSERT, UPDATE, DELETE

	q.InsertInto(posts).Values(Fields{F("name", "a"), F("likes", 0)})
	q.Update(posts).Set(func(o Scope) Fields { return Fields{F("likes", o.Col("likes").Plus(1))} })
	q.DeleteFrom(posts).Where(func(o Scope) Expression { return o.Col("deleted").Eq(true) })

# Output

SQL returns the preamble and the statement, CRLF-joined. Rendering does not change the statement and can be repeated.
*/
package mysqlq
