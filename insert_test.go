package mysqlq_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/ulfurinn/mysqlq"
)

var _ = Describe("InsertInto", func() {
	var q *mysqlq.Session

	BeforeEach(func() {
		q = newSession()
	})

	It("should render one row per Fields in call order", func() {
		sql, err := q.InsertInto(posts).Values(
			mysqlq.Fields{mysqlq.F("name", "a"), mysqlq.F("likes", 1)},
			mysqlq.Fields{mysqlq.F("likes", 2), mysqlq.F("name", "b")},
		).SQL()
		Expect(err).NotTo(HaveOccurred())
		Expect(sql).To(Equal(lines(
			"SET @value_2 = 'a';",
			"SET @value_3 = 1;",
			"SET @value_4 = 'b';",
			"SET @value_5 = 2;",
			"INSERT INTO posts T1 (T1.name, T1.likes) VALUES (@value_2, @value_3), (@value_4, @value_5)",
		)))
	})

	It("should use DEFAULT for missing fields and ignore extra ones", func() {
		sql, err := q.InsertInto(posts).Values(
			mysqlq.Fields{mysqlq.F("name", "a"), mysqlq.F("likes", nil)},
			mysqlq.Fields{mysqlq.F("name", "b"), mysqlq.F("deleted", true)},
		).SQL()
		Expect(err).NotTo(HaveOccurred())
		Expect(sql).To(Equal(lines(
			"SET @value_2 = 'a';",
			"SET @value_3 = 'b';",
			"INSERT INTO posts T1 (T1.name, T1.likes) VALUES (@value_2, NULL), (@value_3, DEFAULT)",
		)))
	})

	It("should accept expressions as values", func() {
		sql, err := q.InsertInto(posts).Values(mysqlq.Fields{
			mysqlq.F("name", mysqlq.Concat("a", "b")),
			mysqlq.F("likes", mysqlq.Raw(0)),
		}).SQL()
		Expect(err).NotTo(HaveOccurred())
		Expect(sql).To(Equal(lines(
			"SET @value_2 = 'a';",
			"SET @value_3 = 'b';",
			"INSERT INTO posts T1 (T1.name, T1.likes) VALUES (CONCAT(@value_2, @value_3), 0)",
		)))
	})

	It("should render INSERT ... SELECT", func() {
		sub := q.From(comments).Select(func(c mysqlq.Scope) mysqlq.Fields {
			return mysqlq.Fields{mysqlq.F("name", c.Col("body")), mysqlq.F("likes", c.Col("likes"))}
		}).Where(func(c mysqlq.Scope) mysqlq.Expression { return c.Col("likes").Greater(5) })

		sql, err := q.InsertInto(posts).ValuesFrom(sub).SQL()
		Expect(err).NotTo(HaveOccurred())
		Expect(sql).To(Equal(lines(
			"SET @value_2 = 5;",
			"INSERT INTO posts T3 (T3.name, T3.likes)",
			"(SELECT T1.body AS name, T1.likes AS likes FROM comments T1 WHERE (T1.likes > @value_2))",
		)))
	})

	It("should fail without rows", func() {
		_, err := q.InsertInto(posts).Values().SQL()
		Expect(err).To(MatchError(mysqlq.ErrMissingColumns))
	})

	It("should fail with a sub-select from another session", func() {
		sub := newSession().From(comments).Select(mysqlq.Scope.Fields)
		_, err := q.InsertInto(comments).ValuesFrom(sub).SQL()
		Expect(err).To(MatchError(mysqlq.ErrForeignStatement))
	})
})
