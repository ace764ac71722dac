package mysqlq_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/ulfurinn/mysqlq"
)

var _ = Describe("Update", func() {
	var q *mysqlq.Session

	BeforeEach(func() {
		q = newSession()
	})

	It("should render assignments that refer to the old value", func() {
		sql, err := q.Update(posts).Set(func(o mysqlq.Scope) mysqlq.Fields {
			return mysqlq.Fields{
				mysqlq.F("deleted", false),
				mysqlq.F("likes", mysqlq.Add(o.Col("likes"), 1)),
			}
		}).Where(func(o mysqlq.Scope) mysqlq.Expression {
			return mysqlq.Equals(o.Col("id"), 100)
		}).SQL()
		Expect(err).NotTo(HaveOccurred())
		Expect(sql).To(Equal(lines(
			"SET @value_2 = FALSE;",
			"SET @value_3 = 1;",
			"SET @value_4 = 100;",
			"UPDATE posts T1",
			"SET deleted = @value_2, likes = T1.likes + @value_3",
			"WHERE (T1.id = @value_4)",
		)))
	})

	It("should render ORDER BY and LIMIT", func() {
		sql, err := q.Update(posts).Set(func(o mysqlq.Scope) mysqlq.Fields {
			return mysqlq.Fields{mysqlq.F("likes", o.Col("likes").Minus(o.Col("id")))}
		}).Limit(1).OrderBy(func(o mysqlq.Scope) []mysqlq.Order {
			return []mysqlq.Order{o.Col("id").Desc()}
		}).SQL()
		Expect(err).NotTo(HaveOccurred())
		Expect(sql).To(Equal(lines(
			"UPDATE posts T1",
			"SET likes = T1.likes - T1.id",
			"ORDER BY T1.id DESC",
			"LIMIT 1",
		)))
	})

	It("should fail without assignments", func() {
		_, err := q.Update(posts).Set(func(mysqlq.Scope) mysqlq.Fields { return nil }).SQL()
		Expect(err).To(MatchError(mysqlq.ErrMissingColumns))
	})
})

var _ = Describe("DeleteFrom", func() {
	It("should render a filtered delete", func() {
		sql, err := newSession().DeleteFrom(posts).Where(func(o mysqlq.Scope) mysqlq.Expression {
			return o.Col("deleted").Eq(true)
		}).Where(func(o mysqlq.Scope) mysqlq.Expression {
			return o.Col("likes").Less(1)
		}).SQL()
		Expect(err).NotTo(HaveOccurred())
		Expect(sql).To(Equal(lines(
			"SET @value_2 = TRUE;",
			"SET @value_3 = 1;",
			"DELETE T1 FROM posts T1",
			"WHERE (T1.deleted = @value_2) AND (T1.likes < @value_3)",
		)))
	})

	It("should render an unfiltered delete", func() {
		Expect(newSession().DeleteFrom(users).SQL()).To(Equal(lines("DELETE T1 FROM users T1")))
	})
})
