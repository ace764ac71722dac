package mysqlq_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/ulfurinn/mysqlq"
)

var _ = Describe("Allocator", func() {
	It("should start at 1 and count up", func() {
		a := mysqlq.NewAllocator(0)
		Expect(a.Allocate()).To(Equal(1))
		Expect(a.Allocate()).To(Equal(2))
		Expect(a.Allocate()).To(Equal(3))
		Expect(a.Wraps()).To(Equal(0))
	})

	It("should wrap to 1 past the ceiling", func() {
		a := mysqlq.NewAllocator(3)
		got := []int{a.Allocate(), a.Allocate(), a.Allocate()}
		Expect(got).To(Equal([]int{1, 2, 3}))
		Expect(a.Wraps()).To(Equal(0))
		Expect(a.Allocate()).To(Equal(1))
		Expect(a.Wraps()).To(Equal(1))
	})

	It("should be usable as a zero value", func() {
		var a mysqlq.Allocator
		Expect(a.Allocate()).To(Equal(1))
		Expect(a.Allocate()).To(Equal(2))
	})

	It("should share one sequence between aliases and bind names", func() {
		sql, err := newSession().From(posts).
			InnerJoin(users, mysqlq.Key("author_id"), mysqlq.Key("id"), mysqlq.Nest("author")).
			Select(func(o mysqlq.Scope) mysqlq.Fields {
				return mysqlq.Fields{mysqlq.F("id", o.Col("id"))}
			}).
			Where(func(o mysqlq.Scope) mysqlq.Expression { return o.Col("author.email").Eq("x") }).
			SQL()
		Expect(err).NotTo(HaveOccurred())
		Expect(sql).To(ContainSubstring("FROM posts T1"))
		Expect(sql).To(ContainSubstring("users T2"))
		Expect(sql).To(ContainSubstring("SET @value_3 = 'x';"))
	})

	It("should keep sessions independent", func() {
		a, b := newSession(), newSession()
		sa := a.From(posts).Select(func(o mysqlq.Scope) mysqlq.Fields { return o.Fields()[:1] })
		sb := b.From(posts).Select(func(o mysqlq.Scope) mysqlq.Fields { return o.Fields()[:1] })
		Expect(sa.SQL()).To(Equal(lines("SELECT T1.id AS id FROM posts T1")))
		Expect(sb.SQL()).To(Equal(lines("SELECT T1.id AS id FROM posts T1")))
	})
})
