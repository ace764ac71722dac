package mysqlq_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/ulfurinn/mysqlq"
)

var _ = Describe("Config", func() {
	It("should decode HCL and fill in defaults", func() {
		cfg, err := mysqlq.ParseConfig(`
alias_ceiling = 100
alias_prefix = "A"
`)
		Expect(err).NotTo(HaveOccurred())
		Expect(*cfg).To(Equal(mysqlq.Config{AliasCeiling: 100, AliasPrefix: "A", BindPrefix: mysqlq.DefaultBindPrefix}))
	})

	It("should default everything for an empty document", func() {
		cfg, err := mysqlq.ParseConfig("")
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.AliasCeiling).To(Equal(mysqlq.DefaultCeiling))
		Expect(cfg.AliasPrefix).To(Equal(mysqlq.DefaultAliasPrefix))
	})

	It("should reject invalid HCL", func() {
		_, err := mysqlq.ParseConfig(`alias_prefix = `)
		Expect(err).To(HaveOccurred())
	})

	It("should drive name generation", func() {
		cfg, err := mysqlq.ParseConfig(`
alias_prefix = "t"
bind_prefix = "p"
`)
		Expect(err).NotTo(HaveOccurred())
		sql, err := newSession(mysqlq.WithConfig(cfg)).From(posts).Select(func(o mysqlq.Scope) mysqlq.Fields {
			return mysqlq.Fields{mysqlq.F("id", o.Col("id"))}
		}).Where(func(o mysqlq.Scope) mysqlq.Expression { return o.Col("id").Eq(1) }).SQL()
		Expect(err).NotTo(HaveOccurred())
		Expect(sql).To(Equal(lines("SET @p2 = 1;", "SELECT t1.id AS id FROM posts t1", "WHERE (t1.id = @p2)")))
	})
})

var _ = Describe("Session logging", func() {
	var (
		logger *logrus.Logger
		hook   *test.Hook
	)

	BeforeEach(func() {
		logger, hook = test.NewNullLogger()
		logger.SetLevel(logrus.DebugLevel)
	})

	It("should log compiled statements", func() {
		_, err := newSession(mysqlq.WithLogger(logger)).DeleteFrom(posts).Where(func(o mysqlq.Scope) mysqlq.Expression {
			return o.Col("id").Eq(1)
		}).SQL()
		Expect(err).NotTo(HaveOccurred())
		entry := hook.LastEntry()
		Expect(entry).NotTo(BeNil())
		Expect(entry.Level).To(Equal(logrus.DebugLevel))
		Expect(entry.Message).To(Equal("Compiled statement"))
		Expect(entry.Data).To(HaveKeyWithValue("statement", "DELETE"))
		Expect(entry.Data).To(HaveKeyWithValue("bindings", 1))
	})

	It("should not warn when the ceiling itself is handed out", func() {
		q := newSession(mysqlq.WithLogger(logger), mysqlq.WithConfig(&mysqlq.Config{AliasCeiling: 3}))
		_, err := q.From(posts).Select(func(o mysqlq.Scope) mysqlq.Fields {
			return mysqlq.Fields{mysqlq.F("id", o.Col("id"))}
		}).Where(func(o mysqlq.Scope) mysqlq.Expression { return o.Col("id").Eq(1) }).
			Where(func(o mysqlq.Scope) mysqlq.Expression { return o.Col("likes").Eq(2) }).SQL()
		Expect(err).NotTo(HaveOccurred())
		for _, entry := range hook.AllEntries() {
			Expect(entry.Level).NotTo(Equal(logrus.WarnLevel))
		}
	})

	It("should warn when the allocator wraps", func() {
		q := newSession(mysqlq.WithLogger(logger), mysqlq.WithConfig(&mysqlq.Config{AliasCeiling: 2}))
		sql, err := q.From(posts).Select(func(o mysqlq.Scope) mysqlq.Fields {
			return mysqlq.Fields{mysqlq.F("id", o.Col("id"))}
		}).Where(func(o mysqlq.Scope) mysqlq.Expression { return o.Col("id").Eq(1) }).
			Where(func(o mysqlq.Scope) mysqlq.Expression { return o.Col("likes").Eq(2) }).SQL()
		Expect(err).NotTo(HaveOccurred())
		Expect(hook.AllEntries()[0].Level).To(Equal(logrus.WarnLevel))
		Expect(sql).To(ContainSubstring("WHERE (T1.id = @value_2) AND (T1.likes = @value_1)"))
	})
})
