package mysqlq

import (
	"io"
	"strconv"

	"github.com/sirupsen/logrus"
)

// Session owns the name allocator for a group of statements.
// Statements that embed each other (subqueries, INSERT ... SELECT) must come from the same Session;
// independent Sessions can be used from different goroutines without coordination.
// A Session itself is not safe for concurrent use.
type Session struct {
	dialect Dialect
	escaper Escaper
	alloc   *Allocator
	cfg     Config
	log     logrus.FieldLogger
}

type Option func(*Session)

// WithEscaper sets the escaper for this session, taking precedence over RegisterEscaper.
func WithEscaper(e Escaper) Option {
	return func(s *Session) { s.escaper = e }
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Session) { s.log = log }
}

func WithConfig(cfg *Config) Option {
	return func(s *Session) {
		if cfg != nil {
			s.cfg = *cfg
		}
	}
}

// New returns a session with a fresh allocator.
func New(opts ...Option) *Session {
	discard := logrus.New()
	discard.Out = io.Discard
	s := &Session{dialect: MySQLDialect{}, log: discard}
	for _, opt := range opts {
		opt(s)
	}
	s.cfg.setDefaults()
	s.alloc = NewAllocator(s.cfg.AliasCeiling)
	return s
}

func (s *Session) allocate() int {
	wraps := s.alloc.Wraps()
	n := s.alloc.Allocate()
	if s.alloc.Wraps() != wraps {
		s.log.WithField("ceiling", s.cfg.AliasCeiling).Warn("Name allocator wrapped; aliases and bind names may repeat")
	}
	return n
}

func (s *Session) nextAlias() string {
	return s.cfg.AliasPrefix + strconv.Itoa(s.allocate())
}

func (s *Session) nextBind() string {
	return s.cfg.BindPrefix + strconv.Itoa(s.allocate())
}

func (s *Session) escape(value interface{}) (string, error) {
	e := s.escaper
	if e == nil {
		e = registeredEscaper()
	}
	if e == nil {
		return "", ErrUnregisteredEscaper
	}
	return e(value)
}
