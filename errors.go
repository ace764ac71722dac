package mysqlq

import "errors"

var (
	// ErrUnregisteredEscaper is returned when a literal has to be rendered and neither the session nor the process has an escaper.
	ErrUnregisteredEscaper = errors.New("mysqlq: no escaper registered")
	// ErrEscaperRegistered is returned by RegisterEscaper on the second call.
	ErrEscaperRegistered = errors.New("mysqlq: escaper already registered")
	// ErrMissingColumns is returned when a statement is compiled before select, values or set established its columns.
	ErrMissingColumns     = errors.New("mysqlq: statement has no columns")
	ErrUnsupportedLiteral = errors.New("mysqlq: unsupported literal type")
	ErrUnknownColumn      = errors.New("mysqlq: unknown column")
	// ErrForeignStatement is returned when a subquery built by one session is embedded into a statement of another.
	ErrForeignStatement = errors.New("mysqlq: statement belongs to another session")
)
