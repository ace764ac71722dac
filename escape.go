package mysqlq

import (
	"encoding/hex"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// Escaper turns a literal value into SQL text that can appear verbatim in a statement.
type Escaper func(value interface{}) (string, error)

// TimeFormat is the layout StandardEscaper uses for time.Time values.
const TimeFormat = "2006-01-02 15:04:05.999999"

var (
	escaperMu  sync.RWMutex
	registered Escaper
)

// RegisterEscaper installs the process-wide escaper used by sessions created without WithEscaper.
// It may be called once; later calls return ErrEscaperRegistered.
func RegisterEscaper(e Escaper) error {
	escaperMu.Lock()
	defer escaperMu.Unlock()
	if registered != nil {
		return ErrEscaperRegistered
	}
	registered = e
	return nil
}

func registeredEscaper() Escaper {
	escaperMu.RLock()
	defer escaperMu.RUnlock()
	return registered
}

// StandardEscaper quotes strings with standard SQL quote doubling, renders numbers and booleans bare,
// times as quoted TimeFormat strings, byte slices as hex literals and nil as NULL.
func StandardEscaper(value interface{}) (string, error) {
	switch v := value.(type) {
	case nil:
		return "NULL", nil
	case string:
		return quoteString(v), nil
	case []byte:
		return "X'" + hex.EncodeToString(v) + "'", nil
	case bool:
		if v {
			return "TRUE", nil
		}
		return "FALSE", nil
	case time.Time:
		return quoteString(v.Format(TimeFormat)), nil
	case decimal.Decimal:
		return v.String(), nil
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String:
		return quoteString(rv.String()), nil
	case reflect.Bool:
		return StandardEscaper(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 32), nil
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64), nil
	case reflect.Ptr:
		if rv.IsNil() {
			return "NULL", nil
		}
		return StandardEscaper(rv.Elem().Interface())
	}
	return "", fmt.Errorf("%w: %v [%v]", ErrUnsupportedLiteral, value, reflect.TypeOf(value))
}

// quoteString doubles quotes and backslashes. pq prefixes literals containing backslashes with E;
// MySQL reads backslash escapes in plain literals, so the marker is dropped.
func quoteString(s string) string {
	return strings.TrimPrefix(pq.QuoteLiteral(s), " E")
}
