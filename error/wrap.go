package error

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/next-trace/scg-errhandler/contract"
)

type (
	httpStatuser interface{ HTTPStatus() int }
	statuser     interface{ Status() int }
	statusCoder  interface{ StatusCode() int }
	namer        interface{ Name() string }
	messager     interface{ Message() string }
)

// Wrap attaches a cause to a new Error. If cause is nil, an opaque cause is created.
// It preserves the original cause for errors.Is / errors.As via Unwrap().
func Wrap(cause error, httpStatus int, message string, opts ...Option) *Error {
	if cause == nil {
		cause = errors.New("unknown")
	}

	return build(message, httpStatus, callers(1), append([]Option{WithCause(cause)}, opts...))
}

// Ensure converts any value to *Error and never fails.
//
// Behavior:
//   - *Error (or an error wrapping one) => a normalized copy, so callers may rename it freely
//   - other contract.Error => fields copied, original kept as cause
//   - error => message from Error(); status from HTTPStatus(), Status() or StatusCode()
//     anywhere in the chain, else 500; name from Name() unless it is "Error"
//   - string => message, status 500
//   - value with a Message() method => message, status from the same status methods
//   - string-keyed map => "message", "status" and "statusCode" keys
//   - struct => Message, Status and StatusCode fields
//   - fmt.Stringer => message, status 500
//   - integer => status, placeholder message
//   - nil or anything else => placeholder message, status 500
func Ensure(v any) *Error {
	switch x := v.(type) {
	case nil:
		return build("", 0, callers(1), nil)
	case *Error:
		if x == nil {
			return build("", 0, callers(1), nil)
		}

		return x.normalized()
	case error:
		return fromError(x)
	case string:
		return build(x, 0, callers(1), nil)
	case messager:
		return fromMessager(x)
	}

	if message, status, ok := fieldsOf(v); ok {
		return build(message, status, callers(1), nil)
	}

	if s, ok := v.(fmt.Stringer); ok {
		return build(s.String(), 0, callers(1), nil)
	}

	if status, ok := toStatus(v); ok {
		return build("", status, callers(1), nil)
	}

	return build("", 0, callers(1), nil)
}

func fromError(err error) *Error {
	var e *Error
	if errors.As(err, &e) && e != nil {
		return e.normalized()
	}

	var c contract.Error
	if errors.As(err, &c) {
		return build(c.Message(), c.HTTPStatus(), callers(2), []Option{WithName(c.Name()), WithCause(err)})
	}

	return build(err.Error(), statusOf(err), callers(2), []Option{WithName(nameOf(err)), WithCause(err)})
}

func fromMessager(m messager) *Error {
	status := 0

	if hs, ok := m.(httpStatuser); ok && hs.HTTPStatus() > 0 {
		status = hs.HTTPStatus()
	} else if st, ok := m.(statuser); ok && st.Status() > 0 {
		status = st.Status()
	} else if sc, ok := m.(statusCoder); ok && sc.StatusCode() > 0 {
		status = sc.StatusCode()
	}

	var name string
	if n, ok := m.(namer); ok {
		name = n.Name()
	}

	return build(m.Message(), status, callers(2), []Option{WithName(name)})
}

// fieldsOf reads message and status from a string-keyed map ("message",
// "status", "statusCode") or a struct (Message, Status, StatusCode). Pointers
// are followed. Structs without any of those fields are not matched.
func fieldsOf(v any) (string, int, bool) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return "", 0, false
		}

		rv = rv.Elem()
	}

	var get func(key string) (any, bool)

	keys := [3]string{"message", "status", "statusCode"}

	switch rv.Kind() {
	case reflect.Map:
		keyType := rv.Type().Key()
		if keyType.Kind() != reflect.String {
			return "", 0, false
		}

		get = func(key string) (any, bool) {
			mv := rv.MapIndex(reflect.ValueOf(key).Convert(keyType))
			if !mv.IsValid() {
				return nil, false
			}

			return mv.Interface(), true
		}
	case reflect.Struct:
		keys = [3]string{"Message", "Status", "StatusCode"}
		get = func(key string) (any, bool) {
			sf, ok := rv.Type().FieldByName(key)
			if !ok {
				return nil, false
			}

			f, err := rv.FieldByIndexErr(sf.Index)
			if err != nil || !f.CanInterface() {
				return nil, false
			}

			return f.Interface(), true
		}
	default:
		return "", 0, false
	}

	rawMessage, hasMessage := get(keys[0])
	rawStatus, hasStatus := get(keys[1])
	rawCode, hasCode := get(keys[2])

	if rv.Kind() == reflect.Struct && !hasMessage && !hasStatus && !hasCode {
		return "", 0, false
	}

	message := stringOf(rawMessage)

	status, ok := toStatus(rawStatus)
	if !ok || status <= 0 {
		status, _ = toStatus(rawCode)
	}

	return message, status, true
}

func stringOf(v any) string {
	if v == nil {
		return ""
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return rv.String()
	}

	return ""
}

func statusOf(err error) int {
	var hs httpStatuser
	if errors.As(err, &hs) && hs.HTTPStatus() > 0 {
		return hs.HTTPStatus()
	}

	var s statuser
	if errors.As(err, &s) && s.Status() > 0 {
		return s.Status()
	}

	var sc statusCoder
	if errors.As(err, &sc) && sc.StatusCode() > 0 {
		return sc.StatusCode()
	}

	return DefaultHTTPStatus
}

func nameOf(err error) string {
	var n namer
	if errors.As(err, &n) {
		return n.Name()
	}

	return ""
}

// toStatus accepts any integer or whole float kind, the latter being what
// encoding/json produces for numbers in map[string]any, and decimal strings
// as found in map[string]string.
func toStatus(v any) (int, bool) {
	if v == nil {
		return 0, false
	}

	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := rv.Int()
		if n > math.MaxInt32 || n < math.MinInt32 {
			return 0, false
		}

		return int(n), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n := rv.Uint()
		if n > math.MaxInt32 {
			return 0, false
		}

		return int(n), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
			return 0, false
		}

		return int(f), true
	case reflect.String:
		n, err := strconv.Atoi(strings.TrimSpace(rv.String()))
		if err != nil || n > math.MaxInt32 || n < math.MinInt32 {
			return 0, false
		}

		return n, true
	default:
		return 0, false
	}
}
