// File: lixenwraith/confighelper/type.go
package confighelper

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ValueOf converts a Go value into the JSON node SetJSONValue writes.
//
// Built-in integer types become JSON numbers and bool becomes a JSON boolean.
// Every other value is written as a JSON string: floats through
// strconv.FormatFloat (3.14 stays "3.14"), fmt.Stringer through String(),
// anything else through fmt.Sprint. A *Value is used as is and nil becomes null.
func ValueOf(value any) *Value {
	switch v := value.(type) {
	case nil:
		return Null()
	case *Value:
		if v == nil {
			return Null()
		}
		return v
	case bool:
		return Bool(v)
	case int:
		return intNumber(int64(v))
	case int8:
		return intNumber(int64(v))
	case int16:
		return intNumber(int64(v))
	case int32:
		return intNumber(int64(v))
	case int64:
		return intNumber(v)
	case uint:
		return uintNumber(uint64(v))
	case uint8:
		return uintNumber(uint64(v))
	case uint16:
		return uintNumber(uint64(v))
	case uint32:
		return uintNumber(uint64(v))
	case uint64:
		return uintNumber(v)
	case string:
		return String(v)
	case float32:
		return String(strconv.FormatFloat(float64(v), 'f', -1, 32))
	case float64:
		return String(strconv.FormatFloat(v, 'f', -1, 64))
	case fmt.Stringer:
		return String(v.String())
	case error:
		return String(v.Error())
	default:
		return String(fmt.Sprint(value))
	}
}

func intNumber(i int64) *Value {
	return Number(json.Number(strconv.FormatInt(i, 10)))
}

func uintNumber(u uint64) *Value {
	return Number(json.Number(strconv.FormatUint(u, 10)))
}

// ParseScalar infers the type of a command-line value: int64, bool or string.
// Only canonical integer text ("42", "-3") becomes an int64 and only the exact
// words "true" and "false" become booleans. Anything else, "007", "+5", "1.10"
// and "True" included, is returned unchanged so the written text matches the input.
func ParseScalar(s string) any {
	if v, err := strconv.ParseInt(s, 10, 64); err == nil && strconv.FormatInt(v, 10) == s {
		return v
	}

	switch s {
	case "true":
		return true
	case "false":
		return false
	}

	// Remove quotes if present
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}

	return s
}
