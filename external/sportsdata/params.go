package sportsdata

import (
	"fmt"
	"strconv"
)

// Param is one named input of a call. Order in a call is preserved.
type Param struct {
	Name  string
	Value string
}

// P builds a Param, formatting integers and Stringers the way the provider expects.
func P(name string, value any) Param {
	return Param{Name: name, Value: formatValue(value)}
}

func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
