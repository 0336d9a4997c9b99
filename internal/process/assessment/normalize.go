package assessment

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// NormalizeValue converts a raw cell into a trimmed string. Nil becomes "".
// Case is preserved; matching is case-insensitive downstream.
func NormalizeValue(raw any) string {
	return strings.TrimSpace(stringify(raw))
}

func stringify(raw any) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return v
	case *string:
		if v == nil {
			return ""
		}

		return *v
	case json.Number:
		return v.String()
	case int:
		return strconv.Itoa(v)
	case int8, int16, int32, int64:
		return fmt.Sprintf("%d", v)
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case bool:
		return strconv.FormatBool(v)
	case []byte:
		return string(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
