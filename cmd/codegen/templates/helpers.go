package templates

import (
	"strconv"
	"strings"
)

// MinCount is the smallest arity SubscriptionsGen emits.
const MinCount = 2

// prefixedStrings returns "p0, p1, ..., p{count-1}".
func prefixedStrings(prefix string, count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(prefix)
		sb.WriteString(strconv.Itoa(i))
	}
	return sb.String()
}
