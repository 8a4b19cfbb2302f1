package util

import (
	"fmt"
	"strings"
)

// DumpObjects renders items with their default format, separated by ", ".
// An empty or nil slice yields "".
func DumpObjects[T any](items []T) string {
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, item)
	}
	return b.String()
}
