package util

import "strings"

// EscapeLike 转义 LIKE 通配符，使检索词按字面子串匹配
func EscapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
