package model

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrMalformedIdentifier 标识符匹配模式但无法解析出编号，属于数据完整性错误
var ErrMalformedIdentifier = errors.New("malformed composite identifier")

// IDFamily 描述一类复合标识符：所在表/列、数据库侧 REGEXP 模式以及格式
type IDFamily struct {
	Name    string
	Table   string
	Column  string
	Pattern string
	Prefix  string

	re *regexp.Regexp
}

var (
	ContextFamily = newIDFamily("context", "context", "CONTEXT_ID", "C_A_")
	AnswerFamily  = newIDFamily("answer", "answers", "ANSWER_ID", "A_")
)

func newIDFamily(name, table, column, prefix string) IDFamily {
	return IDFamily{
		Name:    name,
		Table:   table,
		Column:  column,
		Pattern: "^" + prefix + "[0-9]+_1$",
		Prefix:  prefix,
		re:      regexp.MustCompile("^" + prefix + "([0-9]+)_1$"),
	}
}

// Format 生成 <prefix><n>_1
func (f IDFamily) Format(n int64) string {
	return fmt.Sprintf("%s%d_1", f.Prefix, n)
}

// Parse 解析标识符中的编号
func (f IDFamily) Parse(id string) (int64, error) {
	m := f.re.FindStringSubmatch(id)
	if m == nil {
		return 0, fmt.Errorf("%w: %q is not a %s identifier", ErrMalformedIdentifier, id, f.Name)
	}
	n, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q has no usable number", ErrMalformedIdentifier, id)
	}
	return n, nil
}
