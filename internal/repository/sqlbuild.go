package repository

import (
	"fmt"
	"strings"

	"utube/internal/apperror"
)

// Change 一次部分更新中的单个字段
type Change struct {
	Field string
	Value any
}

// Changes 按插入顺序排列的字段变更
type Changes []Change

// Set 追加一个字段变更
func (c Changes) Set(field string, value any) Changes {
	return append(c, Change{Field: field, Value: value})
}

// Fields 返回字段名，顺序与插入一致
func (c Changes) Fields() []string {
	fields := make([]string, len(c))
	for i, ch := range c {
		fields[i] = ch.Field
	}
	return fields
}

// SetClause UPDATE 语句的 SET 部分，Fragments[i] 对应占位符 $i+1
type SetClause struct {
	Fragments []string
	Args      []any
}

// SQL 拼接为 "col1 = $1, col2 = $2"
func (s SetClause) SQL() string {
	return strings.Join(s.Fragments, ", ")
}

// NextIndex 行选择条件使用的下一个占位符序号
func (s SetClause) NextIndex() int {
	return len(s.Args) + 1
}

// BuildPartialUpdate 根据字段变更生成 SET 子句，columns 把字段名映射为列名，未映射的字段保持原名
func BuildPartialUpdate(changes Changes, columns map[string]string) (SetClause, error) {
	if len(changes) == 0 {
		return SetClause{}, apperror.BadRequest("No data")
	}

	clause := SetClause{
		Fragments: make([]string, 0, len(changes)),
		Args:      make([]any, 0, len(changes)),
	}
	for i, ch := range changes {
		col, ok := columns[ch.Field]
		if !ok {
			col = ch.Field
		}
		clause.Fragments = append(clause.Fragments, fmt.Sprintf("%s = $%d", col, i+1))
		clause.Args = append(clause.Args, ch.Value)
	}
	return clause, nil
}

// Match 过滤条件的匹配方式
type Match int

const (
	// MatchEqual 等值匹配
	MatchEqual Match = iota
	// MatchContainsFold 不区分大小写的子串匹配
	MatchContainsFold
)

// Condition 列表查询的单字段过滤条件，Value 始终作为参数绑定
type Condition struct {
	Column string
	Value  any
	Match  Match
}

// ListQuery 列表查询模板
type ListQuery struct {
	Select  string
	OrderBy string
	Limit   int
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Build 生成完整 SQL 与绑定参数，cond 为 nil 时不加 WHERE
func (q ListQuery) Build(cond *Condition) (string, []any) {
	var (
		sb   strings.Builder
		args []any
	)
	sb.WriteString(q.Select)

	if cond != nil {
		switch cond.Match {
		case MatchContainsFold:
			sb.WriteString(fmt.Sprintf("\nWHERE %s ILIKE $1", cond.Column))
			args = append(args, "%"+likeEscaper.Replace(fmt.Sprint(cond.Value))+"%")
		default:
			sb.WriteString(fmt.Sprintf("\nWHERE %s = $1", cond.Column))
			args = append(args, cond.Value)
		}
	}

	sb.WriteString("\nORDER BY ")
	sb.WriteString(q.OrderBy)
	sb.WriteString(fmt.Sprintf("\nLIMIT %d", q.Limit))

	return sb.String(), args
}
