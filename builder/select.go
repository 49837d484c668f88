package builder

import (
	"strings"

	"github.com/dopsilva/rddsql/engine"
	"github.com/dopsilva/rddsql/field"
)

// SelectBuilder monta um SELECT "a", ... FROM "t" WHERE ... ORDER BY ... LIMIT $n
type SelectBuilder struct {
	eng      engine.Engine
	table    string
	columns  []string
	where    []field.Field
	orderBy  []string
	limit    int64
	hasLimit bool
}

func Select(table string) SelectBuilder {
	return SelectBuilder{table: table}
}

func (b SelectBuilder) Engine(e engine.Engine) SelectBuilder {
	b.eng = e
	return b
}

// Columns acrescenta colunas à projeção. Sem colunas o select usa *.
func (b SelectBuilder) Columns(names ...string) SelectBuilder {
	b.columns = MergeReturnings(b.columns, names)
	return b
}

func (b SelectBuilder) Where(fields ...field.Field) SelectBuilder {
	b.where = mergeFields(b.where, fields)
	return b
}

// OrderBy acrescenta colunas à ordenação (ascendente)
func (b SelectBuilder) OrderBy(names ...string) SelectBuilder {
	b.orderBy = MergeReturnings(b.orderBy, names)
	return b
}

// Limit define o limite de linhas, enviado como parâmetro
func (b SelectBuilder) Limit(n int64) SelectBuilder {
	b.limit = n
	b.hasLimit = true
	return b
}

func (b SelectBuilder) SQL() string {
	var q strings.Builder

	q.WriteString("SELECT ")
	if len(b.columns) > 0 {
		q.WriteString(quotedList(b.eng, b.columns) + " ")
	} else {
		q.WriteString("* ")
	}

	q.WriteString("FROM " + b.eng.QuotedIdentifier(b.table) + " ")

	next := 1
	if len(b.where) > 0 {
		var where string
		where, next = conditions(b.eng, b.where, next)
		q.WriteString("WHERE " + where + " ")
	}

	if len(b.orderBy) > 0 {
		q.WriteString("ORDER BY " + quotedList(b.eng, b.orderBy) + " ")
	}

	if b.hasLimit {
		q.WriteString("LIMIT " + b.eng.Placeholder(next) + " ")
	}

	return q.String()
}

func (b SelectBuilder) Vals() []field.Value {
	vals := appendConditionValues(make([]field.Value, 0, len(b.where)+1), b.where)
	if b.hasLimit {
		vals = append(vals, field.Int(b.limit))
	}
	return vals
}
