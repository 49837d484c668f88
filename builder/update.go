package builder

import (
	"strings"

	"github.com/dopsilva/rddsql/engine"
	"github.com/dopsilva/rddsql/field"
)

// UpdateBuilder monta um UPDATE "t" SET "a" = $1, ... WHERE "id" = $n RETURNING ...
type UpdateBuilder struct {
	eng        engine.Engine
	table      string
	data       []field.Field
	hasData    bool
	where      []field.Field
	returnings []string
}

func Update(table string) UpdateBuilder {
	return UpdateBuilder{table: table}
}

func (b UpdateBuilder) Engine(e engine.Engine) UpdateBuilder {
	b.eng = e
	return b
}

// Data substitui as colunas do SET. Sem campos sobra apenas o SET.
func (b UpdateBuilder) Data(fields ...field.Field) UpdateBuilder {
	b.data = field.CloneAll(fields)
	b.hasData = true
	return b
}

// Where acrescenta condições de igualdade, unidas por AND. Um valor Null gera
// "col" IS NULL e não consome parâmetro.
func (b UpdateBuilder) Where(fields ...field.Field) UpdateBuilder {
	b.where = mergeFields(b.where, fields)
	return b
}

func (b UpdateBuilder) Returning(names ...string) UpdateBuilder {
	b.returnings = MergeReturnings(b.returnings, names)
	return b
}

func (b UpdateBuilder) SQL() string {
	var q strings.Builder

	q.WriteString("UPDATE " + b.eng.QuotedIdentifier(b.table) + " ")

	if b.hasData {
		q.WriteString("SET ")
		if len(b.data) > 0 {
			q.WriteString(assignments(b.eng, b.data, 1) + " ")
		}
	}

	if len(b.where) > 0 {
		where, _ := conditions(b.eng, b.where, len(b.data)+1)
		q.WriteString("WHERE " + where + " ")
	}

	if len(b.returnings) > 0 {
		q.WriteString("RETURNING " + quotedList(b.eng, b.returnings) + " ")
	}

	return q.String()
}

func (b UpdateBuilder) Vals() []field.Value {
	vals := make([]field.Value, 0, len(b.data)+len(b.where))
	vals = appendValues(vals, b.data)
	return appendConditionValues(vals, b.where)
}
