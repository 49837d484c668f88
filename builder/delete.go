package builder

import (
	"strings"

	"github.com/dopsilva/rddsql/engine"
	"github.com/dopsilva/rddsql/field"
)

// DeleteBuilder monta um DELETE FROM "t" WHERE ... RETURNING ...
// Sem Where todas as linhas são removidas.
type DeleteBuilder struct {
	eng        engine.Engine
	table      string
	where      []field.Field
	returnings []string
}

func Delete(table string) DeleteBuilder {
	return DeleteBuilder{table: table}
}

func (b DeleteBuilder) Engine(e engine.Engine) DeleteBuilder {
	b.eng = e
	return b
}

func (b DeleteBuilder) Where(fields ...field.Field) DeleteBuilder {
	b.where = mergeFields(b.where, fields)
	return b
}

func (b DeleteBuilder) Returning(names ...string) DeleteBuilder {
	b.returnings = MergeReturnings(b.returnings, names)
	return b
}

func (b DeleteBuilder) SQL() string {
	var q strings.Builder

	q.WriteString("DELETE FROM " + b.eng.QuotedIdentifier(b.table) + " ")

	if len(b.where) > 0 {
		where, _ := conditions(b.eng, b.where, 1)
		q.WriteString("WHERE " + where + " ")
	}

	if len(b.returnings) > 0 {
		q.WriteString("RETURNING " + quotedList(b.eng, b.returnings) + " ")
	}

	return q.String()
}

func (b DeleteBuilder) Vals() []field.Value {
	return appendConditionValues(make([]field.Value, 0, len(b.where)), b.where)
}
