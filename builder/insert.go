package builder

import (
	"strings"

	"github.com/dopsilva/rddsql/engine"
	"github.com/dopsilva/rddsql/field"
)

// InsertBuilder monta um INSERT INTO "t" ("a", ...) VALUES ($1, ...) RETURNING "r", ...
type InsertBuilder struct {
	eng        engine.Engine
	table      string
	data       []field.Field
	hasData    bool
	returnings []string
}

// Insert cria o builder para a tabela
func Insert(table string) InsertBuilder {
	return InsertBuilder{table: table}
}

// Engine define o dialeto usado para quoting e placeholders
func (b InsertBuilder) Engine(e engine.Engine) InsertBuilder {
	b.eng = e
	return b
}

// Data substitui os dados do insert. Chamado sem campos gera () VALUES (),
// diferente de um insert sem Data.
func (b InsertBuilder) Data(fields ...field.Field) InsertBuilder {
	b.data = field.CloneAll(fields)
	b.hasData = true
	return b
}

// Returning acrescenta colunas ao RETURNING
func (b InsertBuilder) Returning(names ...string) InsertBuilder {
	b.returnings = MergeReturnings(b.returnings, names)
	return b
}

func (b InsertBuilder) SQL() string {
	var q strings.Builder

	q.WriteString("INSERT INTO " + b.eng.QuotedIdentifier(b.table) + " ")

	// dados vazios são válidos quando todas as colunas têm default ou são geradas
	if b.hasData {
		q.WriteString("(" + commaNames(b.eng, b.data) + ") ")
		q.WriteString("VALUES (" + commaParams(b.eng, b.data, 1) + ") ")
	}

	if len(b.returnings) > 0 {
		q.WriteString("RETURNING " + quotedList(b.eng, b.returnings) + " ")
	}

	return q.String()
}

func (b InsertBuilder) Vals() []field.Value {
	return appendValues(make([]field.Value, 0, len(b.data)), b.data)
}
