package builder

import (
	"strings"

	"github.com/dopsilva/rddsql/engine"
	"github.com/dopsilva/rddsql/field"
)

/*
Builder é o contrato comum aos builders de statements.

SQL retorna o texto com parâmetros posicionais e Vals os valores na mesma ordem
dos parâmetros: o n-ésimo valor corresponde ao n-ésimo placeholder. Os dois
métodos apenas leem o estado do builder e podem ser chamados quantas vezes e em
qualquer ordem.
*/
type Builder interface {
	SQL() string
	Vals() []field.Value
}

var (
	_ Builder = InsertBuilder{}
	_ Builder = UpdateBuilder{}
	_ Builder = SelectBuilder{}
	_ Builder = DeleteBuilder{}
)

// Args converte os valores para o formato esperado pelo database/sql
func Args(b Builder) []any {
	vals := b.Vals()
	args := make([]any, len(vals))
	for i, v := range vals {
		args[i] = v
	}
	return args
}

// Reify retorna o texto e os argumentos prontos para Exec/Query
func Reify(b Builder) (string, []any) {
	return b.SQL(), Args(b)
}

// CommaNames retorna "name1", "name2", ... na ordem dos campos
func CommaNames(fields []field.Field) string {
	return commaNames(0, fields)
}

// CommaParams retorna $1, $2, ... um para cada campo, começando em 1
func CommaParams(fields []field.Field) string {
	return commaParams(0, fields, 1)
}

// Returnings retorna "r1", "r2", ... na ordem informada
func Returnings(names []string) string {
	return quotedList(0, names)
}

/*
MergeReturnings acrescenta names ao final de current. Nomes repetidos são
mantidos. O resultado nunca compartilha o array de current, então builders
derivados do mesmo valor continuam independentes. Sem nomes, current é
retornado como está (nil continua nil).
*/
func MergeReturnings(current []string, names []string) []string {
	if len(names) == 0 {
		return current
	}
	out := make([]string, 0, len(current)+len(names))
	out = append(out, current...)
	return append(out, names...)
}

func commaNames(eng engine.Engine, fields []field.Field) string {
	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(eng.QuotedIdentifier(f.Name))
	}
	return b.String()
}

func commaParams(eng engine.Engine, fields []field.Field, start int) string {
	var b strings.Builder
	for i := range fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(eng.Placeholder(start + i))
	}
	return b.String()
}

func quotedList(eng engine.Engine, names []string) string {
	var b strings.Builder
	for i, n := range names {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(eng.QuotedIdentifier(n))
	}
	return b.String()
}

// "a" = $1, "b" = $2
func assignments(eng engine.Engine, fields []field.Field, start int) string {
	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(eng.QuotedIdentifier(f.Name) + " = " + eng.Placeholder(start+i))
	}
	return b.String()
}

// "a" = $1 AND "b" IS NULL AND ...
// Retorna também o próximo número de parâmetro livre.
func conditions(eng engine.Engine, fields []field.Field, start int) (string, int) {
	var b strings.Builder
	n := start
	for i, f := range fields {
		if i > 0 {
			b.WriteString(" AND ")
		}
		b.WriteString(eng.QuotedIdentifier(f.Name))
		if isNull(f.Value) {
			b.WriteString(" IS NULL")
			continue
		}
		b.WriteString(" = " + eng.Placeholder(n))
		n++
	}
	return b.String(), n
}

func isNull(v field.Value) bool {
	return v == nil || v.Kind() == field.KindNull
}

func appendValues(vals []field.Value, fields []field.Field) []field.Value {
	for _, f := range fields {
		if f.Value == nil {
			vals = append(vals, field.Null{})
			continue
		}
		vals = append(vals, field.Clone(f.Value))
	}
	return vals
}

func appendConditionValues(vals []field.Value, fields []field.Field) []field.Value {
	for _, f := range fields {
		if isNull(f.Value) {
			continue
		}
		vals = append(vals, field.Clone(f.Value))
	}
	return vals
}

func mergeFields(current []field.Field, fields []field.Field) []field.Field {
	if len(fields) == 0 {
		return current
	}
	out := make([]field.Field, 0, len(current)+len(fields))
	out = append(out, current...)
	return append(out, field.CloneAll(fields)...)
}
