package engine

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type Engine int

const (
	SQLite Engine = iota + 1
	Cockroach
	SQLServer
	Postgres
)

var names = map[Engine]string{
	SQLite:    "sqlite",
	Cockroach: "cockroach",
	SQLServer: "sqlserver",
	Postgres:  "postgres",
}

// Parse converte o nome da engine (sqlite, postgres, cockroach, sqlserver).
func Parse(s string) (Engine, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for e, n := range names {
		if n == s {
			return e, nil
		}
	}
	return 0, errors.Errorf("engine: unknown engine %q", s)
}

func (e Engine) String() string {
	if n, ok := names[e]; ok {
		return n
	}
	return "engine(" + strconv.Itoa(int(e)) + ")"
}

// QuotedIdentifier envolve o identificador em aspas duplas.
// O conteúdo não é validado nem escapado.
func (e Engine) QuotedIdentifier(v string) string {
	return "\"" + v + "\""
}

// Placeholder retorna o parâmetro posicional nativo da engine (n começa em 1).
// A engine zero usa o formato do postgres.
func (e Engine) Placeholder(n int) string {
	switch e {
	case SQLServer:
		return "@p" + strconv.Itoa(n)
	}
	return "$" + strconv.Itoa(n)
}

// DriverName retorna o nome do driver database/sql usado pela engine.
func (e Engine) DriverName() string {
	switch e {
	case SQLite:
		return "sqlite3_rdd"
	case Cockroach:
		return "postgres"
	case Postgres:
		return "pgx"
	case SQLServer:
		return "sqlserver"
	}
	return ""
}

// MarshalText implementa encoding.TextMarshaler
func (e Engine) MarshalText() ([]byte, error) {
	if _, ok := names[e]; !ok {
		return nil, errors.Errorf("engine: unknown engine %d", int(e))
	}
	return []byte(e.String()), nil
}

// UnmarshalText implementa encoding.TextUnmarshaler
func (e *Engine) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*e = v
	return nil
}
