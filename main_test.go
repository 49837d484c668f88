package rddsql

import (
	"bytes"
	"context"
	"log"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/dopsilva/rddsql/engine"
	"github.com/dopsilva/rddsql/internal/util"
)

func eq(t testing.TB, expected any, actual any) {
	t.Helper()
	if !reflect.DeepEqual(expected, actual) {
		t.Fatalf("expected:\n%#v\nactual:\n%#v", expected, actual)
	}
}

const usuariosTable = `create table "usuarios" (
	"id"    integer primary key autoincrement,
	"email" text not null unique,
	"nome"  text,
	"idade" integer,
	"ativo" integer not null default 1
)`

// connect abre um banco sqlite novo em um diretório temporário
func connect(t *testing.T) *DB {
	t.Helper()

	db, err := Connect(Config{Engine: engine.SQLite, URL: filepath.Join(t.TempDir(), "rdd.db")})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { util.CloseWithErr(db, "db") })

	if _, err := db.Raw().ExecContext(context.Background(), usuariosTable); err != nil {
		t.Fatal(err)
	}

	return db
}

// captureLog redireciona o log padrão para um buffer durante o teste
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(prev) })
	return &buf
}
