package rddsql

import (
	"context"
	"database/sql"

	"github.com/dopsilva/rddsql/builder"
	"github.com/dopsilva/rddsql/engine"
	"github.com/dopsilva/rddsql/internal/util"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	sqlite "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

// DB executa os statements gerados pelos builders
type DB struct {
	db     *sql.DB
	engine engine.Engine
	debug  bool
}

// Open usa uma conexão já aberta
func Open(e engine.Engine, db *sql.DB) *DB {
	return &DB{db: db, engine: e}
}

// Debug liga o log dos statements executados
func (db *DB) Debug(on bool) *DB {
	db.debug = on
	return db
}

func (db *DB) Insert(table string) builder.InsertBuilder {
	return builder.Insert(table).Engine(db.engine)
}

func (db *DB) Update(table string) builder.UpdateBuilder {
	return builder.Update(table).Engine(db.engine)
}

func (db *DB) Select(table string) builder.SelectBuilder {
	return builder.Select(table).Engine(db.engine)
}

func (db *DB) Delete(table string) builder.DeleteBuilder {
	return builder.Delete(table).Engine(db.engine)
}

func (db *DB) Exec(ctx context.Context, b builder.Builder) (sql.Result, error) {
	q, args := db.reify(b)
	res, err := db.db.ExecContext(ctx, q, args...)
	if err != nil {
		return nil, errors.Wrap(err, "rddsql: exec")
	}
	return res, nil
}

func (db *DB) Query(ctx context.Context, b builder.Builder) (*sql.Rows, error) {
	q, args := db.reify(b)
	rows, err := db.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, errors.Wrap(err, "rddsql: query")
	}
	return rows, nil
}

// Each executa a consulta e chama fn para cada linha. As linhas são sempre
// fechadas ao final.
func (db *DB) Each(ctx context.Context, b builder.Builder, fn func(*sql.Rows) error) error {
	rows, err := db.Query(ctx, b)
	if err != nil {
		return err
	}
	defer util.CloseWithErr(rows, "rows")

	for rows.Next() {
		if err := fn(rows); err != nil {
			return err
		}
	}
	return errors.Wrap(rows.Err(), "rddsql: rows")
}

func (db *DB) QueryRow(ctx context.Context, b builder.Builder) *sql.Row {
	q, args := db.reify(b)
	return db.db.QueryRowContext(ctx, q, args...)
}

// Scan executa o statement e lê a primeira linha em dest. Sem linhas retorna
// ErrNotFound.
func (db *DB) Scan(ctx context.Context, b builder.Builder, dest ...any) error {
	if err := db.QueryRow(ctx, b).Scan(dest...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return errors.Wrap(err, "rddsql: scan")
	}
	return nil
}

func (db *DB) reify(b builder.Builder) (string, []any) {
	q, args := builder.Reify(b)
	if db.debug {
		util.Infof("%s %v", q, args)
	}
	return q, args
}

func (db *DB) Engine() engine.Engine {
	return db.engine
}

// Raw retorna a conexão database/sql
func (db *DB) Raw() *sql.DB {
	return db.db
}

func (db *DB) Close() error {
	return db.db.Close()
}

func (db *DB) IsDuplicatedError(err error) bool {
	return IsDuplicatedError(err)
}

// IsDuplicatedError verifica se o erro é violação de chave primária ou única
func IsDuplicatedError(err error) bool {
	if err == nil {
		return false
	}

	// cockroachdb/postgres (lib/pq)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}

	// postgres (pgx)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}

	// sqlite
	var sqliteErr sqlite.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite.ErrConstraint &&
			(sqliteErr.ExtendedCode == sqlite.ErrConstraintPrimaryKey || sqliteErr.ExtendedCode == sqlite.ErrConstraintUnique)
	}

	return false
}
