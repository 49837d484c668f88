package rddsql

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/dopsilva/rddsql/engine"
	"github.com/dopsilva/rddsql/internal/util"
	"github.com/google/uuid"
	sqlite "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrUnsupportedEngine = errors.New("unsupported engine")
)

const pingTimeout = 5 * time.Second

var onlyOnce sync.Once

// registerSQLite registra o driver sqlite3_rdd com as funções que as outras
// engines já possuem.
func registerSQLite() {
	onlyOnce.Do(func() {
		sql.Register(engine.SQLite.DriverName(), &sqlite.SQLiteDriver{
			ConnectHook: func(conn *sqlite.SQLiteConn) error {
				if err := conn.RegisterFunc("gen_random_uuid", func() string {
					return uuid.NewString()
				}, false); err != nil {
					return err
				}
				return nil
			},
		})
	})
}

// Connect retorna a conexão com o banco de dados através da engine e da url
// informadas na configuração.
func Connect(cfg Config) (*DB, error) {
	cfg = cfg.Normalize()

	switch cfg.Engine {
	case engine.SQLite:
		registerSQLite()
	case engine.Cockroach, engine.Postgres:
	default:
		util.Warnf("rddsql: engine %v não suportada", cfg.Engine)
		return nil, errors.Wrapf(ErrUnsupportedEngine, "rddsql: %v", cfg.Engine)
	}

	db, err := sql.Open(cfg.Engine.DriverName(), cfg.URL)
	if err != nil {
		return nil, errors.Wrapf(err, "rddsql: open %v", cfg.Engine)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}

	if cfg.Ping {
		ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			util.CloseWithErr(db, cfg.Engine.String())
			return nil, errors.Wrapf(err, "rddsql: ping %v", cfg.Engine)
		}
	}

	return &DB{db: db, engine: cfg.Engine, debug: cfg.Debug}, nil
}
