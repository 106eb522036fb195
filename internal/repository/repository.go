package repository

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pkg/errors"
)

//go:embed schema_*.sql
var schemaFS embed.FS

type PoolOptions struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Repo is the database gateway shared by all services. It owns a
// connection pool; every query checks a connection out for its own duration.
type Repo struct {
	db      *sql.DB
	dialect dialect
}

func NewRepo(ctx context.Context, driver, dsn string, pool PoolOptions) (*Repo, error) {
	d, err := dialectFor(driver)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("cannot open db: %w", err)
	}
	db.SetMaxOpenConns(pool.MaxOpenConns)
	db.SetMaxIdleConns(pool.MaxIdleConns)
	db.SetConnMaxLifetime(pool.ConnMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("cannot ping db: %w", err)
	}
	return &Repo{db: db, dialect: d}, nil
}

func (r *Repo) Close() error {
	return r.db.Close()
}

// Migrate creates the tables if they do not exist yet.
func (r *Repo) Migrate(ctx context.Context) error {
	raw, err := schemaFS.ReadFile("schema_" + r.dialect.schema + ".sql")
	if err != nil {
		return errors.Wrap(err, "repo: Migrate")
	}
	for _, stmt := range splitStatements(string(raw)) {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return errors.Wrap(err, "repo: Migrate")
		}
	}
	return nil
}

func splitStatements(script string) []string {
	var out []string
	for _, stmt := range strings.Split(script, ";") {
		if stmt = strings.TrimSpace(stmt); stmt != "" {
			out = append(out, stmt)
		}
	}
	return out
}

// insert runs an INSERT and returns the auto-generated id.
func (r *Repo) insert(ctx context.Context, query string, args ...interface{}) (int, error) {
	if r.dialect.returning {
		var id int
		err := r.db.QueryRowContext(ctx, r.dialect.rebind(query+" RETURNING id"), args...).Scan(&id)
		return id, err
	}
	res, err := r.db.ExecContext(ctx, r.dialect.rebind(query), args...)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	return int(id), err
}

type dialect struct {
	schema    string
	dollar    bool
	returning bool
}

func dialectFor(driver string) (dialect, error) {
	switch driver {
	case "pgx":
		return dialect{schema: "postgres", dollar: true, returning: true}, nil
	case "mysql":
		return dialect{schema: "mysql"}, nil
	}
	return dialect{}, fmt.Errorf("unsupported driver %q", driver)
}

// rebind rewrites ? placeholders to $N for postgres. Queries in this
// package never contain a literal question mark.
func (d dialect) rebind(query string) string {
	if !d.dollar {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, c := range query {
		if c == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(c)
	}
	return b.String()
}

// upsertOwnedItems builds one statement that inserts `rows` owned-item rows
// or adds to the quantity already held.
func (d dialect) upsertOwnedItems(rows int) string {
	values := strings.TrimSuffix(strings.Repeat("(?, ?, ?), ", rows), ", ")
	query := "INSERT INTO items_usuaris (usuari_id, item_id, quantitat) VALUES " + values
	if d.schema == "postgres" {
		query += " ON CONFLICT (usuari_id, item_id) DO UPDATE SET quantitat = items_usuaris.quantitat + EXCLUDED.quantitat"
	} else {
		query += " ON DUPLICATE KEY UPDATE quantitat = quantitat + VALUES(quantitat)"
	}
	return d.rebind(query)
}
