package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"event-announcer/internal/announcement/repository"
	pkgLog "event-announcer/pkg/log"
)

const DriverName = "sqlite3"

type implRepository struct {
	db *sqlx.DB
	l  pkgLog.Logger
}

// New wraps db and runs the schema migrations.
func New(db *sql.DB, l pkgLog.Logger) (repository.Repository, error) {
	if db == nil {
		panic("announcement/repository/sqlite: db is required")
	}
	r := &implRepository{
		db: sqlx.NewDb(db, DriverName),
		l:  l,
	}
	if err := r.runMigrations(); err != nil {
		return nil, fmt.Errorf("sqlite: running migrations: %w", err)
	}
	return r, nil
}

// Open opens (creating if needed) the database file at path.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open(DriverName, path)
	if err != nil {
		return nil, err
	}
	// a single writer keeps per-key operations serialized
	db.SetMaxOpenConns(1)
	return db, nil
}
