package main

import (
	"database/sql"
	"errors"
	"path/filepath"

	_ "github.com/lib/pq"
	"github.com/pressly/goose"

	"github.com/smartsyakila/backend/core"
	"github.com/smartsyakila/backend/storage/blob"
)

// migrate applies pending migrations; only meaningful for the postgres
// backend (the fs backend needs no schema).
func (cli *commandLine) migrate() error {
	if core.Conf.GetString("storage.backend") != "postgres" {
		return errors.New("migrate requires the postgres storage backend")
	}

	db, err := sql.Open(core.Conf.GetString("database.engine"), blob.DatabaseURL())
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(db, filepath.Join(core.Getwd(), "migrations"))
}
