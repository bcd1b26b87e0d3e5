package store

import (
	"database/sql"

	"github.com/academyhub/academy-client/internal/logger"
	"github.com/academyhub/academy-client/migrations"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
