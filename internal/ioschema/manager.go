// Package ioschema implements SchemaManager interface for
// database schema management. This is an impure I/O package
// that wraps GORM AutoMigrate functionality.
package ioschema

import (
	"context"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/oceandata/argodb/pkg/config"
	"github.com/oceandata/argodb/pkg/db"
	"github.com/oceandata/argodb/pkg/lifecycle"
	"github.com/oceandata/argodb/pkg/schema"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// manager implements the lifecycle.SchemaManager interface
// using GORM AutoMigrate.
type manager struct {
	operator db.Operator
}

// NewManager creates a new SchemaManager.
func NewManager(op db.Operator) lifecycle.SchemaManager {
	return &manager{operator: op}
}

// Create creates the initial database schema using GORM AutoMigrate
// and applies the secondary indexes the query paths depend on.
func (m *manager) Create(
	ctx context.Context,
	cfg *config.Config,
) error {
	gormDB, err := m.gormDB()
	if err != nil {
		return err
	}

	if err := schema.Migrate(gormDB); err != nil {
		return CreateSchemaError(err)
	}

	if err := m.createIndexes(ctx); err != nil {
		return err
	}

	return nil
}

// Migrate updates the database schema to the latest version
// using GORM AutoMigrate.
func (m *manager) Migrate(
	ctx context.Context,
	cfg *config.Config,
) error {
	gormDB, err := m.gormDB()
	if err != nil {
		return err
	}

	if err := schema.Migrate(gormDB); err != nil {
		return MigrateSchemaError(err)
	}

	if err := m.createIndexes(ctx); err != nil {
		return err
	}

	return nil
}

// gormDB opens a GORM session over the operator's pgx pool.
func (m *manager) gormDB() (*gorm.DB, error) {
	pool := m.operator.Pool()
	if pool == nil {
		return nil, NotConnectedError()
	}

	sqlDB := stdlib.OpenDBFromPool(pool)

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{Conn: sqlDB}),
		&gorm.Config{},
	)
	if err != nil {
		return nil, GORMConnectionError(err)
	}

	return gormDB, nil
}

// createIndexes applies the secondary indexes declared by the schema
// models. Statements use IF NOT EXISTS, so repeat runs are no-ops.
func (m *manager) createIndexes(ctx context.Context) error {
	pool := m.operator.Pool()
	if pool == nil {
		return NotConnectedError()
	}

	for _, stmt := range schema.AllIndexDDL() {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return IndexError(stmt, err)
		}
	}

	return nil
}
