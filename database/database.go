package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/models"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// sqlitePragmas are passed through the DSN so every pooled connection gets them.
const sqlitePragmas = "_busy_timeout=5000&_journal_mode=WAL&_synchronous=NORMAL"

type Database struct {
	db                 *gorm.DB
	projectRepo        *ProjectRepo
	testimonialRepo    *TestimonialRepo
	contactMessageRepo *ContactMessageRepo
}

// Open opens (creating if needed) the SQLite file at path.
// SQLite allows one writer at a time, so the pool is held to one connection.
func Open(path string, gormLogger logger.Interface) (*gorm.DB, error) {
	if gormLogger == nil {
		gormLogger = logger.Default.LogMode(logger.Warn)
	}

	db, err := gorm.Open(sqlite.Open(dsn(path)), &gorm.Config{
		Logger:                 gormLogger,
		PrepareStmt:            false,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func dsn(path string) string {
	if path == ":memory:" {
		return path
	}
	if strings.Contains(path, "?") {
		return path + "&" + sqlitePragmas
	}
	return path + "?" + sqlitePragmas
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		db:                 db,
		projectRepo:        NewProjectRepo(db),
		testimonialRepo:    NewTestimonialRepo(db),
		contactMessageRepo: NewContactMessageRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) TestimonialRepo() *TestimonialRepo {
	return d.testimonialRepo
}

func (d Database) ContactMessageRepo() *ContactMessageRepo {
	return d.contactMessageRepo
}

// GetDB returns the underlying database connection
func (d Database) GetDB() *gorm.DB {
	return d.db
}

// Initialize creates missing tables and then seeds empty ones.
// Any error here is a startup error.
func (d Database) Initialize(ctx context.Context) error {
	if err := d.EnsureSchema(ctx); err != nil {
		return err
	}
	return d.Seed(ctx)
}

// EnsureSchema creates each model's table when it does not exist yet.
// Existing tables are never altered.
func (d Database) EnsureSchema(ctx context.Context) error {
	migrator := d.db.WithContext(ctx).Migrator()

	for _, model := range models.All() {
		if migrator.HasTable(model) {
			continue
		}
		if err := migrator.CreateTable(model); err != nil {
			return errs.NewSchemaInitError(tableName(d.db, model), err)
		}
		log.Info().Str("table", tableName(d.db, model)).Msg("Created table")
	}

	return nil
}

// Ping checks the store is reachable
func (d Database) Ping(ctx context.Context) error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the underlying connection pool
func (d Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func tableName(db *gorm.DB, model any) string {
	stmt := &gorm.Statement{DB: db}
	if err := stmt.Parse(model); err != nil {
		return fmt.Sprintf("%T", model)
	}
	return stmt.Schema.Table
}
