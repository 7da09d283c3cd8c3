package database

import (
	"context"
	"fmt"
	"time"

	"github.com/Gobusters/ectologger"
	"github.com/jmoiron/sqlx"
	_ "github.com/microsoft/go-mssqldb"
)

// DriverSQLServer is the database/sql name registered by go-mssqldb.
const DriverSQLServer = "sqlserver"

// DB is the read surface used against the legacy database.
type DB interface {
	QueryxContext(ctx context.Context, query string, args ...any) (*sqlx.Rows, error)
	PingContext(ctx context.Context) error
	Close() error
}

type DatabaseInstance struct {
	*sqlx.DB
	logger ectologger.Logger
}

func NewDatabaseInstance(db *sqlx.DB, logger ectologger.Logger) *DatabaseInstance {
	return &DatabaseInstance{
		DB:     db,
		logger: logger,
	}
}

type Options struct {
	Driver          string
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	PingTimeout     time.Duration
}

// Open connects with the given connection string and verifies the
// connection with a ping. The connection string is never logged.
func Open(ctx context.Context, connectionString string, opts Options, logger ectologger.Logger) (*DatabaseInstance, error) {
	if opts.Driver == "" {
		opts.Driver = DriverSQLServer
	}

	db, err := sqlx.Open(opts.Driver, connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s connection: %w", opts.Driver, err)
	}
	if opts.MaxOpenConns > 0 {
		db.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(opts.ConnMaxLifetime)
	}

	pingCtx := ctx
	if opts.PingTimeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, opts.PingTimeout)
		defer cancel()
	}
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping %s: %w", opts.Driver, err)
	}

	logger.WithContext(ctx).WithField("driver", opts.Driver).Debug("Opened legacy database connection")
	return NewDatabaseInstance(db, logger), nil
}
