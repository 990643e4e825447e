package database

import "time"

// Connection pool tuning
const (
	// MinPoolConnections is the floor of warm connections kept open so the
	// first opens after an idle period do not pay the connect cost
	MinPoolConnections = 2

	// ConnectPingTimeout bounds the startup connectivity check
	ConnectPingTimeout = 5 * time.Second
)

// Error Messages - Database Operations
const (
	ErrMsgParseConnString         = "parse database connection string"
	ErrMsgCreatePool              = "create database connection pool"
	ErrMsgPingDatabase            = "ping database"
	ErrMsgFailedToOpenMigrationDB = "failed to open migration connection"
	ErrMsgFailedToRunMigrations   = "failed to run migrations"
)

// Log Messages
const (
	LogMsgDatabaseReady     = "Database connection pool ready"
	LogMsgMigrationsApplied = "Database migrations applied"
)
