package database

import (
	"database/sql"
	"log"
	"time"

	"woofer/internal/platform/config"

	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
)

var DB *sql.DB

// schema is the full DDL for this service. The unique index on username is
// what actually enforces the one-username-per-user invariant; the
// application-level pre-check only exists for the friendlier message.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id         TEXT PRIMARY KEY,
	username   TEXT NOT NULL,
	password   TEXT NOT NULL,
	email      TEXT NOT NULL,
	birthday   TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
CREATE UNIQUE INDEX IF NOT EXISTS users_username_key ON users (username);

CREATE TABLE IF NOT EXISTS woofs (
	id      TEXT PRIMARY KEY,
	name    TEXT NOT NULL,
	content TEXT NOT NULL,
	created TIMESTAMPTZ NOT NULL
);
`

func Connect() {
	var err error
	DB, err = sql.Open("pgx", config.AppConfig.DBConnStr)
	if err != nil {
		log.Fatalf("Error opening database: %v", err)
	}

	DB.SetMaxOpenConns(25)
	DB.SetMaxIdleConns(25)
	DB.SetConnMaxLifetime(5 * time.Minute)

	// Verify connection
	if err = DB.Ping(); err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
}

// Migrate bootstraps the two tables. Safe to run on every start.
func Migrate() {
	if _, err := DB.Exec(schema); err != nil {
		log.Fatalf("Error applying schema: %v", err)
	}
}

func Close() {
	if DB != nil {
		DB.Close()
	}
}
