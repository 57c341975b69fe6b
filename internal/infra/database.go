package infra

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
)

// uniqueTupleKey is the index that makes the group resolver's insert path
// atomic: one row per (name, price, unit, type_id, category_id) tuple.
const uniqueTupleKey = "uniq_product_group_tuple"

// NewDatabase opens the MySQL pool, verifies connectivity, and applies the
// idempotent schema statements the API relies on.
func NewDatabase(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return db, nil
}

// ensureSchema creates the four tables when they do not exist yet. Statements
// run one by one: the driver does not enable multi-statement mode.
func ensureSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS categories (
			category_id   INT AUTO_INCREMENT PRIMARY KEY,
			category_name VARCHAR(100) NOT NULL,
			UNIQUE KEY uniq_category_name (category_name)
		)`,
		`CREATE TABLE IF NOT EXISTS types (
			type_id     INT AUTO_INCREMENT PRIMARY KEY,
			type_name   VARCHAR(100) NOT NULL,
			category_id INT NOT NULL,
			UNIQUE KEY uniq_type_name (category_id, type_name),
			FOREIGN KEY (category_id) REFERENCES categories (category_id)
		)`,
		`CREATE TABLE IF NOT EXISTS product_groups (
			group_id    INT AUTO_INCREMENT PRIMARY KEY,
			name        VARCHAR(255)   NOT NULL,
			price       DECIMAL(12,2)  NOT NULL,
			unit        VARCHAR(32)    NOT NULL,
			type_id     INT NOT NULL,
			category_id INT NOT NULL,
			UNIQUE KEY ` + uniqueTupleKey + ` (name, price, unit, type_id, category_id),
			FOREIGN KEY (type_id) REFERENCES types (type_id),
			FOREIGN KEY (category_id) REFERENCES categories (category_id)
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			product_id  INT AUTO_INCREMENT PRIMARY KEY,
			group_id    INT NOT NULL,
			quantity    INT NOT NULL,
			expiry_date DATE NOT NULL,
			FOREIGN KEY (group_id) REFERENCES product_groups (group_id)
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return ensureGroupTupleKey(db)
}

// ensureGroupTupleKey retrofits the unique tuple key on databases created by
// an older schema that lacked it. When legacy duplicate groups block the
// ALTER, the server keeps running with the old lookup-first behavior, which
// can produce a bounded number of duplicate groups under concurrent writes.
func ensureGroupTupleKey(db *sql.DB) error {
	var n int
	err := db.QueryRow(`
		SELECT COUNT(*) FROM information_schema.statistics
		WHERE table_schema = DATABASE()
		  AND table_name = 'product_groups'
		  AND index_name = ?`, uniqueTupleKey).Scan(&n)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	_, err = db.Exec(`ALTER TABLE product_groups
		ADD UNIQUE KEY ` + uniqueTupleKey + ` (name, price, unit, type_id, category_id)`)
	if err != nil {
		log.Warn().Err(err).
			Msg("could not add unique tuple key on product_groups; concurrent creates may duplicate groups until duplicates are cleaned up")
	}
	return nil
}
