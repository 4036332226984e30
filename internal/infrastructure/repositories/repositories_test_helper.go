package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE,
		username TEXT UNIQUE,
		password_hash TEXT,
		role TEXT,
		seller_status TEXT,
		store_name TEXT,
		seller_bio TEXT,
		seller_address TEXT,
		seller_tax_id TEXT,
		is_seller_approved BOOLEAN,
		seller_verified BOOLEAN,
		total_sales REAL,
		total_products INTEGER,
		seller_rating REAL,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createProductTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE products (
		id TEXT PRIMARY KEY,
		seller_id TEXT NOT NULL,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		short_description TEXT,
		category TEXT,
		price REAL NOT NULL,
		compare_at_price REAL,
		file_ref TEXT NOT NULL,
		file_size INTEGER,
		file_type TEXT,
		thumbnail_ref TEXT,
		status TEXT NOT NULL,
		is_active BOOLEAN NOT NULL,
		stock_quantity INTEGER,
		sold_count INTEGER,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createReviewTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE reviews (
		id TEXT PRIMARY KEY,
		product_id TEXT NOT NULL,
		user_id TEXT NOT NULL,
		rating INTEGER NOT NULL,
		comment TEXT,
		created_at DATETIME
	);`)
}
