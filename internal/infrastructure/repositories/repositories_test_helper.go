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

func createCompanyTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE companies (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		is_verified BOOLEAN NOT NULL DEFAULT 0,
		verification_token TEXT,
		verification_token_expires DATETIME,
		reset_token TEXT,
		reset_token_expires DATETIME,
		subscription_status TEXT NOT NULL DEFAULT 'trial',
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createChannelTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE channels (
		id TEXT PRIMARY KEY,
		company_id TEXT NOT NULL,
		type TEXT NOT NULL,
		value TEXT NOT NULL,
		description TEXT,
		status TEXT NOT NULL DEFAULT 'unverified',
		verified_at DATETIME,
		is_employee_channel BOOLEAN NOT NULL DEFAULT 0,
		employee_name TEXT,
		employee_role TEXT,
		employee_department TEXT,
		employee_status TEXT,
		metadata TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createReportTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE reports (
		id TEXT PRIMARY KEY,
		reporter_name TEXT NOT NULL,
		reported_channel TEXT NOT NULL,
		reason TEXT NOT NULL,
		created_at DATETIME
	);`)
}

func createVerificationAttemptTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE verification_attempts (
		id TEXT PRIMARY KEY,
		input_value TEXT NOT NULL,
		verified BOOLEAN NOT NULL,
		created_at DATETIME
	);`)
}
