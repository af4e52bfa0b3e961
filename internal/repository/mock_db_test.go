package repository

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return openMockDB(t, sqlDB), mock
}

func openMockDB(t *testing.T, sqlDB *sql.DB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return db
}

// expectAllocation 期望一次完整的编号分配：序列加锁、扫描、推进
func expectAllocation(mock sqlmock.Sqlmock, family, table string, last int64, latest string, next int64) {
	mock.ExpectExec(`INSERT INTO id_sequences \(family, last_value\) VALUES \(\?, 0\) ON DUPLICATE KEY UPDATE last_value = last_value`).
		WithArgs(family).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT last_value FROM id_sequences WHERE family = \? FOR UPDATE`).
		WithArgs(family).
		WillReturnRows(sqlmock.NewRows([]string{"last_value"}).AddRow(last))

	rows := sqlmock.NewRows([]string{"id"})
	if latest != "" {
		rows.AddRow(latest)
	}
	mock.ExpectQuery("FROM `" + table + "` WHERE REGEXP_LIKE\\(.*, \\?, 'c'\\) ORDER BY LENGTH\\(.*\\) DESC, .* DESC LIMIT 1").
		WillReturnRows(rows)

	mock.ExpectExec(`UPDATE id_sequences SET last_value = \? WHERE family = \?`).
		WithArgs(next, family).
		WillReturnResult(sqlmock.NewResult(0, 1))
}
