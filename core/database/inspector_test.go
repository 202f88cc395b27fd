package database

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openInspectorDB(t *testing.T, dbName string) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", dbName)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	return db
}

func TestGetTableColumns_SQLite(t *testing.T) {
	db := openInspectorDB(t, "inspector_columns")
	require.NoError(t, db.Exec(`CREATE TABLE positions (
		dep_code VARCHAR(20) NOT NULL,
		dep_job VARCHAR(100) NOT NULL,
		description VARCHAR(255),
		PRIMARY KEY (dep_code, dep_job)
	)`).Error)

	columns, err := GetTableColumns(db, "positions")
	require.NoError(t, err)
	require.Len(t, columns, 3)

	names := make([]string, 0, len(columns))
	for _, c := range columns {
		names = append(names, c.Field)
	}
	assert.ElementsMatch(t, []string{"dep_code", "dep_job", "description"}, names)
}

func TestVerifyTableColumns(t *testing.T) {
	db := openInspectorDB(t, "inspector_verify")
	require.NoError(t, db.Exec(`CREATE TABLE positions (
		dep_code VARCHAR(20) NOT NULL,
		dep_job VARCHAR(100) NOT NULL,
		description VARCHAR(255),
		PRIMARY KEY (dep_code, dep_job)
	)`).Error)

	t.Run("All Columns Present", func(t *testing.T) {
		err := VerifyTableColumns(db, "positions", []string{"dep_code", "dep_job", "description"})
		assert.NoError(t, err)
	})

	t.Run("Missing Column", func(t *testing.T) {
		err := VerifyTableColumns(db, "positions", []string{"dep_code", "dep_job", "salary"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "salary")
	})

	t.Run("Missing Table", func(t *testing.T) {
		err := VerifyTableColumns(db, "departments", []string{"dep_code"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not exist")
	})
}
