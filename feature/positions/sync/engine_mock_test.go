package sync

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupMockDB wires GORM's MySQL dialector on top of sqlmock so error
// paths of the transaction can be forced deterministically.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      conn,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	return db, mock
}

func mockSnapshotFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "import.xml")
	content := `<positions><position><depCode>D1</depCode><depJob>Clerk</depJob><description>x</description></position></positions>`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSync_RollsBackWhenStagingFails(t *testing.T) {
	db, mock := setupMockDB(t)
	engine := NewEngine(db, zap.NewNop())

	mock.ExpectBegin()
	mock.ExpectExec("DROP TEMPORARY TABLE IF EXISTS positions_staging").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TEMPORARY TABLE positions_staging").
		WillReturnError(fmt.Errorf("table is full"))
	mock.ExpectRollback()

	_, err := engine.Sync(context.Background(), mockSnapshotFile(t))

	assert.ErrorIs(t, err, ErrDatabase)
	assert.NoError(t, mock.ExpectationsWereMet(), "transaction must be rolled back")
}

func TestSync_RollsBackWhenDeleteFails(t *testing.T) {
	db, mock := setupMockDB(t)
	engine := NewEngine(db, zap.NewNop())

	mock.ExpectBegin()
	mock.ExpectExec("DROP TEMPORARY TABLE IF EXISTS positions_staging").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TEMPORARY TABLE positions_staging").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO .positions_staging.").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM positions WHERE NOT EXISTS").
		WillReturnError(fmt.Errorf("server has gone away"))
	mock.ExpectRollback()

	_, err := engine.Sync(context.Background(), mockSnapshotFile(t))

	assert.ErrorIs(t, err, ErrDatabase)
	assert.NoError(t, mock.ExpectationsWereMet(), "transaction must be rolled back")
}
