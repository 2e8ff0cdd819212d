package logging

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/myhit051/hatyai-restart-sub000/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	// the sql.DB pool opener may still be winding down when a test ends
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("database/sql.(*DB).connectionOpener"),
	)
}

func newLogDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.SystemLog{}))
	return db
}

func TestDBHandlerOnlyErrorLevel(t *testing.T) {
	db := newLogDB(t)
	h := NewDBHandler(db)
	defer h.Stop()

	ctx := context.Background()
	assert.False(t, h.Enabled(ctx, slog.LevelDebug))
	assert.False(t, h.Enabled(ctx, slog.LevelInfo))
	assert.False(t, h.Enabled(ctx, slog.LevelWarn))
	assert.True(t, h.Enabled(ctx, slog.LevelError))
}

func TestDBHandlerFlushOnStop(t *testing.T) {
	db := newLogDB(t)
	h := NewDBHandler(db)

	record := slog.NewRecord(time.Now(), slog.LevelError, "match failed", 0)
	record.AddAttrs(
		slog.String("action", "match_resource"),
		slog.String("error", "conflict"),
		slog.String("request_path", "/api/matches"),
	)
	require.NoError(t, h.Handle(context.Background(), record))

	// Stop drains the buffer before returning
	h.Stop()

	var logs []models.SystemLog
	require.NoError(t, db.Find(&logs).Error)
	require.Len(t, logs, 1)
	assert.Equal(t, "match failed", logs[0].Message)
	assert.Equal(t, "match_resource", logs[0].Action)
	assert.Equal(t, "conflict", logs[0].Error)
	assert.Contains(t, string(logs[0].Extra), "request_path")
}

func TestDBHandlerBatchFlush(t *testing.T) {
	db := newLogDB(t)
	h := NewDBHandler(db)
	defer h.Stop()

	// filling the buffer triggers a synchronous flush
	for i := 0; i < 50; i++ {
		record := slog.NewRecord(time.Now(), slog.LevelError, "boom", 0)
		require.NoError(t, h.Handle(context.Background(), record))
	}

	var count int64
	require.NoError(t, db.Model(&models.SystemLog{}).Count(&count).Error)
	assert.Equal(t, int64(50), count)
}

func TestStartCleanupStops(t *testing.T) {
	db := newLogDB(t)

	done := make(chan struct{})
	StartCleanup(db, done)
	close(done)
	// goleak verifies the goroutine exits
	time.Sleep(10 * time.Millisecond)
}
