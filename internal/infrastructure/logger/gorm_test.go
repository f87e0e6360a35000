package logger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	gormlogger "gorm.io/gorm/logger"
)

func newObservedGormLogger(level gormlogger.LogLevel, observeAt zapcore.Level) (*GormLogger, *observer.ObservedLogs) {
	core, recorded := observer.New(observeAt)
	return NewGormLogger(zap.New(core), level), recorded
}

func TestGormLogger_LogMode(t *testing.T) {
	gormLog, _ := newObservedGormLogger(gormlogger.Info, zapcore.InfoLevel)

	clone := gormLog.LogMode(gormlogger.Warn)

	assert.Equal(t, gormlogger.Info, gormLog.level)
	cloned, ok := clone.(*GormLogger)
	require.True(t, ok)
	assert.Equal(t, gormlogger.Warn, cloned.level)
}

func TestGormLogger_LevelGating(t *testing.T) {
	gormLog, recorded := newObservedGormLogger(gormlogger.Silent, zapcore.DebugLevel)

	gormLog.Info(context.Background(), "suppressed")
	gormLog.Warn(context.Background(), "suppressed")
	assert.Empty(t, recorded.All())

	gormLog, recorded = newObservedGormLogger(gormlogger.Info, zapcore.DebugLevel)
	gormLog.Info(context.Background(), "migrating table %s", "orders")

	logs := recorded.All()
	require.Len(t, logs, 1)
	assert.Contains(t, logs[0].Message, "migrating table orders")
}

func TestGormLogger_Trace_Error(t *testing.T) {
	gormLog, recorded := newObservedGormLogger(gormlogger.Error, zapcore.ErrorLevel)

	fc := func() (string, int64) { return "SELECT * FROM orders", 0 }
	gormLog.Trace(context.Background(), time.Now(), fc, errors.New("connection reset"))

	logs := recorded.All()
	require.Len(t, logs, 1)
	assert.Contains(t, logs[0].Message, "SQL error")
}

func TestGormLogger_Trace_RecordNotFoundSuppressed(t *testing.T) {
	gormLog, recorded := newObservedGormLogger(gormlogger.Error, zapcore.ErrorLevel)

	fc := func() (string, int64) { return "SELECT * FROM orders WHERE id = ?", 0 }
	gormLog.Trace(context.Background(), time.Now(), fc, gormlogger.ErrRecordNotFound)

	assert.Empty(t, recorded.All())
}

func TestGormLogger_Trace_SlowQuery(t *testing.T) {
	gormLog, recorded := newObservedGormLogger(gormlogger.Warn, zapcore.WarnLevel)
	gormLog.slowThreshold = time.Nanosecond

	begin := time.Now().Add(-time.Second)
	fc := func() (string, int64) { return "SELECT * FROM orders", 10 }
	gormLog.Trace(context.Background(), begin, fc, nil)

	logs := recorded.All()
	require.Len(t, logs, 1)
	assert.Contains(t, logs[0].Message, "SLOW SQL")
}

func TestGormLogger_Trace_Silent(t *testing.T) {
	gormLog, recorded := newObservedGormLogger(gormlogger.Silent, zapcore.DebugLevel)

	fc := func() (string, int64) { return "SELECT * FROM orders", 5 }
	gormLog.Trace(context.Background(), time.Now(), fc, nil)

	assert.Empty(t, recorded.All())
}

func TestGormLogger_Trace_CarriesRequestID(t *testing.T) {
	gormLog, recorded := newObservedGormLogger(gormlogger.Info, zapcore.DebugLevel)

	ctx := WithRequestID(context.Background(), "req-42")
	fc := func() (string, int64) { return "SELECT * FROM orders", 5 }
	gormLog.Trace(ctx, time.Now(), fc, nil)

	logs := recorded.All()
	require.Len(t, logs, 1)

	found := false
	for _, field := range logs[0].Context {
		if field.Key == "request_id" {
			found = true
			assert.Equal(t, "req-42", field.String)
		}
	}
	assert.True(t, found, "request_id should travel into SQL logs")
}

func TestMapGormLogLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected gormlogger.LogLevel
	}{
		{"silent", gormlogger.Silent},
		{"error", gormlogger.Error},
		{"warn", gormlogger.Warn},
		{"info", gormlogger.Info},
		{"debug", gormlogger.Info},
		{"", gormlogger.Warn},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.expected, MapGormLogLevel(tt.level))
		})
	}
}
