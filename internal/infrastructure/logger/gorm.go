package logger

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	gormlogger "gorm.io/gorm/logger"
)

// GormLogger adapts zap to gorm. Failed statements log at error, statements
// over slowThreshold at warn, and everything else at debug when gorm is at Info.
type GormLogger struct {
	logger        *zap.Logger
	level         gormlogger.LogLevel
	slowThreshold time.Duration
}

// NewGormLogger returns a GormLogger; a zero slowThreshold turns slow-query
// warnings off.
func NewGormLogger(zapLogger *zap.Logger, level gormlogger.LogLevel, slowThreshold time.Duration) *GormLogger {
	return &GormLogger{logger: zapLogger.Named("gorm"), level: level, slowThreshold: slowThreshold}
}

// GormLevel picks the gorm verbosity for an application log level. Only
// debug shows every statement.
func GormLevel(level string) gormlogger.LogLevel {
	switch level {
	case "debug":
		return gormlogger.Info
	case "error":
		return gormlogger.Error
	default:
		return gormlogger.Warn
	}
}

func (l *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	next := *l
	next.level = level
	return &next
}

func (l *GormLogger) Info(_ context.Context, msg string, data ...any) {
	l.printf(gormlogger.Info, zapcore.InfoLevel, msg, data)
}

func (l *GormLogger) Warn(_ context.Context, msg string, data ...any) {
	l.printf(gormlogger.Warn, zapcore.WarnLevel, msg, data)
}

func (l *GormLogger) Error(_ context.Context, msg string, data ...any) {
	l.printf(gormlogger.Error, zapcore.ErrorLevel, msg, data)
}

func (l *GormLogger) printf(min gormlogger.LogLevel, lvl zapcore.Level, msg string, data []any) {
	if l.level >= min {
		l.logger.Sugar().Logf(lvl, msg, data...)
	}
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level <= gormlogger.Silent || errors.Is(err, gormlogger.ErrRecordNotFound) {
		return
	}

	elapsed := time.Since(begin)
	slow := l.slowThreshold > 0 && elapsed > l.slowThreshold
	switch {
	case err != nil && l.level < gormlogger.Error,
		err == nil && slow && l.level < gormlogger.Warn,
		err == nil && !slow && l.level < gormlogger.Info:
		return
	}

	statement, rows := fc()
	fields := []zap.Field{
		zap.String("sql", statement),
		zap.Int64("rows", rows),
		zap.Duration("elapsed", elapsed),
	}
	if id := RequestID(ctx); id != "" {
		fields = append(fields, zap.String("request_id", id))
	}

	switch {
	case err != nil:
		l.logger.Error("SQL Error", append(fields, zap.Error(err))...)
	case slow:
		l.logger.Warn("Slow SQL", append(fields, zap.Duration("threshold", l.slowThreshold))...)
	default:
		l.logger.Debug("SQL Query", fields...)
	}
}

var _ gormlogger.Interface = (*GormLogger)(nil)
