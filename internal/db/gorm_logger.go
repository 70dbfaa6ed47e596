package db

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const slowQueryThreshold = time.Second

// gormLogger routes gorm output through logrus at matching levels. Statements
// are logged with their placeholders only, never with bound values.
type gormLogger struct {
	logger        logrus.FieldLogger
	level         gormlogger.LogLevel
	slowThreshold time.Duration
}

func newGormLogger(logger logrus.FieldLogger) gormlogger.Interface {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &gormLogger{
		logger:        logger.WithField("component", "gorm"),
		level:         gormlogger.Warn,
		slowThreshold: slowQueryThreshold,
	}
}

func (l *gormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

func (l *gormLogger) Info(_ context.Context, message string, args ...interface{}) {
	if l.level >= gormlogger.Info {
		l.logger.Infof(message, args...)
	}
}

func (l *gormLogger) Warn(_ context.Context, message string, args ...interface{}) {
	if l.level >= gormlogger.Warn {
		l.logger.Warnf(message, args...)
	}
}

func (l *gormLogger) Error(_ context.Context, message string, args ...interface{}) {
	if l.level >= gormlogger.Error {
		l.logger.Errorf(message, args...)
	}
}

func (l *gormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	switch {
	case err != nil && l.level >= gormlogger.Error && !isExpectedStoreError(err):
		sql, rows := fc()
		l.logger.WithError(err).WithFields(logrus.Fields{
			"elapsed": elapsed,
			"rows":    rows,
			"sql":     sql,
		}).Error("query failed")
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= gormlogger.Warn:
		sql, rows := fc()
		l.logger.WithFields(logrus.Fields{
			"elapsed": elapsed,
			"rows":    rows,
			"sql":     sql,
		}).Warn("slow query")
	case l.level >= gormlogger.Info:
		sql, rows := fc()
		l.logger.WithFields(logrus.Fields{
			"elapsed": elapsed,
			"rows":    rows,
			"sql":     sql,
		}).Debug("query")
	}
}

// ParamsFilter drops bound values so emails, password hashes and meal text
// never reach the log.
func (l *gormLogger) ParamsFilter(_ context.Context, sql string, _ ...interface{}) (string, []interface{}) {
	return sql, nil
}

// Constraint violations and misses are translated into store sentinels by
// the repositories and answered as 4xx responses.
func isExpectedStoreError(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound) || isUniqueViolation(err) || isForeignKeyViolation(err)
}
