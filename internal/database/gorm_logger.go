package database

import (
	"time"

	"github.com/pageza/recipebox/backend/internal/logger"
	gormlogger "gorm.io/gorm/logger"
)

// gormWriter routes gorm's printf-style output into zerolog
type gormWriter struct {
	log *logger.Logger
}

func (w gormWriter) Printf(format string, args ...any) {
	w.log.Debug().Str("component", "gorm").Msgf(format, args...)
}

// NewGormLogger adapts log to gorm's logger interface. Slow queries are
// reported above 200ms.
func NewGormLogger(log *logger.Logger, level gormlogger.LogLevel) gormlogger.Interface {
	return gormlogger.New(gormWriter{log: log}, gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
