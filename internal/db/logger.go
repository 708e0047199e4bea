package db

import (
	"log"
	"os"
	"time"

	"gorm.io/gorm/logger"
)

// newLogger reports slow queries and errors. Lookups that find nothing are
// ordinary outcomes here and are not logged.
func newLogger(w logger.Writer) logger.Interface {
	return logger.New(w, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

func defaultLogger() logger.Interface {
	return newLogger(log.New(os.Stdout, "\r\n", log.LstdFlags))
}
