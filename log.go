// (c) Copyright Tracewire Labs 2026

package jaegerprop

import (
	l "log"
	"os"

	"github.com/tracewire/jaegerprop/logger"
)

// LeveledLogger is an interface of a generic logger that supports log
// levels. It is satisfied by logger.Logger provided with this module as well
// as by logrus.Logger and zap.SugaredLogger.
type LeveledLogger interface {
	Debug(v ...interface{})
	Info(v ...interface{})
	Warn(v ...interface{})
	Error(v ...interface{})
}

var defaultLogger LeveledLogger = logger.New(l.New(os.Stderr, "", l.LstdFlags))

// SetLogger replaces the logger used by propagators that were not given
// their own via WithLogger
func SetLogger(l LeveledLogger) {
	defaultLogger = l
}
