package logger

import (
	"reflect"
	"sync"

	"github.com/sirupsen/logrus"
)

var cache = make(map[string]*logrus.Logger)
var cacheMutex = new(sync.Mutex)

// Named returns a logger that tags every entry with the given component name.
// Loggers are cached per name and inherit level and formatter from the
// standard logger at the time they are first requested.
func Named(name string) *logrus.Logger {
	cacheMutex.Lock()
	defer cacheMutex.Unlock()

	if logger, ok := cache[name]; ok {
		return logger
	}

	logger := logrus.New()
	logger.SetLevel(logrus.StandardLogger().Level)
	logger.SetFormatter(namedFormatter{
		name:      name,
		formatter: logrus.StandardLogger().Formatter,
	})
	cache[name] = logger

	return logger
}

// For returns a Named logger using the type name of target.
func For(target any) *logrus.Logger {
	return Named(typeName(target))
}

func typeName(target any) string {
	t := reflect.TypeOf(target)
	if t == nil {
		return "unknown"
	}

	if t.Kind() == reflect.Ptr {
		return t.Elem().Name()
	}

	return t.Name()
}

type namedFormatter struct {
	name      string
	formatter logrus.Formatter
}

func (f namedFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	entry.Data["name"] = f.name
	return f.formatter.Format(entry)
}
