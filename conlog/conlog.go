// SPDX-License-Identifier: GPL-2.0-or-later

// Package conlog is the shared logger of the tools. The decoder packages
// never log; errors are returned to the caller instead.
package conlog

import (
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	mutex  sync.RWMutex
	logger = newLogger()
)

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	l.SetLevel(logrus.InfoLevel)
	return l
}

func get() *logrus.Logger {
	mutex.RLock()
	defer mutex.RUnlock()
	return logger
}

// SetOutput redirects all further messages.
func SetOutput(w io.Writer) {
	get().SetOutput(w)
}

// SetLevel parses level names like "debug" or "warn".
func SetLevel(level string) error {
	l, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	get().SetLevel(l)
	return nil
}

// SetLogger replaces the logger, mostly for tests.
func SetLogger(l *logrus.Logger) {
	mutex.Lock()
	defer mutex.Unlock()
	logger = l
}

func WithFields(f logrus.Fields) *logrus.Entry {
	return get().WithFields(f)
}

func Debugf(format string, v ...interface{}) {
	get().Debugf(format, v...)
}

func Printf(format string, v ...interface{}) {
	get().Infof(format, v...)
}

func Warnf(format string, v ...interface{}) {
	get().Warnf(format, v...)
}
