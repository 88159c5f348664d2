package logger

import "testing"

// These calls must not panic against the default singleton; they are the whole
// contract this package promises to the rest of the module.
func TestLogLevelsDoNotPanic(t *testing.T) {
	Debug("debug msg")
	Debugf("debug %s", "formatted")
	Debugw("debug kv", "key", "val")
	Info("info msg")
	Infof("info %s", "formatted")
	Infow("info kv", "key", "val")
	Warn("warn msg")
	Warnf("warn %s", "formatted")
	Warnw("warn kv", "key", "val")
	Error("error msg")
	Errorf("error %s", "formatted")
	Errorw("error kv", "key", "val")
}

func TestWithReturnsChildLogger(t *testing.T) {
	child := With("request_id", "abc-123")
	if child == nil {
		t.Fatal("With returned nil logger")
	}
	child.Info("from child logger")
}

func TestSetLevel(t *testing.T) {
	SetLevel(true)
	Debug("should be visible at debug level")
	SetLevel(false)
}
