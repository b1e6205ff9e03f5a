package fractal

import (
	"log/slog"
	"testing"
)

func TestDefaultDrawOptions(t *testing.T) {
	o := defaultDrawOptions()
	if o.logger != Logger() {
		t.Error("default options should use the package logger")
	}
	if o.stats != nil {
		t.Error("default options should not collect stats")
	}
}

func TestWithLoggerNilKeepsPackageLogger(t *testing.T) {
	o := defaultDrawOptions()
	WithLogger(nil)(&o)
	if o.logger != Logger() {
		t.Error("WithLogger(nil) replaced the package logger")
	}

	custom := slog.New(nopHandler{})
	WithLogger(custom)(&o)
	if o.logger != custom {
		t.Error("WithLogger did not install the custom logger")
	}
}
