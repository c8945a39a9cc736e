package app

import (
	"errors"
	"testing"
)

func TestOperationError(t *testing.T) {
	base := errors.New("permission denied")

	tests := []struct {
		name string
		err  *OperationError
		want string
	}{
		{"with target", NewOperationError("save", "/tmp/s.json", base), "save /tmp/s.json: permission denied"},
		{"no target", NewOperationError("save", "", base), "save: permission denied"},
		{"context", NewOperationError("load", "s.json", base).WithContext("startup"), "load s.json (startup): permission denied"},
		{"no error", NewOperationError("reload", "c.toml", nil), "reload c.toml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}

	if !errors.Is(NewOperationError("save", "x", base), base) {
		t.Error("OperationError should unwrap to its cause")
	}

	var nilErr *OperationError
	if nilErr.WithContext("x") != nil || nilErr.Error() != "" || nilErr.Unwrap() != nil {
		t.Error("nil OperationError methods should be safe")
	}
}

func TestInitError(t *testing.T) {
	base := errors.New("no tty")
	err := &InitError{Component: "backend", Err: base}

	if err.Error() != "failed to initialize backend: no tty" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, base) {
		t.Error("InitError should unwrap to its cause")
	}
	if (&InitError{Component: "storage"}).Error() != "failed to initialize storage" {
		t.Error("InitError without cause")
	}
}
