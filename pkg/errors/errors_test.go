package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidSeed, "bad seed %q", "abc")
	want := `INVALID_SEED: bad seed "abc"`
	if err.Error() != want {
		t.Fatalf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("disk full")
	err := Wrap(ErrCodeWrite, cause, "writing %s", "out.svg")

	if got := err.Error(); got != "WRITE_ERROR: writing out.svg: disk full" {
		t.Errorf("Error() = %q", got)
	}
	if !stderrors.Is(err, cause) {
		t.Error("wrapped error must satisfy errors.Is on its cause")
	}
	if err.Unwrap() != cause {
		t.Error("Unwrap must return the cause")
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeGeometry, "degenerate")

	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"matching code", err, ErrCodeGeometry, true},
		{"other code", err, ErrCodeInternal, false},
		{"wrapped in fmt", fmt.Errorf("context: %w", err), ErrCodeGeometry, true},
		{"plain error", stderrors.New("x"), ErrCodeGeometry, false},
		{"nil", nil, ErrCodeGeometry, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.want {
				t.Fatalf("Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeImage, "x")); got != ErrCodeImage {
		t.Errorf("GetCode = %q, want %q", got, ErrCodeImage)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode on plain error = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeInvalidPath, "no such file")); got != "no such file" {
		t.Errorf("UserMessage = %q", got)
	}
	if got := UserMessage(stderrors.New("raw")); got != "raw" {
		t.Errorf("UserMessage on plain error = %q", got)
	}
}
