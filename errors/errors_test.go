package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorClass_String(t *testing.T) {
	tests := []struct {
		class    ErrorClass
		expected string
	}{
		{ErrorTransient, "transient"},
		{ErrorInvalid, "invalid"},
		{ErrorFatal, "fatal"},
		{ErrorClass(999), "unknown"},
	}

	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			result := test.class.String()
			if result != test.expected {
				t.Errorf("expected %s, got %s", test.expected, result)
			}
		})
	}
}

func TestIsInvalid(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"index out of range", ErrIndexOutOfRange, true},
		{"bad seed index", ErrBadSeedIndex, true},
		{"invalid capacity", ErrInvalidCapacity, true},
		{"invalid snapshot", ErrInvalidSnapshot, true},
		{"invalid encoding", ErrInvalidEncoding, true},
		{"lock poisoned", ErrLockPoisoned, false},
		{"wrapped index error", fmt.Errorf("get: %w", ErrIndexOutOfRange), true},
		{"classified invalid", &ClassifiedError{Class: ErrorInvalid, Err: fmt.Errorf("test")}, true},
		{"classified fatal", &ClassifiedError{Class: ErrorFatal, Err: fmt.Errorf("test")}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := IsInvalid(test.err)
			if result != test.expected {
				t.Errorf("expected %v, got %v for error: %v", test.expected, result, test.err)
			}
		})
	}
}

func TestIsFatal(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"lock poisoned", ErrLockPoisoned, true},
		{"decrypt failed", ErrDecryptFailed, true},
		{"index out of range", ErrIndexOutOfRange, false},
		{"wrapped poison", fmt.Errorf("push: %w", ErrLockPoisoned), true},
		{"classified fatal", &ClassifiedError{Class: ErrorFatal, Err: fmt.Errorf("test")}, true},
		{"classified invalid", &ClassifiedError{Class: ErrorInvalid, Err: fmt.Errorf("test")}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := IsFatal(test.err)
			if result != test.expected {
				t.Errorf("expected %v, got %v for error: %v", test.expected, result, test.err)
			}
		})
	}
}

func TestIsPoisoned(t *testing.T) {
	if !IsPoisoned(ErrLockPoisoned) {
		t.Error("expected ErrLockPoisoned to be poisoned")
	}
	if !IsPoisoned(WrapFatal(ErrLockPoisoned, "Guarded", "Push", "lock acquisition")) {
		t.Error("expected wrapped poison error to be poisoned")
	}
	if IsPoisoned(ErrIndexOutOfRange) {
		t.Error("did not expect index error to be poisoned")
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected ErrorClass
	}{
		{"nil error", nil, ErrorTransient},
		{"lock poisoned", ErrLockPoisoned, ErrorFatal},
		{"index out of range", ErrIndexOutOfRange, ErrorInvalid},
		{"unknown error", fmt.Errorf("something odd"), ErrorTransient},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := Classify(test.err)
			if result != test.expected {
				t.Errorf("expected %v, got %v", test.expected, result)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	base := fmt.Errorf("boom")

	err := Wrap(base, "Fixed", "Get", "index resolution")
	if err == nil {
		t.Fatal("expected non-nil error")
	}
	expected := "Fixed.Get: index resolution failed: boom"
	if err.Error() != expected {
		t.Errorf("expected %q, got %q", expected, err.Error())
	}
	if !errors.Is(err, base) {
		t.Error("expected wrapped error to match base via errors.Is")
	}

	if Wrap(nil, "Fixed", "Get", "index resolution") != nil {
		t.Error("expected nil for nil input")
	}
}

func TestWrapClassified(t *testing.T) {
	base := fmt.Errorf("boom")

	tests := []struct {
		name  string
		wrap  func(error, string, string, string) error
		class ErrorClass
	}{
		{"transient", WrapTransient, ErrorTransient},
		{"invalid", WrapInvalid, ErrorInvalid},
		{"fatal", WrapFatal, ErrorFatal},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.wrap(base, "Component", "Method", "action")

			var ce *ClassifiedError
			if !errors.As(err, &ce) {
				t.Fatal("expected ClassifiedError")
			}
			if ce.Class != test.class {
				t.Errorf("expected class %v, got %v", test.class, ce.Class)
			}
			if ce.Component != "Component" {
				t.Errorf("unexpected component: %s", ce.Component)
			}
			if !strings.Contains(err.Error(), "action failed") {
				t.Errorf("unexpected message: %s", err.Error())
			}
			if !errors.Is(err, base) {
				t.Error("expected classified error to unwrap to base")
			}

			if test.wrap(nil, "Component", "Method", "action") != nil {
				t.Error("expected nil for nil input")
			}
		})
	}
}
