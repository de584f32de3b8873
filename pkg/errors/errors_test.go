package errors

import (
	"errors"
	"os"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeArgumentCount, "accepts %d arg(s), received %d", 4, 2)

	if err.Code != ErrCodeArgumentCount {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeArgumentCount)
	}

	if err.Message != "accepts 4 arg(s), received 2" {
		t.Errorf("Message = %v, want %v", err.Message, "accepts 4 arg(s), received 2")
	}

	expected := "ARGUMENT_COUNT: accepts 4 arg(s), received 2"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := os.ErrNotExist
	err := Wrap(ErrCodeFileOpen, cause, "open %s", "in.txt")

	if err.Code != ErrCodeFileOpen {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeFileOpen)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	// Test Unwrap
	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	// Test errors.Is with wrapped error
	if !errors.Is(err, os.ErrNotExist) {
		t.Error("errors.Is(err, os.ErrNotExist) = false, want true")
	}

	expected := "FILE_OPEN: open in.txt: file does not exist"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeInvalidFormat, "test"),
			code:     ErrCodeInvalidFormat,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeInvalidFormat, "test"),
			code:     ErrCodeTruncatedInput,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeFileOpen, New(ErrCodeInvalidPath, "inner"), "outer"),
			code:     ErrCodeFileOpen,
			expected: true,
		},
		{
			name:     "fmt wrapped",
			err:      errorsJoin(New(ErrCodeMalformedTree, "inner")),
			code:     ErrCodeMalformedTree,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidInput,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidInput,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func errorsJoin(err error) error {
	return errors.Join(errors.New("context"), err)
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeTruncatedInput, "test"),
			expected: ErrCodeTruncatedInput,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			expected: "",
		},
		{
			name:     "nil",
			err:      nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeInvalidInput, "friendly message"),
			expected: "friendly message",
		},
		{
			name:     "Error with cause",
			err:      Wrap(ErrCodeFileOpen, errors.New("permission denied"), "open out.txt"),
			expected: "open out.txt: permission denied",
		},
		{
			name:     "plain error",
			err:      errors.New("plain error"),
			expected: "plain error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	if got := ExitCode(nil); got != 0 {
		t.Errorf("ExitCode(nil) = %d, want 0", got)
	}
	if got := ExitCode(New(ErrCodeArgumentCount, "x")); got != 1 {
		t.Errorf("ExitCode(err) = %d, want 1", got)
	}
}
