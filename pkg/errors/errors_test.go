package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeEmptyScore, "no notes in %s", "chart.json")

	if err.Code != ErrCodeEmptyScore {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeEmptyScore)
	}

	if err.Message != "no notes in chart.json" {
		t.Errorf("Message = %v, want %v", err.Message, "no notes in chart.json")
	}

	expected := "EMPTY_SCORE: no notes in chart.json"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(ErrCodeRenderIO, cause, "write output")

	if err.Code != ErrCodeRenderIO {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeRenderIO)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}

	expected := "RENDER_IO: write output: disk full"
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
			err:      New(ErrCodeLayout, "test"),
			code:     ErrCodeLayout,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeLayout, "test"),
			code:     ErrCodeRenderIO,
			expected: false,
		},
		{
			name:     "outer code of wrapped error",
			err:      Wrap(ErrCodeRenderIO, New(ErrCodeEmptyScore, "inner"), "outer"),
			code:     ErrCodeRenderIO,
			expected: true,
		},
		{
			name:     "inner code of wrapped error",
			err:      Wrap(ErrCodeRenderIO, New(ErrCodeEmptyScore, "inner"), "outer"),
			code:     ErrCodeEmptyScore,
			expected: true,
		},
		{
			name:     "behind fmt wrapping",
			err:      fmt.Errorf("render: %w", New(ErrCodeLayout, "zero bars")),
			code:     ErrCodeLayout,
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

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeUnknownNoteType, "test"),
			expected: ErrCodeUnknownNoteType,
		},
		{
			name:     "wrapped keeps outer code",
			err:      Wrap(ErrCodeRenderIO, New(ErrCodeLayout, "inner"), "outer"),
			expected: ErrCodeRenderIO,
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

func TestDetails(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "nil",
			err:      nil,
			expected: "",
		},
		{
			name:     "single plain error",
			err:      errors.New("boom"),
			expected: "boom\n",
		},
		{
			name:     "coded chain",
			err:      Wrap(ErrCodeRenderIO, Wrap(ErrCodeInternal, errors.New("short write"), "encode png"), "save out.png"),
			expected: "save out.png\nencode png\nshort write\n",
		},
		{
			name:     "fmt chain",
			err:      fmt.Errorf("open chart.json: %w", errors.New("no such file")),
			expected: "open chart.json\nno such file\n",
		},
		{
			name:     "mixed chain",
			err:      Wrap(ErrCodeInvalidInput, fmt.Errorf("decode: %w", errors.New("unexpected EOF")), "read chart"),
			expected: "read chart\ndecode\nunexpected EOF\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Details(tt.err); got != tt.expected {
				t.Errorf("Details() = %q, want %q", got, tt.expected)
			}
		})
	}
}
