package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidData, "a chart needs more than one entry")
	if err.Code != ErrCodeInvalidData {
		t.Errorf("Code = %q, want %q", err.Code, ErrCodeInvalidData)
	}
	if err.Message != "a chart needs more than one entry" {
		t.Errorf("Message = %q", err.Message)
	}
	want := "INVALID_DATA: a chart needs more than one entry"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestNewFormatting(t *testing.T) {
	err := New(ErrCodeInvalidFormat, "invalid format: %q", "gif")
	if err.Message != `invalid format: "gif"` {
		t.Errorf("Message = %q", err.Message)
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap(ErrCodeInternal, cause, "render %s", "png")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match cause via errors.Is")
	}
	want := "INTERNAL_ERROR: render png: boom"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{
			name: "matching code",
			err:  New(ErrCodeInvalidData, "bad"),
			code: ErrCodeInvalidData,
			want: true,
		},
		{
			name: "different code",
			err:  New(ErrCodeInvalidData, "bad"),
			code: ErrCodeNotFound,
			want: false,
		},
		{
			name: "plain error",
			err:  stderrors.New("plain"),
			code: ErrCodeInvalidData,
			want: false,
		},
		{
			name: "wrapped in fmt chain",
			err:  fmt.Errorf("layout: %w", New(ErrCodeInvalidData, "bad")),
			code: ErrCodeInvalidData,
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.want {
				t.Errorf("Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeNotReady, "x")); got != ErrCodeNotReady {
		t.Errorf("GetCode = %q, want %q", got, ErrCodeNotReady)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeInvalidData, "bad data")); got != "bad data" {
		t.Errorf("UserMessage = %q", got)
	}
	if got := UserMessage(stderrors.New("plain")); got != "plain" {
		t.Errorf("UserMessage = %q", got)
	}
}

func TestValidateCategory(t *testing.T) {
	tests := []struct {
		name    string
		label   string
		wantErr bool
	}{
		{name: "valid", label: "Jan", wantErr: false},
		{name: "empty", label: "", wantErr: true},
		{name: "control char", label: "a\x00b", wantErr: true},
		{name: "too long", label: string(make([]byte, 300)), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCategory(tt.label)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCategory(%q) error = %v, wantErr %v", tt.label, err, tt.wantErr)
			}
		})
	}
}

func TestValidateSteps(t *testing.T) {
	if err := ValidateSteps(3); err != nil {
		t.Errorf("ValidateSteps(3) = %v", err)
	}
	if err := ValidateSteps(0); err == nil {
		t.Error("ValidateSteps(0) should fail")
	}
}

func TestValidateDimensions(t *testing.T) {
	if err := ValidateDimensions(800, 600); err != nil {
		t.Errorf("ValidateDimensions = %v", err)
	}
	if err := ValidateDimensions(0, 600); err == nil {
		t.Error("zero width should fail")
	}
	if err := ValidateDimensions(800, -1); err == nil {
		t.Error("negative height should fail")
	}
}
