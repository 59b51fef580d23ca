package errors

import (
	"strings"
	"testing"
)

func TestValidateItemName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "Kubernetes", false},
		{"valid with punctuation", "Languages & Frameworks", false},
		{"empty", "", true},
		{"control character", "bad\x01name", true},
		{"newline", "bad\nname", true},
		{"too long", strings.Repeat("a", 257), true},
		{"max length", strings.Repeat("a", 256), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateItemName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateItemName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidData) {
				t.Errorf("error code = %v, want %v", GetCode(err), ErrCodeInvalidData)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid relative", "data/radar.csv", false},
		{"valid absolute", "/tmp/radar.csv", false},
		{"empty", "", true},
		{"null byte", "bad\x00path", true},
		{"too long", strings.Repeat("a", 501), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateDimensions(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantErr       bool
	}{
		{"default", 800, 800, false},
		{"minimum", 200, 200, false},
		{"too small", 100, 800, true},
		{"zero", 0, 0, true},
		{"negative", -1, 800, true},
		{"too large", 20000, 800, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDimensions(tt.width, tt.height)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDimensions(%d, %d) error = %v, wantErr %v",
					tt.width, tt.height, err, tt.wantErr)
			}
		})
	}
}

func TestValidateFormat(t *testing.T) {
	allowed := []string{"svg", "png", "pdf", "json", "csv"}

	if err := ValidateFormat("svg", allowed); err != nil {
		t.Errorf("ValidateFormat(svg) = %v, want nil", err)
	}
	err := ValidateFormat("gif", allowed)
	if err == nil {
		t.Fatal("ValidateFormat(gif) = nil, want error")
	}
	if !Is(err, ErrCodeInvalidFormat) {
		t.Errorf("error code = %v, want %v", GetCode(err), ErrCodeInvalidFormat)
	}
}
