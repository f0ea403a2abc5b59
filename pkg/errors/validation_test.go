package errors

import (
	"strings"
	"testing"
)

func TestValidateTrackingNumber(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"digits", "360000123456789", false},
		{"postal format", "RR123456789AR", false},
		{"surrounding space", "  CP123456789AR \n", false},
		{"with dashes", "3600-0012-3456", false},

		{"empty", "", true},
		{"only spaces", "   ", true},
		{"too long", strings.Repeat("1", 65), true},
		{"null byte", "123\x00456", true},
		{"control char", "123\x01456", true},
		{"inner newline", "123\n456", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTrackingNumber(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTrackingNumber(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("ValidateTrackingNumber(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidInput)
			}
		})
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"https://www.andreani.com/envio/{number}", false},
		{"http://localhost:8080/track", false},
		{"", true},
		{"ftp://example.com", true},
		{"javascript:alert(1)", true},
	}

	for _, tt := range tests {
		err := ValidateURL(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateURL(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}
