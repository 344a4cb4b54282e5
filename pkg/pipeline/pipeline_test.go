package pipeline

import (
	"testing"

	"github.com/gregorio-gerardi/circuitry/pkg/digraph/cycles"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"dot", false},
		{"svg", false},
		{"png", false},
		{"invalid", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"dot", "svg"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}

	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}

	// Empty slice is valid (render stage disabled)
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestValidateBounds(t *testing.T) {
	tests := []struct {
		name     string
		min, max int
		wantErr  bool
	}{
		{"both sentinels", cycles.NoMinLimit, cycles.NoMaxLimit, false},
		{"ordered", 2, 5, false},
		{"equal", 3, 3, false},
		{"inverted", 5, 2, true},
		{"sentinel min", cycles.NoMinLimit, 2, false},
		{"sentinel max", 5, cycles.NoMaxLimit, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBounds(tt.min, tt.max)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateBounds(%d, %d) error = %v, wantErr %v", tt.min, tt.max, err, tt.wantErr)
			}
		})
	}
}

func TestValidateAndSetDefaults(t *testing.T) {
	opts := Options{}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error = %v", err)
	}

	if opts.MinLength != cycles.NoMinLimit {
		t.Errorf("MinLength = %d, want sentinel %d", opts.MinLength, cycles.NoMinLimit)
	}
	if opts.MaxLength != cycles.NoMaxLimit {
		t.Errorf("MaxLength = %d, want sentinel %d", opts.MaxLength, cycles.NoMaxLimit)
	}
	if opts.Scale != DefaultScale {
		t.Errorf("Scale = %v, want %v", opts.Scale, DefaultScale)
	}
	if opts.Logger == nil {
		t.Error("Logger should be defaulted")
	}
}

func TestValidateAndSetDefaultsIdempotent(t *testing.T) {
	opts := Options{MinLength: 2, MaxLength: 4}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("first call: %v", err)
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("second call: %v", err)
	}
	if opts.MinLength != 2 || opts.MaxLength != 4 {
		t.Errorf("bounds changed on repeat call: [%d, %d]", opts.MinLength, opts.MaxLength)
	}
}

func TestValidateAndSetDefaultsRejectsInvertedBounds(t *testing.T) {
	opts := Options{MinLength: 5, MaxLength: 2}
	if err := opts.ValidateAndSetDefaults(); err == nil {
		t.Error("inverted bounds should fail validation")
	}
}

func TestValidateAndSetDefaultsRejectsBadFormat(t *testing.T) {
	opts := Options{Formats: []string{"pdf"}}
	if err := opts.ValidateAndSetDefaults(); err == nil {
		t.Error("unsupported format should fail validation")
	}
}

func TestShouldRender(t *testing.T) {
	opts := Options{}
	if opts.ShouldRender() {
		t.Error("no formats should disable rendering")
	}
	opts.Formats = []string{"dot"}
	if !opts.ShouldRender() {
		t.Error("formats present should enable rendering")
	}
}
