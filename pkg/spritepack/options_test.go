package spritepack

import (
	"errors"
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	if err := opts.Validate(); err != nil {
		t.Fatalf("Default options invalid: %v", err)
	}
	if opts.Mode != ModeLog || opts.Scale != 1 || opts.Padding != 2 {
		t.Errorf("Unexpected defaults: %+v", opts)
	}
	if opts.CanvasSize() != 8192 {
		t.Errorf("Expected canvas 8192, got %d", opts.CanvasSize())
	}
	if opts.ColumnFudgeDivisor != 1000 || opts.DefaultColumnCount != 10 {
		t.Errorf("Unexpected heuristic constants: %d, %d", opts.ColumnFudgeDivisor, opts.DefaultColumnCount)
	}
	if opts.ShouldEmitRecord() {
		t.Error("Log mode should not emit a record")
	}

	opts.Mode = ModeExport
	if !opts.ShouldEmitRecord() {
		t.Error("Export mode should emit a record")
	}
}

func TestParseScale(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
		ok       bool
	}{
		{"1", 1, true},
		{"0.5", 0.5, true},
		{".25", 0.25, true},
		{" 1.0 ", 1, true},
		{"2", 0, false},
		{"0.3", 0, false},
		{"half", 0, false},
	}

	for _, tt := range tests {
		got, err := ParseScale(tt.input)
		if tt.ok {
			if err != nil || got != tt.expected {
				t.Errorf("ParseScale(%q) = %v, %v, expected %v", tt.input, got, err, tt.expected)
			}
			continue
		}
		if !errors.Is(err, ErrUnsupportedScale) {
			t.Errorf("ParseScale(%q) error = %v, expected ErrUnsupportedScale", tt.input, err)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Options)
		target error
	}{
		{"mode", func(o *Options) { o.Mode = "gui" }, ErrInvalidOptions},
		{"scale", func(o *Options) { o.Scale = 2 }, ErrUnsupportedScale},
		{"padding", func(o *Options) { o.Padding = -1 }, ErrInvalidOptions},
		{"no sizes", func(o *Options) { o.Sizes = nil }, ErrInvalidOptions},
		{"unordered sizes", func(o *Options) { o.Sizes = []int{64, 32} }, ErrInvalidOptions},
		{"divisor", func(o *Options) { o.ColumnFudgeDivisor = 0 }, ErrInvalidOptions},
		{"fallback", func(o *Options) { o.DefaultColumnCount = 0 }, ErrInvalidOptions},
	}

	for _, tt := range tests {
		opts := DefaultOptions()
		tt.modify(&opts)
		if err := opts.Validate(); !errors.Is(err, tt.target) {
			t.Errorf("%s: Validate() = %v, expected %v", tt.name, err, tt.target)
		}
	}
}

func TestWithMaxSize(t *testing.T) {
	opts, err := DefaultOptions().WithMaxSize(1000)
	if err != nil {
		t.Fatalf("WithMaxSize failed: %v", err)
	}
	if opts.CanvasSize() != 512 || len(opts.Sizes) != 5 {
		t.Errorf("Expected sizes up to 512, got %v", opts.Sizes)
	}

	if _, err := DefaultOptions().WithMaxSize(16); !errors.Is(err, ErrInvalidOptions) {
		t.Errorf("Expected ErrInvalidOptions, got %v", err)
	}

	// the original list is not modified
	if DefaultOptions().CanvasSize() != 8192 {
		t.Error("WithMaxSize modified the defaults")
	}
}
