package core

import (
	"image/color"
	"testing"
)

func TestColorValidate(t *testing.T) {
	tests := []struct {
		col     Color
		wantErr bool
	}{
		{ColorDefault, false},
		{"#3b82f6", false},
		{"#22c55e33", false},
		{"#fff", false},
		{"3b82f6", true},
		{"#zzzzzz", true},
		{"#22c55ezz", true},
		{"#1234", true},
	}

	for _, tc := range tests {
		t.Run(string(tc.col), func(t *testing.T) {
			err := tc.col.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate(%q) error = %v, wantErr %v", tc.col, err, tc.wantErr)
			}
		})
	}
}

func TestColorAlpha(t *testing.T) {
	if a := Color("#3b82f6").Alpha(); a != 1 {
		t.Errorf("opaque alpha = %g", a)
	}
	c := Color("#22c55e33")
	if c.Hex() != "#22c55e" {
		t.Errorf("Hex() = %q", c.Hex())
	}
	if !c.Translucent() {
		t.Error("expected translucent")
	}
	if a := c.Alpha(); a < 0.19 || a > 0.21 {
		t.Errorf("alpha = %g, expected 0.2", a)
	}
}

func TestColorNRGBA(t *testing.T) {
	tests := []struct {
		col  Color
		want color.NRGBA
	}{
		{"#ef4444", color.NRGBA{R: 0xef, G: 0x44, B: 0x44, A: 0xff}},
		{"#22c55e33", color.NRGBA{R: 0x22, G: 0xc5, B: 0x5e, A: 0x33}},
		{ColorDefault, color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
	}

	for _, tc := range tests {
		if got := tc.col.NRGBA(); got != tc.want {
			t.Errorf("NRGBA(%q) = %+v, expected %+v", tc.col, got, tc.want)
		}
	}
}
