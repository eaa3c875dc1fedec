package canvas

import "testing"

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#ffffff", White, false},
		{"ff8000", Color{R: 255, G: 128, B: 0, A: 255}, false},
		{"#11223344", Color{R: 0x11, G: 0x22, B: 0x33, A: 0x44}, false},
		{"#fff", Color{}, true},
		{"#gggggg", Color{}, true},
		{"", Color{}, true},
	}
	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestColorHex(t *testing.T) {
	c := Color{R: 0x0a, G: 0xbc, B: 0xde, A: 0x10}
	if got := c.Hex(); got != "#0abcde" {
		t.Errorf("Hex() = %q, want #0abcde", got)
	}
}

func TestFromHSV(t *testing.T) {
	tests := []struct {
		h, s, v float32
		want    Color
	}{
		{0, 1, 1, Color{255, 0, 0, 255}},
		{120, 1, 1, Color{0, 255, 0, 255}},
		{240, 1, 1, Color{0, 0, 255, 255}},
		{60, 1, 1, Color{255, 255, 0, 255}},
		{360, 1, 1, Color{255, 0, 0, 255}},
		{200, 0, 1, White},
		{200, 1, 0, Black},
		{0, 2, -1, Black}, // clamped
	}
	for _, tt := range tests {
		if got := FromHSV(tt.h, tt.s, tt.v); got != tt.want {
			t.Errorf("FromHSV(%v, %v, %v) = %v, want %v", tt.h, tt.s, tt.v, got, tt.want)
		}
	}
}
