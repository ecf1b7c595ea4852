package utils

import "testing"

func TestParseWeight(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want float64
	}{
		{"grams suffix", "150g", 150},
		{"kilograms", "1.2kg", 1200},
		{"kilograms with space", "1.2 kg", 1200},
		{"uppercase KG", "2KG", 2000},
		{"chinese kilograms", "1.5千克", 1500},
		{"chinese jin variant", "0.5公斤", 500},
		{"chinese grams", "约200克", 200},
		{"bare number string", "80", 80},
		{"no digits", "abc", 0},
		{"empty string", "", 0},
		{"nil", nil, 0},
		{"float grams", float64(200), 200},
		{"int grams", 200, 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseWeight(tt.in); got != tt.want {
				t.Fatalf("ParseWeight(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want float64
	}{
		{"embedded chinese unit", "约40克", 40},
		{"decimal with unit", "12.5g", 12.5},
		{"no digits", "none", 0},
		{"float passthrough", 3.2, 3.2},
		{"int passthrough", 7, 7},
		{"nil", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseNumber(tt.in); got != tt.want {
				t.Fatalf("ParseNumber(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
