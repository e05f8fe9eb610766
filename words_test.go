package rial

import (
	"math/big"
	"testing"
)

func TestToWords(t *testing.T) {
	tests := []struct {
		n    string
		want string
	}{
		{"0", "صفر"},
		{"1", "یک"},
		{"9", "نه"},
		{"10", "ده"},
		{"11", "یازده"},
		{"15", "پانزده"},
		{"19", "نوزده"},
		{"20", "بیست"},
		{"21", "بیست و یک"},
		{"55", "پنجاه و پنج"},
		{"100", "صد"},
		{"101", "صد و یک"},
		{"110", "صد و ده"},
		{"115", "صد و پانزده"},
		{"200", "دویست"},
		{"999", "نهصد و نود و نه"},
		{"1000", "یک هزار"},
		{"1234", "یک هزار و دویست و سی و چهار"},
		{"10000", "ده هزار"},
		{"100000", "صد هزار"},
		{"553140", "پانصد و پنجاه و سه هزار و صد و چهل"},
		{"1000000", "یک میلیون"},
		{"1000001", "یک میلیون و یک"},
		{"2001000", "دو میلیون و یک هزار"},
		{"1000000000", "یک میلیارد"},
		{"-1", "منفی یک"},
		{"-42", "منفی چهل و دو"},
		{"-1234", "منفی یک هزار و دویست و سی و چهار"},
	}
	for _, tt := range tests {
		n, _ := new(big.Int).SetString(tt.n, 10)
		got := ToWords(n)
		if got != tt.want {
			t.Errorf("ToWords(%v) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestToWords_Nil(t *testing.T) {
	got := ToWords(nil)
	if got != "صفر" {
		t.Errorf("ToWords(nil) = %q, want %q", got, "صفر")
	}
}

func TestToWords_LargeMagnitudes(t *testing.T) {
	pow := func(exp int64) *big.Int {
		return new(big.Int).Exp(big.NewInt(10), big.NewInt(exp), nil)
	}
	tests := []struct {
		n    *big.Int
		want string
	}{
		{pow(12), "یک تریلیون"},
		{pow(30), "یک نونیلیون"},
		{pow(33), "یک دسیلیون"},
		{new(big.Int).Add(pow(33), big.NewInt(5)), "یک دسیلیون و پنج"},
		{pow(36), "یک هزار دسیلیون"},
		{new(big.Int).Mul(pow(33), big.NewInt(2_000_001)), "دو میلیون و یک دسیلیون"},
		{pow(66), "یک دسیلیون دسیلیون"},
	}
	for _, tt := range tests {
		got := ToWords(tt.n)
		if got != tt.want {
			t.Errorf("ToWords(%v) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestToWords_DoesNotMutateInput(t *testing.T) {
	n := big.NewInt(-553140)
	ToWords(n)
	if n.Int64() != -553140 {
		t.Errorf("ToWords mutated its input: %v", n)
	}
}
