package currency

import "testing"

func TestVAT(t *testing.T) {
	tests := []struct {
		amount float64
		want   float64
	}{
		{0, 0},
		{100, 15},
		{200, 30},
		{187.5, 28.125},
	}

	for _, tt := range tests {
		if got := VAT(tt.amount); got != tt.want {
			t.Errorf("VAT(%v) = %v, want %v", tt.amount, got, tt.want)
		}
	}
}

func TestTotalWithVAT(t *testing.T) {
	if got := TotalWithVAT(100); got != 115 {
		t.Errorf("TotalWithVAT(100) = %v, want 115", got)
	}
}

func TestFormatSAR(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "SAR 0.00"},
		{14.99, "SAR 14.99"},
		{1234.5, "SAR 1,234.50"},
		{1234567.89, "SAR 1,234,567.89"},
		{-42, "SAR -42.00"},
	}

	for _, tt := range tests {
		if got := FormatSAR(tt.amount); got != tt.want {
			t.Errorf("FormatSAR(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestFormatSARCompact(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{999, "SAR 999.00"},
		{1500, "SAR 1.5K"},
		{2_500_000, "SAR 2.5M"},
	}

	for _, tt := range tests {
		if got := FormatSARCompact(tt.amount); got != tt.want {
			t.Errorf("FormatSARCompact(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestFormatSARRange(t *testing.T) {
	if got := FormatSARRange(10, 25); got != "SAR 10.00 - SAR 25.00" {
		t.Errorf("FormatSARRange(10, 25) = %q", got)
	}
}

func TestUSDToSAR(t *testing.T) {
	if got := USDToSAR(100); got != 375 {
		t.Errorf("USDToSAR(100) = %v, want 375", got)
	}
}
