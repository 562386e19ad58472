// Package currency holds the pure money helpers for the Saudi market:
// 15% VAT, SAR formatting, the fixed demo USD rate.
package currency

import "fmt"

const (
	// VATRate is the Saudi standard VAT rate.
	VATRate = 0.15

	// USDToSARRate is the fixed demo exchange rate (1 USD = 3.75 SAR).
	USDToSARRate = 3.75
)

// VAT returns the VAT amount for a base amount.
func VAT(amount float64) float64 {
	return amount * VATRate
}

// TotalWithVAT returns the amount with VAT included.
func TotalWithVAT(amount float64) float64 {
	return amount + VAT(amount)
}

// FormatSAR formats an amount as Saudi Riyal, e.g. "SAR 1,234.50".
func FormatSAR(amount float64) string {
	return "SAR " + groupThousands(fmt.Sprintf("%.2f", amount))
}

// FormatSARCompact abbreviates large amounts: "SAR 1.2K", "SAR 3.4M".
func FormatSARCompact(amount float64) string {
	abs := amount
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs >= 1_000_000:
		return fmt.Sprintf("SAR %.1fM", amount/1_000_000)
	case abs >= 1_000:
		return fmt.Sprintf("SAR %.1fK", amount/1_000)
	default:
		return FormatSAR(amount)
	}
}

// FormatSARRange formats a price range, e.g. "SAR 10.00 - SAR 25.00".
func FormatSARRange(minPrice, maxPrice float64) string {
	return FormatSAR(minPrice) + " - " + FormatSAR(maxPrice)
}

// USDToSAR converts a USD amount at the fixed demo rate.
func USDToSAR(usd float64) float64 {
	return usd * USDToSARRate
}

// groupThousands inserts comma separators into a "%.2f" string.
func groupThousands(s string) string {
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}

	intPart := s
	frac := ""
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			intPart, frac = s[:i], s[i:]
			break
		}
	}

	out := make([]byte, 0, len(intPart)+len(intPart)/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}

	res := string(out) + frac
	if neg {
		res = "-" + res
	}
	return res
}
